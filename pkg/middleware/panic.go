package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/hussenmi/real-estate-api/pkg/apiErrors"
	"github.com/hussenmi/real-estate-api/pkg/log"
)

// LogPanicMiddleware converte panics dos handlers em 500 com log do stack
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.ForContext(r.Context()).WithFields(log.Fields{
						"panic": rec,
						"stack": string(debug.Stack()),
						"path":  r.URL.Path,
					}).Error("Panic durante o processamento da requisição")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
