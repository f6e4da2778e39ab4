package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/hussenmi/real-estate-api/internal/domain"
	"github.com/hussenmi/real-estate-api/internal/usecases/selling"
	"github.com/hussenmi/real-estate-api/pkg/apiErrors"
	"github.com/hussenmi/real-estate-api/pkg/log"
	"github.com/hussenmi/real-estate-api/pkg/utils"
)

// recordSaleBody é o corpo esperado em POST /v1/sales
type recordSaleBody struct {
	HouseID    int             `json:"house_id"`
	BuyerID    int             `json:"buyer_id"`
	DateOfSale string          `json:"date_of_sale"`
	SalePrice  decimal.Decimal `json:"sale_price"`
}

// RecordSale registra a venda de um imóvel anunciado
func RecordSale(service selling.SaleRecorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var body recordSaleBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		dateOfSale, err := utils.ParseDate(body.DateOfSale)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data da venda inválida. Use o formato YYYY-MM-DD", nil)
			return
		}

		sale, err := service.RecordSale(r.Context(), selling.RecordSaleRequest{
			HouseID:    body.HouseID,
			BuyerID:    body.BuyerID,
			DateOfSale: dateOfSale,
			SalePrice:  body.SalePrice,
		})
		if err != nil {
			writeSaleError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"sale_id":  sale.ID,
			"house_id": sale.HouseID,
		}).Info("sales: venda registrada")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(sale); err != nil {
			logger.WithError(err).Error("sales: erro ao codificar resposta")
		}
	})
}

// writeSaleError traduz os erros do registro de venda para o contrato da API
func writeSaleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context())

	switch {
	case errors.Is(err, selling.ErrHouseNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, err.Error(), nil)
	case errors.Is(err, selling.ErrHouseAlreadySold):
		apiErrors.WriteError(w, apiErrors.ErrSaleConflict, err.Error(), nil)
	case errors.Is(err, selling.ErrBuyerRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, selling.ErrHouseUnlisted),
		errors.Is(err, selling.ErrSaleBeforeListing),
		errors.Is(err, domain.ErrNegativeSalePrice):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		logger.WithError(err).Error("sales: erro ao registrar venda")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar venda", nil)
	}
}
