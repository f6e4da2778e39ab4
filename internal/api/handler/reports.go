package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/hussenmi/real-estate-api/infrastructure/repository"
	"github.com/hussenmi/real-estate-api/internal/domain"
	"github.com/hussenmi/real-estate-api/internal/usecases/reporting"
	"github.com/hussenmi/real-estate-api/pkg/apiErrors"
	"github.com/hussenmi/real-estate-api/pkg/log"
)

// OfficeRankingResponse é a resposta do ranking de escritórios
type OfficeRankingResponse struct {
	Month   string                      `json:"month"`
	Year    string                      `json:"year"`
	Items   []*domain.OfficeRankingItem `json:"items"`
	Summary []string                    `json:"summary"`
}

// AgentRankingResponse é a resposta do ranking de corretores
type AgentRankingResponse struct {
	Month   string                     `json:"month"`
	Year    string                     `json:"year"`
	Items   []*domain.AgentRankingItem `json:"items"`
	Summary []string                   `json:"summary"`
}

// CommissionLedgerResponse lista as comissões gravadas no razão de uma janela
type CommissionLedgerResponse struct {
	Month   string                      `json:"month"`
	Year    string                      `json:"year"`
	Entries []*domain.MonthlyCommission `json:"entries"`
}

// AverageResponse carrega um agregado de uma janela mensal
type AverageResponse struct {
	Month   string `json:"month"`
	Year    string `json:"year"`
	Value   string `json:"value"`
	Summary string `json:"summary"`
}

// windowParams lê os parâmetros mês e ano da query string. A validação do
// conteúdo fica a cargo do caso de uso.
func windowParams(r *http.Request) (string, string) {
	return r.URL.Query().Get("month"), r.URL.Query().Get("year")
}

// limitParam lê o parâmetro limit; zero delega o padrão ao caso de uso
func limitParam(r *http.Request) (uint64, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "invalid limit parameter")
	}
	return limit, nil
}

// writeReportError traduz erros de domínio para o contrato de erro da API
func writeReportError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context())

	switch {
	case errors.Is(err, domain.ErrInvalidMonth), errors.Is(err, domain.ErrInvalidYear):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, reporting.ErrNoSalesInWindow):
		apiErrors.WriteError(w, apiErrors.ErrNoData, err.Error(), nil)
	case errors.Is(err, repository.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, err.Error(), nil)
	default:
		logger.WithError(err).Error("reports: erro ao gerar relatório")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar relatório", nil)
	}
}

// GetTopOffices retorna os escritórios com mais vendas na janela mensal
func GetTopOffices(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, year := windowParams(r)
		limit, err := limitParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		items, err := service.TopOfficesBySalesCount(r.Context(), month, year, limit)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		summary := make([]string, 0, len(items))
		for _, item := range items {
			summary = append(summary, fmt.Sprintf(
				"%d. Office %d has sold %d houses in %s, %s and generated $%s in revenue.",
				item.Position, item.Office.ID, item.SalesCount, month, year,
				item.TotalRevenue.StringFixed(2),
			))
		}

		logger.WithFields(log.Fields{
			"month":   month,
			"year":    year,
			"offices": len(items),
		}).Info("reports: ranking de escritórios gerado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(OfficeRankingResponse{
			Month:   month,
			Year:    year,
			Items:   items,
			Summary: summary,
		}); err != nil {
			logger.WithError(err).Error("reports: erro ao codificar resposta")
		}
	})
}

// GetTopAgents retorna os corretores com mais vendas na janela mensal
func GetTopAgents(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, year := windowParams(r)
		limit, err := limitParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		items, err := service.TopAgentsBySalesCount(r.Context(), month, year, limit)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		summary := make([]string, 0, len(items))
		for _, item := range items {
			summary = append(summary, fmt.Sprintf(
				"%d. %s (%s), Houses sold: %d, Revenue generated: $%s in %s, %s.",
				item.Position, item.Agent.Name, item.Agent.Email, item.SalesCount,
				item.TotalRevenue.StringFixed(2), month, year,
			))
		}

		logger.WithFields(log.Fields{
			"month":  month,
			"year":   year,
			"agents": len(items),
		}).Info("reports: ranking de corretores gerado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(AgentRankingResponse{
			Month:   month,
			Year:    year,
			Items:   items,
			Summary: summary,
		}); err != nil {
			logger.WithError(err).Error("reports: erro ao codificar resposta")
		}
	})
}

// GetCommissionLedger lê as comissões já gravadas no razão para a janela
func GetCommissionLedger(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, year := windowParams(r)

		entries, err := service.LedgerByWindow(r.Context(), month, year)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(CommissionLedgerResponse{
			Month:   month,
			Year:    year,
			Entries: entries,
		}); err != nil {
			logger.WithError(err).Error("reports: erro ao codificar resposta")
		}
	})
}

// ComputeCommissions recalcula as comissões da janela e grava o razão.
// A operação é idempotente: repetir o cálculo sobrescreve os totais.
func ComputeCommissions(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, year := windowParams(r)

		totals, err := service.CommissionByAgent(r.Context(), month, year)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		summary := make(map[string]string, len(totals))
		for agentID, total := range totals {
			summary[strconv.Itoa(agentID)] = fmt.Sprintf(
				"Agent %d has earned $%s in commission for %s, %s.",
				agentID, total.StringFixed(2), month, year,
			)
		}

		logger.WithFields(log.Fields{
			"month":  month,
			"year":   year,
			"agents": len(totals),
		}).Info("reports: comissões calculadas e gravadas")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("reports: erro ao codificar resposta")
		}
	})
}

// GetAverageDaysOnMarket retorna a média de dias entre anúncio e venda
func GetAverageDaysOnMarket(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, year := windowParams(r)

		average, err := service.AverageDaysOnMarket(r.Context(), month, year)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		value := decimal.NewFromFloat(average).StringFixed(2)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(AverageResponse{
			Month: month,
			Year:  year,
			Value: value,
			Summary: fmt.Sprintf(
				"Average number of days on the market for %s, %s is %s days.",
				month, year, value,
			),
		}); err != nil {
			logger.WithError(err).Error("reports: erro ao codificar resposta")
		}
	})
}

// GetAverageSalePrice retorna o preço médio de venda na janela
func GetAverageSalePrice(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, year := windowParams(r)

		average, err := service.AverageSalePrice(r.Context(), month, year)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		value := average.StringFixed(2)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(AverageResponse{
			Month: month,
			Year:  year,
			Value: value,
			Summary: fmt.Sprintf(
				"Average selling price for %s, %s is $%s.",
				month, year, value,
			),
		}); err != nil {
			logger.WithError(err).Error("reports: erro ao codificar resposta")
		}
	})
}
