package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/hussenmi/real-estate-api/internal/api/handler/router"
	"github.com/hussenmi/real-estate-api/internal/usecases/reporting"
	"github.com/hussenmi/real-estate-api/internal/usecases/selling"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/top-offices",
			Method:  http.MethodGet,
			Handler: GetTopOffices(service),
		},
		{
			Path:    "/v1/reports/top-agents",
			Method:  http.MethodGet,
			Handler: GetTopAgents(service),
		},
		{
			Path:    "/v1/reports/commissions",
			Method:  http.MethodGet,
			Handler: GetCommissionLedger(service),
		},
		{
			Path:    "/v1/reports/commissions",
			Method:  http.MethodPost,
			Handler: ComputeCommissions(service),
		},
		{
			Path:    "/v1/reports/average-days-on-market",
			Method:  http.MethodGet,
			Handler: GetAverageDaysOnMarket(service),
		},
		{
			Path:    "/v1/reports/average-sale-price",
			Method:  http.MethodGet,
			Handler: GetAverageSalePrice(service),
		},
	}
}

func Sales(service selling.SaleRecorder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: RecordSale(service),
		},
	}
}
