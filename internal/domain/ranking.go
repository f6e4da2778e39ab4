package domain

import "github.com/shopspring/decimal"

// OfficeSalesCount é a linha bruta da agregação de vendas por escritório
type OfficeSalesCount struct {
	OfficeID     int             `json:"office_id"`
	SalesCount   int             `json:"sales_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// AgentSalesCount é a linha bruta da agregação de vendas por corretor
type AgentSalesCount struct {
	AgentID      int             `json:"agent_id"`
	SalesCount   int             `json:"sales_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// OfficeRankingItem é uma posição do ranking de escritórios por número de
// vendas na janela. A receita é informativa: a ordenação é sempre pela
// contagem, com desempate determinístico pelo id.
type OfficeRankingItem struct {
	Position     int             `json:"position"`
	Office       *Office         `json:"office"`
	SalesCount   int             `json:"sales_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// AgentRankingItem é uma posição do ranking de corretores por número de vendas
type AgentRankingItem struct {
	Position     int             `json:"position"`
	Agent        *Agent          `json:"agent"`
	SalesCount   int             `json:"sales_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
