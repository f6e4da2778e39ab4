package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyCommission é uma linha durável do razão mensal de comissões:
// o total que um corretor ganhou em um mês/ano específico.
type MonthlyCommission struct {
	ID              int             `json:"id"`
	AgentID         int             `json:"agent_id"`
	Month           int             `json:"month"` // 1..12
	Year            int             `json:"year"`
	TotalCommission decimal.Decimal `json:"total_commission"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
