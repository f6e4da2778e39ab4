package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID         int             `json:"id"`
	HouseID    int             `json:"house_id"`
	SellerID   int             `json:"seller_id"`
	BuyerID    int             `json:"buyer_id"`
	AgentID    int             `json:"agent_id"`
	OfficeID   int             `json:"office_id"`
	DateOfSale time.Time       `json:"date_of_sale"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AgentCommission calcula a comissão do corretor para esta venda.
// É sempre derivada do preço de venda, nunca armazenada na entidade.
func (s *Sale) AgentCommission() (decimal.Decimal, error) {
	return AgentCommission(s.SalePrice)
}
