// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HouseStatus representa o estado de venda de um imóvel
type HouseStatus string

const (
	HouseStatusNotSold HouseStatus = "Not Sold"
	HouseStatusSold    HouseStatus = "Sold"
)

type House struct {
	ID            int             `json:"id"`
	NumBedrooms   int             `json:"num_bedrooms"`
	NumBathrooms  int             `json:"num_bathrooms"`
	ListingPrice  decimal.Decimal `json:"listing_price"`
	ZipCode       string          `json:"zip_code"`
	DateOfListing time.Time       `json:"date_of_listing"`
	Status        HouseStatus     `json:"status"`
	SellerID      int             `json:"seller_id"`
	BuyerID       *int            `json:"buyer_id"`  // Preenchido apenas após a venda
	AgentID       *int            `json:"agent_id"`  // Corretor responsável pelo anúncio
	OfficeID      *int            `json:"office_id"` // Escritório responsável pelo anúncio
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Listed indica se o imóvel possui corretor e escritório atribuídos,
// pré-requisito para registrar uma venda
func (h *House) Listed() bool {
	return h.AgentID != nil && h.OfficeID != nil
}
