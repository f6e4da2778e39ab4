package selling

import "errors"

// Erros específicos para o registro de vendas
var (
	ErrHouseNotFound     = errors.New("house not found")
	ErrHouseAlreadySold  = errors.New("house has already been sold")
	ErrHouseUnlisted     = errors.New("house has no agent or office assigned")
	ErrSaleBeforeListing = errors.New("sale date precedes the listing date")
	ErrBuyerRequired     = errors.New("buyer is required")
)
