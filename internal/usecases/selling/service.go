package selling

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hussenmi/real-estate-api/infrastructure/repository"
	"github.com/hussenmi/real-estate-api/internal/domain"
	"github.com/hussenmi/real-estate-api/pkg/log"
	"github.com/shopspring/decimal"
)

// RecordSaleRequest carrega os dados mínimos para registrar uma venda.
// Vendedor, corretor e escritório vêm sempre do imóvel anunciado, o que
// garante a consistência desnormalizada entre a venda e o imóvel.
type RecordSaleRequest struct {
	HouseID    int             `json:"house_id"`
	BuyerID    int             `json:"buyer_id"`
	DateOfSale time.Time       `json:"date_of_sale"`
	SalePrice  decimal.Decimal `json:"sale_price"`
}

// SaleRecorder registra vendas de imóveis anunciados
type SaleRecorder interface {
	RecordSale(ctx context.Context, req RecordSaleRequest) (*domain.Sale, error)
}

// TxRunner é a fronteira transacional do registro de venda
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type Service struct {
	txRunner  TxRunner
	houseRepo repository.HouseRepository
	saleRepo  repository.SaleRepository
}

func NewService(
	txRunner TxRunner,
	houseRepo repository.HouseRepository,
	saleRepo repository.SaleRepository,
) SaleRecorder {
	return &Service{
		txRunner:  txRunner,
		houseRepo: houseRepo,
		saleRepo:  saleRepo,
	}
}

// RecordSale grava a venda e a transição Not Sold -> Sold do imóvel em uma
// única transação. A transição acontece no máximo uma vez; o caminho inverso
// não é suportado.
func (s *Service) RecordSale(ctx context.Context, req RecordSaleRequest) (*domain.Sale, error) {
	if req.SalePrice.IsNegative() {
		return nil, domain.ErrNegativeSalePrice
	}
	if req.BuyerID == 0 {
		return nil, ErrBuyerRequired
	}

	var sale *domain.Sale

	err := s.txRunner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		houses := s.houseRepo.WithTx(tx)

		house, err := houses.GetByID(ctx, req.HouseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrHouseNotFound
			}
			return err
		}

		if house.Status == domain.HouseStatusSold {
			return ErrHouseAlreadySold
		}
		if !house.Listed() {
			return ErrHouseUnlisted
		}
		if req.DateOfSale.Before(house.DateOfListing) {
			return ErrSaleBeforeListing
		}

		sale = &domain.Sale{
			HouseID:    house.ID,
			SellerID:   house.SellerID,
			BuyerID:    req.BuyerID,
			AgentID:    *house.AgentID,
			OfficeID:   *house.OfficeID,
			DateOfSale: req.DateOfSale,
			SalePrice:  req.SalePrice,
		}

		if _, err := s.saleRepo.WithTx(tx).Create(ctx, sale); err != nil {
			return err
		}

		house.Status = domain.HouseStatusSold
		house.BuyerID = &req.BuyerID

		return houses.Update(ctx, house)
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"sale_id":  sale.ID,
		"house_id": sale.HouseID,
		"agent_id": sale.AgentID,
	}).Info("Venda registrada")

	return sale, nil
}
