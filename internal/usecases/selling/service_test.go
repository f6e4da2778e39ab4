package selling

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hussenmi/real-estate-api/infrastructure/repository"
	"github.com/hussenmi/real-estate-api/infrastructure/repository/mocks"
	"github.com/hussenmi/real-estate-api/internal/domain"
)

// fakeTxRunner executa a função diretamente, sem banco de dados.
type fakeTxRunner struct{}

func (f *fakeTxRunner) RunInTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	return fn(nil)
}

func intPtr(i int) *int {
	return &i
}

func TestService_RecordSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHouseRepo := mocks.NewMockHouseRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)

	service := &Service{
		txRunner:  &fakeTxRunner{},
		houseRepo: mockHouseRepo,
		saleRepo:  mockSaleRepo,
	}

	listingDate := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	saleDate := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

	listedHouse := func() *domain.House {
		return &domain.House{
			ID:            10,
			ListingPrice:  decimal.NewFromInt(260000),
			DateOfListing: listingDate,
			Status:        domain.HouseStatusNotSold,
			SellerID:      3,
			AgentID:       intPtr(1),
			OfficeID:      intPtr(2),
		}
	}

	tests := []struct {
		name     string
		req      RecordSaleRequest
		setup    func()
		validate func(t *testing.T, sale *domain.Sale, err error)
	}{
		{
			name: "Venda registrada - imóvel muda para Sold e herda corretor e escritório",
			req: RecordSaleRequest{
				HouseID:    10,
				BuyerID:    7,
				DateOfSale: saleDate,
				SalePrice:  decimal.NewFromInt(250000),
			},
			setup: func() {
				mockHouseRepo.EXPECT().WithTx(gomock.Any()).Return(mockHouseRepo)
				mockHouseRepo.EXPECT().GetByID(gomock.Any(), 10).Return(listedHouse(), nil)

				mockSaleRepo.EXPECT().WithTx(gomock.Any()).Return(mockSaleRepo)
				mockSaleRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sale *domain.Sale) (int, error) {
						assert.Equal(t, 10, sale.HouseID)
						assert.Equal(t, 3, sale.SellerID)
						assert.Equal(t, 7, sale.BuyerID)
						assert.Equal(t, 1, sale.AgentID)
						assert.Equal(t, 2, sale.OfficeID)
						sale.ID = 99
						return 99, nil
					})

				mockHouseRepo.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, house *domain.House) error {
						assert.Equal(t, domain.HouseStatusSold, house.Status)
						assert.NotNil(t, house.BuyerID)
						assert.Equal(t, 7, *house.BuyerID)
						return nil
					})
			},
			validate: func(t *testing.T, sale *domain.Sale, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 99, sale.ID)
				assert.True(t, decimal.NewFromInt(250000).Equal(sale.SalePrice))
			},
		},
		{
			name: "Imóvel inexistente",
			req: RecordSaleRequest{
				HouseID:    404,
				BuyerID:    7,
				DateOfSale: saleDate,
				SalePrice:  decimal.NewFromInt(250000),
			},
			setup: func() {
				mockHouseRepo.EXPECT().WithTx(gomock.Any()).Return(mockHouseRepo)
				mockHouseRepo.EXPECT().GetByID(gomock.Any(), 404).Return(nil, repository.ErrNotFound)
			},
			validate: func(t *testing.T, sale *domain.Sale, err error) {
				assert.ErrorIs(t, err, ErrHouseNotFound)
				assert.Nil(t, sale)
			},
		},
		{
			name: "Imóvel já vendido",
			req: RecordSaleRequest{
				HouseID:    10,
				BuyerID:    7,
				DateOfSale: saleDate,
				SalePrice:  decimal.NewFromInt(250000),
			},
			setup: func() {
				house := listedHouse()
				house.Status = domain.HouseStatusSold
				house.BuyerID = intPtr(5)

				mockHouseRepo.EXPECT().WithTx(gomock.Any()).Return(mockHouseRepo)
				mockHouseRepo.EXPECT().GetByID(gomock.Any(), 10).Return(house, nil)
			},
			validate: func(t *testing.T, sale *domain.Sale, err error) {
				assert.ErrorIs(t, err, ErrHouseAlreadySold)
				assert.Nil(t, sale)
			},
		},
		{
			name: "Imóvel sem corretor atribuído",
			req: RecordSaleRequest{
				HouseID:    10,
				BuyerID:    7,
				DateOfSale: saleDate,
				SalePrice:  decimal.NewFromInt(250000),
			},
			setup: func() {
				house := listedHouse()
				house.AgentID = nil

				mockHouseRepo.EXPECT().WithTx(gomock.Any()).Return(mockHouseRepo)
				mockHouseRepo.EXPECT().GetByID(gomock.Any(), 10).Return(house, nil)
			},
			validate: func(t *testing.T, sale *domain.Sale, err error) {
				assert.ErrorIs(t, err, ErrHouseUnlisted)
				assert.Nil(t, sale)
			},
		},
		{
			name: "Venda anterior ao anúncio",
			req: RecordSaleRequest{
				HouseID:    10,
				BuyerID:    7,
				DateOfSale: listingDate.AddDate(0, 0, -1),
				SalePrice:  decimal.NewFromInt(250000),
			},
			setup: func() {
				mockHouseRepo.EXPECT().WithTx(gomock.Any()).Return(mockHouseRepo)
				mockHouseRepo.EXPECT().GetByID(gomock.Any(), 10).Return(listedHouse(), nil)
			},
			validate: func(t *testing.T, sale *domain.Sale, err error) {
				assert.ErrorIs(t, err, ErrSaleBeforeListing)
				assert.Nil(t, sale)
			},
		},
		{
			name: "Preço negativo - rejeitado antes de abrir a transação",
			req: RecordSaleRequest{
				HouseID:    10,
				BuyerID:    7,
				DateOfSale: saleDate,
				SalePrice:  decimal.NewFromInt(-1),
			},
			setup: func() {},
			validate: func(t *testing.T, sale *domain.Sale, err error) {
				assert.ErrorIs(t, err, domain.ErrNegativeSalePrice)
				assert.Nil(t, sale)
			},
		},
		{
			name: "Comprador ausente",
			req: RecordSaleRequest{
				HouseID:    10,
				DateOfSale: saleDate,
				SalePrice:  decimal.NewFromInt(250000),
			},
			setup: func() {},
			validate: func(t *testing.T, sale *domain.Sale, err error) {
				assert.ErrorIs(t, err, ErrBuyerRequired)
				assert.Nil(t, sale)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			sale, err := service.RecordSale(context.Background(), tt.req)

			tt.validate(t, sale, err)
		})
	}
}
