package reporting

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hussenmi/real-estate-api/infrastructure/repository/mocks"
	"github.com/hussenmi/real-estate-api/internal/domain"
)

// fakeTxRunner executa a função diretamente, sem banco de dados.
type fakeTxRunner struct {
	err error
}

func (f *fakeTxRunner) RunInTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(nil)
}

func TestService_TopOfficesBySalesCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockOfficeRepo := mocks.NewMockOfficeRepository(ctrl)
	mockAgentRepo := mocks.NewMockAgentRepository(ctrl)
	mockLedgerRepo := mocks.NewMockMonthlyCommissionRepository(ctrl)

	service := &Service{
		txRunner:   &fakeTxRunner{},
		saleRepo:   mockSaleRepo,
		officeRepo: mockOfficeRepo,
		agentRepo:  mockAgentRepo,
		ledgerRepo: mockLedgerRepo,
	}

	window, err := domain.NewWindow("01", "2023")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		month    string
		year     string
		limit    uint64
		setup    func()
		validate func(t *testing.T, result []*domain.OfficeRankingItem, err error)
	}{
		{
			name:  "Escritório com uma venda - deve ocupar a primeira posição",
			month: "01",
			year:  "2023",
			limit: 5,
			setup: func() {
				mockSaleRepo.EXPECT().
					CountByOffice(gomock.Any(), window, uint64(5)).
					Return([]*domain.OfficeSalesCount{
						{OfficeID: 1, SalesCount: 1, TotalRevenue: decimal.NewFromInt(250000)},
					}, nil)

				mockOfficeRepo.EXPECT().
					GetByID(gomock.Any(), 1).
					Return(&domain.Office{ID: 1, Address: "Rua das Flores, 100"}, nil)
			},
			validate: func(t *testing.T, result []*domain.OfficeRankingItem, err error) {
				assert.NoError(t, err)
				assert.Len(t, result, 1)
				assert.Equal(t, 1, result[0].Position)
				assert.Equal(t, "Rua das Flores, 100", result[0].Office.Address)
				assert.Equal(t, 1, result[0].SalesCount)
				assert.True(t, decimal.NewFromInt(250000).Equal(result[0].TotalRevenue))
			},
		},
		{
			name:  "Vários escritórios - posições seguem a ordem do repositório",
			month: "01",
			year:  "2023",
			limit: 5,
			setup: func() {
				mockSaleRepo.EXPECT().
					CountByOffice(gomock.Any(), window, uint64(5)).
					Return([]*domain.OfficeSalesCount{
						{OfficeID: 3, SalesCount: 7, TotalRevenue: decimal.NewFromInt(900000)},
						{OfficeID: 1, SalesCount: 4, TotalRevenue: decimal.NewFromInt(400000)},
					}, nil)

				mockOfficeRepo.EXPECT().
					GetByID(gomock.Any(), 3).
					Return(&domain.Office{ID: 3, Address: "Av. Norte, 45"}, nil)
				mockOfficeRepo.EXPECT().
					GetByID(gomock.Any(), 1).
					Return(&domain.Office{ID: 1, Address: "Rua das Flores, 100"}, nil)
			},
			validate: func(t *testing.T, result []*domain.OfficeRankingItem, err error) {
				assert.NoError(t, err)
				assert.Len(t, result, 2)
				assert.Equal(t, 1, result[0].Position)
				assert.Equal(t, 3, result[0].Office.ID)
				assert.Equal(t, 2, result[1].Position)
				assert.Equal(t, 1, result[1].Office.ID)
			},
		},
		{
			name:  "Limite zero - deve usar o limite padrão de cinco",
			month: "01",
			year:  "2023",
			limit: 0,
			setup: func() {
				mockSaleRepo.EXPECT().
					CountByOffice(gomock.Any(), window, DefaultTopLimit).
					Return([]*domain.OfficeSalesCount{}, nil)
			},
			validate: func(t *testing.T, result []*domain.OfficeRankingItem, err error) {
				assert.NoError(t, err)
				assert.Empty(t, result)
			},
		},
		{
			name:  "Mês inválido - não deve consultar o repositório",
			month: "13",
			year:  "2023",
			limit: 5,
			setup: func() {},
			validate: func(t *testing.T, result []*domain.OfficeRankingItem, err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidMonth)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.TopOfficesBySalesCount(context.Background(), tt.month, tt.year, tt.limit)

			tt.validate(t, result, err)
		})
	}
}

func TestService_TopAgentsBySalesCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockOfficeRepo := mocks.NewMockOfficeRepository(ctrl)
	mockAgentRepo := mocks.NewMockAgentRepository(ctrl)
	mockLedgerRepo := mocks.NewMockMonthlyCommissionRepository(ctrl)

	service := &Service{
		txRunner:   &fakeTxRunner{},
		saleRepo:   mockSaleRepo,
		officeRepo: mockOfficeRepo,
		agentRepo:  mockAgentRepo,
		ledgerRepo: mockLedgerRepo,
	}

	window, err := domain.NewWindow("01", "2023")
	assert.NoError(t, err)

	t.Run("Corretores ordenados por número de vendas", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			CountByAgent(gomock.Any(), window, uint64(2)).
			Return([]*domain.AgentSalesCount{
				{AgentID: 2, SalesCount: 5, TotalRevenue: decimal.NewFromInt(750000)},
				{AgentID: 1, SalesCount: 1, TotalRevenue: decimal.NewFromInt(250000)},
			}, nil)

		mockAgentRepo.EXPECT().
			GetByID(gomock.Any(), 2).
			Return(&domain.Agent{ID: 2, Name: "Maria Souza"}, nil)
		mockAgentRepo.EXPECT().
			GetByID(gomock.Any(), 1).
			Return(&domain.Agent{ID: 1, Name: "João Silva"}, nil)

		result, err := service.TopAgentsBySalesCount(context.Background(), "01", "2023", 2)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, 1, result[0].Position)
		assert.Equal(t, "Maria Souza", result[0].Agent.Name)
		assert.Equal(t, 5, result[0].SalesCount)
		assert.Equal(t, 2, result[1].Position)
		assert.Equal(t, "João Silva", result[1].Agent.Name)
	})

	t.Run("Ano inválido - não deve consultar o repositório", func(t *testing.T) {
		result, err := service.TopAgentsBySalesCount(context.Background(), "01", "23", 5)

		assert.ErrorIs(t, err, domain.ErrInvalidYear)
		assert.Nil(t, result)
	})

	t.Run("Erro do repositório é propagado", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			CountByAgent(gomock.Any(), window, uint64(5)).
			Return(nil, assert.AnError)

		result, err := service.TopAgentsBySalesCount(context.Background(), "01", "2023", 5)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestService_CommissionByAgent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockLedgerRepo := mocks.NewMockMonthlyCommissionRepository(ctrl)

	service := &Service{
		txRunner:   &fakeTxRunner{},
		saleRepo:   mockSaleRepo,
		ledgerRepo: mockLedgerRepo,
	}

	window, err := domain.NewWindow("01", "2023")
	assert.NoError(t, err)

	t.Run("Soma as comissões por corretor e grava o razão", func(t *testing.T) {
		// Corretor 1: 250.000 (faixa de 6%) = 15.000
		// Corretor 2: 90.000 (faixa de 10%) + 150.000 (faixa de 7,5%) = 9.000 + 11.250 = 20.250
		sales := []*domain.Sale{
			{ID: 1, AgentID: 1, SalePrice: decimal.NewFromInt(250000), DateOfSale: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
			{ID: 2, AgentID: 2, SalePrice: decimal.NewFromInt(90000), DateOfSale: time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)},
			{ID: 3, AgentID: 2, SalePrice: decimal.NewFromInt(150000), DateOfSale: time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC)},
		}

		mockSaleRepo.EXPECT().WithTx(gomock.Any()).Return(mockSaleRepo)
		mockSaleRepo.EXPECT().ListByWindow(gomock.Any(), window).Return(sales, nil)

		mockLedgerRepo.EXPECT().WithTx(gomock.Any()).Return(mockLedgerRepo)

		// Os ids são ordenados antes da escrita: corretor 1 primeiro
		gomock.InOrder(
			mockLedgerRepo.EXPECT().
				Upsert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, entry *domain.MonthlyCommission) error {
					assert.Equal(t, 1, entry.AgentID)
					assert.Equal(t, 1, entry.Month)
					assert.Equal(t, 2023, entry.Year)
					assert.True(t, decimal.NewFromInt(15000).Equal(entry.TotalCommission))
					return nil
				}),
			mockLedgerRepo.EXPECT().
				Upsert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, entry *domain.MonthlyCommission) error {
					assert.Equal(t, 2, entry.AgentID)
					assert.True(t, decimal.NewFromInt(20250).Equal(entry.TotalCommission))
					return nil
				}),
		)

		totals, err := service.CommissionByAgent(context.Background(), "01", "2023")

		assert.NoError(t, err)
		assert.Len(t, totals, 2)
		assert.True(t, decimal.NewFromInt(15000).Equal(totals[1]))
		assert.True(t, decimal.NewFromInt(20250).Equal(totals[2]))
	})

	t.Run("Janela sem vendas - não grava nada no razão", func(t *testing.T) {
		mockSaleRepo.EXPECT().WithTx(gomock.Any()).Return(mockSaleRepo)
		mockSaleRepo.EXPECT().ListByWindow(gomock.Any(), window).Return([]*domain.Sale{}, nil)
		mockLedgerRepo.EXPECT().WithTx(gomock.Any()).Return(mockLedgerRepo)

		totals, err := service.CommissionByAgent(context.Background(), "01", "2023")

		assert.NoError(t, err)
		assert.Empty(t, totals)
	})

	t.Run("Mês inválido - não abre transação", func(t *testing.T) {
		totals, err := service.CommissionByAgent(context.Background(), "00", "2023")

		assert.ErrorIs(t, err, domain.ErrInvalidMonth)
		assert.Nil(t, totals)
	})

	t.Run("Falha na transação é propagada", func(t *testing.T) {
		failing := &Service{
			txRunner:   &fakeTxRunner{err: assert.AnError},
			saleRepo:   mockSaleRepo,
			ledgerRepo: mockLedgerRepo,
		}

		totals, err := failing.CommissionByAgent(context.Background(), "01", "2023")

		assert.Error(t, err)
		assert.Nil(t, totals)
	})
}

func TestService_AverageDaysOnMarket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := &Service{txRunner: &fakeTxRunner{}, saleRepo: mockSaleRepo}

	window, err := domain.NewWindow("01", "2023")
	assert.NoError(t, err)

	t.Run("Venda catorze dias após o anúncio", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			AverageDaysOnMarket(gomock.Any(), window).
			Return(14.0, 1, nil)

		average, err := service.AverageDaysOnMarket(context.Background(), "01", "2023")

		assert.NoError(t, err)
		assert.Equal(t, 14.0, average)
	})

	t.Run("Janela sem vendas retorna erro de dados ausentes", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			AverageDaysOnMarket(gomock.Any(), window).
			Return(0.0, 0, nil)

		_, err := service.AverageDaysOnMarket(context.Background(), "01", "2023")

		assert.ErrorIs(t, err, ErrNoSalesInWindow)
	})

	t.Run("Mês inválido", func(t *testing.T) {
		_, err := service.AverageDaysOnMarket(context.Background(), "Jan", "2023")

		assert.ErrorIs(t, err, domain.ErrInvalidMonth)
	})
}

func TestService_AverageSalePrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := &Service{txRunner: &fakeTxRunner{}, saleRepo: mockSaleRepo}

	window, err := domain.NewWindow("01", "2023")
	assert.NoError(t, err)

	t.Run("Média de uma única venda é o próprio preço", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			AverageSalePrice(gomock.Any(), window).
			Return(decimal.NewFromInt(250000), 1, nil)

		average, err := service.AverageSalePrice(context.Background(), "01", "2023")

		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(250000).Equal(average))
	})

	t.Run("Janela sem vendas retorna erro de dados ausentes", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			AverageSalePrice(gomock.Any(), window).
			Return(decimal.Zero, 0, nil)

		_, err := service.AverageSalePrice(context.Background(), "01", "2023")

		assert.ErrorIs(t, err, ErrNoSalesInWindow)
	})
}

func TestService_LedgerByWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedgerRepo := mocks.NewMockMonthlyCommissionRepository(ctrl)
	service := &Service{txRunner: &fakeTxRunner{}, ledgerRepo: mockLedgerRepo}

	window, err := domain.NewWindow("02", "2023")
	assert.NoError(t, err)

	t.Run("Retorna as entradas gravadas para a janela", func(t *testing.T) {
		mockLedgerRepo.EXPECT().
			ListByWindow(gomock.Any(), window).
			Return([]*domain.MonthlyCommission{
				{AgentID: 1, Month: 2, Year: 2023, TotalCommission: decimal.NewFromInt(15000)},
			}, nil)

		entries, err := service.LedgerByWindow(context.Background(), "02", "2023")

		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, 1, entries[0].AgentID)
	})

	t.Run("Ano inválido", func(t *testing.T) {
		entries, err := service.LedgerByWindow(context.Background(), "02", "ano")

		assert.ErrorIs(t, err, domain.ErrInvalidYear)
		assert.Nil(t, entries)
	})
}
