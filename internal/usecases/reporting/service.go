package reporting

import (
	"context"
	"database/sql"
	"sort"

	"github.com/hussenmi/real-estate-api/infrastructure/repository"
	"github.com/hussenmi/real-estate-api/internal/domain"
	"github.com/hussenmi/real-estate-api/pkg/log"
	"github.com/shopspring/decimal"
)

type Service struct {
	txRunner   TxRunner
	saleRepo   repository.SaleRepository
	officeRepo repository.OfficeRepository
	agentRepo  repository.AgentRepository
	ledgerRepo repository.MonthlyCommissionRepository
}

func NewService(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	officeRepo repository.OfficeRepository,
	agentRepo repository.AgentRepository,
	ledgerRepo repository.MonthlyCommissionRepository,
) Reporter {
	return &Service{
		txRunner:   txRunner,
		saleRepo:   saleRepo,
		officeRepo: officeRepo,
		agentRepo:  agentRepo,
		ledgerRepo: ledgerRepo,
	}
}

func (s *Service) TopOfficesBySalesCount(ctx context.Context, month, year string, limit uint64) ([]*domain.OfficeRankingItem, error) {
	window, err := domain.NewWindow(month, year)
	if err != nil {
		return nil, err
	}

	if limit == 0 {
		limit = DefaultTopLimit
	}

	counts, err := s.saleRepo.CountByOffice(ctx, window, limit)
	if err != nil {
		return nil, err
	}

	ranking := make([]*domain.OfficeRankingItem, 0, len(counts))
	for i, count := range counts {
		office, err := s.officeRepo.GetByID(ctx, count.OfficeID)
		if err != nil {
			return nil, err
		}

		ranking = append(ranking, &domain.OfficeRankingItem{
			Position:     i + 1,
			Office:       office,
			SalesCount:   count.SalesCount,
			TotalRevenue: count.TotalRevenue,
		})
	}

	return ranking, nil
}

func (s *Service) TopAgentsBySalesCount(ctx context.Context, month, year string, limit uint64) ([]*domain.AgentRankingItem, error) {
	window, err := domain.NewWindow(month, year)
	if err != nil {
		return nil, err
	}

	if limit == 0 {
		limit = DefaultTopLimit
	}

	counts, err := s.saleRepo.CountByAgent(ctx, window, limit)
	if err != nil {
		return nil, err
	}

	ranking := make([]*domain.AgentRankingItem, 0, len(counts))
	for i, count := range counts {
		agent, err := s.agentRepo.GetByID(ctx, count.AgentID)
		if err != nil {
			return nil, err
		}

		ranking = append(ranking, &domain.AgentRankingItem{
			Position:     i + 1,
			Agent:        agent,
			SalesCount:   count.SalesCount,
			TotalRevenue: count.TotalRevenue,
		})
	}

	return ranking, nil
}

// CommissionByAgent soma as comissões de cada corretor na janela e grava os
// totais no razão mensal. Leitura das vendas e escrita do razão compartilham
// uma transação: uma venda inserida concorrentemente não aparece pela metade
// no total gravado.
func (s *Service) CommissionByAgent(ctx context.Context, month, year string) (map[int]decimal.Decimal, error) {
	window, err := domain.NewWindow(month, year)
	if err != nil {
		return nil, err
	}

	totals := make(map[int]decimal.Decimal)

	err = s.txRunner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		sales, err := s.saleRepo.WithTx(tx).ListByWindow(ctx, window)
		if err != nil {
			return err
		}

		for _, sale := range sales {
			commission, err := sale.AgentCommission()
			if err != nil {
				return err
			}
			totals[sale.AgentID] = totals[sale.AgentID].Add(commission)
		}

		// Ordena os ids para que as escritas do razão sejam determinísticas
		agentIDs := make([]int, 0, len(totals))
		for agentID := range totals {
			agentIDs = append(agentIDs, agentID)
		}
		sort.Ints(agentIDs)

		ledger := s.ledgerRepo.WithTx(tx)
		for _, agentID := range agentIDs {
			entry := &domain.MonthlyCommission{
				AgentID:         agentID,
				Month:           window.Month(),
				Year:            window.Year(),
				TotalCommission: totals[agentID],
			}
			if err := ledger.Upsert(ctx, entry); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"period": window.Period(),
		"agents": len(totals),
	}).Info("Comissões mensais calculadas e gravadas no razão")

	return totals, nil
}

func (s *Service) AverageDaysOnMarket(ctx context.Context, month, year string) (float64, error) {
	window, err := domain.NewWindow(month, year)
	if err != nil {
		return 0, err
	}

	average, count, err := s.saleRepo.AverageDaysOnMarket(ctx, window)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, ErrNoSalesInWindow
	}

	return average, nil
}

func (s *Service) AverageSalePrice(ctx context.Context, month, year string) (decimal.Decimal, error) {
	window, err := domain.NewWindow(month, year)
	if err != nil {
		return decimal.Zero, err
	}

	average, count, err := s.saleRepo.AverageSalePrice(ctx, window)
	if err != nil {
		return decimal.Zero, err
	}
	if count == 0 {
		return decimal.Zero, ErrNoSalesInWindow
	}

	return average, nil
}

func (s *Service) LedgerByWindow(ctx context.Context, month, year string) ([]*domain.MonthlyCommission, error) {
	window, err := domain.NewWindow(month, year)
	if err != nil {
		return nil, err
	}

	return s.ledgerRepo.ListByWindow(ctx, window)
}
