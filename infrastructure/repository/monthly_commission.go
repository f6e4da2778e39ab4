package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/hussenmi/real-estate-api/infrastructure/database/postgres"
	"github.com/hussenmi/real-estate-api/internal/domain"
)

const (
	// O razão mensal de comissões vive na tabela monthly_sales
	monthlyCommissionsTable = "monthly_sales mc"
)

type MonthlyCommissionRepository interface {
	// Upsert grava o total de comissão de um corretor para o mês/ano.
	// Reexecuções da mesma janela substituem o total em vez de duplicar.
	Upsert(ctx context.Context, commission *domain.MonthlyCommission) error

	ListByWindow(ctx context.Context, window domain.Window) ([]*domain.MonthlyCommission, error)

	// WithTx retorna uma cópia do repositório vinculada à transação
	WithTx(tx *sql.Tx) MonthlyCommissionRepository
}

type monthlyCommissionRepository struct {
	conn postgres.Queryer
}

func NewMonthlyCommissionRepository(conn *postgres.Connection) MonthlyCommissionRepository {
	return &monthlyCommissionRepository{
		conn: conn,
	}
}

func (r *monthlyCommissionRepository) WithTx(tx *sql.Tx) MonthlyCommissionRepository {
	return &monthlyCommissionRepository{conn: postgres.FromTx(tx)}
}

func (r *monthlyCommissionRepository) Upsert(ctx context.Context, commission *domain.MonthlyCommission) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("monthly_sales").
		Columns("agent_id", "month", "year", "total_commission").
		Values(
			commission.AgentID,
			commission.Month,
			commission.Year,
			commission.TotalCommission,
		).
		Suffix(`
			ON CONFLICT (agent_id, month, year) DO UPDATE SET
				total_commission = EXCLUDED.total_commission,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar comissão mensal: %w", mapWriteError(err))
	}

	return nil
}

func (r *monthlyCommissionRepository) ListByWindow(ctx context.Context, window domain.Window) ([]*domain.MonthlyCommission, error) {
	query, args, err := squirrel.
		Select("mc.id, mc.agent_id, mc.month, mc.year, mc.total_commission, mc.created_at, mc.updated_at").
		From(monthlyCommissionsTable).
		Where(squirrel.Eq{"mc.month": window.Month(), "mc.year": window.Year()}).
		OrderBy("mc.agent_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	commissions := make([]*domain.MonthlyCommission, 0)
	for rows.Next() {
		commission := &domain.MonthlyCommission{}
		err := rows.Scan(
			&commission.ID,
			&commission.AgentID,
			&commission.Month,
			&commission.Year,
			&commission.TotalCommission,
			&commission.CreatedAt,
			&commission.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear comissão mensal: %w", err)
		}
		commissions = append(commissions, commission)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return commissions, nil
}
