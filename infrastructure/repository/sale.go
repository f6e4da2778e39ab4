package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/hussenmi/real-estate-api/infrastructure/database/postgres"
	"github.com/hussenmi/real-estate-api/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	salesTable   = "sales s"
	salesColumns = "s.id, s.house_id, s.seller_id, s.buyer_id, s.agent_id, s.office_id, s.date_of_sale, s.sale_price, s.created_at"
)

type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) (int, error)
	GetByID(ctx context.Context, id int) (*domain.Sale, error)
	ListByWindow(ctx context.Context, window domain.Window) ([]*domain.Sale, error)

	// CountByOffice agrupa as vendas da janela por escritório, ordenadas por
	// número de vendas (desc) com desempate determinístico pelo id
	CountByOffice(ctx context.Context, window domain.Window, limit uint64) ([]*domain.OfficeSalesCount, error)

	// CountByAgent agrupa as vendas da janela por corretor, mesma ordenação
	CountByAgent(ctx context.Context, window domain.Window, limit uint64) ([]*domain.AgentSalesCount, error)

	// AverageSalePrice retorna a média de preço e a quantidade de vendas da
	// janela. Com zero vendas a média retornada é zero e cabe ao chamador
	// tratar a ausência de dados.
	AverageSalePrice(ctx context.Context, window domain.Window) (decimal.Decimal, int, error)

	// AverageDaysOnMarket retorna a média de dias entre anúncio e venda dos
	// imóveis vendidos na janela, e a quantidade de vendas consideradas
	AverageDaysOnMarket(ctx context.Context, window domain.Window) (float64, int, error)

	// WithTx retorna uma cópia do repositório vinculada à transação
	WithTx(tx *sql.Tx) SaleRepository
}

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) WithTx(tx *sql.Tx) SaleRepository {
	return &saleRepository{conn: postgres.FromTx(tx)}
}

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) (int, error) {
	query, args, err := squirrel.
		Insert("sales").
		Columns("house_id", "seller_id", "buyer_id", "agent_id", "office_id", "date_of_sale", "sale_price").
		Values(
			sale.HouseID,
			sale.SellerID,
			sale.BuyerID,
			sale.AgentID,
			sale.OfficeID,
			sale.DateOfSale.Format(time.DateOnly),
			sale.SalePrice,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao inserir venda: %w", mapWriteError(err))
	}

	sale.ID = id
	return id, nil
}

func (r *saleRepository) GetByID(ctx context.Context, id int) (*domain.Sale, error) {
	query, args, err := squirrel.
		Select(salesColumns).
		From(salesTable).
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sale := &domain.Sale{}
	row := r.conn.QueryRow(ctx, query, args...)
	err = row.Scan(&sale.ID, &sale.HouseID, &sale.SellerID, &sale.BuyerID, &sale.AgentID, &sale.OfficeID, &sale.DateOfSale, &sale.SalePrice, &sale.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao escanear venda: %w", err)
	}

	return sale, nil
}

func (r *saleRepository) ListByWindow(ctx context.Context, window domain.Window) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select(salesColumns).
		From(salesTable).
		Where(windowFilter(window)).
		OrderBy("s.id ASC").
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

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale := &domain.Sale{}
		if err := rows.Scan(&sale.ID, &sale.HouseID, &sale.SellerID, &sale.BuyerID, &sale.AgentID, &sale.OfficeID, &sale.DateOfSale, &sale.SalePrice, &sale.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) CountByOffice(ctx context.Context, window domain.Window, limit uint64) ([]*domain.OfficeSalesCount, error) {
	query, args, err := squirrel.
		Select(
			"s.office_id",
			"COUNT(s.id) AS total_num_sales",
			"SUM(s.sale_price) AS total_revenue",
		).
		From(salesTable).
		Where(windowFilter(window)).
		GroupBy("s.office_id").
		OrderBy("total_num_sales DESC", "s.office_id ASC").
		Limit(limit).
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

	counts := make([]*domain.OfficeSalesCount, 0)
	for rows.Next() {
		count := &domain.OfficeSalesCount{}
		if err := rows.Scan(&count.OfficeID, &count.SalesCount, &count.TotalRevenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear agregado por escritório: %w", err)
		}
		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

func (r *saleRepository) CountByAgent(ctx context.Context, window domain.Window, limit uint64) ([]*domain.AgentSalesCount, error) {
	query, args, err := squirrel.
		Select(
			"s.agent_id",
			"COUNT(s.id) AS total_num_sales",
			"SUM(s.sale_price) AS total_revenue",
		).
		From(salesTable).
		Where(windowFilter(window)).
		GroupBy("s.agent_id").
		OrderBy("total_num_sales DESC", "s.agent_id ASC").
		Limit(limit).
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

	counts := make([]*domain.AgentSalesCount, 0)
	for rows.Next() {
		count := &domain.AgentSalesCount{}
		if err := rows.Scan(&count.AgentID, &count.SalesCount, &count.TotalRevenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear agregado por corretor: %w", err)
		}
		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

func (r *saleRepository) AverageSalePrice(ctx context.Context, window domain.Window) (decimal.Decimal, int, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(s.id)",
			"COALESCE(AVG(s.sale_price), 0)",
		).
		From(salesTable).
		Where(windowFilter(window)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	var average decimal.Decimal
	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(&count, &average); err != nil {
		return decimal.Zero, 0, fmt.Errorf("erro ao escanear média de preço: %w", err)
	}

	return average, count, nil
}

func (r *saleRepository) AverageDaysOnMarket(ctx context.Context, window domain.Window) (float64, int, error) {
	// date - date resulta em dias inteiros no PostgreSQL
	query, args, err := squirrel.
		Select(
			"COUNT(s.id)",
			"COALESCE(AVG(s.date_of_sale - h.date_of_listing), 0)",
		).
		From(salesTable).
		Join("houses h ON h.id = s.house_id").
		Where(windowFilter(window)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	var average float64
	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(&count, &average); err != nil {
		return 0, 0, fmt.Errorf("erro ao escanear média de dias no mercado: %w", err)
	}

	return average, count, nil
}

// windowFilter restringe date_of_sale ao intervalo [início, fim) da janela
func windowFilter(window domain.Window) squirrel.Sqlizer {
	start, end := window.Bounds()
	return squirrel.And{
		squirrel.GtOrEq{"s.date_of_sale": start.Format(time.DateOnly)},
		squirrel.Lt{"s.date_of_sale": end.Format(time.DateOnly)},
	}
}
