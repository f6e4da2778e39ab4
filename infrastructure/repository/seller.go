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
	sellersTable = "sellers sl"
)

type SellerRepository interface {
	Create(ctx context.Context, seller *domain.Seller) (int, error)
	GetByID(ctx context.Context, id int) (*domain.Seller, error)
}

type sellerRepository struct {
	conn postgres.Queryer
}

func NewSellerRepository(conn *postgres.Connection) SellerRepository {
	return &sellerRepository{
		conn: conn,
	}
}

func (r *sellerRepository) Create(ctx context.Context, seller *domain.Seller) (int, error) {
	if err := seller.Validate(); err != nil {
		return 0, err
	}

	query, args, err := squirrel.
		Insert("sellers").
		Columns("name", "phone", "email").
		Values(seller.Name, seller.Phone, seller.Email).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao inserir vendedor: %w", mapWriteError(err))
	}

	seller.ID = id
	return id, nil
}

func (r *sellerRepository) GetByID(ctx context.Context, id int) (*domain.Seller, error) {
	query, args, err := squirrel.
		Select("sl.id, sl.name, sl.phone, sl.email, sl.created_at, sl.updated_at").
		From(sellersTable).
		Where(squirrel.Eq{"sl.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	seller := &domain.Seller{}
	row := r.conn.QueryRow(ctx, query, args...)
	err = row.Scan(&seller.ID, &seller.Name, &seller.Phone, &seller.Email, &seller.CreatedAt, &seller.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao escanear vendedor: %w", err)
	}

	return seller, nil
}
