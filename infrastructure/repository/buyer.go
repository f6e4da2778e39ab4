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
	buyersTable = "buyers b"
)

type BuyerRepository interface {
	Create(ctx context.Context, buyer *domain.Buyer) (int, error)
	GetByID(ctx context.Context, id int) (*domain.Buyer, error)
}

type buyerRepository struct {
	conn postgres.Queryer
}

func NewBuyerRepository(conn *postgres.Connection) BuyerRepository {
	return &buyerRepository{
		conn: conn,
	}
}

func (r *buyerRepository) Create(ctx context.Context, buyer *domain.Buyer) (int, error) {
	if err := buyer.Validate(); err != nil {
		return 0, err
	}

	query, args, err := squirrel.
		Insert("buyers").
		Columns("name", "phone", "email").
		Values(buyer.Name, buyer.Phone, buyer.Email).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao inserir comprador: %w", mapWriteError(err))
	}

	buyer.ID = id
	return id, nil
}

func (r *buyerRepository) GetByID(ctx context.Context, id int) (*domain.Buyer, error) {
	query, args, err := squirrel.
		Select("b.id, b.name, b.phone, b.email, b.created_at, b.updated_at").
		From(buyersTable).
		Where(squirrel.Eq{"b.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	buyer := &domain.Buyer{}
	row := r.conn.QueryRow(ctx, query, args...)
	err = row.Scan(&buyer.ID, &buyer.Name, &buyer.Phone, &buyer.Email, &buyer.CreatedAt, &buyer.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao escanear comprador: %w", err)
	}

	return buyer, nil
}
