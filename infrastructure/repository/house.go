package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/hussenmi/real-estate-api/infrastructure/database/postgres"
	"github.com/hussenmi/real-estate-api/internal/domain"
)

const (
	housesTable   = "houses h"
	housesColumns = "h.id, h.num_bedrooms, h.num_bathrooms, h.listing_price, h.zip_code, h.date_of_listing, h.status, h.seller_id, h.buyer_id, h.agent_id, h.office_id, h.created_at, h.updated_at"
)

type HouseRepository interface {
	Create(ctx context.Context, house *domain.House) (int, error)
	GetByID(ctx context.Context, id int) (*domain.House, error)
	Update(ctx context.Context, house *domain.House) error

	// WithTx retorna uma cópia do repositório vinculada à transação
	WithTx(tx *sql.Tx) HouseRepository
}

type houseRepository struct {
	conn postgres.Queryer
}

func NewHouseRepository(conn *postgres.Connection) HouseRepository {
	return &houseRepository{
		conn: conn,
	}
}

func (r *houseRepository) WithTx(tx *sql.Tx) HouseRepository {
	return &houseRepository{conn: postgres.FromTx(tx)}
}

func (r *houseRepository) Create(ctx context.Context, house *domain.House) (int, error) {
	if house.Status == "" {
		house.Status = domain.HouseStatusNotSold
	}

	query, args, err := squirrel.
		Insert("houses").
		Columns("num_bedrooms", "num_bathrooms", "listing_price", "zip_code", "date_of_listing", "status", "seller_id", "buyer_id", "agent_id", "office_id").
		Values(
			house.NumBedrooms,
			house.NumBathrooms,
			house.ListingPrice,
			house.ZipCode,
			house.DateOfListing.Format(time.DateOnly),
			house.Status,
			house.SellerID,
			house.BuyerID,
			house.AgentID,
			house.OfficeID,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao inserir imóvel: %w", mapWriteError(err))
	}

	house.ID = id
	return id, nil
}

func (r *houseRepository) GetByID(ctx context.Context, id int) (*domain.House, error) {
	query, args, err := squirrel.
		Select(housesColumns).
		From(housesTable).
		Where(squirrel.Eq{"h.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	house, err := scanHouseRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao escanear imóvel: %w", err)
	}

	return house, nil
}

// Update persiste as mutações permitidas de um imóvel: transição de status,
// comprador e responsáveis pelo anúncio. Os demais campos são imutáveis após
// a criação.
func (r *houseRepository) Update(ctx context.Context, house *domain.House) error {
	query, args, err := squirrel.
		Update("houses").
		Set("status", house.Status).
		Set("buyer_id", house.BuyerID).
		Set("agent_id", house.AgentID).
		Set("office_id", house.OfficeID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": house.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar imóvel: %w", mapWriteError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanHouseRow(row *sql.Row) (*domain.House, error) {
	house := &domain.House{}
	err := row.Scan(
		&house.ID,
		&house.NumBedrooms,
		&house.NumBathrooms,
		&house.ListingPrice,
		&house.ZipCode,
		&house.DateOfListing,
		&house.Status,
		&house.SellerID,
		&house.BuyerID,
		&house.AgentID,
		&house.OfficeID,
		&house.CreatedAt,
		&house.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return house, nil
}
