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
	officesTable = "offices o"
)

type OfficeRepository interface {
	Create(ctx context.Context, office *domain.Office) (int, error)
	GetByID(ctx context.Context, id int) (*domain.Office, error)
	List(ctx context.Context) ([]*domain.Office, error)
}

type officeRepository struct {
	conn postgres.Queryer
}

func NewOfficeRepository(conn *postgres.Connection) OfficeRepository {
	return &officeRepository{
		conn: conn,
	}
}

func (r *officeRepository) Create(ctx context.Context, office *domain.Office) (int, error) {
	if err := office.Validate(); err != nil {
		return 0, err
	}

	query, args, err := squirrel.
		Insert("offices").
		Columns("phone", "email", "address").
		Values(office.Phone, office.Email, office.Address).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao inserir escritório: %w", mapWriteError(err))
	}

	office.ID = id
	return id, nil
}

func (r *officeRepository) GetByID(ctx context.Context, id int) (*domain.Office, error) {
	query, args, err := squirrel.
		Select("o.id, o.phone, o.email, o.address, o.created_at, o.updated_at").
		From(officesTable).
		Where(squirrel.Eq{"o.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	office := &domain.Office{}
	row := r.conn.QueryRow(ctx, query, args...)
	err = row.Scan(&office.ID, &office.Phone, &office.Email, &office.Address, &office.CreatedAt, &office.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao escanear escritório: %w", err)
	}

	return office, nil
}

func (r *officeRepository) List(ctx context.Context) ([]*domain.Office, error) {
	query, args, err := squirrel.
		Select("o.id, o.phone, o.email, o.address, o.created_at, o.updated_at").
		From(officesTable).
		OrderBy("o.id ASC").
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

	offices := make([]*domain.Office, 0)
	for rows.Next() {
		office := &domain.Office{}
		if err := rows.Scan(&office.ID, &office.Phone, &office.Email, &office.Address, &office.CreatedAt, &office.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear escritório: %w", err)
		}
		offices = append(offices, office)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return offices, nil
}
