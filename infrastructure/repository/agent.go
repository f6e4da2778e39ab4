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
	agentsTable      = "agents a"
	agentOfficeTable = "agent_office"
)

type AgentRepository interface {
	Create(ctx context.Context, agent *domain.Agent) (int, error)
	GetByID(ctx context.Context, id int) (*domain.Agent, error)
	List(ctx context.Context) ([]*domain.Agent, error)
	AddToOffice(ctx context.Context, agentID, officeID int) error
}

type agentRepository struct {
	conn postgres.Queryer
}

func NewAgentRepository(conn *postgres.Connection) AgentRepository {
	return &agentRepository{
		conn: conn,
	}
}

func (r *agentRepository) Create(ctx context.Context, agent *domain.Agent) (int, error) {
	if err := agent.Validate(); err != nil {
		return 0, err
	}

	query, args, err := squirrel.
		Insert("agents").
		Columns("name", "phone", "email").
		Values(agent.Name, agent.Phone, agent.Email).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao inserir corretor: %w", mapWriteError(err))
	}

	agent.ID = id
	return id, nil
}

func (r *agentRepository) GetByID(ctx context.Context, id int) (*domain.Agent, error) {
	query, args, err := squirrel.
		Select("a.id, a.name, a.phone, a.email, a.created_at, a.updated_at").
		From(agentsTable).
		Where(squirrel.Eq{"a.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	agent := &domain.Agent{}
	row := r.conn.QueryRow(ctx, query, args...)
	err = row.Scan(&agent.ID, &agent.Name, &agent.Phone, &agent.Email, &agent.CreatedAt, &agent.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao escanear corretor: %w", err)
	}

	return agent, nil
}

func (r *agentRepository) List(ctx context.Context) ([]*domain.Agent, error) {
	query, args, err := squirrel.
		Select("a.id, a.name, a.phone, a.email, a.created_at, a.updated_at").
		From(agentsTable).
		OrderBy("a.id ASC").
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

	agents := make([]*domain.Agent, 0)
	for rows.Next() {
		agent := &domain.Agent{}
		if err := rows.Scan(&agent.ID, &agent.Name, &agent.Phone, &agent.Email, &agent.CreatedAt, &agent.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear corretor: %w", err)
		}
		agents = append(agents, agent)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return agents, nil
}

// AddToOffice registra o vínculo N:N entre corretor e escritório.
// Vínculos repetidos são ignorados.
func (r *agentRepository) AddToOffice(ctx context.Context, agentID, officeID int) error {
	query, args, err := squirrel.
		Insert(agentOfficeTable).
		Columns("agent_id", "office_id").
		Values(agentID, officeID).
		Suffix("ON CONFLICT (agent_id, office_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao vincular corretor ao escritório: %w", mapWriteError(err))
	}

	return nil
}
