package reporting

import (
	"context"
	"database/sql"

	"github.com/hussenmi/real-estate-api/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultTopLimit é o tamanho padrão dos rankings mensais
const DefaultTopLimit uint64 = 5

// Reporter define as consultas analíticas sobre a janela mensal de vendas.
// Todas validam o mês ("01".."12") antes de tocar o banco e devolvem dados
// estruturados; formatação é responsabilidade da camada de apresentação.
type Reporter interface {
	// TopOfficesBySalesCount retorna os escritórios com mais vendas na
	// janela, limitado a limit posições
	TopOfficesBySalesCount(ctx context.Context, month, year string, limit uint64) ([]*domain.OfficeRankingItem, error)

	// TopAgentsBySalesCount retorna os corretores com mais vendas na janela
	TopAgentsBySalesCount(ctx context.Context, month, year string, limit uint64) ([]*domain.AgentRankingItem, error)

	// CommissionByAgent calcula o total de comissão por corretor na janela e
	// grava uma linha do razão mensal para cada corretor com ao menos uma
	// venda. Corretores sem vendas não geram linha.
	CommissionByAgent(ctx context.Context, month, year string) (map[int]decimal.Decimal, error)

	// AverageDaysOnMarket retorna a média de dias entre anúncio e venda dos
	// imóveis vendidos na janela. Falha com ErrNoSalesInWindow se a janela
	// estiver vazia.
	AverageDaysOnMarket(ctx context.Context, month, year string) (float64, error)

	// AverageSalePrice retorna o preço médio de venda da janela. Falha com
	// ErrNoSalesInWindow se a janela estiver vazia.
	AverageSalePrice(ctx context.Context, month, year string) (decimal.Decimal, error)

	// LedgerByWindow lista as linhas já gravadas do razão mensal da janela
	LedgerByWindow(ctx context.Context, month, year string) ([]*domain.MonthlyCommission, error)
}

// TxRunner é a fronteira transacional usada por CommissionByAgent para que
// leitura das vendas e escrita do razão aconteçam na mesma transação
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}
