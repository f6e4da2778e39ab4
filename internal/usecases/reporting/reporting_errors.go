package reporting

import "errors"

// Erros específicos para o contexto de relatórios
var (
	// ErrNoSalesInWindow indica que a janela não contém vendas e a média
	// pedida é indefinida. Nunca resulta em divisão por zero ou NaN.
	ErrNoSalesInWindow = errors.New("no sales in the requested window")
)
