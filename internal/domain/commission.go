package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeSalePrice = errors.New("sale price must not be negative")

// Faixas de comissão aplicadas sobre o valor integral da venda.
// A primeira faixa cujo limite superior for maior que o preço vence;
// a última (limite aberto) cobre tudo acima de 1.000.000.
var commissionBrackets = []struct {
	upTo decimal.Decimal // limite superior exclusivo
	rate decimal.Decimal
}{
	{decimal.NewFromInt(100_000), decimal.RequireFromString("0.10")},
	{decimal.NewFromInt(200_000), decimal.RequireFromString("0.075")},
	{decimal.NewFromInt(500_000), decimal.RequireFromString("0.06")},
	{decimal.NewFromInt(1_000_000), decimal.RequireFromString("0.05")},
}

var topBracketRate = decimal.RequireFromString("0.04")

// AgentCommission calcula a comissão do corretor a partir do preço de venda.
// A taxa da faixa incide sobre o valor inteiro, não apenas sobre o excedente.
// Nenhum arredondamento é feito aqui; isso é responsabilidade da camada de
// apresentação.
func AgentCommission(salePrice decimal.Decimal) (decimal.Decimal, error) {
	if salePrice.IsNegative() {
		return decimal.Zero, ErrNegativeSalePrice
	}

	for _, bracket := range commissionBrackets {
		if salePrice.LessThan(bracket.upTo) {
			return salePrice.Mul(bracket.rate), nil
		}
	}

	return salePrice.Mul(topBracketRate), nil
}
