package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentCommission(t *testing.T) {
	tests := []struct {
		name      string
		salePrice string
		expected  string
	}{
		{
			name:      "abaixo de 100 mil usa 10%",
			salePrice: "50000",
			expected:  "5000",
		},
		{
			name:      "logo abaixo do primeiro limite",
			salePrice: "99999.99",
			expected:  "9999.999",
		},
		{
			name:      "exatamente 100 mil cai na faixa de 7.5%",
			salePrice: "100000",
			expected:  "7500",
		},
		{
			name:      "exatamente 200 mil cai na faixa de 6%",
			salePrice: "200000",
			expected:  "12000",
		},
		{
			name:      "250 mil na faixa de 6%",
			salePrice: "250000",
			expected:  "15000",
		},
		{
			name:      "exatamente 500 mil cai na faixa de 5%",
			salePrice: "500000",
			expected:  "25000",
		},
		{
			name:      "exatamente 1 milhão cai na faixa de 4%",
			salePrice: "1000000",
			expected:  "40000",
		},
		{
			name:      "acima de 1 milhão mantém 4%",
			salePrice: "2500000",
			expected:  "100000",
		},
		{
			name:      "preço zero gera comissão zero",
			salePrice: "0",
			expected:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AgentCommission(decimal.RequireFromString(tt.salePrice))
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got),
				"expected %s, got %s", tt.expected, got)
		})
	}
}

func TestAgentCommission_NegativePrice(t *testing.T) {
	_, err := AgentCommission(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrNegativeSalePrice)
}

func TestAgentCommission_NeverNegative(t *testing.T) {
	prices := []string{"0", "0.01", "99999.99", "100000", "199999.99", "200000", "499999.99", "500000", "999999.99", "1000000", "98765432.10"}
	for _, p := range prices {
		commission, err := AgentCommission(decimal.RequireFromString(p))
		require.NoError(t, err)
		assert.False(t, commission.IsNegative(), "commission for %s should not be negative", p)
	}
}

func TestSale_AgentCommission(t *testing.T) {
	sale := &Sale{SalePrice: decimal.NewFromInt(200000)}
	commission, err := sale.AgentCommission()
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(12000).Equal(commission))
}
