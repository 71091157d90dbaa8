package reports_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/PuntoVenta-api/internal/application/reports"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDeriveProfitLoss(t *testing.T) {
	tests := []struct {
		name     string
		revenue  string
		cost     string
		expenses string
		gross    string
		net      string
		margin   string
	}{
		{
			name:    "utilidad sin gastos",
			revenue: "45", cost: "30", expenses: "0",
			gross: "15", net: "15", margin: "33.33",
		},
		{
			name:    "gastos reducen la utilidad neta",
			revenue: "1000", cost: "600", expenses: "250",
			gross: "400", net: "150", margin: "15",
		},
		{
			name:    "pérdida neta con margen negativo",
			revenue: "100", cost: "80", expenses: "50",
			gross: "20", net: "-30", margin: "-30",
		},
		{
			name:    "sin ventas el margen es cero",
			revenue: "0", cost: "0", expenses: "120",
			gross: "0", net: "-120", margin: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pl := reports.DeriveProfitLoss(d(tt.revenue), d(tt.cost), d(tt.expenses))

			assert.True(t, pl.Revenue.Equal(d(tt.revenue)))
			assert.True(t, pl.CostOfGoods.Equal(d(tt.cost)))
			assert.True(t, pl.GrossProfit.Equal(d(tt.gross)),
				"utilidad bruta esperada %s, obtenida %s", tt.gross, pl.GrossProfit)
			assert.True(t, pl.Expenses.Equal(d(tt.expenses)))
			assert.True(t, pl.NetProfit.Equal(d(tt.net)),
				"utilidad neta esperada %s, obtenida %s", tt.net, pl.NetProfit)
			assert.True(t, pl.ProfitMargin.Equal(d(tt.margin)),
				"margen esperado %s, obtenido %s", tt.margin, pl.ProfitMargin)
		})
	}
}

func TestDeriveProfitLoss_MargenRedondeaADosDecimales(t *testing.T) {
	// 1/3 de margen exacto: 33.333... debe quedar en 33.33.
	pl := reports.DeriveProfitLoss(d("3"), d("2"), d("0"))
	assert.Equal(t, "33.33", pl.ProfitMargin.String())
}
