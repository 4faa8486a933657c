package components

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

func chartReport() *domain.Report {
	r := &domain.Report{Title: "Growth"}
	for i := 0; i < 5; i++ {
		r.Series = append(r.Series, domain.SeriesPoint{
			Period: i,
			Label:  "Year " + decimal.NewFromInt(int64(i)).String(),
			Values: []domain.Field{
				domain.Currency("balance", "Balance", decimal.NewFromInt(int64(1000*(i+1)))),
				domain.Currency("interest", "Interest", decimal.NewFromInt(int64(10*i))),
			},
		})
	}
	return r
}

func TestChartFromReport(t *testing.T) {
	c := ChartFromReport(chartReport(), "balance", "missing", "interest")
	assert.Len(t, c.Series, 2)
	assert.Equal(t, "Balance", c.Series[0].Name)
	assert.Equal(t, []float64{1000, 2000, 3000, 4000, 5000}, c.Series[0].Points)
	assert.Len(t, c.Labels, 5)

	out := c.WithSize(50, 8).Render()
	assert.Contains(t, out, "Growth")
	assert.Contains(t, out, "Year 0")
	assert.Contains(t, out, "Year 4")
	assert.Contains(t, out, "Interest")
}

func TestASCIIChart_Degenerate(t *testing.T) {
	assert.Contains(t, NewASCIIChart("x").Render(), "No projection")

	flat := NewASCIIChart("").AddSeries("flat", []float64{5, 5, 5})
	assert.NotEmpty(t, flat.Render())

	single := NewASCIIChart("").AddSeries("one", []float64{42}).WithSize(5, 1)
	assert.NotEmpty(t, single.Render())

	assert.Empty(t, ChartFromReport(&domain.Report{}, "balance").Series)
}

func TestChartValue(t *testing.T) {
	assert.Equal(t, "$1.5M", chartValue(1_500_000))
	assert.Equal(t, "$25K", chartValue(25_000))
	assert.Equal(t, "$-12", chartValue(-12))
}

func TestMetricCards(t *testing.T) {
	r := &domain.Report{Fields: []domain.Field{
		domain.Currency("a", "Alpha", decimal.NewFromInt(1234)),
		domain.Currency("b", "Beta", decimal.NewFromInt(-5)),
	}}
	cards := HeadlineCards(r, "b", "missing", "a")
	assert.Len(t, cards, 2)
	assert.Equal(t, "Beta", cards[0].Label)
	assert.True(t, cards[0].Negative)
	assert.Equal(t, "$1,234.00", cards[1].Value)
	assert.False(t, cards[1].Negative)

	assert.Contains(t, cards[1].RenderCompact(), "$1,234.00")
	assert.Contains(t, MetricGrid(cards, 2), "Alpha")
	assert.Contains(t, MetricGrid(cards, 0), "Beta")
	assert.Empty(t, MetricGrid(nil, 2))
}
