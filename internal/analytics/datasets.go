package analytics

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Timeline string

const (
	Weekly  Timeline = "Weekly"
	Monthly Timeline = "Monthly"
	Yearly  Timeline = "Yearly"
)

type TrendType string

const (
	TrendBest  TrendType = "best"
	TrendWorst TrendType = "worst"
)

type DataPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type TrendItem struct {
	Name  string `json:"name"`
	Sales int    `json:"sales"`
}

type Insight struct {
	Text string `json:"text"`
	Type string `json:"type"` // success | info
}

// Static sample data shown until real sales figures exist.
var (
	profitData = map[Timeline][]DataPoint{
		Weekly:  {{"W1", 280}, {"W2", 310}, {"W3", 290}, {"W4", 350}},
		Monthly: {{"Jan", 1200}, {"Feb", 1100}, {"Mar", 1400}, {"Apr", 1350}},
		Yearly:  {{"2022", 15000}, {"2023", 18000}, {"2024", 22000}},
	}

	trendData = map[TrendType][]TrendItem{
		TrendBest:  {{"Nasi Goreng", 5400}, {"Americano", 4800}, {"Kopi Aren", 4500}},
		TrendWorst: {{"Instant Coffee", 300}, {"Cireng", 550}, {"Iced Lemon Tea", 900}},
	}

	insights = []Insight{
		{Text: `Menu "Nasi Goreng Spesial" is up 23% on last week`, Type: "success"},
		{Text: "Sales peak between 12:00 and 14:00", Type: "info"},
		{Text: "Jakarta Selatan shows the strongest growth", Type: "success"},
	}

	// previousPeriodFactor scales the sample series into a comparison period.
	previousPeriodFactor = decimal.RequireFromString("0.9")
)

// ParseTimeline accepts the timeline name case-insensitively; empty means Monthly.
func ParseTimeline(s string) (Timeline, error) {
	if s == "" {
		return Monthly, nil
	}
	for t := range profitData {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown timeline %q", s)
}

func ParseTrendType(s string) (TrendType, error) {
	switch strings.ToLower(s) {
	case "", string(TrendBest):
		return TrendBest, nil
	case string(TrendWorst):
		return TrendWorst, nil
	}
	return "", fmt.Errorf("unknown trend type %q", s)
}

func Profit(t Timeline) []DataPoint {
	return append([]DataPoint(nil), profitData[t]...)
}

// PreviousPeriod derives the comparison series for a profit timeline.
func PreviousPeriod(t Timeline) []DataPoint {
	src := profitData[t]
	out := make([]DataPoint, len(src))
	for i, p := range src {
		v := decimal.NewFromFloat(p.Value).Mul(previousPeriodFactor).Round(2)
		out[i] = DataPoint{Label: p.Label, Value: v.InexactFloat64()}
	}
	return out
}

// ChangePercent is the growth of the last point over the one before it,
// rounded to one decimal place. Series shorter than two points yield zero.
func ChangePercent(points []DataPoint) decimal.Decimal {
	if len(points) < 2 {
		return decimal.Zero
	}
	prev := decimal.NewFromFloat(points[len(points)-2].Value)
	last := decimal.NewFromFloat(points[len(points)-1].Value)
	if prev.IsZero() {
		return decimal.Zero
	}
	return last.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(1)
}

func Trends(t TrendType) []TrendItem {
	return append([]TrendItem(nil), trendData[t]...)
}

func opposite(t TrendType) TrendType {
	if t == TrendBest {
		return TrendWorst
	}
	return TrendBest
}
