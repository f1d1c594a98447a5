package analytics

import (
	"github.com/gofiber/fiber/v2"
)

type ProfitResponse struct {
	Timeline      Timeline    `json:"timeline"`
	Points        []DataPoint `json:"points"`
	ChangePercent float64     `json:"change_percent"`
	Compare       []DataPoint `json:"compare,omitempty"`
	Insights      []Insight   `json:"insights"`
}

type TrendsResponse struct {
	Type     TrendType   `json:"type"`
	Items    []TrendItem `json:"items"`
	Leader   string      `json:"leader"`
	Compare  []TrendItem `json:"compare,omitempty"`
	Insights []Insight   `json:"insights"`
}

// GET /api/analytics/profit?timeline=Weekly&compare=true
func ProfitHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		timeline, err := ParseTimeline(c.Query("timeline"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		points := Profit(timeline)
		resp := ProfitResponse{
			Timeline:      timeline,
			Points:        points,
			ChangePercent: ChangePercent(points).InexactFloat64(),
			Insights:      insights,
		}
		if c.QueryBool("compare") {
			resp.Compare = PreviousPeriod(timeline)
		}
		return c.JSON(resp)
	}
}

// GET /api/analytics/trends?type=best&compare=true
func TrendsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind, err := ParseTrendType(c.Query("type"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		items := Trends(kind)
		resp := TrendsResponse{
			Type:     kind,
			Items:    items,
			Insights: insights,
		}
		if len(items) > 0 {
			resp.Leader = items[0].Name
		}
		if c.QueryBool("compare") {
			resp.Compare = Trends(opposite(kind))
		}
		return c.JSON(resp)
	}
}
