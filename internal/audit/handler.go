package audit

import (
	"strconv"

	"eatz-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AuditLogResponse struct {
	ID          uint               `json:"id"`
	CreatedAt   string             `json:"created_at"`
	UserID      uint               `json:"user_id"`
	UserName    string             `json:"user_name"`
	UserRole    models.UserRole    `json:"user_role"`
	EntityType  string             `json:"entity_type"`
	EntityID    uint               `json:"entity_id"`
	Action      models.AuditAction `json:"action"`
	Description string             `json:"description"`
	BeforeData  string             `json:"before_data"`
	AfterData   string             `json:"after_data"`
}

// GET /api/admin/audit-logs?entity_type=proposal&entity_id=1&user_id=2
func ListAuditLogsHandler(trail *Trail) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f Filter
		f.EntityType = c.Query("entity_type")
		if f.EntityType != "" && f.EntityType != EntityMenu && f.EntityType != EntityProposal {
			return fiber.NewError(fiber.StatusBadRequest, "entity_type must be menu or proposal")
		}

		var err error
		if f.EntityID, err = queryUint(c, "entity_id"); err != nil {
			return err
		}
		if f.UserID, err = queryUint(c, "user_id"); err != nil {
			return err
		}

		logs := trail.List(f)
		resp := make([]AuditLogResponse, 0, len(logs))
		for _, l := range logs {
			resp = append(resp, AuditLogResponse{
				ID:          l.ID,
				CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
				UserID:      l.UserID,
				UserName:    l.UserName,
				UserRole:    l.UserRole,
				EntityType:  l.EntityType,
				EntityID:    l.EntityID,
				Action:      l.Action,
				Description: l.Description,
				BeforeData:  l.BeforeData,
				AfterData:   l.AfterData,
			})
		}

		return c.JSON(resp)
	}
}

func queryUint(c *fiber.Ctx, key string) (uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+key)
	}
	return uint(v), nil
}
