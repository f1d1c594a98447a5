package models

import "time"

type AuditAction string

const (
	AuditActionCreate  AuditAction = "create"
	AuditActionUpdate  AuditAction = "update"
	AuditActionApprove AuditAction = "approve"
	AuditActionReject  AuditAction = "reject"
)

type AuditLog struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID   uint     `json:"user_id"`
	UserName string   `json:"user_name"` // denormalized
	UserRole UserRole `json:"user_role"`

	// "menu" or "proposal"
	EntityType string `json:"entity_type"`
	EntityID   uint   `json:"entity_id"`

	Action      AuditAction `json:"action"`
	Description string      `json:"description"`

	// Before and after snapshots as JSON ("null" when absent)
	BeforeData string `json:"before_data"`
	AfterData  string `json:"after_data"`
}
