package model

import (
	"time"

	"gorm.io/datatypes"
)

// AdminAuditLog records admin actions against enquiries (status transitions,
// exports) for traceability. Details holds a free-form JSON payload such as
// the from/to statuses of a transition.
type AdminAuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	AdminID  uint           `gorm:"index" json:"admin_id"`
	Action   string         `gorm:"type:varchar(50);not null" json:"action"`
	Resource string         `gorm:"type:varchar(50);not null" json:"resource"`
	Details  datatypes.JSON `json:"details,omitempty"`
}
