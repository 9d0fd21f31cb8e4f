package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a print order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusApproved   OrderStatus = "approved"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the status is a defined value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusProcessing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is expected.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// StatusPolicy decides which order status transitions a shop may perform.
type StatusPolicy string

const (
	// StatusPolicyStrict allows forward transitions, and cancellation from any status but cancelled.
	StatusPolicyStrict StatusPolicy = "strict"
	// StatusPolicyFree allows any defined status to move to any defined status.
	StatusPolicyFree StatusPolicy = "free"
)

var strictTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusApproved, OrderStatusProcessing},
	OrderStatusApproved:   {OrderStatusProcessing},
	OrderStatusProcessing: {OrderStatusReady},
	OrderStatusReady:      {OrderStatusCompleted},
}

// ParseStatusPolicy maps a config value to a policy. Anything but "free" is strict.
func ParseStatusPolicy(s string) StatusPolicy {
	if StatusPolicy(s) == StatusPolicyFree {
		return StatusPolicyFree
	}

	return StatusPolicyStrict
}

// Allows reports whether an order may move from one status to another.
func (p StatusPolicy) Allows(from, to OrderStatus) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	if p == StatusPolicyFree {
		return true
	}
	if to == OrderStatusCancelled {
		return from != OrderStatusCancelled
	}
	if from.IsTerminal() {
		return false
	}
	for _, next := range strictTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// Order is a print order placed by a user at a shop.
type Order struct {
	ID                  uuid.UUID       `json:"id"`
	UserID              uuid.UUID       `json:"user_id"`
	ShopID              uuid.UUID       `json:"shop_id"`
	DocumentRef         string          `json:"document_ref"`
	FileName            string          `json:"file_name"`
	PaperSize           PaperSize       `json:"paper_size"`
	ColorMode           ColorMode       `json:"color_mode"`
	Copies              int             `json:"copies"`
	DoubleSided         bool            `json:"double_sided"`
	Stapled             bool            `json:"stapled"`
	SpecialInstructions *string         `json:"special_instructions"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	Status              OrderStatus     `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// Config returns the print configuration of the order.
func (o *Order) Config() OrderConfig {
	return OrderConfig{
		PaperSize:   o.PaperSize,
		ColorMode:   o.ColorMode,
		Copies:      o.Copies,
		DoubleSided: o.DoubleSided,
		Stapled:     o.Stapled,
	}
}
