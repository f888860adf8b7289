package models

import "time"

// Promotion is a discount code managed through the admin surface.
type Promotion struct {
	ID          string     `bson:"id" json:"id"`
	Code        string     `bson:"code" json:"code"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Discount    string     `bson:"discount" json:"discount"` // e.g. "15%" or "100 EGP"
	Status      string     `bson:"status" json:"status"`     // "active" or "inactive"
	UsageLimit  int        `bson:"usage_limit,omitempty" json:"usageLimit,omitempty"`
	UsedCount   int        `bson:"used_count" json:"usedCount"`
	ValidUntil  *time.Time `bson:"valid_until,omitempty" json:"validUntil,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updatedAt"`
}
