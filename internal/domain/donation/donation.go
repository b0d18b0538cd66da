package donation

import (
	"time"

	"Seedfund/internal/domain/tier"

	"github.com/oklog/ulid/v2"
)

type Type string

const (
	TypeOneTime  Type = "one-time"
	TypeMonthly  Type = "monthly"
	TypeQuantity Type = "quantity"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeOneTime, TypeMonthly, TypeQuantity:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentCompleted || s == PaymentFailed
}

// Upper bounds on a single record. MaxAmount*MaxQuantity fits int64 with
// room for the campaign-wide sum.
const (
	MaxAmount   int64 = 10_000_000_000
	MaxQuantity       = 1000
	MaxTotal          = MaxAmount * MaxQuantity
)

type Donation struct {
	Id              ulid.ULID     `json:"id"`
	Amount          int64         `json:"amount"`
	Quantity        int           `json:"quantity"`
	DonorName       string        `json:"donorName"`
	DonorEmail      string        `json:"donorEmail"`
	DonorPhone      string        `json:"donorPhone,omitempty"`
	DonationType    Type          `json:"donationType"`
	TierName        string        `json:"tierName"`
	TierBadge       string        `json:"tierBadge"`
	TierDescription string        `json:"tierDescription"`
	Message         string        `json:"message,omitempty"`
	IsAnonymous     bool          `json:"isAnonymous"`
	PaymentMethod   string        `json:"paymentMethod,omitempty"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	TransactionId   string        `json:"transactionId,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// Total is what the donation contributes to the campaign once completed.
func (d *Donation) Total() int64 {
	return d.Amount * int64(d.Quantity)
}

// applyTier copies the tier fields. Only called on creation.
func (d *Donation) applyTier(t tier.Tier) {
	d.TierName = t.Title
	d.TierBadge = t.Badge
	d.TierDescription = t.Description
}
