package pledge

import (
	"time"

	"Seedfund/internal/domain/donation"

	"github.com/oklog/ulid/v2"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusFulfilled Status = "fulfilled"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusFulfilled, StatusCancelled:
		return true
	}
	return false
}

// DateLayout is the wire and storage format of PledgeDate.
const DateLayout = "2006-01-02"

type Pledge struct {
	Id              ulid.ULID     `json:"id"`
	Amount          int64         `json:"amount"`
	Quantity        int           `json:"quantity"`
	DonorName       string        `json:"donorName"`
	DonorEmail      string        `json:"donorEmail"`
	DonorPhone      string        `json:"donorPhone,omitempty"`
	DonationType    donation.Type `json:"donationType"`
	TierName        string        `json:"tierName"`
	TierBadge       string        `json:"tierBadge"`
	TierDescription string        `json:"tierDescription"`
	PledgeDate      Date          `json:"pledgeDate"`
	Message         string        `json:"message,omitempty"`
	IsAnonymous     bool          `json:"isAnonymous"`
	Status          Status        `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// Date is a calendar day without time of day.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t as seen in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	y, m, d := t.In(loc).Date()
	return NewDate(y, m, d)
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp, whose date part is kept.
func ParseDate(value string) (Date, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return NewDate(t.Date()), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return Date{}, err
	}
	return NewDate(t.Date()), nil
}

func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return &time.ParseError{Layout: DateLayout, Value: s}
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
