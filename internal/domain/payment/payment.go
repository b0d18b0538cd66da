// Package payment runs donations through the (mock) payment gateways and
// applies provider webhook events to stored donations.
package payment

import (
	"context"

	"Seedfund/internal/domain/donation"
)

type Method string

const (
	MethodCard   Method = "card"
	MethodBank   Method = "bank"
	MethodMobile Method = "mobile"
)

// Status is what a provider reports for a charge.
type Status string

const (
	StatusSuccess Status = "success"
	StatusPending Status = "pending"
	StatusFailed  Status = "failed"
)

// DonationStatus maps a provider status onto the donation lifecycle.
func (s Status) DonationStatus() donation.PaymentStatus {
	switch s {
	case StatusSuccess:
		return donation.PaymentCompleted
	case StatusFailed:
		return donation.PaymentFailed
	default:
		return donation.PaymentPending
	}
}

type Donor struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Anonymous bool   `json:"anonymous"`
}

// Request is a payment attempt. DonationId, when set, links the outcome to a
// donation that was recorded beforehand.
type Request struct {
	Amount        int64
	Currency      string
	PaymentMethod Method
	Donor         Donor
	DonationType  donation.Type
	DonationId    string
}

type Charge struct {
	Amount       int64
	Currency     string
	DonorEmail   string
	DonationType donation.Type
}

type Result struct {
	Status        Status
	TransactionId string
	Provider      string
}

type Provider interface {
	Name() string
	Charge(ctx context.Context, charge Charge) (Result, error)
}
