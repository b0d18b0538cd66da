package contracts

import (
	"Seedfund/internal/domain/donation"
	"Seedfund/internal/domain/notification"
	"Seedfund/internal/domain/payment"
	"Seedfund/internal/domain/tier"
)

type PaymentDonor struct {
	Name      string `json:"name"`
	Email     string `json:"email" binding:"required,email"`
	Anonymous bool   `json:"anonymous"`
}

type PaymentProcessRequest struct {
	Amount        int64        `json:"amount" binding:"required,gt=0,lte=10000000000000"`
	Currency      string       `json:"currency" binding:"omitempty,len=3"`
	PaymentMethod string       `json:"paymentMethod" binding:"required"`
	Donor         PaymentDonor `json:"donor"`
	DonationType  string       `json:"donationType" binding:"omitempty,oneof=one-time monthly quantity"`
	DonationId    string       `json:"donationId"`
}

func (r PaymentProcessRequest) ToDomain() payment.Request {
	return payment.Request{
		Amount:        r.Amount,
		Currency:      r.Currency,
		PaymentMethod: payment.Method(r.PaymentMethod),
		Donor: payment.Donor{
			Name:      r.Donor.Name,
			Email:     r.Donor.Email,
			Anonymous: r.Donor.Anonymous,
		},
		DonationType: donation.Type(r.DonationType),
		DonationId:   r.DonationId,
	}
}

type PaymentProcessResponse struct {
	Success  bool                  `json:"success"`
	Donation *notification.Receipt `json:"donation"`
	Message  string                `json:"message"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}

type TierListResponse struct {
	Tiers   []tier.Tier `json:"tiers"`
	Success bool        `json:"success"`
}
