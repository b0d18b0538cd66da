// Package notification sends donor-facing messages about payments.
package notification

import (
	"context"
	"time"

	"Seedfund/internal/logger"
)

// Receipt is the confirmation a donor gets after a payment attempt.
type Receipt struct {
	ReceiptId     string    `json:"receiptId"`
	DonationId    string    `json:"donationId,omitempty"`
	DonorName     string    `json:"donorName"`
	DonorEmail    string    `json:"donorEmail"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	TierName      string    `json:"tierName,omitempty"`
	PaymentMethod string    `json:"paymentMethod"`
	Provider      string    `json:"provider"`
	TransactionId string    `json:"transactionId"`
	Status        string    `json:"status"`
	IssuedAt      time.Time `json:"issuedAt"`
}

type Notifier interface {
	SendConfirmation(ctx context.Context, receipt Receipt) error
}

// LogNotifier writes the confirmation to the application log instead of
// delivering an email.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) SendConfirmation(ctx context.Context, receipt Receipt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Info().
		Str("receipt_id", receipt.ReceiptId).
		Str("to", receipt.DonorEmail).
		Int64("amount", receipt.Amount).
		Str("currency", receipt.Currency).
		Str("status", receipt.Status).
		Msg("confirmation email queued")
	return nil
}
