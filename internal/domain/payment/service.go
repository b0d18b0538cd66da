package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"Seedfund/internal/domain/donation"
	"Seedfund/internal/domain/notification"
	appErrors "Seedfund/internal/errors"
	"Seedfund/internal/logger"
	"Seedfund/internal/pkg"

	"github.com/oklog/ulid/v2"
)

const (
	EventPaymentSuccess        = "payment.success"
	EventChargeSuccess         = "charge.success"
	EventPaymentFailed         = "payment.failed"
	EventChargeFailed          = "charge.failed"
	EventSubscriptionCreated   = "subscription.created"
	EventSubscriptionCancelled = "subscription.cancelled"
)

// Donations is the part of the donation service payments need.
type Donations interface {
	GetDonation(ctx context.Context, id ulid.ULID) (*donation.Donation, error)
	GetDonationByTransactionID(ctx context.Context, transactionID string) (*donation.Donation, error)
	RecordPayment(ctx context.Context, id ulid.ULID, outcome donation.PaymentOutcome) (*donation.Donation, error)
}

type Service struct {
	Providers map[Method]Provider
	Donations Donations
	Notifier  notification.Notifier
	Currency  string
	Now       func() time.Time
}

func NewService(providers map[Method]Provider, donations Donations, notifier notification.Notifier, currency string) *Service {
	return &Service{
		Providers: providers,
		Donations: donations,
		Notifier:  notifier,
		Currency:  currency,
		Now:       time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// Process charges the donor through the provider for the requested method and
// returns the receipt. A linked donation takes over the provider's outcome.
func (s *Service) Process(ctx context.Context, request Request) (*notification.Receipt, error) {
	request.Donor.Email = strings.ToLower(strings.TrimSpace(request.Donor.Email))
	request.Donor.Name = strings.TrimSpace(request.Donor.Name)
	request.PaymentMethod = Method(strings.ToLower(strings.TrimSpace(string(request.PaymentMethod))))

	if request.Amount <= 0 {
		return nil, appErrors.NewValidationError("amount", "must be greater than zero")
	}
	if request.Amount > donation.MaxTotal {
		return nil, appErrors.NewValidationError("amount", fmt.Sprintf("must be at most %d", donation.MaxTotal))
	}
	if request.PaymentMethod == "" {
		return nil, appErrors.NewValidationError("paymentMethod", "is required")
	}
	if request.Donor.Email == "" {
		return nil, appErrors.NewValidationError("donor.email", "is required")
	}

	provider, ok := s.Providers[request.PaymentMethod]
	if !ok {
		return nil, appErrors.ErrUnsupportedPaymentMethod.WithDetails(map[string]interface{}{
			"paymentMethod": string(request.PaymentMethod),
		})
	}

	var linked *donation.Donation
	if request.DonationId != "" {
		id, err := pkg.ParseULID(request.DonationId)
		if err != nil {
			return nil, appErrors.NewValidationError("donationId", "must be a valid id")
		}
		linked, err = s.Donations.GetDonation(ctx, id)
		if err != nil {
			return nil, err
		}
		// the charge must settle the whole pledged total
		if request.Amount != linked.Total() {
			return nil, appErrors.NewValidationError("amount", fmt.Sprintf("must equal the donation total %d", linked.Total())).
				WithDetails(map[string]interface{}{
					"field":      "amount",
					"expected":   linked.Total(),
					"donationId": linked.Id.String(),
				})
		}
	}

	currency := request.Currency
	if currency == "" {
		currency = s.Currency
	}

	result, err := provider.Charge(ctx, Charge{
		Amount:       request.Amount,
		Currency:     currency,
		DonorEmail:   request.Donor.Email,
		DonationType: request.DonationType,
	})
	if err != nil {
		return nil, appErrors.FromError(err)
	}

	receipt := &notification.Receipt{
		ReceiptId:     "DON-" + pkg.GenerateULID(),
		DonorName:     request.Donor.Name,
		DonorEmail:    request.Donor.Email,
		Amount:        request.Amount,
		Currency:      currency,
		PaymentMethod: string(request.PaymentMethod),
		Provider:      result.Provider,
		TransactionId: result.TransactionId,
		Status:        string(result.Status),
		IssuedAt:      s.now(),
	}

	if linked != nil {
		updated, err := s.Donations.RecordPayment(ctx, linked.Id, donation.PaymentOutcome{
			Method:        string(request.PaymentMethod),
			TransactionId: result.TransactionId,
			Status:        result.Status.DonationStatus(),
		})
		if err != nil {
			return nil, err
		}
		receipt.DonationId = updated.Id.String()
		receipt.TierName = updated.TierName
		if receipt.DonorName == "" {
			receipt.DonorName = updated.DonorName
		}
	}

	logger.Info().
		Str("receipt_id", receipt.ReceiptId).
		Str("provider", receipt.Provider).
		Str("transaction_id", receipt.TransactionId).
		Str("status", receipt.Status).
		Msg("payment processed")

	if s.Notifier != nil {
		if err := s.Notifier.SendConfirmation(ctx, *receipt); err != nil {
			logger.Error().Err(err).Str("receipt_id", receipt.ReceiptId).Msg("failed to send confirmation")
		}
	}

	return receipt, nil
}

type EventMetadata struct {
	DonationId string `json:"donationId"`
}

type EventData struct {
	Id        string        `json:"id"`
	Reference string        `json:"reference"`
	Amount    int64         `json:"amount"`
	Status    string        `json:"status"`
	Metadata  EventMetadata `json:"metadata"`
}

// Event is a provider notification. Paystack names the kind "event", Stripe
// names it "type".
type Event struct {
	Event string    `json:"event"`
	Type  string    `json:"type"`
	Data  EventData `json:"data"`
}

func (e Event) Name() string {
	if e.Event != "" {
		return e.Event
	}
	return e.Type
}

func (e Event) reference() string {
	if e.Data.Reference != "" {
		return e.Data.Reference
	}
	return e.Data.Id
}

func ParseEvent(body []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return Event{}, appErrors.ErrBadRequest.WithError(err)
	}
	if event.Name() == "" {
		return Event{}, appErrors.NewValidationError("event", "is required")
	}
	return event, nil
}

// HandleWebhook applies event to its donation. Events the service does not
// act on, and payments for donations it does not know, are only logged.
func (s *Service) HandleWebhook(ctx context.Context, event Event) error {
	name := event.Name()
	switch name {
	case EventPaymentSuccess, EventChargeSuccess:
		return s.settle(ctx, event, donation.PaymentCompleted)
	case EventPaymentFailed, EventChargeFailed:
		return s.settle(ctx, event, donation.PaymentFailed)
	case EventSubscriptionCreated, EventSubscriptionCancelled:
		logger.Info().
			Str("event", name).
			Str("reference", event.reference()).
			Msg("subscription event received")
		return nil
	default:
		logger.Info().Str("event", name).Msg("unhandled webhook event")
		return nil
	}
}

func (s *Service) settle(ctx context.Context, event Event, status donation.PaymentStatus) error {
	target, err := s.locate(ctx, event)
	if err != nil {
		if appErrors.IsNotFound(err) {
			logger.Warn().
				Str("event", event.Name()).
				Str("donation_id", event.Data.Metadata.DonationId).
				Str("reference", event.reference()).
				Msg("webhook references an unknown donation")
			return nil
		}
		return err
	}

	outcome := donation.PaymentOutcome{Status: status}
	if target.TransactionId == "" {
		outcome.TransactionId = event.reference()
	}
	if _, err := s.Donations.RecordPayment(ctx, target.Id, outcome); err != nil {
		return err
	}

	logger.Info().
		Str("event", event.Name()).
		Str("donation_id", target.Id.String()).
		Str("status", string(status)).
		Msg("donation settled by webhook")
	return nil
}

func (s *Service) locate(ctx context.Context, event Event) (*donation.Donation, error) {
	if raw := event.Data.Metadata.DonationId; raw != "" {
		if id, err := pkg.ParseULID(raw); err == nil {
			return s.Donations.GetDonation(ctx, id)
		}
	}
	return s.Donations.GetDonationByTransactionID(ctx, event.reference())
}
