package donation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Seedfund/internal/domain/tier"
	appErrors "Seedfund/internal/errors"
	"Seedfund/internal/logger"
	"Seedfund/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type CreateRequest struct {
	Amount        int64
	Quantity      int
	DonorName     string
	DonorEmail    string
	DonorPhone    string
	DonationType  Type
	Message       string
	IsAnonymous   bool
	PaymentMethod string
}

// Patch holds the fields an update may change. Nil means untouched.
type Patch struct {
	Amount        *int64
	Quantity      *int
	DonorName     *string
	DonorEmail    *string
	DonorPhone    *string
	DonationType  *Type
	Message       *string
	IsAnonymous   *bool
	PaymentMethod *string
	PaymentStatus *PaymentStatus
	TransactionId *string
}

// PaymentOutcome is what a payment provider or webhook reports for a donation.
type PaymentOutcome struct {
	Method        string
	TransactionId string
	Status        PaymentStatus
}

type Service struct {
	Repository  Repository
	GoalAmount  int64
	RecentLimit int
	Now         func() time.Time
}

func NewService(repo Repository, goalAmount int64, recentLimit int) *Service {
	return &Service{
		Repository:  repo,
		GoalAmount:  goalAmount,
		RecentLimit: recentLimit,
		Now:         time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC().Truncate(time.Microsecond)
	}
	return s.Now().UTC().Truncate(time.Microsecond)
}

func (s *Service) CreateDonation(ctx context.Context, request CreateRequest) (*Donation, error) {
	normalize(&request)
	if err := Validate(request); err != nil {
		return nil, err
	}

	now := s.now()
	entity := &Donation{
		Id:            pkg.GenerateULIDObject(),
		Amount:        request.Amount,
		Quantity:      request.Quantity,
		DonorName:     request.DonorName,
		DonorEmail:    request.DonorEmail,
		DonorPhone:    request.DonorPhone,
		DonationType:  request.DonationType,
		Message:       request.Message,
		IsAnonymous:   request.IsAnonymous,
		PaymentMethod: request.PaymentMethod,
		PaymentStatus: PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	// per-unit amount, not amount*quantity
	entity.applyTier(tier.Classify(request.Amount))

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}

	logger.Info().
		Str("donation_id", entity.Id.String()).
		Int64("amount", entity.Amount).
		Int("quantity", entity.Quantity).
		Str("tier", entity.TierBadge).
		Msg("donation created")

	return entity, nil
}

func (s *Service) GetDonation(ctx context.Context, id ulid.ULID) (*Donation, error) {
	return s.Repository.GetByID(ctx, id)
}

func (s *Service) GetDonationByTransactionID(ctx context.Context, transactionID string) (*Donation, error) {
	if strings.TrimSpace(transactionID) == "" {
		return nil, appErrors.ErrDonationNotFound
	}
	return s.Repository.GetByTransactionID(ctx, transactionID)
}

func (s *Service) ListDonations(ctx context.Context, filter *Filter) ([]*Donation, int64, error) {
	if filter == nil {
		filter = &Filter{}
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, 0, appErrors.NewValidationError("status", "must be one of: pending completed failed")
	}
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, 0, appErrors.NewValidationError("type", "must be one of: one-time monthly quantity")
	}
	filter.Search = strings.TrimSpace(filter.Search)
	return s.Repository.List(ctx, filter)
}

// UpdateDonation merges patch into the stored record. Tier fields are never
// recomputed, even when the amount changes.
func (s *Service) UpdateDonation(ctx context.Context, id ulid.ULID, patch Patch) (*Donation, error) {
	if err := ValidatePatch(patch); err != nil {
		return nil, err
	}

	current, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Amount != nil {
		current.Amount = *patch.Amount
	}
	if patch.Quantity != nil {
		current.Quantity = *patch.Quantity
	}
	if patch.DonorName != nil {
		current.DonorName = strings.TrimSpace(*patch.DonorName)
	}
	if patch.DonorEmail != nil {
		current.DonorEmail = normalizeEmail(*patch.DonorEmail)
	}
	if patch.DonorPhone != nil {
		current.DonorPhone = strings.TrimSpace(*patch.DonorPhone)
	}
	if patch.DonationType != nil {
		current.DonationType = *patch.DonationType
	}
	if patch.Message != nil {
		current.Message = strings.TrimSpace(*patch.Message)
	}
	if patch.IsAnonymous != nil {
		current.IsAnonymous = *patch.IsAnonymous
	}
	if patch.PaymentMethod != nil {
		current.PaymentMethod = strings.TrimSpace(*patch.PaymentMethod)
	}
	if patch.TransactionId != nil {
		current.TransactionId = strings.TrimSpace(*patch.TransactionId)
	}
	if patch.PaymentStatus != nil {
		s.transition(current, *patch.PaymentStatus)
	}
	current.UpdatedAt = s.now()

	if err := s.Repository.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// SetPaymentStatus backs the admin confirm/reject actions.
func (s *Service) SetPaymentStatus(ctx context.Context, id ulid.ULID, status PaymentStatus) (*Donation, error) {
	return s.UpdateDonation(ctx, id, Patch{PaymentStatus: &status})
}

// RecordPayment stores a provider outcome on the donation.
func (s *Service) RecordPayment(ctx context.Context, id ulid.ULID, outcome PaymentOutcome) (*Donation, error) {
	patch := Patch{PaymentStatus: &outcome.Status}
	if outcome.Method != "" {
		patch.PaymentMethod = &outcome.Method
	}
	if outcome.TransactionId != "" {
		patch.TransactionId = &outcome.TransactionId
	}
	return s.UpdateDonation(ctx, id, patch)
}

func (s *Service) DeleteDonation(ctx context.Context, id ulid.ULID) error {
	return s.Repository.Delete(ctx, id)
}

func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	completed, err := s.Repository.ListByStatus(ctx, PaymentCompleted)
	if err != nil {
		return nil, err
	}
	stats := Aggregate(completed, s.GoalAmount, s.RecentLimit)
	return &stats, nil
}

// transition allows leaving a terminal state so admins can correct mistakes,
// but leaves a trace of it.
func (s *Service) transition(d *Donation, next PaymentStatus) {
	if d.PaymentStatus.IsTerminal() && d.PaymentStatus != next {
		logger.Warn().
			Str("donation_id", d.Id.String()).
			Str("from", string(d.PaymentStatus)).
			Str("to", string(next)).
			Msg("payment status changed after reaching a terminal state")
	}
	d.PaymentStatus = next
}

func normalize(request *CreateRequest) {
	request.DonorName = strings.TrimSpace(request.DonorName)
	request.DonorEmail = normalizeEmail(request.DonorEmail)
	request.DonorPhone = strings.TrimSpace(request.DonorPhone)
	request.Message = strings.TrimSpace(request.Message)
	request.PaymentMethod = strings.TrimSpace(request.PaymentMethod)
	if request.Quantity == 0 {
		request.Quantity = 1
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func Validate(request CreateRequest) error {
	if request.Amount <= 0 {
		return appErrors.NewValidationError("amount", "must be greater than zero")
	}
	if request.Amount > MaxAmount {
		return appErrors.NewValidationError("amount", fmt.Sprintf("must be at most %d", MaxAmount))
	}
	if request.DonorName == "" {
		return appErrors.NewValidationError("donorName", "is required")
	}
	if request.DonorEmail == "" {
		return appErrors.NewValidationError("donorEmail", "is required")
	}
	if request.DonationType == "" {
		return appErrors.NewValidationError("donationType", "is required")
	}
	if !request.DonationType.IsValid() {
		return appErrors.NewValidationError("donationType", "must be one of: one-time monthly quantity")
	}
	if request.Quantity < 1 || request.Quantity > MaxQuantity {
		return appErrors.NewValidationError("quantity", fmt.Sprintf("must be between 1 and %d", MaxQuantity))
	}
	return nil
}

func ValidatePatch(patch Patch) error {
	if patch.Amount != nil && *patch.Amount <= 0 {
		return appErrors.NewValidationError("amount", "must be greater than zero")
	}
	if patch.Amount != nil && *patch.Amount > MaxAmount {
		return appErrors.NewValidationError("amount", fmt.Sprintf("must be at most %d", MaxAmount))
	}
	if patch.Quantity != nil && (*patch.Quantity < 1 || *patch.Quantity > MaxQuantity) {
		return appErrors.NewValidationError("quantity", fmt.Sprintf("must be between 1 and %d", MaxQuantity))
	}
	if patch.DonorName != nil && strings.TrimSpace(*patch.DonorName) == "" {
		return appErrors.NewValidationError("donorName", "cannot be empty")
	}
	if patch.DonorEmail != nil && strings.TrimSpace(*patch.DonorEmail) == "" {
		return appErrors.NewValidationError("donorEmail", "cannot be empty")
	}
	if patch.DonationType != nil && !patch.DonationType.IsValid() {
		return appErrors.NewValidationError("donationType", "must be one of: one-time monthly quantity")
	}
	if patch.PaymentStatus != nil && !patch.PaymentStatus.IsValid() {
		return appErrors.NewValidationError("paymentStatus", "must be one of: pending completed failed")
	}
	return nil
}
