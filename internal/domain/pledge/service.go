package pledge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Seedfund/internal/domain/donation"
	"Seedfund/internal/domain/tier"
	appErrors "Seedfund/internal/errors"
	"Seedfund/internal/logger"
	"Seedfund/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type CreateRequest struct {
	Amount       int64
	Quantity     int
	DonorName    string
	DonorEmail   string
	DonorPhone   string
	DonationType donation.Type
	PledgeDate   string
	Message      string
	IsAnonymous  bool
}

type Patch struct {
	Amount       *int64
	Quantity     *int
	DonorName    *string
	DonorEmail   *string
	DonorPhone   *string
	DonationType *donation.Type
	PledgeDate   *string
	Message      *string
	IsAnonymous  *bool
	Status       *Status
}

type Service struct {
	Repository Repository
	// Location decides what "today" means for pledge dates.
	Location *time.Location
	Now      func() time.Time
}

func NewService(repo Repository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		Repository: repo,
		Location:   loc,
		Now:        time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC().Truncate(time.Microsecond)
	}
	return s.Now().UTC().Truncate(time.Microsecond)
}

func (s *Service) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

func (s *Service) CreatePledge(ctx context.Context, request CreateRequest) (*Pledge, error) {
	request.DonorName = strings.TrimSpace(request.DonorName)
	request.DonorEmail = strings.ToLower(strings.TrimSpace(request.DonorEmail))
	request.PledgeDate = strings.TrimSpace(request.PledgeDate)
	if request.Quantity == 0 {
		request.Quantity = 1
	}

	if err := Validate(request); err != nil {
		return nil, err
	}

	pledgeDate, err := ParseDate(request.PledgeDate)
	if err != nil {
		return nil, appErrors.NewValidationError("pledgeDate", "must be a date (YYYY-MM-DD)").WithError(err)
	}

	now := s.now()
	// date-only comparison in the campaign timezone; checked once, at creation
	if pledgeDate.Before(DateOf(now, s.location())) {
		return nil, appErrors.NewValidationError("pledgeDate", "must be in the future")
	}

	t := tier.Classify(request.Amount)
	entity := &Pledge{
		Id:              pkg.GenerateULIDObject(),
		Amount:          request.Amount,
		Quantity:        request.Quantity,
		DonorName:       request.DonorName,
		DonorEmail:      request.DonorEmail,
		DonorPhone:      strings.TrimSpace(request.DonorPhone),
		DonationType:    request.DonationType,
		TierName:        t.Title,
		TierBadge:       t.Badge,
		TierDescription: t.Description,
		PledgeDate:      pledgeDate,
		Message:         strings.TrimSpace(request.Message),
		IsAnonymous:     request.IsAnonymous,
		Status:          StatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}

	logger.Info().
		Str("pledge_id", entity.Id.String()).
		Int64("amount", entity.Amount).
		Str("pledge_date", entity.PledgeDate.String()).
		Msg("pledge created")

	return entity, nil
}

func (s *Service) GetPledge(ctx context.Context, id ulid.ULID) (*Pledge, error) {
	return s.Repository.GetByID(ctx, id)
}

func (s *Service) ListPledges(ctx context.Context, filter *Filter) ([]*Pledge, int64, error) {
	if filter == nil {
		filter = &Filter{}
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, 0, appErrors.NewValidationError("status", "must be one of: active fulfilled cancelled")
	}
	return s.Repository.List(ctx, filter)
}

// UpdatePledge merges patch into the stored pledge. The pledge date is not
// re-validated against today and tier fields stay as created.
func (s *Service) UpdatePledge(ctx context.Context, id ulid.ULID, patch Patch) (*Pledge, error) {
	if err := ValidatePatch(patch); err != nil {
		return nil, err
	}

	current, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.PledgeDate != nil {
		parsed, err := ParseDate(strings.TrimSpace(*patch.PledgeDate))
		if err != nil {
			return nil, appErrors.NewValidationError("pledgeDate", "must be a date (YYYY-MM-DD)").WithError(err)
		}
		current.PledgeDate = parsed
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
		current.DonorEmail = strings.ToLower(strings.TrimSpace(*patch.DonorEmail))
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
	if patch.Status != nil {
		current.Status = *patch.Status
	}
	current.UpdatedAt = s.now()

	if err := s.Repository.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) DeletePledge(ctx context.Context, id ulid.ULID) error {
	return s.Repository.Delete(ctx, id)
}

func Validate(request CreateRequest) error {
	if request.Amount <= 0 {
		return appErrors.NewValidationError("amount", "must be greater than zero")
	}
	if request.Amount > donation.MaxAmount {
		return appErrors.NewValidationError("amount", fmt.Sprintf("must be at most %d", donation.MaxAmount))
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
	if request.Quantity < 1 || request.Quantity > donation.MaxQuantity {
		return appErrors.NewValidationError("quantity", fmt.Sprintf("must be between 1 and %d", donation.MaxQuantity))
	}
	if request.PledgeDate == "" {
		return appErrors.NewValidationError("pledgeDate", "is required")
	}
	return nil
}

func ValidatePatch(patch Patch) error {
	if patch.Amount != nil && *patch.Amount <= 0 {
		return appErrors.NewValidationError("amount", "must be greater than zero")
	}
	if patch.Amount != nil && *patch.Amount > donation.MaxAmount {
		return appErrors.NewValidationError("amount", fmt.Sprintf("must be at most %d", donation.MaxAmount))
	}
	if patch.Quantity != nil && (*patch.Quantity < 1 || *patch.Quantity > donation.MaxQuantity) {
		return appErrors.NewValidationError("quantity", fmt.Sprintf("must be between 1 and %d", donation.MaxQuantity))
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
	if patch.Status != nil && !patch.Status.IsValid() {
		return appErrors.NewValidationError("status", "must be one of: active fulfilled cancelled")
	}
	return nil
}
