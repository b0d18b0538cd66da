package donation_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"Seedfund/internal/domain/donation"
	appErrors "Seedfund/internal/errors"

	"github.com/oklog/ulid/v2"
)

type fakeDonationRepository struct {
	mu        sync.Mutex
	items     map[ulid.ULID]*donation.Donation
	createErr error
}

func newFakeRepo() *fakeDonationRepository {
	return &fakeDonationRepository{items: make(map[ulid.ULID]*donation.Donation)}
}

func (f *fakeDonationRepository) Create(ctx context.Context, d *donation.Donation) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	copy := *d
	f.items[d.Id] = &copy
	return nil
}

func (f *fakeDonationRepository) GetByID(ctx context.Context, id ulid.ULID) (*donation.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.items[id]
	if !ok {
		return nil, appErrors.ErrDonationNotFound
	}
	copy := *d
	return &copy, nil
}

func (f *fakeDonationRepository) GetByTransactionID(ctx context.Context, ref string) (*donation.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.items {
		if d.TransactionId == ref {
			copy := *d
			return &copy, nil
		}
	}
	return nil, appErrors.ErrDonationNotFound
}

func (f *fakeDonationRepository) List(ctx context.Context, filter *donation.Filter) ([]*donation.Donation, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*donation.Donation, 0, len(f.items))
	for _, d := range f.items {
		if filter != nil && filter.Status != nil && d.PaymentStatus != *filter.Status {
			continue
		}
		copy := *d
		out = append(out, &copy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

func (f *fakeDonationRepository) ListByStatus(ctx context.Context, status donation.PaymentStatus) ([]*donation.Donation, error) {
	out, _, err := f.List(ctx, &donation.Filter{Status: &status})
	return out, err
}

func (f *fakeDonationRepository) Update(ctx context.Context, d *donation.Donation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[d.Id]; !ok {
		return appErrors.ErrDonationNotFound
	}
	copy := *d
	f.items[d.Id] = &copy
	return nil
}

func (f *fakeDonationRepository) Delete(ctx context.Context, id ulid.ULID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return appErrors.ErrDonationNotFound
	}
	delete(f.items, id)
	return nil
}

type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newService(repo donation.Repository) *donation.Service {
	clock := &stepClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	svc := donation.NewService(repo, 20000000, 5)
	svc.Now = clock.Now
	return svc
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %s", code)
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != code {
		t.Fatalf("expected code %s, got %s", code, appErr.Code)
	}
}

func TestServiceCreateDonation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(newFakeRepo())

	created, err := svc.CreateDonation(ctx, donation.CreateRequest{
		Amount:       20000,
		DonorName:    "Ada",
		DonorEmail:   "ada@x.com",
		DonationType: donation.TypeOneTime,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.TierBadge != "Spark Starter" {
		t.Fatalf("expected Spark Starter, got %s", created.TierBadge)
	}
	if created.TierName != "Start a Spark" {
		t.Fatalf("expected tier name Start a Spark, got %s", created.TierName)
	}
	if created.PaymentStatus != donation.PaymentPending {
		t.Fatalf("expected pending, got %s", created.PaymentStatus)
	}
	if created.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", created.Quantity)
	}
	if (created.Id == ulid.ULID{}) {
		t.Fatalf("expected id to be assigned")
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("expected createdAt == updatedAt on creation")
	}
}

func TestServiceCreateDonationClassifiesPerUnitAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount    int64
		quantity  int
		wantBadge string
	}{
		{amount: 50000, quantity: 1, wantBadge: "Dream Builder"},
		{amount: 10000000, quantity: 1, wantBadge: "Legacy Builder"},
		{amount: 10000, quantity: 10, wantBadge: "Seed Planter"},
	}

	ctx := context.Background()
	svc := newService(newFakeRepo())

	for _, tt := range tests {
		created, err := svc.CreateDonation(ctx, donation.CreateRequest{
			Amount:       tt.amount,
			Quantity:     tt.quantity,
			DonorName:    "Chidi",
			DonorEmail:   "chidi@example.com",
			DonationType: donation.TypeQuantity,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.TierBadge != tt.wantBadge {
			t.Fatalf("amount %d x%d: expected %s, got %s", tt.amount, tt.quantity, tt.wantBadge, created.TierBadge)
		}
	}
}

func TestServiceCreateDonationValidation(t *testing.T) {
	t.Parallel()

	valid := donation.CreateRequest{
		Amount:       20000,
		DonorName:    "Ada",
		DonorEmail:   "ada@x.com",
		DonationType: donation.TypeOneTime,
	}

	tests := []struct {
		name   string
		mutate func(r *donation.CreateRequest)
	}{
		{name: "zero amount", mutate: func(r *donation.CreateRequest) { r.Amount = 0 }},
		{name: "negative amount", mutate: func(r *donation.CreateRequest) { r.Amount = -5 }},
		{name: "missing name", mutate: func(r *donation.CreateRequest) { r.DonorName = "  " }},
		{name: "missing email", mutate: func(r *donation.CreateRequest) { r.DonorEmail = "" }},
		{name: "missing type", mutate: func(r *donation.CreateRequest) { r.DonationType = "" }},
		{name: "unknown type", mutate: func(r *donation.CreateRequest) { r.DonationType = "weekly" }},
		{name: "negative quantity", mutate: func(r *donation.CreateRequest) { r.Quantity = -1 }},
		{name: "amount above max", mutate: func(r *donation.CreateRequest) { r.Amount = donation.MaxAmount + 1 }},
		{name: "quantity above max", mutate: func(r *donation.CreateRequest) { r.Quantity = donation.MaxQuantity + 1 }},
		{name: "overflowing total", mutate: func(r *donation.CreateRequest) { r.Amount = 5e18; r.Quantity = 2 }},
	}

	ctx := context.Background()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := newService(repo)
			req := valid
			tt.mutate(&req)

			_, err := svc.CreateDonation(ctx, req)
			requireCode(t, err, "VALIDATION_ERROR")
			if len(repo.items) != 0 {
				t.Fatalf("nothing should be stored on validation failure")
			}
		})
	}
}

func TestServiceCreateDonationAtBounds(t *testing.T) {
	t.Parallel()

	svc := newService(newFakeRepo())
	created, err := svc.CreateDonation(context.Background(), donation.CreateRequest{
		Amount:       donation.MaxAmount,
		Quantity:     donation.MaxQuantity,
		DonorName:    "Ada",
		DonorEmail:   "ada@x.com",
		DonationType: donation.TypeQuantity,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Total() != donation.MaxTotal {
		t.Fatalf("expected total %d, got %d", donation.MaxTotal, created.Total())
	}

	tooMuch := donation.MaxAmount + 1
	_, err = svc.UpdateDonation(context.Background(), created.Id, donation.Patch{Amount: &tooMuch})
	requireCode(t, err, "VALIDATION_ERROR")

	tooMany := donation.MaxQuantity + 1
	_, err = svc.UpdateDonation(context.Background(), created.Id, donation.Patch{Quantity: &tooMany})
	requireCode(t, err, "VALIDATION_ERROR")
}

func TestServiceCreateDonationStoreFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.createErr = appErrors.NewDatabaseError(errors.New("connection reset"))
	svc := newService(repo)

	_, err := svc.CreateDonation(context.Background(), donation.CreateRequest{
		Amount:       20000,
		DonorName:    "Ada",
		DonorEmail:   "ada@x.com",
		DonationType: donation.TypeMonthly,
	})
	requireCode(t, err, "DATABASE_ERROR")
}

func TestServiceUpdateDonation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(newFakeRepo())

	created, err := svc.CreateDonation(ctx, donation.CreateRequest{
		Amount:       20000,
		DonorName:    "Ada",
		DonorEmail:   "ada@x.com",
		DonationType: donation.TypeOneTime,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("status update refreshes updatedAt", func(t *testing.T) {
		status := donation.PaymentCompleted
		if _, err := svc.UpdateDonation(ctx, created.Id, donation.Patch{PaymentStatus: &status}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := svc.GetDonation(ctx, created.Id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentStatus != donation.PaymentCompleted {
			t.Fatalf("expected completed, got %s", got.PaymentStatus)
		}
		if !got.UpdatedAt.After(got.CreatedAt) {
			t.Fatalf("expected updatedAt %v after createdAt %v", got.UpdatedAt, got.CreatedAt)
		}
	})

	t.Run("amount change keeps tier", func(t *testing.T) {
		amount := int64(10000000)
		updated, err := svc.UpdateDonation(ctx, created.Id, donation.Patch{Amount: &amount})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Amount != amount {
			t.Fatalf("expected amount %d, got %d", amount, updated.Amount)
		}
		if updated.TierBadge != "Spark Starter" {
			t.Fatalf("tier must not be recomputed, got %s", updated.TierBadge)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		status := donation.PaymentStatus("refunded")
		_, err := svc.UpdateDonation(ctx, created.Id, donation.Patch{PaymentStatus: &status})
		requireCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("unknown id", func(t *testing.T) {
		name := "Bola"
		_, err := svc.UpdateDonation(ctx, ulid.Make(), donation.Patch{DonorName: &name})
		requireCode(t, err, "DONATION_NOT_FOUND")
	})
}

func TestServiceSetPaymentStatusAllowsCorrections(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(newFakeRepo())

	created, err := svc.CreateDonation(ctx, donation.CreateRequest{
		Amount:       50000,
		DonorName:    "Ngozi",
		DonorEmail:   "ngozi@example.com",
		DonationType: donation.TypeOneTime,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.SetPaymentStatus(ctx, created.Id, donation.PaymentFailed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	confirmed, err := svc.SetPaymentStatus(ctx, created.Id, donation.PaymentCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirmed.PaymentStatus != donation.PaymentCompleted {
		t.Fatalf("expected completed, got %s", confirmed.PaymentStatus)
	}
}

func TestServiceRecordPayment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(newFakeRepo())

	created, err := svc.CreateDonation(ctx, donation.CreateRequest{
		Amount:       20000,
		DonorName:    "Ada",
		DonorEmail:   "ada@x.com",
		DonationType: donation.TypeOneTime,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.RecordPayment(ctx, created.Id, donation.PaymentOutcome{
		Method:        "card",
		TransactionId: "card_123",
		Status:        donation.PaymentCompleted,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byRef, err := svc.GetDonationByTransactionID(ctx, "card_123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byRef.Id != created.Id || byRef.PaymentMethod != "card" {
		t.Fatalf("unexpected donation %+v", byRef)
	}

	_, err = svc.GetDonationByTransactionID(ctx, "")
	requireCode(t, err, "DONATION_NOT_FOUND")
}

func TestServiceDeleteDonation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(newFakeRepo())

	created, err := svc.CreateDonation(ctx, donation.CreateRequest{
		Amount:       20000,
		DonorName:    "Ada",
		DonorEmail:   "ada@x.com",
		DonationType: donation.TypeOneTime,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteDonation(ctx, created.Id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = svc.GetDonation(ctx, created.Id)
	requireCode(t, err, "DONATION_NOT_FOUND")

	requireCode(t, svc.DeleteDonation(ctx, created.Id), "DONATION_NOT_FOUND")
}

func TestServiceListDonationsRejectsUnknownFilters(t *testing.T) {
	t.Parallel()

	svc := newService(newFakeRepo())
	status := donation.PaymentStatus("refunded")
	_, _, err := svc.ListDonations(context.Background(), &donation.Filter{Status: &status})
	requireCode(t, err, "VALIDATION_ERROR")

	typ := donation.Type("weekly")
	_, _, err = svc.ListDonations(context.Background(), &donation.Filter{Type: &typ})
	requireCode(t, err, "VALIDATION_ERROR")
}

func TestServiceGetStats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(newFakeRepo())

	for _, amount := range []int64{10000, 20000, 70000} {
		created, err := svc.CreateDonation(ctx, donation.CreateRequest{
			Amount:       amount,
			DonorName:    "Ada",
			DonorEmail:   "ada@x.com",
			DonationType: donation.TypeOneTime,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if amount == 70000 {
			continue
		}
		if _, err := svc.SetPaymentStatus(ctx, created.Id, donation.PaymentCompleted); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalRaised != 30000 || stats.TotalDonors != 1 || stats.TotalDonations != 2 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if stats.GoalAmount != 20000000 {
		t.Fatalf("expected configured goal, got %d", stats.GoalAmount)
	}
}
