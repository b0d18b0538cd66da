package donation_test

import (
	"math"
	"reflect"
	"testing"
	"time"

	"Seedfund/internal/domain/donation"

	"github.com/oklog/ulid/v2"
)

func completed(email string, amount int64, quantity int, at time.Time) *donation.Donation {
	return &donation.Donation{
		Id:            ulid.Make(),
		DonorName:     email,
		DonorEmail:    email,
		Amount:        amount,
		Quantity:      quantity,
		PaymentStatus: donation.PaymentCompleted,
		CreatedAt:     at,
	}
}

func TestAggregateSameDonor(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	stats := donation.Aggregate([]*donation.Donation{
		completed("ada@x.com", 10000, 1, base),
		completed("ada@x.com", 20000, 1, base.Add(time.Hour)),
	}, 20000000, 5)

	if stats.TotalDonors != 1 {
		t.Fatalf("expected 1 donor, got %d", stats.TotalDonors)
	}
	if stats.TotalRaised != 30000 {
		t.Fatalf("expected 30000 raised, got %d", stats.TotalRaised)
	}
	if stats.TotalDonations != 2 {
		t.Fatalf("expected 2 donations, got %d", stats.TotalDonations)
	}
	if stats.RecentDonations[0].Amount != 20000 {
		t.Fatalf("expected newest first, got %+v", stats.RecentDonations)
	}
}

func TestAggregateFiltersAndMultiplies(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	pending := completed("bola@x.com", 500000, 1, base)
	pending.PaymentStatus = donation.PaymentPending
	failed := completed("chi@x.com", 500000, 1, base)
	failed.PaymentStatus = donation.PaymentFailed

	stats := donation.Aggregate([]*donation.Donation{
		completed("ada@x.com", 10000, 3, base),
		pending,
		failed,
		nil,
	}, 20000000, 5)

	if stats.TotalRaised != 30000 {
		t.Fatalf("expected 30000, got %d", stats.TotalRaised)
	}
	if stats.TotalDonations != 1 || stats.TotalDonors != 1 {
		t.Fatalf("unexpected counts %+v", stats)
	}
	if stats.RecentDonations[0].Amount != 10000 {
		t.Fatalf("recent donations report per-unit amount, got %d", stats.RecentDonations[0].Amount)
	}
}

func TestAggregateDoesNotWrap(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	stats := donation.Aggregate([]*donation.Donation{
		completed("ada@x.com", math.MaxInt64/2+1, 1, base),
		completed("bola@x.com", math.MaxInt64/2+1, 1, base),
	}, 20000000, 5)

	if stats.TotalRaised != math.MaxInt64 {
		t.Fatalf("expected capped total, got %d", stats.TotalRaised)
	}
}

func TestAggregateRecentLimitAndOrder(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	var input []*donation.Donation
	for i := 0; i < 8; i++ {
		input = append(input, completed("donor@x.com", int64(1000*(i+1)), 1, base.Add(time.Duration(i)*time.Minute)))
	}
	before := make([]*donation.Donation, len(input))
	copy(before, input)

	stats := donation.Aggregate(input, 20000000, 5)

	if len(stats.RecentDonations) != 5 {
		t.Fatalf("expected 5 recent donations, got %d", len(stats.RecentDonations))
	}
	for i := 1; i < len(stats.RecentDonations); i++ {
		if stats.RecentDonations[i].Date.After(stats.RecentDonations[i-1].Date) {
			t.Fatalf("recent donations not in descending order: %+v", stats.RecentDonations)
		}
	}
	if stats.RecentDonations[0].Amount != 8000 {
		t.Fatalf("expected newest amount 8000, got %d", stats.RecentDonations[0].Amount)
	}
	for i := range input {
		if input[i] != before[i] {
			t.Fatalf("input slice was reordered")
		}
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	input := []*donation.Donation{
		completed("a@x.com", 10000, 1, at),
		completed("b@x.com", 20000, 2, at),
		completed("c@x.com", 30000, 1, at.Add(-time.Hour)),
	}

	first := donation.Aggregate(input, 20000000, 5)
	second := donation.Aggregate(input, 20000000, 5)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("aggregate is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestAggregateEmpty(t *testing.T) {
	t.Parallel()

	stats := donation.Aggregate(nil, 20000000, 5)
	if stats.TotalRaised != 0 || stats.TotalDonors != 0 || stats.TotalDonations != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if stats.RecentDonations == nil || len(stats.RecentDonations) != 0 {
		t.Fatalf("expected empty, non-nil recent donations")
	}
	if stats.GoalAmount != 20000000 || stats.ProgressPercentage != 0 {
		t.Fatalf("unexpected goal fields %+v", stats)
	}
}

func TestAggregateProgress(t *testing.T) {
	t.Parallel()

	stats := donation.Aggregate([]*donation.Donation{
		completed("a@x.com", 5000000, 1, time.Now()),
	}, 20000000, 5)
	if stats.ProgressPercentage != 25 {
		t.Fatalf("expected 25%%, got %v", stats.ProgressPercentage)
	}
}
