package infrastructure_test

import (
	"context"
	"testing"
	"time"

	"Seedfund/internal/domain/donation"
	"Seedfund/internal/domain/pledge"
	appErrors "Seedfund/internal/errors"
	"Seedfund/internal/infrastructure"
	"Seedfund/internal/pkg"

	"github.com/glebarez/sqlite"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, infrastructure.RunMigrations(db))
	return db
}

var base = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newDonation(name, email string, status donation.PaymentStatus, offset time.Duration) *donation.Donation {
	at := base.Add(offset)
	return &donation.Donation{
		Id:            ulid.MustNew(ulid.Timestamp(at), ulid.DefaultEntropy()),
		Amount:        20000,
		Quantity:      1,
		DonorName:     name,
		DonorEmail:    email,
		DonationType:  donation.TypeOneTime,
		TierName:      "Start a Spark",
		TierBadge:     "Spark Starter",
		PaymentStatus: status,
		CreatedAt:     at,
		UpdatedAt:     at,
	}
}

func TestDonationRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := &infrastructure.DonationRepository{DB: newTestDB(t)}

	d := newDonation("Ada", "ada@example.com", donation.PaymentPending, 0)
	d.IsAnonymous = true
	d.Message = "for the kids"
	require.NoError(t, repo.Create(ctx, d))

	got, err := repo.GetByID(ctx, d.Id)
	require.NoError(t, err)
	assert.Equal(t, d.Id, got.Id)
	assert.Equal(t, "Spark Starter", got.TierBadge)
	assert.True(t, got.IsAnonymous)
	assert.True(t, d.CreatedAt.Equal(got.CreatedAt))

	got.PaymentStatus = donation.PaymentCompleted
	got.TransactionId = "card_abc"
	got.IsAnonymous = false
	got.UpdatedAt = base.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, got))

	byRef, err := repo.GetByTransactionID(ctx, "card_abc")
	require.NoError(t, err)
	assert.Equal(t, donation.PaymentCompleted, byRef.PaymentStatus)
	assert.False(t, byRef.IsAnonymous)
	assert.True(t, base.Add(time.Hour).Equal(byRef.UpdatedAt))
	assert.True(t, d.CreatedAt.Equal(byRef.CreatedAt))

	require.NoError(t, repo.Delete(ctx, d.Id))
	_, err = repo.GetByID(ctx, d.Id)
	assert.ErrorIs(t, err, appErrors.ErrDonationNotFound)
}

func TestDonationRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	repo := &infrastructure.DonationRepository{DB: newTestDB(t)}

	_, err := repo.GetByID(ctx, ulid.Make())
	assert.ErrorIs(t, err, appErrors.ErrDonationNotFound)

	_, err = repo.GetByTransactionID(ctx, "missing")
	assert.ErrorIs(t, err, appErrors.ErrDonationNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, ulid.Make()), appErrors.ErrDonationNotFound)
	assert.ErrorIs(t, repo.Update(ctx, newDonation("x", "x@x.com", donation.PaymentPending, 0)), appErrors.ErrDonationNotFound)
}

func TestDonationRepositoryList(t *testing.T) {
	ctx := context.Background()
	repo := &infrastructure.DonationRepository{DB: newTestDB(t)}

	ada := newDonation("Ada Obi", "ada@example.com", donation.PaymentCompleted, 0)
	bola := newDonation("Bola", "bola@example.com", donation.PaymentPending, time.Minute)
	chi := newDonation("Chi", "chi@example.com", donation.PaymentCompleted, 2*time.Minute)
	chi.DonationType = donation.TypeMonthly
	for _, d := range []*donation.Donation{ada, bola, chi} {
		require.NoError(t, repo.Create(ctx, d))
	}

	all, total, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, all, 3)
	assert.Equal(t, []ulid.ULID{chi.Id, bola.Id, ada.Id}, []ulid.ULID{all[0].Id, all[1].Id, all[2].Id})

	completed := donation.PaymentCompleted
	monthly := donation.TypeMonthly
	tests := []struct {
		name   string
		filter *donation.Filter
		want   []ulid.ULID
		total  int64
	}{
		{"status", &donation.Filter{Status: &completed}, []ulid.ULID{chi.Id, ada.Id}, 2},
		{"type and status", &donation.Filter{Status: &completed, Type: &monthly}, []ulid.ULID{chi.Id}, 1},
		{"search name", &donation.Filter{Search: "OBI"}, []ulid.ULID{ada.Id}, 1},
		{"search email with status", &donation.Filter{Search: "example.com", Status: &completed}, []ulid.ULID{chi.Id, ada.Id}, 2},
		{"search id", &donation.Filter{Search: bola.Id.String()}, []ulid.ULID{bola.Id}, 1},
		{"page two", &donation.Filter{Pagination: &pkg.PaginationParams{Page: 2, Limit: 2}}, []ulid.ULID{ada.Id}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.total, total)
			ids := make([]ulid.ULID, 0, len(got))
			for _, d := range got {
				ids = append(ids, d.Id)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	byStatus, err := repo.ListByStatus(ctx, donation.PaymentPending)
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, bola.Id, byStatus[0].Id)
}

func TestPledgeRepository(t *testing.T) {
	ctx := context.Background()
	repo := &infrastructure.PledgeRepository{DB: newTestDB(t)}

	p := &pledge.Pledge{
		Id:           ulid.Make(),
		Amount:       100000,
		Quantity:     1,
		DonorName:    "Emeka",
		DonorEmail:   "emeka@example.com",
		DonationType: donation.TypeOneTime,
		TierName:     "Fuel Innovation",
		PledgeDate:   pledge.NewDate(2026, time.December, 24),
		Status:       pledge.StatusActive,
		CreatedAt:    base,
		UpdatedAt:    base,
	}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.Id)
	require.NoError(t, err)
	assert.Equal(t, "2026-12-24", got.PledgeDate.String())
	assert.Equal(t, pledge.StatusActive, got.Status)

	got.Status = pledge.StatusCancelled
	require.NoError(t, repo.Update(ctx, got))

	cancelled := pledge.StatusCancelled
	list, total, err := repo.List(ctx, &pledge.Filter{Status: &cancelled})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, p.Id, list[0].Id)

	active := pledge.StatusActive
	_, total, err = repo.List(ctx, &pledge.Filter{Status: &active})
	require.NoError(t, err)
	assert.Zero(t, total)

	require.NoError(t, repo.Delete(ctx, p.Id))
	assert.ErrorIs(t, repo.Delete(ctx, p.Id), appErrors.ErrPledgeNotFound)
	_, err = repo.GetByID(ctx, p.Id)
	assert.ErrorIs(t, err, appErrors.ErrPledgeNotFound)
}
