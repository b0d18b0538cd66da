package infrastructure

import (
	"context"
	"errors"
	"strings"
	"time"

	"Seedfund/internal/domain/donation"
	appErrors "Seedfund/internal/errors"
	"Seedfund/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

const (
	donationsTable = "donations"
	newestFirst    = "created_at DESC, id DESC"
)

type DonationRepository struct {
	DB *gorm.DB
}

type donationDB struct {
	Id              string    `gorm:"type:varchar(26);primaryKey"`
	Amount          int64     `gorm:"not null"`
	Quantity        int       `gorm:"not null;default:1"`
	DonorName       string    `gorm:"type:varchar(255);not null"`
	DonorEmail      string    `gorm:"type:varchar(255);index;not null"`
	DonorPhone      string    `gorm:"type:varchar(50)"`
	DonationType    string    `gorm:"type:varchar(20);not null"`
	TierName        string    `gorm:"type:varchar(100)"`
	TierBadge       string    `gorm:"type:varchar(100)"`
	TierDescription string    `gorm:"type:text"`
	Message         string    `gorm:"type:text"`
	IsAnonymous     bool      `gorm:"not null;default:false"`
	PaymentMethod   string    `gorm:"type:varchar(50)"`
	PaymentStatus   string    `gorm:"type:varchar(20);index;not null"`
	TransactionId   string    `gorm:"type:varchar(255);index"`
	CreatedAt       time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime:false"`
}

func toDomainDonation(ddb *donationDB) (*donation.Donation, error) {
	id, err := pkg.ParseULID(ddb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &donation.Donation{
		Id:              id,
		Amount:          ddb.Amount,
		Quantity:        ddb.Quantity,
		DonorName:       ddb.DonorName,
		DonorEmail:      ddb.DonorEmail,
		DonorPhone:      ddb.DonorPhone,
		DonationType:    donation.Type(ddb.DonationType),
		TierName:        ddb.TierName,
		TierBadge:       ddb.TierBadge,
		TierDescription: ddb.TierDescription,
		Message:         ddb.Message,
		IsAnonymous:     ddb.IsAnonymous,
		PaymentMethod:   ddb.PaymentMethod,
		PaymentStatus:   donation.PaymentStatus(ddb.PaymentStatus),
		TransactionId:   ddb.TransactionId,
		CreatedAt:       ddb.CreatedAt.UTC(),
		UpdatedAt:       ddb.UpdatedAt.UTC(),
	}, nil
}

func toDBDonation(d *donation.Donation) *donationDB {
	return &donationDB{
		Id:              d.Id.String(),
		Amount:          d.Amount,
		Quantity:        d.Quantity,
		DonorName:       d.DonorName,
		DonorEmail:      d.DonorEmail,
		DonorPhone:      d.DonorPhone,
		DonationType:    string(d.DonationType),
		TierName:        d.TierName,
		TierBadge:       d.TierBadge,
		TierDescription: d.TierDescription,
		Message:         d.Message,
		IsAnonymous:     d.IsAnonymous,
		PaymentMethod:   d.PaymentMethod,
		PaymentStatus:   string(d.PaymentStatus),
		TransactionId:   d.TransactionId,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func (r *DonationRepository) Create(ctx context.Context, d *donation.Donation) error {
	ddb := toDBDonation(d)
	if err := r.DB.WithContext(ctx).Table(donationsTable).Create(ddb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *DonationRepository) GetByID(ctx context.Context, id ulid.ULID) (*donation.Donation, error) {
	return r.first(ctx, "id = ?", id.String())
}

func (r *DonationRepository) GetByTransactionID(ctx context.Context, transactionID string) (*donation.Donation, error) {
	return r.first(ctx, "transaction_id = ?", transactionID)
}

func (r *DonationRepository) first(ctx context.Context, query string, args ...interface{}) (*donation.Donation, error) {
	var ddb donationDB
	if err := r.DB.WithContext(ctx).Table(donationsTable).Where(query, args...).First(&ddb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrDonationNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainDonation(&ddb)
}

func (r *DonationRepository) List(ctx context.Context, filter *donation.Filter) ([]*donation.Donation, int64, error) {
	if filter == nil {
		filter = &donation.Filter{}
	}

	query := r.DB.WithContext(ctx).Table(donationsTable)
	if filter.Status != nil {
		query = query.Where("payment_status = ?", string(*filter.Status))
	}
	if filter.Type != nil {
		query = query.Where("donation_type = ?", string(*filter.Type))
	}
	if term := strings.ToLower(strings.TrimSpace(filter.Search)); term != "" {
		like := "%" + term + "%"
		query = query.Where("(LOWER(donor_name) LIKE ? OR LOWER(donor_email) LIKE ? OR LOWER(id) LIKE ?)", like, like, like)
	}

	out, total, err := pkg.Paginate[donation.Donation, donationDB](query, filter.Pagination, newestFirst, toDomainDonation)
	if err != nil {
		if appErrors.IsAppError(err) {
			return nil, 0, err
		}
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return out, total, nil
}

func (r *DonationRepository) ListByStatus(ctx context.Context, status donation.PaymentStatus) ([]*donation.Donation, error) {
	var rows []donationDB
	if err := r.DB.WithContext(ctx).Table(donationsTable).
		Where("payment_status = ?", string(status)).
		Order(newestFirst).
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*donation.Donation, 0, len(rows))
	for i := range rows {
		d, err := toDomainDonation(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *DonationRepository) Update(ctx context.Context, d *donation.Donation) error {
	ddb := toDBDonation(d)
	result := r.DB.WithContext(ctx).Table(donationsTable).
		Where("id = ?", ddb.Id).
		Select("*").
		Omit("id", "created_at").
		Updates(ddb)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrDonationNotFound
	}
	return nil
}

func (r *DonationRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table(donationsTable).Where("id = ?", id.String()).Delete(&donationDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrDonationNotFound
	}
	return nil
}
