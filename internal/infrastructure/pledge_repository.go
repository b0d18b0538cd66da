package infrastructure

import (
	"context"
	"errors"
	"time"

	"Seedfund/internal/domain/donation"
	"Seedfund/internal/domain/pledge"
	appErrors "Seedfund/internal/errors"
	"Seedfund/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

const pledgesTable = "pledges"

type PledgeRepository struct {
	DB *gorm.DB
}

// PledgeDate is kept as YYYY-MM-DD text so both drivers compare it the same way.
type pledgeDB struct {
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
	PledgeDate      string    `gorm:"type:varchar(10);index;not null"`
	Message         string    `gorm:"type:text"`
	IsAnonymous     bool      `gorm:"not null;default:false"`
	Status          string    `gorm:"type:varchar(20);index;not null"`
	CreatedAt       time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime:false"`
}

func toDomainPledge(pdb *pledgeDB) (*pledge.Pledge, error) {
	id, err := pkg.ParseULID(pdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	date, err := pledge.ParseDate(pdb.PledgeDate)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &pledge.Pledge{
		Id:              id,
		Amount:          pdb.Amount,
		Quantity:        pdb.Quantity,
		DonorName:       pdb.DonorName,
		DonorEmail:      pdb.DonorEmail,
		DonorPhone:      pdb.DonorPhone,
		DonationType:    donation.Type(pdb.DonationType),
		TierName:        pdb.TierName,
		TierBadge:       pdb.TierBadge,
		TierDescription: pdb.TierDescription,
		PledgeDate:      date,
		Message:         pdb.Message,
		IsAnonymous:     pdb.IsAnonymous,
		Status:          pledge.Status(pdb.Status),
		CreatedAt:       pdb.CreatedAt.UTC(),
		UpdatedAt:       pdb.UpdatedAt.UTC(),
	}, nil
}

func toDBPledge(p *pledge.Pledge) *pledgeDB {
	return &pledgeDB{
		Id:              p.Id.String(),
		Amount:          p.Amount,
		Quantity:        p.Quantity,
		DonorName:       p.DonorName,
		DonorEmail:      p.DonorEmail,
		DonorPhone:      p.DonorPhone,
		DonationType:    string(p.DonationType),
		TierName:        p.TierName,
		TierBadge:       p.TierBadge,
		TierDescription: p.TierDescription,
		PledgeDate:      p.PledgeDate.String(),
		Message:         p.Message,
		IsAnonymous:     p.IsAnonymous,
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (r *PledgeRepository) Create(ctx context.Context, p *pledge.Pledge) error {
	pdb := toDBPledge(p)
	if err := r.DB.WithContext(ctx).Table(pledgesTable).Create(pdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *PledgeRepository) GetByID(ctx context.Context, id ulid.ULID) (*pledge.Pledge, error) {
	var pdb pledgeDB
	if err := r.DB.WithContext(ctx).Table(pledgesTable).Where("id = ?", id.String()).First(&pdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrPledgeNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainPledge(&pdb)
}

func (r *PledgeRepository) List(ctx context.Context, filter *pledge.Filter) ([]*pledge.Pledge, int64, error) {
	if filter == nil {
		filter = &pledge.Filter{}
	}

	query := r.DB.WithContext(ctx).Table(pledgesTable)
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	out, total, err := pkg.Paginate[pledge.Pledge, pledgeDB](query, filter.Pagination, newestFirst, toDomainPledge)
	if err != nil {
		if appErrors.IsAppError(err) {
			return nil, 0, err
		}
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return out, total, nil
}

func (r *PledgeRepository) Update(ctx context.Context, p *pledge.Pledge) error {
	pdb := toDBPledge(p)
	result := r.DB.WithContext(ctx).Table(pledgesTable).
		Where("id = ?", pdb.Id).
		Select("*").
		Omit("id", "created_at").
		Updates(pdb)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrPledgeNotFound
	}
	return nil
}

func (r *PledgeRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table(pledgesTable).Where("id = ?", id.String()).Delete(&pledgeDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrPledgeNotFound
	}
	return nil
}
