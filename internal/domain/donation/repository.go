package donation

import (
	"context"

	"Seedfund/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Filter struct {
	Status     *PaymentStatus
	Type       *Type
	Search     string
	Pagination *pkg.PaginationParams
}

type Repository interface {
	Create(ctx context.Context, donation *Donation) error
	GetByID(ctx context.Context, id ulid.ULID) (*Donation, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*Donation, error)
	List(ctx context.Context, filter *Filter) ([]*Donation, int64, error)
	ListByStatus(ctx context.Context, status PaymentStatus) ([]*Donation, error)
	Update(ctx context.Context, donation *Donation) error
	Delete(ctx context.Context, id ulid.ULID) error
}
