package pledge

import (
	"context"

	"Seedfund/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Filter struct {
	Status     *Status
	Pagination *pkg.PaginationParams
}

type Repository interface {
	Create(ctx context.Context, pledge *Pledge) error
	GetByID(ctx context.Context, id ulid.ULID) (*Pledge, error)
	List(ctx context.Context, filter *Filter) ([]*Pledge, int64, error)
	Update(ctx context.Context, pledge *Pledge) error
	Delete(ctx context.Context, id ulid.ULID) error
}
