package queries

import (
	"context"

	"github.com/google/uuid"

	"tourdesk/internal/infra"
	"tourdesk/internal/pkg/errs"
)

type PackageReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PackageView, error)
	List(ctx context.Context) ([]*PackageListItem, error)
}

type PackageQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PackageView, error)
	List(ctx context.Context) ([]*PackageListItem, error)
}

type packageQueriesImpl struct {
	store PackageReadStore
}

func NewPackageQueries(store PackageReadStore) PackageQueries {
	return &packageQueriesImpl{store: store}
}

func (q *packageQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PackageView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPackageNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *packageQueriesImpl) List(ctx context.Context) ([]*PackageListItem, error) {
	items, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
