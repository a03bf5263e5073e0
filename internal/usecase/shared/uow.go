package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"tourdesk/internal/domain/catalog"
	"tourdesk/internal/domain/quote"
)

// DB is the query surface shared by pgxpool.Pool and pgx.Tx, so repositories
// run unchanged inside and outside transactions.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db DB) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Packages() PackageRepository
	Quotes() QuoteRepository
	Reads() CommandReads
	DB() DB
}

type CommandReads interface {
	PackageByID(ctx context.Context, id uuid.UUID) (*PackageSnapshot, error)
	LinkedQuoteCount(ctx context.Context, packageID uuid.UUID) (int64, error)
	QuoteByID(ctx context.Context, id uuid.UUID) (*QuoteSnapshot, error)
}

type PackageRepository interface {
	Create(ctx context.Context, db DB, pkg *catalog.Package) error
	FindByID(ctx context.Context, db DB, id uuid.UUID) (*catalog.Package, error)
	Update(ctx context.Context, db DB, pkg *catalog.Package, expectedVersion int) error
	Delete(ctx context.Context, db DB, id uuid.UUID) error
}

type QuoteRepository interface {
	Create(ctx context.Context, db DB, q *quote.Quote, now time.Time) error
	Rename(ctx context.Context, db DB, id uuid.UUID, customerName string, now time.Time) error
	Delete(ctx context.Context, db DB, id uuid.UUID) error
	SavePricingState(ctx context.Context, db DB, quoteID uuid.UUID, state quote.State, now time.Time) error
}
