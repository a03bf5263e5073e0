//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tourdesk/internal/domain/catalog"
	"tourdesk/internal/domain/quote"
	"tourdesk/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedPackage persists a package through the production repository so the
// stored JSONB document matches what the application writes.
func SeedPackage(t *testing.T, db DBLike, pkg *catalog.Package) uuid.UUID {
	t.Helper()

	repo := repository.NewPackageRepository()
	require.NoError(t, repo.Create(context.Background(), db, pkg))
	return pkg.ID()
}

// SeedQuote persists a quote with its initial dormant pricing state.
func SeedQuote(t *testing.T, db DBLike, q *quote.Quote) uuid.UUID {
	t.Helper()

	repo := repository.NewQuoteRepository()
	require.NoError(t, repo.Create(context.Background(), db, q, time.Now()))
	return q.ID()
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
