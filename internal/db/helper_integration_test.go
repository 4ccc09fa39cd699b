package db

import (
	"context"
	"testing"

	"github.com/go-pg/pg/v10"
)

// withTx hands the test a Repository bound to a transaction that is rolled
// back in cleanup, so nothing a test writes ever reaches the shared seed
// data. Repository writes inside it run on savepoints, which keeps the
// transaction usable even after an induced constraint violation.
func withTx(t *testing.T) (*pg.Tx, context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("requires the test database")
	}
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("rollback transaction: %v", err)
		}
	})

	return tx, ctx, New(tx)
}

func rowsPerSlug(rows []PostTagRow) map[string]int {
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Slug]++
	}
	return counts
}
