//go:build e2e

package dbtest

import (
	"context"
	"fmt"
	"time"
)

// ResetDB empties all board tables so each subtest starts from a blank slate.
func ResetDB(pool DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE offerings, recipients RESTART IDENTITY CASCADE")
	if err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}
	return nil
}

// CountRows returns the row count of a table, for asserting that a rejected
// write really wrote nothing.
func CountRows(pool DBLike, table string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}
