package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/babylog/internal/db"
	"github.com/alexanderramin/babylog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all pooled connections.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_ReadDuringWrite lists and counts records from several
// goroutines while a single writer appends. WAL lets readers proceed without
// blocking the writer.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteRecordRepo(database)

	const writes = 20
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			r := testutil.NewTestPumping(100+i, testutil.WithCreatedAt(testutil.BaseTime.Add(time.Duration(i)*time.Minute)))
			if err := repo.Create(ctx, r); err != nil {
				t.Errorf("writer: create record %d: %v", i, err)
				return
			}
		}
	}()

	for reader := 0; reader < 5; reader++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				recs, err := repo.ListRecent(ctx, writes)
				if err != nil {
					t.Errorf("reader %d: list recent: %v", reader, err)
					return
				}
				// Each snapshot is newest-first by volume since volumes grow with insertion.
				for j := 1; j < len(recs); j++ {
					if recs[j-1].Pumping.VolumeTotal <= recs[j].Pumping.VolumeTotal {
						t.Errorf("reader %d: snapshot out of insertion order", reader)
						return
					}
				}
				if _, err := repo.Count(ctx); err != nil {
					t.Errorf("reader %d: count: %v", reader, err)
					return
				}
			}
		}(reader)
	}

	wg.Wait()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, writes, n)
}

// TestConcurrentAccess_ConcurrentDailyReads runs many day-range reads at
// once over a fixed week of data and checks every reader sees the same totals.
func TestConcurrentAccess_ConcurrentDailyReads(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteRecordRepo(database)

	for d := 0; d < 7; d++ {
		day := testutil.BaseTime.AddDate(0, 0, d)
		require.NoError(t, repo.Create(ctx, testutil.NewTestPumping(120, testutil.WithCreatedAt(day))))
		require.NoError(t, repo.Create(ctx, testutil.NewTestFeeding(150, testutil.WithCreatedAt(day.Add(time.Hour)))))
	}

	var wg sync.WaitGroup
	for reader := 0; reader < 20; reader++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			recs, err := repo.ListByDayRange(ctx, "2024-01-01", "2024-01-07")
			if err != nil {
				t.Errorf("reader %d: list by day range: %v", reader, err)
				return
			}
			if len(recs) != 14 {
				t.Errorf("reader %d: expected 14 records, got %d", reader, len(recs))
			}
		}(reader)
	}
	wg.Wait()
}
