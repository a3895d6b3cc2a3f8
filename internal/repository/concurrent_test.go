package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/fitloop/internal/db"
	"github.com/alexanderramin/fitloop/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed database so that every pooled
// connection sees the same data under WAL.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

func retryBusy(fn func() error) error {
	const maxRetries = 10
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		time.Sleep(time.Millisecond * time.Duration(1<<attempt))
	}
	return err
}

// TestConcurrentAccess_ReadDuringWrite lists history while another
// goroutine records workouts.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteWorkoutLogRepo(database)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			w := testutil.NewTestWorkoutLog(fmt.Sprintf("plan-%d", i))
			if err := retryBusy(func() error { return repo.Create(ctx, w) }); err != nil {
				t.Errorf("writer: create workout %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				logs, err := repo.ListRecent(ctx, 50)
				if err != nil {
					t.Errorf("reader %d: list recent: %v", reader, err)
					return
				}
				for _, w := range logs {
					if w.ID == "" || w.PlanKey == "" {
						t.Errorf("reader %d: incomplete row %+v", reader, w)
					}
				}
			}
		}(r)
	}
	wg.Wait()

	all, err := repo.ListRecent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 20)
}

// TestConcurrentAccess_UnlockRace races many transactions to unlock the same
// achievement; exactly one must win.
func TestConcurrentAccess_UnlockRace(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	uow := db.NewSQLiteUnitOfWork(database)

	const workers = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var won bool
			err := retryBusy(func() error {
				return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
					var err error
					won, err = NewSQLiteAchievementRepo(tx).Unlock(ctx, "streak_7", testutil.FixedNow.Add(time.Duration(i)*time.Second))
					return err
				})
			})
			if err != nil {
				errCh <- err
				return
			}
			if won {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	assert.Equal(t, 1, wins)
	unlocked, err := NewSQLiteAchievementRepo(database).ListUnlocked(ctx)
	require.NoError(t, err)
	assert.Len(t, unlocked, 1)
}
