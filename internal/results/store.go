package results

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"percolate/internal/model"
	"percolate/internal/results/migrations"
)

const timeFormat = time.RFC3339Nano

// Store records runs in a SQLite database.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Run is a stored run summary.
type Run struct {
	ID                  int64
	Params              model.Params
	Spanning            int
	SpanningProbability float64
	AverageMaxCluster   float64
	MaxClusters         int
	Elapsed             time.Duration
	CreatedAt           time.Time
}

// Open opens a SQLite store at the provided path and applies pending
// migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) +
		"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Record stores the run summary and its cluster-size distribution in one
// transaction.
func (s *Store) Record(ctx context.Context, res model.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin record: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p := res.Params
	out, err := tx.ExecContext(ctx, `
INSERT INTO runs (
    probability, lattice_size, trials, workers, seed,
    spanning, spanning_probability, average_max_cluster, max_clusters,
    elapsed_ms, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.P, p.Size, p.Trials, p.Workers, strconv.FormatUint(p.Seed, 10),
		res.Spanning, res.SpanningProbability, res.AverageMaxCluster, res.MaxClusters(),
		res.Elapsed.Milliseconds(), s.now().UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := out.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO distribution (run_id, cluster_size, count) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare distribution: %w", err)
	}
	defer stmt.Close()
	for _, bin := range res.Distribution() {
		if _, err := stmt.ExecContext(ctx, runID, bin.Size, bin.Count); err != nil {
			return fmt.Errorf("insert distribution: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit record: %w", err)
	}
	return nil
}

// Runs lists stored runs for one lattice size and trial count, ordered by
// probability then insertion.
func (s *Store) Runs(ctx context.Context, size, trials int) ([]Run, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, probability, lattice_size, trials, workers, seed,
       spanning, spanning_probability, average_max_cluster, max_clusters,
       elapsed_ms, created_at
FROM runs
WHERE lattice_size = ? AND trials = ?
ORDER BY probability, id`, size, trials)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			seed      string
			elapsedMS int64
			createdAt string
		)
		if err := rows.Scan(&r.ID, &r.Params.P, &r.Params.Size, &r.Params.Trials, &r.Params.Workers, &seed,
			&r.Spanning, &r.SpanningProbability, &r.AverageMaxCluster, &r.MaxClusters,
			&elapsedMS, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if r.Params.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("parse seed of run %d: %w", r.ID, err)
		}
		if r.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at of run %d: %w", r.ID, err)
		}
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Distribution returns the stored cluster-size histogram of a run.
func (s *Store) Distribution(ctx context.Context, runID int64) ([]model.SizeCount, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT cluster_size, count FROM distribution WHERE run_id = ? ORDER BY cluster_size`, runID)
	if err != nil {
		return nil, fmt.Errorf("query distribution: %w", err)
	}
	defer rows.Close()

	var dist []model.SizeCount
	for rows.Next() {
		var bin model.SizeCount
		if err := rows.Scan(&bin.Size, &bin.Count); err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		dist = append(dist, bin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate distribution: %w", err)
	}
	return dist, nil
}

var (
	_ Sink = (*Store)(nil)
	_ Sink = (*TextSink)(nil)
	_ Sink = Multi(nil)
	_ Sink = Discard{}
)
