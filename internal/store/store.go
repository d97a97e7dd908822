package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielpatrickdp/quantum-decision/internal/answer"
	_ "modernc.org/sqlite"
)

// MemoryDSN keeps the decision log in process memory only.
const MemoryDSN = ":memory:"

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS decision_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL UNIQUE,
	trigger_type  TEXT NOT NULL,
	answers_json  TEXT NOT NULL,
	weighted_sum  REAL NOT NULL,
	outcome       TEXT NOT NULL,
	config_json   TEXT,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_decision_log_outcome ON decision_log(outcome);
`

// #endregion schema

// #region store-struct
// Store reads and owns the schema of the decision log in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
// MemoryDSN gives a private log that disappears with the process.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if dsn == MemoryDSN {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	} else if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region get-run
// GetRun retrieves a single run by its run ID.
func (s *Store) GetRun(runID string) (RunRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, run_id, trigger_type, answers_json, weighted_sum, outcome, config_json, created_at
		 FROM decision_log WHERE run_id = ?`, runID,
	)
	rec, err := scanRun(row)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	return rec, nil
}

// #endregion get-run

// #region list-runs
// ListRuns returns the most recent runs, newest first. limit <= 0 returns all.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(
		`SELECT id, run_id, trigger_type, answers_json, weighted_sum, outcome, config_json, created_at
		 FROM decision_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list-runs

// #region count-outcomes
// CountByOutcome returns run counts grouped by outcome, most frequent first.
func (s *Store) CountByOutcome() ([]OutcomeCount, error) {
	rows, err := s.db.Query(
		`SELECT outcome, COUNT(*) FROM decision_log GROUP BY outcome ORDER BY COUNT(*) DESC, outcome`,
	)
	if err != nil {
		return nil, fmt.Errorf("count outcomes: %w", err)
	}
	defer rows.Close()

	var counts []OutcomeCount
	for rows.Next() {
		var c OutcomeCount
		if err := rows.Scan(&c.Outcome, &c.Count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// #endregion count-outcomes

// #region scan
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (RunRecord, error) {
	var rec RunRecord
	var answersJSON string
	var configJSON sql.NullString
	var createdStr string

	if err := sc.Scan(&rec.ID, &rec.RunID, &rec.TriggerType, &answersJSON, &rec.WeightedSum,
		&rec.Outcome, &configJSON, &createdStr); err != nil {
		return RunRecord{}, err
	}

	var vals []int
	if err := json.Unmarshal([]byte(answersJSON), &vals); err != nil {
		return RunRecord{}, fmt.Errorf("unmarshal answers: %w", err)
	}
	v, err := answer.VectorFromInts(vals)
	if err != nil {
		return RunRecord{}, err
	}
	rec.Answers = v

	if configJSON.Valid {
		rec.ConfigJSON = configJSON.String
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}

// #endregion scan
