// Package store keeps a SQLite-backed history of projection runs.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/wealth-calculator/internal/domain"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNoRuns is returned when the history holds no runs yet.
var ErrNoRuns = errors.New("no recorded runs")

// Run is one recorded projection.
type Run struct {
	ID            int64
	CreatedAt     time.Time
	Scenario      string
	Input         domain.ProjectionInput
	FinalValue    decimal.Decimal
	TotalInvested decimal.Decimal
}

// RunFromResult captures a finished scenario for the history.
func RunFromResult(r domain.ScenarioResult) Run {
	return Run{
		Scenario:      r.Name,
		Input:         r.Input,
		FinalValue:    r.Summary.FinalValue,
		TotalInvested: r.Summary.TotalInvested,
	}
}

// History provides SQLite-backed run history.
type History struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db, now: time.Now}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// Record stores runs in a single transaction. Runs without a timestamp get the current time.
func (h *History) Record(ctx context.Context, runs ...Run) error {
	if len(runs) == 0 {
		return nil
	}
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := h.now().UTC()
	for _, r := range runs {
		created := r.CreatedAt
		if created.IsZero() {
			created = now
		}
		in := r.Input
		_, err = tx.ExecContext(ctx, `INSERT INTO runs
			(created_at, scenario, initial, monthly, rate, tax_rate, years, regime, final_value, total_invested)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			created.UTC().Format(time.RFC3339Nano), r.Scenario,
			in.InitialInvestment.String(), in.MonthlyContribution.String(),
			in.AnnualInterestRatePercent.String(), in.MarginalTaxRatePercent.String(),
			in.HorizonYears, in.AccountRegime.String(),
			r.FinalValue.String(), r.TotalInvested.String(),
		)
		if err != nil {
			return fmt.Errorf("recording run %q: %w", r.Scenario, err)
		}
	}

	return tx.Commit()
}

const selectRuns = `SELECT
	id, created_at, scenario, initial, monthly, rate, tax_rate, years, regime, final_value, total_invested
	FROM runs ORDER BY id DESC LIMIT ?`

// Recent returns up to limit runs, newest first. A non-positive limit returns nothing.
func (h *History) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := h.db.QueryContext(ctx, selectRuns, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LastInput returns the inputs of the most recent run, or ErrNoRuns.
func (h *History) LastInput(ctx context.Context) (domain.ProjectionInput, error) {
	runs, err := h.Recent(ctx, 1)
	if err != nil {
		return domain.ProjectionInput{}, err
	}
	if len(runs) == 0 {
		return domain.ProjectionInput{}, ErrNoRuns
	}
	return runs[0].Input, nil
}

func scanRun(rows *sql.Rows) (Run, error) {
	var (
		r                  Run
		created, regime    string
		initial, monthly   decimal.Decimal
		rate, taxRate      decimal.Decimal
		finalValue, invest decimal.Decimal
	)
	err := rows.Scan(&r.ID, &created, &r.Scenario, &initial, &monthly, &rate, &taxRate,
		&r.Input.HorizonYears, &regime, &finalValue, &invest)
	if err != nil {
		return Run{}, fmt.Errorf("scanning run: %w", err)
	}

	r.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Run{}, fmt.Errorf("run %d: bad timestamp %q: %w", r.ID, created, err)
	}
	r.Input.AccountRegime, err = domain.ParseAccountRegime(regime)
	if err != nil {
		return Run{}, fmt.Errorf("run %d: %w", r.ID, err)
	}
	r.Input.InitialInvestment = initial
	r.Input.MonthlyContribution = monthly
	r.Input.AnnualInterestRatePercent = rate
	r.Input.MarginalTaxRatePercent = taxRate
	r.FinalValue = finalValue
	r.TotalInvested = invest
	return r, nil
}
