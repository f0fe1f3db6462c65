package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect"
)

const defaultBackfillBatch = 500

// BackfillOptions control the embedded→server copy.
type BackfillOptions struct {
	// BatchSize is the number of rows per INSERT statement. Zero means the
	// default.
	BatchSize int
	// TruncateFirst empties the selected target tables (cascading) before
	// copying.
	TruncateFirst bool
	// Tables restricts the run to a subset; empty means every tracked
	// table. Copy order always follows the dependency order, not the
	// order given here.
	Tables []string
}

// TableStat is the per-table outcome of a backfill run.
type TableStat struct {
	Table      string `json:"table"`
	Read       int    `json:"read"`
	Copied     int    `json:"copied"`
	Skipped    int    `json:"skipped"`
	DurationMS int64  `json:"duration_ms"`
}

// BackfillReport summarizes a completed run.
type BackfillReport struct {
	StartedAt    time.Time   `json:"started_at"`
	DurationMS   int64       `json:"duration_ms"`
	Tables       []TableStat `json:"tables"`
	TotalRead    int         `json:"total_read"`
	TotalCopied  int         `json:"total_copied"`
	TotalSkipped int         `json:"total_skipped"`
}

// Backfill copies every tracked table from the embedded backend into the
// server backend, in foreign-key dependency order. Rows already present in
// the target are left untouched (ON CONFLICT DO NOTHING), ids are carried
// over verbatim, and the sequences behind store-assigned ids are resynced
// after the load.
func Backfill(ctx context.Context, source, target *Backend, opts BackfillOptions) (*BackfillReport, error) {
	if source.Dialect != dialect.SQLite {
		return nil, fmt.Errorf("backfill source must be the embedded backend, got %s", source.Name)
	}
	if target.Dialect != dialect.Postgres {
		return nil, fmt.Errorf("backfill target must be the server backend, got %s", target.Name)
	}

	batch := opts.BatchSize
	if batch <= 0 {
		batch = defaultBackfillBatch
	}

	tables, err := selectTables(opts.Tables)
	if err != nil {
		return nil, err
	}

	report := &BackfillReport{StartedAt: time.Now().UTC()}

	if opts.TruncateFirst {
		if err := truncateTables(ctx, target, tables); err != nil {
			return nil, fmt.Errorf("failed to truncate target tables: %w", err)
		}
	}

	for _, ts := range tables {
		stat, err := copyTable(ctx, source, target, ts, batch)
		if err != nil {
			return nil, fmt.Errorf("failed to copy table %s: %w", ts.Name, err)
		}
		report.Tables = append(report.Tables, stat)
		report.TotalRead += stat.Read
		report.TotalCopied += stat.Copied
		report.TotalSkipped += stat.Skipped
		slog.Debug("Backfill table done",
			"table", ts.Name,
			"read", stat.Read,
			"copied", stat.Copied,
			"skipped", stat.Skipped)
	}

	if err := resetSequences(ctx, target, tables); err != nil {
		return nil, fmt.Errorf("failed to reset sequences: %w", err)
	}

	report.DurationMS = time.Since(report.StartedAt).Milliseconds()
	slog.Info("Backfill complete",
		"tables", len(report.Tables),
		"read", report.TotalRead,
		"copied", report.TotalCopied,
		"skipped", report.TotalSkipped,
		"duration_ms", report.DurationMS)
	return report, nil
}

// selectTables resolves a name filter against the tracked set, preserving
// dependency order.
func selectTables(filter []string) ([]tableSpec, error) {
	if len(filter) == 0 {
		return trackedTables, nil
	}
	wanted := make(map[string]bool, len(filter))
	for _, name := range filter {
		if _, ok := tableByName(name); !ok {
			return nil, fmt.Errorf("unknown table %q", name)
		}
		wanted[name] = true
	}
	out := make([]tableSpec, 0, len(wanted))
	for _, ts := range trackedTables {
		if wanted[ts.Name] {
			out = append(out, ts)
		}
	}
	return out, nil
}

func truncateTables(ctx context.Context, target *Backend, tables []tableSpec) error {
	names := make([]string, len(tables))
	for i, ts := range tables {
		names[i] = `"` + ts.Name + `"`
	}
	_, err := target.DB.ExecContext(ctx,
		fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(names, ", ")))
	return err
}

func copyTable(ctx context.Context, source, target *Backend, ts tableSpec, batch int) (TableStat, error) {
	start := time.Now()
	stat := TableStat{Table: ts.Name}

	quoted := make([]string, len(ts.Cols))
	for i, c := range ts.Cols {
		quoted[i] = `"` + c + `"`
	}
	colList := strings.Join(quoted, ", ")

	rows, err := source.DB.QueryContext(ctx,
		fmt.Sprintf(`SELECT %s FROM "%s" ORDER BY "id"`, colList, ts.Name))
	if err != nil {
		return stat, fmt.Errorf("failed to read source rows: %w", err)
	}
	defer rows.Close()

	buf := make([][]any, 0, batch)
	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		n, err := insertBatch(ctx, target, ts, colList, buf)
		if err != nil {
			return err
		}
		stat.Copied += int(n)
		buf = buf[:0]
		return nil
	}

	for rows.Next() {
		vals := make([]any, len(ts.Cols))
		ptrs := make([]any, len(ts.Cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return stat, fmt.Errorf("failed to scan source row: %w", err)
		}
		for i := range vals {
			vals[i] = coerceValue(vals[i])
		}
		stat.Read++
		buf = append(buf, vals)
		if len(buf) == batch {
			if err := flush(); err != nil {
				return stat, err
			}
		}
	}
	if err := rows.Err(); err != nil {
		return stat, fmt.Errorf("failed to iterate source rows: %w", err)
	}
	if err := flush(); err != nil {
		return stat, err
	}

	stat.Skipped = stat.Read - stat.Copied
	stat.DurationMS = time.Since(start).Milliseconds()
	return stat, nil
}

// insertBatch writes one multi-row INSERT and reports how many rows landed.
// The bare ON CONFLICT DO NOTHING covers both id and unique-tuple clashes.
func insertBatch(ctx context.Context, target *Backend, ts tableSpec, colList string, rows [][]any) (int64, error) {
	width := len(ts.Cols)
	placeholders := make([]string, len(rows))
	args := make([]any, 0, len(rows)*width)
	n := 1
	for i, row := range rows {
		group := make([]string, width)
		for j, c := range ts.Cols {
			p := fmt.Sprintf("$%d", n)
			if ts.isJSON(c) {
				p += "::jsonb"
			}
			group[j] = p
			n++
			args = append(args, row[j])
		}
		placeholders[i] = "(" + strings.Join(group, ", ") + ")"
	}

	query := fmt.Sprintf(`INSERT INTO "%s" (%s) VALUES %s ON CONFLICT DO NOTHING`,
		ts.Name, colList, strings.Join(placeholders, ", "))
	res, err := target.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert batch: %w", err)
	}
	return res.RowsAffected()
}

// coerceValue adapts one SQLite-typed value for the server backend: the
// driver hands TEXT and JSON columns back as byte slices, which the pgx
// driver would bind as bytea. Everything else passes through.
func coerceValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// resetSequences advances the identity sequences of serial tables past the
// highest copied id.
func resetSequences(ctx context.Context, target *Backend, tables []tableSpec) error {
	for _, ts := range tables {
		if !ts.Serial {
			continue
		}
		query := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX("id") FROM "%s"), 0) + 1, false)`,
			ts.Name, ts.Name)
		if _, err := target.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("table %s: %w", ts.Name, err)
		}
	}
	return nil
}
