package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"
)

const defaultParitySample = 20

// ParityOptions control the cross-backend comparison.
type ParityOptions struct {
	// Deep also diffs the id sets of unequal tables, reporting up to
	// SampleLimit examples per direction.
	Deep bool
	// SampleLimit bounds the examples collected per table; zero means the
	// default.
	SampleLimit int
	// Tables restricts the report to a subset; empty means every tracked
	// table.
	Tables []string
}

// TableParity is the comparison result for one table.
type TableParity struct {
	Table           string   `json:"table"`
	SourceCount     int      `json:"source_count"`
	TargetCount     int      `json:"target_count"`
	Equal           bool     `json:"equal"`
	MissingInTarget []string `json:"missing_in_target,omitempty"`
	ExtraInTarget   []string `json:"extra_in_target,omitempty"`
}

// Parity is the full cross-backend report.
type Parity struct {
	Status string        `json:"status"` // ok or mismatch
	Tables []TableParity `json:"tables"`
}

// ParityReport compares the two backends table by table. Counts are always
// compared; with Deep the id sets of unequal tables are diffed too.
func ParityReport(ctx context.Context, source, target *Backend, opts ParityOptions) (*Parity, error) {
	tables, err := selectTables(opts.Tables)
	if err != nil {
		return nil, err
	}
	sample := opts.SampleLimit
	if sample <= 0 {
		sample = defaultParitySample
	}

	report := &Parity{Status: "ok"}
	for _, ts := range tables {
		tp := TableParity{Table: ts.Name}

		tp.SourceCount, err = countRows(ctx, source, ts.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s on %s: %w", ts.Name, source.Name, err)
		}
		tp.TargetCount, err = countRows(ctx, target, ts.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s on %s: %w", ts.Name, target.Name, err)
		}
		tp.Equal = tp.SourceCount == tp.TargetCount

		if opts.Deep && !tp.Equal {
			srcIDs, err := idSet(ctx, source, ts.Name)
			if err != nil {
				return nil, fmt.Errorf("failed to list %s ids on %s: %w", ts.Name, source.Name, err)
			}
			dstIDs, err := idSet(ctx, target, ts.Name)
			if err != nil {
				return nil, fmt.Errorf("failed to list %s ids on %s: %w", ts.Name, target.Name, err)
			}
			tp.MissingInTarget = diffSample(srcIDs, dstIDs, sample)
			tp.ExtraInTarget = diffSample(dstIDs, srcIDs, sample)
		}

		if !tp.Equal {
			report.Status = "mismatch"
		}
		report.Tables = append(report.Tables, tp)
	}
	return report, nil
}

func countRows(ctx context.Context, b *Backend, table string) (int, error) {
	var n int
	err := b.DB.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM "%s"`, table)).Scan(&n)
	return n, err
}

func idSet(ctx context.Context, b *Backend, table string) (map[string]bool, error) {
	rows, err := b.DB.QueryContext(ctx, fmt.Sprintf(`SELECT "id" FROM "%s"`, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := make(map[string]bool)
	for rows.Next() {
		var v any
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		set[idKey(v)] = true
	}
	return set, rows.Err()
}

// idKey normalizes an id value across drivers and id kinds.
func idKey(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// diffSample returns up to limit members of a that are absent from b,
// sorted for stable output.
func diffSample(a, b map[string]bool, limit int) []string {
	var out []string
	for k := range a {
		if !b[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
