package wtfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/wtcsvkit/pkg/types"
	"github.com/joshuapare/wtcsvkit/pkg/wtcsv"
)

// FileDiff is the comparison result for one file present in both directories.
type FileDiff struct {
	Name  string       `json:"name"`
	Diffs []types.Diff `json:"diffs,omitempty"`
	// Err is set when either file fails to load or the tables are not
	// compatible. It never aborts the rest of the comparison.
	Err error `json:"-"`
}

// DirReport is the result of CompareDirs.
type DirReport struct {
	Left      string     `json:"left"`
	Right     string     `json:"right"`
	OnlyLeft  []string   `json:"only_left,omitempty"`
	OnlyRight []string   `json:"only_right,omitempty"`
	Files     []FileDiff `json:"files"`
}

// Changed reports whether any file differs, failed, or exists on one side only.
func (r *DirReport) Changed() bool {
	if len(r.OnlyLeft) > 0 || len(r.OnlyRight) > 0 {
		return true
	}
	for _, f := range r.Files {
		if f.Err != nil || len(f.Diffs) > 0 {
			return true
		}
	}
	return false
}

// CompareDirs diffs every table that exists under the same name in both
// directories. Pairs are loaded concurrently; results are sorted by name.
func CompareDirs(ctx context.Context, left, right string, opts Options) (*DirReport, error) {
	leftNames, err := listTables(left)
	if err != nil {
		return nil, err
	}
	rightNames, err := listTables(right)
	if err != nil {
		return nil, err
	}

	report := &DirReport{Left: left, Right: right}
	var common []string
	for name := range leftNames {
		if rightNames[name] {
			common = append(common, name)
		} else {
			report.OnlyLeft = append(report.OnlyLeft, name)
		}
	}
	for name := range rightNames {
		if !leftNames[name] {
			report.OnlyRight = append(report.OnlyRight, name)
		}
	}
	sort.Strings(common)
	sort.Strings(report.OnlyLeft)
	sort.Strings(report.OnlyRight)

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	// Each goroutine owns its slot and both tables it loads.
	report.Files = make([]FileDiff, len(common))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range common {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report.Files[i] = compareFile(left, right, name, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}

func compareFile(leftDir, rightDir, name string, opts Options) FileDiff {
	fd := FileDiff{Name: name}

	l, err := Load(filepath.Join(leftDir, name), opts)
	if err != nil {
		fd.Err = err
		return fd
	}
	r, err := Load(filepath.Join(rightDir, name), opts)
	if err != nil {
		fd.Err = err
		return fd
	}

	fd.Diffs, fd.Err = wtcsv.DiffTables(l.Table, r.Table, opts.Diff)
	return fd
}

func listTables(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() && strings.EqualFold(filepath.Ext(e.Name()), Extension) {
			names[e.Name()] = true
		}
	}
	return names, nil
}
