package day

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/daybook-cli/daybook/internal/config"
)

// Entry pairs a day file with the date parsed from its name.
type Entry struct {
	Date time.Time
	Path string
}

// Index is the ordered list of day files in a workspace, oldest first.
type Index []Entry

// BuildIndex scans dir for day files. The recurring template and files
// with a different extension are excluded; files whose names do not parse
// as dates are skipped. os.ReadDir returns names in lexical order and the
// stable sort keeps that order for entries with equal dates.
func BuildIndex(dir string, format *config.Format) (Index, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read workspace directory %s: %w", dir, err)
	}

	var index Index
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if name == format.RecurringFile {
			continue
		}
		if filepath.Ext(name) != "."+format.DayExtension {
			continue
		}

		path := filepath.Join(dir, name)
		date, err := DateFromPath(path, format.DateLayout)
		if err != nil {
			continue
		}
		index = append(index, Entry{Date: date, Path: path})
	}

	sort.SliceStable(index, func(i, j int) bool {
		return index[i].Date.Before(index[j].Date)
	})
	return index, nil
}

// Last returns the most recent entry.
func (ix Index) Last() (Entry, bool) {
	if len(ix) == 0 {
		return Entry{}, false
	}
	return ix[len(ix)-1], true
}

// On returns the entry whose date falls on the same calendar day as t.
func (ix Index) On(t time.Time) (Entry, bool) {
	for _, entry := range ix {
		if sameDate(entry.Date, t) {
			return entry, true
		}
	}
	return Entry{}, false
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
