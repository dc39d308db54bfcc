package day

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/daybook-cli/daybook/internal/config"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestBuildIndex(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "2024-07-03.md")
	touch(t, dir, "2024-07-01.md")
	touch(t, dir, "2024-07-02.md")
	touch(t, dir, ".recurring.md")
	touch(t, dir, "2024-07-04.txt")
	touch(t, dir, "scratch.md")
	if err := os.Mkdir(filepath.Join(dir, "2024-07-05.md"), 0755); err != nil {
		t.Fatal(err)
	}

	index, err := BuildIndex(dir, config.DefaultFormat())
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	if len(index) != 3 {
		t.Fatalf("entry count: got %d, want 3: %+v", len(index), index)
	}
	for i, wantDay := range []int{1, 2, 3} {
		if index[i].Date.Day() != wantDay {
			t.Errorf("entry %d: got day %d, want %d", i, index[i].Date.Day(), wantDay)
		}
	}
	if want := filepath.Join(dir, "2024-07-01.md"); index[0].Path != want {
		t.Errorf("entry 0 path: got %q, want %q", index[0].Path, want)
	}
}

func TestBuildIndexCustomExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "2024-07-01.txt")
	touch(t, dir, "2024-07-02.md")

	format := config.DefaultFormat()
	format.DayExtension = "txt"

	index, err := BuildIndex(dir, format)
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}
	if len(index) != 1 {
		t.Fatalf("entry count: got %d, want 1", len(index))
	}
	if index[0].Date.Day() != 1 {
		t.Errorf("entry: got %+v", index[0])
	}
}

func TestBuildIndexEmptyDir(t *testing.T) {
	index, err := BuildIndex(t.TempDir(), config.DefaultFormat())
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}
	if len(index) != 0 {
		t.Errorf("entry count: got %d, want 0", len(index))
	}
}

func TestBuildIndexMissingDir(t *testing.T) {
	if _, err := BuildIndex(filepath.Join(t.TempDir(), "absent"), config.DefaultFormat()); err == nil {
		t.Fatal("BuildIndex succeeded on a missing directory")
	}
}

func TestIndexLast(t *testing.T) {
	var empty Index
	if _, ok := empty.Last(); ok {
		t.Error("Last on empty index reported an entry")
	}

	index := Index{
		{Date: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), Path: "a"},
		{Date: time.Date(2024, time.July, 2, 0, 0, 0, 0, time.UTC), Path: "b"},
	}
	last, ok := index.Last()
	if !ok {
		t.Fatal("Last reported no entry")
	}
	if last.Path != "b" {
		t.Errorf("Last: got %q, want b", last.Path)
	}
}

func TestIndexOn(t *testing.T) {
	index := Index{
		{Date: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), Path: "a"},
		{Date: time.Date(2024, time.July, 2, 0, 0, 0, 0, time.UTC), Path: "b"},
	}

	// Clock times on the same calendar day still match.
	entry, ok := index.On(time.Date(2024, time.July, 2, 15, 4, 5, 0, time.UTC))
	if !ok {
		t.Fatal("On found no entry for an indexed date")
	}
	if entry.Path != "b" {
		t.Errorf("On: got %q, want b", entry.Path)
	}

	if _, ok := index.On(time.Date(2024, time.July, 3, 0, 0, 0, 0, time.UTC)); ok {
		t.Error("On reported an entry for an unindexed date")
	}
}
