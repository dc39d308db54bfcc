package slack

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/daybook-cli/daybook/internal/config"
	"github.com/daybook-cli/daybook/internal/day"
	"github.com/daybook-cli/daybook/internal/task"
)

type recordedCall struct {
	path    string
	payload apiPayload
}

type callRecorder struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (r *callRecorder) add(c recordedCall) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

func (r *callRecorder) all() []recordedCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedCall(nil), r.calls...)
}

func newTestSyncer(t *testing.T, statePath string, handler http.HandlerFunc) *Syncer {
	t.Helper()

	state, err := LoadState(statePath)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	return &Syncer{
		client:  newTestClient(t, handler),
		channel: "C123",
		state:   state,
	}
}

func testDay() *day.Day {
	return &day.Day{
		Date: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		Tasks: []task.Task{
			{Name: "Cook lunch", State: task.StateIncomplete},
		},
	}
}

func TestSyncPostsNewDay(t *testing.T) {
	rec := &callRecorder{}
	statePath := filepath.Join(t.TempDir(), "slack.json")

	s := newTestSyncer(t, statePath, func(w http.ResponseWriter, r *http.Request) {
		var payload apiPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		rec.add(recordedCall{path: r.URL.Path, payload: payload})
		w.Write([]byte(`{"ok": true, "ts": "1721.001"}`))
	})

	updated, err := s.Sync(context.Background(), testDay())
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if updated {
		t.Error("first sync reported an update")
	}

	calls := rec.all()
	if len(calls) != 1 || calls[0].path != "/chat.postMessage" {
		t.Fatalf("calls: got %+v, want one chat.postMessage", calls)
	}
	if calls[0].payload.Channel != "C123" {
		t.Errorf("channel: got %q, want C123", calls[0].payload.Channel)
	}

	state, err := LoadState(statePath)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	entry, ok := state.Find("2024-07-01")
	if !ok {
		t.Fatal("sync did not record the posted message")
	}
	if entry.Timestamp != "1721.001" || entry.ChannelID != "C123" {
		t.Errorf("entry: got %+v", entry)
	}
}

func TestSyncUpdatesSameDay(t *testing.T) {
	rec := &callRecorder{}
	statePath := filepath.Join(t.TempDir(), "slack.json")

	s := newTestSyncer(t, statePath, func(w http.ResponseWriter, r *http.Request) {
		var payload apiPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		rec.add(recordedCall{path: r.URL.Path, payload: payload})
		w.Write([]byte(`{"ok": true, "ts": "1721.001"}`))
	})

	if _, err := s.Sync(context.Background(), testDay()); err != nil {
		t.Fatalf("first Sync failed: %v", err)
	}
	updated, err := s.Sync(context.Background(), testDay())
	if err != nil {
		t.Fatalf("second Sync failed: %v", err)
	}
	if !updated {
		t.Error("second sync did not report an update")
	}

	calls := rec.all()
	if len(calls) != 2 {
		t.Fatalf("call count: got %d, want 2", len(calls))
	}
	if calls[1].path != "/chat.update" {
		t.Errorf("second call: got %s, want /chat.update", calls[1].path)
	}
	if calls[1].payload.TS != "1721.001" {
		t.Errorf("update ts: got %q, want the posted ts", calls[1].payload.TS)
	}

	state, err := LoadState(statePath)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if len(state.Entries) != 1 {
		t.Errorf("state entries: got %d, want 1", len(state.Entries))
	}
}

func TestSyncUpdateUsesConfiguredChannel(t *testing.T) {
	rec := &callRecorder{}
	statePath := filepath.Join(t.TempDir(), "slack.json")

	seed := &State{Path: statePath}
	seed.Add(MessageState{ChannelID: "OLD", Timestamp: "999.9", Date: "2024-07-01"})
	if err := seed.Save(); err != nil {
		t.Fatal(err)
	}

	s := newTestSyncer(t, statePath, func(w http.ResponseWriter, r *http.Request) {
		var payload apiPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		rec.add(recordedCall{path: r.URL.Path, payload: payload})
		w.Write([]byte(`{"ok": true, "ts": "999.9"}`))
	})

	updated, err := s.Sync(context.Background(), testDay())
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if !updated {
		t.Error("sync did not report an update")
	}

	calls := rec.all()
	if len(calls) != 1 || calls[0].path != "/chat.update" {
		t.Fatalf("calls: got %+v, want one chat.update", calls)
	}
	if calls[0].payload.Channel != "C123" {
		t.Errorf("channel: got %q, want the configured C123", calls[0].payload.Channel)
	}
	if calls[0].payload.TS != "999.9" {
		t.Errorf("ts: got %q, want the stored 999.9", calls[0].payload.TS)
	}
}

func TestSyncWithoutToday(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "slack.json")
	s := newTestSyncer(t, statePath, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no API call expected")
	})

	_, err := s.Sync(context.Background(), nil)
	if !errors.Is(err, ErrNoToday) {
		t.Errorf("error = %v, want ErrNoToday", err)
	}
}

func TestSyncSurfacesAPIError(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "slack.json")
	s := newTestSyncer(t, statePath, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": false, "error": "invalid_auth"}`))
	})

	_, err := s.Sync(context.Background(), testDay())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T (%v), want *APIError", err, err)
	}
	if apiErr.Code != "invalid_auth" {
		t.Errorf("Code: got %q, want invalid_auth", apiErr.Code)
	}

	// A failed post records nothing.
	if _, err := os.Stat(statePath); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("state file: got %v, want not created", err)
	}
}

func TestNewSyncerCreatesStateDir(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state", "slack.json")

	cfg := &config.SlackConfig{Token: "xoxb-test", Channel: "C123"}
	s, err := NewSyncer(cfg, statePath)
	if err != nil {
		t.Fatalf("NewSyncer failed: %v", err)
	}
	if s.channel != "C123" {
		t.Errorf("channel: got %q, want C123", s.channel)
	}

	info, err := os.Stat(filepath.Dir(statePath))
	if err != nil || !info.IsDir() {
		t.Errorf("state directory was not created: %v", err)
	}
}

func TestNewSyncerRequiresTokenAndChannel(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "slack.json")

	tests := []struct {
		name string
		cfg  *config.SlackConfig
	}{
		{"missing channel", &config.SlackConfig{Token: "xoxb-test"}},
		{"missing token", &config.SlackConfig{Channel: "C123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSyncer(tt.cfg, statePath); err == nil {
				t.Error("NewSyncer succeeded with incomplete settings")
			}
		})
	}
}
