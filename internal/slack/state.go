package slack

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// dateLayout keys state entries by calendar day.
const dateLayout = "2006-01-02"

// MessageState records one posted daily message.
type MessageState struct {
	ChannelID string `json:"channel_id"`
	Timestamp string `json:"ts"`
	Date      string `json:"date"`
}

// State is the collection of posted messages, persisted as a JSON file.
type State struct {
	Path    string
	Entries []MessageState
}

// LoadState reads the state file at path. A missing file yields an empty
// state.
func LoadState(path string) (*State, error) {
	state := &State{Path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read sync state %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &state.Entries); err != nil {
		return nil, fmt.Errorf("parse sync state %s: %w", path, err)
	}
	return state, nil
}

// Save writes the state back to its path.
func (s *State) Save() error {
	data, err := json.MarshalIndent(s.Entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sync state: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("write sync state %s: %w", s.Path, err)
	}
	return nil
}

// Find returns the entry posted for a date formatted as dateLayout.
func (s *State) Find(date string) (MessageState, bool) {
	for _, entry := range s.Entries {
		if entry.Date == date {
			return entry, true
		}
	}
	return MessageState{}, false
}

// Add appends an entry.
func (s *State) Add(entry MessageState) {
	s.Entries = append(s.Entries, entry)
}
