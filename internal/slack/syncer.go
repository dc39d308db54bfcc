package slack

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/daybook-cli/daybook/internal/config"
	"github.com/daybook-cli/daybook/internal/day"
)

// ErrNoToday reports a sync attempt when the workspace has no day file for
// today.
var ErrNoToday = errors.New("no day file for today")

// Syncer posts the current day to a Slack channel, updating the message on
// repeat syncs within the same day.
type Syncer struct {
	client   *Client
	channel  string
	rewrites []config.Rewrite
	state    *State
}

// NewSyncer builds a syncer from the Slack settings. statePath is where
// posted message records live; its directory is created if needed.
func NewSyncer(cfg *config.SlackConfig, statePath string) (*Syncer, error) {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil, errors.New("slack sync needs both a token and a channel")
	}
	if err := os.MkdirAll(filepath.Dir(statePath), 0755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	state, err := LoadState(statePath)
	if err != nil {
		return nil, err
	}

	return &Syncer{
		client:   NewClient(cfg.Token),
		channel:  cfg.Channel,
		rewrites: cfg.Rewrites,
		state:    state,
	}, nil
}

// Sync posts or updates the Slack message for d. It reports true when an
// existing message was updated. Updates go to the configured channel; the
// channel_id stored in the state file is informational.
func (s *Syncer) Sync(ctx context.Context, d *day.Day) (bool, error) {
	if d == nil {
		return false, ErrNoToday
	}

	text := RenderMessage(d, s.rewrites)
	date := d.Date.Format(dateLayout)

	if prev, ok := s.state.Find(date); ok {
		if err := s.client.UpdateMessage(ctx, s.channel, prev.Timestamp, text); err != nil {
			return false, err
		}
		return true, nil
	}

	ts, err := s.client.PostMessage(ctx, s.channel, text)
	if err != nil {
		return false, err
	}

	s.state.Add(MessageState{ChannelID: s.channel, Timestamp: ts, Date: date})
	if err := s.state.Save(); err != nil {
		return false, err
	}
	return false, nil
}
