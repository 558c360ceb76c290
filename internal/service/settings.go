package service

import (
	"context"
	"errors"

	"edulegit_service/internal/errdefs"
)

// Settings resolves plugin settings with assignment-level overrides taking
// precedence over the global defaults.
type Settings struct {
	store  PluginConfigStore
	global map[string]string
}

func NewSettings(store PluginConfigStore, global map[string]string) *Settings {
	if global == nil {
		global = map[string]string{}
	}
	return &Settings{store: store, global: global}
}

// Get returns the assignment-level value for name if one is set, otherwise
// the global default, otherwise "".
func (s *Settings) Get(ctx context.Context, assignmentID int64, name string) string {
	if s.store != nil {
		value, err := s.store.Get(ctx, assignmentID, name)
		if err == nil {
			return value
		}
		if !errors.Is(err, errdefs.ErrNotFound) {
			return s.global[name]
		}
	}
	return s.global[name]
}

func (s *Settings) GetBool(ctx context.Context, assignmentID int64, name string) bool {
	switch s.Get(ctx, assignmentID, name) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// WebhookToken returns the token used to authenticate webhook callbacks,
// checking the legacy key name as a fallback.
func (s *Settings) WebhookToken(ctx context.Context, assignmentID int64) string {
	if token := s.Get(ctx, assignmentID, "ws_token"); token != "" {
		return token
	}
	return s.Get(ctx, assignmentID, "wstoken")
}
