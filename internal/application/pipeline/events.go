package pipeline

import (
	"context"
	"fmt"

	"execlauncher/internal/application"
	"execlauncher/internal/domain"
)

// EventKind identifies a host event
type EventKind int

const (
	EventQuery             EventKind = iota // User typed a query
	EventEnter                              // User selected a result
	EventPreferences                        // Initial full preference load
	EventPreferencesUpdate                  // One preference changed
)

func (k EventKind) String() string {
	switch k {
	case EventQuery:
		return "query"
	case EventEnter:
		return "enter"
	case EventPreferences:
		return "preferences"
	case EventPreferencesUpdate:
		return "preferences_update"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is a request from the host
type Event struct {
	Kind EventKind

	// Argument is the query text for EventQuery and the launch payload for EventEnter
	Argument string

	// Preferences is set for EventPreferences
	Preferences domain.Preferences

	// ID and NewValue are set for EventPreferencesUpdate
	ID       string
	NewValue any
}

// Response carries the outcome of an event
type Response struct {
	Items    []domain.ResultItem // EventQuery
	Settings domain.Settings     // Preference events
}

type handlerFunc func(ctx context.Context, ev Event) (Response, error)

func (s *Service) defaultHandlers() map[EventKind]handlerFunc {
	return map[EventKind]handlerFunc{
		EventQuery: func(ctx context.Context, ev Event) (Response, error) {
			return Response{Items: s.Query(ctx, ev.Argument)}, nil
		},
		EventEnter: func(ctx context.Context, ev Event) (Response, error) {
			s.Launch(ctx, ev.Argument)
			return Response{}, nil
		},
		EventPreferences: func(ctx context.Context, ev Event) (Response, error) {
			return Response{Settings: s.Configure(ctx, ev.Preferences)}, nil
		},
		EventPreferencesUpdate: func(ctx context.Context, ev Event) (Response, error) {
			settings, err := s.UpdatePreference(ctx, ev.ID, ev.NewValue)
			return Response{Settings: settings}, err
		},
	}
}

// Dispatch routes ev to its handler
func (s *Service) Dispatch(ctx context.Context, ev Event) (Response, error) {
	handler, ok := s.handlers[ev.Kind]
	if !ok {
		return Response{}, fmt.Errorf("%w: %s", application.ErrUnknownEvent, ev.Kind)
	}
	return handler(ctx, ev)
}
