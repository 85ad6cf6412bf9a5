package appstate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/domonda/go-datatable/internal/logging"
)

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithThemeStorage sets the storage used to load the
// initial theme and to persist toggled themes.
func WithThemeStorage(storage ThemeStorage) StoreOption {
	return func(s *Store) { s.themes = storage }
}

// WithLogger sets the logger for state transitions,
// the default is the request scoped logger of the dispatch context.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// WithInitialState sets the state before the stored theme is applied.
func WithInitialState(state *State) StoreOption {
	return func(s *Store) { s.state = state }
}

// Store holds the current State and applies
// dispatched operations one at a time.
type Store struct {
	themes ThemeStorage
	logger *slog.Logger

	mtx         sync.Mutex
	state       *State
	subscribers map[int]func(*State)
	nextSubID   int
}

// NewStore returns a Store with the theme loaded from the
// configured ThemeStorage. A missing or unreadable theme
// results in DefaultTheme and is logged as warning.
func NewStore(ctx context.Context, opts ...StoreOption) *Store {
	s := &Store{
		themes:      new(MemoryThemeStorage),
		subscribers: make(map[int]func(*State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.state == nil {
		s.state = NewState(DefaultTheme)
	}

	theme, ok, err := s.themes.LoadTheme(ctx)
	if err != nil {
		s.log(ctx).Warn("loading theme failed, using default", "error", err, "theme", DefaultTheme)
	}
	if ok {
		s.state = Reduce(s.state, SetTheme{Theme: theme})
	}
	return s
}

// State returns the current state snapshot.
func (s *Store) State() *State {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.state
}

// Dispatch applies op to the current state and returns the new state.
//
// After ToggleTheme the new theme is persisted, a persistence
// error is logged and does not roll back the state change.
// Subscribers are notified outside of the store lock
// when the state changed.
func (s *Store) Dispatch(ctx context.Context, op Operation) *State {
	log := s.log(ctx)

	s.mtx.Lock()
	prev := s.state
	next := Reduce(prev, op)
	s.state = next
	// Saved under the lock so the stored theme
	// follows the order of dispatched toggles.
	if _, ok := op.(ToggleTheme); ok {
		if err := s.themes.SaveTheme(ctx, next.Theme); err != nil {
			log.Warn("persisting theme failed", "error", err, "theme", next.Theme)
		}
	}
	subs := make([]func(*State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mtx.Unlock()

	if op != nil {
		log.Debug("dispatched operation", "op", op.OperationName(), "changed", next != prev)
	}

	if next != prev {
		for _, fn := range subs {
			fn(next)
		}
	}
	return next
}

// Subscribe registers fn to be called with every changed state.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(*State)) (unsubscribe func()) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mtx.Lock()
		defer s.mtx.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store) log(ctx context.Context) *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return logging.FromContext(ctx)
}
