package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
	"github.com/dmitrijs2005/makanscan/internal/client/storage"
	"github.com/dmitrijs2005/makanscan/internal/logging"
)

// ErrIncompleteAuthResponse is returned when the backend accepts a login or
// registration but omits the token or the user.
var ErrIncompleteAuthResponse = errors.New("auth response missing token or user")

var errNoSession = errors.New("no stored session")

// Authenticator is the part of the API client the store needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error)
}

type Store struct {
	auth   Authenticator
	store  storage.Storage
	logger logging.Logger

	// op serializes LoadUser, Login, Register, Logout and Revalidate.
	op sync.Mutex

	mu             sync.RWMutex
	state          State
	authenticating bool

	subsMu sync.Mutex
	subs   map[int]func(State)
	nextID int
}

func NewStore(auth Authenticator, store storage.Storage, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Store{
		auth:   auth,
		store:  store,
		logger: logger.With("component", "session"),
		state:  State{IsLoading: true},
		subs:   make(map[int]func(State)),
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func (s *Store) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.state.IsLoading:
		return PhaseInitializing
	case s.authenticating:
		return PhaseAuthenticating
	case s.state.IsAuthenticated:
		return PhaseAuthenticated
	}
	return PhaseUnauthenticated
}

// Expiry reports the exp claim of the current token, if any.
func (s *Store) Expiry() (time.Time, bool) {
	return TokenExpiry(s.Snapshot().Token)
}

// Subscribe registers fn to be called synchronously after every state change.
// fn runs on the mutating goroutine and must not call LoadUser, Login,
// Register, Logout or Revalidate. The returned func removes it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.subsMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, id)
			s.subsMu.Unlock()
		})
	}
}

// LoadUser restores the persisted session. Both entries must be present and
// the user entry must decode; anything else leaves the store logged out.
// Loading always finishes, and no error is surfaced.
func (s *Store) LoadUser(ctx context.Context) {
	s.op.Lock()
	defer s.op.Unlock()

	user, token, err := s.readSession(ctx)
	if err != nil {
		if !errors.Is(err, errNoSession) {
			s.logger.Warn(ctx, "stored session unusable, starting logged out", "error", err)
		}
		s.set(loggedOut())
		return
	}

	s.set(State{User: user, Token: token, IsAuthenticated: true})
	s.logger.Info(ctx, "session restored", "user_id", user.ID)
}

// Login authenticates with the backend. API errors are returned unchanged
// and leave the state as it was.
func (s *Store) Login(ctx context.Context, email, password string) error {
	return s.authenticate(ctx, func(ctx context.Context) (*models.AuthResponse, error) {
		return s.auth.Login(ctx, email, password)
	})
}

// Register creates an account and signs in with it. Input is not validated
// here.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	return s.authenticate(ctx, func(ctx context.Context) (*models.AuthResponse, error) {
		return s.auth.Register(ctx, name, email, password)
	})
}

func (s *Store) authenticate(ctx context.Context, fn func(context.Context) (*models.AuthResponse, error)) error {
	s.op.Lock()
	defer s.op.Unlock()

	s.setAuthenticating(true)
	defer s.setAuthenticating(false)

	resp, err := fn(ctx)
	if err != nil {
		return err
	}
	if resp == nil || resp.Token == "" || resp.User == nil {
		return ErrIncompleteAuthResponse
	}

	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.store.SetMany(ctx, map[string][]byte{
		storage.TokenKey: []byte(resp.Token),
		storage.UserKey:  userJSON,
	}); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.RLock()
	loading := s.state.IsLoading
	s.mu.RUnlock()

	s.set(State{User: resp.User, Token: resp.Token, IsAuthenticated: true, IsLoading: loading})
	s.logger.Info(ctx, "signed in", "user_id", resp.User.ID)
	return nil
}

// Logout removes the persisted session and resets the in-memory state. The
// reset happens even if removal fails; the removal error is returned.
func (s *Store) Logout(ctx context.Context) error {
	s.op.Lock()
	defer s.op.Unlock()

	err := s.store.Remove(ctx, storage.SessionKeys...)
	if err != nil {
		s.logger.Warn(ctx, "failed to remove stored session", "error", err)
		err = fmt.Errorf("remove session: %w", err)
	}

	s.mu.RLock()
	loading := s.state.IsLoading
	s.mu.RUnlock()

	st := loggedOut()
	st.IsLoading = loading
	s.set(st)
	s.logger.Info(ctx, "signed out")
	return err
}

// Revalidate drops the in-memory credentials when the persisted session is
// gone or no longer matches, and reports whether the store is still
// authenticated. A storage read failure leaves the state untouched.
func (s *Store) Revalidate(ctx context.Context) bool {
	s.op.Lock()
	defer s.op.Unlock()

	current := s.Snapshot()
	if !current.IsAuthenticated {
		return false
	}

	_, token, err := s.readSession(ctx)
	switch {
	case err == nil && token == current.Token:
		return true
	case err != nil && !errors.Is(err, errNoSession) && !isDecodeError(err):
		s.logger.Warn(ctx, "revalidate: storage read failed", "error", err)
		return true
	}

	st := loggedOut()
	st.IsLoading = current.IsLoading
	s.set(st)
	s.logger.Info(ctx, "stored session gone, signed out locally")
	return false
}

type decodeError struct{ err error }

func (e *decodeError) Error() string { return "decode stored user: " + e.err.Error() }
func (e *decodeError) Unwrap() error { return e.err }

func isDecodeError(err error) bool {
	var de *decodeError
	return errors.As(err, &de)
}

func (s *Store) readSession(ctx context.Context) (*models.User, string, error) {
	token, err := s.store.Get(ctx, storage.TokenKey)
	if err != nil {
		return nil, "", err
	}
	userJSON, err := s.store.Get(ctx, storage.UserKey)
	if err != nil {
		return nil, "", err
	}
	if len(token) == 0 || len(userJSON) == 0 {
		return nil, "", errNoSession
	}

	var user *models.User
	if err := json.Unmarshal(userJSON, &user); err != nil {
		return nil, "", &decodeError{err: err}
	}
	if user == nil {
		return nil, "", &decodeError{err: errors.New("null user")}
	}
	return user, string(token), nil
}

func (s *Store) setAuthenticating(v bool) {
	s.mu.Lock()
	s.authenticating = v
	s.mu.Unlock()
}

// set replaces the state and notifies subscribers. Callers hold s.op, which
// keeps notifications in order.
func (s *Store) set(st State) {
	s.mu.Lock()
	s.state = st
	snap := s.state.clone()
	s.mu.Unlock()

	s.subsMu.Lock()
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(snap.clone())
	}
}
