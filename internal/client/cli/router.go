package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/makanscan/internal/client/session"
	"github.com/dmitrijs2005/makanscan/internal/logging"
)

// Route is the top-level screen the client shows.
type Route int

const (
	RouteLoading Route = iota
	RouteAuth
	RouteMain
	RouteError
)

func (r Route) String() string {
	switch r {
	case RouteLoading:
		return "loading"
	case RouteAuth:
		return "auth"
	case RouteMain:
		return "main"
	case RouteError:
		return "error"
	}
	return "unknown"
}

// sessionSource is the part of session.Store the router reads.
type sessionSource interface {
	LoadUser(ctx context.Context)
	Snapshot() session.State
}

// Router picks the route from the session state.
type Router struct {
	sess   sessionSource
	logger logging.Logger

	once sync.Once

	mu      sync.Mutex
	loadErr error
}

func NewRouter(sess sessionSource, logger logging.Logger) *Router {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Router{sess: sess, logger: logger}
}

// Start restores the persisted session. Only the first call does any work.
// A panic during the restore is recovered and pins the router to RouteError;
// it is not retried.
func (r *Router) Start(ctx context.Context) {
	r.once.Do(func() {
		defer func() {
			if p := recover(); p != nil {
				r.mu.Lock()
				r.loadErr = fmt.Errorf("restore session: %v", p)
				r.mu.Unlock()
				r.logger.Error(ctx, "session restore panicked", "panic", p)
			}
		}()
		r.sess.LoadUser(ctx)
	})
}

// Err returns the restore failure, if any.
func (r *Router) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadErr
}

func (r *Router) Current() Route {
	if r.Err() != nil {
		return RouteError
	}

	st := r.sess.Snapshot()
	switch {
	case st.IsLoading:
		return RouteLoading
	case st.IsAuthenticated:
		return RouteMain
	}
	return RouteAuth
}
