package session

import "github.com/dmitrijs2005/makanscan/internal/client/models"

// State is a point-in-time view of the session.
type State struct {
	User            *models.User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
}

func (s State) clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

func loggedOut() State {
	return State{}
}

// Phase is the coarse lifecycle position of a Store.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseUnauthenticated
	PhaseAuthenticating
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseUnauthenticated:
		return "unauthenticated"
	case PhaseAuthenticating:
		return "authenticating"
	case PhaseAuthenticated:
		return "authenticated"
	}
	return "unknown"
}
