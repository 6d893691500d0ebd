package session

type Phase int

const (
	PhaseHydrating Phase = iota
	PhaseAnonymous
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseHydrating:
		return "hydrating"
	case PhaseAnonymous:
		return "anonymous"
	case PhaseAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Session is the identity the client acts as. The zero value is absent.
type Session struct {
	Token  string
	Role   Role
	UserID int64
}

// Present is true only when all three fields are set.
func (s Session) Present() bool {
	return s.Token != "" && s.Role != "" && s.UserID > 0
}

// HasToken gates requests that need a bearer token.
func (s Session) HasToken() bool {
	return s.Token != ""
}

type State struct {
	Phase   Phase
	Session Session
}

func (s State) Authenticated() bool {
	return s.Phase == PhaseAuthenticated && s.Session.Present()
}
