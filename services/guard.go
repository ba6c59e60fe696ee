package services

import (
	"github.com/jcoronel/bantay/core"
)

const defaultLoginLocation = "/login"

// Guard is the single enforcement point for protected resources. Every
// protected handler must pass through RequireSession; there is no other path
// to protected data.
type Guard struct {
	sessions      core.SessionStore
	loginLocation string
}

func NewGuard(sessions core.SessionStore, loginLocation string) *Guard {
	if loginLocation == "" {
		loginLocation = defaultLoginLocation
	}
	return &Guard{
		sessions:      sessions,
		loginLocation: loginLocation,
	}
}

// RequireSession returns the caller's descriptor, or an AccessDenied carrying
// the login redirect. Callers must render the denial as a redirect - never a
// 200 response with protected content.
func (g *Guard) RequireSession(contextID string) (*core.SessionDescriptor, error) {
	descriptor, err := g.sessions.Get(contextID)
	if err != nil || descriptor == nil {
		return nil, &core.AccessDenied{Location: g.loginLocation}
	}
	return descriptor, nil
}
