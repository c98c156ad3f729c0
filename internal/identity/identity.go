// Package identity is the boundary to whoever authenticated the request.
// The HTTP auth middleware and the operator consumer put a user into the
// context; services only ask the Provider.
package identity

import "context"

type Provider interface {
	CurrentUserID(ctx context.Context) (string, bool)
}

type user struct {
	id   string
	role string
}

type userKey struct{}

func WithUser(ctx context.Context, userID, role string) context.Context {
	return context.WithValue(ctx, userKey{}, user{id: userID, role: role})
}

func fromContext(ctx context.Context) (user, bool) {
	u, ok := ctx.Value(userKey{}).(user)
	if !ok || u.id == "" {
		return user{}, false
	}
	return u, true
}

func IsAuthenticated(ctx context.Context) bool {
	_, ok := fromContext(ctx)
	return ok
}

func Role(ctx context.Context) string {
	u, _ := fromContext(ctx)
	return u.role
}

// ContextProvider reads the user placed by WithUser.
type ContextProvider struct{}

func NewContextProvider() ContextProvider {
	return ContextProvider{}
}

func (ContextProvider) CurrentUserID(ctx context.Context) (string, bool) {
	u, ok := fromContext(ctx)
	return u.id, ok
}
