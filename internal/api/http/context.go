package http

import (
	"context"

	"relief-backoffice/internal/domain"
)

type contextKey string

const principalKey contextKey = "principal"

// WithPrincipal attaches the authenticated caller to the request context.
func WithPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext extracts the authenticated caller, if any.
func PrincipalFromContext(ctx context.Context) (*domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*domain.Principal)
	return p, ok && p != nil
}
