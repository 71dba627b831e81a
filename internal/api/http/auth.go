package http

import (
	"net/http"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/logger"
	"relief-backoffice/internal/security"
)

// AuthMiddleware turns the identity service's session cookie into an explicit
// principal on the request context. Requests without a valid cookie pass
// through anonymously; the Require* wrappers decide what that means per route.
type AuthMiddleware struct {
	tokens     security.TokenManager
	cookieName string
	loginURL   string
}

func NewAuthMiddleware(tokens security.TokenManager, cookieName, loginURL string) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:     tokens,
		cookieName: cookieName,
		loginURL:   loginURL,
	}
}

// Attach resolves the cookie-borne principal when present.
func (m *AuthMiddleware) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err == nil && cookie.Value != "" {
			claims, err := m.tokens.ValidateToken(cookie.Value)
			if err != nil {
				logger.Debug("Rejected session cookie", "error", err)
			} else {
				principal := &domain.Principal{
					UserID: claims.UserID,
					Email:  claims.Email,
					Name:   claims.Name,
					Roles:  claims.Roles,
				}
				r = r.WithContext(WithPrincipal(r.Context(), principal))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RedirectToLogin sends an unauthenticated caller to the identity service's
// login entry point.
func (m *AuthMiddleware) RedirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, m.loginURL, http.StatusFound)
}

// RequireRole rejects callers without the given role claim. Unauthenticated
// callers are redirected to login instead of rejected outright.
func (m *AuthMiddleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				m.RedirectToLogin(w, r)
				return
			}
			if !principal.HasRole(role) {
				logger.Warn("Role check failed", "user_id", principal.UserID, "required_role", role, "path", r.URL.Path)
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
