package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/peerwave/signaling/internal/core/domain"
)

type contextKey string

const callerKey contextKey = "caller"

// Authenticate resolves the session token into the calling account via
// the Account Directory. Tokens arrive as a bearer header or, for
// browser clients, a "session" cookie.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			if cookie, err := r.Cookie("session"); err == nil {
				token = cookie.Value
			}
		}
		if token == "" {
			writeError(w, domain.ErrAuthRequired)
			return
		}

		caller, err := h.Directory.Resolve(r.Context(), token)
		if err != nil {
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), callerKey, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimPrefix(auth, prefix)
}

func callerFrom(ctx context.Context) (domain.Account, error) {
	caller, ok := ctx.Value(callerKey).(domain.Account)
	if !ok {
		return domain.Account{}, domain.ErrAuthRequired
	}
	return caller, nil
}
