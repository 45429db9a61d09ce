package middleware

import (
	"net/http"

	"github.com/fitlogapp/fitlog/internal/auth"
)

// SessionToken moves the session token from the request header into the
// request context. Requests without a token pass through untouched: the
// anonymous local mode is a first-class citizen, so nothing is rejected
// here. Expired and unknown tokens are resolved later, per storage call.
func SessionToken() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(auth.TokenHeader)
			if token != "" {
				r = r.WithContext(auth.ContextWithToken(r.Context(), token))
			}
			next.ServeHTTP(w, r)
		})
	}
}
