package router

import (
	"context"
	"net/http"
	"strings"

	"github.com/creatorconnect/server/internal/pkg/jwt"
)

type identityContextKey struct{}

// GetIdentity returns the authenticated identity stored in the context, if any.
func GetIdentity(ctx context.Context) *Identity {
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	if !ok {
		return nil
	}

	return &id
}

// SetIdentity stores the authenticated identity in the context.
func SetIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

func middlewareAuthentication(verifier jwt.JWT, resolver IdentityResolver, publicEndpoints map[string]map[string]struct{}) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			if s, ok := publicEndpoints[r.Method]; ok {
				if _, skip := s[path]; skip {
					next.ServeHTTP(w, r)
					return
				}
			}

			// The scheme must be exactly "Bearer", case-sensitive.
			p := strings.Fields(r.Header.Get("Authorization"))
			if len(p) != 2 || p[0] != "Bearer" {
				writeJSON(w, errorResponse{Message: "Authorization token is required"}, http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(p[1])
			if err != nil {
				writeJSON(w, errorResponse{Message: "Invalid or expired token"}, http.StatusUnauthorized)
				return
			}

			identity, err := resolver.Resolve(r.Context(), claims.UserID)
			if err != nil {
				writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
				return
			}
			if identity == nil {
				writeJSON(w, errorResponse{Message: "Invalid token user"}, http.StatusUnauthorized)
				return
			}

			ctx := jwt.SetAuth(r.Context(), claims)
			ctx = SetIdentity(ctx, *identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
