package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/grx10/hris-backend-go/internal/domain/auth"
	"github.com/grx10/hris-backend-go/internal/domain/user"
	"github.com/grx10/hris-backend-go/internal/handler/http/response"
	"github.com/grx10/hris-backend-go/internal/pkg/jwt"
)

type actorKey struct{}

// AuthRequired rejects requests without a live access token and stores the
// verified Actor in the request context. It must run after jwtauth.Verifier.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			actor, err := jwtService.ActorFromClaims(claims)
			if err != nil {
				slog.Debug("rejecting token", "error", err)
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			issuedAt, ok := jwt.IssuedAt(claims)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if jwtService.IsEmployeeRevoked(actor.ID, issuedAt) {
				response.HandleError(w, auth.ErrAccessRevoked)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		}
		return http.HandlerFunc(hfn)
	}
}

func WithActor(ctx context.Context, actor user.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the identity AuthRequired attached to ctx.
func ActorFromContext(ctx context.Context) (user.Actor, error) {
	actor, ok := ctx.Value(actorKey{}).(user.Actor)
	if !ok || actor.ID == "" {
		return user.Actor{}, user.ErrActorMissing
	}
	return actor, nil
}
