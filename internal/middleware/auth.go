// Package middleware provides gin middleware shared across all handlers.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gigpay/gigpay/internal/domain"
	"github.com/gigpay/gigpay/pkg/jsonresponse"
)

const (
	// ProfileHeaderKey is the request header carrying the caller's profile id.
	ProfileHeaderKey = "profile_id"
	// ProfileKey is the gin context key holding the resolved domain.Profile.
	ProfileKey = "profile"
)

// ErrUnauthenticated indicates a missing or unresolvable profile header.
var ErrUnauthenticated = errors.New("profile header is missing or invalid")

// ProfileGetter resolves a profile id to a full profile.
type ProfileGetter interface {
	Get(ctx context.Context, id int64) (domain.Profile, error)
}

// ProfileAuth resolves the caller's identity from the profile_id header and
// stores the profile in the request context. Requests without a resolvable
// profile are rejected.
func ProfileAuth(profiles ProfileGetter) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		l := zerolog.Ctx(gctx.Request.Context())

		header := gctx.GetHeader(ProfileHeaderKey)
		if header == "" {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, jsonresponse.Error(ErrUnauthenticated))
			return
		}

		profileID, err := strconv.ParseInt(header, 10, 64)
		if err != nil {
			l.Info().Err(err).Send()
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, jsonresponse.Error(ErrUnauthenticated))

			return
		}

		profile, err := profiles.Get(gctx.Request.Context(), profileID)
		if err != nil {
			l.Info().Err(err).Send()
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, jsonresponse.Error(ErrUnauthenticated))

			return
		}

		gctx.Set(ProfileKey, profile)
		gctx.Next()
	}
}
