// Package jobdelivery manages delivery layer of jobs.
package jobdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gigpay/gigpay/internal/domain"
	"github.com/gigpay/gigpay/internal/middleware"
	"github.com/gigpay/gigpay/pkg/errorspkg"
	"github.com/gigpay/gigpay/pkg/jsonresponse"
)

// Service provides service layer interface needed by job delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package jobdelivery
type Service interface {
	ListUnpaid(ctx context.Context, profileID int64) ([]domain.Job, error)
}

// Handler facilitates job delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns job handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type jobsResponse struct {
	Jobs []domain.Job `json:"jobs"`
}

// ListUnpaid handles http request to return the caller's unpaid jobs under
// in-progress contracts.
func (h *Handler) ListUnpaid(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	profile := gctx.MustGet(middleware.ProfileKey).(domain.Profile)

	jobs, err := h.service.ListUnpaid(ctx, profile.ID)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, jobsResponse{Jobs: jobs})
}
