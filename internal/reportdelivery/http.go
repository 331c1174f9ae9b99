// Package reportdelivery manages delivery layer of payment reports.
package reportdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gigpay/gigpay/internal/domain"
	"github.com/gigpay/gigpay/internal/middleware"
	"github.com/gigpay/gigpay/pkg/errorspkg"
	"github.com/gigpay/gigpay/pkg/jsonresponse"
)

const dateLayout = "2006-01-02"

// ErrInvalidDateRange indicates a window whose start is after its end.
var ErrInvalidDateRange = errors.New("invalid date range: start should be before end date")

// Service provides service layer interface needed by report delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package reportdelivery
type Service interface {
	TotalOutstanding(ctx context.Context, clientID int64) (decimal.Decimal, error)
	BestProfessions(ctx context.Context, start, end time.Time) ([]domain.ProfessionEarnings, error)
	BestClients(ctx context.Context, start, end time.Time, limit int32) ([]domain.ClientPayments, error)
}

// Handler facilitates report delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns report handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type windowRequest struct {
	Start string `form:"start" binding:"required,datetime=2006-01-02"`
	End   string `form:"end" binding:"required,datetime=2006-01-02"`
	// Limit is used by the best-clients report only.
	Limit int32 `form:"limit,default=2" binding:"min=1"`
}

// window parses the validated date strings and rejects inverted ranges.
func (r windowRequest) window() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, r.Start)
	if err != nil {
		return start, end, err
	}

	end, err = time.Parse(dateLayout, r.End)
	if err != nil {
		return start, end, err
	}

	if start.After(end) {
		return start, end, ErrInvalidDateRange
	}

	return start, end, nil
}

type professionsData struct {
	Professions []domain.ProfessionEarnings `json:"professions"`
}

type professionsResponse struct {
	Data professionsData `json:"data,omitempty"`
}

// BestProfessions handles http request to report professions that earned the
// most in the given time window.
func (h *Handler) BestProfessions(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req windowRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	start, end, err := req.window()
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	professions, err := h.service.BestProfessions(ctx, start, end)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, professionsResponse{Data: professionsData{professions}})
}

type clientsData struct {
	Clients []domain.ClientPayments `json:"clients"`
}

type clientsResponse struct {
	Data clientsData `json:"data,omitempty"`
}

// BestClients handles http request to report clients that paid the most in
// the given time window.
func (h *Handler) BestClients(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req windowRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	start, end, err := req.window()
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	clients, err := h.service.BestClients(ctx, start, end, req.Limit)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, clientsResponse{Data: clientsData{clients}})
}

type outstandingData struct {
	Outstanding decimal.Decimal `json:"outstanding"`
}

type outstandingResponse struct {
	Data outstandingData `json:"data,omitempty"`
}

// Outstanding handles http request to get the caller's outstanding unpaid
// job value.
func (h *Handler) Outstanding(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	profile := gctx.MustGet(middleware.ProfileKey).(domain.Profile)

	outstanding, err := h.service.TotalOutstanding(ctx, profile.ID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, outstandingResponse{Data: outstandingData{outstanding}})
}
