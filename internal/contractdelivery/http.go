// Package contractdelivery manages delivery layer of contracts.
package contractdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gigpay/gigpay/internal/domain"
	"github.com/gigpay/gigpay/internal/middleware"
	"github.com/gigpay/gigpay/pkg/errorspkg"
	"github.com/gigpay/gigpay/pkg/jsonresponse"
)

// Service provides service layer interface needed by contract delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package contractdelivery
type Service interface {
	Get(ctx context.Context, id, profileID int64) (domain.Contract, error)
	ListActive(ctx context.Context, profileID int64) ([]domain.Contract, error)
}

// Handler facilitates contract delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns contract handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type contractResponse struct {
	Contract domain.Contract `json:"contract"`
}

type getContractURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to return one of the caller's contracts.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri getContractURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	profile := gctx.MustGet(middleware.ProfileKey).(domain.Profile)

	contract, err := h.service.Get(ctx, uri.ID, profile.ID)
	if err != nil {
		l.Info().Err(err).Send()

		if errors.Is(err, domain.ErrContractNotFound) {
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, contractResponse{Contract: contract})
}

type contractsResponse struct {
	Contracts []domain.Contract `json:"contracts"`
}

// List handles http request to return the caller's non-terminated contracts.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	profile := gctx.MustGet(middleware.ProfileKey).(domain.Profile)

	contracts, err := h.service.ListActive(ctx, profile.ID)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, contractsResponse{Contracts: contracts})
}
