// Package settlementdelivery manages delivery layer of settlements.
package settlementdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gigpay/gigpay/internal/domain"
	"github.com/gigpay/gigpay/internal/middleware"
	"github.com/gigpay/gigpay/pkg/errorspkg"
	"github.com/gigpay/gigpay/pkg/jsonresponse"
)

// ErrForeignProfileDeposit indicates a deposit aimed at somebody else's profile.
var ErrForeignProfileDeposit = errors.New("deposits are allowed only into your own profile")

// Service provides service layer interface needed by settlement delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package settlementdelivery
type Service interface {
	PayJob(ctx context.Context, jobID, requestingProfileID int64, paymentValue decimal.Decimal) error
	Deposit(ctx context.Context, profileID int64, depositValue decimal.Decimal) error
}

// Handler facilitates settlement delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns settlement handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type payJobURI struct {
	JobID int64 `uri:"jobId" binding:"required,min=1"`
}

type payJobRequest struct {
	PaymentValue decimal.Decimal `json:"paymentValue" binding:"required,money"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// PayJob handles http request to settle a job payment.
func (h *Handler) PayJob(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri payJobURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	var req payJobRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	profile := gctx.MustGet(middleware.ProfileKey).(domain.Profile)

	if err := h.service.PayJob(ctx, uri.JobID, profile.ID, req.PaymentValue); err != nil {
		l.Info().Err(err).Send()

		var priceErr domain.PriceMismatchError

		switch {
		case errors.Is(err, domain.ErrJobNotFound):
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
		case errors.Is(err, domain.ErrPaymentNotAllowed),
			errors.Is(err, domain.ErrJobAlreadyPaid),
			errors.Is(err, domain.ErrInsufficientFunds),
			errors.As(err, &priceErr):
			gctx.JSON(http.StatusUnprocessableEntity, jsonresponse.Error(err))
		default:
			gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
		}

		return
	}

	gctx.JSON(http.StatusOK, successResponse{Success: true})
}

type depositURI struct {
	UserID int64 `uri:"userId" binding:"required,min=1"`
}

type depositRequest struct {
	DepositValue decimal.Decimal `json:"depositValue" binding:"required,money"`
}

// Deposit handles http request to deposit funds into the caller's own profile.
func (h *Handler) Deposit(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri depositURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	var req depositRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	profile := gctx.MustGet(middleware.ProfileKey).(domain.Profile)

	if profile.ID != uri.UserID {
		gctx.JSON(http.StatusForbidden, jsonresponse.Error(ErrForeignProfileDeposit))
		return
	}

	if err := h.service.Deposit(ctx, uri.UserID, req.DepositValue); err != nil {
		l.Info().Err(err).Send()

		var limitErr domain.DepositLimitError

		switch {
		case errors.Is(err, domain.ErrProfileNotFound):
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
		case errors.Is(err, domain.ErrInvalidAmount),
			errors.As(err, &limitErr):
			gctx.JSON(http.StatusUnprocessableEntity, jsonresponse.Error(err))
		default:
			gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
		}

		return
	}

	gctx.JSON(http.StatusOK, successResponse{Success: true})
}
