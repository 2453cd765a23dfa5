// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Open(ctx context.Context, clientID string) (domain.Account, error)
	Get(ctx context.Context, id string) (domain.Account, error)
	Transactions(ctx context.Context, id string) ([]domain.Transaction, error)
	Deposit(ctx context.Context, id, amount, location string) (domain.OperationResult, error)
	Withdraw(ctx context.Context, id, amount, location string) (domain.OperationResult, error)
	AccrueInterest(ctx context.Context, id string) (domain.InterestResult, error)
	SetStatus(ctx context.Context, id, status string) (domain.Account, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) *Handler {
	return &Handler{service: as}
}

type accountData struct {
	Account domain.Account `json:"account"`
}

type transactionsData struct {
	Transactions []domain.Transaction `json:"transactions"`
}

type operationData struct {
	Result domain.OperationResult `json:"result"`
}

type interestData struct {
	Result domain.InterestResult `json:"result"`
}

func bindError(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})
		return
	}

	gctx.JSON(http.StatusBadRequest, web.Error(err))
}

func serviceError(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrAccountNotFound,
		domain.ErrClientNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case domain.ErrInvalidAmount,
		domain.ErrInvalidStatus,
		domain.ErrNotSavingsAccount:
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	case domain.ErrInsufficientBalance,
		domain.ErrAccountNotActive:
		gctx.JSON(http.StatusConflict, web.Error(err))
	default:
		zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type uriRequest struct {
	ID string `uri:"id" binding:"required"`
}

// Create handles http request to open a savings account for the client in the path.
func (h *Handler) Create(gctx *gin.Context) {
	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	account, err := h.service.Open(gctx.Request.Context(), req.ID)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData{account}})
}

// Get handles http request to get account.
func (h *Handler) Get(gctx *gin.Context) {
	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	account, err := h.service.Get(gctx.Request.Context(), req.ID)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData{account}})
}

// Transactions handles http request to list the account history in recording order.
func (h *Handler) Transactions(gctx *gin.Context) {
	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	txs, err := h.service.Transactions(gctx.Request.Context(), req.ID)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: transactionsData{txs}})
}

type operationRequest struct {
	Amount   string `json:"amount" binding:"required,amount"`
	Location string `json:"location" binding:"max=200"`
}

type operation func(ctx context.Context, id, amount, location string) (domain.OperationResult, error)

// Deposit handles http request to credit the account.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.operate(gctx, h.service.Deposit)
}

// Withdraw handles http request to debit the account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.operate(gctx, h.service.Withdraw)
}

func (h *Handler) operate(gctx *gin.Context, op operation) {
	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	var req operationRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	result, err := op(gctx.Request.Context(), uri.ID, req.Amount, req.Location)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: operationData{result}})
}

// AccrueInterest handles http request to apply interest to a savings account once.
func (h *Handler) AccrueInterest(gctx *gin.Context) {
	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	result, err := h.service.AccrueInterest(gctx.Request.Context(), req.ID)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: interestData{result}})
}

type statusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE FROZEN CLOSED SUSPENDED"`
}

// SetStatus handles http request to change the account status.
func (h *Handler) SetStatus(gctx *gin.Context) {
	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	var req statusRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	account, err := h.service.SetStatus(gctx.Request.Context(), uri.ID, req.Status)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData{account}})
}
