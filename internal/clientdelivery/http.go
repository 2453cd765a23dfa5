// Package clientdelivery manages delivery layer of clients.
package clientdelivery

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

// Service provides service layer interface needed by client delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package clientdelivery
type Service interface {
	Register(ctx context.Context, arg domain.RegisterClientParams) (domain.Client, error)
	Get(ctx context.Context, id string) (domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Transactions(ctx context.Context, clientID string) ([]domain.Transaction, error)
}

// AccountOpener opens the savings account of a freshly registered client.
type AccountOpener interface {
	Open(ctx context.Context, clientID string) (domain.Account, error)
}

// Handler facilitates client delivery layer logic.
type Handler struct {
	service  Service
	accounts AccountOpener
}

// NewHandler returns client handler.
func NewHandler(cs Service, ao AccountOpener) *Handler {
	return &Handler{
		service:  cs,
		accounts: ao,
	}
}

type clientData struct {
	Client domain.Client `json:"client"`
}

type clientsData struct {
	Clients []domain.Client `json:"clients"`
}

type transactionsData struct {
	Transactions []domain.Transaction `json:"transactions"`
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

type createRequest struct {
	Name               string `json:"name" binding:"required,max=200"`
	Contact            string `json:"contact" binding:"required,max=200"`
	Category           string `json:"category" binding:"required,oneof=INDIVIDUAL ENTERPRISE"`
	OpenSavingsAccount *bool  `json:"open_savings_account"`
}

// Create handles http request to register a client. Unless the request opts
// out, a savings account is opened for the client as well.
//
// Registration is not rolled back when opening the account fails: the
// response carries status 500 together with the registered client, and the
// account can be opened later through POST /clients/:id/accounts.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	arg := domain.RegisterClientParams{
		Name:     req.Name,
		Contact:  req.Contact,
		Category: domain.ClientCategory(req.Category),
	}

	client, err := h.service.Register(ctx, arg)
	if err != nil {
		if err == domain.ErrInvalidCategory {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	if req.OpenSavingsAccount == nil || *req.OpenSavingsAccount {
		account, err := h.accounts.Open(ctx, client.ID)
		if err != nil {
			l.Error().Err(err).Str("client_id", client.ID).Msg("client registered without savings account")
			gctx.JSON(http.StatusInternalServerError, web.Response{
				Data:  clientData{client},
				Error: errorspkg.ErrInternal.Error(),
			})

			return
		}

		client.Accounts = append(client.Accounts, account)
	}

	gctx.JSON(http.StatusOK, web.Response{Data: clientData{client}})
}

type uriRequest struct {
	ID string `uri:"id" binding:"required"`
}

// Get handles http request to look up a client.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	client, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if err == domain.ErrClientNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: clientData{client}})
}

// List handles http request to list all clients.
func (h *Handler) List(gctx *gin.Context) {
	clients, err := h.service.List(gctx.Request.Context())
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: clientsData{clients}})
}

// Transactions handles http request to list a client's transactions, newest first.
func (h *Handler) Transactions(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	txs, err := h.service.Transactions(ctx, req.ID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: transactionsData{txs}})
}
