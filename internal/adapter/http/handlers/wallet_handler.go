package handlers

import (
	"context"
	"net/http"
	request "repairhub/internal/adapter/http/dto/request"
	response "repairhub/internal/adapter/http/dto/response"
	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// WalletHandler serves the caller's own wallet under /wallets/me and the
// admin reconciliation endpoint.
type WalletHandler struct {
	usecase usecase.IWalletUseCase
}

func NewWalletHandler(uc usecase.IWalletUseCase) *WalletHandler {
	return &WalletHandler{usecase: uc}
}

// Create godoc
// @Summary  Open the caller's wallet
// @Tags     wallets
// @Produce  json
// @Success  201 {object} response.WalletResponse
// @Failure  403 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /wallets [post]
func (h *WalletHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	w, err := h.usecase.CreateWallet(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWallet(w))
}

// Me godoc
// @Summary  Get the caller's wallet
// @Tags     wallets
// @Produce  json
// @Success  200 {object} response.WalletResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /wallets/me [get]
func (h *WalletHandler) Me(c *gin.Context) {
	w, ok := h.callerWallet(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromWallet(w))
}

// Deposit godoc
// @Summary  Deposit into the caller's wallet
// @Tags     wallets
// @Accept   json
// @Produce  json
// @Param    body body request.AmountRequest true "Amount"
// @Success  200 {object} response.LedgerResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /wallets/me/deposit [post]
func (h *WalletHandler) Deposit(c *gin.Context) {
	h.ledger(c, h.usecase.Deposit)
}

// Withdraw godoc
// @Summary  Withdraw from the caller's wallet
// @Tags     wallets
// @Accept   json
// @Produce  json
// @Param    body body request.AmountRequest true "Amount"
// @Success  200 {object} response.LedgerResponse
// @Failure  422 {object} pkg.HTTPError
// @Security Bearer
// @Router   /wallets/me/withdraw [post]
func (h *WalletHandler) Withdraw(c *gin.Context) {
	h.ledger(c, h.usecase.Withdraw)
}

// Transfer godoc
// @Summary  Transfer from the caller's wallet to another wallet
// @Tags     wallets
// @Accept   json
// @Produce  json
// @Param    body body request.TransferRequest true "Transfer"
// @Success  200 {object} response.TransferResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Security Bearer
// @Router   /wallets/me/transfer [post]
func (h *WalletHandler) Transfer(c *gin.Context) {
	var payload request.TransferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload.WithDetail(err))
		return
	}
	w, ok := h.callerWallet(c)
	if !ok {
		return
	}
	res, err := h.usecase.Transfer(c.Request.Context(), w.ID, payload.ToWalletID, payload.Amount, payload.Description)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransferResult(res))
}

// TopUp godoc
// @Summary  Charge Mercado Pago and credit the caller's wallet
// @Tags     wallets
// @Accept   json
// @Produce  json
// @Param    body body request.TopUpRequest true "Top-up"
// @Success  200 {object} response.LedgerResponse
// @Failure  402 {object} pkg.HTTPError
// @Failure  503 {object} pkg.HTTPError
// @Security Bearer
// @Router   /wallets/me/topup [post]
func (h *WalletHandler) TopUp(c *gin.Context) {
	var payload request.TopUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload.WithDetail(err))
		return
	}
	w, ok := h.callerWallet(c)
	if !ok {
		return
	}
	res, err := h.usecase.TopUp(c.Request.Context(), w.ID, payload.Amount, payload.MPPayload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerResult(res))
}

// Transactions godoc
// @Summary  List the caller's ledger lines
// @Tags     wallets
// @Produce  json
// @Success  200 {array} response.TransactionResponse
// @Security Bearer
// @Router   /wallets/me/transactions [get]
func (h *WalletHandler) Transactions(c *gin.Context) {
	w, ok := h.callerWallet(c)
	if !ok {
		return
	}
	txs, err := h.usecase.ListTransactions(c.Request.Context(), w.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(txs))
}

// Reconcile godoc
// @Summary  Check the caller's balance against the ledger
// @Tags     wallets
// @Produce  json
// @Success  200 {object} response.ReconcileResponse
// @Security Bearer
// @Router   /wallets/me/reconcile [get]
func (h *WalletHandler) Reconcile(c *gin.Context) {
	w, ok := h.callerWallet(c)
	if !ok {
		return
	}
	h.reconcile(c, w.ID)
}

// ReconcileByID godoc
// @Summary  Check any wallet against its ledger (admin)
// @Tags     admin
// @Produce  json
// @Param    id path string true "Wallet id"
// @Success  200 {object} response.ReconcileResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /admin/wallets/{id}/reconcile [get]
func (h *WalletHandler) ReconcileByID(c *gin.Context) {
	h.reconcile(c, c.Param("id"))
}

func (h *WalletHandler) reconcile(c *gin.Context, walletID string) {
	res, err := h.usecase.Reconcile(c.Request.Context(), walletID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReconcileResult(res))
}

func (h *WalletHandler) ledger(
	c *gin.Context,
	post func(ctx context.Context, walletID string, amount decimal.Decimal, description string) (usecase.LedgerResult, error),
) {
	var payload request.AmountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload.WithDetail(err))
		return
	}
	w, ok := h.callerWallet(c)
	if !ok {
		return
	}
	res, err := post(c.Request.Context(), w.ID, payload.Amount, payload.Description)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerResult(res))
}

func (h *WalletHandler) callerWallet(c *gin.Context) (entities.Wallet, bool) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return entities.Wallet{}, false
	}
	w, err := h.usecase.GetByOwner(c.Request.Context(), actor.ID)
	if err != nil {
		writeError(c, err)
		return entities.Wallet{}, false
	}
	return w, true
}
