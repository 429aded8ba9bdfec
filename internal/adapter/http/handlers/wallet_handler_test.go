package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"repairhub/internal/adapter/http/handlers/mocks"
	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func sampleWallet(balance string) entities.Wallet {
	now := time.Now().UTC()
	return entities.Wallet{
		ID:        "wal-1",
		OwnerID:   testCustomer.ID,
		OwnerRole: entities.RoleCustomer,
		Balance:   decimal.RequireFromString(balance),
		Version:   2,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestWalletHandler_CreateAndMe(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWalletUseCase(ctrl)
		h := NewWalletHandler(uc)

		r := newTestRouter(testCustomer)
		r.POST("/v1/wallets", h.Create)

		uc.EXPECT().CreateWallet(gomock.Any(), testCustomer).Return(sampleWallet("0"), nil)

		w := doJSON(r, http.MethodPost, "/v1/wallets", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("create twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWalletUseCase(ctrl)
		h := NewWalletHandler(uc)

		r := newTestRouter(testCustomer)
		r.POST("/v1/wallets", h.Create)

		uc.EXPECT().CreateWallet(gomock.Any(), testCustomer).Return(entities.Wallet{}, usecase.ErrWalletAlreadyExists)

		w := doJSON(r, http.MethodPost, "/v1/wallets", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := decodeCode(t, w); code != "WALLET_ALREADY_EXISTS" {
			t.Fatalf("expected WALLET_ALREADY_EXISTS, got %s", code)
		}
	})

	t.Run("admin refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWalletUseCase(ctrl)
		h := NewWalletHandler(uc)

		r := newTestRouter(testAdmin)
		r.POST("/v1/wallets", h.Create)

		uc.EXPECT().CreateWallet(gomock.Any(), testAdmin).Return(entities.Wallet{}, entities.ErrAdminWallet)

		w := doJSON(r, http.MethodPost, "/v1/wallets", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("me without wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWalletUseCase(ctrl)
		h := NewWalletHandler(uc)

		r := newTestRouter(testCustomer)
		r.GET("/v1/wallets/me", h.Me)

		uc.EXPECT().GetByOwner(gomock.Any(), testCustomer.ID).Return(entities.Wallet{}, usecase.ErrWalletNotFound)

		w := doJSON(r, http.MethodGet, "/v1/wallets/me", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("me", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWalletUseCase(ctrl)
		h := NewWalletHandler(uc)

		r := newTestRouter(testCustomer)
		r.GET("/v1/wallets/me", h.Me)

		uc.EXPECT().GetByOwner(gomock.Any(), testCustomer.ID).Return(sampleWallet("42.50"), nil)

		w := doJSON(r, http.MethodGet, "/v1/wallets/me", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Balance string `json:"balance"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Balance != "42.5" {
			t.Fatalf("expected balance 42.5, got %s", body.Balance)
		}
	})
}

func TestWalletHandler_Ledger(t *testing.T) {
	t.Run("deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWalletUseCase(ctrl)
		h := NewWalletHandler(uc)

		r := newTestRouter(testCustomer)
		r.POST("/v1/wallets/me/deposit", h.Deposit)

		wallet := sampleWallet("0")
		gomock.InOrder(
			uc.EXPECT().GetByOwner(gomock.Any(), testCustomer.ID).Return(wallet, nil),
			uc.EXPECT().Deposit(gomock.Any(), "wal-1", decimal.RequireFromString("25"), "cash").
				Return(usecase.LedgerResult{Wallet: sampleWallet("25"), Transaction: entities.Transaction{ID: "tx-1", WalletID: "wal-1", Kind: entities.TransactionDeposit, Amount: decimal.RequireFromString("25")}}, nil),
		)

		w := doJSON(r, http.MethodPost, "/v1/wallets/me/deposit", `{"amount":"25","description":"cash"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("withdraw insufficient funds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWalletUseCase(ctrl)
		h := NewWalletHandler(uc)

		r := newTestRouter(testCustomer)
		r.POST("/v1/wallets/me/withdraw", h.Withdraw)

		uc.EXPECT().GetByOwner(gomock.Any(), testCustomer.ID).Return(sampleWallet("10"), nil)
		uc.EXPECT().Withdraw(gomock.Any(), "wal-1", gomock.Any(), "").
			Return(usecase.LedgerResult{}, &entities.InsufficientFundsError{WalletID: "wal-1", Balance: "10", Requested: "50"})

		w := doJSON(r, http.MethodPost, "/v1/wallets/me/withdraw", `{"amount":50}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("invalid payload skips wallet lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewWalletHandler(mocks.NewMockIWalletUseCase(ctrl))

		r := newTestRouter(testCustomer)
		r.POST("/v1/wallets/me/deposit", h.Deposit)

		w := doJSON(r, http.MethodPost, "/v1/wallets/me/deposit", `{"amount":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("transfer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWalletUseCase(ctrl)
		h := NewWalletHandler(uc)

		r := newTestRouter(testCustomer)
		r.POST("/v1/wallets/me/transfer", h.Transfer)

		uc.EXPECT().GetByOwner(gomock.Any(), testCustomer.ID).Return(sampleWallet("100"), nil)
		uc.EXPECT().Transfer(gomock.Any(), "wal-1", "wal-2", decimal.RequireFromString("30"), "split").
			Return(usecase.TransferResult{From: sampleWallet("70"), To: sampleWallet("30")}, nil)

		w := doJSON(r, http.MethodPost, "/v1/wallets/me/transfer", `{"to_wallet_id":"wal-2","amount":30,"description":"split"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("transfer requires destination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewWalletHandler(mocks.NewMockIWalletUseCase(ctrl))

		r := newTestRouter(testCustomer)
		r.POST("/v1/wallets/me/transfer", h.Transfer)

		w := doJSON(r, http.MethodPost, "/v1/wallets/me/transfer", `{"amount":30}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("transactions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWalletUseCase(ctrl)
		h := NewWalletHandler(uc)

		r := newTestRouter(testCustomer)
		r.GET("/v1/wallets/me/transactions", h.Transactions)

		uc.EXPECT().GetByOwner(gomock.Any(), testCustomer.ID).Return(sampleWallet("0"), nil)
		uc.EXPECT().ListTransactions(gomock.Any(), "wal-1").Return([]entities.Transaction{
			{ID: "tx-1", WalletID: "wal-1", Kind: entities.TransactionDeposit, Amount: decimal.RequireFromString("10")},
			{ID: "tx-2", WalletID: "wal-1", Kind: entities.TransactionWithdrawal, Amount: decimal.RequireFromString("10")},
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/wallets/me/transactions", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []struct {
			SignedAmount string `json:"signed_amount"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 2 || body[1].SignedAmount != "-10" {
			t.Fatalf("unexpected transactions: %+v", body)
		}
	})
}

func TestWalletHandler_TopUp(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"approved", nil, http.StatusOK},
		{"not approved", usecase.ErrPaymentNotApproved, http.StatusPaymentRequired},
		{"gateway disabled", usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIWalletUseCase(ctrl)
			h := NewWalletHandler(uc)

			r := newTestRouter(testCustomer)
			r.POST("/v1/wallets/me/topup", h.TopUp)

			uc.EXPECT().GetByOwner(gomock.Any(), testCustomer.ID).Return(sampleWallet("0"), nil)
			uc.EXPECT().TopUp(gomock.Any(), "wal-1", decimal.RequireFromString("50"), gomock.Any()).
				Return(usecase.LedgerResult{Wallet: sampleWallet("50")}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/wallets/me/topup", `{"amount":50,"mp_payload":{"token":"card-token","payment_method_id":"visa"}}`)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestWalletHandler_Reconcile(t *testing.T) {
	t.Run("own wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWalletUseCase(ctrl)
		h := NewWalletHandler(uc)

		r := newTestRouter(testCustomer)
		r.GET("/v1/wallets/me/reconcile", h.Reconcile)

		uc.EXPECT().GetByOwner(gomock.Any(), testCustomer.ID).Return(sampleWallet("10"), nil)
		uc.EXPECT().Reconcile(gomock.Any(), "wal-1").Return(usecase.ReconcileResult{
			Wallet:           sampleWallet("10"),
			LedgerTotal:      decimal.RequireFromString("10"),
			TransactionCount: 1,
			Consistent:       true,
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/wallets/me/reconcile", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Consistent bool `json:"consistent"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Consistent {
			t.Fatalf("expected consistent ledger")
		}
	})

	t.Run("by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWalletUseCase(ctrl)
		h := NewWalletHandler(uc)

		r := newTestRouter(testAdmin)
		r.GET("/v1/admin/wallets/:id/reconcile", h.ReconcileByID)

		uc.EXPECT().Reconcile(gomock.Any(), "wal-9").Return(usecase.ReconcileResult{}, usecase.ErrWalletNotFound)

		w := doJSON(r, http.MethodGet, "/v1/admin/wallets/wal-9/reconcile", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
