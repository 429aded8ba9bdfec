package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase/interfaces"
	mock_interfaces "repairhub/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestWalletUseCase_CreateWallet(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)

	created, err := w.wallets.CreateWallet(ctx, customer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" || created.OwnerID != customer.ID || !created.Balance.IsZero() {
		t.Fatalf("unexpected wallet: %+v", created)
	}

	if _, err := w.wallets.CreateWallet(ctx, customer); !errors.Is(err, ErrWalletAlreadyExists) {
		t.Fatalf("expected ErrWalletAlreadyExists, got %v", err)
	}
	if _, err := w.wallets.CreateWallet(ctx, admin); !errors.Is(err, entities.ErrUnauthorized) {
		t.Fatalf("expected admins to be refused, got %v", err)
	}

	t.Run("repository race maps to already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIWalletRepository(ctrl)
		uc := NewWalletUseCase(repo, nil, nil, zerolog.Nop())

		repo.EXPECT().GetByOwnerID(gomock.Any(), technician.ID).Return(entities.Wallet{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Wallet{})).Return(entities.Wallet{}, entities.ErrConflict)

		if _, err := uc.CreateWallet(ctx, technician); !errors.Is(err, ErrWalletAlreadyExists) {
			t.Fatalf("expected ErrWalletAlreadyExists, got %v", err)
		}
	})
}

func TestWalletUseCase_DepositWithdraw(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	wallet := w.walletWith(t, customer, "50")

	_, err := w.wallets.Withdraw(ctx, wallet.ID, decimal.NewFromInt(100), "too much")
	if !errors.Is(err, entities.ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}
	var fundsErr *entities.InsufficientFundsError
	if !errors.As(err, &fundsErr) || fundsErr.Balance != "50" {
		t.Fatalf("expected balance in error, got %v", err)
	}
	if got := balanceOf(t, w, customer.ID); !got.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("balance = %s, want 50", got)
	}

	res, err := w.wallets.Withdraw(ctx, wallet.ID, decimal.NewFromInt(20), "cash out")
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if res.Transaction.Kind != entities.TransactionWithdrawal || !res.Wallet.Balance.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("unexpected result: %+v", res)
	}

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		if _, err := w.wallets.Deposit(ctx, wallet.ID, amount, ""); !errors.Is(err, entities.ErrInvalidData) {
			t.Fatalf("deposit %s: expected invalid data, got %v", amount, err)
		}
	}
	if _, err := w.wallets.Deposit(ctx, "missing", decimal.NewFromInt(1), ""); !errors.Is(err, ErrWalletNotFound) {
		t.Fatalf("expected ErrWalletNotFound, got %v", err)
	}
	if _, err := w.wallets.Deposit(ctx, " ", decimal.NewFromInt(1), ""); !errors.Is(err, ErrInvalidWalletID) {
		t.Fatalf("expected ErrInvalidWalletID, got %v", err)
	}

	txs, err := w.wallets.ListTransactions(ctx, wallet.ID)
	if err != nil || len(txs) != 2 {
		t.Fatalf("transactions = %v, %v", txs, err)
	}
}

func TestWalletUseCase_Transfer(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	a := w.walletWith(t, customer, "200")
	b := w.walletWith(t, technician, "0")

	res, err := w.wallets.Transfer(ctx, a.ID, b.ID, decimal.NewFromInt(100), "settle")
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if !res.From.Balance.Equal(decimal.NewFromInt(100)) || !res.To.Balance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected balances: %s / %s", res.From.Balance, res.To.Balance)
	}
	if res.Payment.Kind != entities.TransactionPayment || res.Earning.Kind != entities.TransactionEarning {
		t.Fatalf("unexpected kinds: %s / %s", res.Payment.Kind, res.Earning.Kind)
	}

	if _, err := w.wallets.Transfer(ctx, a.ID, a.ID, decimal.NewFromInt(1), ""); !errors.Is(err, entities.ErrInvalidData) {
		t.Fatalf("expected same-wallet transfer to be invalid, got %v", err)
	}
	if _, err := w.wallets.Transfer(ctx, a.ID, b.ID, decimal.NewFromInt(101), ""); !errors.Is(err, entities.ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}

	total := balanceOf(t, w, customer.ID).Add(balanceOf(t, w, technician.ID))
	if !total.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("transfers must conserve money, total %s", total)
	}
}

func TestWalletUseCase_Reconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("consistent", func(t *testing.T) {
		w := newWorld(t)
		wallet := w.walletWith(t, customer, "75.25")
		res, err := w.wallets.Reconcile(ctx, wallet.ID)
		if err != nil || !res.Consistent || res.TransactionCount != 1 || !res.LedgerTotal.Equal(decimal.RequireFromString("75.25")) {
			t.Fatalf("reconcile = %+v, %v", res, err)
		}
	})

	t.Run("discrepancy is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIWalletRepository(ctrl)
		uc := NewWalletUseCase(repo, nil, nil, zerolog.Nop())

		repo.EXPECT().GetByID(gomock.Any(), "w-1").Return(entities.Wallet{ID: "w-1", Balance: decimal.NewFromInt(10)}, nil)
		repo.EXPECT().ListTransactions(gomock.Any(), "w-1").Return([]entities.Transaction{
			{ID: "t-1", WalletID: "w-1", Amount: decimal.NewFromInt(5), Kind: entities.TransactionDeposit},
		}, nil)

		res, err := uc.Reconcile(ctx, "w-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Consistent || !res.LedgerTotal.Equal(decimal.NewFromInt(5)) {
			t.Fatalf("expected discrepancy, got %+v", res)
		}
	})
}

func TestWalletUseCase_TopUp(t *testing.T) {
	ctx := context.Background()
	payload := json.RawMessage(`{"token":"card-token","payment_method_id":"visa"}`)
	wallet := entities.Wallet{ID: "w-1", OwnerID: customer.ID, Balance: decimal.NewFromInt(5), Version: 2}

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewWalletUseCase(nil, nil, nil, zerolog.Nop())
		if _, err := uc.TopUp(ctx, "w-1", decimal.NewFromInt(10), payload); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		uc := NewWalletUseCase(nil, nil, nil, zerolog.Nop())
		if _, err := uc.TopUp(ctx, "w-1", decimal.Zero, payload); !errors.Is(err, entities.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIWalletRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewWalletUseCase(repo, nil, gw, zerolog.Nop())

		repo.EXPECT().GetByID(gomock.Any(), "w-1").Return(wallet, nil)
		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.GatewayCharge{}, errors.New("provider down"))

		_, err := uc.TopUp(ctx, "w-1", decimal.NewFromInt(10), payload)
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider error, got %v", err)
		}
	})

	t.Run("not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIWalletRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewWalletUseCase(repo, nil, gw, zerolog.Nop())

		repo.EXPECT().GetByID(gomock.Any(), "w-1").Return(wallet, nil)
		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.GatewayCharge{ProviderPaymentID: "mp-1", ProviderStatus: "rejected"}, nil)

		if _, err := uc.TopUp(ctx, "w-1", decimal.NewFromInt(10), payload); !errors.Is(err, ErrPaymentNotApproved) {
			t.Fatalf("expected ErrPaymentNotApproved, got %v", err)
		}
	})

	t.Run("approved charge is deposited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIWalletRepository(ctrl)
		uow := mock_interfaces.NewMockIUnitOfWork(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewWalletUseCase(repo, uow, gw, zerolog.Nop())

		repo.EXPECT().GetByID(gomock.Any(), "w-1").Return(wallet, nil).Times(2)
		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, amount decimal.Decimal, description string, raw json.RawMessage) (interfaces.GatewayCharge, error) {
				if !amount.Equal(decimal.NewFromInt(10)) || description == "" || string(raw) != string(payload) {
					t.Fatalf("unexpected charge: %s %q %s", amount, description, raw)
				}
				return interfaces.GatewayCharge{ProviderPaymentID: "mp-1", ProviderStatus: "approved", Amount: amount}, nil
			},
		)
		uow.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cs interfaces.ChangeSet) error {
			if len(cs.Wallets) != 1 || !cs.Wallets[0].Balance.Equal(decimal.NewFromInt(15)) || cs.Wallets[0].Version != 2 {
				t.Fatalf("unexpected wallets: %+v", cs.Wallets)
			}
			if len(cs.Transactions) != 1 || cs.Transactions[0].Kind != entities.TransactionDeposit {
				t.Fatalf("unexpected transactions: %+v", cs.Transactions)
			}
			return nil
		})

		res, err := uc.TopUp(ctx, "w-1", decimal.NewFromInt(10), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Wallet.Version != 3 || !res.Wallet.Balance.Equal(decimal.NewFromInt(15)) {
			t.Fatalf("unexpected wallet: %+v", res.Wallet)
		}
	})
}
