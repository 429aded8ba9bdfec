package entities

import (
	"errors"
	"fmt"
)

// Error kinds recognised at the service boundary. Every error raised by the
// domain or the usecases wraps exactly one of them, so callers can branch on
// errors.Is without knowing the concrete failure.
var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrInvalidData       = errors.New("invalid data")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrConflict          = errors.New("conflict")
)

var (
	ErrInvalidEstimate    = fmt.Errorf("%w: estimate requires a positive cost and a completion date not in the past", ErrInvalidData)
	ErrInvalidReport      = fmt.Errorf("%w: report requires repair details, summary and completion time", ErrInvalidData)
	ErrInvalidAmount      = fmt.Errorf("%w: amount must be greater than zero", ErrInvalidData)
	ErrInvalidItem        = fmt.Errorf("%w: item name is required", ErrInvalidData)
	ErrSameWallet         = fmt.Errorf("%w: cannot transfer to the same wallet", ErrInvalidData)
	ErrNotRequestOwner    = fmt.Errorf("%w: actor is not the owning customer", ErrUnauthorized)
	ErrNotAssignedTech    = fmt.Errorf("%w: actor is not the assigned technician", ErrUnauthorized)
	ErrAdminWallet        = fmt.Errorf("%w: administrators cannot own a wallet", ErrUnauthorized)
	ErrRequestNotEditable = fmt.Errorf("%w: request can only be changed while pending or rejected", ErrIllegalTransition)
)

// TransitionError reports a lifecycle operation that is not valid from the
// current state.
type TransitionError struct {
	State     RequestState
	Operation Operation
	Reason    string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal transition: cannot %s in state %s: %s", e.Operation, e.State, e.Reason)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

// InsufficientFundsError carries the balance that was checked.
type InsufficientFundsError struct {
	WalletID  string
	Balance   string
	Requested string
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: wallet %s has %s, requested %s", e.WalletID, e.Balance, e.Requested)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
