package bankcore

import (
	"errors"
	"fmt"
)

var (
	ErrInternalServer     = errors.New("internal server error")
	ErrServiceBusy        = errors.New("service busy")
	ErrServiceUnavailable = errors.New("service unavailable")
)

type Code string

const (
	CodeOwnerNotFound              Code = "OWNER_NOT_FOUND"
	CodeAccountNotFound            Code = "ACCOUNT_NOT_FOUND"
	CodeTransactionNotFound        Code = "TRANSACTION_NOT_FOUND"
	CodeTooManyAccounts            Code = "TOO_MANY_ACCOUNTS"
	CodeOwnershipMismatch          Code = "OWNERSHIP_MISMATCH"
	CodeAlreadyClosed              Code = "ACCOUNT_ALREADY_CLOSED"
	CodeBalanceNotEmpty            Code = "BALANCE_NOT_EMPTY"
	CodeAccountClosed              Code = "ACCOUNT_CLOSED"
	CodeInsufficientBalance        Code = "INSUFFICIENT_BALANCE"
	CodeTransactionAccountMismatch Code = "TRANSACTION_ACCOUNT_MISMATCH"
	CodePartialCancelNotAllowed    Code = "PARTIAL_CANCEL_NOT_ALLOWED"
	CodeCancelWindowExpired        Code = "CANCEL_WINDOW_EXPIRED"
)

func (c Code) NotFound() bool {
	switch c {
	case CodeOwnerNotFound, CodeAccountNotFound, CodeTransactionNotFound:
		return true
	}
	return false
}

// Rejection is a single-request business failure. It aborts the enclosing
// transaction and is surfaced verbatim to the caller; never process-fatal.
type Rejection struct {
	Code Code   `json:"code"`
	Msg  string `json:"message"`
}

func (e Rejection) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

var (
	ErrOwnerNotFound              = Rejection{CodeOwnerNotFound, "owner not found"}
	ErrAccountNotFound            = Rejection{CodeAccountNotFound, "account not found"}
	ErrTransactionNotFound        = Rejection{CodeTransactionNotFound, "transaction not found"}
	ErrTooManyAccounts            = Rejection{CodeTooManyAccounts, "owner already holds the maximum of 10 accounts"}
	ErrOwnershipMismatch          = Rejection{CodeOwnershipMismatch, "account is not held by this owner"}
	ErrAlreadyClosed              = Rejection{CodeAlreadyClosed, "account is already closed"}
	ErrBalanceNotEmpty            = Rejection{CodeBalanceNotEmpty, "account balance must be zero to close"}
	ErrAccountClosed              = Rejection{CodeAccountClosed, "account is closed"}
	ErrInsufficientBalance        = Rejection{CodeInsufficientBalance, "amount exceeds account balance"}
	ErrTransactionAccountMismatch = Rejection{CodeTransactionAccountMismatch, "transaction does not belong to this account"}
	ErrPartialCancelNotAllowed    = Rejection{CodePartialCancelNotAllowed, "cancel amount must equal the original transaction amount"}
	ErrCancelWindowExpired        = Rejection{CodeCancelWindowExpired, "transaction is older than the one year cancel window"}
)

type ErrBadRequest struct {
	Fields map[string]string `json:"fields"`
}

func (e ErrBadRequest) Error() string {
	return fmt.Sprintf("missing/invalid params: %v", e.Fields)
}
