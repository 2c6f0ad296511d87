package bankcore

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// cancelWindow is how long after the fact a balance use may be reversed.
const cancelWindow = time.Hour * 24 * 365

func (s *serviceImpl) UseBalance(req UseBalanceReq) (*Transaction, error) {
	var txn *Transaction
	err := s.repo.WithinTx(func(r Repository) error {
		owner, err := r.FindOwnerByID(req.OwnerID)
		if err != nil {
			return err
		}
		acct, err := r.FindAccountByNumber(req.AccountNumber)
		if err != nil {
			return err
		}
		if acct.OwnerID != owner.ID {
			return ErrOwnershipMismatch
		}
		if acct.Status != AccountInUse {
			return ErrAccountClosed
		}
		if acct.Balance.LessThan(req.Amount) {
			return ErrInsufficientBalance
		}
		acct.Balance = acct.Balance.Sub(req.Amount)
		if err = r.SaveAccount(acct); err != nil {
			return err
		}
		txn = &Transaction{
			ID:              s.node.Generate(),
			AccountID:       acct.ID,
			Type:            TxnUse,
			Result:          TxnSuccess,
			Amount:          req.Amount,
			BalanceSnapshot: acct.Balance,
			Token:           newToken(),
			TransactedAt:    time.Now(),
		}
		return r.SaveTransaction(txn)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("transaction_id", txn.Token).
		Str("account_number", req.AccountNumber).
		Stringer("amount", req.Amount).
		Msg("balance used")
	return txn, nil
}

// RecordFailedUse persists a FAIL audit record for a use attempt that was
// already rejected upstream. It repeats none of the use validations.
func (s *serviceImpl) RecordFailedUse(req RecordFailedReq) error {
	return s.recordFailed(TxnUse, req)
}

// RecordFailedCancel is the cancel-side counterpart of RecordFailedUse.
func (s *serviceImpl) RecordFailedCancel(req RecordFailedReq) error {
	return s.recordFailed(TxnCancel, req)
}

func (s *serviceImpl) recordFailed(typ TxnType, req RecordFailedReq) error {
	return s.repo.WithinTx(func(r Repository) error {
		acct, err := r.FindAccountByNumber(req.AccountNumber)
		if err != nil {
			return err
		}
		txn := &Transaction{
			ID:              s.node.Generate(),
			AccountID:       acct.ID,
			Type:            typ,
			Result:          TxnFail,
			Amount:          req.Amount,
			BalanceSnapshot: acct.Balance,
			Token:           newToken(),
			TransactedAt:    time.Now(),
		}
		return r.SaveTransaction(txn)
	})
}

func (s *serviceImpl) CancelBalance(req CancelBalanceReq) (*Transaction, error) {
	var txn *Transaction
	err := s.repo.WithinTx(func(r Repository) error {
		orig, err := r.FindTransactionByToken(req.Token)
		if err != nil {
			return err
		}
		acct, err := r.FindAccountByNumber(req.AccountNumber)
		if err != nil {
			return err
		}
		if orig.AccountID != acct.ID {
			return ErrTransactionAccountMismatch
		}
		if !orig.Amount.Equal(req.Amount) {
			return ErrPartialCancelNotAllowed
		}
		if orig.TransactedAt.Before(time.Now().Add(-cancelWindow)) {
			return ErrCancelWindowExpired
		}
		acct.Balance = acct.Balance.Add(req.Amount)
		if err = r.SaveAccount(acct); err != nil {
			return err
		}
		txn = &Transaction{
			ID:              s.node.Generate(),
			AccountID:       acct.ID,
			Type:            TxnCancel,
			Result:          TxnSuccess,
			Amount:          req.Amount,
			BalanceSnapshot: acct.Balance,
			Token:           newToken(),
			TransactedAt:    time.Now(),
		}
		return r.SaveTransaction(txn)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("transaction_id", txn.Token).
		Str("cancelled", req.Token).
		Str("account_number", req.AccountNumber).
		Msg("balance use cancelled")
	return txn, nil
}

func (s *serviceImpl) QueryTransaction(token string) (*Transaction, error) {
	return s.repo.FindTransactionByToken(token)
}

// Statement renders the account's full transaction history as a PDF table.
func (s *serviceImpl) Statement(w io.Writer, req StatementReq) error {
	acct, err := s.repo.FindAccountByNumber(req.AccountNumber)
	if err != nil {
		return err
	}
	txns, err := s.repo.FindTransactionsByAccount(acct.ID)
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Account %s statement", acct.Number))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 9)
	widths := []float64{60, 18, 20, 25, 30, 37}
	headers := []string{"Transaction", "Type", "Result", "Amount", "Balance", "Date"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, txn := range txns {
		cols := []string{
			txn.Token,
			string(txn.Type),
			string(txn.Result),
			txn.Amount.String(),
			txn.BalanceSnapshot.String(),
			txn.TransactedAt.Format("2006-01-02 15:04"),
		}
		for i, c := range cols {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
