package bankcore

import (
	"strconv"
	"time"
)

const (
	maxAccountsPerOwner = 10
	seedAccountNumber   = "1000000000"
)

func (s *serviceImpl) CreateAccount(req CreateAccountReq) (*Account, error) {
	var acct *Account
	err := s.repo.WithinTx(func(r Repository) error {
		owner, err := r.FindOwnerByID(req.OwnerID)
		if err != nil {
			return err
		}
		cnt, err := r.CountAccountsByOwner(owner.ID)
		if err != nil {
			return err
		}
		if cnt >= maxAccountsPerOwner {
			return ErrTooManyAccounts
		}
		number, err := nextAccountNumber(r)
		if err != nil {
			return err
		}
		acct = &Account{
			ID:           s.node.Generate(),
			OwnerID:      owner.ID,
			Number:       number,
			Status:       AccountInUse,
			Balance:      req.InitialBalance,
			RegisteredAt: time.Now(),
		}
		return r.SaveAccount(acct)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Stringer("owner_id", acct.OwnerID).
		Str("account_number", acct.Number).
		Msg("account created")
	return acct, nil
}

// nextAccountNumber assigns numbers sequentially: highest existing + 1,
// or the seed value when no accounts exist yet.
func nextAccountNumber(r Repository) (string, error) {
	highest, err := r.FindHighestAccountNumber()
	if err != nil {
		return "", err
	}
	if highest == "" {
		return seedAccountNumber, nil
	}
	n, err := strconv.ParseUint(highest, 10, 64)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(n+1, 10), nil
}

func (s *serviceImpl) CloseAccount(req CloseAccountReq) (*Account, error) {
	var acct *Account
	err := s.repo.WithinTx(func(r Repository) error {
		owner, err := r.FindOwnerByID(req.OwnerID)
		if err != nil {
			return err
		}
		acct, err = r.FindAccountByNumber(req.AccountNumber)
		if err != nil {
			return err
		}
		if acct.OwnerID != owner.ID {
			return ErrOwnershipMismatch
		}
		if acct.Status == AccountUnregistered {
			return ErrAlreadyClosed
		}
		if acct.Balance.IsPositive() {
			return ErrBalanceNotEmpty
		}
		now := time.Now()
		acct.Status = AccountUnregistered
		acct.UnregisteredAt = &now
		return r.SaveAccount(acct)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Stringer("owner_id", acct.OwnerID).
		Str("account_number", acct.Number).
		Msg("account closed")
	return acct, nil
}

func (s *serviceImpl) ListAccounts(req ListAccountsReq) ([]Account, error) {
	owner, err := s.repo.FindOwnerByID(req.OwnerID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAccountsByOwner(owner.ID)
}
