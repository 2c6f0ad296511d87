package bankcore_test

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/okanes/bankcore"
	"github.com/okanes/bankcore/mocks"
)

func passthroughTx(repo *mocks.MockRepository) {
	repo.EXPECT().
		WithinTx(gomock.Any()).
		DoAndReturn(func(fn func(bankcore.Repository) error) error {
			return fn(repo)
		}).
		AnyTimes()
}

func newTestService(tt *testing.T, repo *mocks.MockRepository) bankcore.Service {
	node, err := snowflake.NewNode(111)
	require.New(tt).Nil(err)
	log := zerolog.Nop()
	return bankcore.NewService(repo, node, &log)
}

func TestCreateAccount(t *testing.T) {
	ownerID := snowflake.ParseInt64(7241301734201495552)
	owner := &bankcore.Owner{ID: ownerID, Name: "jinsook"}

	t.Run("first account gets the seed number", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		passthroughTx(repo)
		svc := newTestService(tt, repo)

		repo.EXPECT().FindOwnerByID(ownerID).Return(owner, nil)
		repo.EXPECT().CountAccountsByOwner(ownerID).Return(0, nil)
		repo.EXPECT().FindHighestAccountNumber().Return("", nil)
		repo.EXPECT().
			SaveAccount(gomock.AssignableToTypeOf(&bankcore.Account{})).
			Return(nil)

		acct, err := svc.CreateAccount(bankcore.CreateAccountReq{
			OwnerID:        ownerID,
			InitialBalance: decimal.NewFromInt(1000),
		})
		reqrd.Nil(err)
		as.Equal("1000000000", acct.Number)
		as.Equal(bankcore.AccountInUse, acct.Status)
		as.True(acct.Balance.Equal(decimal.NewFromInt(1000)))
		as.Equal(ownerID, acct.OwnerID)
		as.False(acct.RegisteredAt.IsZero())
		as.Nil(acct.UnregisteredAt)
	})

	t.Run("number is highest existing plus one", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		passthroughTx(repo)
		svc := newTestService(tt, repo)

		repo.EXPECT().FindOwnerByID(ownerID).Return(owner, nil)
		repo.EXPECT().CountAccountsByOwner(ownerID).Return(5, nil)
		repo.EXPECT().FindHighestAccountNumber().Return("1000000005", nil)
		repo.EXPECT().SaveAccount(gomock.Any()).Return(nil)

		acct, err := svc.CreateAccount(bankcore.CreateAccountReq{
			OwnerID:        ownerID,
			InitialBalance: decimal.Zero,
		})
		reqrd.Nil(err)
		as.Equal("1000000006", acct.Number)
	})

	t.Run("returns OwnerNotFound for an unknown owner", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		passthroughTx(repo)
		svc := newTestService(tt, repo)

		repo.EXPECT().FindOwnerByID(ownerID).Return(nil, bankcore.ErrOwnerNotFound)

		acct, err := svc.CreateAccount(bankcore.CreateAccountReq{OwnerID: ownerID})
		as.Nil(acct)
		var rej bankcore.Rejection
		as.ErrorAs(err, &rej)
		as.Equal(bankcore.CodeOwnerNotFound, rej.Code)
	})

	t.Run("returns TooManyAccounts at the per-owner cap", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		passthroughTx(repo)
		svc := newTestService(tt, repo)

		repo.EXPECT().FindOwnerByID(ownerID).Return(owner, nil)
		repo.EXPECT().CountAccountsByOwner(ownerID).Return(10, nil)

		acct, err := svc.CreateAccount(bankcore.CreateAccountReq{OwnerID: ownerID})
		as.Nil(acct)
		var rej bankcore.Rejection
		as.ErrorAs(err, &rej)
		as.Equal(bankcore.CodeTooManyAccounts, rej.Code)
	})
}

func TestCloseAccount(t *testing.T) {
	ownerID := snowflake.ParseInt64(7241301734201495552)
	owner := &bankcore.Owner{ID: ownerID, Name: "jinsook"}
	acctID := snowflake.ParseInt64(7241407009730334720)

	t.Run("marks the account unregistered", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		passthroughTx(repo)
		svc := newTestService(tt, repo)

		repo.EXPECT().FindOwnerByID(ownerID).Return(owner, nil)
		repo.EXPECT().FindAccountByNumber("1000000000").Return(&bankcore.Account{
			ID:           acctID,
			OwnerID:      ownerID,
			Number:       "1000000000",
			Status:       bankcore.AccountInUse,
			Balance:      decimal.Zero,
			RegisteredAt: time.Now().Add(-time.Hour),
		}, nil)
		repo.EXPECT().
			SaveAccount(gomock.AssignableToTypeOf(&bankcore.Account{})).
			Return(nil)

		acct, err := svc.CloseAccount(bankcore.CloseAccountReq{
			OwnerID:       ownerID,
			AccountNumber: "1000000000",
		})
		reqrd.Nil(err)
		as.Equal(bankcore.AccountUnregistered, acct.Status)
		reqrd.NotNil(acct.UnregisteredAt)
		as.False(acct.UnregisteredAt.IsZero())
	})

	t.Run("returns BalanceNotEmpty on a positive balance", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		passthroughTx(repo)
		svc := newTestService(tt, repo)

		repo.EXPECT().FindOwnerByID(ownerID).Return(owner, nil)
		repo.EXPECT().FindAccountByNumber("1000000000").Return(&bankcore.Account{
			ID:      acctID,
			OwnerID: ownerID,
			Number:  "1000000000",
			Status:  bankcore.AccountInUse,
			Balance: decimal.NewFromInt(250),
		}, nil)

		acct, err := svc.CloseAccount(bankcore.CloseAccountReq{
			OwnerID:       ownerID,
			AccountNumber: "1000000000",
		})
		as.Nil(acct)
		var rej bankcore.Rejection
		as.ErrorAs(err, &rej)
		as.Equal(bankcore.CodeBalanceNotEmpty, rej.Code)
	})

	t.Run("returns AlreadyClosed on an unregistered account", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		passthroughTx(repo)
		svc := newTestService(tt, repo)

		unreg := time.Now().Add(-time.Hour)
		repo.EXPECT().FindOwnerByID(ownerID).Return(owner, nil)
		repo.EXPECT().FindAccountByNumber("1000000000").Return(&bankcore.Account{
			ID:             acctID,
			OwnerID:        ownerID,
			Number:         "1000000000",
			Status:         bankcore.AccountUnregistered,
			Balance:        decimal.Zero,
			UnregisteredAt: &unreg,
		}, nil)

		_, err := svc.CloseAccount(bankcore.CloseAccountReq{
			OwnerID:       ownerID,
			AccountNumber: "1000000000",
		})
		var rej bankcore.Rejection
		as.ErrorAs(err, &rej)
		as.Equal(bankcore.CodeAlreadyClosed, rej.Code)
	})

	t.Run("returns OwnershipMismatch for someone else's account", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		passthroughTx(repo)
		svc := newTestService(tt, repo)

		other := snowflake.ParseInt64(7241301734201490000)
		repo.EXPECT().FindOwnerByID(ownerID).Return(owner, nil)
		repo.EXPECT().FindAccountByNumber("1000000000").Return(&bankcore.Account{
			ID:      acctID,
			OwnerID: other,
			Number:  "1000000000",
			Status:  bankcore.AccountInUse,
			Balance: decimal.Zero,
		}, nil)

		_, err := svc.CloseAccount(bankcore.CloseAccountReq{
			OwnerID:       ownerID,
			AccountNumber: "1000000000",
		})
		var rej bankcore.Rejection
		as.ErrorAs(err, &rej)
		as.Equal(bankcore.CodeOwnershipMismatch, rej.Code)
	})
}

func TestListAccounts(t *testing.T) {
	ownerID := snowflake.ParseInt64(7241301734201495552)
	owner := &bankcore.Owner{ID: ownerID, Name: "jinsook"}

	t.Run("returns the owner's accounts", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		svc := newTestService(tt, repo)

		accts := []bankcore.Account{
			{Number: "1000000000", OwnerID: ownerID, Status: bankcore.AccountInUse},
			{Number: "1000000001", OwnerID: ownerID, Status: bankcore.AccountUnregistered},
		}
		repo.EXPECT().FindOwnerByID(ownerID).Return(owner, nil)
		repo.EXPECT().FindAccountsByOwner(ownerID).Return(accts, nil)

		got, err := svc.ListAccounts(bankcore.ListAccountsReq{OwnerID: ownerID})
		reqrd.Nil(err)
		as.Len(got, 2)
		as.Equal("1000000000", got[0].Number)
		as.Equal("1000000001", got[1].Number)
	})

	t.Run("returns OwnerNotFound for an unknown owner", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		svc := newTestService(tt, repo)

		repo.EXPECT().FindOwnerByID(ownerID).Return(nil, bankcore.ErrOwnerNotFound)

		got, err := svc.ListAccounts(bankcore.ListAccountsReq{OwnerID: ownerID})
		as.Nil(got)
		var rej bankcore.Rejection
		as.ErrorAs(err, &rej)
		as.Equal(bankcore.CodeOwnerNotFound, rej.Code)
	})
}
