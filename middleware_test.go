package bankcore_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/okanes/bankcore"
	"github.com/okanes/bankcore/mocks"
)

func TestLimitMiddleware(t *testing.T) {
	t.Run("passes through when capacity is available", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		next := mocks.NewMockService(ctrl)
		next.EXPECT().
			UseBalance(gomock.Any()).
			Return(&bankcore.Transaction{Token: "aa2b8c1de4a94d0f90cc1a2b3c4d5e6f"}, nil).
			Times(1)

		limits := bankcore.NewServiceLimits(1)
		svc := bankcore.NewLimitMiddleware(limits, 50*time.Millisecond)(next)

		txn, err := svc.UseBalance(bankcore.UseBalanceReq{Amount: decimal.NewFromInt(1)})
		as.Nil(err)
		as.NotNil(txn)
	})

	t.Run("sheds load when the semaphore is exhausted", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		next := mocks.NewMockService(ctrl)

		limits := bankcore.NewServiceLimits(1)
		reqrd.Nil(limits.UseBalance.Acquire(context.Background(), 1))
		defer limits.UseBalance.Release(1)

		svc := bankcore.NewLimitMiddleware(limits, 10*time.Millisecond)(next)
		txn, err := svc.UseBalance(bankcore.UseBalanceReq{Amount: decimal.NewFromInt(1)})
		as.Nil(txn)
		as.ErrorIs(err, bankcore.ErrServiceBusy)
	})

	t.Run("never sheds failure audit records", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		next := mocks.NewMockService(ctrl)
		next.EXPECT().
			RecordFailedUse(gomock.Any()).
			Return(nil).
			Times(1)

		limits := bankcore.NewServiceLimits(1)
		reqrd.Nil(limits.UseBalance.Acquire(context.Background(), 1))
		defer limits.UseBalance.Release(1)

		svc := bankcore.NewLimitMiddleware(limits, 10*time.Millisecond)(next)
		err := svc.RecordFailedUse(bankcore.RecordFailedReq{Amount: decimal.NewFromInt(1)})
		as.Nil(err)
	})
}

func TestCircuitBreakMiddleware(t *testing.T) {
	trippy := gobreaker.Settings{
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}

	t.Run("opens after repeated internal errors", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		next := mocks.NewMockService(ctrl)
		next.EXPECT().
			UseBalance(gomock.Any()).
			Return(nil, bankcore.ErrInternalServer).
			Times(3)

		svc := bankcore.NewCircuitBreakMiddleware(bankcore.NewServiceBreaker(trippy))(next)
		req := bankcore.UseBalanceReq{Amount: decimal.NewFromInt(1)}
		for i := 0; i < 3; i++ {
			_, err := svc.UseBalance(req)
			as.ErrorIs(err, bankcore.ErrInternalServer)
		}

		_, err := svc.UseBalance(req)
		as.ErrorIs(err, bankcore.ErrServiceUnavailable)
	})

	t.Run("business rejections do not trip the breaker", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		next := mocks.NewMockService(ctrl)
		next.EXPECT().
			UseBalance(gomock.Any()).
			Return(nil, bankcore.ErrInsufficientBalance).
			Times(5)

		svc := bankcore.NewCircuitBreakMiddleware(bankcore.NewServiceBreaker(trippy))(next)
		req := bankcore.UseBalanceReq{Amount: decimal.NewFromInt(1)}
		for i := 0; i < 5; i++ {
			_, err := svc.UseBalance(req)
			var rej bankcore.Rejection
			as.ErrorAs(err, &rej)
			as.Equal(bankcore.CodeInsufficientBalance, rej.Code)
		}
	})

	t.Run("breakers are per operation", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		next := mocks.NewMockService(ctrl)
		next.EXPECT().
			UseBalance(gomock.Any()).
			Return(nil, bankcore.ErrInternalServer).
			Times(3)
		next.EXPECT().
			QueryTransaction(gomock.Any()).
			Return(&bankcore.Transaction{}, nil).
			Times(1)

		svc := bankcore.NewCircuitBreakMiddleware(bankcore.NewServiceBreaker(trippy))(next)
		req := bankcore.UseBalanceReq{Amount: decimal.NewFromInt(1)}
		for i := 0; i < 3; i++ {
			svc.UseBalance(req)
		}
		_, err := svc.UseBalance(req)
		as.ErrorIs(err, bankcore.ErrServiceUnavailable)

		_, err = svc.QueryTransaction("3f2b8c1de4a94d0f90cc1a2b3c4d5e6f")
		as.Nil(err)
	})
}
