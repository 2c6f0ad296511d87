package bankcore

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/semaphore"
)

type Middleware func(Service) Service

//
// Rate limiting middleware
//

// limitMiddleware caps the number of in-flight requests per operation with
// weighted semaphores, acquired with a timeout so overload surfaces as a
// quick busy rejection instead of queueing.
type limitMiddleware struct {
	next    Service
	limits  *ServiceLimits
	timeout time.Duration
}

var (
	_ Service = (*limitMiddleware)(nil)
)

type ServiceLimits struct {
	CreateAccount    *semaphore.Weighted
	CloseAccount     *semaphore.Weighted
	ListAccounts     *semaphore.Weighted
	UseBalance       *semaphore.Weighted
	CancelBalance    *semaphore.Weighted
	QueryTransaction *semaphore.Weighted
	Statement        *semaphore.Weighted
}

func NewServiceLimits(n int64) *ServiceLimits {
	return &ServiceLimits{
		CreateAccount:    semaphore.NewWeighted(n),
		CloseAccount:     semaphore.NewWeighted(n),
		ListAccounts:     semaphore.NewWeighted(n),
		UseBalance:       semaphore.NewWeighted(n),
		CancelBalance:    semaphore.NewWeighted(n),
		QueryTransaction: semaphore.NewWeighted(n),
		Statement:        semaphore.NewWeighted(n),
	}
}

func NewLimitMiddleware(limits *ServiceLimits, timeout time.Duration) Middleware {
	return func(next Service) Service {
		return &limitMiddleware{
			next:    next,
			limits:  limits,
			timeout: timeout,
		}
	}
}

func (l *limitMiddleware) acquire(sem *semaphore.Weighted) (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, ErrServiceBusy
	}
	return func() { sem.Release(1) }, nil
}

func (l *limitMiddleware) CreateAccount(req CreateAccountReq) (*Account, error) {
	release, err := l.acquire(l.limits.CreateAccount)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.CreateAccount(req)
}

func (l *limitMiddleware) CloseAccount(req CloseAccountReq) (*Account, error) {
	release, err := l.acquire(l.limits.CloseAccount)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.CloseAccount(req)
}

func (l *limitMiddleware) ListAccounts(req ListAccountsReq) ([]Account, error) {
	release, err := l.acquire(l.limits.ListAccounts)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.ListAccounts(req)
}

func (l *limitMiddleware) UseBalance(req UseBalanceReq) (*Transaction, error) {
	release, err := l.acquire(l.limits.UseBalance)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.UseBalance(req)
}

// Failure audit records are never shed; losing them defeats their purpose.
func (l *limitMiddleware) RecordFailedUse(req RecordFailedReq) error {
	return l.next.RecordFailedUse(req)
}

func (l *limitMiddleware) CancelBalance(req CancelBalanceReq) (*Transaction, error) {
	release, err := l.acquire(l.limits.CancelBalance)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.CancelBalance(req)
}

func (l *limitMiddleware) RecordFailedCancel(req RecordFailedReq) error {
	return l.next.RecordFailedCancel(req)
}

func (l *limitMiddleware) QueryTransaction(token string) (*Transaction, error) {
	release, err := l.acquire(l.limits.QueryTransaction)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.QueryTransaction(token)
}

func (l *limitMiddleware) Statement(w io.Writer, req StatementReq) error {
	release, err := l.acquire(l.limits.Statement)
	if err != nil {
		return err
	}
	defer release()
	return l.next.Statement(w, req)
}

//
// Circuit breaker middleware
//

type ServiceBreaker struct {
	CreateAccount    *gobreaker.TwoStepCircuitBreaker[*Account]
	CloseAccount     *gobreaker.TwoStepCircuitBreaker[*Account]
	ListAccounts     *gobreaker.TwoStepCircuitBreaker[[]Account]
	UseBalance       *gobreaker.TwoStepCircuitBreaker[*Transaction]
	CancelBalance    *gobreaker.TwoStepCircuitBreaker[*Transaction]
	QueryTransaction *gobreaker.TwoStepCircuitBreaker[*Transaction]
	Statement        *gobreaker.TwoStepCircuitBreaker[interface{}]
}

func NewServiceBreaker(st gobreaker.Settings) *ServiceBreaker {
	named := func(name string) gobreaker.Settings {
		cp := st
		cp.Name = name
		return cp
	}
	return &ServiceBreaker{
		CreateAccount:    gobreaker.NewTwoStepCircuitBreaker[*Account](named("CreateAccount")),
		CloseAccount:     gobreaker.NewTwoStepCircuitBreaker[*Account](named("CloseAccount")),
		ListAccounts:     gobreaker.NewTwoStepCircuitBreaker[[]Account](named("ListAccounts")),
		UseBalance:       gobreaker.NewTwoStepCircuitBreaker[*Transaction](named("UseBalance")),
		CancelBalance:    gobreaker.NewTwoStepCircuitBreaker[*Transaction](named("CancelBalance")),
		QueryTransaction: gobreaker.NewTwoStepCircuitBreaker[*Transaction](named("QueryTransaction")),
		Statement:        gobreaker.NewTwoStepCircuitBreaker[interface{}](named("Statement")),
	}
}

// circuitBreakMiddleware trips an operation open when the store keeps
// failing. Business rejections are normal outcomes and do not count.
type circuitBreakMiddleware struct {
	next  Service
	brkrs *ServiceBreaker
}

var (
	_ Service = (*circuitBreakMiddleware)(nil)
)

func NewCircuitBreakMiddleware(brkrs *ServiceBreaker) Middleware {
	return func(next Service) Service {
		return &circuitBreakMiddleware{
			next:  next,
			brkrs: brkrs,
		}
	}
}

// expected reports whether err is a per-request outcome rather than a
// service fault.
func expected(err error) bool {
	if err == nil {
		return true
	}
	var rej Rejection
	errbr := &ErrBadRequest{}
	return errors.As(err, &rej) || errors.As(err, errbr)
}

func (c *circuitBreakMiddleware) CreateAccount(req CreateAccountReq) (*Account, error) {
	done, err := c.brkrs.CreateAccount.Allow()
	if err != nil {
		return nil, ErrServiceUnavailable
	}
	acct, err := c.next.CreateAccount(req)
	done(expected(err))
	return acct, err
}

func (c *circuitBreakMiddleware) CloseAccount(req CloseAccountReq) (*Account, error) {
	done, err := c.brkrs.CloseAccount.Allow()
	if err != nil {
		return nil, ErrServiceUnavailable
	}
	acct, err := c.next.CloseAccount(req)
	done(expected(err))
	return acct, err
}

func (c *circuitBreakMiddleware) ListAccounts(req ListAccountsReq) ([]Account, error) {
	done, err := c.brkrs.ListAccounts.Allow()
	if err != nil {
		return nil, ErrServiceUnavailable
	}
	accts, err := c.next.ListAccounts(req)
	done(expected(err))
	return accts, err
}

func (c *circuitBreakMiddleware) UseBalance(req UseBalanceReq) (*Transaction, error) {
	done, err := c.brkrs.UseBalance.Allow()
	if err != nil {
		return nil, ErrServiceUnavailable
	}
	txn, err := c.next.UseBalance(req)
	done(expected(err))
	return txn, err
}

func (c *circuitBreakMiddleware) RecordFailedUse(req RecordFailedReq) error {
	return c.next.RecordFailedUse(req)
}

func (c *circuitBreakMiddleware) CancelBalance(req CancelBalanceReq) (*Transaction, error) {
	done, err := c.brkrs.CancelBalance.Allow()
	if err != nil {
		return nil, ErrServiceUnavailable
	}
	txn, err := c.next.CancelBalance(req)
	done(expected(err))
	return txn, err
}

func (c *circuitBreakMiddleware) RecordFailedCancel(req RecordFailedReq) error {
	return c.next.RecordFailedCancel(req)
}

func (c *circuitBreakMiddleware) QueryTransaction(token string) (*Transaction, error) {
	done, err := c.brkrs.QueryTransaction.Allow()
	if err != nil {
		return nil, ErrServiceUnavailable
	}
	txn, err := c.next.QueryTransaction(token)
	done(expected(err))
	return txn, err
}

func (c *circuitBreakMiddleware) Statement(w io.Writer, req StatementReq) error {
	done, err := c.brkrs.Statement.Allow()
	if err != nil {
		return ErrServiceUnavailable
	}
	err = c.next.Statement(w, req)
	done(expected(err))
	return err
}
