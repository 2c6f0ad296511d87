package bankcore

import (
	"io"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type AccountStatus string

const (
	AccountInUse        AccountStatus = "IN_USE"
	AccountUnregistered AccountStatus = "UNREGISTERED"
)

type TxnType string

const (
	TxnUse    TxnType = "USE"
	TxnCancel TxnType = "CANCEL"
)

type TxnResult string

const (
	TxnSuccess TxnResult = "SUCCESS"
	TxnFail    TxnResult = "FAIL"
)

type Owner struct {
	ID        snowflake.ID
	Name      string
	CreatedAt time.Time
}

type Account struct {
	ID             snowflake.ID
	OwnerID        snowflake.ID
	Number         string
	Status         AccountStatus
	Balance        decimal.Decimal
	RegisteredAt   time.Time
	UnregisteredAt *time.Time
}

// Transaction is an immutable audit record. A cancellation inserts a new
// record; the original is never touched.
type Transaction struct {
	ID              snowflake.ID
	AccountID       snowflake.ID
	Type            TxnType
	Result          TxnResult
	Amount          decimal.Decimal
	BalanceSnapshot decimal.Decimal
	Token           string
	TransactedAt    time.Time
}

type CreateAccountReq struct {
	OwnerID        snowflake.ID
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

type CloseAccountReq struct {
	OwnerID       snowflake.ID
	AccountNumber string
}

type ListAccountsReq struct {
	OwnerID snowflake.ID
}

type UseBalanceReq struct {
	OwnerID       snowflake.ID
	AccountNumber string          `json:"account_number"`
	Amount        decimal.Decimal `json:"amount"`
}

type CancelBalanceReq struct {
	Token         string          `json:"transaction_id"`
	AccountNumber string          `json:"account_number"`
	Amount        decimal.Decimal `json:"amount"`
}

// RecordFailedReq captures a rejected balance operation for auditing.
// The boundary layer threads it in after a validation failure.
type RecordFailedReq struct {
	AccountNumber string
	Amount        decimal.Decimal
}

type StatementReq struct {
	AccountNumber string
}

type Service interface {
	CreateAccount(CreateAccountReq) (*Account, error)
	CloseAccount(CloseAccountReq) (*Account, error)
	ListAccounts(ListAccountsReq) ([]Account, error)
	UseBalance(UseBalanceReq) (*Transaction, error)
	RecordFailedUse(RecordFailedReq) error
	CancelBalance(CancelBalanceReq) (*Transaction, error)
	RecordFailedCancel(RecordFailedReq) error
	QueryTransaction(token string) (*Transaction, error)
	Statement(io.Writer, StatementReq) error
}

func NewService(repo Repository, node *snowflake.Node, log *zerolog.Logger) *serviceImpl {
	return &serviceImpl{
		repo: repo,
		node: node,
		log:  log,
	}
}

type serviceImpl struct {
	repo Repository
	node *snowflake.Node
	log  *zerolog.Logger
}

var (
	_ Service = (*serviceImpl)(nil)
)

func newToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
