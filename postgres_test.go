package bankcore_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanes/bankcore"
)

var (
	testDBConnStr string
)

func init() {
	testDBConnStr = os.Getenv("TEST_DB_CONN_STR")
}

func TestPostgres(t *testing.T) {
	if testDBConnStr == "" {
		t.Skip("TEST_DB_CONN_STR not set")
	}
	as := assert.New(t)
	reqrd := require.New(t)

	conn, teardown, err := initDB()
	reqrd.Nil(err)
	t.Cleanup(teardown)
	node, err := snowflake.NewNode(111)
	reqrd.Nil(err)

	ownerID := node.Generate()
	_, err = conn.Exec(context.Background(), `INSERT INTO owners (id, name) VALUES ($1, $2);`, ownerID.Int64(), "integration")
	reqrd.Nil(err)

	log := zerolog.Nop()
	endpt, err := bankcore.NewPostgresEndpoint(testDBConnStr, &log)
	reqrd.Nil(err)
	t.Cleanup(endpt.Close)
	svc := bankcore.NewService(endpt, node, &log)

	var (
		first  *bankcore.Account
		useTok string
	)

	t.Run("CreateAccount assigns sequential numbers", func(tt *testing.T) {
		first, err = svc.CreateAccount(bankcore.CreateAccountReq{
			OwnerID:        ownerID,
			InitialBalance: decimal.NewFromInt(1000),
		})
		reqrd.Nil(err)
		as.Equal("1000000000", first.Number)

		second, err := svc.CreateAccount(bankcore.CreateAccountReq{
			OwnerID:        ownerID,
			InitialBalance: decimal.Zero,
		})
		reqrd.Nil(err)
		as.Equal("1000000001", second.Number)
	})

	t.Run("UseBalance then CancelBalance restores the balance", func(tt *testing.T) {
		use, err := svc.UseBalance(bankcore.UseBalanceReq{
			OwnerID:       ownerID,
			AccountNumber: first.Number,
			Amount:        decimal.NewFromInt(400),
		})
		reqrd.Nil(err)
		as.True(use.BalanceSnapshot.Equal(decimal.NewFromInt(600)))
		useTok = use.Token

		cancel, err := svc.CancelBalance(bankcore.CancelBalanceReq{
			Token:         useTok,
			AccountNumber: first.Number,
			Amount:        decimal.NewFromInt(400),
		})
		reqrd.Nil(err)
		as.True(cancel.BalanceSnapshot.Equal(decimal.NewFromInt(1000)))
		as.Equal(bankcore.TxnCancel, cancel.Type)
	})

	t.Run("QueryTransaction returns the persisted record", func(tt *testing.T) {
		txn, err := svc.QueryTransaction(useTok)
		reqrd.Nil(err)
		as.Equal(bankcore.TxnUse, txn.Type)
		as.Equal(bankcore.TxnSuccess, txn.Result)
		as.True(txn.Amount.Equal(decimal.NewFromInt(400)))
	})

	t.Run("RecordFailedUse leaves an audit record", func(tt *testing.T) {
		err := svc.RecordFailedUse(bankcore.RecordFailedReq{
			AccountNumber: first.Number,
			Amount:        decimal.NewFromInt(99999),
		})
		reqrd.Nil(err)

		txns, err := endpt.FindTransactionsByAccount(first.ID)
		reqrd.Nil(err)
		last := txns[len(txns)-1]
		as.Equal(bankcore.TxnFail, last.Result)
		as.True(last.BalanceSnapshot.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("CloseAccount enforces an empty balance", func(tt *testing.T) {
		_, err := svc.CloseAccount(bankcore.CloseAccountReq{
			OwnerID:       ownerID,
			AccountNumber: first.Number,
		})
		var rej bankcore.Rejection
		as.ErrorAs(err, &rej)
		as.Equal(bankcore.CodeBalanceNotEmpty, rej.Code)

		closed, err := svc.CloseAccount(bankcore.CloseAccountReq{
			OwnerID:       ownerID,
			AccountNumber: "1000000001",
		})
		reqrd.Nil(err)
		as.Equal(bankcore.AccountUnregistered, closed.Status)
		as.NotNil(closed.UnregisteredAt)
	})
}

func initDB() (*pgx.Conn, func(), error) {
	conn, err := pgx.Connect(context.Background(), testDBConnStr)
	if err != nil {
		return nil, nil, err
	}
	initSQLpath := filepath.Join("testdata", "init_db.sql")
	bits, err := os.ReadFile(initSQLpath)
	if err != nil {
		return conn, nil, err
	}
	if _, err = conn.Exec(context.Background(), string(bits)); err != nil {
		return conn, nil, err
	}
	return conn, teardownDB(conn), err
}

func teardownDB(conn *pgx.Conn) func() {
	return func() {
		defer conn.Close(context.Background())

		tearSQLpath := filepath.Join("testdata", "teardown_db.sql")
		bits, err := os.ReadFile(tearSQLpath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "DB cleanup read teardown sql: %s", err.Error())
			return
		}
		if _, err = conn.Exec(context.Background(), string(bits)); err != nil {
			fmt.Fprintf(os.Stderr, "DB cleanup exec teardown sql: %s", err.Error())
			return
		}
	}
}
