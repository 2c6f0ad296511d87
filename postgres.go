package bankcore

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	pgSelectOwnerSQL = `
		SELECT id, name, created_at
		FROM owners
		WHERE id = $1;
	`

	pgSelectAcctSQL = `
		SELECT id, owner_id, number, status, balance, registered_at, unregistered_at
		FROM accounts
		WHERE number = $1
	`

	pgSelectAcctsByOwnerSQL = `
		SELECT id, owner_id, number, status, balance, registered_at, unregistered_at
		FROM accounts
		WHERE owner_id = $1
		ORDER BY registered_at, id;
	`

	pgSelectHighestNumberSQL = `
		SELECT number
		FROM accounts
		ORDER BY number::numeric DESC
		LIMIT 1;
	`

	pgCountAcctsByOwnerSQL = `
		SELECT count(*)
		FROM accounts
		WHERE owner_id = $1;
	`

	pgUpsertAcctSQL = `
		INSERT INTO accounts (id, owner_id, number, status, balance, registered_at, unregistered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status,
		    balance = EXCLUDED.balance,
		    unregistered_at = EXCLUDED.unregistered_at;
	`

	pgSelectTxnByTokenSQL = `
		SELECT id, account_id, typ, result, amount, balance_snapshot, token, transacted_at
		FROM transactions
		WHERE token = $1;
	`

	pgSelectTxnsByAcctSQL = `
		SELECT id, account_id, typ, result, amount, balance_snapshot, token, transacted_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY transacted_at, id;
	`

	pgInsertTxnSQL = `
		INSERT INTO transactions (id, account_id, typ, result, amount, balance_snapshot, token, transacted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
)

// querier is the intersection of pgxpool.Pool and pgx.Tx used here, so the
// pooled endpoint and its transaction-scoped variant share the same queries.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresEndpoint struct {
	pool *pgxpool.Pool
	log  *zerolog.Logger
}

var (
	_ Repository = (*PostgresEndpoint)(nil)
	_ Repository = (*pgTxEndpoint)(nil)
)

func NewPostgresEndpoint(connStr string, log *zerolog.Logger) (*PostgresEndpoint, error) {
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	if err = pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	endpt := &PostgresEndpoint{
		pool: pool,
		log:  log,
	}
	return endpt, err
}

func (pg *PostgresEndpoint) Close() {
	pg.pool.Close()
}

func (pg *PostgresEndpoint) WithinTx(fn func(Repository) error) error {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}

	if err = fn(&pgTxEndpoint{tx: tx, log: pg.log}); err != nil {
		if rberr := tx.Rollback(ctx); rberr != nil {
			pg.log.Err(rberr).Msg("transaction rollback fail")
		}
		return err
	}
	return tx.Commit(ctx)
}

func (pg *PostgresEndpoint) FindOwnerByID(id snowflake.ID) (*Owner, error) {
	return findOwnerByID(pg.pool, id)
}

func (pg *PostgresEndpoint) FindAccountByNumber(number string) (*Account, error) {
	return findAccountByNumber(pg.pool, number, false)
}

func (pg *PostgresEndpoint) FindAccountsByOwner(ownerID snowflake.ID) ([]Account, error) {
	return findAccountsByOwner(pg.pool, ownerID)
}

func (pg *PostgresEndpoint) FindHighestAccountNumber() (string, error) {
	return findHighestAccountNumber(pg.pool)
}

func (pg *PostgresEndpoint) CountAccountsByOwner(ownerID snowflake.ID) (int, error) {
	return countAccountsByOwner(pg.pool, ownerID)
}

func (pg *PostgresEndpoint) SaveAccount(acct *Account) error {
	return saveAccount(pg.pool, acct)
}

func (pg *PostgresEndpoint) FindTransactionByToken(token string) (*Transaction, error) {
	return findTransactionByToken(pg.pool, token)
}

func (pg *PostgresEndpoint) FindTransactionsByAccount(acctID snowflake.ID) ([]Transaction, error) {
	return findTransactionsByAccount(pg.pool, acctID)
}

func (pg *PostgresEndpoint) SaveTransaction(txn *Transaction) error {
	return saveTransaction(pg.pool, txn)
}

// pgTxEndpoint is the gateway scoped to one open transaction. Account
// lookups take a row lock so concurrent mutations of the same account
// serialize at the store.
type pgTxEndpoint struct {
	tx  pgx.Tx
	log *zerolog.Logger
}

func (pt *pgTxEndpoint) WithinTx(fn func(Repository) error) error {
	return fn(pt)
}

func (pt *pgTxEndpoint) FindOwnerByID(id snowflake.ID) (*Owner, error) {
	return findOwnerByID(pt.tx, id)
}

func (pt *pgTxEndpoint) FindAccountByNumber(number string) (*Account, error) {
	return findAccountByNumber(pt.tx, number, true)
}

func (pt *pgTxEndpoint) FindAccountsByOwner(ownerID snowflake.ID) ([]Account, error) {
	return findAccountsByOwner(pt.tx, ownerID)
}

func (pt *pgTxEndpoint) FindHighestAccountNumber() (string, error) {
	return findHighestAccountNumber(pt.tx)
}

func (pt *pgTxEndpoint) CountAccountsByOwner(ownerID snowflake.ID) (int, error) {
	return countAccountsByOwner(pt.tx, ownerID)
}

func (pt *pgTxEndpoint) SaveAccount(acct *Account) error {
	return saveAccount(pt.tx, acct)
}

func (pt *pgTxEndpoint) FindTransactionByToken(token string) (*Transaction, error) {
	return findTransactionByToken(pt.tx, token)
}

func (pt *pgTxEndpoint) FindTransactionsByAccount(acctID snowflake.ID) ([]Transaction, error) {
	return findTransactionsByAccount(pt.tx, acctID)
}

func (pt *pgTxEndpoint) SaveTransaction(txn *Transaction) error {
	return saveTransaction(pt.tx, txn)
}

func findOwnerByID(q querier, id snowflake.ID) (*Owner, error) {
	row := q.QueryRow(context.Background(), pgSelectOwnerSQL, int64(id))
	var (
		rid int64
		own Owner
	)
	if err := row.Scan(&rid, &own.Name, &own.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	own.ID = snowflake.ID(rid)
	return &own, nil
}

func findAccountByNumber(q querier, number string, forUpdate bool) (*Account, error) {
	sql := pgSelectAcctSQL
	if forUpdate {
		sql += " FOR UPDATE;"
	} else {
		sql += ";"
	}
	row := q.QueryRow(context.Background(), sql, number)
	acct, err := scanAccount(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return acct, nil
}

func findAccountsByOwner(q querier, ownerID snowflake.ID) ([]Account, error) {
	rows, err := q.Query(context.Background(), pgSelectAcctsByOwnerSQL, int64(ownerID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accts []Account
	for rows.Next() {
		acct, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accts = append(accts, *acct)
	}
	return accts, rows.Err()
}

func scanAccount(row pgx.Row) (*Account, error) {
	var (
		id, ownerID int64
		acct        Account
		unreg       *time.Time
	)
	err := row.Scan(&id, &ownerID, &acct.Number, &acct.Status, &acct.Balance, &acct.RegisteredAt, &unreg)
	if err != nil {
		return nil, err
	}
	acct.ID = snowflake.ID(id)
	acct.OwnerID = snowflake.ID(ownerID)
	acct.UnregisteredAt = unreg
	return &acct, nil
}

func findHighestAccountNumber(q querier) (string, error) {
	row := q.QueryRow(context.Background(), pgSelectHighestNumberSQL)
	var number string
	if err := row.Scan(&number); err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return number, nil
}

func countAccountsByOwner(q querier, ownerID snowflake.ID) (int, error) {
	row := q.QueryRow(context.Background(), pgCountAcctsByOwnerSQL, int64(ownerID))
	var cnt int
	if err := row.Scan(&cnt); err != nil {
		return 0, err
	}
	return cnt, nil
}

func saveAccount(q querier, acct *Account) error {
	_, err := q.Exec(
		context.Background(),
		pgUpsertAcctSQL,
		int64(acct.ID),
		int64(acct.OwnerID),
		acct.Number,
		string(acct.Status),
		acct.Balance,
		acct.RegisteredAt,
		acct.UnregisteredAt,
	)
	return err
}

func findTransactionByToken(q querier, token string) (*Transaction, error) {
	row := q.QueryRow(context.Background(), pgSelectTxnByTokenSQL, token)
	txn, err := scanTransaction(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return txn, nil
}

func findTransactionsByAccount(q querier, acctID snowflake.ID) ([]Transaction, error) {
	rows, err := q.Query(context.Background(), pgSelectTxnsByAcctSQL, int64(acctID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, *txn)
	}
	return txns, rows.Err()
}

func scanTransaction(row pgx.Row) (*Transaction, error) {
	var (
		id, acctID int64
		txn        Transaction
		amt, snap  decimal.Decimal
	)
	err := row.Scan(&id, &acctID, &txn.Type, &txn.Result, &amt, &snap, &txn.Token, &txn.TransactedAt)
	if err != nil {
		return nil, err
	}
	txn.ID = snowflake.ID(id)
	txn.AccountID = snowflake.ID(acctID)
	txn.Amount = amt
	txn.BalanceSnapshot = snap
	return &txn, nil
}

func saveTransaction(q querier, txn *Transaction) error {
	_, err := q.Exec(
		context.Background(),
		pgInsertTxnSQL,
		int64(txn.ID),
		int64(txn.AccountID),
		string(txn.Type),
		string(txn.Result),
		txn.Amount,
		txn.BalanceSnapshot,
		txn.Token,
		txn.TransactedAt,
	)
	return err
}
