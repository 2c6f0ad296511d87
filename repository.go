package bankcore

import (
	"github.com/bwmarrin/snowflake"
)

// Repository is the persistence gateway for owners, accounts, and
// transactions. Lookups that miss return the matching *NotFound Rejection.
//
// WithinTx runs fn against a transaction-scoped gateway and commits if fn
// returns nil. Inside a transaction, FindAccountByNumber locks the account
// row until commit, serializing concurrent balance mutations.
type Repository interface {
	FindOwnerByID(id snowflake.ID) (*Owner, error)
	FindAccountByNumber(number string) (*Account, error)
	FindAccountsByOwner(ownerID snowflake.ID) ([]Account, error)
	FindHighestAccountNumber() (string, error)
	CountAccountsByOwner(ownerID snowflake.ID) (int, error)
	SaveAccount(acct *Account) error
	FindTransactionByToken(token string) (*Transaction, error)
	FindTransactionsByAccount(acctID snowflake.ID) ([]Transaction, error)
	SaveTransaction(txn *Transaction) error
	WithinTx(fn func(Repository) error) error
}
