package bankcore

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type acctJSONResp struct {
	OwnerID        string          `json:"owner_id"`
	AccountNumber  string          `json:"account_number"`
	Status         AccountStatus   `json:"status"`
	Balance        decimal.Decimal `json:"balance"`
	RegisteredAt   time.Time       `json:"registered_at"`
	UnregisteredAt *time.Time      `json:"unregistered_at,omitempty"`
}

func newAcctJSONResp(acct *Account) acctJSONResp {
	return acctJSONResp{
		OwnerID:        acct.OwnerID.String(),
		AccountNumber:  acct.Number,
		Status:         acct.Status,
		Balance:        acct.Balance,
		RegisteredAt:   acct.RegisteredAt,
		UnregisteredAt: acct.UnregisteredAt,
	}
}

type txnJSONResp struct {
	TransactionID   string          `json:"transaction_id"`
	AccountID       string          `json:"account_id"`
	Type            TxnType         `json:"type"`
	Result          TxnResult       `json:"result"`
	Amount          decimal.Decimal `json:"amount"`
	BalanceSnapshot decimal.Decimal `json:"balance_snapshot"`
	TransactedAt    time.Time       `json:"transacted_at"`
}

func newTxnJSONResp(txn *Transaction) txnJSONResp {
	return txnJSONResp{
		TransactionID:   txn.Token,
		AccountID:       txn.AccountID.String(),
		Type:            txn.Type,
		Result:          txn.Result,
		Amount:          txn.Amount,
		BalanceSnapshot: txn.BalanceSnapshot,
		TransactedAt:    txn.TransactedAt,
	}
}

func NewHTTPHandler(svc Service, log *zerolog.Logger) http.Handler {
	hndlr := &httpHandler{
		Svc: svc,
		Log: log,
	}
	mux := chi.NewMux()
	mux.NotFound(HTTPNotFound)
	mux.Route("/owners/{ownerID:[0-9]+}/accounts", func(r chi.Router) {
		r.Post("/", hndlr.CreateAccount)
		r.Get("/", hndlr.ListAccounts)
		r.Delete("/{acctNum:[0-9]+}", hndlr.CloseAccount)
	})
	mux.Get("/accounts/{acctNum:[0-9]+}/statement", hndlr.Statement)
	mux.Route("/transactions", func(r chi.Router) {
		r.Post("/use", hndlr.UseBalance)
		r.Post("/cancel", hndlr.CancelBalance)
		r.Get("/{token:[0-9a-f]+}", hndlr.QueryTransaction)
	})

	return mux
}

type httpHandler struct {
	Svc Service
	Log *zerolog.Logger
}

func (h *httpHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerIDParam(w, r, "createAccount")
	if !ok {
		return
	}
	buf, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		h.Log.Err(err).Str("method", "createAccount").Msg("error reading HTTP request")
		WriteHTTPError(w, ErrInternalServer)
		return
	}
	var req CreateAccountReq
	if err = json.Unmarshal(buf, &req); err != nil {
		h.Log.Err(err).Str("method", "createAccount").Msg("error unmarshalling JSON")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"request body": "malformed JSON"}})
		return
	}
	if req.InitialBalance.IsNegative() || !req.InitialBalance.IsInteger() {
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"initial_balance": "must be a non-negative integer"}})
		return
	}
	req.OwnerID = ownerID
	acct, err := h.Svc.CreateAccount(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	writeJSON(w, newAcctJSONResp(acct))
}

func (h *httpHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerIDParam(w, r, "listAccounts")
	if !ok {
		return
	}
	accts, err := h.Svc.ListAccounts(ListAccountsReq{OwnerID: ownerID})
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	resp := make([]acctJSONResp, 0, len(accts))
	for i := range accts {
		resp = append(resp, newAcctJSONResp(&accts[i]))
	}
	writeJSON(w, resp)
}

func (h *httpHandler) CloseAccount(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerIDParam(w, r, "closeAccount")
	if !ok {
		return
	}
	req := CloseAccountReq{
		OwnerID:       ownerID,
		AccountNumber: chi.URLParam(r, "acctNum"),
	}
	acct, err := h.Svc.CloseAccount(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	writeJSON(w, newAcctJSONResp(acct))
}

func (h *httpHandler) UseBalance(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OwnerID       string          `json:"owner_id"`
		AccountNumber string          `json:"account_number"`
		Amount        decimal.Decimal `json:"amount"`
	}
	if ok := h.decodeBody(w, r, "useBalance", &body); !ok {
		return
	}
	ownerID, err := snowflake.ParseString(body.OwnerID)
	if err != nil {
		h.Log.Err(err).Str("method", "useBalance").Msg("error parsing owner ID")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"owner_id": "invalid format"}})
		return
	}
	if !validAmount(body.Amount) {
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"amount": "must be a positive integer"}})
		return
	}

	req := UseBalanceReq{
		OwnerID:       ownerID,
		AccountNumber: body.AccountNumber,
		Amount:        body.Amount,
	}
	txn, err := h.Svc.UseBalance(req)
	if err != nil {
		h.recordRejection(TxnUse, req.AccountNumber, req.Amount, err)
		WriteHTTPError(w, err)
		return
	}

	writeJSON(w, newTxnJSONResp(txn))
}

func (h *httpHandler) CancelBalance(w http.ResponseWriter, r *http.Request) {
	var req CancelBalanceReq
	if ok := h.decodeBody(w, r, "cancelBalance", &req); !ok {
		return
	}
	if !validAmount(req.Amount) {
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"amount": "must be a positive integer"}})
		return
	}

	txn, err := h.Svc.CancelBalance(req)
	if err != nil {
		h.recordRejection(TxnCancel, req.AccountNumber, req.Amount, err)
		WriteHTTPError(w, err)
		return
	}

	writeJSON(w, newTxnJSONResp(txn))
}

func (h *httpHandler) QueryTransaction(w http.ResponseWriter, r *http.Request) {
	txn, err := h.Svc.QueryTransaction(chi.URLParam(r, "token"))
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	writeJSON(w, newTxnJSONResp(txn))
}

func (h *httpHandler) Statement(w http.ResponseWriter, r *http.Request) {
	req := StatementReq{AccountNumber: chi.URLParam(r, "acctNum")}
	var buf bytes.Buffer
	if err := h.Svc.Statement(&buf, req); err != nil {
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.Log.Err(err).Str("method", "statement").Msg("error writing HTTP response")
	}
}

// recordRejection persists the FAIL audit record for a rejected balance
// operation. Owner and account lookup misses are skipped: there is no
// account row to audit against, and recording would only fail the same way.
func (h *httpHandler) recordRejection(typ TxnType, acctNum string, amount decimal.Decimal, err error) {
	var rej Rejection
	if !errors.As(err, &rej) {
		return
	}
	if rej.Code == CodeOwnerNotFound || rej.Code == CodeAccountNotFound {
		return
	}
	req := RecordFailedReq{AccountNumber: acctNum, Amount: amount}
	var rerr error
	switch typ {
	case TxnUse:
		rerr = h.Svc.RecordFailedUse(req)
	case TxnCancel:
		rerr = h.Svc.RecordFailedCancel(req)
	}
	if rerr != nil {
		h.Log.Err(rerr).
			Str("account_number", acctNum).
			Str("code", string(rej.Code)).
			Msg("error recording failed transaction")
	}
}

func (h *httpHandler) ownerIDParam(w http.ResponseWriter, r *http.Request, method string) (snowflake.ID, bool) {
	pid := chi.URLParam(r, "ownerID")
	ownerID, err := snowflake.ParseString(pid)
	if err != nil {
		h.Log.Err(err).Str("method", method).Msg("error parsing owner ID")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"ownerID": "invalid format"}})
		return 0, false
	}
	return ownerID, true
}

func (h *httpHandler) decodeBody(w http.ResponseWriter, r *http.Request, method string, dst any) bool {
	buf, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		h.Log.Err(err).Str("method", method).Msg("error reading HTTP request")
		WriteHTTPError(w, ErrInternalServer)
		return false
	}
	if err = json.Unmarshal(buf, dst); err != nil {
		h.Log.Err(err).Str("method", method).Msg("error unmarshalling JSON")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"request body": "malformed JSON"}})
		return false
	}
	return true
}

func validAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.IsInteger()
}

func writeJSON(w http.ResponseWriter, resp any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("error response encoding failed")
	}
}

func WriteHTTPError(w http.ResponseWriter, err error) {
	var ne error
	defer func() {
		if ne != nil {
			log.Error().
				Err(ne).
				Msg("error response encoding failed")
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	var rej Rejection
	errbr := &ErrBadRequest{}
	switch {
	case errors.As(err, &rej):
		if rej.Code.NotFound() {
			w.WriteHeader(http.StatusNotFound)
		} else {
			w.WriteHeader(http.StatusBadRequest)
		}
		ne = json.NewEncoder(w).Encode(rej)
	case errors.As(err, errbr):
		w.WriteHeader(http.StatusBadRequest)
		ne = json.NewEncoder(w).Encode(errbr)
	case errors.Is(err, ErrServiceBusy) || errors.Is(err, ErrServiceUnavailable):
		w.WriteHeader(http.StatusServiceUnavailable)
		ne = json.NewEncoder(w).Encode(map[string]string{"message": err.Error()})
	default:
		w.WriteHeader(http.StatusInternalServerError)
		ne = json.NewEncoder(w).Encode(map[string]string{"message": "server error"})
	}
}

func HTTPNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	w.Header().Set("Content-Type", "application/json")
	resp := map[string]string{
		"path": r.URL.Path,
	}
	json.NewEncoder(w).Encode(resp)
}
