package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	cache "fintrack-server/src/db"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type transactionRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Kind        string  `json:"kind"`
	Date        string  `json:"date"`
}

func (req *transactionRequest) toModel(userID int64) (*models.Transaction, string) {
	if req.Amount <= 0 {
		return nil, "amount must be positive"
	}
	if !util.ValidateKind(req.Kind) {
		return nil, "kind must be income or expense"
	}
	if req.Category == "" {
		return nil, "category is required"
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, "date must be YYYY-MM-DD"
	}
	return &models.Transaction{
		UserID:      userID,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Kind:        req.Kind,
		Date:        date,
	}, ""
}

func CreateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		txn, msg := req.toModel(userID)
		if msg != "" {
			log.Printf("ERROR: Transaction validation failed for user %d: %s", userID, msg)
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		created, err := db.CreateTransaction(r.Context(), pool, txn)
		if err != nil {
			log.Printf("ERROR: Failed to create transaction for user %d: %v", userID, err)
			http.Error(w, "failed to create transaction", http.StatusInternalServerError)
			return
		}

		cache.ClearLedgerCaches()
		log.Printf("INFO: Created transaction id %d for user %d, category %s", created.ID, userID, created.Category)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetTransactionByID(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		txnID, ok := parseTransactionID(w, r)
		if !ok {
			return
		}
		txn, err := db.GetTransactionByID(r.Context(), pool, userID, txnID)
		if err != nil {
			log.Printf("ERROR: Transaction id %d not found for user %d: %v", txnID, userID, err)
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(txn)
	}
}

func ListTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		filter := db.TransactionFilter{
			Category: r.URL.Query().Get("category"),
			Kind:     r.URL.Query().Get("kind"),
		}
		if raw := r.URL.Query().Get("start"); raw != "" {
			start, err := time.Parse("2006-01-02", raw)
			if err != nil {
				http.Error(w, "start must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			filter.Start = start
		}
		if raw := r.URL.Query().Get("end"); raw != "" {
			end, err := time.Parse("2006-01-02", raw)
			if err != nil {
				http.Error(w, "end must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			filter.End = end
		}
		if filter.Kind != "" && !util.ValidateKind(filter.Kind) {
			http.Error(w, "kind must be income or expense", http.StatusBadRequest)
			return
		}

		txns, err := db.ListTransactions(r.Context(), pool, userID, filter)
		if err != nil {
			log.Printf("ERROR: Failed to list transactions for user %d: %v", userID, err)
			http.Error(w, "failed to get transactions", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(txns)
	}
}

func UpdateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		txnID, ok := parseTransactionID(w, r)
		if !ok {
			return
		}
		var req transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update transaction request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		txn, msg := req.toModel(userID)
		if msg != "" {
			log.Printf("ERROR: Transaction validation failed for user %d: %s", userID, msg)
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		txn.ID = txnID

		updated, err := db.UpdateTransaction(r.Context(), pool, txn)
		if err != nil {
			log.Printf("ERROR: Failed to update transaction %d for user %d: %v", txnID, userID, err)
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		cache.ClearLedgerCaches()
		log.Printf("INFO: Updated transaction id %d for user %d", txnID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		txnID, ok := parseTransactionID(w, r)
		if !ok {
			return
		}
		if err := db.DeleteTransaction(r.Context(), pool, userID, txnID); err != nil {
			log.Printf("ERROR: Failed to delete transaction %d for user %d: %v", txnID, userID, err)
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		cache.ClearLedgerCaches()
		log.Printf("INFO: Deleted transaction id %d for user %d", txnID, userID)
		w.WriteHeader(http.StatusNoContent)
	}
}

func parseTransactionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	txnIDStr := chi.URLParam(r, "transaction_id")
	txnID, err := strconv.ParseInt(txnIDStr, 10, 64)
	if err != nil {
		log.Printf("ERROR: Invalid transaction id param: %s", txnIDStr)
		http.Error(w, "invalid transaction id", http.StatusBadRequest)
		return 0, false
	}
	return txnID, true
}
