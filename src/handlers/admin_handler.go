package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	cache "fintrack-server/src/db"
	db "fintrack-server/src/db/sql"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetAllUsers(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := db.GetAllUsers(r.Context(), pool)
		if err != nil {
			log.Printf("ERROR: Failed to get users: %v", err)
			http.Error(w, "failed to get users", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(users)
	}
}

func LockUser(pool *pgxpool.Pool) http.HandlerFunc {
	return setUserLocked(pool, true)
}

func UnlockUser(pool *pgxpool.Pool) http.HandlerFunc {
	return setUserLocked(pool, false)
}

func setUserLocked(pool *pgxpool.Pool, locked bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "user_id")
		userID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Printf("ERROR: Invalid user id param: %s", idStr)
			http.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		if err := db.SetUserLocked(r.Context(), pool, userID, locked); err != nil {
			log.Printf("ERROR: Failed to set locked=%t for user %d: %v", locked, userID, err)
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Printf("INFO: Set locked=%t for user %d", locked, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"user_id": userID, "locked": locked})
	}
}

// ClearCache drops a named cache, or every ledger-derived cache when the
// name is "all".
func ClearCache() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "cache_name")
		switch name {
		case "summary":
			cache.ClearAllSummaryCaches()
		case "budget_status":
			cache.ClearAllBudgetStatusCaches()
		case "all":
			cache.ClearLedgerCaches()
		default:
			http.Error(w, "unknown cache name", http.StatusBadRequest)
			return
		}
		log.Printf("INFO: Cleared cache %s", name)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"cleared": name})
	}
}
