package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	cache "fintrack-server/src/db"
	db "fintrack-server/src/db/sql"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plaid/plaid-go/v41/plaid"
)

func CreateLinkToken(plaidClient *plaid.APIClient, pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		user := plaid.LinkTokenCreateRequestUser{
			ClientUserId: strconv.FormatInt(userID, 10),
		}
		request := plaid.NewLinkTokenCreateRequest(
			"FinTrack",
			"en",
			[]plaid.CountryCode{plaid.COUNTRYCODE_US},
		)
		request.SetUser(user)
		request.SetProducts([]plaid.Products{plaid.PRODUCTS_TRANSACTIONS})
		resp, _, err := plaidClient.PlaidApi.LinkTokenCreate(context.Background()).LinkTokenCreateRequest(*request).Execute()
		if err != nil {
			http.Error(w, "Failed to create link token", http.StatusInternalServerError)
			log.Printf("ERROR: Plaid link token creation failed for user %d: %v", userID, err)
			return
		}

		linkToken := resp.GetLinkToken()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(linkToken)
	}
}

func ExchangePublicToken(plaidClient *plaid.APIClient, pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req struct {
			PublicToken string `json:"public_token"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode exchange public token request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		exchangePublicTokenReq := plaid.NewItemPublicTokenExchangeRequest(req.PublicToken)
		exchangePublicTokenResp, _, err := plaidClient.PlaidApi.ItemPublicTokenExchange(context.Background()).ItemPublicTokenExchangeRequest(
			*exchangePublicTokenReq,
		).Execute()

		if err != nil {
			http.Error(w, "Failed to exchange public token", http.StatusInternalServerError)
			log.Printf("ERROR: Plaid public token exchange failed for user %d: %v", userID, err)
			return
		}

		accessToken := exchangePublicTokenResp.GetAccessToken()
		itemID := exchangePublicTokenResp.GetItemId()

		institution := ""
		itemReq := plaid.NewItemGetRequest(accessToken)
		itemResp, _, err := plaidClient.PlaidApi.ItemGet(context.Background()).ItemGetRequest(*itemReq).Execute()
		if err != nil {
			// Institution details are optional, keep the flow going.
			log.Printf("ERROR: Failed to fetch item details for user %d: %v", userID, err)
		} else if itemResp.GetItem().InstitutionId.IsSet() {
			institution = *itemResp.GetItem().InstitutionId.Get()
		}

		if err := db.SaveBankItem(r.Context(), pool, userID, itemID, accessToken, institution); err != nil {
			http.Error(w, "Failed to save bank item", http.StatusInternalServerError)
			log.Printf("ERROR: Failed to save bank item for user %d: %v", userID, err)
			return
		}

		log.Printf("INFO: Successfully exchanged public token and saved bank item for user %d, item %s", userID, itemID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"item_id": itemID})
	}
}

// SyncBankTransactions pulls new transactions from Plaid since the last sync
// cursor and imports them into the ledger as income or expense entries.
func SyncBankTransactions(plaidClient *plaid.APIClient, pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		itemID, ok := parseBankItemID(w, r)
		if !ok {
			return
		}

		accessToken, err := db.GetBankItemAccessToken(r.Context(), pool, userID, itemID)
		if err != nil {
			http.Error(w, "Bank item not found", http.StatusNotFound)
			log.Printf("ERROR: Failed to get access token for user %d, item %d: %v", userID, itemID, err)
			return
		}

		cursor, err := db.GetSyncCursor(r.Context(), pool, itemID)
		if err != nil {
			http.Error(w, "Failed to retrieve sync cursor", http.StatusInternalServerError)
			log.Printf("ERROR: Failed to get sync cursor for item %d: %v", itemID, err)
			return
		}

		request := plaid.NewTransactionsSyncRequest(accessToken)
		if cursor != "" {
			request.SetCursor(cursor)
		}

		transactionsResp, _, err := plaidClient.PlaidApi.TransactionsSync(context.Background()).TransactionsSyncRequest(*request).Execute()
		if err != nil {
			http.Error(w, "Failed to fetch transactions", http.StatusInternalServerError)
			log.Printf("ERROR: Failed to sync transactions for user %d, item %d: %v", userID, itemID, err)
			return
		}

		imported, err := db.ImportBankTransactions(r.Context(), pool, userID, transactionsResp.GetAdded())
		if err != nil {
			http.Error(w, "Failed to import transactions", http.StatusInternalServerError)
			log.Printf("ERROR: Failed to import transactions for user %d: %v", userID, err)
			return
		}
		if imported > 0 {
			cache.ClearLedgerCaches()
		}

		if err := db.UpdateSyncCursor(r.Context(), pool, itemID, transactionsResp.GetNextCursor()); err != nil {
			http.Error(w, "Failed to update sync cursor", http.StatusInternalServerError)
			log.Printf("ERROR: Failed to update sync cursor for item %d: %v", itemID, err)
			return
		}

		log.Printf("INFO: Imported %d bank transactions for user %d, item %d", imported, userID, itemID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]int{"imported": imported})
	}
}

func GetBankItems(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		items, err := db.GetBankItems(r.Context(), pool, userID)
		if err != nil {
			http.Error(w, "Failed to retrieve bank items", http.StatusInternalServerError)
			log.Printf("ERROR: Failed to get bank items for user %d: %v", userID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(items)
	}
}

func DeleteBankItem(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		itemID, ok := parseBankItemID(w, r)
		if !ok {
			return
		}

		if err := db.DeleteBankItem(r.Context(), pool, userID, itemID); err != nil {
			http.Error(w, "Bank item not found", http.StatusNotFound)
			log.Printf("ERROR: Failed to delete bank item %d for user %d: %v", itemID, userID, err)
			return
		}
		log.Printf("INFO: Deleted bank item %d for user %d", itemID, userID)
		w.WriteHeader(http.StatusNoContent)
	}
}

func parseBankItemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	itemIDStr := chi.URLParam(r, "item_id")
	itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
	if err != nil {
		log.Printf("ERROR: Invalid bank item id param: %s", itemIDStr)
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return 0, false
	}
	return itemID, true
}
