package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/finance"
	"fintrack-server/src/models"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type cardRequest struct {
	Name              string   `json:"name"`
	Balance           float64  `json:"balance"`
	AnnualRatePercent float64  `json:"annual_rate_percent"`
	MinimumPayment    float64  `json:"minimum_payment"`
	CreditLimit       *float64 `json:"credit_limit"`
}

func (req *cardRequest) validate() string {
	if req.Name == "" {
		return "name is required"
	}
	if req.Balance < 0 {
		return "balance must not be negative"
	}
	if req.AnnualRatePercent < 0 || req.AnnualRatePercent > 100 {
		return "annual rate must be between 0 and 100"
	}
	if req.MinimumPayment < 0 {
		return "minimum payment must not be negative"
	}
	if req.CreditLimit != nil && *req.CreditLimit <= 0 {
		return "credit limit must be positive"
	}
	return ""
}

func CreateCard(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req cardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create card request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if msg := req.validate(); msg != "" {
			log.Printf("ERROR: Card validation failed for user %d: %s", userID, msg)
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		card := &models.Card{
			UserID:            userID,
			Name:              req.Name,
			Balance:           req.Balance,
			AnnualRatePercent: req.AnnualRatePercent,
			MinimumPayment:    req.MinimumPayment,
			CreditLimit:       req.CreditLimit,
		}
		created, err := db.CreateCard(r.Context(), pool, card)
		if err != nil {
			log.Printf("ERROR: Failed to create card for user %d: %v", userID, err)
			http.Error(w, "failed to create card", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Created card id %d for user %d, name %s", created.ID, userID, created.Name)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetCardByID(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		card, ok := fetchCard(w, r, pool, userID)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(card)
	}
}

func GetAllCardsForUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		cards, err := db.GetAllCardsForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get cards for user %d: %v", userID, err)
			http.Error(w, "failed to get cards", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cards)
	}
}

func UpdateCard(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		cardID, ok := parseCardID(w, r)
		if !ok {
			return
		}
		var req cardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update card request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if msg := req.validate(); msg != "" {
			log.Printf("ERROR: Card validation failed for user %d: %s", userID, msg)
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		card := &models.Card{
			ID:                cardID,
			UserID:            userID,
			Name:              req.Name,
			Balance:           req.Balance,
			AnnualRatePercent: req.AnnualRatePercent,
			MinimumPayment:    req.MinimumPayment,
			CreditLimit:       req.CreditLimit,
		}
		updated, err := db.UpdateCard(r.Context(), pool, card)
		if err != nil {
			log.Printf("ERROR: Failed to update card %d for user %d: %v", cardID, userID, err)
			http.Error(w, "card not found", http.StatusNotFound)
			return
		}
		log.Printf("INFO: Updated card id %d for user %d", cardID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteCard(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		cardID, ok := parseCardID(w, r)
		if !ok {
			return
		}
		if err := db.DeleteCard(r.Context(), pool, userID, cardID); err != nil {
			log.Printf("ERROR: Failed to delete card %d for user %d: %v", cardID, userID, err)
			http.Error(w, "card not found", http.StatusNotFound)
			return
		}
		log.Printf("INFO: Deleted card id %d for user %d", cardID, userID)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ChargeCard adds a purchase to the card balance.
func ChargeCard(pool *pgxpool.Pool) http.HandlerFunc {
	return cardBalanceHandler(pool, "charge", func(balance, amount float64) float64 {
		return balance + amount
	})
}

// PayCard applies a payment to the card balance. The SQL layer floors the
// result at zero so overpaying just clears the card.
func PayCard(pool *pgxpool.Pool) http.HandlerFunc {
	return cardBalanceHandler(pool, "payment", func(balance, amount float64) float64 {
		return balance - amount
	})
}

func cardBalanceHandler(pool *pgxpool.Pool, action string, apply func(balance, amount float64) float64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		card, ok := fetchCard(w, r, pool, userID)
		if !ok {
			return
		}

		var req struct {
			Amount float64 `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode card %s request body for user %d: %v", action, userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Amount <= 0 {
			http.Error(w, "amount must be positive", http.StatusBadRequest)
			return
		}

		updated, err := db.UpdateCardBalance(r.Context(), pool, userID, card.ID, apply(card.Balance, req.Amount))
		if err != nil {
			log.Printf("ERROR: Failed to apply %s to card %d for user %d: %v", action, card.ID, userID, err)
			http.Error(w, "failed to update card balance", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Applied %s of %.2f to card %d for user %d", action, req.Amount, card.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

// GetCardPayoff computes the card's derived numbers: monthly interest,
// utilization, months until payoff at the given payment, and total interest
// over that horizon. The payment query param defaults to the card's minimum.
func GetCardPayoff(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		card, ok := fetchCard(w, r, pool, userID)
		if !ok {
			return
		}

		payment := card.MinimumPayment
		if raw := r.URL.Query().Get("payment"); raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil || parsed < 0 {
				http.Error(w, "invalid payment", http.StatusBadRequest)
				return
			}
			payment = parsed
		}

		months := finance.PayoffMonths(card.Balance, card.AnnualRatePercent, payment)

		resp := struct {
			CardID          int64   `json:"card_id"`
			Payment         float64 `json:"payment"`
			MonthlyInterest float64 `json:"monthly_interest"`
			Utilization     *int    `json:"utilization"`
			PayoffMonths    *int    `json:"payoff_months"`
			NeverPayoff     bool    `json:"never_payoff"`
			TotalInterest   float64 `json:"total_interest"`
		}{
			CardID:          card.ID,
			Payment:         payment,
			MonthlyInterest: finance.MonthlyInterest(card.Balance, card.AnnualRatePercent),
			Utilization:     finance.Utilization(card.Balance, card.CreditLimit),
		}

		if months == finance.PayoffNever {
			resp.NeverPayoff = true
		} else {
			resp.PayoffMonths = &months
			resp.TotalInterest = finance.TotalInterestPaid(card.Balance, months, payment)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

// GetCardRequiredPayment solves for the monthly payment that retires the
// balance within the requested number of months.
func GetCardRequiredPayment(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		card, ok := fetchCard(w, r, pool, userID)
		if !ok {
			return
		}

		monthsStr := r.URL.Query().Get("months")
		months, err := strconv.Atoi(monthsStr)
		if err != nil {
			log.Printf("ERROR: Invalid months param %q for user %d", monthsStr, userID)
			http.Error(w, "invalid months", http.StatusBadRequest)
			return
		}

		resp := struct {
			CardID          int64   `json:"card_id"`
			TargetMonths    int     `json:"target_months"`
			RequiredPayment float64 `json:"required_payment"`
		}{
			CardID:          card.ID,
			TargetMonths:    months,
			RequiredPayment: finance.RequiredPayment(card.Balance, card.AnnualRatePercent, months),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func parseCardID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	cardIDStr := chi.URLParam(r, "card_id")
	cardID, err := strconv.ParseInt(cardIDStr, 10, 64)
	if err != nil {
		log.Printf("ERROR: Invalid card id param: %s", cardIDStr)
		http.Error(w, "invalid card id", http.StatusBadRequest)
		return 0, false
	}
	return cardID, true
}

func fetchCard(w http.ResponseWriter, r *http.Request, pool *pgxpool.Pool, userID int64) (*models.Card, bool) {
	cardID, ok := parseCardID(w, r)
	if !ok {
		return nil, false
	}
	card, err := db.GetCardByID(r.Context(), pool, userID, cardID)
	if err != nil {
		log.Printf("ERROR: Card id %d not found for user %d: %v", cardID, userID, err)
		http.Error(w, "card not found", http.StatusNotFound)
		return nil, false
	}
	return card, true
}
