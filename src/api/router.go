package api

import (
	"net/http"

	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plaid/plaid-go/v41/plaid"
)

func NewRouter(pool *pgxpool.Pool, plaidClient *plaid.APIClient, isDemo bool) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.DemoModeMiddleware(isDemo))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", handlers.Login(pool))
		r.Post("/register", handlers.Register(pool))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
			// User
			r.Get("/user/{user_id}", handlers.GetUser(pool))
			r.Put("/user", handlers.UpdateUser(pool))
			r.Post("/user/change-password", handlers.ChangePassword(pool))
			r.Delete("/user", handlers.DeleteUser(pool))

			// Cards
			r.Post("/cards", handlers.CreateCard(pool))
			r.Get("/cards", handlers.GetAllCardsForUser(pool))
			r.Get("/cards/{card_id}", handlers.GetCardByID(pool))
			r.Put("/cards/{card_id}", handlers.UpdateCard(pool))
			r.Delete("/cards/{card_id}", handlers.DeleteCard(pool))
			r.Post("/cards/{card_id}/charge", handlers.ChargeCard(pool))
			r.Post("/cards/{card_id}/payment", handlers.PayCard(pool))
			r.Get("/cards/{card_id}/payoff", handlers.GetCardPayoff(pool))
			r.Get("/cards/{card_id}/required-payment", handlers.GetCardRequiredPayment(pool))

			// Transactions
			r.Post("/transactions", handlers.CreateTransaction(pool))
			r.Get("/transactions", handlers.ListTransactions(pool))
			r.Get("/transactions/{transaction_id}", handlers.GetTransactionByID(pool))
			r.Put("/transactions/{transaction_id}", handlers.UpdateTransaction(pool))
			r.Delete("/transactions/{transaction_id}", handlers.DeleteTransaction(pool))

			// Budgets
			r.Post("/budgets", handlers.CreateBudget(pool))
			r.Get("/budgets", handlers.GetAllBudgetsForUser(pool))
			r.Get("/budgets/{budget_id}", handlers.GetBudgetByID(pool))
			r.Get("/budgets/{budget_id}/status", handlers.GetBudgetStatus(pool))
			r.Put("/budgets/{budget_id}", handlers.UpdateBudget(pool))
			r.Delete("/budgets/{budget_id}", handlers.DeleteBudget(pool))

			// Savings goal
			r.Get("/goal", handlers.GetGoal(pool))
			r.Put("/goal", handlers.UpsertGoal(pool))
			r.Post("/goal/delta", handlers.ApplyGoalDelta(pool))
			r.Delete("/goal", handlers.DeleteGoal(pool))

			// Reports
			r.Get("/reports/summary", handlers.GetSummary(pool))
			r.Get("/reports/budgets", handlers.GetBudgetsReport(pool))

			// Bank
			r.Post("/bank/create-link-token", handlers.CreateLinkToken(plaidClient, pool))
			r.Post("/bank/exchange-public-token", handlers.ExchangePublicToken(plaidClient, pool))
			r.Get("/bank/items", handlers.GetBankItems(pool))
			r.Get("/bank/items/{item_id}/sync", handlers.SyncBankTransactions(plaidClient, pool))
			r.Delete("/bank/items/{item_id}", handlers.DeleteBankItem(pool))
		})

		// Super Admin Routes
		r.With(middleware.JWTAuthMiddleware, middleware.SuperAdminMiddleware).Group(func(r chi.Router) {
			r.Get("/admin/users", handlers.GetAllUsers(pool))
			r.Post("/admin/user/lock/{user_id}", handlers.LockUser(pool))
			r.Post("/admin/user/unlock/{user_id}", handlers.UnlockUser(pool))

			r.Post("/admin/cache/clear/{cache_name}", handlers.ClearCache())

			r.Post("/admin/invites", handlers.CreateInvite(pool))
			r.Get("/admin/invites", handlers.GetAllInvites(pool))
			r.Delete("/admin/invites/{id}", handlers.DeleteInvite(pool))
		})
	})

	return r
}
