package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateInvite(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
			log.Printf("ERROR: Failed to decode create invite request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if !util.ValidateEmail(req.Email) {
			log.Printf("ERROR: Email validation failed during invite creation - Email: %s", req.Email)
			http.Error(w, "invalid email format", http.StatusBadRequest)
			return
		}

		invite, err := db.CreateInvite(r.Context(), pool, req.Email)
		if err != nil {
			log.Printf("ERROR: Failed to create invite: %v", err)
			http.Error(w, "failed to create invite", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Invite created - Email: %s, ID: %d", invite.Email, invite.ID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(invite)
	}
}

func GetAllInvites(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invites, err := db.GetAllInvites(r.Context(), pool)
		if err != nil {
			log.Printf("ERROR: Failed to get invites: %v", err)
			http.Error(w, "failed to get invites", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(invites)
	}
}

func DeleteInvite(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Printf("ERROR: Invalid invite id param: %s", idStr)
			http.Error(w, "invalid invite id", http.StatusBadRequest)
			return
		}

		if err := db.DeleteInvite(r.Context(), pool, id); err != nil {
			log.Printf("ERROR: Failed to delete invite %d: %v", id, err)
			http.Error(w, "invite not found", http.StatusNotFound)
			return
		}
		log.Printf("INFO: Deleted invite %d", id)
		w.WriteHeader(http.StatusNoContent)
	}
}
