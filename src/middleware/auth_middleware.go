package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// APIClaims is the subset of token claims the request pipeline consumes.
type APIClaims struct {
	UserID     int64
	Username   string
	SuperAdmin bool
}

// ParseTokenFromRequest validates the bearer token against JWT_SECRET and
// extracts the API claims. A token with a missing or mistyped claim is
// rejected the same as a bad signature.
func ParseTokenFromRequest(r *http.Request) (*APIClaims, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, fmt.Errorf("missing token")
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	raw, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	userID, ok := raw["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	username, ok := raw["username"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	superAdmin, ok := raw["super_admin"].(bool)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return &APIClaims{
		UserID:     int64(userID),
		Username:   username,
		SuperAdmin: superAdmin,
	}, nil
}

// JWTAuthMiddleware rejects unauthenticated requests and threads the token
// claims through the request context for handlers downstream.
func JWTAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := ParseTokenFromRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), "username", claims.Username)
		ctx = context.WithValue(ctx, "user_id", claims.UserID)
		ctx = context.WithValue(ctx, "super_admin", claims.SuperAdmin)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SuperAdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		superAdmin, ok := r.Context().Value("super_admin").(bool)
		if !ok || !superAdmin {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
