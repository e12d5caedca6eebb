package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/strideapp/stride-api/internal/config"
	"github.com/strideapp/stride-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func okHandler(gotUserID *uint) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotUserID != nil {
			if id, ok := r.Context().Value(UserIDKey).(uint); ok {
				*gotUserID = id
			}
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_SlidingSession(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg, nil)

	t.Run("TokenRenewed", func(t *testing.T) {
		// Create a token that expires in 11 hours (less than TokenDuration/2 = 12 hours)
		userID := uint(1)
		claims := jwt.MapClaims{
			"user_id": userID,
			"exp":     time.Now().Add(11 * time.Hour).Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		tokenString, _ := token.SignedString([]byte(cfg.JWTSecret))

		req, _ := http.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: tokenString})
		rr := httptest.NewRecorder()

		middleware := handler.AuthMiddleware(okHandler(nil))
		middleware.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("expected status OK, got %v", rr.Code)
		}

		// Check if a new cookie was set
		cookies := rr.Result().Cookies()
		found := false
		for _, c := range cookies {
			if c.Name == "auth_token" {
				found = true
				if c.Value == tokenString {
					t.Errorf("expected new token value, but got the old one")
				}
				break
			}
		}
		if !found {
			t.Errorf("expected new auth_token cookie to be set")
		}
	})

	t.Run("TokenNotRenewed", func(t *testing.T) {
		// Create a token that expires in 13 hours (more than TokenDuration/2 = 12 hours)
		userID := uint(1)
		claims := jwt.MapClaims{
			"user_id": userID,
			"exp":     time.Now().Add(13 * time.Hour).Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		tokenString, _ := token.SignedString([]byte(cfg.JWTSecret))

		req, _ := http.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: tokenString})
		rr := httptest.NewRecorder()

		middleware := handler.AuthMiddleware(okHandler(nil))
		middleware.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("expected status OK, got %v", rr.Code)
		}

		// Check that no NEW auth_token cookie was set
		cookies := rr.Result().Cookies()
		for _, c := range cookies {
			if c.Name == "auth_token" {
				t.Errorf("did not expect a new auth_token cookie to be set")
			}
		}
	})
}

func TestAuthMiddleware_DeviceKey(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.AutoMigrate(&models.User{}, &models.DeviceKey{})

	user := models.User{DiscordID: "123456"}
	db.Create(&user)

	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg, db)

	t.Run("ValidKey", func(t *testing.T) {
		key := models.DeviceKey{UserID: user.ID, Key: "valid-key", Name: "phone"}
		db.Create(&key)

		req, _ := http.NewRequest("GET", "/", nil)
		req.Header.Set("X-Device-Key", "valid-key")
		rr := httptest.NewRecorder()

		var gotUserID uint
		handler.AuthMiddleware(okHandler(&gotUserID)).ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status OK, got %v", rr.Code)
		}
		if gotUserID != user.ID {
			t.Errorf("expected user ID %d on context, got %d", user.ID, gotUserID)
		}

		var updated models.DeviceKey
		db.First(&updated, key.ID)
		if updated.LastUsedAt == nil {
			t.Error("expected last_used_at to be updated")
		}
	})

	t.Run("ExpiredKey", func(t *testing.T) {
		expired := time.Now().Add(-time.Hour)
		db.Create(&models.DeviceKey{UserID: user.ID, Key: "expired-key", Name: "old phone", ExpiresAt: &expired})

		req, _ := http.NewRequest("GET", "/", nil)
		req.Header.Set("X-Device-Key", "expired-key")
		rr := httptest.NewRecorder()

		handler.AuthMiddleware(okHandler(nil)).ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 for expired key, got %v", rr.Code)
		}
	})

	t.Run("UnknownKeyFallsThroughToCookie", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/", nil)
		req.Header.Set("X-Device-Key", "no-such-key")
		rr := httptest.NewRecorder()

		handler.AuthMiddleware(okHandler(nil)).ServeHTTP(rr, req)

		// no cookie either, so the request is rejected
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %v", rr.Code)
		}
	})
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg, nil)

	tokenString, err := handler.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req, _ := http.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: tokenString})
	rr := httptest.NewRecorder()

	var gotUserID uint
	handler.AuthMiddleware(okHandler(&gotUserID)).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status OK, got %v", rr.Code)
	}
	if gotUserID != 42 {
		t.Errorf("expected user ID 42 on context, got %d", gotUserID)
	}
}
