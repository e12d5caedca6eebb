package handlers

import (
	"testing"
	"time"

	"github.com/strideapp/stride-api/internal/models"
	"github.com/strideapp/stride-api/internal/trophy"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestTrophyHandler(t *testing.T) (*TrophyHandler, *gorm.DB, models.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.AutoMigrate(&models.User{}, &models.Achievement{})

	user := models.User{DiscordID: "123456789"}
	db.Create(&user)

	return NewTrophyHandler(db), db, user
}

func TestHandleListTrophies(t *testing.T) {
	handler, db, user := newTestTrophyHandler(t)

	d := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	db.Create(&models.Achievement{UserID: user.ID, Tag: int(trophy.TwoInADay), EarnedOn: d, OrderKey: d.Add(time.Minute)})
	db.Create(&models.Achievement{UserID: user.ID, Tag: int(trophy.Newbie), EarnedOn: d, OrderKey: d})
	// a row from a newer build is hidden, not an error
	db.Create(&models.Achievement{UserID: user.ID, Tag: 9999, EarnedOn: d, OrderKey: d.Add(2 * time.Minute)})

	resp, err := handler.HandleListTrophies(userCtx(user.ID), &ListTrophiesRequest{})
	if err != nil {
		t.Fatalf("HandleListTrophies: %v", err)
	}

	if len(resp.Body.Trophies) != 2 {
		t.Fatalf("expected 2 trophies, got %d", len(resp.Body.Trophies))
	}
	// ordered by order key
	if resp.Body.Trophies[0].Type != trophy.Newbie {
		t.Errorf("expected newbie first, got %v", resp.Body.Trophies[0].Type)
	}
	if resp.Body.Trophies[1].Type != trophy.TwoInADay {
		t.Errorf("expected twoInADay second, got %v", resp.Body.Trophies[1].Type)
	}
	for _, view := range resp.Body.Trophies {
		if view.Name == "" || view.Asset == "" {
			t.Errorf("missing display metadata: %+v", view)
		}
		if !view.EarnedOn.Equal(d) {
			t.Errorf("expected earned on %v, got %v", d, view.EarnedOn)
		}
	}
}

func TestHandleCatalog(t *testing.T) {
	handler, _, user := newTestTrophyHandler(t)

	resp, err := handler.HandleCatalog(userCtx(user.ID), &CatalogRequest{})
	if err != nil {
		t.Fatalf("HandleCatalog: %v", err)
	}

	if len(resp.Body.Trophies) != len(trophy.All) {
		t.Fatalf("expected %d catalog entries, got %d", len(trophy.All), len(resp.Body.Trophies))
	}
	for i, info := range resp.Body.Trophies {
		if info.Type != trophy.All[i] {
			t.Errorf("catalog order broken at %d: got %v", i, info.Type)
		}
	}
}
