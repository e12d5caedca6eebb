package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/strideapp/stride-api/internal/auth"
	"github.com/strideapp/stride-api/internal/models"
	"github.com/strideapp/stride-api/internal/trophy"
	"gorm.io/gorm"
)

type TrophyHandler struct {
	db *gorm.DB
}

func NewTrophyHandler(db *gorm.DB) *TrophyHandler {
	return &TrophyHandler{db: db}
}

type TrophyView struct {
	Type     trophy.Type `json:"type"`
	Name     string      `json:"name"`
	Asset    string      `json:"asset"`
	EarnedOn time.Time   `json:"earned_on"`
}

type ListTrophiesRequest struct{}

type ListTrophiesResponse struct {
	Body struct {
		Trophies []TrophyView `json:"trophies"`
	}
}

func (h *TrophyHandler) HandleListTrophies(ctx context.Context, input *ListTrophiesRequest) (*ListTrophiesResponse, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(uint)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	var rows []models.Achievement
	err := h.db.Where("user_id = ?", userID).Order("order_key asc").Find(&rows).Error
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list trophies")
	}

	res := &ListTrophiesResponse{}
	res.Body.Trophies = make([]TrophyView, 0, len(rows))
	for _, row := range rows {
		typ := trophy.Type(row.Tag)
		if !typ.Valid() {
			// row written by a newer build; hide rather than fail
			continue
		}
		info := typ.Info()
		res.Body.Trophies = append(res.Body.Trophies, TrophyView{
			Type:     typ,
			Name:     info.Name,
			Asset:    info.Asset,
			EarnedOn: row.EarnedOn,
		})
	}
	return res, nil
}

type CatalogRequest struct{}

type CatalogResponse struct {
	Body struct {
		Trophies []trophy.Info `json:"trophies"`
	}
}

// HandleCatalog returns the full closed trophy catalog in display order.
func (h *TrophyHandler) HandleCatalog(ctx context.Context, input *CatalogRequest) (*CatalogResponse, error) {
	res := &CatalogResponse{}
	res.Body.Trophies = make([]trophy.Info, 0, len(trophy.All))
	for _, typ := range trophy.All {
		res.Body.Trophies = append(res.Body.Trophies, typ.Info())
	}
	return res, nil
}
