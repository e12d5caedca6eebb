package handlers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/strideapp/stride-api/internal/auth"
	"github.com/strideapp/stride-api/internal/models"
	"gorm.io/gorm"
)

// DeviceKeyHandler issues the header tokens the mobile client
// authenticates with after the initial browser login.
type DeviceKeyHandler struct {
	db *gorm.DB
}

func NewDeviceKeyHandler(db *gorm.DB) *DeviceKeyHandler {
	return &DeviceKeyHandler{db: db}
}

type CreateDeviceKeyInput struct {
	Body struct {
		Name      string     `json:"name" doc:"Device name, e.g. the phone model"`
		ExpiresAt *time.Time `json:"expires_at"`
	}
}

type DeviceKeyResponse struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	Key        string     `json:"key"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  *time.Time `json:"expires_at"`
	LastUsedAt *time.Time `json:"last_used_at"`
}

type CreateDeviceKeyOutput struct {
	Body DeviceKeyResponse
}

func (h *DeviceKeyHandler) HandleCreate(ctx context.Context, input *CreateDeviceKeyInput) (*CreateDeviceKeyOutput, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(uint)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	keyBytes := make([]byte, 32)
	if _, err := rand.Read(keyBytes); err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate key")
	}
	key := hex.EncodeToString(keyBytes)

	deviceKey := models.DeviceKey{
		UserID:    userID,
		Key:       key,
		Name:      input.Body.Name,
		ExpiresAt: input.Body.ExpiresAt,
	}

	if err := h.db.Create(&deviceKey).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create device key")
	}

	return &CreateDeviceKeyOutput{
		Body: DeviceKeyResponse{
			ID:         deviceKey.ID,
			Name:       deviceKey.Name,
			Key:        deviceKey.Key,
			CreatedAt:  deviceKey.CreatedAt,
			ExpiresAt:  deviceKey.ExpiresAt,
			LastUsedAt: deviceKey.LastUsedAt,
		},
	}, nil
}

type ListDeviceKeysInput struct{}

type ListDeviceKeysOutput struct {
	Body []DeviceKeyResponse
}

func (h *DeviceKeyHandler) HandleList(ctx context.Context, input *ListDeviceKeysInput) (*ListDeviceKeysOutput, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(uint)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	var deviceKeys []models.DeviceKey
	if err := h.db.Where("user_id = ?", userID).Find(&deviceKeys).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list device keys")
	}

	var response []DeviceKeyResponse
	for _, k := range deviceKeys {
		maskedKey := k.Key
		if len(k.Key) > 4 {
			maskedKey = "..." + k.Key[len(k.Key)-4:]
		}
		response = append(response, DeviceKeyResponse{
			ID:         k.ID,
			Name:       k.Name,
			Key:        maskedKey,
			CreatedAt:  k.CreatedAt,
			ExpiresAt:  k.ExpiresAt,
			LastUsedAt: k.LastUsedAt,
		})
	}

	return &ListDeviceKeysOutput{Body: response}, nil
}

type DeleteDeviceKeyInput struct {
	ID uint `path:"id"`
}

func (h *DeviceKeyHandler) HandleDelete(ctx context.Context, input *DeleteDeviceKeyInput) (*struct{}, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(uint)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.db.Where("id = ? AND user_id = ?", input.ID, userID).Delete(&models.DeviceKey{}).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete device key")
	}

	return nil, nil
}
