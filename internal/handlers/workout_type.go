package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/strideapp/stride-api/internal/auth"
	"github.com/strideapp/stride-api/internal/models"
	"gorm.io/gorm"
)

// Default display metadata for the six workout kind slots, used until the
// user renames them.
var defaultWorkoutTypes = [workoutKinds]struct {
	Name string
	Icon string
}{
	{"Run", "figure.run"},
	{"Strength", "dumbbell"},
	{"Yoga", "figure.yoga"},
	{"Bike", "bicycle"},
	{"Swim", "figure.pool.swim"},
	{"Other", "star"},
}

type WorkoutTypeHandler struct {
	db *gorm.DB
}

func NewWorkoutTypeHandler(db *gorm.DB) *WorkoutTypeHandler {
	return &WorkoutTypeHandler{db: db}
}

type WorkoutTypeView struct {
	Slot int    `json:"slot"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type ListWorkoutTypesRequest struct{}

type ListWorkoutTypesResponse struct {
	Body struct {
		Types []WorkoutTypeView `json:"types"`
	}
}

func (h *WorkoutTypeHandler) HandleList(ctx context.Context, input *ListWorkoutTypesRequest) (*ListWorkoutTypesResponse, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(uint)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	var rows []models.WorkoutType
	if err := h.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list workout types")
	}

	configured := map[int]models.WorkoutType{}
	for _, row := range rows {
		configured[row.Slot] = row
	}

	res := &ListWorkoutTypesResponse{}
	for slot := 0; slot < workoutKinds; slot++ {
		view := WorkoutTypeView{
			Slot: slot,
			Name: defaultWorkoutTypes[slot].Name,
			Icon: defaultWorkoutTypes[slot].Icon,
		}
		if row, ok := configured[slot]; ok {
			view.Name = row.Name
			view.Icon = row.Icon
		}
		res.Body.Types = append(res.Body.Types, view)
	}
	return res, nil
}

type UpsertWorkoutTypeRequest struct {
	Slot int `path:"slot"`
	Body struct {
		Name string `json:"name" doc:"Display name for this workout kind" required:"true"`
		Icon string `json:"icon" doc:"Icon identifier shown by the client"`
	}
}

type UpsertWorkoutTypeResponse struct {
	Body WorkoutTypeView
}

func (h *WorkoutTypeHandler) HandleUpsert(ctx context.Context, input *UpsertWorkoutTypeRequest) (*UpsertWorkoutTypeResponse, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(uint)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if input.Slot < 0 || input.Slot >= workoutKinds {
		return nil, huma.Error400BadRequest("Slot must be between 0 and 5")
	}

	var row models.WorkoutType
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.FirstOrInit(&row, models.WorkoutType{UserID: userID, Slot: input.Slot}).Error; err != nil {
			return err
		}

		row.Name = input.Body.Name
		row.Icon = input.Body.Icon

		return tx.Save(&row).Error
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to save workout type: " + err.Error())
	}

	res := &UpsertWorkoutTypeResponse{}
	res.Body = WorkoutTypeView{Slot: row.Slot, Name: row.Name, Icon: row.Icon}
	return res, nil
}
