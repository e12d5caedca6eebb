package handlers

import (
	"context"
	"log"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/strideapp/stride-api/internal/achievements"
	"github.com/strideapp/stride-api/internal/auth"
	"github.com/strideapp/stride-api/internal/models"
	"github.com/strideapp/stride-api/internal/notifier"
	"github.com/strideapp/stride-api/internal/trophy"
	"gorm.io/gorm"
)

const workoutKinds = 6 // configurable slots 0..5

type WorkoutHandler struct {
	db       *gorm.DB
	calc     *achievements.Calculator
	rec      *achievements.Reconciler
	notifier notifier.Notifier
	loc      *time.Location
}

func NewWorkoutHandler(db *gorm.DB, calc *achievements.Calculator, rec *achievements.Reconciler, n notifier.Notifier, loc *time.Location) *WorkoutHandler {
	return &WorkoutHandler{db: db, calc: calc, rec: rec, notifier: n, loc: loc}
}

// dayLocation picks the calendar timezone workout days are normalized in:
// the user's own, falling back to the server default.
func (h *WorkoutHandler) dayLocation(user models.User) *time.Location {
	if user.Timezone != "" {
		if loc, err := time.LoadLocation(user.Timezone); err == nil {
			return loc
		}
		log.Printf("Invalid timezone %q for user %d, using server default", user.Timezone, user.ID)
	}
	return h.loc
}

// syncAchievements recomputes the full trophy set and reconciles it
// against storage. Returns the newly earned trophies; any failure is
// logged and degrades to "no trophies reported this pass".
func (h *WorkoutHandler) syncAchievements(ctx context.Context, user models.User) []trophy.Info {
	res := h.calc.Calculate(ctx, user.ID)
	outcome, err := h.rec.Reconcile(ctx, user.ID, res)
	if err != nil {
		log.Printf("Achievement reconciliation skipped for user %d: %v", user.ID, err)
		return nil
	}
	if !outcome.Changed {
		return nil
	}

	earned := make([]trophy.Info, 0, len(outcome.NewlyEarned))
	for _, typ := range outcome.NewlyEarned {
		earned = append(earned, typ.Info())
	}

	if h.notifier != nil && len(earned) > 0 {
		if err := h.notifier.NotifyTrophies(user, earned); err != nil {
			log.Printf("Failed to send trophy notification: %v", err)
			// Don't fail the request here as the reconciliation is done
		}
	}

	return earned
}

type LogWorkoutRequest struct {
	Body struct {
		Timestamp time.Time `json:"timestamp" doc:"When the workout happened; attributed to its calendar day" required:"true"`
		Kind      int       `json:"kind" doc:"Workout kind slot (0-5)"`
		ClientRef string    `json:"client_ref,omitempty" doc:"Optional client-generated UUID for offline dedup"`
	}
}

type LogWorkoutResponse struct {
	Body struct {
		ID          uint          `json:"id"`
		Day         time.Time     `json:"day"`
		NewTrophies []trophy.Info `json:"new_trophies,omitempty"`
	}
}

func (h *WorkoutHandler) HandleLogWorkout(ctx context.Context, input *LogWorkoutRequest) (*LogWorkoutResponse, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(uint)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if input.Body.Kind < 0 || input.Body.Kind >= workoutKinds {
		return nil, huma.Error400BadRequest("Workout kind must be between 0 and 5")
	}
	if input.Body.Timestamp.IsZero() {
		return nil, huma.Error400BadRequest("Timestamp is required")
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		return nil, huma.Error404NotFound("User not found")
	}

	// Same record re-sent by a syncing client: return it, recompute nothing.
	if input.Body.ClientRef != "" {
		var existing models.Workout
		err := h.db.Where("client_ref = ? AND user_id = ?", input.Body.ClientRef, userID).First(&existing).Error
		if err == nil {
			res := &LogWorkoutResponse{}
			res.Body.ID = existing.ID
			res.Body.Day = existing.Day
			return res, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, huma.Error500InternalServerError("Database error checking workout: " + err.Error())
		}
	}

	clientRef := input.Body.ClientRef
	if clientRef == "" {
		clientRef = uuid.NewString()
	}

	workout := models.Workout{
		UserID:    userID,
		ClientRef: clientRef,
		Day:       achievements.DayOf(input.Body.Timestamp, h.dayLocation(user)),
		Kind:      input.Body.Kind,
	}

	if err := h.db.Create(&workout).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to log workout: " + err.Error())
	}

	earned := h.syncAchievements(ctx, user)

	res := &LogWorkoutResponse{}
	res.Body.ID = workout.ID
	res.Body.Day = workout.Day
	res.Body.NewTrophies = earned
	return res, nil
}

type DeleteWorkoutRequest struct {
	ID uint `path:"id"`
}

type DeleteWorkoutResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *WorkoutHandler) HandleDeleteWorkout(ctx context.Context, input *DeleteWorkoutRequest) (*DeleteWorkoutResponse, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(uint)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		return nil, huma.Error404NotFound("User not found")
	}

	result := h.db.Where("id = ? AND user_id = ?", input.ID, userID).Delete(&models.Workout{})
	if result.Error != nil {
		return nil, huma.Error500InternalServerError("Failed to delete workout: " + result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return nil, huma.Error404NotFound("Workout not found")
	}

	// Trophies are not sticky: removing the workout that carried a streak
	// or a perfect week drops those trophies on this pass.
	h.syncAchievements(ctx, user)

	res := &DeleteWorkoutResponse{}
	res.Body.Message = "Workout deleted"
	return res, nil
}

type WorkoutView struct {
	ID        uint      `json:"id"`
	Day       time.Time `json:"day"`
	Kind      int       `json:"kind"`
	ClientRef string    `json:"client_ref"`
}

type ListWorkoutsRequest struct {
	From string `query:"from" doc:"Inclusive lower bound day (YYYY-MM-DD)"`
	To   string `query:"to" doc:"Inclusive upper bound day (YYYY-MM-DD)"`
}

type ListWorkoutsResponse struct {
	Body struct {
		Workouts []WorkoutView `json:"workouts"`
	}
}

func (h *WorkoutHandler) HandleListWorkouts(ctx context.Context, input *ListWorkoutsRequest) (*ListWorkoutsResponse, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(uint)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	query := h.db.Where("user_id = ?", userID).Order("day asc")
	if input.From != "" {
		from, err := time.ParseInLocation("2006-01-02", input.From, h.loc)
		if err != nil {
			return nil, huma.Error400BadRequest("Invalid 'from' date")
		}
		query = query.Where("day >= ?", from)
	}
	if input.To != "" {
		to, err := time.ParseInLocation("2006-01-02", input.To, h.loc)
		if err != nil {
			return nil, huma.Error400BadRequest("Invalid 'to' date")
		}
		query = query.Where("day < ?", to.AddDate(0, 0, 1))
	}

	var workouts []models.Workout
	if err := query.Find(&workouts).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list workouts")
	}

	res := &ListWorkoutsResponse{}
	res.Body.Workouts = make([]WorkoutView, 0, len(workouts))
	for _, w := range workouts {
		res.Body.Workouts = append(res.Body.Workouts, WorkoutView{
			ID:        w.ID,
			Day:       w.Day,
			Kind:      w.Kind,
			ClientRef: w.ClientRef,
		})
	}
	return res, nil
}

type CalendarRequest struct {
	Year  int `path:"year"`
	Month int `path:"month"`
}

type CalendarDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type CalendarResponse struct {
	Body struct {
		Days []CalendarDay `json:"days"`
	}
}

// HandleCalendar returns per-day workout counts for one month, the data
// behind the client's calendar widgets.
func (h *WorkoutHandler) HandleCalendar(ctx context.Context, input *CalendarRequest) (*CalendarResponse, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(uint)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if input.Month < 1 || input.Month > 12 {
		return nil, huma.Error400BadRequest("Month must be between 1 and 12")
	}

	start := time.Date(input.Year, time.Month(input.Month), 1, 0, 0, 0, 0, h.loc)
	end := start.AddDate(0, 1, 0)

	var workouts []models.Workout
	err := h.db.Where("user_id = ? AND day >= ? AND day < ?", userID, start, end).
		Order("day asc").
		Find(&workouts).Error
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load calendar")
	}

	res := &CalendarResponse{}
	for _, w := range workouts {
		date := w.Day.Format("2006-01-02")
		if n := len(res.Body.Days); n > 0 && res.Body.Days[n-1].Date == date {
			res.Body.Days[n-1].Count++
			continue
		}
		res.Body.Days = append(res.Body.Days, CalendarDay{Date: date, Count: 1})
	}
	return res, nil
}

type StatsRequest struct{}

type StatsResponse struct {
	Body achievements.StreakSummary
}

func (h *WorkoutHandler) HandleStats(ctx context.Context, input *StatsRequest) (*StatsResponse, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(uint)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	var workouts []models.Workout
	err := h.db.Where("user_id = ?", userID).Order("day asc").Find(&workouts).Error
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load workouts")
	}

	days := make([]time.Time, 0, len(workouts))
	for _, w := range workouts {
		days = append(days, w.Day)
	}

	return &StatsResponse{Body: achievements.AnalyzeStreak(achievements.DistinctDays(days))}, nil
}
