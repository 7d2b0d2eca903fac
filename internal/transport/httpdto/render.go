package httpdto

import (
	"time"

	"exercise-tracker/internal/config"
	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/services"
)

// humanDateLayout mirrors JavaScript's Date.toDateString(), e.g.
// "Mon Jun 01 2020".
const humanDateLayout = "Mon Jan 02 2006"

// Renderer shapes response payloads according to the configured API dialect:
// which JSON field carries a user's exercise list, and how dates are printed.
type Renderer struct {
	logField  string
	dateStyle string
}

func NewRenderer(api config.APIConfig) Renderer {
	return Renderer{logField: api.LogField, dateStyle: api.DateStyle}
}

func (r Renderer) FormatDate(t time.Time) string {
	if r.dateStyle == config.DateStyleISO {
		return t.UTC().Format(time.RFC3339)
	}
	return t.UTC().Format(humanDateLayout)
}

// User renders a full user record, exercise references as hex ids.
func (r Renderer) User(u domain.User) map[string]any {
	refs := make([]string, len(u.Log))
	for i, id := range u.Log {
		refs[i] = id.Hex()
	}
	return map[string]any{
		"id":       u.ID.Hex(),
		"username": u.Username,
		r.logField: refs,
	}
}

func (r Renderer) UserSlice(users []domain.User) []map[string]any {
	out := make([]map[string]any, len(users))
	for i, u := range users {
		out[i] = r.User(u)
	}
	return out
}

// LoggedExercise renders the flattened create-exercise response: the owning
// user's id and username plus the new exercise's fields.
func (r Renderer) LoggedExercise(logged services.LoggedExercise) map[string]any {
	return map[string]any{
		"id":          logged.User.ID.Hex(),
		"username":    logged.User.Username,
		"description": logged.Exercise.Description,
		"duration":    logged.Exercise.Duration,
		"date":        r.FormatDate(logged.Exercise.Date),
	}
}

// UserLog renders a filtered exercise history with its entry count. Exercise
// ids are suppressed.
func (r Renderer) UserLog(log services.UserLog) map[string]any {
	entries := make([]map[string]any, len(log.Entries))
	for i, e := range log.Entries {
		entries[i] = map[string]any{
			"description": e.Description,
			"duration":    e.Duration,
			"date":        r.FormatDate(e.Date),
		}
	}
	return map[string]any{
		"id":       log.User.ID.Hex(),
		"username": log.User.Username,
		r.logField: entries,
		"count":    len(entries),
	}
}
