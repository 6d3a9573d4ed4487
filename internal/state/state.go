// ABOUTME: Health state record and pure reducer over a closed action set.
// ABOUTME: Transitions are replace-and-append; input state is never mutated.
package state

import "github.com/harperreed/medtrack/internal/models"

// State is the authoritative in-memory session record. The report list
// is append-only in insertion order, and no metric history ever holds
// two readings with the same (kind, date).
type State struct {
	User            *models.User                           `json:"user"`
	Reports         []models.Report                        `json:"reports"`
	Recommendations []models.Recommendation                `json:"recommendations"`
	Appointments    []models.Appointment                   `json:"appointments"`
	Facilities      []models.Facility                      `json:"facilities"`
	ChatHistory     []models.ChatMessage                   `json:"chatHistory"`
	Metrics         map[models.MetricKind][]models.Reading `json:"healthMetrics"`
	HealthScore     int                                    `json:"healthScore"`
}

// initialScore is the session's score before any metrics arrive.
const initialScore = 92

// Initial returns the empty session state.
func Initial() State {
	metrics := make(map[models.MetricKind][]models.Reading, len(models.AllMetricKinds))
	for _, k := range models.AllMetricKinds {
		metrics[k] = nil
	}
	return State{
		Metrics:     metrics,
		HealthScore: initialScore,
	}
}

// Action is one of the closed set of state transitions.
type Action interface {
	isAction()
}

// SetUser replaces the session owner.
type SetUser struct{ User models.User }

// AddReport appends a report to the session record.
type AddReport struct{ Report models.Report }

// UpdateHealthMetrics merges an extraction into the per-kind histories
// and replaces the health score.
type UpdateHealthMetrics struct {
	Extraction  models.Extraction
	HealthScore int
}

// SetRecommendations replaces the current facility recommendations.
type SetRecommendations struct{ Recommendations []models.Recommendation }

// AddAppointment appends a booked appointment.
type AddAppointment struct{ Appointment models.Appointment }

// SetFacilities replaces the facility catalog view.
type SetFacilities struct{ Facilities []models.Facility }

// AddChatMessage appends a chat message.
type AddChatMessage struct{ Message models.ChatMessage }

// ClearChatHistory empties the chat history.
type ClearChatHistory struct{}

func (SetUser) isAction()             {}
func (AddReport) isAction()           {}
func (UpdateHealthMetrics) isAction() {}
func (SetRecommendations) isAction()  {}
func (AddAppointment) isAction()      {}
func (SetFacilities) isAction()       {}
func (AddChatMessage) isAction()      {}
func (ClearChatHistory) isAction()    {}

// Apply produces the next state for an action. It is a pure function:
// the input state is left untouched and every changed collection is
// reallocated.
func Apply(s State, a Action) State {
	switch a := a.(type) {
	case SetUser:
		u := a.User
		s.User = &u
	case AddReport:
		s.Reports = appendCopy(s.Reports, a.Report)
	case UpdateHealthMetrics:
		s.Metrics = mergeMetrics(s.Metrics, a.Extraction)
		s.HealthScore = a.HealthScore
	case SetRecommendations:
		s.Recommendations = a.Recommendations
	case AddAppointment:
		s.Appointments = appendCopy(s.Appointments, a.Appointment)
	case SetFacilities:
		s.Facilities = a.Facilities
	case AddChatMessage:
		s.ChatHistory = appendCopy(s.ChatHistory, a.Message)
	case ClearChatHistory:
		s.ChatHistory = nil
	}
	return s
}

// mergeMetrics folds new readings into the per-kind histories. A reading
// whose date matches an existing entry in that kind's history replaces
// the entry at its position; otherwise it appends.
func mergeMetrics(old map[models.MetricKind][]models.Reading, extraction models.Extraction) map[models.MetricKind][]models.Reading {
	next := make(map[models.MetricKind][]models.Reading, len(old))
	for k, history := range old {
		next[k] = history
	}

	for kind, reading := range extraction {
		history := next[kind]
		merged := make([]models.Reading, len(history))
		copy(merged, history)

		replaced := false
		for i, existing := range merged {
			if existing.Date == reading.Date {
				merged[i] = reading
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, reading)
		}
		next[kind] = merged
	}

	return next
}

func appendCopy[T any](list []T, v T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, v)
}
