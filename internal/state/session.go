// ABOUTME: Session engine driving the reducer from user-facing operations.
// ABOUTME: Single-writer; AI calls happen outside the lock, archive is write-through.
package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/harperreed/medtrack/internal/extract"
	"github.com/harperreed/medtrack/internal/interact"
	"github.com/harperreed/medtrack/internal/models"
	"github.com/harperreed/medtrack/internal/recommend"
	"github.com/harperreed/medtrack/internal/score"
	"github.com/harperreed/medtrack/internal/storage"
)

// ErrInvalidBooking is returned when a booking request fails validation.
// No state changes when it is returned.
var ErrInvalidBooking = errors.New("invalid booking request")

// WelcomeMessage opens an empty chat session.
const WelcomeMessage = `Hello! I'm your AI Health Assistant.

I can help you with:
• Symptom analysis
• Health information
• Medical guidance
• Treatment suggestions

What health concerns would you like to discuss today?`

// chatFallbackReply is used when the assistant service cannot be reached.
const chatFallbackReply = "I'm sorry, I'm having trouble connecting to my knowledge base right now. Please try again later or consult a healthcare professional for medical advice."

// Analyzer is the AI collaborator the session consults. Satisfied by
// *ai.Analyzer; swappable for tests.
type Analyzer interface {
	AnalyzeReport(ctx context.Context, reportText string) models.AnalysisResult
	AssistantReply(ctx context.Context, message string) (string, error)
}

// Session owns the in-memory state and serializes all transitions. AI
// calls run outside the mutex so a slow service never blocks readers;
// every transition is also written through to the archive when one is
// configured.
type Session struct {
	mu       sync.Mutex
	state    State
	analyzer Analyzer
	checker  interact.Checker
	repo     storage.Repository

	meds         []string
	lastReportID int64
}

// NewSession creates a session over the given collaborators. repo may be
// nil for a memory-only session.
func NewSession(analyzer Analyzer, checker interact.Checker, repo storage.Repository) *Session {
	s := &Session{
		state:    Initial(),
		analyzer: analyzer,
		checker:  checker,
		repo:     repo,
	}
	s.state = Apply(s.state, SetFacilities{Facilities: recommend.Catalog()})
	return s
}

// Snapshot returns a copy of the current state. Collections in the copy
// are shared with the session but never mutated in place, so callers may
// read them freely.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetUser names the session owner.
func (s *Session) SetUser(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, SetUser{User: models.User{Name: name}})
}

// SubmitReport runs the full pipeline for an uploaded report: AI
// analysis, record append, metric extraction, score update, and facility
// recommendation. The analysis call happens before any state changes, so
// a cancelled context leaves the session untouched. Archive write
// failures are reported but the in-memory transition still stands.
func (s *Session) SubmitReport(ctx context.Context, filename, text string) (models.Report, []models.Recommendation, error) {
	analysis := s.analyzer.AnalyzeReport(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()

	report := models.NewReport(s.nextReportID(), filename, text, analysis)
	s.state = Apply(s.state, AddReport{Report: report})

	extraction := extract.Metrics(text)
	if len(extraction) > 0 {
		s.state = Apply(s.state, UpdateHealthMetrics{
			Extraction:  extraction,
			HealthScore: score.Calculate(extraction),
		})
	}

	recs := recommend.ForAnalysis(analysis, text, s.state.Facilities)
	s.state = Apply(s.state, SetRecommendations{Recommendations: recs})

	if err := s.archiveReport(report, extraction); err != nil {
		return report, recs, err
	}
	return report, recs, nil
}

// nextReportID issues a wall-clock millisecond ID, bumped past the last
// issued ID so two uploads in the same millisecond stay distinct.
func (s *Session) nextReportID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastReportID {
		id = s.lastReportID + 1
	}
	s.lastReportID = id
	return id
}

func (s *Session) archiveReport(report models.Report, extraction models.Extraction) error {
	if s.repo == nil {
		return nil
	}
	if err := s.repo.SaveReport(&report); err != nil {
		return fmt.Errorf("archive report: %w", err)
	}
	for _, reading := range extraction {
		r := reading
		if err := s.repo.SaveReading(&r); err != nil {
			return fmt.Errorf("archive reading: %w", err)
		}
	}
	return nil
}

// SetMedications replaces the active medication list and returns the
// interactions flagged for the new list.
func (s *Session) SetMedications(meds []string) []models.Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meds = dedupeStrings(meds)
	return s.checker.Check(s.meds)
}

// AddMedication adds one medication to the active list. Adding a drug
// that is already present is a no-op. Returns the interactions for the
// resulting list.
func (s *Session) AddMedication(name string) []models.Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !containsString(s.meds, name) {
		s.meds = append(s.meds, name)
	}
	return s.checker.Check(s.meds)
}

// RemoveMedication drops one medication from the active list and returns
// the interactions for the remaining drugs.
func (s *Session) RemoveMedication(name string) []models.Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.meds[:0:0]
	for _, m := range s.meds {
		if m != name {
			out = append(out, m)
		}
	}
	s.meds = out
	return s.checker.Check(s.meds)
}

// Medications returns the active medication list in insertion order.
func (s *Session) Medications() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.meds))
	copy(out, s.meds)
	return out
}

// Checker returns the interaction checker the session was configured
// with, so callers can run ad-hoc checks under the same lookup mode.
func (s *Session) Checker() interact.Checker {
	return s.checker
}

// Interactions re-derives the flagged interactions for the current list.
func (s *Session) Interactions() []models.Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checker.Check(s.meds)
}

// BookAppointment books a follow-up at the given facility. The facility
// must exist and the patient details must be complete; otherwise
// ErrInvalidBooking is returned and nothing changes.
func (s *Session) BookAppointment(facilityID int, reason string, patient models.PatientInfo) (models.Appointment, error) {
	facility, ok := recommend.FacilityByID(facilityID)
	if !ok {
		return models.Appointment{}, fmt.Errorf("%w: unknown facility %d", ErrInvalidBooking, facilityID)
	}
	if patient.Name == "" || patient.Phone == "" {
		return models.Appointment{}, fmt.Errorf("%w: patient name and phone are required", ErrInvalidBooking)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	appt := models.NewAppointment(facility, reason, patient)
	s.state = Apply(s.state, AddAppointment{Appointment: appt})

	if s.repo != nil {
		if err := s.repo.SaveAppointment(&appt); err != nil {
			return appt, fmt.Errorf("archive appointment: %w", err)
		}
	}
	return appt, nil
}

// SendChatMessage appends the user's message, asks the assistant for a
// reply, and appends that too. A service failure substitutes the fixed
// fallback reply instead of erroring, so the conversation always
// advances by exactly two messages.
func (s *Session) SendChatMessage(ctx context.Context, text string) (models.ChatMessage, error) {
	userMsg := models.NewChatMessage(models.RoleUser, text)

	s.mu.Lock()
	s.state = Apply(s.state, AddChatMessage{Message: userMsg})
	s.mu.Unlock()

	reply, err := s.analyzer.AssistantReply(ctx, text)
	if err != nil {
		reply = chatFallbackReply
	}
	botMsg := models.NewChatMessage(models.RoleAssistant, reply)

	s.mu.Lock()
	s.state = Apply(s.state, AddChatMessage{Message: botMsg})
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.SaveChatMessage(&userMsg); err != nil {
			return botMsg, fmt.Errorf("archive chat message: %w", err)
		}
		if err := s.repo.SaveChatMessage(&botMsg); err != nil {
			return botMsg, fmt.Errorf("archive chat message: %w", err)
		}
	}
	return botMsg, nil
}

// ClearChat empties the chat history.
func (s *Session) ClearChat() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, ClearChatHistory{})
	if s.repo != nil {
		if err := s.repo.ClearChatHistory(); err != nil {
			return fmt.Errorf("clear archived chat: %w", err)
		}
	}
	return nil
}

// HealthScore returns the current score.
func (s *Session) HealthScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.HealthScore
}

// LatestReport returns the most recently submitted report, if any.
func (s *Session) LatestReport() (models.Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.state.Reports) == 0 {
		return models.Report{}, false
	}
	return s.state.Reports[len(s.state.Reports)-1], true
}

// Readings returns the history for one metric kind, oldest first.
func (s *Session) Readings(kind models.MetricKind) []models.Reading {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Metrics[kind]
}

// Restore replays the archive into a fresh state: reports in insertion
// order, then readings merged into the metric histories. The health
// score is re-derived from the newest report whose text yields metrics,
// matching the value the live session held after that submission.
func (s *Session) Restore() error {
	if s.repo == nil {
		return nil
	}

	reports, err := s.repo.ListReports(0)
	if err != nil {
		return fmt.Errorf("restore reports: %w", err)
	}
	readings, err := s.repo.ListReadings(nil, 0)
	if err != nil {
		return fmt.Errorf("restore readings: %w", err)
	}
	appointments, err := s.repo.ListAppointments(0)
	if err != nil {
		return fmt.Errorf("restore appointments: %w", err)
	}
	messages, err := s.repo.ListChatMessages(0)
	if err != nil {
		return fmt.Errorf("restore chat history: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := Initial()
	st = Apply(st, SetFacilities{Facilities: recommend.Catalog()})

	for _, r := range reports {
		st = Apply(st, AddReport{Report: *r})
		if r.ID > s.lastReportID {
			s.lastReportID = r.ID
		}
	}
	for _, r := range readings {
		ex := models.Extraction{r.Kind: *r}
		st = Apply(st, UpdateHealthMetrics{Extraction: ex, HealthScore: st.HealthScore})
	}
	// The score follows the last metric-bearing submission only, never
	// the union of archived readings across submissions.
	for i := len(reports) - 1; i >= 0; i-- {
		if extraction := extract.Metrics(reports[i].ExtractedText); len(extraction) > 0 {
			st.HealthScore = score.Calculate(extraction)
			break
		}
	}
	// The archive lists appointments newest first; replay oldest first.
	for i := len(appointments) - 1; i >= 0; i-- {
		st = Apply(st, AddAppointment{Appointment: *appointments[i]})
	}
	for _, m := range messages {
		st = Apply(st, AddChatMessage{Message: *m})
	}

	s.state = st
	return nil
}

func dedupeStrings(list []string) []string {
	seen := make(map[string]bool, len(list))
	var out []string
	for _, v := range list {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
