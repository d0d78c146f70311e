package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kintsugi-journal/kintsugi/internal/domain"
)

// ─── Journal ────────────────────────────────────────────────────────────────

type addEntryRequest struct {
	Accomplishment string   `json:"accomplishment"`
	Reflection     string   `json:"reflection"`
	Category       string   `json:"category"`
	Mood           string   `json:"mood"`
	Tags           []string `json:"tags"`
}

type addEntryResponse struct {
	Entry         domain.JournalEntry     `json:"entry"`
	NewlyUnlocked []domain.AchievementDef `json:"newly_unlocked"`
	UnlockedToast string                  `json:"unlocked_toast,omitempty"`
}

func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	entry := domain.JournalEntry{
		ID:             uuid.NewString(),
		Accomplishment: req.Accomplishment,
		Reflection:     req.Reflection,
		Category:       req.Category,
		Mood:           domain.Mood(req.Mood),
		Tags:           req.Tags,
	}

	newly, err := s.engagement.AddEntry(entry)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyEntry), errors.Is(err, domain.ErrInvalidMood):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrEntryExists):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	resp := addEntryResponse{Entry: entry, NewlyUnlocked: newly}
	if len(newly) > 0 {
		resp.UnlockedToast = newly[0].Title
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	state, err := s.engagement.State()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries": state.Entries,
		"count":   len(state.Entries),
	})
}

// ─── Engagement ─────────────────────────────────────────────────────────────

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	info, err := s.engagement.Streak()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleRecomputeStreak(w http.ResponseWriter, r *http.Request) {
	info, err := s.engagement.UpdateStreakFromEntries()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.engagement.Summarize()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	rows, err := s.engagement.AchievementProgress()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"achievements": rows,
		"total":        len(rows),
	})
}

func (s *Server) handleCheckAchievements(w http.ResponseWriter, r *http.Request) {
	newly, err := s.engagement.CheckAndUnlockAchievements()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"newly_unlocked": newly,
	})
}

func (s *Server) handleVisit(w http.ResponseWriter, r *http.Request) {
	state, err := s.engagement.RecordVisit()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"visit_count":    state.VisitCount,
		"current_streak": state.CurrentStreak,
	})
}

func (s *Server) handleAffirmationViewed(w http.ResponseWriter, r *http.Request) {
	newly, err := s.engagement.RecordAffirmationView()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"newly_unlocked": newly})
}

func (s *Server) handleInsightViewed(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	// Body is optional — an empty id still counts a view.
	_ = json.NewDecoder(r.Body).Decode(&req)

	newly, err := s.engagement.RecordInsightView(req.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"newly_unlocked": newly})
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if q := r.URL.Query().Get("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			limit = n
		}
	}
	pending, err := s.engagement.Notifier().Pending(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"notifications": pending})
}

func (s *Server) handleNotificationShown(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	if err := s.engagement.Notifier().MarkShown(id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ─── Affirmations ───────────────────────────────────────────────────────────

func (s *Server) handleDailyAffirmation(w http.ResponseWriter, r *http.Request) {
	a, err := s.affirmations.Daily(time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleListAffirmations(w http.ResponseWriter, r *http.Request) {
	deck, err := s.affirmations.All()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"affirmations": deck})
}

func (s *Server) handleAddAffirmation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	a, err := s.affirmations.AddCustom(req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyAffirmation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// A new custom affirmation can satisfy a personalization predicate.
	if _, err := s.engagement.CheckAndUnlockAchievements(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) handleRemoveAffirmation(w http.ResponseWriter, r *http.Request) {
	if err := s.affirmations.RemoveCustom(chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, domain.ErrAffirmationNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ─── Profile and theme ──────────────────────────────────────────────────────

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.engagement.Store().LoadProfile()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var p domain.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.engagement.Store().SaveProfile(p); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	newly, err := s.engagement.CheckAndUnlockAchievements()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"profile":        p,
		"newly_unlocked": newly,
	})
}

func (s *Server) handleThemeChanged(w http.ResponseWriter, r *http.Request) {
	n, err := s.engagement.Store().IncrementThemeChanges()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	newly, err := s.engagement.CheckAndUnlockAchievements()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"theme_changes":  n,
		"newly_unlocked": newly,
	})
}
