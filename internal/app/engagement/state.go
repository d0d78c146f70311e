package engagement

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/kintsugi-journal/kintsugi/internal/domain"
	"github.com/kintsugi-journal/kintsugi/internal/infra/sqlite"
)

// Store adapts the key-value substrate to typed engagement state. All JSON
// (de)serialization lives here so the derivation code above it stays pure.
//
// Malformed blobs fall back to the default empty state: a corrupt store
// must zero the stats, never block the caller.
type Store struct {
	db *sqlite.DB
}

// NewStore creates a store over the given database.
func NewStore(db *sqlite.DB) *Store {
	return &Store{db: db}
}

// LoadState reads the engagement aggregate. A missing key yields the
// default empty state; a blob that fails to parse is logged and replaced
// by the default rather than surfaced as an error. Partial blobs are
// backfilled field-by-field by Normalize.
func (s *Store) LoadState() (domain.EngagementState, error) {
	state := domain.NewEngagementState()

	raw, err := s.db.GetValue(sqlite.KeyEngagementState)
	if err != nil {
		return state, fmt.Errorf("get engagement state: %w", err)
	}
	if raw == "" {
		return state, nil
	}

	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		log.Printf("[store] engagement state unreadable, starting fresh: %v", err)
		return domain.NewEngagementState(), nil
	}
	state.Normalize()
	return state, nil
}

// SaveState writes the engagement aggregate as one JSON blob.
func (s *Store) SaveState(state domain.EngagementState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal engagement state: %w", err)
	}
	if err := s.db.SetValue(sqlite.KeyEngagementState, string(raw)); err != nil {
		return fmt.Errorf("save engagement state: %w", err)
	}
	return nil
}

// LoadProfile reads the optional user profile. Missing or unreadable
// profile means "no profile" — personalization predicates stay false.
func (s *Store) LoadProfile() (domain.Profile, error) {
	var p domain.Profile

	raw, err := s.db.GetValue(sqlite.KeyProfile)
	if err != nil {
		return p, fmt.Errorf("get profile: %w", err)
	}
	if raw == "" {
		return p, nil
	}
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		log.Printf("[store] profile unreadable, treating as absent: %v", err)
		return domain.Profile{}, nil
	}
	return p, nil
}

// SaveProfile writes the user profile.
func (s *Store) SaveProfile(p domain.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := s.db.SetValue(sqlite.KeyProfile, string(raw)); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// LoadCustomAffirmations reads the custom affirmation list.
func (s *Store) LoadCustomAffirmations() ([]domain.Affirmation, error) {
	raw, err := s.db.GetValue(sqlite.KeyCustomAffirmations)
	if err != nil {
		return nil, fmt.Errorf("get custom affirmations: %w", err)
	}
	if raw == "" {
		return nil, nil
	}

	var list []domain.Affirmation
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Printf("[store] custom affirmations unreadable, treating as empty: %v", err)
		return nil, nil
	}
	return list, nil
}

// SaveCustomAffirmations writes the custom affirmation list.
func (s *Store) SaveCustomAffirmations(list []domain.Affirmation) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal custom affirmations: %w", err)
	}
	if err := s.db.SetValue(sqlite.KeyCustomAffirmations, string(raw)); err != nil {
		return fmt.Errorf("save custom affirmations: %w", err)
	}
	return nil
}

// ThemeChanges reads the theme-change counter. Absent or garbled → 0.
func (s *Store) ThemeChanges() (int, error) {
	raw, err := s.db.GetValue(sqlite.KeyThemeChanges)
	if err != nil {
		return 0, fmt.Errorf("get theme changes: %w", err)
	}
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// IncrementThemeChanges bumps the theme-change counter and returns it.
func (s *Store) IncrementThemeChanges() (int, error) {
	n, err := s.ThemeChanges()
	if err != nil {
		return 0, err
	}
	n++
	if err := s.db.SetValue(sqlite.KeyThemeChanges, strconv.Itoa(n)); err != nil {
		return 0, fmt.Errorf("save theme changes: %w", err)
	}
	return n, nil
}

// LoadSideInputs gathers the optional collaborators a few achievement
// predicates read. Each input degrades to its zero value independently.
func (s *Store) LoadSideInputs() (SideInputs, error) {
	var side SideInputs

	profile, err := s.LoadProfile()
	if err != nil {
		return side, err
	}
	side.Profile = profile

	custom, err := s.LoadCustomAffirmations()
	if err != nil {
		return side, err
	}
	side.CustomAffirmations = len(custom)

	themes, err := s.ThemeChanges()
	if err != nil {
		return side, err
	}
	side.ThemeChanges = themes

	return side, nil
}
