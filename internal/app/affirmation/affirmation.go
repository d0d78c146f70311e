// Package affirmation manages the affirmation deck: a built-in set of
// motivational lines plus user-written custom ones. The custom list is the
// side input behind the custom-affirmation achievement.
package affirmation

import (
	"time"

	"github.com/google/uuid"

	"github.com/kintsugi-journal/kintsugi/internal/app/engagement"
	"github.com/kintsugi-journal/kintsugi/internal/domain"
)

// builtin is the shipped deck. Slug ids are stable across versions.
var builtin = []domain.Affirmation{
	{ID: "small-steps", Text: "Small steps still move you forward."},
	{ID: "repair", Text: "What was broken can be mended into something stronger."},
	{ID: "enough", Text: "What you did today was enough."},
	{ID: "showed-up", Text: "You showed up, and that counts."},
	{ID: "progress", Text: "Progress over perfection."},
	{ID: "kindness", Text: "Speak to yourself like someone you love."},
	{ID: "seasons", Text: "Hard seasons pass. You are still growing."},
	{ID: "worth", Text: "Your worth is not measured in productivity."},
	{ID: "begin-again", Text: "Every morning is a chance to begin again."},
	{ID: "noticing", Text: "Noticing your wins is a skill. You are practicing it."},
	{ID: "patience", Text: "Be patient with the person you are becoming."},
	{ID: "roots", Text: "Quiet days grow deep roots."},
}

// Service serves daily affirmations and manages the custom deck.
type Service struct {
	store *engagement.Store
	loc   *time.Location
}

// NewService creates an affirmation service.
func NewService(store *engagement.Store, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{store: store, loc: loc}
}

// Daily returns the affirmation for the calendar day of now: a
// deterministic date-seeded pick over the combined deck, so the user sees
// the same line all day and a different one tomorrow.
func (s *Service) Daily(now time.Time) (domain.Affirmation, error) {
	deck, err := s.All()
	if err != nil {
		return domain.Affirmation{}, err
	}

	local := now.In(s.loc)
	seed := local.Year()*10000 + int(local.Month())*100 + local.Day()
	return deck[seed%len(deck)], nil
}

// All returns the built-in deck followed by custom affirmations.
func (s *Service) All() ([]domain.Affirmation, error) {
	custom, err := s.store.LoadCustomAffirmations()
	if err != nil {
		return nil, err
	}
	deck := make([]domain.Affirmation, 0, len(builtin)+len(custom))
	deck = append(deck, builtin...)
	deck = append(deck, custom...)
	return deck, nil
}

// Custom returns only the user-written affirmations.
func (s *Service) Custom() ([]domain.Affirmation, error) {
	return s.store.LoadCustomAffirmations()
}

// AddCustom appends a user-written affirmation and returns it.
func (s *Service) AddCustom(text string) (domain.Affirmation, error) {
	if text == "" {
		return domain.Affirmation{}, domain.ErrEmptyAffirmation
	}

	custom, err := s.store.LoadCustomAffirmations()
	if err != nil {
		return domain.Affirmation{}, err
	}

	a := domain.Affirmation{
		ID:        uuid.NewString(),
		Text:      text,
		Custom:    true,
		CreatedAt: time.Now(),
	}
	custom = append(custom, a)
	if err := s.store.SaveCustomAffirmations(custom); err != nil {
		return domain.Affirmation{}, err
	}
	return a, nil
}

// RemoveCustom deletes a custom affirmation by id.
func (s *Service) RemoveCustom(id string) error {
	custom, err := s.store.LoadCustomAffirmations()
	if err != nil {
		return err
	}
	for i, a := range custom {
		if a.ID == id {
			custom = append(custom[:i], custom[i+1:]...)
			return s.store.SaveCustomAffirmations(custom)
		}
	}
	return domain.ErrAffirmationNotFound
}
