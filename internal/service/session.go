package service

import (
	"errors"

	"github.com/jask/skincare/internal/routine"
)

// ErrIncompleteQuiz is returned by Generate before a skin type and at least one
// concern are chosen.
var ErrIncompleteQuiz = errors.New("choose a skin type and at least one concern")

// Session is the state the UI works on: the quiz answers, the last generated
// routine and the saved list.
type Session struct {
	SkinType routine.SkinType
	Concerns routine.ConcernSet
	Current  []routine.ProductStep
	Saved    []routine.Routine
}

// StartQuiz clears the quiz answers. The saved list and last result are kept.
func (s *Session) StartQuiz() {
	s.SkinType = ""
	s.Concerns.Clear()
}

func (s *Session) SelectSkinType(t routine.SkinType) { s.SkinType = t }

// ToggleConcern reports whether c is selected afterwards.
func (s *Session) ToggleConcern(c routine.Concern) bool { return s.Concerns.Toggle(c) }

// CanGenerate reports whether the quiz is complete enough to generate.
func (s *Session) CanGenerate() bool {
	return s.SkinType.Valid() && s.Concerns.Len() > 0
}

// Generate fills Current from the quiz answers.
func (s *Session) Generate() error {
	if !s.CanGenerate() {
		return ErrIncompleteQuiz
	}
	s.Current = routine.Generate(s.SkinType, s.Concerns.Slice())
	return nil
}
