package service

import (
	"sync"

	"github.com/vanshika/campusdraw/internal/domain"
	"github.com/vanshika/campusdraw/internal/lines"
	"github.com/vanshika/campusdraw/internal/notify"
)

// LinesSession holds the text submitted to the line-drawing form and the
// segments parsed from it.
type LinesSession struct {
	notifier notify.Notifier

	mu       sync.Mutex
	input    string
	segments []domain.Segment
}

// NewLinesSession constructs an empty session.
func NewLinesSession(notifier notify.Notifier) *LinesSession {
	return &LinesSession{
		notifier: notifier,
		segments: []domain.Segment{},
	}
}

// Draw replaces the render list with the parse of input. Invalid input leaves
// an empty render list.
func (s *LinesSession) Draw(input string) []domain.Segment {
	segments := lines.Parse(input, s.notifier)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = input
	s.segments = segments
	return domain.CloneSegments(segments)
}

// Clear empties both the text and the render list.
func (s *LinesSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = ""
	s.segments = []domain.Segment{}
}

// Snapshot returns a copy of the session state.
func (s *LinesSession) Snapshot() LinesView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return LinesView{
		Input:    s.input,
		Segments: domain.CloneSegments(s.segments),
	}
}
