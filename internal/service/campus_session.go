package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vanshika/campusdraw/internal/domain"
	"github.com/vanshika/campusdraw/internal/notify"
	"github.com/vanshika/campusdraw/internal/pathclient"
)

// CampusSession holds the state of the campus path form: the directory, the
// two selections and the current render list.
type CampusSession struct {
	source   PathSource
	notifier notify.Notifier

	mu        sync.Mutex
	buildings []domain.BuildingRef
	known     map[string]struct{}
	start     string
	end       string
	segments  []domain.Segment
	cost      float64
}

// NewCampusSession constructs a session. Selections are only checked against
// the directory after a successful Mount.
func NewCampusSession(source PathSource, notifier notify.Notifier) *CampusSession {
	return &CampusSession{
		source:   source,
		notifier: notifier,
		segments: []domain.Segment{},
	}
}

// Mount fetches the building directory. Failures are reported through the
// notifier and leave the directory empty.
func (s *CampusSession) Mount(ctx context.Context) {
	buildings, err := s.source.BuildingNames(ctx)
	if err != nil {
		s.report(err)
		return
	}

	known := make(map[string]struct{}, len(buildings))
	for _, b := range buildings {
		known[b.ShortName] = struct{}{}
	}

	s.mu.Lock()
	s.buildings = buildings
	s.known = known
	s.mu.Unlock()
}

// SelectStart sets the start building. Once the directory is mounted, a name
// that is not in it is rejected with an alert and false is returned.
func (s *CampusSession) SelectStart(shortName string) bool {
	return s.selectBuilding(shortName, &s.start)
}

// SelectEnd sets the end building.
func (s *CampusSession) SelectEnd(shortName string) bool {
	return s.selectBuilding(shortName, &s.end)
}

func (s *CampusSession) selectBuilding(shortName string, target *string) bool {
	s.mu.Lock()
	if shortName != "" && s.known != nil {
		if _, ok := s.known[shortName]; !ok {
			s.mu.Unlock()
			s.notifier.Alert(fmt.Sprintf(AlertUnknown, shortName))
			return false
		}
	}
	*target = shortName
	s.mu.Unlock()
	return true
}

// Draw requests the path between the current selections. Without both
// selections the render list is cleared and nothing is requested. On error
// the previous render list is kept.
func (s *CampusSession) Draw(ctx context.Context) {
	s.mu.Lock()
	start, end := s.start, s.end
	if start == "" || end == "" {
		s.segments = []domain.Segment{}
		s.cost = 0
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	path, err := s.source.FindPath(ctx, start, end)
	if err != nil {
		s.report(err)
		return
	}

	s.mu.Lock()
	s.segments = domain.CloneSegments(path.Path)
	s.cost = path.Cost
	s.mu.Unlock()
}

// Clear resets both selections and the render list.
func (s *CampusSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.start = ""
	s.end = ""
	s.segments = []domain.Segment{}
	s.cost = 0
}

// Snapshot returns a copy of the session state.
func (s *CampusSession) Snapshot() CampusView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CampusView{
		Buildings: append([]domain.BuildingRef{}, s.buildings...),
		Start:     s.start,
		End:       s.end,
		Segments:  domain.CloneSegments(s.segments),
		Cost:      s.cost,
	}
}

func (s *CampusSession) report(err error) {
	var statusErr *pathclient.HTTPStatusError
	if errors.As(err, &statusErr) {
		s.notifier.Alert(statusErr.Error())
		return
	}
	s.notifier.Alert(AlertContactFailed)
	s.notifier.Log("path source request failed", "error", err)
}
