package service

import (
	"context"

	"github.com/vanshika/campusdraw/internal/domain"
)

// Alert texts shown to the user by the campus orchestrator.
const (
	AlertContactFailed = "There was an error contacting the server."
	AlertUnknown       = "Unknown building %q."
)

// PathSource is the collaborator that knows the campus: the building directory
// and shortest paths between buildings. The HTTP client and the graph
// repository both satisfy it.
type PathSource interface {
	BuildingNames(ctx context.Context) ([]domain.BuildingRef, error)
	FindPath(ctx context.Context, start, end string) (domain.PathResponse, error)
}

// CampusView is a snapshot of a campus session.
type CampusView struct {
	Buildings []domain.BuildingRef `json:"buildings"`
	Start     string               `json:"start"`
	End       string               `json:"end"`
	Segments  []domain.Segment     `json:"segments"`
	Cost      float64              `json:"cost"`
}

// LinesView is a snapshot of a line-drawing session.
type LinesView struct {
	Input    string           `json:"input"`
	Segments []domain.Segment `json:"segments"`
}
