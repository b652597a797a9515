package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vanshika/campusdraw/internal/domain"
	"github.com/vanshika/campusdraw/internal/graph"
)

func TestCampus_UpsertBuilding(t *testing.T) {
	mem := graph.NewMemoryClient()
	repo := New(mem)

	building := domain.Building{
		BuildingRef: domain.BuildingRef{ShortName: "CSE", LongName: "Paul G. Allen Center"},
		X:           2259.7,
		Y:           1715.5,
	}
	if err := repo.UpsertBuilding(context.Background(), building); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	calls := mem.WriteCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 write query, got %d", len(calls))
	}
	if calls[0].Query != upsertBuildingCypher {
		t.Fatalf("unexpected query\nexpected:\n%s\ngot:\n%s", upsertBuildingCypher, calls[0].Query)
	}
	want := map[string]any{"shortName": "CSE", "longName": "Paul G. Allen Center", "x": 2259.7, "y": 1715.5}
	if diff := cmp.Diff(want, calls[0].Params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestCampus_UpsertValidation(t *testing.T) {
	repo := New(graph.NewMemoryClient())
	if err := repo.UpsertBuilding(context.Background(), domain.Building{}); err == nil {
		t.Fatalf("expected error for missing short name")
	}
	if err := repo.UpsertWalkway(context.Background(), domain.Walkway{Distance: -1}); err == nil {
		t.Fatalf("expected error for negative distance")
	}
}

func TestCampus_BuildingNames(t *testing.T) {
	mem := graph.NewMemoryClient().WithReadHandler(func(cypher string, params map[string]any) (graph.Result, error) {
		return graph.Result{Records: []graph.Record{
			{"shortName": "BAG", "longName": "Bagley Hall"},
			{"shortName": "CSE", "longName": "Paul G. Allen Center"},
		}}, nil
	})

	got, err := New(mem).BuildingNames(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []domain.BuildingRef{
		{ShortName: "BAG", LongName: "Bagley Hall"},
		{ShortName: "CSE", LongName: "Paul G. Allen Center"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("buildings mismatch (-want +got):\n%s", diff)
	}
}

func TestCampus_FindPath(t *testing.T) {
	mem := graph.NewMemoryClient().WithReadHandler(func(cypher string, params map[string]any) (graph.Result, error) {
		switch cypher {
		case knownBuildingsCypher:
			return graph.Result{Records: []graph.Record{{"shortName": "CSE"}, {"shortName": "MGH"}}}, nil
		case shortestPathCypher:
			return graph.Result{Records: []graph.Record{{
				"cost": 12.5,
				"segments": []any{
					map[string]any{"x1": 1.0, "y1": 2.0, "x2": 3.0, "y2": 4.0, "cost": 5.0},
					map[string]any{"x1": 3.0, "y1": 4.0, "x2": int64(7), "y2": int64(8), "cost": 7.5},
				},
			}}}, nil
		}
		return graph.Result{}, nil
	})

	got, err := New(mem).FindPath(context.Background(), "CSE", "MGH")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := domain.PathResponse{
		Start: "CSE",
		End:   "MGH",
		Cost:  12.5,
		Path: []domain.Segment{
			{X1: 1, Y1: 2, X2: 3, Y2: 4, Key: 0},
			{X1: 3, Y1: 4, X2: 7, Y2: 8, Key: 1},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestCampus_FindPathUnknownBuilding(t *testing.T) {
	mem := graph.NewMemoryClient().WithReadHandler(func(cypher string, params map[string]any) (graph.Result, error) {
		if cypher == knownBuildingsCypher {
			return graph.Result{Records: []graph.Record{{"shortName": "CSE"}}}, nil
		}
		t.Fatalf("unexpected query %s", cypher)
		return graph.Result{}, nil
	})

	_, err := New(mem).FindPath(context.Background(), "CSE", "NOPE")
	if !errors.Is(err, ErrUnknownBuilding) {
		t.Fatalf("expected ErrUnknownBuilding, got %v", err)
	}
}

func TestCampus_FindPathUnreachable(t *testing.T) {
	mem := graph.NewMemoryClient().WithReadHandler(func(cypher string, params map[string]any) (graph.Result, error) {
		if cypher == knownBuildingsCypher {
			return graph.Result{Records: []graph.Record{{"shortName": "A"}, {"shortName": "B"}}}, nil
		}
		return graph.Result{}, nil
	})

	got, err := New(mem).FindPath(context.Background(), "A", "B")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Path == nil || len(got.Path) != 0 {
		t.Fatalf("expected empty path, got %#v", got.Path)
	}
}

func TestCampus_QueryErrorsAreWrapped(t *testing.T) {
	boom := errors.New("boom")
	repo := New(graph.NewMemoryClient().WithError(boom))

	if _, err := repo.BuildingNames(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if _, err := repo.FindPath(context.Background(), "A", "B"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
