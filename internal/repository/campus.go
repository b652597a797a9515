package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vanshika/campusdraw/internal/domain"
	"github.com/vanshika/campusdraw/internal/graph"
)

var (
	ErrUnknownBuilding = errors.New("unknown building")
	errNoEndpoints     = errors.New("start and end building names are required")
)

// Campus stores the campus map in a graph database and answers directory and
// shortest path queries against it. Buildings are attached to (:Point) nodes
// and walkways are weighted WALKWAY relationships between points.
type Campus struct {
	client graph.Client
}

// New instantiates a Campus repository backed by the supplied graph client.
func New(client graph.Client) *Campus {
	return &Campus{client: client}
}

// UpsertBuilding creates or refreshes a building and its map location.
func (r *Campus) UpsertBuilding(ctx context.Context, b domain.Building) error {
	if b.ShortName == "" {
		return errors.New("building short name is required")
	}
	params := map[string]any{
		"shortName": b.ShortName,
		"longName":  b.LongName,
		"x":         b.X,
		"y":         b.Y,
	}
	if _, err := r.client.ExecuteWrite(ctx, upsertBuildingCypher, params); err != nil {
		return fmt.Errorf("upsert building %s: %w", b.ShortName, err)
	}
	return nil
}

// UpsertWalkway creates or refreshes the walkway between two points.
func (r *Campus) UpsertWalkway(ctx context.Context, w domain.Walkway) error {
	if w.Distance < 0 {
		return fmt.Errorf("walkway (%g,%g)-(%g,%g) has negative distance", w.X1, w.Y1, w.X2, w.Y2)
	}
	params := map[string]any{
		"x1":       w.X1,
		"y1":       w.Y1,
		"x2":       w.X2,
		"y2":       w.Y2,
		"distance": w.Distance,
	}
	if _, err := r.client.ExecuteWrite(ctx, upsertWalkwayCypher, params); err != nil {
		return fmt.Errorf("upsert walkway: %w", err)
	}
	return nil
}

// BuildingNames lists the directory ordered by short name.
func (r *Campus) BuildingNames(ctx context.Context) ([]domain.BuildingRef, error) {
	res, err := r.client.ExecuteRead(ctx, buildingNamesCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("building names query: %w", err)
	}
	buildings := make([]domain.BuildingRef, 0, len(res.Records))
	for _, record := range res.Records {
		buildings = append(buildings, domain.BuildingRef{
			ShortName: toString(record["shortName"]),
			LongName:  toString(record["longName"]),
		})
	}
	return buildings, nil
}

// FindPath returns the cheapest walk between two buildings. An unreachable
// destination yields an empty path.
func (r *Campus) FindPath(ctx context.Context, start, end string) (domain.PathResponse, error) {
	if start == "" || end == "" {
		return domain.PathResponse{}, errNoEndpoints
	}
	if err := r.ensureBuildings(ctx, start, end); err != nil {
		return domain.PathResponse{}, err
	}

	params := map[string]any{
		"start": start,
		"end":   end,
	}
	res, err := r.client.ExecuteRead(ctx, shortestPathCypher, params)
	if err != nil {
		return domain.PathResponse{}, fmt.Errorf("shortest path query: %w", err)
	}

	path := domain.PathResponse{
		Start: start,
		End:   end,
		Path:  []domain.Segment{},
	}
	if len(res.Records) == 0 {
		return path, nil
	}

	record := res.Records[0]
	path.Cost = toFloat64(record["cost"])
	if raw, ok := record["segments"].([]any); ok {
		for idx, item := range raw {
			seg, ok := item.(map[string]any)
			if !ok {
				continue
			}
			path.Path = append(path.Path, domain.Segment{
				X1:  toFloat64(seg["x1"]),
				Y1:  toFloat64(seg["y1"]),
				X2:  toFloat64(seg["x2"]),
				Y2:  toFloat64(seg["y2"]),
				Key: idx,
			})
		}
	}
	return path, nil
}

// Probe verifies the graph is reachable.
func (r *Campus) Probe(ctx context.Context) error {
	return r.client.VerifyConnectivity(ctx)
}

func (r *Campus) ensureBuildings(ctx context.Context, start, end string) error {
	res, err := r.client.ExecuteRead(ctx, knownBuildingsCypher, map[string]any{
		"names": []string{start, end},
	})
	if err != nil {
		return fmt.Errorf("building lookup query: %w", err)
	}
	found := make(map[string]struct{}, len(res.Records))
	for _, record := range res.Records {
		found[toString(record["shortName"])] = struct{}{}
	}
	for _, name := range []string{start, end} {
		if _, ok := found[name]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownBuilding, name)
		}
	}
	return nil
}

func toString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func toFloat64(val any) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}

const upsertBuildingCypher = `
MERGE (p:Point {x: $x, y: $y})
MERGE (b:Building {shortName: $shortName})
SET b.longName = $longName
WITH b, p
OPTIONAL MATCH (b)-[old:LOCATED_AT]->(prev:Point)
WHERE prev <> p
DELETE old
MERGE (b)-[:LOCATED_AT]->(p)
`

const upsertWalkwayCypher = `
MERGE (a:Point {x: $x1, y: $y1})
MERGE (c:Point {x: $x2, y: $y2})
MERGE (a)-[w:WALKWAY]-(c)
SET w.distance = $distance
`

const buildingNamesCypher = `
MATCH (b:Building)
RETURN b.shortName AS shortName, b.longName AS longName
ORDER BY b.shortName
`

const knownBuildingsCypher = `
MATCH (b:Building)
WHERE b.shortName IN $names
RETURN b.shortName AS shortName
`

// Requires the APOC plugin for weighted Dijkstra.
const shortestPathCypher = `
MATCH (:Building {shortName: $start})-[:LOCATED_AT]->(a:Point)
MATCH (:Building {shortName: $end})-[:LOCATED_AT]->(b:Point)
CALL apoc.algo.dijkstra(a, b, 'WALKWAY', 'distance') YIELD path, weight
WITH path, weight, nodes(path) AS ns, relationships(path) AS rs
RETURN [i IN range(0, size(ns) - 2) | {
  x1: ns[i].x, y1: ns[i].y,
  x2: ns[i + 1].x, y2: ns[i + 1].y,
  cost: rs[i].distance
}] AS segments,
weight AS cost
LIMIT 1
`
