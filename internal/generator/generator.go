// Package generator builds synthetic campus maps for the graph-backed path
// source.
package generator

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/vanshika/campusdraw/internal/domain"
)

// Dataset contains the generated buildings and the walkways between them.
type Dataset struct {
	Buildings []domain.Building `json:"buildings"`
	Walkways  []domain.Walkway  `json:"walkways"`
}

// Generator produces campus maps whose coordinates stay inside the drawing bounds.
type Generator struct {
	cfg       Config
	rand      *rand.Rand
	fragments nameFragments
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	if cfg.NumBuildings <= 0 {
		cfg.NumBuildings = DefaultConfig().NumBuildings
	}
	if cfg.Neighbours <= 0 {
		cfg.Neighbours = DefaultConfig().Neighbours
	}
	if cfg.Waypoints < 0 {
		cfg.Waypoints = 0
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:       cfg,
		rand:      rand.New(rand.NewSource(cfg.Seed)),
		fragments: defaultNameFragments(),
	}
}

// Generate places buildings, then links each one to its nearest neighbours and
// chains them in placement order so the map is connected. It respects context
// cancellation.
func (g *Generator) Generate(ctx context.Context) (Dataset, error) {
	buildings := make([]domain.Building, 0, g.cfg.NumBuildings)
	shortNames := make(map[string]struct{}, g.cfg.NumBuildings)

	for i := 0; i < g.cfg.NumBuildings; i++ {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		long := g.randomLongName()
		short := uniqueShortName(long, i, shortNames)
		buildings = append(buildings, domain.Building{
			BuildingRef: domain.BuildingRef{ShortName: short, LongName: long},
			X:           g.randomCoordinate(),
			Y:           g.randomCoordinate(),
		})
	}

	edges := make(map[[2]int]struct{})
	addEdge := func(a, b int) {
		if a == b {
			return
		}
		if a > b {
			a, b = b, a
		}
		edges[[2]int{a, b}] = struct{}{}
	}

	for i := range buildings {
		if i > 0 {
			addEdge(i-1, i)
		}
		for _, j := range nearest(buildings, i, g.cfg.Neighbours) {
			addEdge(i, j)
		}
	}

	keys := make([][2]int, 0, len(edges))
	for k := range edges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	walkways := make([]domain.Walkway, 0, len(keys)*(g.cfg.Waypoints+1))
	for _, k := range keys {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		walkways = append(walkways, g.walk(buildings[k[0]], buildings[k[1]])...)
	}

	return Dataset{Buildings: buildings, Walkways: walkways}, nil
}

// walk splits the straight line between two buildings into Waypoints+1 legs,
// nudging each waypoint sideways.
func (g *Generator) walk(from, to domain.Building) []domain.Walkway {
	points := [][2]float64{{from.X, from.Y}}
	legs := g.cfg.Waypoints + 1
	for i := 1; i < legs; i++ {
		t := float64(i) / float64(legs)
		x := from.X + (to.X-from.X)*t + g.rand.Float64()*40 - 20
		y := from.Y + (to.Y-from.Y)*t + g.rand.Float64()*40 - 20
		points = append(points, [2]float64{clamp(x), clamp(y)})
	}
	points = append(points, [2]float64{to.X, to.Y})

	out := make([]domain.Walkway, 0, legs)
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		out = append(out, domain.Walkway{
			X1:       a[0],
			Y1:       a[1],
			X2:       b[0],
			Y2:       b[1],
			Distance: round2(math.Hypot(b[0]-a[0], b[1]-a[1])),
		})
	}
	return out
}

func nearest(buildings []domain.Building, idx, k int) []int {
	type candidate struct {
		idx  int
		dist float64
	}
	origin := buildings[idx]
	candidates := make([]candidate, 0, len(buildings)-1)
	for j, b := range buildings {
		if j == idx {
			continue
		}
		candidates = append(candidates, candidate{idx: j, dist: math.Hypot(b.X-origin.X, b.Y-origin.Y)})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].idx < candidates[j].idx
	})
	if k > len(candidates) {
		k = len(candidates)
	}
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = candidates[i].idx
	}
	return out
}

func (g *Generator) randomCoordinate() float64 {
	// Keep buildings off the edge so waypoint jitter stays in bounds.
	return round2(100 + g.rand.Float64()*(domain.MaxCoordinate-200))
}

func (g *Generator) randomLongName() string {
	return fmt.Sprintf("%s %s", g.fragments.people[g.rand.Intn(len(g.fragments.people))],
		g.fragments.kinds[g.rand.Intn(len(g.fragments.kinds))])
}

func uniqueShortName(long string, idx int, taken map[string]struct{}) string {
	var b strings.Builder
	for _, word := range strings.Fields(long) {
		b.WriteByte(word[0])
	}
	short := strings.ToUpper(b.String())
	if _, ok := taken[short]; ok {
		short = fmt.Sprintf("%s%d", short, idx+1)
	}
	taken[short] = struct{}{}
	return short
}

func clamp(v float64) float64 {
	return math.Max(domain.MinCoordinate, math.Min(domain.MaxCoordinate, round2(v)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type nameFragments struct {
	people []string
	kinds  []string
}

func defaultNameFragments() nameFragments {
	return nameFragments{
		people: []string{"Allen", "Gates", "Kane", "Suzzallo", "Odegaard", "Bagley", "Denny", "Savery", "Gowen", "Raitt", "Loew", "Padelford", "Guggenheim", "Johnson", "Thomson"},
		kinds:  []string{"Hall", "Center", "Library", "Annex", "Pavilion", "Laboratory", "Building"},
	}
}
