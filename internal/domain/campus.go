package domain

// BuildingRef identifies a campus building by its short machine name and its
// human readable long name.
type BuildingRef struct {
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
}

// PathResponse is the ordered route returned for a (start, end) pair.
type PathResponse struct {
	Start string    `json:"start"`
	End   string    `json:"end"`
	Cost  float64   `json:"cost"`
	Path  []Segment `json:"path"`
}

// Building is a directory entry with its location on the campus map. Only the
// graph-backed path source knows about locations.
type Building struct {
	BuildingRef
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Walkway is an undirected, weighted edge between two points on the map.
type Walkway struct {
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	X2       float64 `json:"x2"`
	Y2       float64 `json:"y2"`
	Distance float64 `json:"distance"`
}
