package generator

// Config drives the synthetic campus generator.
type Config struct {
	NumBuildings int
	// Neighbours is how many nearest buildings each building gets a walkway to.
	Neighbours int
	// Waypoints inserted along each walkway, so paths have several segments.
	Waypoints int
	Seed      int64
}

// DefaultConfig returns settings that give a campus of roughly the course map's size.
func DefaultConfig() Config {
	return Config{
		NumBuildings: 50,
		Neighbours:   3,
		Waypoints:    1,
		Seed:         42,
	}
}
