package snapshot

// Columns is the parallel-array form of the entity lists: element i of each
// array in a class describes the same entity and the class declares a count.
// It is the layout used by producers that exchange state as flat arrays.
type Columns struct {
	AICount     int       `yaml:"ai_count"`
	AILanes     []int     `yaml:"ai_lanes"`
	AIDistances []float64 `yaml:"ai_distances"`
	AITypes     []int     `yaml:"ai_types"`
	AIBoss      []bool    `yaml:"ai_boss"`

	ObstacleCount     int       `yaml:"obstacle_count"`
	ObstacleLanes     []int     `yaml:"obstacle_lanes"`
	ObstacleDistances []float64 `yaml:"obstacle_distances"`
	ObstacleTypes     []int     `yaml:"obstacle_types"`

	BuildingCount     int       `yaml:"building_count"`
	BuildingSides     []int     `yaml:"building_sides"`
	BuildingDistances []float64 `yaml:"building_distances"`
	BuildingHeights   []int     `yaml:"building_heights"`
	BuildingTypes     []int     `yaml:"building_types"`
}

// FromColumns returns a copy of base whose entity slices are built from c.
// Each class yields at most its declared count of entities, and never more
// than its shortest array holds, so no element past either bound is read.
// A negative count is treated as zero.
func FromColumns(base Snapshot, c Columns) Snapshot {
	out := base.Clone()

	n := usable(c.AICount, len(c.AILanes), len(c.AIDistances), len(c.AITypes), len(c.AIBoss))
	out.AI = make([]AICar, 0, n)
	for i := 0; i < n; i++ {
		out.AI = append(out.AI, AICar{
			Lane:     c.AILanes[i],
			Distance: c.AIDistances[i],
			Car:      CarType(c.AITypes[i]),
			Boss:     c.AIBoss[i],
		})
	}

	n = usable(c.ObstacleCount, len(c.ObstacleLanes), len(c.ObstacleDistances), len(c.ObstacleTypes))
	out.Obstacles = make([]Obstacle, 0, n)
	for i := 0; i < n; i++ {
		out.Obstacles = append(out.Obstacles, Obstacle{
			Lane:     c.ObstacleLanes[i],
			Distance: c.ObstacleDistances[i],
			Kind:     ObstacleType(c.ObstacleTypes[i]),
		})
	}

	n = usable(c.BuildingCount, len(c.BuildingSides), len(c.BuildingDistances),
		len(c.BuildingHeights), len(c.BuildingTypes))
	out.Buildings = make([]Building, 0, n)
	for i := 0; i < n; i++ {
		out.Buildings = append(out.Buildings, Building{
			Side:     c.BuildingSides[i],
			Distance: c.BuildingDistances[i],
			Height:   c.BuildingHeights[i],
			Kind:     BuildingType(c.BuildingTypes[i]),
		})
	}

	return out
}

// usable returns the number of rows that can be read: the declared count
// bounded by every array length.
func usable(count int, lengths ...int) int {
	if count < 0 {
		return 0
	}
	n := count
	for _, l := range lengths {
		if l < n {
			n = l
		}
	}
	return n
}
