package catchit

// ObstacleKind determines what happens when the hunter touches an obstacle.
type ObstacleKind int

const (
	// Deadly obstacles end the game.
	Deadly ObstacleKind = iota
	// InvisibilitySwitch hides obstacles for a while.
	InvisibilitySwitch
	// AttractiveForceSwitch pulls obstacles toward the hunter for a while.
	AttractiveForceSwitch
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case Deadly:
		return "deadly"
	case InvisibilitySwitch:
		return "invisibility-switch"
	case AttractiveForceSwitch:
		return "attractive-force-switch"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the kind by name.
func (k ObstacleKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// IsSpecial reports whether the kind toggles an effect instead of killing.
func (k ObstacleKind) IsSpecial() bool {
	return k == InvisibilitySwitch || k == AttractiveForceSwitch
}

// Obstacle is a moving hazard.
type Obstacle struct {
	Kind     ObstacleKind `yaml:"kind" json:"kind"`
	Object   Object       `yaml:"object" json:"object"`
	Velocity Velocity     `yaml:"velocity" json:"velocity"`
}

// Hunter is the player's character.
//
// Velocity is not integrated into the hunter's position. It is the last
// measured positional delta and only lives for one tick after an input.
type Hunter struct {
	Object   Object   `yaml:"object" json:"object"`
	Force    float64  `yaml:"force" json:"force"`
	Velocity Velocity `yaml:"velocity" json:"velocity"`
}

// State is the full snapshot of one game in progress.
type State struct {
	Field     Extent     `yaml:"field" json:"field"`
	Hunter    Hunter     `yaml:"hunter" json:"hunter"`
	Prey      Object     `yaml:"prey" json:"prey"`
	Obstacles []Obstacle `yaml:"obstacles" json:"obstacles"`
	// ObstacleOpacity runs from opaque (1) to invisible (0).
	ObstacleOpacity Transition `yaml:"obstacle_opacity" json:"obstacle_opacity"`
	// AttractingForce runs from no pull (0) to the maximum attraction.
	AttractingForce Transition `yaml:"attracting_force" json:"attracting_force"`
	Score           uint32     `yaml:"score" json:"score"`
	ScoreCoeff      float64    `yaml:"score_coeff" json:"score_coeff"`
	// LastDT is the most recent positive tick length, used to derive the
	// hunter's velocity from pointer movement.
	LastDT float64 `yaml:"last_dt" json:"last_dt"`
}

// Clone returns a deep copy of the state.
func (s *State) Clone() State {
	c := *s
	c.Obstacles = make([]Obstacle, len(s.Obstacles))
	copy(c.Obstacles, s.Obstacles)
	return c
}

// InField reports whether p lies inside the field, edges included.
func (s *State) InField(p Position) bool {
	return !outOfField(s.Field, p)
}

// CountKind returns how many obstacles of kind k exist.
func (s *State) CountKind(k ObstacleKind) int {
	n := 0
	for i := range s.Obstacles {
		if s.Obstacles[i].Kind == k {
			n++
		}
	}
	return n
}

func outOfField(field Extent, p Position) bool {
	return p.X < 0 || p.X > field.X || p.Y < 0 || p.Y > field.Y
}
