package catchit

// clampToField moves pos so that an object of the given half size lies
// entirely inside field.
func clampToField(field Extent, half float64, pos Position) Position {
	if pos.X-half < 0 {
		pos.X = half
	}
	if pos.X+half > field.X {
		pos.X = field.X - half
	}
	if pos.Y-half < 0 {
		pos.Y = half
	}
	if pos.Y+half > field.Y {
		pos.Y = field.Y - half
	}
	return pos
}

// randomPosInField draws a uniform field position and clamps it for half.
// The x coordinate is drawn first.
func randomPosInField(src Source, field Extent, half float64) Position {
	x := uniform(src, 0, field.X)
	y := uniform(src, 0, field.Y)
	return clampToField(field, half, V(x, y))
}

// spawnObstacle relocates the prey and appends one new obstacle.
//
// Draw order from src: prey x/y, kind roll, switch flavor (switches only),
// velocity x/y, then x/y pairs until a position is far enough from the
// hunter.
func spawnObstacle(src Source, s *State, minDistance float64) {
	s.Prey.Pos = randomPosInField(src, s.Field, s.Prey.HalfSize)

	half := s.Hunter.Object.HalfSize * ObstacleSizeCoeff
	kind := Deadly
	if src.Float64() < SpecialObstacleChance {
		half *= 2
		if src.Float64() > 0.5 {
			kind = InvisibilitySwitch
		} else {
			kind = AttractiveForceSwitch
		}
	}

	vel := V(
		uniform(src, -s.Field.X*FieldVelocityCoeff, s.Field.X*FieldVelocityCoeff),
		uniform(src, -s.Field.Y*FieldVelocityCoeff, s.Field.Y*FieldVelocityCoeff),
	)

	s.Obstacles = append(s.Obstacles, Obstacle{
		Kind: kind,
		Object: Object{
			Pos:      spawnPosition(src, s.Field, half, s.Hunter.Object.Pos, minDistance),
			HalfSize: half,
			Shape:    Circle,
		},
		Velocity: vel,
	})
}

// spawnPosition samples in-field positions until one is at least minDistance
// from hunter. Candidates are clamped before the distance check, so the result
// is both inside the field and far enough away. If the source keeps producing
// rejected candidates, the field corner farthest from the hunter is used.
func spawnPosition(src Source, field Extent, half float64, hunter Position, minDistance float64) Position {
	for range maxSpawnAttempts {
		p := randomPosInField(src, field, half)
		if p.Sub(hunter).Len() >= minDistance {
			return p
		}
	}

	corner := V(half, half)
	if hunter.X < field.X/2 {
		corner.X = field.X - half
	}
	if hunter.Y < field.Y/2 {
		corner.Y = field.Y - half
	}
	return corner
}
