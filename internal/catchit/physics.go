package catchit

// forceDelta returns the velocity change the hunter's field imparts on an
// obstacle at pos. Positive net strength pushes away, negative pulls in.
// The contribution fades linearly to zero at the force radius.
func forceDelta(s *State, pos Position) Velocity {
	if s.Hunter.Force <= 0 && s.AttractingForce.Current <= 0 {
		return Velocity{}
	}

	offset := pos.Sub(s.Hunter.Object.Pos)
	scale := offset.Len() / (s.Hunter.Object.HalfSize * ForceRadiusCoeff)
	if scale > 1 {
		return Velocity{}
	}
	return offset.Scale((1 - scale) * (s.Hunter.Force - s.AttractingForce.Current))
}

// advectObstacles integrates obstacle motion over dt and reflects obstacles
// off the field edges.
func advectObstacles(s *State, dt float64) {
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		obj := &o.Object

		o.Velocity = o.Velocity.Add(forceDelta(s, obj.Pos))
		obj.Pos = obj.Pos.Add(o.Velocity.Scale(dt))

		if obj.Left() < 0 || obj.Right() > s.Field.X {
			o.Velocity.X = -o.Velocity.X
		}
		if obj.Top() < 0 || obj.Bottom() > s.Field.Y {
			o.Velocity.Y = -o.Velocity.Y
		}

		obj.Pos = clampToField(s.Field, obj.HalfSize, obj.Pos)
	}
}
