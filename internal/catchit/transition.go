package catchit

import "encoding/json"

// Phase is where a Transition sits relative to its current direction.
type Phase int

const (
	// PhaseStart means Current is at the From() end.
	PhaseStart Phase = iota
	// PhaseInProgress means Current is strictly between From() and To().
	PhaseInProgress
	// PhaseFinished means Current has reached To().
	PhaseFinished
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseInProgress:
		return "in-progress"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the phase by name.
func (p Phase) MarshalYAML() (any, error) {
	return p.String(), nil
}

// Direction selects which bound a Transition moves toward.
type Direction int

const (
	// FromTo moves from V1 toward V2.
	FromTo Direction = iota
	// ToFrom moves from V2 back toward V1.
	ToFrom
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	if d == ToFrom {
		return "to-from"
	}
	return "from-to"
}

// MarshalYAML encodes the direction by name.
func (d Direction) MarshalYAML() (any, error) {
	return d.String(), nil
}

// Transition animates a scalar between V1 and V2 over Duration seconds.
// It can be reversed at any time and tracks how long it has been in its
// current terminal phase through StateTime.
//
// The phase is stored, not derived on demand. It is reclassified after every
// Advance and Reverse, using >= and <= against the directional bounds, so
// Current and Direction must only be changed through those two methods.
type Transition struct {
	V1 float64
	V2 float64
	// Current is read-only outside Advance and Reverse.
	Current   float64
	Duration  float64
	Direction Direction
	StateTime float64
	phase     Phase
}

// transitionDoc is the encoded form of a Transition.
type transitionDoc struct {
	V1        float64   `yaml:"v1" json:"v1"`
	V2        float64   `yaml:"v2" json:"v2"`
	Current   float64   `yaml:"current" json:"current"`
	Duration  float64   `yaml:"duration_s" json:"duration_s"`
	Direction Direction `yaml:"direction" json:"direction"`
	StateTime float64   `yaml:"state_time" json:"state_time"`
	Phase     Phase     `yaml:"phase" json:"phase"`
}

func (t Transition) doc() transitionDoc {
	return transitionDoc{
		V1:        t.V1,
		V2:        t.V2,
		Current:   t.Current,
		Duration:  t.Duration,
		Direction: t.Direction,
		StateTime: t.StateTime,
		Phase:     t.phase,
	}
}

// MarshalYAML encodes the transition together with its phase.
func (t Transition) MarshalYAML() (any, error) {
	return t.doc(), nil
}

// MarshalJSON encodes the transition together with its phase.
func (t Transition) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.doc())
}

// NewTransition returns a pristine transition resting at from.
func NewTransition(from, to, duration float64) Transition {
	t := Transition{
		V1:        from,
		V2:        to,
		Current:   from,
		Duration:  duration,
		Direction: FromTo,
	}
	t.classify()
	return t
}

// From returns the bound the transition is moving away from.
func (t *Transition) From() float64 {
	if t.Direction == ToFrom {
		return t.V2
	}
	return t.V1
}

// To returns the bound the transition is moving toward.
func (t *Transition) To() float64 {
	if t.Direction == ToFrom {
		return t.V1
	}
	return t.V2
}

// State returns the current phase.
func (t *Transition) State() Phase {
	return t.phase
}

// IsPristine reports whether the transition has never been triggered:
// resting at its start in the forward direction.
func (t *Transition) IsPristine() bool {
	return t.phase == PhaseStart && t.Direction == FromTo
}

// Advance moves Current toward To() by dt seconds worth of progress and adds
// dt to StateTime. Current never overshoots To().
func (t *Transition) Advance(dt float64) *Transition {
	t.StateTime += dt

	to, from := t.To(), t.From()
	if t.Duration > 0 {
		t.Current += (to - from) * (dt / t.Duration)
	} else {
		t.Current = to
	}

	if to > from {
		if t.Current > to {
			t.Current = to
		}
	} else if t.Current < to {
		t.Current = to
	}

	t.classify()
	return t
}

// Reverse flips the direction. StateTime restarts from zero only when the
// transition was finished; otherwise elapsed time is kept so that two
// reversals in a row leave it untouched.
func (t *Transition) Reverse() *Transition {
	if t.phase == PhaseFinished {
		t.StateTime = 0
	}
	if t.Direction == FromTo {
		t.Direction = ToFrom
	} else {
		t.Direction = FromTo
	}
	t.classify()
	return t
}

func (t *Transition) classify() {
	to, from := t.To(), t.From()

	switch {
	case to > from:
		switch {
		case t.Current >= to:
			t.phase = PhaseFinished
		case t.Current <= from:
			t.phase = PhaseStart
		default:
			t.phase = PhaseInProgress
		}
	case t.Current <= to:
		t.phase = PhaseFinished
	case t.Current >= from:
		t.phase = PhaseStart
	default:
		t.phase = PhaseInProgress
	}
}
