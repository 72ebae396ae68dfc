package autopilot

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/catchit/internal/catchit"
	"github.com/vovakirdan/catchit/internal/config"
)

var field = catchit.V(1024, 736)

func baseState() catchit.State {
	half := catchit.HunterHalfSize(field)
	return catchit.State{
		Field: field,
		Hunter: catchit.Hunter{
			Object: catchit.Object{Pos: catchit.V(100, 100), HalfSize: half, Shape: catchit.Circle},
		},
		Prey: catchit.Object{Pos: catchit.V(500, 100), HalfSize: half, Shape: catchit.Square},
	}
}

func TestSteerChasesPrey(t *testing.T) {
	p := New(config.Default().Autopilot)
	s := baseState()

	pos, force := p.Steer(s, 0.1)
	if force {
		t.Error("force should stay off with no obstacles around")
	}
	if math.Abs(pos.X-190) > 1e-9 || math.Abs(pos.Y-100) > 1e-9 {
		t.Errorf("Steer() = %v, expected (190, 100)", pos)
	}
}

func TestSteerDoesNotOvershoot(t *testing.T) {
	p := New(config.Default().Autopilot)
	s := baseState()
	s.Prey.Pos = catchit.V(110, 100)

	pos, _ := p.Steer(s, 1)
	if pos != s.Prey.Pos {
		t.Errorf("Steer() = %v, expected to stop on the prey at %v", pos, s.Prey.Pos)
	}
}

func TestSteerDodgesDeadly(t *testing.T) {
	s := baseState()
	s.Obstacles = []catchit.Obstacle{{
		Kind:   catchit.Deadly,
		Object: catchit.Object{Pos: catchit.V(130, 100), HalfSize: 10, Shape: catchit.Circle},
	}}

	dodging := New(config.Default().Autopilot)
	pos, force := dodging.Steer(s, 0.01)
	if !force {
		t.Error("force should be on with a deadly obstacle nearby")
	}
	if pos.X >= 100 {
		t.Errorf("dodging pilot moved toward the obstacle: %v", pos)
	}

	cfg := config.Default().Autopilot
	cfg.Dodge = 0
	pos, force = New(cfg).Steer(s, 0.01)
	if !force {
		t.Error("force should be on even without dodging")
	}
	if pos.X <= 100 {
		t.Errorf("non-dodging pilot should head for the prey: %v", pos)
	}
}

func TestSteerIgnoresSwitches(t *testing.T) {
	s := baseState()
	s.Obstacles = []catchit.Obstacle{{
		Kind:   catchit.InvisibilitySwitch,
		Object: catchit.Object{Pos: catchit.V(120, 100), HalfSize: 20, Shape: catchit.Circle},
	}}

	_, force := New(config.Default().Autopilot).Steer(s, 0.01)
	if force {
		t.Error("switches are not dangerous")
	}
}

func TestSteerStaysInField(t *testing.T) {
	s := baseState()
	s.Hunter.Object.Pos = catchit.V(-50, -50)
	s.Prey.Pos = catchit.V(-400, -400)

	pos, _ := New(config.Default().Autopilot).Steer(s, 1)
	if pos.X < 0 || pos.Y < 0 || pos.X > field.X || pos.Y > field.Y {
		t.Errorf("Steer() = %v left the field", pos)
	}
}

func TestSimulate(t *testing.T) {
	p := New(config.Default().Autopilot)
	opts := SimOptions{Field: field, Seed: 11, TickRate: 60, MaxTime: 20 * time.Second}

	a, err := Simulate(context.Background(), opts, p)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if a.Ticks == 0 || a.Duration == 0 {
		t.Fatalf("no ticks simulated: %+v", a)
	}
	if a.Duration > opts.MaxTime {
		t.Errorf("Duration %v exceeds MaxTime %v", a.Duration, opts.MaxTime)
	}
	if a.Captures == 0 || a.Score == 0 {
		t.Errorf("autopilot never caught the prey: %+v", a)
	}
	if a.Captures != len(a.Final.Obstacles) {
		t.Errorf("Captures = %d, final obstacles = %d", a.Captures, len(a.Final.Obstacles))
	}

	b, err := Simulate(context.Background(), opts, p)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if a.Score != b.Score || a.Ticks != b.Ticks || a.GameOver != b.GameOver {
		t.Errorf("same seed gave different runs: %+v vs %+v", a, b)
	}
}

func TestSimulateErrors(t *testing.T) {
	p := New(config.Default().Autopilot)

	_, err := Simulate(context.Background(), SimOptions{Field: catchit.V(100, 100)}, p)
	if !errors.Is(err, catchit.ErrFieldTooSmall) {
		t.Errorf("small field error = %v, expected ErrFieldTooSmall", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Simulate(ctx, SimOptions{Field: field}, p)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled run error = %v, expected context.Canceled", err)
	}
}
