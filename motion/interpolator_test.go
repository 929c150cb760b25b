package motion

import (
	"math"
	"testing"
)

type recordingNode struct {
	alive bool
	moves []Point
}

func (n *recordingNode) Alive() bool  { return n.alive }
func (n *recordingNode) Move(p Point) { n.moves = append(n.moves, p) }

func TestInterpolatorStepsTowardTarget(t *testing.T) {
	ip := NewInterpolator(nil, nil, 0.5)
	ip.Target = Pt(10, -10)

	if ip.Step() {
		t.Fatal("first step should not converge")
	}
	if ip.Current.X != 5 || ip.Current.Y != -5 {
		t.Errorf("expected (5, -5), got (%.2f, %.2f)", ip.Current.X, ip.Current.Y)
	}
}

func TestInterpolatorNaNGuard(t *testing.T) {
	ip := NewInterpolator(nil, nil, 0.2)
	ip.Current = Pt(math.NaN(), 0)
	ip.Target = Pt(10, 0)

	ip.Step()

	if math.IsNaN(ip.Current.X) || math.IsInf(ip.Current.X, 0) {
		t.Fatalf("expected finite X, got %f", ip.Current.X)
	}
	if ip.Current.X != 2 {
		t.Errorf("expected NaN to be treated as 0 and advance to 2, got %f", ip.Current.X)
	}
}

func TestInterpolatorSanitizesTarget(t *testing.T) {
	ip := NewInterpolator(NewScheduler(), nil, 0.5)
	ip.SetTarget(Pt(math.Inf(1), 4))

	if ip.Target.X != 0 || ip.Target.Y != 4 {
		t.Errorf("expected target (0, 4), got (%f, %f)", ip.Target.X, ip.Target.Y)
	}
}

func TestInterpolatorConvergesAndStopsScheduling(t *testing.T) {
	frames := NewScheduler()
	node := &recordingNode{alive: true}
	ip := NewInterpolator(frames, node, 0.1)
	ip.SetTarget(Pt(100, 50))

	if !ip.Running() {
		t.Fatal("SetTarget on an idle interpolator should start it")
	}

	last := math.Inf(1)
	ticks := 0
	for ip.Running() {
		frames.Tick()
		ticks++
		dist := math.Hypot(ip.Target.X-ip.Current.X, ip.Target.Y-ip.Current.Y)
		if dist > last {
			t.Fatalf("distance grew at frame %d: %f > %f", ticks, dist, last)
		}
		last = dist
		if ticks > 500 {
			t.Fatal("interpolator did not converge within 500 frames")
		}
	}

	if ip.Current != ip.Target {
		t.Errorf("expected to land on target, got (%f, %f)", ip.Current.X, ip.Current.Y)
	}
	if frames.Pending() != 0 {
		t.Errorf("expected no pending frames after convergence, got %d", frames.Pending())
	}
	if len(node.moves) != ticks {
		t.Errorf("expected one node write per frame (%d), got %d", ticks, len(node.moves))
	}

	frames.Tick()
	if len(node.moves) != ticks {
		t.Error("idle interpolator should not write on later frames")
	}
}

func TestInterpolatorRestartsOnNewTarget(t *testing.T) {
	frames := NewScheduler()
	ip := NewInterpolator(frames, &recordingNode{alive: true}, 1)
	ip.SetTarget(Pt(3, 3))
	for i := 0; i < 5; i++ {
		frames.Tick()
	}
	if ip.Running() {
		t.Fatal("expected interpolator to be idle")
	}

	ip.SetTarget(Pt(6, 6))
	if !ip.Running() || frames.Pending() != 1 {
		t.Fatalf("expected one scheduled frame, running=%v pending=%d", ip.Running(), frames.Pending())
	}
}

func TestInterpolatorSetTargetWhileRunningKeepsOneFrame(t *testing.T) {
	frames := NewScheduler()
	ip := NewInterpolator(frames, nil, 0.1)
	ip.SetTarget(Pt(10, 0))
	ip.SetTarget(Pt(20, 0))
	ip.Kick()

	if frames.Pending() != 1 {
		t.Errorf("expected 1 pending frame, got %d", frames.Pending())
	}
}

func TestInterpolatorStop(t *testing.T) {
	frames := NewScheduler()
	ip := NewInterpolator(frames, nil, 0.1)
	ip.SetTarget(Pt(10, 0))
	ip.Stop()

	if ip.Running() {
		t.Error("expected Stop to clear running")
	}
	if frames.Pending() != 0 {
		t.Errorf("expected Stop to cancel the frame, got %d pending", frames.Pending())
	}
	frames.Tick()
	if ip.Current.X != 0 {
		t.Errorf("stopped interpolator moved to %f", ip.Current.X)
	}
}

func TestInterpolatorHaltsOnDeadNode(t *testing.T) {
	frames := NewScheduler()
	node := &recordingNode{alive: true}
	ip := NewInterpolator(frames, node, 0.1)
	ip.SetTarget(Pt(100, 0))
	frames.Tick()

	node.alive = false
	writes := len(node.moves)
	frames.Tick()

	if len(node.moves) != writes {
		t.Error("interpolator wrote to a detached node")
	}
	if ip.Running() || frames.Pending() != 0 {
		t.Error("interpolator kept scheduling for a detached node")
	}
}

func TestClampFactor(t *testing.T) {
	if got := ClampFactor(0); got != DefaultFactor {
		t.Errorf("expected default for 0, got %f", got)
	}
	if got := ClampFactor(math.NaN()); got != DefaultFactor {
		t.Errorf("expected default for NaN, got %f", got)
	}
	if got := ClampFactor(3); got != 1 {
		t.Errorf("expected 1 for 3, got %f", got)
	}
	if got := ClampFactor(0.25); got != 0.25 {
		t.Errorf("expected 0.25, got %f", got)
	}
}
