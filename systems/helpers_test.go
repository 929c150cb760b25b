package systems

import (
	"math"
	"testing"

	"github.com/automoto/magnetcursor/components"
	cfg "github.com/automoto/magnetcursor/config"
	"github.com/automoto/magnetcursor/motion"
	"github.com/automoto/magnetcursor/systems/factory"
	"github.com/automoto/magnetcursor/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fakePointer is a scripted PointerSource.
type fakePointer struct {
	p    motion.Point
	ok   bool
	down bool
}

func (f *fakePointer) Position() (motion.Point, bool) { return f.p, f.ok }
func (f *fakePointer) Down() bool { return f.down }

// box is content with a fixed size that draws nothing.
type box struct {
	w, h float64
}

func (b box) Size() (float64, float64) { return b.w, b.h }
func (b box) Draw(*ebiten.Image, float64, float64) {}

// newTestECS builds a headless world with a hit-test space, shared state and
// a fake pointer. Resizes are immediate unless a test says otherwise.
func newTestECS(t *testing.T) (*ecs.ECS, *fakePointer) {
	t.Helper()

	follower, magnetic, motionCfg := cfg.Follower, cfg.Magnetic, cfg.Motion
	t.Cleanup(func() {
		cfg.Follower, cfg.Magnetic, cfg.Motion = follower, magnetic, motionCfg
	})
	cfg.Follower.Width, cfg.Follower.Height = 20, 20
	cfg.Follower.ResizeDuration = 0
	cfg.Magnetic.IndicatorScale = 1
	cfg.Magnetic.PressScale = 0.9
	cfg.Motion.Epsilon = 0.01

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 400, 300, 16, 16)
	GetOrCreateMotionState(e)
	src := &fakePointer{}
	factory.CreatePointer(e, src)
	return e, src
}

func testParams() components.MagneticParams {
	return components.MagneticParams{Offset: 10, Scale: 1, Speed: 0.2}
}

// mountBox mounts a w x h element centered on (cx, cy).
func mountBox(e *ecs.ECS, cx, cy, w, h float64, params components.MagneticParams) *donburi.Entry {
	return MountMagnetic(e, cx-w/2, cy-h/2, box{w, h}, params)
}

func moveTo(e *ecs.ECS, src *fakePointer, x, y float64) {
	src.p = motion.Pt(x, y)
	src.ok = true
	UpdatePointer(e)
}

// step runs the per-tick animation systems n times.
func step(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		UpdateFollowerSize(e)
		UpdateFrames(e)
	}
}

// settle steps until nothing is scheduled.
func settle(t *testing.T, e *ecs.ECS) {
	t.Helper()
	state := GetOrCreateMotionState(e)
	for i := 0; i < 2000; i++ {
		if state.Frames.Pending() == 0 && !FollowerResizing(e) {
			return
		}
		step(e, 1)
	}
	t.Fatalf("animation did not settle, %d frames pending", state.Frames.Pending())
}

func follower(t *testing.T, e *ecs.ECS) *components.FollowerData {
	t.Helper()
	f, ok := getFollower(e)
	if !ok {
		t.Fatal("expected a mounted follower")
	}
	return f
}

func assertPoint(t *testing.T, name string, got, want motion.Point) {
	t.Helper()
	if math.Abs(got.X-want.X) > 0.01 || math.Abs(got.Y-want.Y) > 0.01 {
		t.Errorf("%s = (%.3f, %.3f), want (%.3f, %.3f)", name, got.X, got.Y, want.X, want.Y)
	}
}

// zoneCount counts magnetic zones registered in the space.
func zoneCount(e *ecs.ECS) int {
	space, ok := getSpace(e)
	if !ok {
		return 0
	}
	n := 0
	for _, obj := range space.Objects() {
		if obj.HasTags(tags.ResolvMagnetic) {
			n++
		}
	}
	return n
}

func countMagnetics(e *ecs.ECS) int {
	n := 0
	components.Magnetic.Each(e.World, func(*donburi.Entry) {
		n++
	})
	return n
}
