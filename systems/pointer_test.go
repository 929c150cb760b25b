package systems

import (
	"testing"

	"github.com/automoto/magnetcursor/components"
	"github.com/automoto/magnetcursor/motion"
	"github.com/automoto/magnetcursor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestHitTest(t *testing.T) {
	e, _ := newTestECS(t)
	params := testParams()
	params.OuterPadding = 10
	a := mountBox(e, 100, 100, 40, 40, params)
	b := mountBox(e, 140, 100, 40, 40, params)

	tests := []struct {
		name  string
		p     motion.Point
		want  donburi.Entity
		found bool
	}{
		{"inside a", motion.Pt(90, 100), a.Entity(), true},
		{"outer padding of a", motion.Pt(71, 100), a.Entity(), true},
		{"overlap picks topmost", motion.Pt(120, 100), b.Entity(), true},
		{"zone edge is inside", motion.Pt(170, 130), b.Entity(), true},
		{"outside", motion.Pt(300, 250), 0, false},
		{"off screen", motion.Pt(-50, -50), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HitTest(e, tt.p)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if ok && got != tt.want {
				t.Errorf("hit %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHitTestWithoutSpace(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	a := mountBox(e, 100, 100, 40, 40, testParams())
	b := mountBox(e, 110, 100, 40, 40, testParams())

	if got, ok := HitTest(e, motion.Pt(85, 100)); !ok || got != a.Entity() {
		t.Errorf("expected a, got %v (found %v)", got, ok)
	}
	if got, ok := HitTest(e, motion.Pt(105, 100)); !ok || got != b.Entity() {
		t.Errorf("expected b, got %v (found %v)", got, ok)
	}
}

func TestHitTestIgnoresUnmounted(t *testing.T) {
	e, _ := newTestECS(t)
	entry := mountBox(e, 100, 100, 40, 40, testParams())
	UnmountMagnetic(e, entry)

	if _, ok := HitTest(e, motion.Pt(100, 100)); ok {
		t.Error("expected no hit after unmount")
	}
	space, _ := getSpace(e)
	for _, obj := range space.Objects() {
		if obj.HasTags(tags.ResolvMagnetic) {
			t.Error("expected the element's zone removed from the space")
		}
	}
}

func TestUnknownPointerLeaves(t *testing.T) {
	e, src := newTestECS(t)
	MountFollower(e, 0.15)
	entry := mountBox(e, 100, 100, 40, 40, testParams())
	moveTo(e, src, 100, 100)

	src.ok = false
	UpdatePointer(e)

	if s := components.Magnetic.Get(entry).State; s != components.MagneticIdle {
		t.Errorf("expected idle once the pointer is lost, got %s", s)
	}
	if GetOrCreateMotionState(e).Claimed {
		t.Error("expected claim released")
	}
}

func TestMoveListenersRunBeforeLeave(t *testing.T) {
	e, src := newTestECS(t)
	MountFollower(e, 0.15)
	mountBox(e, 100, 100, 40, 40, testParams())
	moveTo(e, src, 100, 100)

	state := GetOrCreateMotionState(e)
	var seen []motion.Point
	claimedDuringMove := false
	pointer, _ := getPointer(e)
	pointer.AddMoveListener(func(p motion.Point) {
		seen = append(seen, p)
		claimedDuringMove = state.Claimed
	})

	moveTo(e, src, 300, 200)
	moveTo(e, src, 300, 200)

	if len(seen) != 1 {
		t.Fatalf("expected one move for two polls at the same point, got %d", len(seen))
	}
	if !claimedDuringMove {
		t.Error("expected move listeners to run before the leave released the claim")
	}
	assertPoint(t, "target", GetOrCreateMotionState(e).Target, motion.Pt(290, 190))
}

func TestNilPointerSourceIsIgnored(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	UpdatePointer(e)

	pointer, ok := getPointer(e)
	if !ok {
		t.Fatal("expected a pointer to be created")
	}
	if pointer.HasLast {
		t.Error("expected no position without a source")
	}
}
