package systems

import (
	"testing"

	"github.com/automoto/magnetcursor/components"
	"github.com/automoto/magnetcursor/motion"
)

func TestClaimTargetDemotesPreviousOwner(t *testing.T) {
	e, src := newTestECS(t)
	MountFollower(e, 0.15)
	a := mountBox(e, 100, 100, 40, 40, testParams())
	b := mountBox(e, 300, 100, 40, 40, testParams())
	moveTo(e, src, 100, 100)

	// Enter delivered to b without a leave for a.
	MagneticPointerEnter(e, b, motion.Pt(300, 100))

	state := GetOrCreateMotionState(e)
	if !state.OwnedBy(b.Entity()) {
		t.Fatal("expected b to own the claim")
	}
	if s := components.Magnetic.Get(a).State; s != components.MagneticIdle {
		t.Errorf("expected a demoted to idle, got %s", s)
	}
	assertPoint(t, "a wobble target", components.Magnetic.Get(a).Wobble.Target, motion.Point{})
	assertPoint(t, "target", state.Target, motion.Pt(280, 80))
}

func TestReleaseTargetIgnoresNonOwner(t *testing.T) {
	e, src := newTestECS(t)
	MountFollower(e, 0.15)
	a := mountBox(e, 100, 100, 40, 40, testParams())
	b := mountBox(e, 300, 100, 40, 40, testParams())
	moveTo(e, src, 100, 100)

	if ReleaseTarget(e, b.Entity()) {
		t.Error("non-owner release should report false")
	}
	state := GetOrCreateMotionState(e)
	if !state.OwnedBy(a.Entity()) {
		t.Error("claim should be untouched by a non-owner release")
	}
	if !ReleaseTarget(e, a.Entity()) {
		t.Error("owner release should report true")
	}
	if state.Claimed {
		t.Error("expected claim cleared")
	}
}

func TestForceResetMouseAfterProgrammaticRemoval(t *testing.T) {
	e, src := newTestECS(t)
	MountFollower(e, 0.15)
	entry := mountBox(e, 200, 150, 40, 40, testParams())
	moveTo(e, src, 200, 150)

	wobble := components.Magnetic.Get(entry).Node
	e.World.Remove(entry.Entity())
	ForceResetMouse(e, nil)

	state := GetOrCreateMotionState(e)
	if state.Claimed {
		t.Error("expected claim cleared")
	}
	f := follower(t, e)
	if f.Node.Width != 20 || f.Node.Height != 20 {
		t.Errorf("expected resting size, got %vx%v", f.Node.Width, f.Node.Height)
	}
	assertPoint(t, "target", state.Target, motion.Pt(190, 140))
	assertPoint(t, "interpolator target", f.Motion.Target, motion.Pt(190, 140))

	pointer, _ := getPointer(e)
	if pointer.HasHovered {
		t.Error("expected hover cleared")
	}
	if n := zoneCount(e); n != 0 {
		t.Errorf("expected the orphaned zone swept, got %d", n)
	}
	if wobble.Alive() {
		t.Error("expected the orphaned wobble node detached")
	}
	if _, ok := HitTest(e, motion.Pt(200, 150)); ok {
		t.Error("expected no hit on the removed element")
	}
}

func TestForceResetMouseToPosition(t *testing.T) {
	e, src := newTestECS(t)
	MountFollower(e, 0.15)
	mountBox(e, 200, 150, 40, 40, testParams())
	moveTo(e, src, 200, 150)

	p := motion.Pt(50, 60)
	ForceResetMouse(e, &p)

	state := GetOrCreateMotionState(e)
	assertPoint(t, "pointer", state.Pointer, p)
	assertPoint(t, "target", state.Target, motion.Pt(40, 50))
	assertPoint(t, "interpolator target", follower(t, e).Motion.Target, motion.Pt(40, 50))
}

func TestForceResetMouseWithoutFollowerRecordsPosition(t *testing.T) {
	e, _ := newTestECS(t)
	p := motion.Pt(70, 80)
	ForceResetMouse(e, &p)

	MountFollower(e, 0.15)
	f := follower(t, e)
	assertPoint(t, "node", motion.Pt(f.Node.X, f.Node.Y), motion.Pt(60, 70))
}

func TestSweepKeepsLiveZones(t *testing.T) {
	e, _ := newTestECS(t)
	live := mountBox(e, 100, 100, 40, 40, testParams())
	gone := mountBox(e, 300, 100, 40, 40, testParams())
	e.World.Remove(gone.Entity())

	if n := SweepOrphanedZones(e); n != 1 {
		t.Errorf("expected 1 zone swept, got %d", n)
	}
	if n := SweepOrphanedZones(e); n != 0 {
		t.Errorf("expected nothing left to sweep, got %d", n)
	}
	if got, ok := HitTest(e, motion.Pt(100, 100)); !ok || got != live.Entity() {
		t.Error("expected the live element still hit-testable")
	}
}

func TestForceResetMouseDemotesLiveOwner(t *testing.T) {
	e, src := newTestECS(t)
	MountFollower(e, 0.15)
	entry := mountBox(e, 200, 150, 40, 40, testParams())
	moveTo(e, src, 200, 150)

	ForceResetMouse(e, nil)

	if s := components.Magnetic.Get(entry).State; s != components.MagneticIdle {
		t.Errorf("expected idle, got %s", s)
	}
	if _, ok := ClaimOwner(e); ok {
		t.Error("expected no claim owner")
	}

	// The pointer is still inside, so the next poll claims again.
	UpdatePointer(e)
	if owner, ok := ClaimOwner(e); !ok || owner.Entity() != entry.Entity() {
		t.Error("expected the element to reclaim on the next poll")
	}
}

func TestHandoffLeavesNoStaleFrame(t *testing.T) {
	e, src := newTestECS(t)
	MountFollower(e, 0.15)
	mountBox(e, 200, 150, 40, 40, testParams())
	moveTo(e, src, 20, 20)
	settle(t, e)

	f := follower(t, e)
	before := motion.Pt(f.Node.X, f.Node.Y)

	moveTo(e, src, 200, 150)
	step(e, 1)

	// The first frame after enter moves toward the element, never back toward the old pointer.
	after := motion.Pt(f.Node.X, f.Node.Y)
	if after.X <= before.X || after.Y <= before.Y {
		t.Errorf("expected movement toward the element, went from %v to %v", before, after)
	}
	assertPoint(t, "interpolator target", f.Motion.Target, motion.Pt(180, 130))
}
