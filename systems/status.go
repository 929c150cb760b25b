package systems

import (
	"fmt"

	"github.com/automoto/magnetcursor/components"
	"github.com/automoto/magnetcursor/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Status summarizes the cursor for the status panel.
type Status struct {
	Elements int
	Claimed  bool
	Owner    string // Content label of the owner when it has one
	Mounted  bool
	Moving   bool
	Target   motion.Point
	Pending  int
}

// Snapshot reads the current cursor status.
func Snapshot(e *ecs.ECS) Status {
	var s Status
	state := GetOrCreateMotionState(e)
	s.Target = state.Target
	if state.Frames != nil {
		s.Pending = state.Frames.Pending()
	}
	components.Magnetic.Each(e.World, func(*donburi.Entry) {
		s.Elements++
	})

	if entry, ok := ClaimOwner(e); ok {
		s.Claimed = true
		s.Owner = describe(entry)
	}
	if f, ok := getFollower(e); ok && f.Node.Alive() {
		s.Mounted = true
		s.Moving = f.Motion.Running() || f.Resize != nil
	}
	return s
}

// RemoveClaimOwner unmounts the element currently holding the claim.
func RemoveClaimOwner(e *ecs.ECS) bool {
	owner, ok := ClaimOwner(e)
	if !ok {
		return false
	}
	UnmountMagnetic(e, owner)
	return true
}

// RemoveNewestMagnetic unmounts the most recently mounted element.
func RemoveNewestMagnetic(e *ecs.ECS) bool {
	var newest donburi.Entity
	order := -1
	components.Magnetic.Each(e.World, func(entry *donburi.Entry) {
		if m := components.Magnetic.Get(entry); m.Order > order {
			newest, order = entry.Entity(), m.Order
		}
	})
	if order < 0 {
		return false
	}
	UnmountMagnetic(e, e.World.Entry(newest))
	return true
}

func describe(entry *donburi.Entry) string {
	m := components.Magnetic.Get(entry)
	if l, ok := m.Content.(fmt.Stringer); ok {
		return l.String()
	}
	return fmt.Sprintf("%v", entry.Entity())
}

func (s Status) String() string {
	owner := "pointer"
	if s.Claimed {
		owner = s.Owner
	}
	return fmt.Sprintf("following: %s", owner)
}
