package motion

import "math"

const (
	// DefaultEpsilon is the per-axis distance under which a point counts as arrived.
	DefaultEpsilon = 0.01
	// DefaultFactor is used when a caller passes a factor outside (0, 1].
	DefaultFactor = 0.1
)

// Node is the visual handle an interpolator writes into once per frame.
type Node interface {
	Alive() bool
	Move(p Point)
}

// Interpolator advances Current toward Target by (Target-Current)*Factor
// every frame and stops requesting frames once both deltas drop below
// Epsilon. Setting a target while idle schedules the next frame.
type Interpolator struct {
	Current Point
	Target  Point
	Factor  float64
	Epsilon float64

	frames  *Scheduler
	node    Node
	handle  FrameHandle
	running bool
	tick    func()
}

func NewInterpolator(frames *Scheduler, node Node, factor float64) *Interpolator {
	ip := &Interpolator{
		Factor:  ClampFactor(factor),
		Epsilon: DefaultEpsilon,
		frames:  frames,
		node:    node,
	}
	ip.tick = ip.frame
	return ip
}

// ClampFactor maps f into (0, 1]; non-positive or NaN falls back to DefaultFactor.
func ClampFactor(f float64) float64 {
	if math.IsNaN(f) || f <= 0 {
		return DefaultFactor
	}
	return math.Min(f, 1)
}

// Running reports whether a frame is scheduled.
func (ip *Interpolator) Running() bool {
	return ip.running
}

// SetTarget replaces the target and resumes the loop if it was idle.
func (ip *Interpolator) SetTarget(p Point) {
	ip.Target = Sanitize(p)
	ip.Kick()
}

// Kick schedules a frame if none is pending, even when the target did not change.
func (ip *Interpolator) Kick() {
	if ip.running || ip.frames == nil {
		return
	}
	ip.running = true
	ip.handle = ip.frames.Request(ip.tick)
}

// Stop cancels the pending frame, if any. Current is left where it is.
func (ip *Interpolator) Stop() {
	if ip.handle != 0 && ip.frames != nil {
		ip.frames.Cancel(ip.handle)
	}
	ip.handle = 0
	ip.running = false
}

// Snap moves Current to p immediately and writes it to the node.
func (ip *Interpolator) Snap(p Point) {
	ip.Current = Sanitize(p)
	if ip.node != nil && ip.node.Alive() {
		ip.node.Move(ip.Current)
	}
}

// Step advances Current once and reports whether it has converged.
// A converged point lands exactly on Target.
func (ip *Interpolator) Step() bool {
	ip.Current = Sanitize(ip.Current)
	ip.Target = Sanitize(ip.Target)

	eps := ip.Epsilon
	if !(eps > 0) {
		eps = DefaultEpsilon
	}
	if Near(ip.Current, ip.Target, eps) {
		ip.Current = ip.Target
		return true
	}

	f := ClampFactor(ip.Factor)
	ip.Current.X += (ip.Target.X - ip.Current.X) * f
	ip.Current.Y += (ip.Target.Y - ip.Current.Y) * f
	return false
}

func (ip *Interpolator) frame() {
	ip.handle = 0
	if ip.node != nil && !ip.node.Alive() {
		ip.running = false
		return
	}

	done := ip.Step()
	if ip.node != nil {
		ip.node.Move(ip.Current)
	}
	if done {
		ip.running = false
		return
	}
	ip.handle = ip.frames.Request(ip.tick)
}
