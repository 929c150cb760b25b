package components

import (
	"github.com/automoto/magnetcursor/motion"
	"github.com/yohamta/donburi"
)

// PointerSource reports the raw pointer. ok is false while the pointer
// position is unknown (e.g. before the window has focus).
type PointerSource interface {
	Position() (p motion.Point, ok bool)
	Down() bool
}

// ListenerID identifies a pointer-move subscription. Zero is never issued.
type ListenerID int

// PointerData tracks pointer delivery for one scene
type PointerData struct {
	Source PointerSource

	Last    motion.Point
	HasLast bool
	Down    bool

	Hovered    donburi.Entity // Magnetic element under the pointer
	HasHovered bool

	listeners map[ListenerID]func(motion.Point)
	order     []ListenerID
	nextID    ListenerID
}

// AddMoveListener subscribes fn to every pointer move.
func (p *PointerData) AddMoveListener(fn func(motion.Point)) ListenerID {
	if p.listeners == nil {
		p.listeners = map[ListenerID]func(motion.Point){}
	}
	p.nextID++
	id := p.nextID
	p.listeners[id] = fn
	p.order = append(p.order, id)
	return id
}

// RemoveMoveListener unsubscribes id. It reports false if id was not subscribed.
func (p *PointerData) RemoveMoveListener(id ListenerID) bool {
	if _, ok := p.listeners[id]; !ok {
		return false
	}
	delete(p.listeners, id)
	order := make([]ListenerID, 0, len(p.order))
	for _, v := range p.order {
		if v != id {
			order = append(order, v)
		}
	}
	p.order = order
	return true
}

// Listeners returns the number of active move subscriptions.
func (p *PointerData) Listeners() int {
	return len(p.listeners)
}

// EmitMove calls every move listener in subscription order. Listeners may
// subscribe or unsubscribe from inside the callback; a listener removed
// during the emit is not called once removed.
func (p *PointerData) EmitMove(pt motion.Point) {
	ids := append([]ListenerID(nil), p.order...)
	for _, id := range ids {
		if fn, ok := p.listeners[id]; ok {
			fn(pt)
		}
	}
}

var Pointer = donburi.NewComponentType[PointerData]()
