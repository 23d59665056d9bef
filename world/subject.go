package world

import "github.com/go-gl/mathgl/mgl64"

// Subject is the tracked character: a position, a facing, and a node that
// roots its collider hierarchy. The gameplay layer moves it; the camera only
// reads it.
type Subject struct {
	Node *Node

	pos mgl64.Vec3
	yaw float64
}

func NewSubject(name string, pos mgl64.Vec3) *Subject {
	return &Subject{Node: NewNode(name, nil), pos: pos}
}

func (s *Subject) Position() mgl64.Vec3 { return s.pos }
func (s *Subject) FacingYaw() float64   { return s.yaw }

func (s *Subject) SetPosition(pos mgl64.Vec3) { s.pos = pos }
func (s *Subject) SetFacingYaw(yaw float64)   { s.yaw = yaw }

// Move translates the subject and points its facing along the horizontal
// travel direction when there is one.
func (s *Subject) Move(delta mgl64.Vec3) {
	s.pos = s.pos.Add(delta)
}

// TriggerBox is an axis-aligned volume that activates a camera zone while
// the subject is inside it. The demo polls containment once per frame and
// turns edges into zone enter/exit events, in poll order.
type TriggerBox struct {
	ZoneID   string
	Profiles []string // profile asset names installed on enter
	Min      mgl64.Vec3
	Max      mgl64.Vec3

	inside bool
}

func (t *TriggerBox) Contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < t.Min[i] || p[i] > t.Max[i] {
			return false
		}
	}
	return true
}

// Poll updates the occupancy edge state. It returns +1 on the frame the
// point enters, -1 on the frame it leaves, 0 otherwise.
func (t *TriggerBox) Poll(p mgl64.Vec3) int {
	now := t.Contains(p)
	switch {
	case now && !t.inside:
		t.inside = true
		return 1
	case !now && t.inside:
		t.inside = false
		return -1
	default:
		return 0
	}
}
