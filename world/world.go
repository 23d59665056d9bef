// Package world is a small static 3D collision world: enough geometry for
// the camera's occlusion casts in the demo and in end-to-end tests. It
// implements the camera package's RayCaster and Subject interfaces.
package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/followcam/camera"
)

// Node is a point in the scene hierarchy. Colliders attached to a node count
// as belonging to that node and every ancestor, which is how the camera
// skips the subject's own geometry (weapons, mounts) during casts.
type Node struct {
	Name   string
	parent *Node
}

func NewNode(name string, parent *Node) *Node {
	return &Node{Name: name, parent: parent}
}

func (n *Node) descendantOf(root *Node) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == root {
			return true
		}
	}
	return false
}

// Collider is the shared part of every shape: layer category bits, an
// optional owning node, and the collectible tag. It doubles as the opaque
// hit handle the camera receives from a cast.
type Collider struct {
	Layer  uint32
	Pickup bool
	Node   *Node
}

// AttachedTo implements camera.Body against a world subject.
func (c *Collider) AttachedTo(subject camera.Subject) bool {
	s, ok := subject.(*Subject)
	if !ok || s == nil || c.Node == nil {
		return false
	}
	return c.Node.descendantOf(s.Node)
}

// Collectible implements camera.Body: pickups never block the camera.
func (c *Collider) Collectible() bool { return c.Pickup }

// Sphere is a spherical collider.
type Sphere struct {
	Collider
	Center mgl64.Vec3
	Radius float64
}

// Box is an axis-aligned box collider.
type Box struct {
	Collider
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// World holds static colliders and answers segment casts against them.
type World struct {
	spheres []*Sphere
	boxes   []*Box
}

func New() *World {
	return &World{}
}

func (w *World) AddSphere(s *Sphere) { w.spheres = append(w.spheres, s) }
func (w *World) AddBox(b *Box)       { w.boxes = append(w.boxes, b) }

// SegmentCast implements camera.RayCaster: every intersection with t in
// (0, maxDist], filtered by layer mask, in no particular order.
func (w *World) SegmentCast(origin, dir mgl64.Vec3, maxDist float64, mask uint32) []camera.Hit {
	if dir.Len() < 1e-12 || maxDist <= 0 {
		return nil
	}
	d := dir.Normalize()

	var hits []camera.Hit
	for _, s := range w.spheres {
		if s.Layer&mask == 0 {
			continue
		}
		if t, ok := raySphere(origin, d, s.Center, s.Radius); ok && t > 0 && t <= maxDist {
			hits = append(hits, camera.Hit{Distance: t, Body: &s.Collider})
		}
	}
	for _, b := range w.boxes {
		if b.Layer&mask == 0 {
			continue
		}
		if t, ok := rayBox(origin, d, b.Min, b.Max); ok && t > 0 && t <= maxDist {
			hits = append(hits, camera.Hit{Distance: t, Body: &b.Collider})
		}
	}
	return hits
}

// raySphere returns the nearest positive intersection parameter of a unit
// ray with a sphere.
func raySphere(origin, dir, center mgl64.Vec3, radius float64) (float64, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	if t := -b - sq; t > 0 {
		return t, true
	}
	if t := -b + sq; t > 0 {
		return t, true
	}
	return 0, false
}

// rayBox is the slab method against an axis-aligned box. Returns the entry
// parameter; a ray starting inside reports the exit instead.
func rayBox(origin, dir, min, max mgl64.Vec3) (float64, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < min[i] || origin[i] > max[i] {
				return 0, false
			}
			continue
		}
		t1 := (min[i] - origin[i]) / dir[i]
		t2 := (max[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	if tMin > 0 {
		return tMin, true
	}
	if tMax > 0 {
		return tMax, true
	}
	return 0, false
}
