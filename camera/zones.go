package camera

import "log"

// ZoneStack owns the cyclable profile list: a base list authored for normal
// play, temporarily shadowed by a zone's override list while the subject is
// inside a designated volume. Switching is delegated to the transition
// controller; zone transitions usually run longer than view cycles, so the
// durations are separate.
type ZoneStack struct {
	controller *TransitionController

	base  []TrackingProfile
	index int

	override   []TrackingProfile
	savedIndex int
	activeZone string
}

// NewZoneStack starts on the base list at index 0. The list must be
// non-empty; the rig validates that before construction.
func NewZoneStack(controller *TransitionController, base []TrackingProfile) *ZoneStack {
	return &ZoneStack{controller: controller, base: base}
}

// ActiveList is the list view cycling currently walks: the zone override
// while one is installed, the base list otherwise.
func (z *ZoneStack) ActiveList() []TrackingProfile {
	if z.override != nil {
		return z.override
	}
	return z.base
}

// Index is the current position within the active list.
func (z *ZoneStack) Index() int { return z.index }

// InZone reports whether an override is installed.
func (z *ZoneStack) InZone() bool { return z.override != nil }

// Enter installs a zone's profile list. The current base index is saved for
// Exit, the override starts at its first profile, and the switch blends over
// the zone duration. Entering while another zone's override is active
// replaces it outright; zones do not nest.
func (z *ZoneStack) Enter(zoneID string, list []TrackingProfile, duration float64) {
	if len(list) == 0 {
		log.Printf("camera: zone %q has no profiles, ignoring enter", zoneID)
		return
	}
	if z.override == nil {
		z.savedIndex = z.index
	} else {
		log.Printf("camera: zone %q entered while zone %q active, replacing", zoneID, z.activeZone)
	}
	z.override = list
	z.activeZone = zoneID
	z.index = 0
	z.controller.Start(list[0], duration)
}

// Exit tears down the override installed by Enter and restores the saved
// position in the base list, again via a zone-length blend. Exits for a zone
// that is not active are ignored.
func (z *ZoneStack) Exit(zoneID string, duration float64) {
	if z.override == nil {
		log.Printf("camera: exit for zone %q with no zone active, ignoring", zoneID)
		return
	}
	if zoneID != z.activeZone {
		log.Printf("camera: exit for zone %q while zone %q active, ignoring", zoneID, z.activeZone)
		return
	}
	z.override = nil
	z.activeZone = ""
	z.index = z.savedIndex
	if z.index >= len(z.base) {
		z.index = 0
	}
	z.controller.Start(z.base[z.index], duration)
}

// Apply jumps the active list to the given index and blends to it. Out-of-
// range indexes are ignored with a diagnostic.
func (z *ZoneStack) Apply(index int, duration float64) {
	list := z.ActiveList()
	if index < 0 || index >= len(list) {
		log.Printf("camera: profile index %d out of range (%d profiles), ignoring", index, len(list))
		return
	}
	z.index = index
	z.controller.Start(list[index], duration)
}

// ReplaceBase swaps the base list in place, used by profile hot reload. The
// current index is preserved when still valid. If no zone override is active
// and the indexed profile changed, it is re-staged through a transition.
func (z *ZoneStack) ReplaceBase(base []TrackingProfile, duration float64) {
	if len(base) == 0 {
		log.Printf("camera: refusing to replace base profile list with an empty one")
		return
	}
	z.base = base
	if z.savedIndex >= len(base) {
		z.savedIndex = 0
	}
	if z.override != nil {
		return
	}
	if z.index >= len(base) {
		z.index = 0
	}
	z.controller.Start(base[z.index], duration)
}

// advance moves to the next profile in the active list, wrapping. Used by
// the view cycler.
func (z *ZoneStack) advance() TrackingProfile {
	list := z.ActiveList()
	z.index = (z.index + 1) % len(list)
	return list[z.index]
}
