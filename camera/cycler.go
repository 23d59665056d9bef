package camera

// ViewCycler walks the active profile list in designer order on an external
// "next view" request, using the normal (non-zone) transition duration.
type ViewCycler struct {
	stack      *ZoneStack
	controller *TransitionController
	duration   float64
}

func NewViewCycler(stack *ZoneStack, controller *TransitionController, duration float64) *ViewCycler {
	return &ViewCycler{stack: stack, controller: controller, duration: duration}
}

// Next advances to the following profile. A transition already in flight is
// force-finalized first so the new blend starts from a settled profile.
func (v *ViewCycler) Next() {
	if v.controller.InProgress() {
		v.controller.Finalize()
	}
	v.controller.Start(v.stack.advance(), v.duration)
}
