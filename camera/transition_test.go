package camera

import "testing"

func profileA() TrackingProfile {
	p := baseProfile()
	p.Name = "a"
	p.Distance = 4
	p.HeightOffset = 1
	p.Avoidance.Enabled = true
	p.Avoidance.LayerMask = 0x1
	p.Reset.ResetPitch = true
	return p
}

func profileB() TrackingProfile {
	p := baseProfile()
	p.Name = "b"
	p.Distance = 10
	p.HeightOffset = 3
	p.Avoidance.Enabled = false
	p.Avoidance.LayerMask = 0x2
	p.Reset.ResetPitch = false
	return p
}

func TestTransitionSnapshotEndpoints(t *testing.T) {
	c := NewTransitionController(profileA())
	c.Start(profileB(), 2)

	// Progress 0: snapshot is from, discrete fields included.
	snap := c.Tick(0)
	if snap.Name != "a" || !approx(snap.Distance, 4) || !snap.Avoidance.Enabled || snap.Avoidance.LayerMask != 0x1 {
		t.Fatalf("snapshot at progress 0 diverges from the from profile: %+v", snap)
	}

	// Past the duration: transition finalizes and to is live.
	final := c.Tick(3)
	if final.Name != "b" || !approx(final.Distance, 10) || final.Avoidance.Enabled {
		t.Fatalf("finalized profile should equal to exactly: %+v", final)
	}
	if c.InProgress() {
		t.Fatalf("transition state must be discarded after finalize")
	}
}

func TestTransitionLinearInterpolation(t *testing.T) {
	// Distance 4 -> 10 over two seconds: halfway should read 7.
	c := NewTransitionController(profileA())
	c.Start(profileB(), 2)

	snap := c.Tick(1)
	if !approx(snap.Distance, 7) {
		t.Fatalf("distance at progress 0.5 = %v, want 7", snap.Distance)
	}
	if !approx(snap.HeightOffset, 2) {
		t.Fatalf("height offset at progress 0.5 = %v, want 2", snap.HeightOffset)
	}
}

func TestTransitionDiscreteMidpointSwitch(t *testing.T) {
	cases := []struct {
		name       string
		dt         float64
		wantName   string
		wantEnable bool
		wantMask   uint32
		wantReset  bool
	}{
		{"just_before_midpoint", 0.998, "a", true, 0x1, true},
		{"exactly_midpoint", 1.0, "b", false, 0x2, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := NewTransitionController(profileA())
			ctrl.Start(profileB(), 2)
			snap := ctrl.Tick(c.dt)
			if snap.Name != c.wantName {
				t.Fatalf("name = %q, want %q", snap.Name, c.wantName)
			}
			if snap.Avoidance.Enabled != c.wantEnable {
				t.Fatalf("avoidance enabled = %v, want %v", snap.Avoidance.Enabled, c.wantEnable)
			}
			if snap.Avoidance.LayerMask != c.wantMask {
				t.Fatalf("layer mask = %#x, want %#x", snap.Avoidance.LayerMask, c.wantMask)
			}
			if snap.Reset.ResetPitch != c.wantReset {
				t.Fatalf("reset pitch = %v, want %v", snap.Reset.ResetPitch, c.wantReset)
			}
		})
	}
}

func TestTransitionLockHeldUntilFinalize(t *testing.T) {
	locked := baseProfile()
	locked.Name = "locked"
	locked.Lock = LockRotation{Enabled: true, Pitch: 10, Yaw: 180}

	free := baseProfile()
	free.Name = "free"

	t.Run("leaving_lock", func(t *testing.T) {
		ctrl := NewTransitionController(locked)
		ctrl.Start(free, 2)

		snap := ctrl.Tick(1.5) // progress 0.75, well past midpoint
		if !snap.Lock.Enabled || !approx(snap.Lock.Yaw, 180) {
			t.Fatalf("lock must hold through the blend, got %+v", snap.Lock)
		}

		final := ctrl.Tick(1)
		if final.Lock.Enabled {
			t.Fatalf("lock must release at finalize")
		}
	})

	t.Run("entering_lock", func(t *testing.T) {
		ctrl := NewTransitionController(free)
		ctrl.Start(locked, 2)

		snap := ctrl.Tick(1.5)
		if snap.Lock.Enabled {
			t.Fatalf("lock must not engage before finalize, got %+v", snap.Lock)
		}

		final := ctrl.Tick(1)
		if !final.Lock.Enabled || !approx(final.Lock.Yaw, 180) {
			t.Fatalf("lock must engage at finalize, got %+v", final.Lock)
		}
	})
}

func TestTransitionInterruptNeverStacks(t *testing.T) {
	third := baseProfile()
	third.Name = "c"
	third.Distance = 20

	ctrl := NewTransitionController(profileA())
	ctrl.Start(profileB(), 2)
	ctrl.Tick(0.5) // progress 0.25

	ctrl.Interrupt(third, 2)

	// The interrupted transition applied its target; the new one starts
	// from b, not from the abandoned midpoint.
	snap := ctrl.Tick(0)
	if !approx(snap.Distance, 10) {
		t.Fatalf("new transition must start from the finalized profile, distance = %v", snap.Distance)
	}
	if p := ctrl.Progress(); p < 0 || p > 1 {
		t.Fatalf("progress %v escaped [0,1]", p)
	}

	snap = ctrl.Tick(1)
	if !approx(snap.Distance, 15) {
		t.Fatalf("distance halfway from 10 to 20 = %v, want 15", snap.Distance)
	}
}

func TestTransitionZeroDurationAppliesImmediately(t *testing.T) {
	ctrl := NewTransitionController(profileA())
	ctrl.Start(profileB(), 0)

	if ctrl.InProgress() {
		t.Fatalf("zero-duration transition must apply immediately")
	}
	if ctrl.Active().Name != "b" {
		t.Fatalf("active = %q, want b", ctrl.Active().Name)
	}
}

func TestTransitionYawContinuityCallback(t *testing.T) {
	locked := baseProfile()
	locked.Name = "locked"
	locked.Lock = LockRotation{Enabled: true, Pitch: 10, Yaw: 180}

	unlockedKeep := baseProfile()
	unlockedKeep.Name = "keep"
	unlockedKeep.MaintainYawOnUnlock = true

	unlockedDrop := baseProfile()
	unlockedDrop.Name = "drop"

	cases := []struct {
		name     string
		from     TrackingProfile
		to       TrackingProfile
		wantFire bool
	}{
		{"locked_to_keep", locked, unlockedKeep, true},
		{"locked_to_drop", locked, unlockedDrop, false},
		{"unlocked_to_keep", unlockedDrop, unlockedKeep, false},
		{"locked_to_locked", locked, locked, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fired := false
			ctrl := NewTransitionController(c.from)
			ctrl.OnUnlock(func() { fired = true })

			ctrl.Start(c.to, 1)
			if fired {
				t.Fatalf("callback must not fire before finalize")
			}
			ctrl.Tick(2)
			if fired != c.wantFire {
				t.Fatalf("callback fired = %v, want %v", fired, c.wantFire)
			}
		})
	}
}
