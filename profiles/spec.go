// Package profiles is the configuration boundary of the camera system:
// designer-authored yaml records parsed and validated into immutable
// camera.TrackingProfile values.
package profiles

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/followcam/camera"
)

type PitchSpec struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Initial float64 `yaml:"initial"`
}

type CollisionSpec struct {
	Enabled     bool    `yaml:"enabled"`
	Radius      float64 `yaml:"radius"`
	LayerMask   uint32  `yaml:"layer_mask"`
	SmoothSpeed float64 `yaml:"smooth_speed"`
}

type ResetSpec struct {
	ResetPitch bool    `yaml:"reset_pitch"`
	PitchAngle float64 `yaml:"pitch_angle"`
}

type LockSpec struct {
	Enabled bool    `yaml:"enabled"`
	Pitch   float64 `yaml:"pitch"`
	Yaw     float64 `yaml:"yaw"`
	Roll    float64 `yaml:"roll"`
}

// ProfileSpec mirrors one profile yaml file.
type ProfileSpec struct {
	Name                 string        `yaml:"name"`
	Distance             float64       `yaml:"distance"`
	HeightOffset         float64       `yaml:"height_offset"`
	Pitch                PitchSpec     `yaml:"pitch"`
	Collision            CollisionSpec `yaml:"collision"`
	PositionSmoothSpeed  float64       `yaml:"position_smooth_speed"`
	MinDistanceThreshold float64       `yaml:"min_distance_threshold"`
	Reset                ResetSpec     `yaml:"reset"`
	LockRotation         LockSpec      `yaml:"lock_rotation"`
	DisableVerticalInput bool          `yaml:"disable_vertical_input"`
	MaintainYawOnUnlock  bool          `yaml:"maintain_yaw_on_unlock"`
}

// Profile resolves the spec into a validated tracking profile. Invariant
// violations come back as errors; nothing is silently repaired.
func (s ProfileSpec) Profile() (camera.TrackingProfile, error) {
	p := camera.TrackingProfile{
		Name:         s.Name,
		Distance:     s.Distance,
		HeightOffset: s.HeightOffset,
		PitchRange:   camera.PitchRange{Min: s.Pitch.Min, Max: s.Pitch.Max},
		InitialPitch: s.Pitch.Initial,
		Avoidance: camera.CollisionAvoidance{
			Enabled:     s.Collision.Enabled,
			Radius:      s.Collision.Radius,
			LayerMask:   s.Collision.LayerMask,
			SmoothSpeed: s.Collision.SmoothSpeed,
		},
		PositionSmoothSpeed:  s.PositionSmoothSpeed,
		MinDistanceThreshold: s.MinDistanceThreshold,
		Reset: camera.ResetBehavior{
			ResetPitch: s.Reset.ResetPitch,
			PitchAngle: s.Reset.PitchAngle,
		},
		Lock: camera.LockRotation{
			Enabled: s.LockRotation.Enabled,
			Pitch:   s.LockRotation.Pitch,
			Yaw:     s.LockRotation.Yaw,
			Roll:    s.LockRotation.Roll,
		},
		DisableVerticalInput: s.DisableVerticalInput,
		MaintainYawOnUnlock:  s.MaintainYawOnUnlock,
	}
	if err := p.Validate(); err != nil {
		return camera.TrackingProfile{}, err
	}
	return p, nil
}

// Parse unmarshals a yaml document into a spec type.
func Parse[T any](data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, fmt.Errorf("profiles: unmarshal: %w", err)
	}
	return spec, nil
}

// LoadSpec reads a profile asset (disk override first, then embedded) and
// parses it.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("profiles: load %s: %w", filename, err)
	}
	spec, err := Parse[T](data)
	if err != nil {
		return zero, fmt.Errorf("profiles: %s: %w", filename, err)
	}
	return spec, nil
}

// LoadProfile reads, parses and validates one profile file.
func LoadProfile(filename string) (camera.TrackingProfile, error) {
	spec, err := LoadSpec[ProfileSpec](filename)
	if err != nil {
		return camera.TrackingProfile{}, err
	}
	p, err := spec.Profile()
	if err != nil {
		return camera.TrackingProfile{}, fmt.Errorf("profiles: %s: %w", filename, err)
	}
	return p, nil
}

// LoadList resolves an ordered list of profile files.
func LoadList(filenames []string) ([]camera.TrackingProfile, error) {
	out := make([]camera.TrackingProfile, 0, len(filenames))
	for _, name := range filenames {
		p, err := LoadProfile(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
