package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/followcam/camera"
	"github.com/milk9111/followcam/profiles"
	"github.com/milk9111/followcam/world"
)

// Vec3Spec is a yaml-friendly world coordinate.
type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) vec() mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

// ObstacleSpec is one collider in the level: a box (min/max) or a sphere
// (center/radius).
type ObstacleSpec struct {
	Name   string   `yaml:"name"`
	Type   string   `yaml:"type"` // "box" or "sphere"
	Min    Vec3Spec `yaml:"min"`
	Max    Vec3Spec `yaml:"max"`
	Center Vec3Spec `yaml:"center"`
	Radius float64  `yaml:"radius"`
	Layer  uint32   `yaml:"layer"`
	Pickup bool     `yaml:"pickup"`
}

// ZoneSpec is a trigger volume carrying the camera profiles it installs.
type ZoneSpec struct {
	ID       string   `yaml:"id"`
	Profiles []string `yaml:"profiles"`
	Min      Vec3Spec `yaml:"min"`
	Max      Vec3Spec `yaml:"max"`
}

// SubjectSpec is the tracked character's starting pose.
type SubjectSpec struct {
	Position Vec3Spec `yaml:"position"`
	Yaw      float64  `yaml:"yaw"`
	Speed    float64  `yaml:"speed"`
}

// LevelSpec mirrors one level yaml file.
type LevelSpec struct {
	Name                  string         `yaml:"name"`
	Subject               SubjectSpec    `yaml:"subject"`
	Profiles              []string       `yaml:"profiles"`
	ViewTransitionSeconds float64        `yaml:"view_transition_seconds"`
	ZoneTransitionSeconds float64        `yaml:"zone_transition_seconds"`
	Script                string         `yaml:"script"`
	Obstacles             []ObstacleSpec `yaml:"obstacles"`
	Zones                 []ZoneSpec     `yaml:"zones"`
}

// Level is a loaded, resolved level: the collision world, the subject, the
// zone triggers, and the camera profile lists by zone id.
type Level struct {
	Spec LevelSpec

	World    *world.World
	Subject  *world.Subject
	Triggers []*world.TriggerBox

	BaseProfiles []camera.TrackingProfile
	ZoneProfiles map[string][]camera.TrackingProfile
}

// LoadLevel reads a level yaml (disk override first, then embedded) and
// resolves everything it references.
func LoadLevel(name string) (*Level, error) {
	data, err := loadLevelAsset(name)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", name, err)
	}
	spec, err := profiles.Parse[LevelSpec](data)
	if err != nil {
		return nil, fmt.Errorf("level: %s: %w", name, err)
	}
	return buildLevel(spec)
}

func buildLevel(spec LevelSpec) (*Level, error) {
	if len(spec.Profiles) == 0 {
		return nil, fmt.Errorf("level %q: no camera profiles", spec.Name)
	}

	base, err := profiles.LoadList(spec.Profiles)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", spec.Name, err)
	}

	zoneProfiles := make(map[string][]camera.TrackingProfile, len(spec.Zones))
	for _, z := range spec.Zones {
		list, err := profiles.LoadList(z.Profiles)
		if err != nil {
			return nil, fmt.Errorf("level %q: zone %q: %w", spec.Name, z.ID, err)
		}
		zoneProfiles[z.ID] = list
	}

	w := world.New()
	for _, o := range spec.Obstacles {
		layer := o.Layer
		if layer == 0 {
			layer = 0x1
		}
		col := world.Collider{Layer: layer, Pickup: o.Pickup, Node: world.NewNode(o.Name, nil)}
		switch o.Type {
		case "sphere":
			w.AddSphere(&world.Sphere{Collider: col, Center: o.Center.vec(), Radius: o.Radius})
		case "box", "":
			w.AddBox(&world.Box{Collider: col, Min: o.Min.vec(), Max: o.Max.vec()})
		default:
			return nil, fmt.Errorf("level %q: obstacle %q: unknown type %q", spec.Name, o.Name, o.Type)
		}
	}

	subject := world.NewSubject("subject", spec.Subject.Position.vec())
	subject.SetFacingYaw(spec.Subject.Yaw)

	triggers := make([]*world.TriggerBox, 0, len(spec.Zones))
	for _, z := range spec.Zones {
		triggers = append(triggers, &world.TriggerBox{
			ZoneID:   z.ID,
			Profiles: z.Profiles,
			Min:      z.Min.vec(),
			Max:      z.Max.vec(),
		})
	}

	return &Level{
		Spec:         spec,
		World:        w,
		Subject:      subject,
		Triggers:     triggers,
		BaseProfiles: base,
		ZoneProfiles: zoneProfiles,
	}, nil
}
