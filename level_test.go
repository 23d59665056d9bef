package main

import (
	"strings"
	"testing"
)

func TestLoadLevelCourtyard(t *testing.T) {
	lvl, err := LoadLevel("courtyard.yaml")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if got := len(lvl.BaseProfiles); got != 3 {
		t.Fatalf("base profiles = %d, want 3", got)
	}
	if lvl.BaseProfiles[0].Name != "default" {
		t.Fatalf("first profile = %q, want default", lvl.BaseProfiles[0].Name)
	}
	if lvl.Subject == nil || lvl.World == nil {
		t.Fatal("level missing subject or world")
	}
	if got := len(lvl.Triggers); got != 1 {
		t.Fatalf("triggers = %d, want 1", got)
	}
	vista, ok := lvl.ZoneProfiles[lvl.Triggers[0].ZoneID]
	if !ok {
		t.Fatalf("no profile list for zone %q", lvl.Triggers[0].ZoneID)
	}
	if len(vista) == 0 || !vista[0].Lock.Enabled {
		t.Fatal("vista zone should install a locked profile")
	}
}

func TestBuildLevelErrors(t *testing.T) {
	cases := []struct {
		name    string
		spec    LevelSpec
		wantErr string
	}{
		{
			name:    "no_profiles",
			spec:    LevelSpec{Name: "empty"},
			wantErr: "no camera profiles",
		},
		{
			name: "unknown_profile_file",
			spec: LevelSpec{
				Name:     "bad_profile",
				Profiles: []string{"nope.yaml"},
			},
			wantErr: "nope.yaml",
		},
		{
			name: "unknown_obstacle_type",
			spec: LevelSpec{
				Name:     "bad_obstacle",
				Profiles: []string{"default.yaml"},
				Obstacles: []ObstacleSpec{
					{Name: "blob", Type: "capsule"},
				},
			},
			wantErr: "unknown type",
		},
		{
			name: "bad_zone_profile",
			spec: LevelSpec{
				Name:     "bad_zone",
				Profiles: []string{"default.yaml"},
				Zones: []ZoneSpec{
					{ID: "vista", Profiles: []string{"missing.yaml"}},
				},
			},
			wantErr: `zone "vista"`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := buildLevel(c.spec)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("error %q does not mention %q", err, c.wantErr)
			}
		})
	}
}
