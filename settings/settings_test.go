package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizedFillsDefaults(t *testing.T) {
	s := Settings{}.Normalized()
	d := Default()
	if s != d {
		t.Fatalf("expected zero settings to normalize to defaults, got %+v", s)
	}
}

func TestNormalizedKeepsExplicitValues(t *testing.T) {
	s := Settings{}
	s.Movement.SprintSpeed = 8
	s.Locomotion.RunThreshold = 6
	s.Springs.Disabled = true
	s = s.Normalized()

	if s.Movement.SprintSpeed != 8 {
		t.Fatalf("expected sprint speed 8, got %v", s.Movement.SprintSpeed)
	}
	if s.Locomotion.RunThreshold != 6 {
		t.Fatalf("expected run threshold 6, got %v", s.Locomotion.RunThreshold)
	}
	if !s.Springs.Disabled {
		t.Fatal("expected springs to stay disabled")
	}
	if s.Movement.WalkSpeed != Default().Movement.WalkSpeed {
		t.Fatalf("expected walk speed to fall back to default, got %v", s.Movement.WalkSpeed)
	}
}

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animus.toml")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if s != Default() {
		t.Fatalf("expected defaults from a fresh file, got %+v", s)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected settings file to be created: %v", err)
	}
}

func TestLoadNormalizesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animus.toml")
	partial := "[Movement]\nWalkSpeed = 3.0\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("writing partial file: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if s.Movement.WalkSpeed != 3 {
		t.Fatalf("expected explicit walk speed 3, got %v", s.Movement.WalkSpeed)
	}
	if s.Movement.SprintSpeed != Default().Movement.SprintSpeed {
		t.Fatalf("expected default sprint speed, got %v", s.Movement.SprintSpeed)
	}
	if s.Springs.Hair != Default().Springs.Hair {
		t.Fatalf("expected default hair profile, got %+v", s.Springs.Hair)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animus.toml")
	want := Default()
	want.Movement.WalkSpeed = 2.5
	want.Procedural.Disabled = true
	if err := Save(path, want); err != nil {
		t.Fatalf("expected save to succeed, got %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
