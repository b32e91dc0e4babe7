package rig

import (
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func anomalyTypes(anomalies []Anomaly) map[string]int {
	types := map[string]int{}
	for _, a := range anomalies {
		types[a.Type]++
	}
	return types
}

func TestValidateCleanRig(t *testing.T) {
	anomalies := Validate(humanoidFixture())
	if len(anomalies) != 0 {
		t.Fatalf("expected no anomalies on a clean rig, got %v", anomalies)
	}
}

func TestValidateFlagsBadData(t *testing.T) {
	root := &Bone{Name: "Hips"}
	root.Children = []*Bone{
		{Name: "bone"},
		{Name: "bone"},
		{Name: "Head", Position: mgl32.Vec3{math32.NaN(), 0, 0}},
		{Name: "squashed", Scale: mgl32.Vec3{0.0001, -1, 1}},
	}
	anomalies := Validate(NewSkeleton(root))

	types := anomalyTypes(anomalies)
	if types[AnomalyDuplicateName] != 1 {
		t.Fatalf("expected one duplicate name anomaly, got %v", anomalies)
	}
	if types[AnomalyInvalidTransform] != 1 {
		t.Fatalf("expected one invalid transform anomaly, got %v", anomalies)
	}
	if types[AnomalyDegenerateScale] != 1 {
		t.Fatalf("expected one degenerate scale anomaly, got %v", anomalies)
	}
}

func TestValidateFlagsMissingRoles(t *testing.T) {
	anomalies := Validate(NewSkeleton(&Bone{Name: "prop"}))
	types := anomalyTypes(anomalies)
	if types[AnomalyMissingRole] != len(requiredRoles) {
		t.Fatalf("expected %v missing role anomalies, got %v", len(requiredRoles), anomalies)
	}
}

func TestAnomalyString(t *testing.T) {
	root := &Bone{Name: "Hips", Position: mgl32.Vec3{0, math32.NaN(), 0}}
	root.Children = []*Bone{{Name: "Head"}}
	anomalies := Validate(NewSkeleton(root))
	if len(anomalies) != 1 {
		t.Fatalf("expected a single anomaly, got %v", anomalies)
	}

	out := anomalies[0].String()
	if !strings.Contains(out, AnomalyInvalidTransform) || !strings.Contains(out, "Hips") {
		t.Fatalf("expected formatted anomaly with bone name, got %q", out)
	}
}
