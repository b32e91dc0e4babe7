package rig

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	AnomalyDuplicateName    = "duplicate_name"
	AnomalyInvalidTransform = "invalid_transform"
	AnomalyDegenerateScale  = "degenerate_scale"
	AnomalyMissingRole      = "missing_role"
)

// requiredRoles are the roles a humanoid rig cannot reasonably miss. Their
// absence is flagged so the host can see why a layer degraded, but it never
// aborts an attach.
var requiredRoles = []string{RoleHips, RoleHead}

// Anomaly describes a suspicious skeleton feature found during inspection.
type Anomaly struct {
	Type string
	Bone string
	Data *orderedmap.OrderedMap[string, any]
}

// String formats the anomaly with its detail data for logs.
func (a Anomaly) String() string {
	out := a.Type
	if a.Bone != "" {
		out += " on " + a.Bone
	}
	if a.Data == nil || a.Data.Len() == 0 {
		return out
	}

	out += " ["
	count := a.Data.Len()
	for _, key := range a.Data.Keys() {
		v, _ := a.Data.Get(key)
		out += fmt.Sprintf("%s=%v", key, v)

		count--
		if count > 0 {
			out += " "
		}
	}
	out += "]"

	return out
}

// Validate inspects a skeleton for data that would degrade the animation
// layers and returns one anomaly per finding. Anomalies are advisory; the
// caller decides whether to log them, surface them, or ignore them.
func Validate(s *Skeleton) []Anomaly {
	var anomalies []Anomaly
	if s == nil {
		return anomalies
	}

	seen := map[string]int{}
	for _, bone := range s.Bones() {
		seen[bone.Name]++
	}
	for _, bone := range s.Bones() {
		if seen[bone.Name] > 1 {
			data := orderedmap.NewOrderedMap[string, any]()
			data.Set("count", seen[bone.Name])
			anomalies = append(anomalies, Anomaly{Type: AnomalyDuplicateName, Bone: bone.Name, Data: data})
			seen[bone.Name] = 0
		}

		if !finiteVec(bone.Position) || !finiteQuat(bone.Rotation) {
			data := orderedmap.NewOrderedMap[string, any]()
			data.Set("position", bone.Position)
			data.Set("rotation", bone.Rotation)
			anomalies = append(anomalies, Anomaly{Type: AnomalyInvalidTransform, Bone: bone.Name, Data: data})
		}

		if bone.Scale.X() <= 0 || bone.Scale.Y() <= 0 || bone.Scale.Z() <= 0 {
			data := orderedmap.NewOrderedMap[string, any]()
			data.Set("scale", bone.Scale)
			anomalies = append(anomalies, Anomaly{Type: AnomalyDegenerateScale, Bone: bone.Name, Data: data})
		}
	}

	roles := KeyBones(s)
	for _, role := range requiredRoles {
		if _, ok := roles.Get(role); !ok {
			data := orderedmap.NewOrderedMap[string, any]()
			data.Set("role", role)
			anomalies = append(anomalies, Anomaly{Type: AnomalyMissingRole, Data: data})
		}
	}

	return anomalies
}

func finiteVec(v mgl32.Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func finiteQuat(q mgl32.Quat) bool {
	l := q.Len()
	return !math32.IsNaN(l) && !math32.IsInf(l, 0)
}
