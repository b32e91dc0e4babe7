package rig

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

const (
	RoleHips          = "hips"
	RoleSpine         = "spine"
	RoleChest         = "chest"
	RoleNeck          = "neck"
	RoleHead          = "head"
	RoleLeftShoulder  = "left_shoulder"
	RoleRightShoulder = "right_shoulder"
)

// roleKeywords maps each role to the name fragments that identify it. Roles
// are resolved in this order, each claiming the first unclaimed bone whose
// lowercased name contains one of the fragments.
var roleKeywords = []struct {
	role     string
	keywords []string
	side     int
}{
	{role: RoleHips, keywords: []string{"hips", "pelvis"}},
	{role: RoleSpine, keywords: []string{"spine"}},
	{role: RoleChest, keywords: []string{"chest", "spine2", "ribcage"}},
	{role: RoleNeck, keywords: []string{"neck"}},
	{role: RoleHead, keywords: []string{"head"}},
	{role: RoleLeftShoulder, keywords: []string{"shoulder", "clavicle", "collar"}, side: -1},
	{role: RoleRightShoulder, keywords: []string{"shoulder", "clavicle", "collar"}, side: 1},
}

// KeyBones resolves the animation-relevant roles of a skeleton by name
// matching. The returned map iterates in role declaration order and only
// contains roles that resolved to a bone; missing roles degrade the layers
// that need them instead of failing the attach.
func KeyBones(s *Skeleton) *orderedmap.OrderedMap[string, *Bone] {
	roles := orderedmap.NewOrderedMap[string, *Bone]()
	if s == nil {
		return roles
	}

	claimed := map[*Bone]bool{}
	for _, entry := range roleKeywords {
		for _, bone := range s.Bones() {
			if claimed[bone] {
				continue
			}
			name := strings.ToLower(bone.Name)
			if !containsAny(name, entry.keywords) {
				continue
			}
			if entry.side < 0 && !isLeftSide(name) {
				continue
			}
			if entry.side > 0 && !isRightSide(name) {
				continue
			}

			roles.Set(entry.role, bone)
			claimed[bone] = true
			break
		}
	}

	return roles
}

const (
	GroupHair  = "hair"
	GroupCloth = "cloth"
	GroupUpper = "upper"
)

var springKeywords = []struct {
	group    string
	keywords []string
}{
	{group: GroupHair, keywords: []string{"hair", "ponytail", "braid", "bang"}},
	{group: GroupCloth, keywords: []string{"cloth", "skirt", "cape", "coat", "ribbon", "scarf", "tail"}},
	{group: GroupUpper, keywords: []string{"spine", "chest"}},
}

// SpringTarget pairs a bone with the secondary motion group its name places
// it in.
type SpringTarget struct {
	Bone  *Bone
	Group string
}

// SpringTargets classifies the bones of a skeleton into secondary motion
// groups, in discovery order. Groups are mutually exclusive and matched hair
// first, so a "hair_tail" bone sways like hair rather than like a cape.
func SpringTargets(s *Skeleton) []SpringTarget {
	var targets []SpringTarget
	if s == nil {
		return targets
	}
	for _, bone := range s.Bones() {
		name := strings.ToLower(bone.Name)
		for _, entry := range springKeywords {
			if containsAny(name, entry.keywords) {
				targets = append(targets, SpringTarget{Bone: bone, Group: entry.group})
				break
			}
		}
	}
	return targets
}

func containsAny(name string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}

// isLeftSide reports whether a lowercased bone name carries a left-side
// marker. Prefix and suffix forms cover the common rig naming schemes.
func isLeftSide(name string) bool {
	return strings.Contains(name, "left") ||
		strings.HasPrefix(name, "l_") ||
		strings.HasSuffix(name, "_l") ||
		strings.HasSuffix(name, ".l")
}

// isRightSide reports whether a lowercased bone name carries a right-side
// marker.
func isRightSide(name string) bool {
	return strings.Contains(name, "right") ||
		strings.HasPrefix(name, "r_") ||
		strings.HasSuffix(name, "_r") ||
		strings.HasSuffix(name, ".r")
}
