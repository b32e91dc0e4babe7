package springsim

// Profile sets the spring response for a secondary motion group. Stiffness
// pulls the offset back to rest, damping bleeds velocity, and MaxStretch caps
// the swing angle in radians.
type Profile struct {
	Stiffness  float32
	Damping    float32
	MaxStretch float32
}

var (
	// HairProfile is loose and springy with a wide swing.
	HairProfile = Profile{Stiffness: 12, Damping: 0.7, MaxStretch: 0.4}
	// ClothProfile is slower and heavier than hair.
	ClothProfile = Profile{Stiffness: 10, Damping: 0.6, MaxStretch: 0.5}
	// UpperProfile keeps torso sway stiff and subtle.
	UpperProfile = Profile{Stiffness: 20, Damping: 0.9, MaxStretch: 0.15}
)

// ProfileForGroup returns the built-in profile for a secondary motion group
// name as produced by the rig classifier. Unknown groups get the cloth
// response, the middle of the road.
func ProfileForGroup(group string) Profile {
	switch group {
	case "hair":
		return HairProfile
	case "upper":
		return UpperProfile
	default:
		return ClothProfile
	}
}
