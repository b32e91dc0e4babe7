package settings

import (
	"os"

	"github.com/RestartFU/gophig"

	"github.com/animus-rig/animus/aerror"
	"github.com/animus-rig/animus/motion"
	"github.com/animus-rig/animus/springsim"
)

// Settings contains all tunables of the animation core. Numeric fields left
// at zero fall back to the package defaults, so a partially filled config
// file still yields a working character.
type Settings struct {
	Movement struct {
		// WalkSpeed is the target speed in units per second while moving
		// without sprint.
		WalkSpeed float32
		// SprintSpeed is the target speed in units per second while the
		// sprint input is held.
		SprintSpeed float32
		// AccelRate is the exponential approach rate used while speeding up.
		AccelRate float32
		// DecelRate is the exponential approach rate used while slowing
		// down. Stopping is snappier than starting.
		DecelRate float32
	}
	Locomotion struct {
		// WalkThreshold is the speed above which the character leaves idle.
		WalkThreshold float32
		// RunThreshold is the speed above which the character starts
		// running.
		RunThreshold float32
		// Crossfade is the duration in seconds of the blend between gait
		// clips.
		Crossfade float32
	}
	Procedural struct {
		// Disabled turns off the turn-lag layer entirely.
		Disabled bool
		// TurnGate is the angular speed in radians per second below which
		// no lag offsets are applied.
		TurnGate float32
		// SpineFactor scales the spine counter-rotation against turn rate.
		SpineFactor float32
		// HeadFactor scales the head counter-rotation against turn rate.
		HeadFactor float32
		// ShoulderFactor scales the shoulder counter-rotations against
		// turn rate.
		ShoulderFactor float32
	}
	Springs struct {
		// Disabled turns off spring-driven secondary motion entirely.
		Disabled bool
		// Hair is the spring profile applied to hair bone chains.
		Hair springsim.Profile
		// Cloth is the spring profile applied to cloth bone chains.
		Cloth springsim.Profile
		// Upper is the stiff profile applied to spine and chest bones.
		Upper springsim.Profile
	}
}

// Default returns the default settings every tunable starts from.
func Default() Settings {
	s := Settings{}
	s.Movement.WalkSpeed = motion.WalkSpeed
	s.Movement.SprintSpeed = motion.SprintSpeed
	s.Movement.AccelRate = motion.AccelRate
	s.Movement.DecelRate = motion.DecelRate

	s.Locomotion.WalkThreshold = motion.WalkThreshold
	s.Locomotion.RunThreshold = motion.RunThreshold
	s.Locomotion.Crossfade = motion.CrossfadeDuration

	s.Procedural.TurnGate = motion.TurnRateGate
	s.Procedural.SpineFactor = motion.SpineLagFactor
	s.Procedural.HeadFactor = motion.HeadLagFactor
	s.Procedural.ShoulderFactor = motion.ShoulderLagFactor

	s.Springs.Hair = springsim.HairProfile
	s.Springs.Cloth = springsim.ClothProfile
	s.Springs.Upper = springsim.UpperProfile
	return s
}

// Normalized returns a copy of the settings with zero-valued tunables
// replaced by their defaults. Disabled flags are kept as-is.
func (s Settings) Normalized() Settings {
	d := Default()
	if s.Movement.WalkSpeed == 0 {
		s.Movement.WalkSpeed = d.Movement.WalkSpeed
	}
	if s.Movement.SprintSpeed == 0 {
		s.Movement.SprintSpeed = d.Movement.SprintSpeed
	}
	if s.Movement.AccelRate == 0 {
		s.Movement.AccelRate = d.Movement.AccelRate
	}
	if s.Movement.DecelRate == 0 {
		s.Movement.DecelRate = d.Movement.DecelRate
	}
	if s.Locomotion.WalkThreshold == 0 {
		s.Locomotion.WalkThreshold = d.Locomotion.WalkThreshold
	}
	if s.Locomotion.RunThreshold == 0 {
		s.Locomotion.RunThreshold = d.Locomotion.RunThreshold
	}
	if s.Locomotion.Crossfade == 0 {
		s.Locomotion.Crossfade = d.Locomotion.Crossfade
	}
	if s.Procedural.TurnGate == 0 {
		s.Procedural.TurnGate = d.Procedural.TurnGate
	}
	if s.Procedural.SpineFactor == 0 {
		s.Procedural.SpineFactor = d.Procedural.SpineFactor
	}
	if s.Procedural.HeadFactor == 0 {
		s.Procedural.HeadFactor = d.Procedural.HeadFactor
	}
	if s.Procedural.ShoulderFactor == 0 {
		s.Procedural.ShoulderFactor = d.Procedural.ShoulderFactor
	}
	if s.Springs.Hair == (springsim.Profile{}) {
		s.Springs.Hair = d.Springs.Hair
	}
	if s.Springs.Cloth == (springsim.Profile{}) {
		s.Springs.Cloth = d.Springs.Cloth
	}
	if s.Springs.Upper == (springsim.Profile{}) {
		s.Springs.Upper = d.Springs.Upper
	}
	return s
}

// Load reads settings from a TOML file, creating the file with defaults
// when it does not exist. The file is rewritten after reading so tunables
// added in newer versions show up in older files.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := gophig.SetConfComplex(path, gophig.TOMLMarshaler{}, Default(), 0777); err != nil {
			return Settings{}, aerror.New("settings: creating %s: %v", path, err)
		}
	}
	s := Settings{}
	if err := gophig.GetConfComplex(path, gophig.TOMLMarshaler{}, &s); err != nil {
		return Settings{}, aerror.New("settings: reading %s: %v", path, err)
	}
	s = s.Normalized()
	if err := gophig.SetConfComplex(path, gophig.TOMLMarshaler{}, s, 0777); err != nil {
		return Settings{}, aerror.New("settings: writing %s: %v", path, err)
	}
	return s, nil
}

// Save writes settings to a TOML file, overwriting any previous contents.
func Save(path string, s Settings) error {
	if err := gophig.SetConfComplex(path, gophig.TOMLMarshaler{}, s, 0777); err != nil {
		return aerror.New("settings: writing %s: %v", path, err)
	}
	return nil
}
