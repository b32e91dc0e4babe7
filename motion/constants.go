package motion

const (
	FallbackDeltaTime = float32(1.0 / 60.0)
	MaxDeltaTime      = float32(0.1)
)

const (
	WalkThreshold = float32(0.1)
	RunThreshold  = float32(4.0)

	WalkSpeed   = float32(2.0)
	SprintSpeed = float32(5.0)

	AccelRate   = float32(8.0)
	DecelRate   = float32(12.0)
	StopEpsilon = float32(0.01)

	HeadingSmoothing = float32(0.15)
	MaxTurnRate      = float32(10.0)
)

const (
	CrossfadeDuration = float32(0.25)

	WalkRateMin = float32(0.8)
	WalkRateMax = float32(1.3)
	RunRateMax  = float32(1.5)
)

const (
	TurnRateGate      = float32(0.1)
	SpineLagFactor    = float32(0.1)
	HeadLagFactor     = float32(0.15)
	ShoulderLagFactor = float32(0.08)
)

const (
	VelocityDriveFactor = float32(-0.5)
	AccelDriveFactor    = float32(-0.3)
	ClampVelocityRetain = float32(0.5)
	PoseEpsilon         = float32(1e-3)
)
