package motion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ClampDt sanitizes a frame delta. Non-positive or NaN deltas fall back to a
// nominal 60hz step, and oversized deltas are capped so a frame hitch cannot
// destabilize the integrators downstream.
func ClampDt(dt float32) float32 {
	if math32.IsNaN(dt) || dt <= 0 {
		return FallbackDeltaTime
	}
	if dt > MaxDeltaTime {
		return MaxDeltaTime
	}
	return dt
}

// WrapAngle wraps an angle in radians to the (-pi, pi] range.
func WrapAngle(theta float32) float32 {
	theta = math32.Mod(theta, 2*math32.Pi)
	if theta > math32.Pi {
		theta -= 2 * math32.Pi
	} else if theta <= -math32.Pi {
		theta += 2 * math32.Pi
	}
	return theta
}

// ApproachExp moves current towards target with exponential smoothing that
// stays stable across variable frame deltas.
func ApproachExp(current, target, rate, dt float32) float32 {
	return current + (target-current)*(1-math32.Exp(-rate*dt))
}

// TurnTowards steps a heading towards a target heading along the shortest
// arc. The step is a fixed fraction of the remaining error, capped by the
// turn rate limit, so large errors neither snap nor overshoot.
func TurnTowards(heading, target, dt float32) float32 {
	step := WrapAngle(target-heading) * HeadingSmoothing
	limit := MaxTurnRate * dt
	step = mgl32.Clamp(step, -limit, limit)
	return WrapAngle(heading + step)
}

// DirectionFromHeading returns the planar forward vector for a heading angle
// in radians about the world Y axis.
func DirectionFromHeading(heading float32) mgl32.Vec3 {
	return mgl32.Vec3{-math32.Sin(heading), 0, math32.Cos(heading)}
}

// HeadingFromDirection returns the heading angle in radians for a planar
// direction vector. A vector with no horizontal component yields zero.
func HeadingFromDirection(dir mgl32.Vec3) float32 {
	if dir.X() == 0 && dir.Z() == 0 {
		return 0
	}
	return math32.Atan2(-dir.X(), dir.Z())
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// PlanarSpeed returns the horizontal magnitude of a velocity vector.
func PlanarSpeed(vel mgl32.Vec3) float32 {
	return math32.Sqrt(Vec3HzDistSqr(vel))
}

// QuatFromOffset converts a rotational offset vector into a quaternion whose
// axis is the offset direction and whose angle is the offset magnitude.
// Offsets below the pose epsilon collapse to identity.
func QuatFromOffset(offset mgl32.Vec3) mgl32.Quat {
	angle := offset.Len()
	if angle < PoseEpsilon {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatRotate(angle, offset.Mul(1/angle))
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// MinVec3 returns the component-wise minimum of the given vectors.
func MinVec3(vecs []mgl32.Vec3) mgl32.Vec3 {
	min := mgl32.Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32}
	for _, v := range vecs {
		min[0] = math32.Min(min[0], v[0])
		min[1] = math32.Min(min[1], v[1])
		min[2] = math32.Min(min[2], v[2])
	}
	return min
}

// MaxVec3 returns the component-wise maximum of the given vectors.
func MaxVec3(vecs []mgl32.Vec3) mgl32.Vec3 {
	max := mgl32.Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32}
	for _, v := range vecs {
		max[0] = math32.Max(max[0], v[0])
		max[1] = math32.Max(max[1], v[1])
		max[2] = math32.Max(max[2], v[2])
	}
	return max
}
