package takeoff

import (
	"fmt"
	"math"
)

const (
	// SeaLevelDensity is standard sea-level air density, slug/ft³.
	SeaLevelDensity = 0.002378

	// TransitionSpeedFactor scales V_s1 to the mean transition speed.
	TransitionSpeedFactor = 1.15

	// TransitionRadiusFactor gives the transition arc radius from V_s1²,
	// R ≈ 0.2156 V_s1².
	TransitionRadiusFactor = 0.2156

	// minClimbTangent is the smallest tan(θ_climb) the climb segment accepts.
	minClimbTangent = 1e-6
)

// TransitionSpeed returns the mean speed over the transition arc, ft/s.
func TransitionSpeed(stallSpeed float64) float64 {
	return TransitionSpeedFactor * stallSpeed
}

// LiftCoefficient returns C_L = 2W / (ρ V² S) at sea level.
func LiftCoefficient(weight, speed, wingArea float64) float64 {
	return (2 * weight) / (SeaLevelDensity * speed * speed * wingArea)
}

// DragCoefficient returns C_D from the simplified drag polar C_Dmin + k C_L².
func DragCoefficient(minDrag, k, lift float64) float64 {
	return minDrag + k*lift*lift
}

// excessThrustRatio is T/W − 1/(L/D), the sine of the climb angle.
func excessThrustRatio(thrust, weight, lift, drag float64) float64 {
	return thrust/weight - drag/lift
}

// TransitionDistance returns S_TR ≈ 0.2156 V_s1² (T/W − 1/(L/D)), ft.
func TransitionDistance(stallSpeed, thrust, weight, lift, drag float64) float64 {
	return TransitionRadiusFactor * stallSpeed * stallSpeed * excessThrustRatio(thrust, weight, lift, drag)
}

// ClimbAngle returns the steady climb angle in degrees. When thrust cannot
// balance drag the sine falls outside [-1, 1] and ErrDomain is returned.
func ClimbAngle(thrust, weight, lift, drag float64) (float64, error) {
	sin := excessThrustRatio(thrust, weight, lift, drag)
	if math.IsNaN(sin) || sin < -1 || sin > 1 {
		return 0, fmt.Errorf("%w: climb angle sine %v outside [-1, 1]", ErrDomain, sin)
	}
	return radToDeg(math.Asin(sin)), nil
}

// TransitionRadius returns the transition arc radius, ft.
func TransitionRadius(stallSpeed float64) float64 {
	return TransitionRadiusFactor * stallSpeed * stallSpeed
}

// TransitionHeight returns the height gained over the transition arc,
// h_TR = R (1 − cos θ_climb), ft.
func TransitionHeight(radius, climbAngleDeg float64) float64 {
	return radius * (1 - math.Cos(degToRad(climbAngleDeg)))
}

// ClimbDistance returns the ground distance of the straight climb from the
// end of the transition to the obstacle height, ft. A climb angle whose
// tangent is zero, negative or vanishingly small never reaches the obstacle
// and yields ErrDomain.
func ClimbDistance(obstacleHeight, transitionHeight, climbAngleDeg float64) (float64, error) {
	tan := math.Tan(degToRad(climbAngleDeg))
	if math.IsNaN(tan) || tan < minClimbTangent {
		return 0, fmt.Errorf("%w: climb angle %v° has tangent %v, too shallow to climb", ErrDomain, climbAngleDeg, tan)
	}
	return (obstacleHeight - transitionHeight) / tan, nil
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
