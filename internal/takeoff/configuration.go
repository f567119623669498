// Package takeoff computes take-off performance from closed-form aerodynamic
// equations: transition speed, lift and drag coefficients, climb angle, the
// transition arc, and the total distance needed to clear an obstacle.
//
// Every function in this package is pure. Nothing is cached between calls, so
// the package is safe for concurrent use without synchronization.
package takeoff

import (
	"fmt"
	"math"
)

// Configuration is the flat parameter record for one take-off scenario.
// It is consumed by value and never mutated.
type Configuration struct {
	StallSpeed         float64 `toml:"stall_speed_fps" json:"stall_speed_fps"`               // V_s1, ft/s
	ThrustAtRotation   float64 `toml:"thrust_at_rotation_lbf" json:"thrust_at_rotation_lbf"` // thrust at V_R, lbf
	Weight             float64 `toml:"weight_lbf" json:"weight_lbf"`                         // lbf
	MinDragCoefficient float64 `toml:"min_drag_coefficient" json:"min_drag_coefficient"`     // C_Dmin

	// MaxLiftCoefficient is C_Lmax in the take-off configuration. It is
	// carried with the scenario but no formula reads it.
	MaxLiftCoefficient float64 `toml:"max_lift_coefficient" json:"max_lift_coefficient"`

	WingArea float64 `toml:"wing_area_sqft" json:"wing_area_sqft"` // S, ft²

	// InducedDragConstant is the k of the parabolic drag polar. It is taken
	// as given; nothing here derives it from aspect ratio or efficiency.
	InducedDragConstant float64 `toml:"induced_drag_constant" json:"induced_drag_constant"`

	GroundRollDistance float64 `toml:"ground_roll_ft" json:"ground_roll_ft"` // S_gr, ft
}

// Validate reports ErrInvalidInput for the first field that cannot feed the
// formulas.
func (c Configuration) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"stall speed", c.StallSpeed},
		{"weight", c.Weight},
		{"wing area", c.WingArea},
	}
	for _, f := range positive {
		if !isFinite(f.value) || f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidInput, f.name, f.value)
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"thrust at rotation", c.ThrustAtRotation},
		{"minimum drag coefficient", c.MinDragCoefficient},
		{"induced drag constant", c.InducedDragConstant},
		{"ground roll distance", c.GroundRollDistance},
	}
	for _, f := range nonNegative {
		if !isFinite(f.value) || f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidInput, f.name, f.value)
		}
	}

	if math.IsNaN(c.MaxLiftCoefficient) {
		return fmt.Errorf("%w: maximum lift coefficient is NaN", ErrInvalidInput)
	}

	return nil
}

func validateObstacleHeight(h float64) error {
	if !isFinite(h) || h < 0 {
		return fmt.Errorf("%w: obstacle height must be a non-negative number of feet, got %v", ErrInvalidInput, h)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
