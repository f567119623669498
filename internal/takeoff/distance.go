package takeoff

import "fmt"

// Breakdown holds every value derived while evaluating one take-off.
type Breakdown struct {
	ObstacleHeight     float64 `json:"obstacle_height_ft"`
	TransitionSpeed    float64 `json:"transition_speed_fps"`
	LiftCoefficient    float64 `json:"lift_coefficient"`
	DragCoefficient    float64 `json:"drag_coefficient"`
	TransitionDistance float64 `json:"transition_distance_ft"`
	ClimbAngle         float64 `json:"climb_angle_deg"`
	TransitionRadius   float64 `json:"transition_radius_ft"`
	TransitionHeight   float64 `json:"transition_height_ft"`
	GroundRollDistance float64 `json:"ground_roll_ft"`

	// ClimbRequired is false when the transition arc alone clears the
	// obstacle; ClimbDistance is then zero.
	ClimbRequired bool    `json:"climb_required"`
	ClimbDistance float64 `json:"climb_distance_ft"`

	TotalDistance float64 `json:"total_distance_ft"`
}

// Evaluate runs the full take-off calculation for one obstacle height.
//
// The ground roll and transition distance are always summed. A straight climb
// segment is added only when the transition height is strictly below the
// obstacle; equal heights count as cleared.
func Evaluate(obstacleHeight float64, cfg Configuration) (Breakdown, error) {
	if err := cfg.Validate(); err != nil {
		return Breakdown{}, err
	}
	if err := validateObstacleHeight(obstacleHeight); err != nil {
		return Breakdown{}, err
	}

	b := Breakdown{
		ObstacleHeight:     obstacleHeight,
		GroundRollDistance: cfg.GroundRollDistance,
	}

	b.TransitionSpeed = TransitionSpeed(cfg.StallSpeed)
	b.LiftCoefficient = LiftCoefficient(cfg.Weight, b.TransitionSpeed, cfg.WingArea)
	b.DragCoefficient = DragCoefficient(cfg.MinDragCoefficient, cfg.InducedDragConstant, b.LiftCoefficient)
	b.TransitionDistance = TransitionDistance(cfg.StallSpeed, cfg.ThrustAtRotation, cfg.Weight, b.LiftCoefficient, b.DragCoefficient)

	angle, err := ClimbAngle(cfg.ThrustAtRotation, cfg.Weight, b.LiftCoefficient, b.DragCoefficient)
	if err != nil {
		return Breakdown{}, err
	}
	b.ClimbAngle = angle

	b.TransitionRadius = TransitionRadius(cfg.StallSpeed)
	b.TransitionHeight = TransitionHeight(b.TransitionRadius, b.ClimbAngle)

	b.TotalDistance = b.GroundRollDistance + b.TransitionDistance

	if b.TransitionHeight < obstacleHeight {
		climb, err := ClimbDistance(obstacleHeight, b.TransitionHeight, b.ClimbAngle)
		if err != nil {
			return Breakdown{}, err
		}
		b.ClimbRequired = true
		b.ClimbDistance = climb
		b.TotalDistance += climb
	}

	if !isFinite(b.ClimbDistance) || !isFinite(b.TotalDistance) {
		return Breakdown{}, fmt.Errorf("%w: take-off distance over %v ft obstacle is not finite", ErrDomain, obstacleHeight)
	}

	return b, nil
}

// TakeOffDistance returns the total distance, ft, needed to take off and
// clear obstacleHeight.
func TakeOffDistance(obstacleHeight float64, cfg Configuration) (float64, error) {
	b, err := Evaluate(obstacleHeight, cfg)
	if err != nil {
		return 0, err
	}
	return b.TotalDistance, nil
}

// Sweep evaluates each obstacle height against the same configuration, in
// order. It stops at the first failure.
func Sweep(obstacleHeights []float64, cfg Configuration) ([]Breakdown, error) {
	out := make([]Breakdown, 0, len(obstacleHeights))
	for _, h := range obstacleHeights {
		b, err := Evaluate(h, cfg)
		if err != nil {
			return nil, fmt.Errorf("obstacle height %v ft: %w", h, err)
		}
		out = append(out, b)
	}
	return out, nil
}
