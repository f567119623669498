package takeoff

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceConfig is a light single at 3400 lbf; 108 ft/s is about 64 KCAS.
func referenceConfig() Configuration {
	return Configuration{
		StallSpeed:          108.0,
		ThrustAtRotation:    908,
		Weight:              3400,
		MinDragCoefficient:  0.0350,
		MaxLiftCoefficient:  1.69,
		WingArea:            144.9,
		InducedDragConstant: 0.04207,
		GroundRollDistance:  1038.0,
	}
}

func TestFormulas(t *testing.T) {
	assert.InDelta(t, 124.2, TransitionSpeed(108), 0.05)
	assert.InDelta(t, 1.279, LiftCoefficient(3400, 124.2, 144.9), 5e-4)
	assert.InDelta(t, 0.1038, DragCoefficient(0.0350, 0.04207, 1.279), 5e-5)
	assert.InDelta(t, 2515, TransitionRadius(108), 0.5)
	assert.InDelta(t, 467, TransitionDistance(108, 908, 3400, 1.279, 0.1038), 0.5)
	assert.InDelta(t, 43.7, TransitionHeight(2515, 10.7), 0.05)

	angle, err := ClimbAngle(908, 3400, 1.279, 0.1038)
	require.NoError(t, err)
	assert.InDelta(t, 10.7, angle, 0.05)

	climb, err := ClimbDistance(50, 43.7, 10.7)
	require.NoError(t, err)
	assert.InDelta(t, 33, climb, 0.5)
}

func TestTransitionSpeedRelativeTolerance(t *testing.T) {
	assert.InEpsilon(t, 124.2, TransitionSpeed(108), 1e-3)
}

func TestClimbAngleOutsideDomain(t *testing.T) {
	tests := []struct {
		name   string
		thrust float64
		weight float64
	}{
		{"thrust far above weight", 5000, 3400},
		{"negative thrust beyond weight", -5000, 3400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ClimbAngle(tt.thrust, tt.weight, 1.279, 0.1038)
			assert.ErrorIs(t, err, ErrDomain)
		})
	}
}

func TestClimbDistanceShallowAngle(t *testing.T) {
	for _, angle := range []float64{0, 1e-9, -3} {
		_, err := ClimbDistance(50, 0, angle)
		assert.ErrorIs(t, err, ErrDomain, "angle %v", angle)
	}
}

func TestTakeOffDistance(t *testing.T) {
	tests := []struct {
		name          string
		obstacle      float64
		want          float64
		climbRequired bool
	}{
		{"transition greater than obstacle", 30, 1505, false},
		{"transition less than obstacle", 50, 1538, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TakeOffDistance(tt.obstacle, referenceConfig())
			require.NoError(t, err)
			assert.Equal(t, tt.want, math.Round(got))

			b, err := Evaluate(tt.obstacle, referenceConfig())
			require.NoError(t, err)
			assert.Equal(t, tt.climbRequired, b.ClimbRequired)
			assert.Equal(t, got, b.TotalDistance)
		})
	}
}

func TestEvaluateBreakdown(t *testing.T) {
	b, err := Evaluate(50, referenceConfig())
	require.NoError(t, err)

	assert.InDelta(t, 124.2, b.TransitionSpeed, 0.05)
	assert.InDelta(t, 1.279, b.LiftCoefficient, 5e-4)
	assert.InDelta(t, 0.1038, b.DragCoefficient, 5e-5)
	assert.InDelta(t, 10.7, b.ClimbAngle, 0.05)
	assert.InDelta(t, 2515, b.TransitionRadius, 0.5)
	assert.InDelta(t, 467, b.TransitionDistance, 0.5)
	assert.Less(t, b.TransitionHeight, 50.0)
	assert.Greater(t, b.TransitionHeight, 30.0)
	assert.InDelta(t, b.GroundRollDistance+b.TransitionDistance+b.ClimbDistance, b.TotalDistance, 1e-9)
}

func TestObstacleAtTransitionHeightTakesNoClimbBranch(t *testing.T) {
	cfg := referenceConfig()
	ground, err := Evaluate(0, cfg)
	require.NoError(t, err)

	b, err := Evaluate(ground.TransitionHeight, cfg)
	require.NoError(t, err)
	assert.False(t, b.ClimbRequired)
	assert.Zero(t, b.ClimbDistance)
	assert.Equal(t, ground.TotalDistance, b.TotalDistance)
}

func TestDistanceMonotoneInObstacleHeight(t *testing.T) {
	heights := make([]float64, 0, 101)
	for h := 0.0; h <= 200; h += 2 {
		heights = append(heights, h)
	}

	results, err := Sweep(heights, referenceConfig())
	require.NoError(t, err)
	require.Len(t, results, len(heights))

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i].TotalDistance, results[i-1].TotalDistance,
			"h=%v", results[i].ObstacleHeight)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	cfg := referenceConfig()
	first, err := Evaluate(50, cfg)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			again, err := Evaluate(50, cfg)
			assert.NoError(t, err)
			assert.Equal(t, first, again)
		}()
	}
	wg.Wait()
	assert.Equal(t, referenceConfig(), cfg)
}

func TestMaxLiftCoefficientIsNotUsed(t *testing.T) {
	cfg := referenceConfig()
	want, err := TakeOffDistance(50, cfg)
	require.NoError(t, err)

	cfg.MaxLiftCoefficient = 0
	got, err := TakeOffDistance(50, cfg)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEvaluateInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Configuration)
		obstacle float64
	}{
		{"zero weight", func(c *Configuration) { c.Weight = 0 }, 50},
		{"negative wing area", func(c *Configuration) { c.WingArea = -1 }, 50},
		{"zero stall speed", func(c *Configuration) { c.StallSpeed = 0 }, 50},
		{"NaN stall speed", func(c *Configuration) { c.StallSpeed = math.NaN() }, 50},
		{"negative thrust", func(c *Configuration) { c.ThrustAtRotation = -1 }, 50},
		{"infinite ground roll", func(c *Configuration) { c.GroundRollDistance = math.Inf(1) }, 50},
		{"negative obstacle", func(c *Configuration) {}, -1},
		{"NaN obstacle", func(c *Configuration) {}, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := referenceConfig()
			tt.mutate(&cfg)
			_, err := TakeOffDistance(tt.obstacle, cfg)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.False(t, errors.Is(err, ErrDomain))
		})
	}
}

func TestEvaluateDomainErrors(t *testing.T) {
	t.Run("thrust exceeds climb domain", func(t *testing.T) {
		cfg := referenceConfig()
		cfg.ThrustAtRotation = 5000
		_, err := TakeOffDistance(50, cfg)
		assert.ErrorIs(t, err, ErrDomain)
	})

	t.Run("zero climb angle with obstacle above arc", func(t *testing.T) {
		cfg := referenceConfig()
		speed := TransitionSpeed(cfg.StallSpeed)
		lift := LiftCoefficient(cfg.Weight, speed, cfg.WingArea)
		drag := DragCoefficient(cfg.MinDragCoefficient, cfg.InducedDragConstant, lift)
		cfg.ThrustAtRotation = cfg.Weight * drag / lift

		_, err := TakeOffDistance(50, cfg)
		assert.ErrorIs(t, err, ErrDomain)
	})

	t.Run("descending path with obstacle above arc", func(t *testing.T) {
		cfg := referenceConfig()
		cfg.ThrustAtRotation = 0
		_, err := TakeOffDistance(50, cfg)
		assert.ErrorIs(t, err, ErrDomain)
	})
}

func TestEvaluateRejectsOverflowingDistance(t *testing.T) {
	cfg := referenceConfig()
	total, err := TakeOffDistance(1.7e308, cfg)
	assert.ErrorIs(t, err, ErrDomain)
	assert.Zero(t, total)

	_, err = Evaluate(math.MaxFloat64, cfg)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestSweepReportsFailingHeight(t *testing.T) {
	cfg := referenceConfig()
	_, err := Sweep([]float64{30, -5, 50}, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "obstacle height -5 ft")
}
