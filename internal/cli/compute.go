package cli

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"
	"github.com/yegors/takeoff/internal/config"
	"github.com/yegors/takeoff/internal/takeoff"
	"github.com/yegors/takeoff/pkg/logger"
)

// performanceFlags override single fields of an aircraft profile.
type performanceFlags struct {
	perf takeoff.Configuration
}

func (p *performanceFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&p.perf.StallSpeed, "stall-speed", 0, "stall speed V_s1, ft/s")
	f.Float64Var(&p.perf.ThrustAtRotation, "thrust", 0, "thrust at rotation, lbf")
	f.Float64Var(&p.perf.Weight, "weight", 0, "aircraft weight, lbf")
	f.Float64Var(&p.perf.MinDragCoefficient, "cd-min", 0, "minimum drag coefficient")
	f.Float64Var(&p.perf.MaxLiftCoefficient, "cl-max", 0, "maximum lift coefficient")
	f.Float64Var(&p.perf.WingArea, "wing-area", 0, "wing area, ft²")
	f.Float64Var(&p.perf.InducedDragConstant, "k", 0, "induced drag constant")
	f.Float64Var(&p.perf.GroundRollDistance, "ground-roll", 0, "ground roll distance, ft")
}

// apply copies every flag the user set onto base.
func (p *performanceFlags) apply(cmd *cobra.Command, base takeoff.Configuration) takeoff.Configuration {
	f := cmd.Flags()
	set := func(name string, dst *float64, v float64) {
		if f.Changed(name) {
			*dst = v
		}
	}
	set("stall-speed", &base.StallSpeed, p.perf.StallSpeed)
	set("thrust", &base.ThrustAtRotation, p.perf.ThrustAtRotation)
	set("weight", &base.Weight, p.perf.Weight)
	set("cd-min", &base.MinDragCoefficient, p.perf.MinDragCoefficient)
	set("cl-max", &base.MaxLiftCoefficient, p.perf.MaxLiftCoefficient)
	set("wing-area", &base.WingArea, p.perf.WingArea)
	set("k", &base.InducedDragConstant, p.perf.InducedDragConstant)
	set("ground-roll", &base.GroundRollDistance, p.perf.GroundRollDistance)
	return base
}

func newComputeCommand(a *app) *cobra.Command {
	var (
		aircraft  string
		obstacle  float64
		asJSON    bool
		overrides performanceFlags
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the take-off distance over one obstacle height",
		Example: `  takeoff compute --obstacle 50
  takeoff compute --aircraft reference-single --obstacle 35 --thrust 950`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := a.profile(aircraft)
			if err != nil {
				return err
			}
			perf := overrides.apply(cmd, profile.Performance)
			log := a.logger.Named("compute").WithAircraft(profile.Name)

			result, err := takeoff.Evaluate(obstacle, perf)
			if err != nil {
				logCalculationError(log, err, logger.Float64("obstacle_height_ft", obstacle))
				return err
			}

			log.Debug("Evaluated take-off",
				logger.Float64("obstacle_height_ft", obstacle),
				logger.Float64("total_distance_ft", result.TotalDistance),
				logger.Bool("climb_required", result.ClimbRequired),
			)

			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return writeBreakdown(a.out, profile.Name, result)
		},
	}

	cmd.Flags().StringVarP(&aircraft, "aircraft", "a", config.ReferenceAircraftName, "aircraft profile name")
	cmd.Flags().Float64VarP(&obstacle, "obstacle", "o", 50, "obstacle height, ft")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the breakdown as JSON")
	overrides.register(cmd)

	return cmd
}

func logCalculationError(log *logger.Logger, err error, fields ...logger.Field) {
	fields = append(fields, logger.Error(err))
	switch {
	case errors.Is(err, takeoff.ErrInvalidInput):
		log.Warn("Rejected take-off inputs", fields...)
	case errors.Is(err, takeoff.ErrDomain):
		log.Warn("Take-off has no solution for these inputs", fields...)
	default:
		log.Error("Take-off calculation failed", fields...)
	}
}
