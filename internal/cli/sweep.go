package cli

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"github.com/yegors/takeoff/internal/config"
	"github.com/yegors/takeoff/internal/takeoff"
	"github.com/yegors/takeoff/pkg/logger"
)

// maxSweepPoints caps the number of heights a --step range may expand to.
const maxSweepPoints = 10000

func newSweepCommand(a *app) *cobra.Command {
	var (
		aircraft  string
		heights   []float64
		from      float64
		to        float64
		step      float64
		asJSON    bool
		overrides performanceFlags
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Tabulate take-off distance over several obstacle heights",
		Example: `  takeoff sweep
  takeoff sweep --obstacles 15,35,50
  takeoff sweep --from 0 --to 100 --step 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := a.profile(aircraft)
			if err != nil {
				return err
			}

			ranged := cmd.Flags().Changed("step")
			switch {
			case ranged && cmd.Flags().Changed("obstacles"):
				return fmt.Errorf("--obstacles and --step are mutually exclusive")
			case ranged:
				heights, err = heightRange(from, to, step)
				if err != nil {
					return err
				}
			case !cmd.Flags().Changed("obstacles"):
				heights = profile.ObstacleHeights
			}
			if len(heights) == 0 {
				return fmt.Errorf("no obstacle heights given and none configured for %q", profile.Name)
			}

			perf := overrides.apply(cmd, profile.Performance)
			log := a.logger.Named("sweep").WithAircraft(profile.Name)

			results, err := takeoff.Sweep(heights, perf)
			if err != nil {
				logCalculationError(log, err, logger.Float64s("obstacle_heights_ft", heights))
				return err
			}
			log.Debug("Evaluated sweep", logger.Int("points", len(results)))

			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			return writeSweepTable(a.out, results)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&aircraft, "aircraft", "a", config.ReferenceAircraftName, "aircraft profile name")
	f.Float64SliceVar(&heights, "obstacles", nil, "comma-separated obstacle heights, ft")
	f.Float64Var(&from, "from", 0, "first obstacle height of a range, ft")
	f.Float64Var(&to, "to", 100, "last obstacle height of a range, ft")
	f.Float64Var(&step, "step", 10, "obstacle height increment of a range, ft")
	f.BoolVar(&asJSON, "json", false, "print the results as JSON")
	overrides.register(cmd)

	return cmd
}

// heightRange expands from..to inclusive in increments of step.
func heightRange(from, to, step float64) ([]float64, error) {
	for _, v := range []float64{from, to, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("range bounds must be finite, got from=%v to=%v step=%v", from, to, step)
		}
	}
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %v", step)
	}
	if to < from {
		return nil, fmt.Errorf("range end %v is below start %v", to, from)
	}

	// Bound the count while still a float so the int conversion cannot overflow.
	span := (to-from)/step + 1e-9
	if math.IsInf(span, 0) || span >= maxSweepPoints {
		return nil, fmt.Errorf("range %v..%v by %v exceeds %d heights", from, to, step, maxSweepPoints)
	}
	n := int(span) + 1

	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, from+float64(i)*step)
	}
	return out, nil
}
