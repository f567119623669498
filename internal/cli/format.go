package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/yegors/takeoff/internal/takeoff"
)

func feet(v float64) string {
	return humanize.FormatFloat("#,###.#", v) + " ft"
}

func writeBreakdown(out io.Writer, aircraft string, b takeoff.Breakdown) error {
	w := tabwriter.NewWriter(out, 0, 1, 2, ' ', 0)

	climb := "not required"
	if b.ClimbRequired {
		climb = feet(b.ClimbDistance)
	}

	rows := [][2]string{
		{"aircraft", aircraft},
		{"obstacle height", feet(b.ObstacleHeight)},
		{"transition speed", fmt.Sprintf("%.1f ft/s", b.TransitionSpeed)},
		{"lift coefficient", fmt.Sprintf("%.4f", b.LiftCoefficient)},
		{"drag coefficient", fmt.Sprintf("%.4f", b.DragCoefficient)},
		{"climb angle", fmt.Sprintf("%.2f°", b.ClimbAngle)},
		{"transition radius", feet(b.TransitionRadius)},
		{"transition height", feet(b.TransitionHeight)},
		{"ground roll", feet(b.GroundRollDistance)},
		{"transition distance", feet(b.TransitionDistance)},
		{"climb segment", climb},
		{"total distance", feet(b.TotalDistance)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", r[0], r[1])
	}
	return w.Flush()
}

func writeSweepTable(out io.Writer, results []takeoff.Breakdown) error {
	w := tabwriter.NewWriter(out, 0, 1, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(w, "OBSTACLE\tTRANSITION H\tGROUND ROLL\tTRANSITION\tCLIMB\tTOTAL\t")
	for _, b := range results {
		climb := "-"
		if b.ClimbRequired {
			climb = feet(b.ClimbDistance)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			feet(b.ObstacleHeight),
			feet(b.TransitionHeight),
			feet(b.GroundRollDistance),
			feet(b.TransitionDistance),
			climb,
			feet(b.TotalDistance),
		)
	}
	return w.Flush()
}
