// Command pose-interp demonstrates pose-at-time queries against the same
// trajectory stored in different series representations. Query times that
// hit a stored sample print plain; interpolated results print in green.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	preslam "github.com/GrooveWJH/preSLAM"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// displayEpsilon is the tolerance for flagging a query time as a
	// stored sample in the output. Display-only; the engine's own
	// matching is configured separately.
	displayEpsilon = 1e-9

	greenColor = "\033[32m"
	resetColor = "\033[0m"
)

// sqrtHalf is cos(45°) = sin(45°), the components of a 90° rotation
// quaternion.
const sqrtHalf = 0.7071

func main() {
	var (
		seriesKind = flag.String("series", "slice", "Series representation: slice, list, or btree")
		timesArg   = flag.String("times", "0,0.5,1,1.75,2.5,3.5,4", "Comma-separated query times in seconds")
		matchEps   = flag.Float64("match-epsilon", 0, "Tolerance for treating a query as an exact sample hit (0 = strict)")
		parallel   = flag.Bool("parallel", false, "Evaluate query times concurrently")
	)
	flag.Parse()

	samples := demoTrajectory()
	series, err := buildSeries(*seriesKind, samples)
	if err != nil {
		log.Fatalf("Invalid -series: %v", err)
	}

	times, err := parseTimes(*timesArg)
	if err != nil {
		log.Fatalf("Invalid -times: %v", err)
	}

	ip, err := preslam.New(&preslam.Config{
		MatchEpsilon: *matchEps,
		Parallel:     *parallel,
	})
	if err != nil {
		log.Fatalf("Failed to create interpolator: %v", err)
	}

	fmt.Printf("========= %d samples, %s series =========\n", series.Len(), *seriesKind)

	results, err := ip.PoseAtTimes(series, times)
	if err != nil {
		log.Fatalf("Query failed: %v", err)
	}

	for _, tp := range results {
		printTimedPose(tp, !preslam.ContainsTime(series, tp.Time, displayEpsilon))
	}
}

// demoTrajectory returns a five-sample trajectory tracing a loop with a
// full rotation about the vertical axis.
func demoTrajectory() []preslam.TimedPose {
	return []preslam.TimedPose{
		{Time: 0, Pose: preslam.Pose{Position: r3.Vec{X: 0, Y: 0, Z: 0}, Orientation: preslam.Quaternion{W: 1}}},
		{Time: 1, Pose: preslam.Pose{Position: r3.Vec{X: 1, Y: 0, Z: 0}, Orientation: preslam.Quaternion{W: sqrtHalf, Y: sqrtHalf}}},
		{Time: 2, Pose: preslam.Pose{Position: r3.Vec{X: 1, Y: 1, Z: 0}, Orientation: preslam.Quaternion{Y: 1}}},
		{Time: 3, Pose: preslam.Pose{Position: r3.Vec{X: 0, Y: 1, Z: 0}, Orientation: preslam.Quaternion{Y: sqrtHalf, Z: sqrtHalf}}},
		{Time: 4, Pose: preslam.Pose{Position: r3.Vec{X: 0, Y: 0, Z: 1}, Orientation: preslam.Quaternion{Z: 1}}},
	}
}

func buildSeries(kind string, samples []preslam.TimedPose) (preslam.Series, error) {
	switch kind {
	case "slice":
		return preslam.SliceSeries(samples), nil
	case "list":
		return preslam.NewListSeries(samples...), nil
	case "btree":
		return preslam.NewBTreeSeries(samples...), nil
	default:
		return nil, fmt.Errorf("unknown series kind %q", kind)
	}
}

func parseTimes(arg string) ([]float64, error) {
	parts := strings.Split(arg, ",")
	times := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad time %q: %w", p, err)
		}
		times = append(times, v)
	}
	return times, nil
}

func printTimedPose(tp preslam.TimedPose, interpolated bool) {
	if interpolated {
		fmt.Print(greenColor)
	}

	fmt.Printf("Time: %g\n", tp.Time)
	fmt.Printf("Position: [%g, %g, %g]\n",
		tp.Pose.Position.X, tp.Pose.Position.Y, tp.Pose.Position.Z)
	fmt.Printf("Orientation: [%g, %g, %g, %g]\n",
		tp.Pose.Orientation.W, tp.Pose.Orientation.X,
		tp.Pose.Orientation.Y, tp.Pose.Orientation.Z)

	if interpolated {
		fmt.Print(resetColor)
	}
	fmt.Println("----------------------------------------")
}
