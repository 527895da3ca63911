package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mglk/planar"
	"github.com/mglk/planar/rasterizer"
	"github.com/op/go-logging"
	"github.com/tdewolff/argp"
	"github.com/wcharczuk/go-chart/v2"
)

type Main struct {
	Number     int     `short:"n" default:"1000" desc:"Number of generated segments"`
	Size       float64 `short:"s" default:"1000" desc:"Size of the plane"`
	Length     float64 `short:"l" default:"50" desc:"Maximal segment length"`
	Read       bool    `short:"r" desc:"Read segments from standard input: count, then x1 y1 x2 y2 per line"`
	Random     int     `default:"0" desc:"Run this many random rounds, each with more segments on a bigger plane"`
	Algorithm  string  `short:"a" default:"bentley-ottmann" desc:"Intersection algorithm: bentley-ottmann, all-pairs, sorted-all-pairs"`
	Components string  `default:"traversal" desc:"Component algorithm: traversal, union-find"`
	Config     string  `short:"c" desc:"TOML configuration file"`
	Seed       int64   `default:"0" desc:"Random seed, 0 seeds from the clock"`
	Output     string  `short:"o" desc:"Write a PNG visualization to this file"`
	Squares    bool    `desc:"Mark each intersection with a red square"`
	Chart      string  `desc:"Write a PNG timing chart of the random rounds to this file"`
	Verbose    bool    `short:"v" desc:"Print debug logging"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Planar segment intersections and connected components")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`)
	backend := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), format))
	if cmd.Verbose {
		backend.SetLevel(logging.DEBUG, "")
	} else {
		backend.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(backend)

	pl := planar.New()
	pl.SetMax(cmd.Size)
	if cmd.Seed == 0 {
		pl.Seed(time.Now().UnixNano())
	} else {
		pl.Seed(cmd.Seed)
	}

	if cmd.Config != "" {
		conf, err := planar.LoadConfigFile(cmd.Config)
		if err != nil {
			return err
		}
		if err := conf.Apply(pl); err != nil {
			return err
		}
		if conf.Segments > 0 {
			cmd.Number = conf.Segments
		}
		if conf.MaxLength > 0 {
			cmd.Length = conf.MaxLength
		}
	}

	alg, err := planar.ParseIntersectionAlgorithm(cmd.Algorithm)
	if err != nil {
		return err
	}
	pl.SetIntersectionAlgorithm(alg)
	comp, err := planar.ParseComponentAlgorithm(cmd.Components)
	if err != nil {
		return err
	}
	pl.SetComponentAlgorithm(comp)

	if 0 < cmd.Random {
		return cmd.benchmark(pl)
	}

	if cmd.Read {
		if err := readSegments(os.Stdin, pl); err != nil {
			return err
		}
	} else {
		pl.GenerateSegments(cmd.Number, cmd.Length)
	}

	if err := pl.SolveTimed(); err != nil {
		return err
	}
	fmt.Printf("%d segments, %d intersections, %d components\n",
		pl.Len(), len(pl.Intersections()), pl.Components())

	if cmd.Output != "" {
		opts := rasterizer.DefaultOptions()
		opts.Markers = cmd.Squares
		if err := rasterizer.SavePNG(cmd.Output, pl, opts); err != nil {
			return err
		}
	}
	return nil
}

func readSegments(r io.Reader, pl *planar.Plane) error {
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return fmt.Errorf("segment count: %v", err)
	}
	for i := 0; i < n; i++ {
		var x1, y1, x2, y2 float64
		if _, err := fmt.Fscan(r, &x1, &y1, &x2, &y2); err != nil {
			return fmt.Errorf("segment %d: %v", i, err)
		}
		pl.AddSegment(x1, y1, x2, y2)
	}
	return nil
}

// benchmark runs random rounds of growing size and optionally charts the
// timings. Rounds hitting a precision failure are reported and skipped.
func (cmd *Main) benchmark(pl *planar.Plane) error {
	size := cmd.Size
	number := cmd.Number
	xs := make([]float64, 0, cmd.Random)
	ys := make([]float64, 0, cmd.Random)
	for i := 0; i < cmd.Random; i, size, number = i+1, size+cmd.Size*0.3, number+cmd.Number {
		pl.SetMax(size)
		pl.GenerateSegments(number, cmd.Length)
		start := time.Now()
		err := pl.Solve()
		took := time.Since(start)
		if err != nil {
			if errors.Is(err, planar.ErrPrecision) {
				continue
			}
			return err
		}
		fmt.Printf("%8d segments, %8d intersections, %v\n",
			pl.Len(), len(pl.Intersections()), took)
		xs = append(xs, float64(number))
		ys = append(ys, took.Seconds())
	}
	if cmd.Chart != "" {
		return writeChart(cmd.Chart, xs, ys)
	}
	return nil
}

func writeChart(path string, xs, ys []float64) error {
	graph := chart.Chart{
		XAxis: chart.XAxis{Name: "segments"},
		YAxis: chart.YAxis{Name: "seconds"},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys},
		},
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
