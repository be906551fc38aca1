// Command movcsolve reads a Multi-Objective Vertex Cover instance and
// prints its Pareto-optimal front as JSON.
//
// Usage:
//
//	movcsolve -in instance.movc [-width 4] [-order min-neighbors|id1,id2,...] [-timeout 30s]
//
// CLI parsing itself is deliberately minimal (an explicit non-goal): this
// driver wires vcgraph.Parse, ordering.MinNeighbors, mbe.Build and
// bnb.Search together and reports the result, nothing more.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/movc/bnb"
	"github.com/katalvlaran/movc/mbe"
	"github.com/katalvlaran/movc/ordering"
	"github.com/katalvlaran/movc/vcgraph"
)

// result is the JSON payload written to stdout, matching spec.md §6
// EXTERNAL INTERFACES' Result output exactly: pareto_front, data (a string
// rendering of the front), and time in seconds.
type result struct {
	ParetoFront [][]float64 `json:"pareto_front"`
	Data        string      `json:"data"`
	Time        float64     `json:"time"`
}

func main() {
	in := flag.String("in", "", "path to a vertex-cover instance file (required)")
	width := flag.Int("width", 4, "mini-bucket width bound")
	order := flag.String("order", "min-neighbors", `elimination order: "min-neighbors" or a comma-separated vertex-ID permutation`)
	timeout := flag.Duration("timeout", 0, "search time budget (0 = unbounded)")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "movcsolve: -in is required")
		os.Exit(2)
	}

	if err := run(*in, *width, *order, *timeout, *verbose); err != nil {
		log.Fatalf("movcsolve: %v", err)
	}
}

// resolveOrder implements spec.md §6's "ordering" configuration option:
// "min-neighbors" (the default heuristic, spec.md §4.D) or a literal
// comma-separated permutation of every vertex ID, validated against g.
func resolveOrder(g *vcgraph.Graph, spec string) (ordering.Order, error) {
	if spec == "" || spec == "min-neighbors" {
		return ordering.MinNeighbors(g), nil
	}

	return ordering.Custom(g, strings.Split(spec, ","))
}

func run(path string, width int, orderSpec string, timeout time.Duration, verbose bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	g, err := vcgraph.Parse(f)
	if err != nil {
		return err
	}

	order, err := resolveOrder(g, orderSpec)
	if err != nil {
		return err
	}

	engine, err := mbe.Build(g, order, width)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	opts := []bnb.Option{}
	if verbose {
		opts = append(opts, bnb.WithOnProgress(func(pct float64) {
			fmt.Fprintf(os.Stderr, "movcsolve: %.1f%%\n", pct)
		}))
	}

	start := time.Now()
	front, err := bnb.New(opts...).Solve(ctx, engine)
	elapsed := time.Since(start)
	if err != nil && err != context.DeadlineExceeded {
		return err
	}

	out := result{
		ParetoFront: make([][]float64, 0, front.Len()),
		Time:        elapsed.Seconds(),
	}
	var data strings.Builder
	for i, p := range front.Points() {
		out.ParetoFront = append(out.ParetoFront, p.Components())
		if i > 0 {
			data.WriteString("; ")
		}
		fmt.Fprintf(&data, "%v", p.Components())
	}
	out.Data = data.String()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
