package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"deal_analyzer/pkg/core/assumption"
	"deal_analyzer/pkg/core/format"
	"deal_analyzer/pkg/core/metrics"
	"deal_analyzer/pkg/core/projection"
	"deal_analyzer/pkg/core/property"
	"deal_analyzer/pkg/core/remote"
	"deal_analyzer/pkg/core/report"
	"deal_analyzer/pkg/core/strategy"
)

func main() {
	file := flag.String("file", "", "property feed JSON file (default: stdin)")
	htmlOut := flag.Bool("html", false, "render the report as HTML")
	years := flag.Int("years", 0, "also print the projection input for an N-year horizon")
	server := flag.String("server", "", "worksheet server base URL for remote recompute of the best strategy")
	flag.Parse()

	godotenv.Load()
	logger, _ := zap.NewProductionConfig().Build()
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	raw, err := readInput(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	data, err := property.Parse(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse property: %v\n", err)
		os.Exit(1)
	}

	a := assumption.LoadProperty(data)
	ms := metrics.Evaluate(a, strategy.CalculateAll(a))
	best := metrics.Best(ms)

	out := report.Comparison(data.Address.String(), ms, best)
	if *htmlOut {
		rendered, err := report.RenderHTML(out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render html: %v\n", err)
			os.Exit(1)
		}
		out = rendered
	}
	fmt.Println(out)

	if *server != "" {
		result, fromServer := remote.New(*server).Recalculate(context.Background(), best.Strategy, a)
		source := "local fallback"
		if fromServer {
			source = *server
		}
		fmt.Printf("\nBest-strategy worksheet (%s, via %s):\n", best.Strategy, source)
		printFlat(result)
	}

	if *years > 0 {
		in := projection.BuildInput(a, *years)
		enc, _ := json.MarshalIndent(in, "", "  ")
		fmt.Printf("\nProjection input (%d-year horizon):\n%s\n", *years, enc)
	}
}

func readInput(file string) ([]byte, error) {
	if file == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

func printFlat(result map[string]float64) {
	keys := make([]string, 0, len(result))
	for k := range result {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		v := result[key]
		// Ratios print as-is; dollar-scale values get currency formatting.
		if v >= 1000 || v <= -1000 {
			fmt.Printf("  %-24s %s\n", key, format.Currency(v))
		} else {
			fmt.Printf("  %-24s %.4f\n", key, v)
		}
	}
}
