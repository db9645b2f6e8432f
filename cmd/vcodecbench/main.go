// Command vcodecbench generates synthetic telemetry-style float32 data,
// round-trips it through both codec variants, and reports encoded size and
// timing. It self-verifies every round trip; a FAIL in the output table
// indicates a codec regression, not a data problem.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/nullstream/vcodec/compress"
	"github.com/nullstream/vcodec/format"
)

func main() {
	sizesFlag := flag.String("sizes", "16,128,1024,8192", "comma-separated list of value counts to benchmark")
	jitter := flag.Float64("jitter", 0.02, "per-step random-walk jitter as a fraction (e.g. 0.02 = 2%)")
	seed := flag.Int64("seed", 42, "random seed for reproducibility")
	compressionName := flag.String("compress", "none", "outer compression stage: none, zstd, s2, or lz4")
	showTimings := flag.Bool("timings", false, "print encode/decode durations")

	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	compressionType, err := parseCompressionType(*compressionName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var codec compress.Codec
	if compressionType != format.CompressionNone {
		codec, err = compress.CreateCodec(compressionType, "vcodecbench")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	cfg := Config{Sizes: sizes, Jitter: *jitter, Seed: *seed}

	fmt.Println("=== vcodec bench: Encode/Decode (full + quick) ===")
	fmt.Println()
	PrintConfig(cfg, *compressionName)

	rng := rand.New(rand.NewSource(cfg.Seed))

	var allResults []Result
	failed := false

	for _, n := range cfg.Sizes {
		values := GenerateSeries(rng, n, cfg.Jitter)

		results, err := Measure(values, codec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error measuring %d values: %v\n", n, err)
			os.Exit(1)
		}

		for _, r := range results {
			if !r.RoundTripOK {
				failed = true
			}
		}

		allResults = append(allResults, results...)
	}

	PrintResults(allResults)
	if *showTimings {
		PrintTimings(allResults)
	}

	if failed {
		fmt.Fprintln(os.Stderr, "One or more round trips FAILED — see table above")
		os.Exit(1)
	}
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", p, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("size %d must be non-negative", n)
		}

		sizes = append(sizes, n)
	}

	if len(sizes) == 0 {
		return nil, fmt.Errorf("-sizes must list at least one value count")
	}

	return sizes, nil
}

func parseCompressionType(name string) (format.CompressionType, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (want none, zstd, s2, or lz4)", name)
	}
}
