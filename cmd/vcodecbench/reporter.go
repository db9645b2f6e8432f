package main

import (
	"fmt"
	"strings"
)

// PrintConfig prints the run configuration summary.
func PrintConfig(cfg Config, compressionName string) {
	fmt.Println("Configuration:")
	fmt.Printf("  Sizes:        %v\n", cfg.Sizes)
	fmt.Printf("  Jitter:       %.2f%%\n", cfg.Jitter*100)
	fmt.Printf("  Seed:         %d\n", cfg.Seed)
	fmt.Printf("  Compression:  %s\n", compressionName)
	fmt.Println()
}

// PrintResults prints one formatted table row per measurement.
func PrintResults(results []Result) {
	fmt.Println("=== Encode/Decode Results ===")
	fmt.Println()
	fmt.Printf("%-8s | %-10s | %-10s | %-12s | %-10s | %-8s | %-6s\n",
		"Variant", "Values", "Raw Bytes", "Encoded", "Bytes/Val", "Ratio", "OK")
	fmt.Println(strings.Repeat("-", 80))

	for _, r := range results {
		ratioStr := fmt.Sprintf("%.3fx", r.CompressionRatio())
		okStr := "yes"
		if !r.RoundTripOK {
			okStr = "FAIL"
		}

		encodedCol := fmt.Sprintf("%d", r.EncodedBytes)
		if r.CompressedBytes > 0 {
			encodedCol = fmt.Sprintf("%d -> %d", r.EncodedBytes, r.CompressedBytes)
		}

		fmt.Printf("%-8s | %-10d | %-10d | %-12s | %-10.2f | %-8s | %-6s\n",
			r.Variant, r.ValueCount, r.RawBytes, encodedCol, r.BytesPerValue(), ratioStr, okStr)
	}
	fmt.Println()
}

// PrintTimings prints encode/decode wall-clock durations per measurement.
func PrintTimings(results []Result) {
	fmt.Println("=== Timings ===")
	fmt.Println()
	fmt.Printf("%-8s | %-10s | %-12s | %-12s\n", "Variant", "Values", "Encode", "Decode")
	fmt.Println(strings.Repeat("-", 50))

	for _, r := range results {
		fmt.Printf("%-8s | %-10d | %-12s | %-12s\n",
			r.Variant, r.ValueCount, r.EncodeDuration, r.DecodeDuration)
	}
	fmt.Println()
}
