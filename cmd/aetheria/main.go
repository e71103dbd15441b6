package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"aetheria/pkg/aetheria"
	"aetheria/pkg/vision"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("aetheria", flag.ContinueOnError)
	referencePath := fs.String("reference", "", "optional reference image to compare against")
	useAI := fs.Bool("ai", false, "describe the render with the vision model (needs OPENROUTER_API_KEY)")
	model := fs.String("model", "", "vision model override")
	colors := fs.Int("k", 6, "palette size")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: aetheria [flags] <render-image>")
	}

	renderPath := fs.Arg(0)
	renderBytes, err := os.ReadFile(renderPath)
	if err != nil {
		return fmt.Errorf("reading render: %w", err)
	}

	var referenceBytes []byte
	if *referencePath != "" {
		referenceBytes, err = os.ReadFile(*referencePath)
		if err != nil {
			return fmt.Errorf("reading reference: %w", err)
		}
	}

	var externalText string
	if *useAI {
		client, err := vision.NewClient("", *model)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		externalText, err = client.Describe(ctx, renderBytes)
		if err != nil {
			// The pipeline degrades to the palette matcher on its own.
			log.Printf("vision description failed, continuing without it: %v", err)
			externalText = ""
		}
	}

	fmt.Printf("Analyzing: %s\n", renderPath)
	startTime := time.Now()

	analyzer := aetheria.NewAnalyzer()
	analyzer.Palette.Colors = *colors
	result := analyzer.AnalyzeRender(renderBytes, referenceBytes, externalText)

	printReport(result, time.Since(startTime))
	return nil
}

func printReport(result *aetheria.AnalysisResult, elapsed time.Duration) {
	fmt.Println()
	fmt.Printf("=== Render Analysis (%.1fs) ===\n", elapsed.Seconds())
	s := result.Render
	fmt.Printf("  Exposure:    %.1f\n", s.ExposureMean)
	fmt.Printf("  Contrast:    %.1f\n", s.ContrastStd)
	fmt.Printf("  Noise:       %.1f\n", s.NoiseLevel)
	fmt.Printf("  Saturation:  %.1f%%\n", s.SaturationPct)
	fmt.Printf("  Sharpness:   %.0f\n", s.SharpnessVariance)
	fmt.Printf("  WB shift:    %.1f (blue-red)\n", s.WhiteBalanceShift)
	fmt.Println("==============================")

	fmt.Println()
	fmt.Println("=== Palette ===")
	for i, hex := range result.Palette {
		fmt.Printf("  %d. %s\n", i+1, hex)
	}

	fmt.Println()
	fmt.Println("=== Materials ===")
	for _, m := range result.Materials {
		fmt.Printf("  %-22s %-15s %s at (%d,%d)\n", m.Name, m.Category, m.Hex, m.X, m.Y)
		if m.Texture != nil {
			fmt.Printf("    upgrade: %s (%s)\n", m.Texture.Suggestion, m.Texture.Link)
		}
	}

	fmt.Println()
	fmt.Printf("=== Critique (score %d/100) ===\n", result.Score)
	fmt.Printf("  %s\n", result.Critique)
	for _, s := range result.Suggestions {
		fmt.Printf("  - %s\n", s)
	}

	fmt.Println()
	fmt.Println("=== Lighting ===")
	for _, ls := range result.Lighting {
		fmt.Printf("  [%s] %s (%s)\n", ls.Type, ls.Suggestion, ls.Action)
	}

	if result.Reference != nil {
		fmt.Println()
		fmt.Println("=== Reference Comparison ===")
		fmt.Printf("  Reference stats: %v\n", *result.Reference)
		for _, d := range result.Differences {
			fmt.Printf("  - %s\n", d)
		}
	}
	fmt.Println("==============================")
}
