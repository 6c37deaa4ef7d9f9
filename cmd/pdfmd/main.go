// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	pdfmd "github.com/nicholasgasior/pdfmd-go"
)

var version = "dev"

func main() {
	var (
		output      string
		configPath  string
		llmEnhance  bool
		scoreOnly   bool
		verbose     bool
		showVersion bool
	)

	flag.StringVar(&output, "o", "", "Output file (default: input path with .md extension)")
	flag.StringVar(&output, "output", "", "Output file (default: input path with .md extension)")
	flag.StringVar(&configPath, "config", "", "YAML configuration file")
	flag.BoolVar(&llmEnhance, "llm-enhance", false, "Improve the extracted markdown with an LLM (needs GEMINI_API_KEY)")
	flag.BoolVar(&scoreOnly, "score-only", false, "Print only the fetch score as JSON")
	flag.BoolVar(&verbose, "v", false, "Verbose output")
	flag.BoolVar(&verbose, "verbose", false, "Verbose output")
	flag.BoolVar(&showVersion, "version", false, "Show version")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pdfmd [flags] <input.pdf>\n\n")
		fmt.Fprintf(os.Stderr, "Extract a PDF to Markdown with a fetch score.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("pdfmd %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := args[0]

	var cfg pdfmd.Config
	if configPath != "" {
		var err error
		cfg, err = pdfmd.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if verbose {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	opts := []pdfmd.Option{
		pdfmd.WithConfig(cfg),
		pdfmd.WithOCR(pdfmd.NewTesseractOCR()),
	}
	if llmEnhance {
		opts = append(opts, pdfmd.WithEnhancer(
			pdfmd.NewGeminiEnhancer(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))))
	}

	extractor := pdfmd.New(opts...)

	result, err := extractor.ExtractFile(context.Background(), input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if scoreOnly {
		data, err := json.MarshalIndent(result.Score, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	outPath := output
	if outPath == "" {
		outPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".md"
	}

	final := pdfmd.ComposeReport(result.Markdown, result.Score)
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			os.Exit(1)
		}
	}
	if err := os.WriteFile(outPath, []byte(final+"\n"), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Output: %s\n", outPath)
	fmt.Printf("Fetch Score: %.1f/100 (%s)\n", result.Score.OverallScore, result.Score.Grade)
}
