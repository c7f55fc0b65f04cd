// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Command blind-redact annotates police narratives for blind charging
// review: it computes the spans that reveal race or other protected
// information and renders them replaced with neutral placeholders.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"blind-redact/internal/extract"
	"blind-redact/internal/formatters"
	"blind-redact/internal/identity"
	"blind-redact/internal/locale"
	"blind-redact/internal/masker"
	"blind-redact/internal/nlp"
	"blind-redact/internal/observability"
	"blind-redact/internal/parallel"
	"blind-redact/internal/version"

	// Output formats register themselves.
	_ "blind-redact/internal/formatters/json"
	_ "blind-redact/internal/formatters/text"

	"golang.org/x/term"
)

const (
	exitOK         = 0
	exitUsage      = 1
	exitProcessing = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		input        = flag.String("input", "-", "narrative file to annotate, or - for stdin; extra files may follow as arguments")
		localeName   = flag.String("locale", "", "locale to annotate against (required)")
		localeConfig = flag.String("locale-config", "", "YAML file of locale definitions to register")
		personsPath  = flag.String("persons", "", "JSON file with the civilian roster")
		officersPath = flag.String("officers", "", "JSON file with the officer roster")
		literalsPath = flag.String("custom-literals", "", "JSON file mapping placeholder labels to literal phrases")
		keepOfficers = flag.Bool("keep-officers", false, "do not infer officer mentions from the narrative text")
		format       = flag.String("format", "text", "output format: text or json")
		output       = flag.String("output", "", "write output to a file instead of stdout")
		noColor      = flag.Bool("no-color", false, "disable colored output")
		verbose      = flag.Bool("verbose", false, "include per-redaction detail in the output")
		obsLevel     = flag.String("observability", "off", "operation logging to stderr: off, metrics, or debug")
		workers      = flag.Int("workers", 0, "worker count for multi-file input (0 = GOMAXPROCS)")
		showVersion  = flag.Bool("version", false, "print version information and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return exitOK
	}

	if err := registerLocales(*localeConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	if *localeName == "" {
		fmt.Fprintf(os.Stderr, "Error: -locale is required. Registered locales: %v\n", locale.Names())
		flag.Usage()
		return exitUsage
	}
	loc, err := locale.Get(*localeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v. Registered locales: %v\n", err, locale.Names())
		return exitUsage
	}

	civilians, officers, literals, err := loadRosters(*personsPath, *officersPath, *literalsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{*input}
	}

	level := observability.ParseLevel(*obsLevel)
	observer := observability.NewStandardObserver(level, os.Stderr)
	if level == observability.ObservabilityDebug {
		observer.DebugObserver = observability.NewDebugObserver(os.Stderr)
	}

	opts := masker.Options{
		KeepOfficerNames: *keepOfficers,
		CustomLiterals:   literals,
	}
	jobs, err := buildJobs(inputs, civilians, officers, opts, observer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitProcessing
	}

	results := parallel.Run(jobs, *workers, loc, nlp.Default(), observer)

	var outputs []masker.Result
	failed := false
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", res.Err)
			failed = true
			continue
		}
		outputs = append(outputs, res.Output)
	}

	fmtOpts := formatters.Options{
		Verbose: *verbose,
		NoColor: *noColor || *output != "" || !term.IsTerminal(int(os.Stdout.Fd())),
	}
	rendered, err := formatters.Export(*format, outputs, fmtOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	if err := writeOutput(*output, rendered); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitProcessing
	}

	if failed {
		return exitProcessing
	}
	return exitOK
}

// registerLocales loads locale definitions from the given config path, or
// from the conventional locations when none is given. Built-in locales stay
// registered either way.
func registerLocales(path string) error {
	if path == "" {
		path = locale.FindConfigFile()
	}
	if path == "" {
		return nil
	}
	_, err := locale.LoadConfig(path)
	return err
}

func loadRosters(personsPath, officersPath, literalsPath string) (
	[]identity.CivilianRecord, []string, map[string][]string, error) {

	var civilians []identity.CivilianRecord
	if personsPath != "" {
		if err := readJSON(personsPath, &civilians); err != nil {
			return nil, nil, nil, fmt.Errorf("loading civilian roster: %w", err)
		}
	}

	var officers []string
	if officersPath != "" {
		if err := readJSON(officersPath, &officers); err != nil {
			return nil, nil, nil, fmt.Errorf("loading officer roster: %w", err)
		}
	}

	var literals map[string][]string
	if literalsPath != "" {
		if err := readJSON(literalsPath, &literals); err != nil {
			return nil, nil, nil, fmt.Errorf("loading custom literals: %w", err)
		}
	}

	return civilians, officers, literals, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func buildJobs(inputs []string, civilians []identity.CivilianRecord,
	officers []string, opts masker.Options,
	observer *observability.StandardObserver) ([]*parallel.Job, error) {

	var jobs []*parallel.Job
	for _, path := range inputs {
		done := observer.StartTiming("cli", "read_input", path)
		narrative, err := readNarrative(path)
		done(err == nil, map[string]interface{}{"content_length": len(narrative)})
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		jobs = append(jobs, &parallel.Job{
			ID:        path,
			Narrative: extract.Preprocess(narrative),
			Civilians: civilians,
			Officers:  officers,
			Options:   opts,
		})
	}
	return jobs, nil
}

func readNarrative(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func writeOutput(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
