// Command uss-lint validates USS files: it parses each file, resolves
// custom properties, and reports diagnostics in file:line:col form.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"

	"ussls.dev/ussls/internal/diagnostics"
	"ussls.dev/ussls/internal/log"
	"ussls.dev/ussls/internal/parser/css"
	"ussls.dev/ussls/internal/uss/definitions"
	"ussls.dev/ussls/internal/uss/variables"
	"ussls.dev/ussls/internal/version"
)

// Config is the optional lint configuration file (JSON with comments).
type Config struct {
	// Severities maps diagnostic codes to "error", "warning", "info",
	// "hint" or "off".
	Severities map[string]string `json:"severities"`
}

func main() {
	configPath := flag.String("c", "", "path to a JSONC lint config file")
	quiet := flag.Bool("q", false, "only log errors")
	verbose := flag.Bool("v", false, "verbose logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetFullVersion())
		return
	}

	if *quiet {
		log.SetLevel(log.LevelError)
	} else if *verbose {
		log.SetLevel(log.LevelDebug)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: uss-lint [-c config.jsonc] [-q|-v] <glob>...")
		os.Exit(2)
	}

	defs := definitions.Default()
	analyzer := diagnostics.NewAnalyzer(defs)

	if *configPath != "" {
		if err := applyConfig(*configPath, analyzer); err != nil {
			log.Error("Failed to load config %s: %v", *configPath, err)
			os.Exit(2)
		}
	}

	files, err := expandGlobs(flag.Args())
	if err != nil {
		log.Error("Failed to expand file patterns: %v", err)
		os.Exit(2)
	}
	if len(files) == 0 {
		log.Warn("No files matched")
		return
	}

	failed := false
	for _, file := range files {
		errored, err := lintFile(file, defs, analyzer)
		if err != nil {
			log.Error("%s: %v", file, err)
			failed = true
			continue
		}
		failed = failed || errored
	}

	if failed {
		os.Exit(1)
	}
}

// applyConfig loads severity overrides from a JSONC file.
func applyConfig(path string, analyzer *diagnostics.Analyzer) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(raw), &config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	for code, name := range config.Severities {
		severity, err := parseSeverity(name)
		if err != nil {
			return err
		}
		analyzer.SetSeverity(code, severity)
	}
	return nil
}

func parseSeverity(name string) (diagnostics.Severity, error) {
	switch name {
	case "error":
		return diagnostics.SeverityError, nil
	case "warning":
		return diagnostics.SeverityWarning, nil
	case "info":
		return diagnostics.SeverityInformation, nil
	case "hint":
		return diagnostics.SeverityHint, nil
	case "off":
		return diagnostics.SeverityOff, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", name)
	}
}

// expandGlobs resolves the argument patterns, passing non-glob paths
// through untouched.
func expandGlobs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if matches == nil {
			// not a glob, or nothing matched; let lintFile report it
			files = append(files, pattern)
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}

// lintFile parses and validates one file. It reports whether any
// error-severity diagnostic was produced.
func lintFile(path string, defs *definitions.Definitions, analyzer *diagnostics.Analyzer) (bool, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	parser := css.AcquireParser()
	defer css.ReleaseParser(parser)

	tree, err := parser.Parse(string(source))
	if err != nil {
		return false, err
	}
	defer tree.Close()

	resolver := variables.NewResolver(defs)
	resolver.ExtractAndResolve(tree.RootNode(), tree.Source)

	results := analyzer.Analyze(tree.RootNode(), tree.Source, resolver.Variables())
	log.Debug("%s: %d diagnostics", path, len(results))

	errored := false
	for _, d := range results {
		fmt.Printf("%s:%d:%d: %s: %s [%s]\n",
			path, d.Range.Start.Line+1, d.Range.Start.Character+1,
			d.Severity, d.Message, d.Code)
		if d.Severity == diagnostics.SeverityError {
			errored = true
		}
	}
	return errored, nil
}
