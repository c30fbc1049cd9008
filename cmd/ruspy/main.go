package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/log"

	"ruspy/interpreter-go/pkg/driver"
	"ruspy/interpreter-go/pkg/interpreter"
)

const cliToolVersion = "ruspy-cli 0.0.0-dev"

var errManifestNotFound = errors.New(driver.ManifestFileName + " not found")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	args = stripGlobalFlags(args)
	if len(args) == 0 {
		return runEntry(nil, false)
	}

	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "repl":
		if len(args) > 1 {
			fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
			return 1
		}
		return cmdRepl()
	case "run":
		return runEntry(args[1:], false)
	default:
		rest, evalMode := extractEvalFlag(args)
		return runEntry(rest, evalMode)
	}
}

// stripGlobalFlags consumes flags accepted before any command.
func stripGlobalFlags(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		switch arg {
		case "-v", "--verbose":
			log.SetLogLevel(log.Verbose)
		default:
			out = append(out, arg)
		}
	}
	return out
}

func extractEvalFlag(args []string) ([]string, bool) {
	out := make([]string, 0, len(args))
	evalMode := false
	for _, arg := range args {
		if arg == "--eval" {
			evalMode = true
			continue
		}
		out = append(out, arg)
	}
	return out, evalMode
}

func runEntry(args []string, evalMode bool) int {
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		return 1
	}

	manifest, manifestErr := loadManifestFrom(".")
	if manifestErr != nil {
		switch {
		case errors.Is(manifestErr, errManifestNotFound):
			manifest = nil
		case len(args) == 1 && looksLikePathCandidate(args[0]):
			log.Warnf("unable to load manifest (%v); falling back to direct file execution", manifestErr)
			manifest = nil
		default:
			fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", manifestErr)
			return 1
		}
	}

	if len(args) == 0 {
		if manifest == nil {
			printUsage()
			return 1
		}
		target, err := manifest.DefaultTarget()
		if err != nil {
			fmt.Fprintf(os.Stderr, "manifest error: %v\n", err)
			return 1
		}
		return executeTarget(manifest, target, evalMode)
	}

	candidate := args[0]
	if manifest != nil {
		if target, ok := manifest.FindTarget(candidate); ok && !looksLikePathCandidate(candidate) {
			return executeTarget(manifest, target, evalMode)
		}
	}
	if evalMode {
		return evaluateFile(candidate)
	}
	return executeFile(candidate)
}

func executeTarget(manifest *driver.Manifest, target *driver.TargetSpec, evalMode bool) int {
	entry := manifest.EntryPath(target)
	log.LogVf("target %q -> %s (%s)", target.OriginalName, entry, target.Mode)
	if evalMode || target.Mode == driver.TargetModeEval {
		return evaluateFile(entry)
	}
	return executeFile(entry)
}

// executeFile runs the module's main function.
func executeFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		return 1
	}
	interp := interpreter.New()
	interp.SetStdout(os.Stdout)
	interp.SetStderr(os.Stderr)
	if err := interp.RunModule(string(src)); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

// evaluateFile treats the whole file as one expression and echoes the
// source followed by its value.
func evaluateFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		return 1
	}
	interp := interpreter.New()
	interp.SetStdout(os.Stdout)
	interp.SetStderr(os.Stderr)
	val, err := interp.EvaluateExpression(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	fmt.Fprintf(os.Stdout, "%s\n\n> %s\n", src, interpreter.FormatValue(val))
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  ruspy [-v] <file.rpy>          run main() of a module")
	fmt.Fprintln(os.Stderr, "  ruspy [-v] <file.rpy> --eval   evaluate the file as an expression")
	fmt.Fprintln(os.Stderr, "  ruspy run [target|file]")
	fmt.Fprintln(os.Stderr, "  ruspy repl")
	fmt.Fprintln(os.Stderr, "  ruspy --version")
}

func loadManifestFrom(start string) (*driver.Manifest, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return nil, err
	}
	path, err := driver.FindManifest(abs)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, errManifestNotFound
	}
	return driver.LoadManifest(path)
}

func looksLikePathCandidate(arg string) bool {
	if arg == "" {
		return false
	}
	if strings.ContainsRune(arg, os.PathSeparator) || strings.Contains(arg, "/") {
		return true
	}
	if filepath.Ext(arg) != "" {
		return true
	}
	if _, err := os.Stat(arg); err == nil {
		return true
	}
	return false
}
