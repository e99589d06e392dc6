// Command soquery runs the language-migration queries against the SOTorrent
// Posts dump on BigQuery and saves the results as CSV tables.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const usage = `soquery - StackOverflow language-migration query tool

Usage:
  soquery [options] <command> [arguments]

Commands:
  init             Write a default soquery.ini in the current directory
  langs            Print the language table (name, tag, file token)
  pair <a> <b>     Query posts migrating from language a to b, save CSV
  counts [lang..]  Query per-target counts for all (or given) languages
  pairs            Query the stop-rule language pairs from the paper

Options:
  --config <path>  Configuration file (default: soquery.ini)
  --verbose, -v    Pretty-print log output
  -h, --help       Show this help message

Query commands need [bigquery] project set in soquery.ini; credentials come
from the Google Cloud SDK's default chain.
`

const version = "0.2.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches commands and returns an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var configPath string
	var verbose bool
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--config" {
			if i+1 >= len(args) {
				fmt.Fprintln(stderr, "error: --config requires a path argument")
				return 1
			}
			configPath = args[i+1]
			i++
			continue
		}
		if strings.HasPrefix(arg, "--config=") {
			configPath = strings.TrimPrefix(arg, "--config=")
			continue
		}
		if arg == "--verbose" || arg == "-v" {
			verbose = true
			continue
		}

		remaining = args[i:]
		break
	}

	if len(remaining) == 0 {
		fmt.Fprint(stdout, usage)
		return 0
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "help", "--help", "-h":
		fmt.Fprint(stdout, usage)
		return 0

	case "version", "--version":
		fmt.Fprintf(stdout, "soquery %s\n", version)
		return 0

	case "init":
		return runInit(configPath, stdout, stderr)

	case "langs":
		return runLangs(stdout)

	case "pair":
		return runPair(cmdArgs, configPath, verbose, stdout, stderr)

	case "counts":
		return runCounts(cmdArgs, configPath, verbose, stdout, stderr)

	case "pairs":
		return runPairs(cmdArgs, configPath, verbose, stdout, stderr)

	default:
		fmt.Fprintf(stderr, "error: unknown command %q\n\n", cmd)
		fmt.Fprint(stderr, usage)
		return 1
	}
}
