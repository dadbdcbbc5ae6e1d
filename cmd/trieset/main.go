// Command trieset runs an operation script against an in-memory string set
// and prints one result per command.
//
// Usage:
//
//	trieset [-log-level level] [script]
//
// The script is read from standard input when no file is given.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/sysd/exercises/trie-set/internal/logging"
	"github.com/kumarlokesh/sysd/exercises/trie-set/internal/script"
	"github.com/kumarlokesh/sysd/exercises/trie-set/internal/trie"
)

var (
	helpFlag = flag.Bool("help", false, "Show help message")
	logLevel = flag.String("log-level", "warn", "Log level (trace, debug, info, warn, error)")
)

func main() {
	flag.Parse()
	if *helpFlag {
		printUsage()
		os.Exit(0)
	}
	if flag.NArg() > 1 {
		printUsage()
		os.Exit(2)
	}

	logger, err := logging.New(logging.Options{Level: *logLevel, Console: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "trieset: %v\n", err)
		os.Exit(2)
	}
	log.Logger = logger

	os.Exit(run(flag.Args()))
}

func run(args []string) int {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Error().Err(err).Msg("Failed to open script")
			return 1
		}
		defer f.Close()
		in = f
	}

	interp := script.NewInterpreter(trie.New(), os.Stdout, log.Logger)
	if err := interp.Run(in); err != nil {
		log.Error().Err(err).Msg("Script failed")
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprint(os.Stderr, `Usage:
  trieset [flags] [script]

Flags:
  -help             Show this help message
  -log-level level  Log level (default "warn")

Commands (one per line, arguments bare or Go-quoted):
  insert S   erase S   find S   prefix S
  size       empty     clear    list      dump
`)
}
