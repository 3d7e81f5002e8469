// Command charstats reports the character entropy, conditional entropy,
// mutual information and Huffman average code length of a text corpus, and
// scores a second corpus against the first corpus's Huffman code.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/charstats"
)

const (
	exitOK           = 0
	exitInputError   = 1
	exitUsageError   = 2
	exitComputeError = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := charstats.DefaultConfig()

	fs := flag.NewFlagSet("charstats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.NativePath, "native", cfg.NativePath, "corpus to analyze and build the Huffman code from")
	fs.IntVar(&cfg.NativeSkip, "native-skip", cfg.NativeSkip, "leading lines of the native corpus to skip")
	fs.StringVar(&cfg.ForeignPath, "foreign", cfg.ForeignPath, "corpus to score against the native Huffman code")
	fs.IntVar(&cfg.ForeignSkip, "foreign-skip", cfg.ForeignSkip, "leading lines of the foreign corpus to skip")
	asJSON := fs.Bool("json", false, "write the report as JSON")
	dump := fs.Bool("dump", false, "dump the native Huffman tree to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsageError
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(stderr, "charstats: unexpected arguments: %q\n", fs.Args())
		return exitUsageError
	}
	if cfg.NativeSkip < 0 || cfg.ForeignSkip < 0 {
		fmt.Fprintln(stderr, "charstats: -native-skip and -foreign-skip must not be negative")
		return exitUsageError
	}

	report, err := charstats.Run(cfg)
	if err != nil {
		fmt.Fprintln(stderr, "charstats:", err)
		var inputErr *charstats.InputError
		if errors.As(err, &inputErr) {
			return exitInputError
		}
		return exitComputeError
	}

	if *dump {
		_, _ = report.Tree.Dump(stderr)
	}

	if *asJSON {
		_, err = report.WriteJSON(stdout)
	} else {
		_, err = report.WriteText(stdout)
	}
	if err != nil {
		fmt.Fprintln(stderr, "charstats:", err)
		return exitComputeError
	}
	return exitOK
}
