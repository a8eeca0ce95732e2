package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jusunglee/hangulsearch/internal/analysis"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

// Command-line front end for the analysis chains. Text comes from the
// remaining arguments, or from stdin one line at a time.
func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	fs := ff.NewFlagSet("hangulsearch-analyze")

	var (
		filters = fs.StringLong("filters", "jamo", "comma-separated filter chain, e.g. jamo or chosung,hantoeng")
		list    = fs.BoolLong("list", "list available filters and exit")
	)

	if err := ff.Parse(fs, os.Args[1:]); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *list {
		for _, name := range analysis.Names() {
			fmt.Println(name)
		}
		return nil
	}

	var names []string
	for _, name := range strings.Split(*filters, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}

	analyzer, err := analysis.NewAnalyzer(names...)
	if err != nil {
		return err
	}

	if args := fs.GetArgs(); len(args) > 0 {
		fmt.Println(strings.Join(analyzer.Analyze(strings.Join(args, " ")), " "))
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fmt.Println(strings.Join(analyzer.Analyze(scanner.Text()), " "))
	}
	return scanner.Err()
}
