// Command csvprobe samples the head of a RAWG CSV export and prints a report
// of its column layout and how the entity-bearing fields would parse. Run it
// against a fresh export before converting, to catch format drift early.
//
// Example:
//
//	csvprobe -input=game_info.csv -rows=5
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"rawg2ttl/internal/probe"
)

func main() {
	input := flag.String("input", "", "source CSV path")
	rows := flag.Int("rows", 5, "number of data rows to sample")
	flag.Parse()

	if *input == "" {
		fatalf("missing -input")
	}

	rep, err := probe.Inspect(context.Background(), *input, *rows)
	if err != nil {
		fatalf("%v", err)
	}
	rep.Render(os.Stdout)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
