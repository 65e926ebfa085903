package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/peterh/liner"

	"github.com/shibukawa/wikisort"
	"github.com/shibukawa/wikisort/internal/gen"
)

// replCounter counts comparisons made by a single wikisort.Sort call so the
// REPL can report it alongside the before/after slices.
type replCounter struct{ n int }

func (c *replCounter) Inc(event string) {
	if event == "compare" {
		c.n++
	}
}

// runRepl starts an interactive session: the user types "<dist> <n>", the
// REPL generates that input, sorts it, and prints before/after plus the
// number of comparisons used.
func runRepl(cfg Config, args []string) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println("wikisortbench repl — enter '<distribution> <n>', or 'quit'")
	fmt.Println("distributions:", strings.Join(gen.Names, ", "))

	rng := rand.New(rand.NewSource(1))

	for {
		input, err := line.Prompt("wikisort> ")
		if err != nil {
			return nil
		}
		line.AppendHistory(input)

		fields := strings.Fields(input)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		if len(fields) != 2 {
			fmt.Println("usage: <distribution> <n>")
			continue
		}

		dist := fields[0]
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			fmt.Println("n must be a non-negative integer")
			continue
		}

		before, err := gen.Sample(dist, n, rng)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}

		after := append([]int(nil), before...)
		var counter replCounter
		sorter := wikisort.NewSorter(wikisort.SortOptions[int]{Counter: &counter})
		sorter.Sort(after, compareInt)

		printReplRow("before", before)
		printReplRow("after", after)
		fmt.Printf("%s %d\n", padLabel("comparisons"), counter.n)
	}
}

func printReplRow(label string, v []int) {
	fmt.Printf("%s %v\n", padLabel(label), truncateForDisplay(v))
}

func padLabel(label string) string {
	const width = 12
	pad := width - runewidth.StringWidth(label)
	if pad < 0 {
		pad = 0
	}
	return label + ":" + strings.Repeat(" ", pad)
}

func truncateForDisplay(v []int) []int {
	const maxShown = 20
	if len(v) <= maxShown {
		return v
	}
	return v[:maxShown]
}
