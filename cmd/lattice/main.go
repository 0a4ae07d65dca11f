// Copyright 2026 Lattice ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Command lattice inspects sparse list-of-lists matrices built from triplet
// files. It is a thin caller of the storage core: argument parsing and file
// I/O happen here, never inside the engine.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lattice-ml/lattice/list"
	cli "github.com/urfave/cli/v2"
)

const version = "v0.1.0-dev"

func main() {
	app := cli.NewApp()
	app.Name = "lattice"
	app.Usage = "inspect sparse list-of-lists matrices"
	app.Version = version
	app.Commands = []*cli.Command{
		statsCmd,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var statsCmd = &cli.Command{
	Name:      "stats",
	Usage:     "build a rank-2 matrix from an `i j value` triplet file and report on it",
	ArgsUsage: "<triplet-file>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "rows",
			Usage: "matrix row count (defaults to 1 + max row index seen)",
		},
		&cli.IntFlag{
			Name:  "cols",
			Usage: "matrix column count (defaults to 1 + max column index seen)",
		},
		&cli.Float64Flag{
			Name:  "default",
			Usage: "value read for absent coordinates",
		},
		&cli.BoolFlag{
			Name:  "tree",
			Usage: "print the list tree",
		},
	},
	Action: runStats,
}

type triplet struct {
	i, j int
	v    float64
}

func readTriplets(path string) ([]triplet, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	var (
		out        []triplet
		rows, cols int
	)
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, 0, 0, fmt.Errorf("%s:%d: expected `i j value`, got %q", path, line, text)
		}
		i, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, 0, 0, fmt.Errorf("%s:%d: bad row index: %w", path, line, err)
		}
		j, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, 0, 0, fmt.Errorf("%s:%d: bad column index: %w", path, line, err)
		}
		v, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("%s:%d: bad value: %w", path, line, err)
		}
		if i < 0 || j < 0 {
			return nil, 0, 0, fmt.Errorf("%s:%d: negative index", path, line)
		}
		out = append(out, triplet{i, j, v})
		if i+1 > rows {
			rows = i + 1
		}
		if j+1 > cols {
			cols = j + 1
		}
	}
	return out, rows, cols, scanner.Err()
}

func runStats(cctx *cli.Context) error {
	if cctx.NArg() != 1 {
		return fmt.Errorf("expected exactly one triplet file argument")
	}

	triplets, rows, cols, err := readTriplets(cctx.Args().First())
	if err != nil {
		return err
	}
	if cctx.IsSet("rows") {
		rows = cctx.Int("rows")
	}
	if cctx.IsSet("cols") {
		cols = cctx.Int("cols")
	}
	if rows < 1 || cols < 1 {
		return fmt.Errorf("matrix has no extent (rows=%d cols=%d)", rows, cols)
	}

	s, err := list.New(list.Float64, []int{rows, cols}, cctx.Float64("default"))
	if err != nil {
		return err
	}
	defer s.Release()

	for _, tr := range triplets {
		if tr.i >= rows || tr.j >= cols {
			return fmt.Errorf("triplet (%d,%d) outside %dx%d matrix", tr.i, tr.j, rows, cols)
		}
		if err := s.SetAt(tr.v, tr.i, tr.j); err != nil {
			return err
		}
	}

	stored := s.CountStored()
	offDiag, err := s.CountOffDiagonal()
	if err != nil {
		return err
	}

	fmt.Printf("shape:        %dx%d\n", rows, cols)
	fmt.Printf("default:      %v\n", s.Default())
	fmt.Printf("stored:       %d (%.2f%% dense)\n", stored, 100*float64(stored)/float64(rows*cols))
	fmt.Printf("off-diagonal: %d\n", offDiag)

	if cctx.Bool("tree") {
		fmt.Println()
		fmt.Print(s.TreeString())
	}
	return nil
}
