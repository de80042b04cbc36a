// Command rotate turns a sample grid anticlockwise and prints it one row per
// line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sw965/gridrot/blas32/tensor/2d"
	"github.com/sw965/gridrot/matrix/2d"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("rotate: %v", err)
	}
}

func run(outW, errW io.Writer, args []string) error {
	cfg, err := loadConfig(args, errW)
	if err != nil {
		return err
	}

	switch cfg.Sample {
	case "keypad":
		if cfg.Dense {
			return fmt.Errorf("sample %q cannot be rotated as a dense matrix", cfg.Sample)
		}
		return rotateAndPrint(outW, keypad(), cfg.Turns)
	case "digits":
		if cfg.Dense {
			return rotateDenseAndPrint(outW, denseDigits(), cfg.Turns)
		}
		return rotateAndPrint(outW, digits(), cfg.Turns)
	default:
		return fmt.Errorf("unknown sample %q", cfg.Sample)
	}
}

func rotateAndPrint[E any](w io.Writer, grid [][]E, turns int) error {
	if err := matrix2d.RotateAnticlockwiseN(grid, turns); err != nil {
		return fmt.Errorf("rotate: %w", err)
	}
	return printRows(w, grid)
}

func rotateDenseAndPrint(w io.Writer, rows [][]float32, turns int) error {
	gen, err := tensor2d.FromRows(rows)
	if err != nil {
		return err
	}
	for k := ((turns % 4) + 4) % 4; k > 0; k-- {
		if err := tensor2d.RotateAnticlockwise(gen); err != nil {
			return fmt.Errorf("rotate: %w", err)
		}
	}
	return printRows(w, tensor2d.ToRows(gen))
}

func printRows[E any](w io.Writer, grid [][]E) error {
	for _, row := range grid {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}
