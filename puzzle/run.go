package puzzle

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
)

// SolveFiles solves each file independently and concurrently.  Answers
// are in the order of files.  The first failure cancels files not yet
// started and is returned.
func SolveFiles(ctx context.Context, p Puzzle, files []string) ([]*Answer, error) {
	res := make([]*Answer, len(files))
	g, gCtx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			a, err := SolveFile(p, file)
			if err != nil {
				return err
			}
			res[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func SolveFile(p Puzzle, file string) (*Answer, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	a, err := p.Solve(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	a.File = file
	return a, nil
}
