package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// readSamples parses one number per line. Blank lines and lines starting
// with # are skipped.
func readSamples(r io.Reader) ([]float64, error) {
	var samples []float64
	s := bufio.NewScanner(r)
	lineno := 0
	for s.Scan() {
		lineno++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		samples = append(samples, v)
	}
	return samples, s.Err()
}

func readSampleFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	samples, err := readSamples(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// readSampleFiles reads all paths concurrently and concatenates their
// samples in argument order.
func readSampleFiles(ctx context.Context, paths []string) ([]float64, error) {
	perFile := make([][]float64, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		i, p := i, p
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			samples, err := readSampleFile(p)
			perFile[i] = samples
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var all []float64
	for _, samples := range perFile {
		all = append(all, samples...)
	}
	return all, nil
}
