package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/ghodss/yaml"
	"github.com/uluyol/utpnum/go/stats"
)

// Batch is a set of named sample series evaluated together.
// Series without their own alpha use the batch alpha.
type Batch struct {
	Alpha  float64  `json:"alpha"`
	Series []Series `json:"series"`
}

type Series struct {
	Name    string    `json:"name"`
	Alpha   *float64  `json:"alpha,omitempty"`
	Samples []float64 `json:"samples"`
}

type SeriesResult struct {
	Name    string
	Alpha   float64
	Summary stats.Summary
}

func parseBatch(data []byte) (Batch, error) {
	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return b, fmt.Errorf("failed to decode batch: %w", err)
	}
	if len(b.Series) == 0 {
		return b, errors.New("batch has no series")
	}
	seen := make(map[string]bool)
	for i, s := range b.Series {
		if s.Name == "" {
			return b, fmt.Errorf("series %d has no name", i)
		}
		if seen[s.Name] {
			return b, fmt.Errorf("duplicate series %q", s.Name)
		}
		seen[s.Name] = true
	}
	return b, nil
}

func (b Batch) Run() []SeriesResult {
	results := make([]SeriesResult, len(b.Series))
	for i, s := range b.Series {
		alpha := b.Alpha
		if s.Alpha != nil {
			alpha = *s.Alpha
		}
		results[i] = SeriesResult{
			Name:    s.Name,
			Alpha:   alpha,
			Summary: stats.Summarize(s.Samples, alpha),
		}
	}
	return results
}

func writeBatchResults(w io.Writer, results []SeriesResult) error {
	for _, r := range results {
		if err := fprintKVs(w, r.Name+":", summaryKVs(r.Alpha, r.Summary)); err != nil {
			return err
		}
	}
	return nil
}
