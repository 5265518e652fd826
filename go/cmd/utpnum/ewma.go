package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/uluyol/utpnum/go/cmd/flagtypes"
	"github.com/uluyol/utpnum/go/stats"
)

type ewmaCmd struct {
	alpha      float64
	samples    flagtypes.Float64List
	summary    bool
	configPath string
	outPath    string
}

func (*ewmaCmd) Name() string { return "ewma" }

func (*ewmaCmd) Synopsis() string {
	return "compute the exponentially weighted moving average of samples"
}

func (*ewmaCmd) Usage() string {
	return `ewma [-alpha a] [-samples x,y,...] [-summary] [-o out] [files...]
ewma -c batch.yaml [-o out]

Samples are taken from -samples, else from files (one per line), else stdin.
`
}

func (c *ewmaCmd) SetFlags(fs *flag.FlagSet) {
	c.samples.Sep = ","
	fs.Float64Var(&c.alpha, "alpha", 0.5, "smoothing factor applied to the newest sample")
	fs.Var(&c.samples, "samples", "comma-separated samples")
	fs.BoolVar(&c.summary, "summary", false, "also print descriptive statistics")
	fs.StringVar(&c.configPath, "c", "", "batch config (yaml)")
	fs.StringVar(&c.outPath, "o", "", "output path (default stdout)")
}

func (c *ewmaCmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.configPath != "" {
		return c.runBatch()
	}

	if c.alpha < 0 || c.alpha > 1 {
		log.Printf("warning: alpha = %g is outside [0, 1]", c.alpha)
	}

	samples, err := c.loadSamples(ctx, fs.Args())
	if err != nil {
		log.Printf("failed to read samples: %v", err)
		return subcommands.ExitFailure
	}

	err = writeOutput(c.outPath, func(w io.Writer) error {
		if !c.summary {
			_, err := fmt.Fprintf(w, "%g\n", stats.ExpWeightedAvgSlice(samples, c.alpha))
			return err
		}
		return fprintKVs(w, "summary:", summaryKVs(c.alpha, stats.Summarize(samples, c.alpha)))
	})
	if err != nil {
		log.Print(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *ewmaCmd) loadSamples(ctx context.Context, paths []string) ([]float64, error) {
	switch {
	case len(c.samples.Vals) > 0:
		return c.samples.Vals, nil
	case len(paths) > 0:
		return readSampleFiles(ctx, paths)
	default:
		return readSamples(os.Stdin)
	}
}

func (c *ewmaCmd) runBatch() subcommands.ExitStatus {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		log.Printf("failed to read batch config: %v", err)
		return subcommands.ExitFailure
	}
	b, err := parseBatch(data)
	if err != nil {
		log.Printf("%s: %v", c.configPath, err)
		return subcommands.ExitFailure
	}
	results := b.Run()
	if err := writeOutput(c.outPath, func(w io.Writer) error { return writeBatchResults(w, results) }); err != nil {
		log.Print(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

var _ subcommands.Command = new(ewmaCmd)
