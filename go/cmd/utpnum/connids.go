package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/uluyol/utpnum/go/connid"
	"golang.org/x/exp/rand"
)

type connIDsCmd struct {
	n      int
	seed   uint64
	unique bool
}

func (*connIDsCmd) Name() string     { return "connids" }
func (*connIDsCmd) Synopsis() string { return "generate sequential connection identifier pairs" }
func (*connIDsCmd) Usage() string {
	return "connids [-n count] [-seed s] [-unique]\n\nPrints one \"recv send\" pair per line.\n"
}

func (c *connIDsCmd) SetFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.n, "n", 1, "number of pairs to generate")
	fs.Uint64Var(&c.seed, "seed", 0, "random seed (0 = seed from the clock)")
	fs.BoolVar(&c.unique, "unique", false, "never reuse an id across the generated pairs")
}

func (c *connIDsCmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.n < 0 {
		log.Printf("-n must be non-negative, got %d", c.n)
		return subcommands.ExitUsageError
	}
	seed := c.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	bw := bufio.NewWriter(os.Stdout)
	err := writeConnIDs(bw, rng, c.n, c.unique)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		log.Print(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func writeConnIDs(w io.Writer, rng *rand.Rand, n int, unique bool) error {
	next := func() (connid.Pair, error) { return connid.GenerateSequential(rng), nil }
	if unique {
		next = connid.NewAllocator(rng).Next
	}
	for i := 0; i < n; i++ {
		p, err := next()
		if err != nil {
			return fmt.Errorf("pair %d: %w", i, err)
		}
		if _, err := fmt.Fprintf(w, "%d %d\n", p.Recv, p.Send); err != nil {
			return err
		}
	}
	return nil
}

var _ subcommands.Command = new(connIDsCmd)
