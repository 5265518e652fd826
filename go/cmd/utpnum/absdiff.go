package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/google/subcommands"
	"github.com/uluyol/utpnum/go/stats"
)

type absDiffCmd struct{}

func (*absDiffCmd) Name() string     { return "absdiff" }
func (*absDiffCmd) Synopsis() string { return "print |a - b|" }
func (*absDiffCmd) Usage() string    { return "absdiff a b\n" }

func (*absDiffCmd) SetFlags(fs *flag.FlagSet) {}

// absDiffString evaluates |a - b| as integers when both parse as int64 and
// as floats otherwise.
func absDiffString(a, b string) (string, error) {
	ai, aerr := strconv.ParseInt(a, 10, 64)
	bi, berr := strconv.ParseInt(b, 10, 64)
	if aerr == nil && berr == nil {
		if (ai < 0) != (bi < 0) {
			// may overflow int64; compute in uint64
			if ai < 0 {
				return strconv.FormatUint(uint64(bi)+uint64(-(ai+1))+1, 10), nil
			}
			return strconv.FormatUint(uint64(ai)+uint64(-(bi+1))+1, 10), nil
		}
		return strconv.FormatInt(stats.AbsDiff(ai, bi), 10), nil
	}

	af, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return "", fmt.Errorf("bad number %q: %w", a, err)
	}
	bf, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return "", fmt.Errorf("bad number %q: %w", b, err)
	}
	return strconv.FormatFloat(stats.AbsDiff(af, bf), 'g', -1, 64), nil
}

func (*absDiffCmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if fs.NArg() != 2 {
		log.Print("absdiff takes exactly two numbers")
		return subcommands.ExitUsageError
	}
	d, err := absDiffString(fs.Arg(0), fs.Arg(1))
	if err != nil {
		log.Print(err)
		return subcommands.ExitUsageError
	}
	fmt.Println(d)
	return subcommands.ExitSuccess
}

var _ subcommands.Command = new(absDiffCmd)
