package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/renameio"
	"github.com/uluyol/utpnum/go/stats"
)

type kv struct {
	Key  string
	Verb string
	Val  interface{}
}

func fprintKVs(w io.Writer, header string, kvs []kv) error {
	args := make([]interface{}, len(kvs))
	var fmtstring strings.Builder
	fmtstring.WriteString(header)
	fmtstring.WriteString("\n")
	for i, kv := range kvs {
		fmtstring.WriteString("\t")
		fmtstring.WriteString(kv.Key)
		fmtstring.WriteString(" = ")
		fmtstring.WriteString(kv.Verb)
		fmtstring.WriteString("\n")
		args[i] = kv.Val
	}
	_, err := fmt.Fprintf(w, fmtstring.String(), args...)
	return err
}

func summaryKVs(alpha float64, s stats.Summary) []kv {
	return []kv{
		{"alpha", "%g", alpha},
		{"n", "%d", s.N},
		{"ewma", "%g", s.EWMA},
		{"mean", "%g", s.Mean},
		{"stddev", "%g", s.StdDev},
		{"min", "%g", s.Min},
		{"max", "%g", s.Max},
		{"p50", "%g", s.P50},
		{"p90", "%g", s.P90},
		{"p99", "%g", s.P99},
	}
}

// writeOutput runs write against stdout when path is empty. Otherwise the
// output replaces path atomically once write succeeds.
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}
	f, err := renameio.TempFile("", path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer f.Cleanup()
	if err := f.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to chmod output: %w", err)
	}
	if err := write(f); err != nil {
		return err
	}
	return f.CloseAtomicallyReplace()
}
