package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadSamples(t *testing.T) {
	in := "# rtt in ms\n1\n\n  2.5  \n#3\n-4\n"
	got, err := readSamples(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{1, 2.5, -4}, got); diff != "" {
		t.Errorf("got - want:\n%s", diff)
	}
}

func TestReadSamplesBadLine(t *testing.T) {
	_, err := readSamples(strings.NewReader("1\nabc\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("got err %v, want error mentioning line 2", err)
	}
}

func TestReadSampleFilesOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, data := range []string{"1\n2\n", "3\n", "", "4\n5\n"} {
		p := filepath.Join(dir, "samples"+string(rune('a'+i)))
		if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}

	got, err := readSampleFiles(context.Background(), paths)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{1, 2, 3, 4, 5}, got); diff != "" {
		t.Errorf("got - want:\n%s", diff)
	}
}

func TestReadSampleFilesMissing(t *testing.T) {
	_, err := readSampleFiles(context.Background(), []string{filepath.Join(t.TempDir(), "nope")})
	if err == nil {
		t.Error("expected error for missing file")
	}
}
