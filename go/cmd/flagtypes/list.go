package flagtypes

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Float64List is a Sep-separated list of numbers, e.g. "1,2.5,-3".
// An empty Sep means ",".
type Float64List struct {
	Sep  string
	Vals []float64
}

func (f *Float64List) sep() string {
	if f.Sep == "" {
		return ","
	}
	return f.Sep
}

func (f *Float64List) String() string {
	ss := make([]string, len(f.Vals))
	for i, v := range f.Vals {
		ss[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(ss, f.sep())
}

func (f *Float64List) Set(s string) error {
	f.Vals = f.Vals[:0]
	for _, field := range strings.Split(s, f.sep()) {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("bad number %q: %w", field, err)
		}
		f.Vals = append(f.Vals, v)
	}
	return nil
}

var _ flag.Value = new(Float64List)
