// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"dicestats-core/dicestats"
)

// textWriter stops emitting after the first write error and remembers it.
type textWriter struct {
	w   io.Writer
	err error
}

func (tw *textWriter) printf(format string, a ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, a...)
}

// WriteBasic prints one die's summary block: raw counts, an ASCII
// histogram (one '*' per roll), and the average roll.
func WriteBasic(w io.Writer, name string, s dicestats.Summary) error {
	tw := &textWriter{w: w}

	tw.printf("\ndata for die with description: %s\n\n", name)

	tw.printf("raw roll data:\n")
	for _, rc := range s.Rolls {
		tw.printf("rolled \t%d\t on the die \t%d\t time(s)\n", rc.Value, rc.Count)
	}
	tw.printf("\n")

	tw.printf("simple roll histogram:\n")
	for _, rc := range s.Rolls {
		tw.printf("%d\t%s\n", rc.Value, strings.Repeat("*", rc.Count))
	}
	tw.printf("\n")

	tw.printf("average roll: %v\n", s.Mean)
	tw.printf("------------\n")
	return tw.err
}

// WriteChiSquared prints the aggregate fairness results, one block per
// die in ascending order of description.
func WriteChiSquared(w io.Writer, results map[string]dicestats.ChiSquaredResult) error {
	descs := make([]string, 0, len(results))
	for d := range results {
		descs = append(descs, d)
	}
	sort.Strings(descs)

	tw := &textWriter{w: w}
	tw.printf("-----\n")
	for _, d := range descs {
		res := results[d]
		tw.printf("analysis of die:  %s\n", d)
		tw.printf("chi squared stat: %v\n", res.Statistic)
		tw.printf("p value:          %v\n", res.PValue)
		tw.printf("-----\n")
	}
	return tw.err
}
