package enrichment

import (
	"io"
	"math"
	"strings"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/stringsUtil"
	"github.com/montanaflynn/stats"
)

var hr = strings.Repeat("=", 60)

// displayColumns for the consensus block
var displayColumns = []string{
	"term_id", "term_name", "methods_significant", "methods_total",
	"clusterprofiler_pvalue", "gprofiler2_pvalue", "topgo_pvalue",
}

// methodBlocks drives the method-specific report sections.
var methodBlocks = []struct {
	Label   string
	FlagCol string
	PCol    string
}{
	{"clusterProfiler", "clusterprofiler_significant", "clusterprofiler_pvalue"},
	{"gprofiler2", "gprofiler2_significant", "gprofiler2_pvalue"},
	{"topGO", "topgo_significant_flag", "topgo_pvalue"},
}

// reportLoad prints the load line and the p-value spread for one method.
func reportLoad(w io.Writer, method string, t *Table, pvalueCol string) {
	fmtUtil.Fprintf(w, "Loaded %d %s results\n", len(t.Rows), method)

	var ps []float64
	for _, row := range t.Rows {
		var v = ParsePValue(row[pvalueCol])
		if !math.IsNaN(v) {
			ps = append(ps, v)
		}
	}
	if len(ps) == 0 {
		return
	}
	var (
		minP, _    = stats.Min(ps)
		medianP, _ = stats.Median(ps)
		maxP, _    = stats.Max(ps)
	)
	fmtUtil.Fprintf(w, "  %s p-values: min=%g median=%g max=%g\n", method, minP, medianP, maxP)
}

// Report prints the saved-to lines and the fixed summary sections to w,
// in the layout the analysts' established report uses.
func (c *Comparison) Report(w io.Writer) {
	fmtUtil.Fprintf(w, "\nComparison table saved to: %s\n", c.OutputCSV)
	fmtUtil.Fprintf(w, "Total terms in comparison table: %d\n", len(c.Merged.Rows))

	fmtUtil.Fprintf(w, "\n%s\n", hr)
	fmtUtil.Fprintln(w, "SUMMARY STATISTICS")
	fmtUtil.Fprintf(w, "%s\n", hr)

	fmtUtil.Fprintf(w, "Terms found by all 3 methods: %d\n", c.Stats["Found3"])
	fmtUtil.Fprintf(w, "Terms found by 2 methods: %d\n", c.Stats["Found2"])
	fmtUtil.Fprintf(w, "Terms found by 1 method: %d\n", c.Stats["Found1"])

	fmtUtil.Fprintf(w, "\nTerms significant in all 3 methods: %d\n", c.Stats["Sig3"])
	fmtUtil.Fprintf(w, "Terms significant in 2 methods: %d\n", c.Stats["Sig2"])
	fmtUtil.Fprintf(w, "Terms significant in 1 method: %d\n", c.Stats["Sig1"])
	fmtUtil.Fprintf(w, "Terms not significant in any method: %d\n", c.Stats["Sig0"])

	c.reportConsensus(w)
	c.reportExclusive(w)

	fmtUtil.Fprintf(w, "\n%s\n", hr)
	fmtUtil.Fprintln(w, "Analysis complete! Check the output file for the full comparison table.")
	fmtUtil.Fprintf(w, "%s\n", hr)
}

func (c *Comparison) reportConsensus(w io.Writer) {
	fmtUtil.Fprintf(w, "\n%s\n", hr)
	fmtUtil.Fprintln(w, "TOP 10 CONSENSUS RESULTS (significant in multiple methods)")
	fmtUtil.Fprintf(w, "%s\n", hr)

	var rows []map[string]string
	for _, row := range c.Merged.Rows {
		if stringsUtil.Atoi(row["methods_significant"]) >= 2 {
			rows = append(rows, row)
			if len(rows) == 10 {
				break
			}
		}
	}
	if len(rows) == 0 {
		fmtUtil.Fprintln(w, "No terms found significant in multiple methods")
		return
	}
	printBlock(w, availableColumns(c.Merged, displayColumns), rows)
}

func (c *Comparison) reportExclusive(w io.Writer) {
	fmtUtil.Fprintf(w, "\n%s\n", hr)
	fmtUtil.Fprintln(w, "METHOD-SPECIFIC SIGNIFICANT RESULTS (top 5 each)")
	fmtUtil.Fprintf(w, "%s\n", hr)

	for _, m := range methodBlocks {
		if !c.Merged.Has(m.FlagCol) {
			continue
		}
		var rows []map[string]string
		for _, row := range c.Merged.Rows {
			if ParseBoolCell(row[m.FlagCol]) && stringsUtil.Atoi(row["methods_significant"]) == 1 {
				rows = append(rows, row)
				if len(rows) == 5 {
					break
				}
			}
		}
		if len(rows) == 0 {
			continue
		}
		fmtUtil.Fprintf(w, "\n%s-specific (top 5):\n", m.Label)
		printBlock(w, availableColumns(c.Merged, []string{"term_id", "term_name", m.PCol}), rows)
	}
}

func availableColumns(t *Table, cols []string) (out []string) {
	for _, col := range cols {
		if t.Has(col) {
			out = append(out, col)
		}
	}
	return
}

// printBlock writes a small tab-separated view of rows for the console.
func printBlock(w io.Writer, cols []string, rows []map[string]string) {
	fmtUtil.FprintStringArray(w, cols, "\t")
	for _, row := range rows {
		var record = make([]string, len(cols))
		for i, col := range cols {
			record[i] = row[col]
		}
		fmtUtil.FprintStringArray(w, record, "\t")
	}
}
