package enrichment

import (
	"embed"
	"fmt"
	"io"
	"log/slog"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/stringsUtil"
)

// Config carries the resolved file locations and the significance cutoff
// for one comparison run. Paths are absolute or relative to the caller's
// working directory; resolution against the results directory happens in
// the entrypoint, not here.
type Config struct {
	ResultsDir string

	ClusterProfilerCSV string
	GProfiler2CSV      string
	TopGOCSV           string

	OutputCSV  string
	OutputXlsx string

	Cutoff float64
}

// Comparison is the state of one run: the three standardized method
// tables, the merged result, and the distribution counts for reporting.
type Comparison struct {
	Config

	// final column order before output renaming, from etc/title.Comparison.txt
	TitleComparison []string

	ClusterProfiler *Table
	GProfiler2      *Table
	TopGO           *Table

	Merged *Table

	Stats map[string]int
}

func New(cfg Config) *Comparison {
	return &Comparison{
		Config: cfg,
		Stats:  make(map[string]int),
	}
}

func (c *Comparison) LoadConfig(cfgPath string, cfgFS embed.FS) {
	c.TitleComparison = osUtil.FS2Array(osUtil.OpenFS("etc/title.Comparison.txt", cfgPath, cfgFS))
}

// CheckInputs verifies the three input files exist before anything is
// loaded or written. The first missing path is reported.
func (c *Comparison) CheckInputs() error {
	for _, path := range []string{c.ClusterProfilerCSV, c.GProfiler2CSV, c.TopGOCSV} {
		if !osUtil.FileExists(path) {
			return fmt.Errorf("file not found: %s", path)
		}
	}
	return nil
}

// LoadAll runs the three loaders and prints the per-method load lines to w.
func (c *Comparison) LoadAll(w io.Writer) (err error) {
	fmtUtil.Fprintln(w, "Loading results from each method...")

	c.ClusterProfiler, err = LoadClusterProfiler(c.ClusterProfilerCSV, c.Cutoff)
	if err != nil {
		return
	}
	reportLoad(w, "clusterProfiler", c.ClusterProfiler, "clusterprofiler_pvalue")

	c.GProfiler2, err = LoadGProfiler2(c.GProfiler2CSV)
	if err != nil {
		return
	}
	reportLoad(w, "gprofiler2", c.GProfiler2, "gprofiler2_pvalue")

	c.TopGO, err = LoadTopGO(c.TopGOCSV, c.Cutoff)
	if err != nil {
		return
	}
	reportLoad(w, "topGO", c.TopGO, "topgo_pvalue")

	return
}

// Merge builds the final table: union, left-joins, derived columns,
// composite sort, final column layout.
func (c *Comparison) Merge(w io.Writer) {
	var master = MergeTables(c.ClusterProfiler, c.GProfiler2, c.TopGO)
	fmtUtil.Fprintf(w, "Found %d unique terms across all methods\n", len(master.Rows))

	Derive(master)
	SortRows(master)
	c.Merged = Arrange(master, c.TitleComparison)
	c.CountStats()

	slog.Info("merged", "terms", len(c.Merged.Rows), "columns", len(c.Merged.Title))
}

// CountStats fills c.Stats from the merged table.
func (c *Comparison) CountStats() {
	c.Stats["Total"] = len(c.Merged.Rows)
	for _, row := range c.Merged.Rows {
		var (
			total = stringsUtil.Atoi(row["methods_total"])
			sig   = stringsUtil.Atoi(row["methods_significant"])
		)
		c.Stats[fmt.Sprintf("Found%d", total)]++
		c.Stats[fmt.Sprintf("Sig%d", sig)]++
	}
}
