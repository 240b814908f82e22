package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"

	util "EnrichAnalysis/pkg/enrichment"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// flag
var (
	resultsDir = flag.String(
		"d",
		"",
		"results directory, default is [exPath]/results",
	)
	cpFile = flag.String(
		"cp",
		"clusterProfiler_enrichment_results.csv",
		"clusterProfiler results, relative to -d unless absolute",
	)
	gpFile = flag.String(
		"gp",
		"gprofiler2_enrichment_results.csv",
		"gprofiler2 results, relative to -d unless absolute",
	)
	tgFile = flag.String(
		"tg",
		"topGO_enrichment_results.csv",
		"topGO results, relative to -d unless absolute",
	)
	output = flag.String(
		"o",
		"enrichment_methods_comparison_table.csv",
		"output comparison table, relative to -d unless absolute",
	)
	cutoff = flag.Float64(
		"cutoff",
		0.05,
		"significance cutoff for clusterProfiler qvalue and topGO pvalue",
	)
	webhook = flag.String(
		"webhook",
		"",
		"WeChat Work webhook key, send run summary when set",
	)
	debug = flag.Bool(
		"debug",
		false,
		"debug",
	)
	cpuProfile = flag.String(
		"cpu",
		"log.cpuProfile",
		"cpu profile",
	)
	memProfile = flag.String(
		"mem",
		"log.memProfile",
		"mem profile",
	)
)

func main() {
	flag.Parse()
	now := time.Now()

	if !*debug {
		*cpuProfile = ""
		*memProfile = ""
	}

	if *cpuProfile != "" {
		var LogCPUProfile = osUtil.Create(*cpuProfile)
		defer simpleUtil.DeferClose(LogCPUProfile)
		pprof.StartCPUProfile(LogCPUProfile)
		defer pprof.StopCPUProfile()
	}

	if *resultsDir == "" {
		*resultsDir = filepath.Join(exPath, "results")
	}

	var cfg = util.Config{
		ResultsDir:         *resultsDir,
		ClusterProfilerCSV: resolve(*cpFile),
		GProfiler2CSV:      resolve(*gpFile),
		TopGOCSV:           resolve(*tgFile),
		OutputCSV:          resolve(*output),
		Cutoff:             *cutoff,
	}
	cfg.OutputXlsx = strings.TrimSuffix(cfg.OutputCSV, ".csv") + ".xlsx"

	var comparison = util.New(cfg)
	comparison.LoadConfig(exPath, etcEMFS)

	fmt.Println("Creating comprehensive enrichment comparison table...")
	fmt.Println(strings.Repeat("=", 60))

	if err := comparison.CheckInputs(); err != nil {
		log.Fatal(err)
	}
	simpleUtil.CheckErr(comparison.LoadAll(os.Stdout))
	comparison.Merge(os.Stdout)

	comparison.Merged.WriteCSV(cfg.OutputCSV)
	comparison.WriteXlsx(cfg.OutputXlsx)
	comparison.Report(os.Stdout)

	Notify(comparison)

	if *memProfile != "" {
		var LogMemProfile = osUtil.Create(*memProfile)
		defer simpleUtil.DeferClose(LogMemProfile)
		pprof.WriteHeapProfile(LogMemProfile)
	}

	slog.Info("Done", "time", time.Since(now))
}
