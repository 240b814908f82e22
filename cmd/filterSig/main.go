package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	util "EnrichAnalysis/pkg/enrichment"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"comparison table csv(.gz), as written by EnrichAnalysis",
	)
	output = flag.String(
		"o",
		"",
		"output csv(.gz), default [-i prefix].sig[N].csv",
	)
	minSig = flag.Int(
		"n",
		2,
		"keep rows with methods_significant >= n",
	)
)

func main() {
	flag.Parse()
	if *input == "" {
		flag.PrintDefaults()
		log.Fatal("-i required!")
	}
	if *output == "" {
		var prefix = strings.TrimSuffix(strings.TrimSuffix(*input, ".gz"), ".csv")
		*output = fmt.Sprintf("%s.sig%d.csv", prefix, *minSig)
	}

	var table = simpleUtil.HandleError(util.ReadTable(*input))
	if !table.Has("methods_significant") {
		log.Fatalf("%s: no column %q", *input, "methods_significant")
	}

	var kept = util.FilterSignificant(table, *minSig)
	kept.WriteCSV(*output)

	fmt.Printf("Kept %d of %d terms with methods_significant >= %d\n", len(kept.Rows), len(table.Rows), *minSig)
	fmt.Printf("Results saved to: %s\n", *output)
}
