package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	util "EnrichAnalysis/pkg/enrichment"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"comparison table csv(.gz), as written by EnrichAnalysis",
	)
	list = flag.String(
		"l",
		"",
		"gene panel, one symbol per line",
	)
	output = flag.String(
		"o",
		"",
		"output tsv, default [-i].geneHits.txt",
	)
	column = flag.String(
		"c",
		"clusterprofiler_gene_ids",
		"gene id column to scan",
	)
	top = flag.Int(
		"top",
		10,
		"top genes to print",
	)
)

func main() {
	flag.Parse()
	if *input == "" || *list == "" {
		flag.PrintDefaults()
		log.Fatal("-i/-l required!")
	}
	if *output == "" {
		*output = *input + ".geneHits.txt"
	}
	now := time.Now()

	var panel = textUtil.File2Array(*list)

	var table = simpleUtil.HandleError(util.ReadTable(*input))
	if !table.Has(*column) {
		log.Fatalf("%s: no column %q", *input, *column)
	}

	var hits, scanned = util.ScanGenes(table, *column, panel)

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Count > hits[j].Count
	})

	var out = osUtil.Create(*output)
	fmtUtil.FprintStringArray(out, []string{"Gene", "TermCount", "Terms"}, "\t")
	var matched int
	for _, h := range hits {
		fmtUtil.Fprintf(out, "%s\t%d\t%s\n", h.Gene, h.Count, strings.Join(h.Terms, ";"))
		if h.Count > 0 {
			matched++
		}
	}
	fmtUtil.Fprintf(out, "\n# Processing Summary\n")
	fmtUtil.Fprintf(out, "# rows scanned: %d\n", scanned)
	fmtUtil.Fprintf(out, "# panel genes: %d\n", len(panel))
	fmtUtil.Fprintf(out, "# panel genes with hits: %d\n", matched)
	simpleUtil.CheckErr(out.Close())

	fmt.Printf("Scanned %d rows against %d panel genes, %d genes hit\n", scanned, len(panel), matched)
	fmt.Printf("Top %d genes by term count:\n", *top)
	fmt.Println("Gene\tTermCount")
	for i, h := range hits {
		if i >= *top || h.Count == 0 {
			break
		}
		fmt.Printf("%s\t%d\n", h.Gene, h.Count)
	}

	fmt.Printf("Results saved to: %s\n", *output)
	fmt.Printf("Total time: %v\n", time.Since(now))
}
