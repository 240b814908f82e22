package enrichment

import (
	"github.com/cloudflare/ahocorasick"
)

// GeneHit is one panel gene's hits across a comparison table: the number
// of rows whose gene list contains it and their term ids.
type GeneHit struct {
	Gene  string
	Count int
	Terms []string
}

// ScanGenes matches a gene panel against one column of the table. Hits
// come back in panel order; scanned is the number of rows with a
// non-empty cell. A row counts once per gene no matter how often the
// gene occurs in its cell. Substring match over the joined gene list,
// token boundaries are not checked.
func ScanGenes(t *Table, column string, panel []string) (hits []GeneHit, scanned int) {
	var matcher = ahocorasick.NewStringMatcher(panel)
	hits = make([]GeneHit, len(panel))
	for i, gene := range panel {
		hits[i].Gene = gene
	}
	for _, row := range t.Rows {
		var cell = row[column]
		if cell == "" {
			continue
		}
		scanned++
		for _, idx := range matcher.Match([]byte(cell)) {
			hits[idx].Count++
			hits[idx].Terms = append(hits[idx].Terms, row["term_id"])
		}
	}
	return
}
