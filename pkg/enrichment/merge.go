package enrichment

import (
	"math"
	"sort"
	"strconv"

	"github.com/liserjrqlxue/goUtil/stringsUtil"
)

// column groups consulted by the derived fields
var (
	nameColumns   = []string{"term_name", "term_name_gp", "term_name_tg"}
	pvalueColumns = []string{"clusterprofiler_pvalue", "gprofiler2_pvalue", "topgo_pvalue"}
	// topgo_significant_flag, not topgo_significant: the latter is topGO's
	// significant gene count
	significantColumns = []string{"clusterprofiler_significant", "gprofiler2_significant", "topgo_significant_flag"}
)

// renames applied by Arrange on output
var renameColumns = map[string]string{
	"term_name_final":       "term_name",
	"clusterprofiler_genes": "clusterprofiler_gene_ids",
}

// UnionTerms collects the distinct non-missing term ids across the tables,
// sorted, so the join base has a deterministic order.
func UnionTerms(tables ...*Table) []string {
	var (
		seen  = make(map[string]bool)
		terms []string
	)
	for _, t := range tables {
		for _, row := range t.Rows {
			var id = row["term_id"]
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			terms = append(terms, id)
		}
	}
	sort.Strings(terms)
	return terms
}

// leftJoin merges t's columns onto base on term_id. A column name already
// present in base gets suffix appended. Within t the first row per term_id
// wins; term ids are assumed unique per method.
func leftJoin(base, t *Table, suffix string) {
	var index = make(map[string]map[string]string)
	for _, row := range t.Rows {
		var id = row["term_id"]
		if id == "" {
			continue
		}
		if _, ok := index[id]; !ok {
			index[id] = row
		}
	}

	// src column -> merged column
	var outName = make(map[string]string)
	for _, col := range t.Title {
		if col == "term_id" {
			continue
		}
		var name = col
		if base.Has(name) {
			name += suffix
		}
		outName[col] = name
		base.Title = append(base.Title, name)
	}

	for _, row := range base.Rows {
		var src, ok = index[row["term_id"]]
		if !ok {
			continue
		}
		for col, name := range outName {
			if v := src[col]; v != "" {
				row[name] = v
			}
		}
	}
}

// MergeTables builds the master table: one row per term in the union,
// left-joined against each standardized method table in turn.
func MergeTables(cp, gp, tg *Table) *Table {
	var master = &Table{Title: []string{"term_id"}}
	for _, id := range UnionTerms(cp, gp, tg) {
		master.Rows = append(master.Rows, map[string]string{"term_id": id})
	}
	leftJoin(master, cp, "_cp")
	leftJoin(master, gp, "_gp")
	leftJoin(master, tg, "_tg")
	return master
}

// TermName resolves the display name: first non-missing method name in
// clusterProfiler, gprofiler2, topGO order, else "Unknown".
func TermName(row map[string]string) string {
	for _, col := range nameColumns {
		if v := row[col]; v != "" {
			return v
		}
	}
	return "Unknown"
}

// MethodsTotal counts the methods whose p-value cell is non-missing. An
// unparseable cell is missing, not present.
func MethodsTotal(row map[string]string) (n int) {
	for _, col := range pvalueColumns {
		if !math.IsNaN(ParsePValue(row[col])) {
			n++
		}
	}
	return
}

// MethodsSignificant counts the methods whose significance flag is true;
// a missing flag counts as false.
func MethodsSignificant(row map[string]string) (n int) {
	for _, col := range significantColumns {
		if ParseBoolCell(row[col]) {
			n++
		}
	}
	return
}

// MinPvalue is the smallest parseable p-value across the three methods;
// ok is false when none parses.
func MinPvalue(row map[string]string) (p float64, ok bool) {
	p = math.Inf(1)
	for _, col := range pvalueColumns {
		var v = ParsePValue(row[col])
		if math.IsNaN(v) {
			continue
		}
		ok = true
		if v < p {
			p = v
		}
	}
	return
}

// Derive appends the resolved name and the cross-method counters to every
// row of the master table.
func Derive(t *Table) {
	t.Title = append(t.Title, "term_name_final", "methods_total", "methods_significant")
	for _, row := range t.Rows {
		row["term_name_final"] = TermName(row)
		row["methods_total"] = strconv.Itoa(MethodsTotal(row))
		row["methods_significant"] = strconv.Itoa(MethodsSignificant(row))
	}
}

// SortRows orders rows by methods_significant desc, methods_total desc,
// then best p-value asc with missing-min last. The stable sort keeps the
// lexicographic term order for full ties.
func SortRows(t *Table) {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		var a, b = t.Rows[i], t.Rows[j]
		var sigA, sigB = stringsUtil.Atoi(a["methods_significant"]), stringsUtil.Atoi(b["methods_significant"])
		if sigA != sigB {
			return sigA > sigB
		}
		var totalA, totalB = stringsUtil.Atoi(a["methods_total"]), stringsUtil.Atoi(b["methods_total"])
		if totalA != totalB {
			return totalA > totalB
		}
		var pA, okA = MinPvalue(a)
		var pB, okB = MinPvalue(b)
		if okA != okB {
			return okA
		}
		return pA < pB
	})
}

// FilterSignificant keeps the rows whose methods_significant is at least
// minSig. Title and row maps are shared with the source table.
func FilterSignificant(t *Table, minSig int) *Table {
	var kept = &Table{Title: t.Title}
	for _, row := range t.Rows {
		if stringsUtil.Atoi(row["methods_significant"]) >= minSig {
			kept.Rows = append(kept.Rows, row)
		}
	}
	return kept
}

// Arrange selects the available columns of order, applies the output
// renames and rebuilds the rows under the final names.
func Arrange(t *Table, order []string) *Table {
	var (
		result = &Table{}
		src    []string
	)
	for _, col := range order {
		if !t.Has(col) {
			continue
		}
		src = append(src, col)
		var name = col
		if to, ok := renameColumns[col]; ok {
			name = to
		}
		result.Title = append(result.Title, name)
	}
	for _, row := range t.Rows {
		var out = make(map[string]string, len(src))
		for i, col := range src {
			if v, ok := row[col]; ok {
				out[result.Title[i]] = v
			}
		}
		result.Rows = append(result.Rows, out)
	}
	return result
}
