package enrichment

import (
	"reflect"
	"strconv"
	"testing"
)

func TestUnionTerms(t *testing.T) {
	a := &Table{
		Title: []string{"term_id"},
		Rows: []map[string]string{
			{"term_id": "GO:0000002"},
			{"term_id": "GO:0000001"},
			{"term_id": ""},
		},
	}
	b := &Table{
		Title: []string{"term_id"},
		Rows: []map[string]string{
			{"term_id": "GO:0000001"},
			{"term_id": "GO:0000003"},
		},
	}
	expected := []string{"GO:0000001", "GO:0000002", "GO:0000003"}
	if got := UnionTerms(a, b); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, but got %v", expected, got)
	}
}

func TestMergeTablesDerive(t *testing.T) {
	cp := &Table{
		Title: []string{"term_id", "term_name", "clusterprofiler_pvalue", "clusterprofiler_significant"},
		Rows: []map[string]string{
			{"term_id": "GO:0000001", "term_name": "alpha", "clusterprofiler_pvalue": "0.001", "clusterprofiler_significant": "true"},
		},
	}
	gp := &Table{
		Title: []string{"term_id", "term_name", "gprofiler2_pvalue", "gprofiler2_significant"},
		Rows:  []map[string]string{},
	}
	tg := &Table{
		Title: []string{"term_id", "term_name", "topgo_pvalue", "topgo_significant_flag"},
		Rows: []map[string]string{
			{"term_id": "GO:0000001", "term_name": "alpha fatty", "topgo_pvalue": "0.2", "topgo_significant_flag": "false"},
			{"term_id": "GO:0000002", "term_name": "beta", "topgo_pvalue": "0.01", "topgo_significant_flag": "true"},
		},
	}

	merged := MergeTables(cp, gp, tg)
	Derive(merged)

	if len(merged.Rows) != 2 {
		t.Fatalf("len(Rows) = %d; want 2", len(merged.Rows))
	}

	// Name columns collide, the later method gets a suffix
	if !merged.Has("term_name") || !merged.Has("term_name_tg") {
		t.Errorf("Expected term_name and term_name_tg in %v", merged.Title)
	}

	// Found by two methods, significant in one
	{
		row := merged.Rows[0]
		if row["term_id"] != "GO:0000001" {
			t.Errorf("term_id = %q; want %q", row["term_id"], "GO:0000001")
		}
		if row["methods_total"] != "2" {
			t.Errorf("methods_total = %q; want %q", row["methods_total"], "2")
		}
		if row["methods_significant"] != "1" {
			t.Errorf("methods_significant = %q; want %q", row["methods_significant"], "1")
		}
		if row["term_name_final"] != "alpha" {
			t.Errorf("term_name_final = %q; want %q", row["term_name_final"], "alpha")
		}
	}

	// Only one method saw the term, its name fills term_name_final
	{
		row := merged.Rows[1]
		if row["methods_total"] != "1" {
			t.Errorf("methods_total = %q; want %q", row["methods_total"], "1")
		}
		if row["methods_significant"] != "1" {
			t.Errorf("methods_significant = %q; want %q", row["methods_significant"], "1")
		}
		if row["term_name_final"] != "beta" {
			t.Errorf("term_name_final = %q; want %q", row["term_name_final"], "beta")
		}
	}
}

func TestLeftJoinFirstWins(t *testing.T) {
	dup := &Table{
		Title: []string{"term_id", "topgo_pvalue"},
		Rows: []map[string]string{
			{"term_id": "GO:0000009", "topgo_pvalue": "0.01"},
			{"term_id": "GO:0000009", "topgo_pvalue": "0.9"},
		},
	}
	merged := MergeTables(&Table{Title: []string{"term_id"}}, &Table{Title: []string{"term_id"}}, dup)
	if len(merged.Rows) != 1 {
		t.Fatalf("len(Rows) = %d; want 1", len(merged.Rows))
	}
	if got := merged.Rows[0]["topgo_pvalue"]; got != "0.01" {
		t.Errorf("topgo_pvalue = %q; want %q", got, "0.01")
	}
}

func TestTermName(t *testing.T) {
	cases := []struct {
		row      map[string]string
		expected string
	}{
		{map[string]string{"term_name": "a", "term_name_gp": "b", "term_name_tg": "c"}, "a"},
		{map[string]string{"term_name": "", "term_name_gp": "b", "term_name_tg": "c"}, "b"},
		{map[string]string{"term_name_tg": "c"}, "c"},
		{map[string]string{}, "Unknown"},
	}
	for _, c := range cases {
		if got := TermName(c.row); got != c.expected {
			t.Errorf("TermName(%v) = %q; want %q", c.row, got, c.expected)
		}
	}
}

func TestMethodsCounts(t *testing.T) {
	row := map[string]string{
		"clusterprofiler_pvalue":      "0.001",
		"clusterprofiler_significant": "true",
		"topgo_pvalue":                "0.2",
		"topgo_significant_flag":      "false",
	}
	if got := MethodsTotal(row); got != 2 {
		t.Errorf("MethodsTotal() = %d; want 2", got)
	}
	if got := MethodsSignificant(row); got != 1 {
		t.Errorf("MethodsSignificant() = %d; want 1", got)
	}

	// Missing flags count as not significant
	if got := MethodsSignificant(map[string]string{}); got != 0 {
		t.Errorf("MethodsSignificant() = %d; want 0", got)
	}

	// An unparseable p-value cell is missing, not present
	{
		junk := map[string]string{
			"clusterprofiler_pvalue": "n/a",
			"gprofiler2_pvalue":      "0.03",
		}
		if got := MethodsTotal(junk); got != 1 {
			t.Errorf("MethodsTotal() = %d; want 1", got)
		}
	}
}

func TestMinPvalue(t *testing.T) {
	{
		row := map[string]string{
			"clusterprofiler_pvalue": "0.05",
			"gprofiler2_pvalue":      "1e-09",
			"topgo_pvalue":           "",
		}
		got, ok := MinPvalue(row)
		if !ok || got != 1e-09 {
			t.Errorf("MinPvalue() = %v, %v; want 1e-09, true", got, ok)
		}
	}
	{
		if _, ok := MinPvalue(map[string]string{"topgo_pvalue": "n/a"}); ok {
			t.Error("MinPvalue() ok = true; want false for unparseable cells")
		}
	}
}

func TestSortRows(t *testing.T) {
	table := &Table{
		Title: []string{"term_id", "methods_significant", "methods_total", "clusterprofiler_pvalue"},
		Rows: []map[string]string{
			{"term_id": "GO:0000005", "methods_significant": "0", "methods_total": "1", "clusterprofiler_pvalue": ""},
			{"term_id": "GO:0000001", "methods_significant": "2", "methods_total": "3", "clusterprofiler_pvalue": "0.01"},
			{"term_id": "GO:0000004", "methods_significant": "0", "methods_total": "1", "clusterprofiler_pvalue": "0.2"},
			{"term_id": "GO:0000002", "methods_significant": "2", "methods_total": "2", "clusterprofiler_pvalue": "0.001"},
			{"term_id": "GO:0000003", "methods_significant": "1", "methods_total": "2", "clusterprofiler_pvalue": "0.04"},
		},
	}
	SortRows(table)

	var order []string
	for _, row := range table.Rows {
		order = append(order, row["term_id"])
	}
	expected := []string{"GO:0000001", "GO:0000002", "GO:0000003", "GO:0000004", "GO:0000005"}
	if !reflect.DeepEqual(order, expected) {
		t.Errorf("Expected %v, but got %v", expected, order)
	}

	// No adjacent pair violates the ordering keys
	for i := 1; i < len(table.Rows); i++ {
		prev, cur := table.Rows[i-1], table.Rows[i]
		prevSig, _ := strconv.Atoi(prev["methods_significant"])
		curSig, _ := strconv.Atoi(cur["methods_significant"])
		if prevSig < curSig {
			t.Errorf("rows %d,%d out of order on methods_significant", i-1, i)
		}
	}
}

func TestFilterSignificant(t *testing.T) {
	table := &Table{
		Title: []string{"term_id", "methods_significant"},
		Rows: []map[string]string{
			{"term_id": "GO:0000001", "methods_significant": "3"},
			{"term_id": "GO:0000002", "methods_significant": "2"},
			{"term_id": "GO:0000003", "methods_significant": "1"},
			{"term_id": "GO:0000004", "methods_significant": "0"},
		},
	}

	// Rows at and above the threshold survive, nothing below does
	kept := FilterSignificant(table, 2)
	var ids []string
	for _, row := range kept.Rows {
		ids = append(ids, row["term_id"])
	}
	expected := []string{"GO:0000001", "GO:0000002"}
	if !reflect.DeepEqual(ids, expected) {
		t.Errorf("Expected %v, but got %v", expected, ids)
	}
	if !reflect.DeepEqual(kept.Title, table.Title) {
		t.Errorf("Expected %v, but got %v", table.Title, kept.Title)
	}

	// Threshold 0 keeps everything
	if got := len(FilterSignificant(table, 0).Rows); got != 4 {
		t.Errorf("len(Rows) = %d; want 4", got)
	}
}

func TestArrange(t *testing.T) {
	table := &Table{
		Title: []string{
			"term_id", "term_name", "term_name_gp", "term_name_tg", "term_name_final",
			"methods_significant", "methods_total",
			"clusterprofiler_pvalue", "clusterprofiler_gene_ratio", "clusterprofiler_genes",
		},
		Rows: []map[string]string{
			{
				"term_id":                    "GO:0000001",
				"term_name":                  "alpha",
				"term_name_final":            "alpha",
				"methods_significant":        "1",
				"methods_total":              "1",
				"clusterprofiler_pvalue":     "0.001",
				"clusterprofiler_gene_ratio": "50/400",
				"clusterprofiler_genes":      "Acsl1/Lpl",
			},
		},
	}
	order := []string{
		"term_id", "term_name_final", "methods_significant", "methods_total",
		"clusterprofiler_pvalue", "gprofiler2_pvalue", "clusterprofiler_genes",
	}
	arranged := Arrange(table, order)

	// Absent columns are dropped, kept ones are renamed for output
	expected := []string{
		"term_id", "term_name", "methods_significant", "methods_total",
		"clusterprofiler_pvalue", "clusterprofiler_gene_ids",
	}
	if !reflect.DeepEqual(arranged.Title, expected) {
		t.Errorf("Expected %v, but got %v", expected, arranged.Title)
	}

	row := arranged.Rows[0]
	if row["term_name"] != "alpha" {
		t.Errorf("term_name = %q; want %q", row["term_name"], "alpha")
	}
	if row["clusterprofiler_gene_ids"] != "Acsl1/Lpl" {
		t.Errorf("clusterprofiler_gene_ids = %q; want %q", row["clusterprofiler_gene_ids"], "Acsl1/Lpl")
	}
	if _, ok := row["clusterprofiler_gene_ratio"]; ok {
		t.Error("clusterprofiler_gene_ratio not dropped from rows")
	}
}
