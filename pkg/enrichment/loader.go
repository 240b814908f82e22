package enrichment

import (
	"fmt"
)

// SchemaError reports a required column missing from an input file.
type SchemaError struct {
	File   string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing column %q", e.File, e.Column)
}

func requireColumns(path string, title []string, cols ...string) error {
	var seen = make(map[string]bool)
	for _, s := range title {
		seen[s] = true
	}
	for _, col := range cols {
		if !seen[col] {
			return &SchemaError{File: path, Column: col}
		}
	}
	return nil
}

// standardized column sets, in output order
var (
	TitleClusterProfiler = []string{
		"term_id", "term_name",
		"clusterprofiler_pvalue", "clusterprofiler_qvalue", "clusterprofiler_p_adjust",
		"clusterprofiler_fold_enrichment", "clusterprofiler_gene_count",
		"clusterprofiler_gene_ratio", "clusterprofiler_genes",
		"clusterprofiler_significant",
	}
	TitleGProfiler2 = []string{
		"term_id", "term_name",
		"gprofiler2_pvalue", "gprofiler2_significant",
		"gprofiler2_term_size", "gprofiler2_intersection_size",
		"gprofiler2_precision", "gprofiler2_recall",
	}
	TitleTopGO = []string{
		"term_id", "term_name",
		"topgo_pvalue_raw", "topgo_annotated", "topgo_significant", "topgo_expected",
		"topgo_pvalue", "topgo_significant_flag",
	}
)

// LoadClusterProfiler reads a clusterProfiler enrichment export and
// standardizes it. Significance is qvalue < cutoff; a missing or broken
// qvalue is not significant.
func LoadClusterProfiler(path string, cutoff float64) (*Table, error) {
	var title, data, err = ReadCSV(path)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(
		path, title,
		"ID", "Description", "pvalue", "qvalue", "p.adjust",
		"FoldEnrichment", "Count", "GeneRatio", "geneID",
	); err != nil {
		return nil, err
	}

	var result = &Table{Title: TitleClusterProfiler}
	for _, item := range data {
		result.Rows = append(result.Rows, map[string]string{
			"term_id":                         item["ID"],
			"term_name":                       item["Description"],
			"clusterprofiler_pvalue":          item["pvalue"],
			"clusterprofiler_qvalue":          item["qvalue"],
			"clusterprofiler_p_adjust":        item["p.adjust"],
			"clusterprofiler_fold_enrichment": item["FoldEnrichment"],
			"clusterprofiler_gene_count":      item["Count"],
			"clusterprofiler_gene_ratio":      item["GeneRatio"],
			"clusterprofiler_genes":           item["geneID"],
			"clusterprofiler_significant":     formatBool(ParsePValue(item["qvalue"]) < cutoff),
		})
	}
	return result, nil
}

// LoadGProfiler2 reads a gprofiler2 export, keeps the GO:BP rows only and
// standardizes them. The input's own significant column is trusted as-is,
// re-serialized lowercase; there is no cutoff here.
func LoadGProfiler2(path string) (*Table, error) {
	var title, data, err = ReadCSV(path)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(
		path, title,
		"source", "term_id", "term_name", "p_value", "significant",
		"term_size", "intersection_size", "precision", "recall",
	); err != nil {
		return nil, err
	}

	var result = &Table{Title: TitleGProfiler2}
	for _, item := range data {
		if item["source"] != "GO:BP" {
			continue
		}
		result.Rows = append(result.Rows, map[string]string{
			"term_id":                      item["term_id"],
			"term_name":                    item["term_name"],
			"gprofiler2_pvalue":            item["p_value"],
			"gprofiler2_significant":       formatBool(ParseBoolCell(item["significant"])),
			"gprofiler2_term_size":         item["term_size"],
			"gprofiler2_intersection_size": item["intersection_size"],
			"gprofiler2_precision":         item["precision"],
			"gprofiler2_recall":            item["recall"],
		})
	}
	return result, nil
}

// LoadTopGO reads a topGO export and standardizes it. The fisher column
// may carry a "< 1e-30" style floor; both the raw text and the normalized
// value are kept. The significance flag comes from the normalized p-value
// against cutoff, not from topGO's own Significant gene count.
func LoadTopGO(path string, cutoff float64) (*Table, error) {
	var title, data, err = ReadCSV(path)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(
		path, title,
		"GO.ID", "Term", "fisher", "Annotated", "Significant", "Expected",
	); err != nil {
		return nil, err
	}

	var result = &Table{Title: TitleTopGO}
	for _, item := range data {
		var p = ParsePValue(item["fisher"])
		result.Rows = append(result.Rows, map[string]string{
			"term_id":                item["GO.ID"],
			"term_name":              item["Term"],
			"topgo_pvalue_raw":       item["fisher"],
			"topgo_annotated":        item["Annotated"],
			"topgo_significant":      item["Significant"],
			"topgo_expected":         item["Expected"],
			"topgo_pvalue":           FormatPValue(p),
			"topgo_significant_flag": formatBool(p < cutoff),
		})
	}
	return result, nil
}
