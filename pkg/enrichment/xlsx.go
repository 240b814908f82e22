package enrichment

import (
	"log"
	"strconv"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

// SummaryLines maps Stats keys to their report labels, in report order.
var SummaryLines = []struct {
	Key   string
	Label string
}{
	{"Total", "Total terms"},
	{"Found3", "Terms found by all 3 methods"},
	{"Found2", "Terms found by 2 methods"},
	{"Found1", "Terms found by 1 method"},
	{"Sig3", "Terms significant in all 3 methods"},
	{"Sig2", "Terms significant in 2 methods"},
	{"Sig1", "Terms significant in 1 method"},
	{"Sig0", "Terms not significant in any method"},
}

func SetRowStr(excel *excelize.File, sheet string, col, row int, values []string) {
	simpleUtil.CheckErr(
		excel.SetSheetRow(
			sheet,
			simpleUtil.HandleError(excelize.CoordinatesToCellName(col, row)),
			&values,
		),
	)
}

// WriteXlsx mirrors the comparison table into a workbook: a Comparison
// sheet with the full table and a Summary sheet with the distribution
// counts.
func (c *Comparison) WriteXlsx(path string) {
	var excel = excelize.NewFile()
	simpleUtil.CheckErr(excel.SetSheetName("Sheet1", "Comparison"))

	SetRowStr(excel, "Comparison", 1, 1, c.Merged.Title)
	for i, row := range c.Merged.Rows {
		var record = make([]string, len(c.Merged.Title))
		for j, col := range c.Merged.Title {
			record[j] = row[col]
		}
		SetRowStr(excel, "Comparison", 1, 2+i, record)
	}

	// 名称列和基因列表列加宽
	if n := len(c.Merged.Title); n > 1 {
		simpleUtil.CheckErr(excel.SetColWidth("Comparison", "B", "B", 45))
		var last = simpleUtil.HandleError(excelize.ColumnNumberToName(n))
		simpleUtil.CheckErr(excel.SetColWidth("Comparison", last, last, 60))
	}

	simpleUtil.HandleError(excel.NewSheet("Summary"))
	for i, s := range SummaryLines {
		SetRowStr(excel, "Summary", 1, 1+i, []string{s.Label, strconv.Itoa(c.Stats[s.Key])})
	}

	log.Println("SaveAs ", path)
	simpleUtil.CheckErr(excel.SaveAs(path))
}
