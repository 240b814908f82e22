package enrichment

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// Table is a header-ordered tabular result: Title keeps the column order,
// Rows hold cells keyed by column name. A missing cell is an absent key or
// an empty string.
type Table struct {
	Title []string
	Rows  []map[string]string
}

func (t *Table) Has(col string) bool {
	for _, s := range t.Title {
		if s == col {
			return true
		}
	}
	return false
}

// ReadCSV reads a comma-delimited file with a header row into row maps,
// transparently decompressing *.gz. Upstream R exports quote term names
// that contain commas, so this goes through encoding/csv rather than a
// plain split.
func ReadCSV(path string) (title []string, data []map[string]string, err error) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer simpleUtil.DeferClose(file)

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, errGz := pgzip.NewReader(file)
		if errGz != nil {
			err = errGz
			return
		}
		defer simpleUtil.DeferClose(gz)
		reader = gz
	}

	var r = csv.NewReader(reader)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil || len(records) == 0 {
		return
	}

	title = records[0]
	for _, record := range records[1:] {
		var row = make(map[string]string)
		for i, v := range record {
			if i < len(title) {
				row[title[i]] = v
			}
		}
		data = append(data, row)
	}
	return
}

func ReadTable(path string) (*Table, error) {
	var title, data, err = ReadCSV(path)
	if err != nil {
		return nil, err
	}
	return &Table{Title: title, Rows: data}, nil
}

// WriteCSV writes the table in Title order, no index column, *.gz aware.
func (t *Table) WriteCSV(path string) {
	var file = osUtil.Create(path)
	defer simpleUtil.DeferClose(file)

	var writer io.Writer = file
	if strings.HasSuffix(path, ".gz") {
		var gz = pgzip.NewWriter(file)
		defer simpleUtil.DeferClose(gz)
		writer = gz
	}

	var w = csv.NewWriter(writer)
	simpleUtil.CheckErr(w.Write(t.Title))
	for _, row := range t.Rows {
		var record = make([]string, len(t.Title))
		for i, col := range t.Title {
			record[i] = row[col]
		}
		simpleUtil.CheckErr(w.Write(record))
	}
	w.Flush()
	simpleUtil.CheckErr(w.Error())
}
