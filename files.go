package techocc

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strings"
)

// All code interacting with files is here. The analytical core never touches
// the filesystem; these are the I/O edges that feed it and drain it.

const (
	Sep         = ','
	EOL         = '\n'
	StringDelim = '"'
	FloatFormat = "%.6g"
	Header      = true
)

// Files writes one delimited output table.
type Files struct {
	FieldNames  []string
	EOL         byte
	Sep         byte
	StringDelim byte
	FloatFormat string
	Header      bool

	file     *os.File
	fileName string
}

func NewFiles() *Files {
	return &Files{
		EOL:         byte(EOL),
		Sep:         byte(Sep),
		StringDelim: byte(StringDelim),
		FloatFormat: FloatFormat,
		Header:      Header,
	}
}

func (f *Files) Create(fileName string) error {
	var e error
	f.fileName = fileName
	f.file, e = os.Create(fileName)

	return e
}

func (f *Files) FileName() string {
	return f.fileName
}

func (f *Files) Close() error {
	if f.file == nil {
		return fmt.Errorf("no open files")
	}

	return f.file.Close()
}

func (f *Files) WriteHeader() error {
	if !f.Header {
		return nil
	}

	if f.FieldNames == nil {
		return fmt.Errorf("field names not set in *Files")
	}

	_, e := f.file.WriteString(strings.Join(f.FieldNames, string(rune(f.Sep))) + string(rune(f.EOL)))

	return e
}

func (f *Files) WriteLine(v []any) error {
	var line []byte
	for ind := 0; ind < len(v); ind++ {
		var lx []byte
		switch d := v[ind].(type) {
		case float64:
			if math.IsNaN(d) {
				break // empty field for a missing value
			}

			lx = []byte(fmt.Sprintf(f.FloatFormat, d))
		case int:
			lx = []byte(fmt.Sprintf("%d", d))
		case string:
			// delimit strings: NOC titles carry embedded separators
			lx = []byte(d)
			lx = append([]byte{f.StringDelim}, lx...)
			lx = append(lx, f.StringDelim)
		default:
			lx = []byte("#err#")
		}

		line = append(line, lx...)
		if ind < len(v)-1 {
			line = append(line, f.Sep)
		}
	}

	if _, e := f.file.Write(line); e != nil {
		return e
	}

	_, e := f.file.Write([]byte{f.EOL})

	return e
}

// ReadRawTable loads a delimited file with a header row into a RawTable. The
// table name is the file name, for schema-error messages.
func ReadRawTable(fileName string) (*RawTable, error) {
	var (
		file *os.File
		e    error
	)

	if file, e = os.Open(fileName); e != nil {
		return nil, e
	}
	defer func() { _ = file.Close() }()

	rdr := csv.NewReader(file)
	rdr.FieldsPerRecord = -1 // the unifier validates widths

	var all [][]string
	if all, e = rdr.ReadAll(); e != nil {
		return nil, e
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%s: empty file", fileName)
	}

	return &RawTable{Name: fileName, Cols: all[0], Rows: all[1:]}, nil
}

// ReadCrosswalk loads a two-or-more-column crosswalk file: O*NET code in the
// first column, NOC title in the second, header row expected.
func ReadCrosswalk(fileName string) ([]CrosswalkEntry, error) {
	tab, e := ReadRawTable(fileName)
	if e != nil {
		return nil, e
	}

	if len(tab.Cols) < 2 {
		return nil, fmt.Errorf("%s: crosswalk needs 2 columns, has %d", fileName, len(tab.Cols))
	}

	xwalk := make([]CrosswalkEntry, 0, len(tab.Rows))
	for rowNum, row := range tab.Rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("%s row %d: short crosswalk row", fileName, rowNum)
		}

		xwalk = append(xwalk, CrosswalkEntry{ONetCode: row[0], NOCTitle: row[1]})
	}

	return xwalk, nil
}

// classificationFields is the output column order: title, a value and rank
// column per element, the composites, the labels, then the split code/name.
func classificationFields(cfg *Config) []string {
	fields := []string{"noc_title"}
	for _, el := range cfg.Elements {
		fields = append(fields, cfg.Label(el), cfg.Label(el)+".rank")
	}

	fields = append(fields, "harm.rank", "harm.rank.digital", "harm.rank.no.tel",
		"tech", "digital_label", "tech_no_tel", "noc_code", "noc_name")

	return fields
}

// SaveClassification writes the final classification table. Missing values,
// undefined composites and missing ranks come out as empty fields.
func SaveClassification(fileName string, rows []OccupationRankRow, cfg *Config) error {
	f := NewFiles()
	f.FieldNames = classificationFields(cfg)

	if e := f.Create(fileName); e != nil {
		return e
	}
	defer func() { _ = f.Close() }()

	if e := f.WriteHeader(); e != nil {
		return e
	}

	for _, row := range rows {
		line := []any{row.NOCTitle}
		for _, el := range cfg.Elements {
			val, ok := row.Values[el]
			if !ok {
				val = math.NaN()
			}

			line = append(line, val)

			if rank, okR := row.Ranks[el]; okR {
				line = append(line, rank)
			} else {
				line = append(line, "")
			}
		}

		line = append(line, row.HarmRank, row.HarmRankDigital, row.HarmRankNoTel,
			row.Tech, row.DigitalLabel, row.TechNoTel, row.NOCCode, row.NOCName)

		if e := f.WriteLine(line); e != nil {
			return e
		}
	}

	return nil
}
