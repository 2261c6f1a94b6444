package datasets

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNoHeader      = errors.New("csv has no header row")
	ErrMissingColumn = errors.New("column missing from table")
	ErrNotNumeric    = errors.New("value is not numeric")
)

// Table is a raw csv file as downloaded: a header row and string records.
type Table struct {
	Header  []string   `json:"header"`
	Records [][]string `json:"records"`
}

// ParseCSV reads a csv after skipping skipRows raw lines of preamble. Header names are
// trimmed and rows shorter than the header are padded with empty values.
func ParseCSV(r io.Reader, skipRows int) (*Table, error) {
	br := bufio.NewReader(r)
	for i := 0; i < skipRows; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("skipping %d rows, %w", skipRows, ErrNoHeader)
			}
			return nil, err
		}
	}

	reader := csv.NewReader(br)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("unable to read header, %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read record %d, %w", len(records)+1, err)
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		records = append(records, record)
	}

	return &Table{Header: header, Records: records}, nil
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Records)
}

// ColumnIndex returns the position of the named column or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// RenameColumns maps every header name through fn.
func (t *Table) RenameColumns(fn func(string) string) {
	for i, h := range t.Header {
		t.Header[i] = fn(h)
	}
}

// Column returns the trimmed values of the named column.
func (t *Table) Column(name string) ([]string, error) {
	j := t.ColumnIndex(name)
	if j < 0 {
		return nil, fmt.Errorf("%q, %w", name, ErrMissingColumn)
	}
	vals := make([]string, len(t.Records))
	for i, record := range t.Records {
		vals[i] = strings.TrimSpace(record[j])
	}
	return vals, nil
}

// Floats parses the named column, reading missing value markers as NaN.
func (t *Table) Floats(name string) ([]float64, error) {
	raw, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, len(raw))
	for i, s := range raw {
		v, err := parseFloat(s)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d, %w", name, i, err)
		}
		vals[i] = v
	}
	return vals, nil
}

// Ints parses the named column as integers.
func (t *Table) Ints(name string) ([]int, error) {
	raw, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	vals := make([]int, len(raw))
	for i, s := range raw {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d, %q, %w", name, i, s, ErrNotNumeric)
		}
		vals[i] = v
	}
	return vals, nil
}

// IsNumeric reports whether every value of the named column parses as a float.
func (t *Table) IsNumeric(name string) bool {
	_, err := t.Floats(name)
	return err == nil
}

func parseFloat(s string) (float64, error) {
	if isMissing(s) {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q, %w", s, ErrNotNumeric)
	}
	return v, nil
}

func isMissing(s string) bool {
	switch s {
	case "", "NA", "NaN", "nan", "N/A":
		return true
	}
	return strings.Trim(s, "*") == ""
}
