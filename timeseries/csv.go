package timeseries

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// CSVOptions holds options for annual CSV loading. Column names are matched
// exactly against the header; there is no name guessing.
type CSVOptions struct {
	YearColumn  string // Column name for years (default: "Year")
	ValueColumn string // Column name for values (required)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip before the header
}

// DefaultCSVOptions returns default options for annual CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		YearColumn:  "Year",
		ValueColumn: "Value",
		Delimiter:   ',',
	}
}

// LoadAnnualCSV loads an annual series from a CSV file.
//
// Rows sharing a year are summed into a single yearly total (datasets often
// carry one row per country per year) and the result is sorted by year.
// Rows with unparseable values are skipped.
func LoadAnnualCSV(filename string, opts *CSVOptions) (*Annual, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadAnnualCSVFromReader(file, opts)
}

// LoadAnnualCSVFromReader loads an annual series from an io.Reader.
func LoadAnnualCSVFromReader(r io.Reader, opts *CSVOptions) (*Annual, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	yearIdx, valueIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(strings.Trim(h, "\"")) {
		case opts.YearColumn:
			yearIdx = i
		case opts.ValueColumn:
			valueIdx = i
		}
	}
	if yearIdx == -1 {
		return nil, fmt.Errorf("timeseries: %q: %w", opts.YearColumn, ErrMissingColumn)
	}
	if valueIdx == -1 {
		return nil, fmt.Errorf("timeseries: %q: %w", opts.ValueColumn, ErrMissingColumn)
	}

	totals := make(map[int]float64)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if yearIdx >= len(record) || valueIdx >= len(record) {
			continue
		}

		yearStr := strings.TrimSpace(strings.Trim(record[yearIdx], "\""))
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			continue
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		valStr = strings.ReplaceAll(valStr, ",", "")
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil || val < 0 {
			continue
		}

		totals[year] += val
	}

	if len(totals) == 0 {
		return nil, ErrNoData
	}

	years := make([]int, 0, len(totals))
	for y := range totals {
		years = append(years, y)
	}
	sort.Ints(years)

	values := make([]float64, len(years))
	for i, y := range years {
		values[i] = totals[y]
	}

	return New(years, values)
}
