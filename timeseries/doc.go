// Package timeseries provides annual time series data structures and loading.
//
// This package includes the Annual type for yearly count data, along with
// CSV loading that aggregates per-year totals.
//
// # Creating a Series
//
// Create an annual series from parallel slices:
//
//	series, err := timeseries.New(
//	    []int{2019, 2020, 2021},
//	    []float64{100, 110, 121},
//	)
//
// # Loading from CSV
//
// Load annual data from a CSV file with explicit column names:
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.ValueColumn = "Refugees under UNHCR's mandate"
//	opts.SkipRows = 14 // preamble before the header
//	series, err := timeseries.LoadAnnualCSV("persons_of_concern.csv", opts)
//
// Rows sharing a year are summed into one yearly total, so per-country rows
// collapse into a global series. Years with a zero total should be dropped
// before growth estimation:
//
//	series = series.FilterPositive()
//
// # Basic Statistics
//
//	mean := series.Mean()
//	std := series.Std()
//	last := series.Last() // most recent (year, value)
package timeseries
