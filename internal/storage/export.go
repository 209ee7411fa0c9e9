package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/programORdie2/verletlab/internal/experiment"
)

// ExportData is the flat on-disk shape of a run used by the export
// commands, independent of the run store layout.
type ExportData struct {
	Label   string               `json:"label"`
	Dt      float64              `json:"dt"`
	Frames  int                  `json:"frames"`
	Times   []float64            `json:"times"`
	Counts  []int                `json:"counts"`
	Series  map[string][]float64 `json:"series"`
	Metrics map[string]float64   `json:"metrics"`
}

func newExportData(label string, dt float64, result *experiment.Result) ExportData {
	return ExportData{
		Label:   label,
		Dt:      dt,
		Frames:  result.FramesRun,
		Times:   result.Times,
		Counts:  result.Counts,
		Series:  result.Series,
		Metrics: result.Metrics,
	}
}

// ExportJSON writes a run as indented JSON to path.
func ExportJSON(path, label string, dt float64, result *experiment.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return writeExportJSON(file, label, dt, result)
}

// ExportJSONStdout writes a run as indented JSON to standard output.
func ExportJSONStdout(label string, dt float64, result *experiment.Result) error {
	return writeExportJSON(os.Stdout, label, dt, result)
}

func writeExportJSON(w io.Writer, label string, dt float64, result *experiment.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newExportData(label, dt, result))
}

// ExportCSV writes the per-frame series of a run as CSV: a time
// column, the particle count and one column per recorded series in
// name order.
func ExportCSV(w io.Writer, result *experiment.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	names := make([]string, 0, len(result.Series))
	for name := range result.Series {
		names = append(names, name)
	}
	sort.Strings(names)

	header := append([]string{"time", "count"}, names...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range result.Times {
		row := make([]string, 0, len(header))
		row = append(row, strconv.FormatFloat(result.Times[i], 'f', 6, 64))
		row = append(row, strconv.Itoa(result.Counts[i]))
		for _, name := range names {
			row = append(row, strconv.FormatFloat(result.Series[name][i], 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// ExportCSVFile writes the per-frame series of a run as CSV to path.
func ExportCSVFile(path string, result *experiment.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return ExportCSV(file, result)
}
