package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/banitsriram/young-modulus/internal/experiment"
)

// ExportData is the JSON shape of a finished run.
type ExportData struct {
	Material    string        `json:"material"`
	Bending     string        `json:"bending"`
	LengthCm    float64       `json:"length_cm"`
	BreadthCm   float64       `json:"breadth_cm"`
	WidthCm     float64       `json:"width_cm"`
	InertiaCm4  float64       `json:"inertia_cm4"`
	Readings    []ReadingData `json:"readings"`
	MeanGPa     float64       `json:"mean_gpa"`
	ExpectedGPa float64       `json:"expected_gpa"`
	PercentDiff float64       `json:"percent_diff"`
	Band        string        `json:"band"`
	Warnings    []string      `json:"warnings,omitempty"`
}

// ReadingData is one reading in an export.
type ReadingData struct {
	Index        int     `json:"index"`
	LoadG        float64 `json:"load_g"`
	InitialCm    float64 `json:"initial_cm"`
	FinalCm      float64 `json:"final_cm"`
	DepressionCm float64 `json:"depression_cm"`
	ModulusGPa   float64 `json:"modulus_gpa,omitempty"`
	Excluded     bool    `json:"excluded,omitempty"`
}

// ExportJSON writes the run as indented JSON.
func ExportJSON(w io.Writer, res *experiment.Result) error {
	data := ExportData{
		Material:    res.Material.Key,
		Bending:     res.Bending.String(),
		LengthCm:    res.Dims.Length,
		BreadthCm:   res.Dims.Breadth,
		WidthCm:     res.Dims.Width,
		InertiaCm4:  res.Inertia,
		Readings:    make([]ReadingData, len(res.Readings)),
		MeanGPa:     res.Mean,
		ExpectedGPa: res.Outcome.Expected,
		PercentDiff: res.Outcome.PercentDiff,
		Band:        res.Outcome.Band.String(),
		Warnings:    res.Warnings,
	}
	for i, r := range res.Readings {
		data.Readings[i] = ReadingData{
			Index:        r.Index,
			LoadG:        r.Load,
			InitialCm:    r.Initial,
			FinalCm:      r.Final,
			DepressionCm: r.Deflection,
			ModulusGPa:   r.Modulus,
			Excluded:     r.Excluded(),
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV writes one row per reading. Excluded readings carry an
// empty modulus column.
func ExportCSV(w io.Writer, res *experiment.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"index", "load_g", "initial_cm", "final_cm", "depression_cm", "modulus_gpa"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range res.Readings {
		row := []string{
			strconv.Itoa(r.Index),
			strconv.FormatFloat(r.Load, 'f', 1, 64),
			strconv.FormatFloat(r.Initial, 'f', 3, 64),
			strconv.FormatFloat(r.Final, 'f', 3, 64),
			strconv.FormatFloat(r.Deflection, 'f', 3, 64),
		}
		if r.Excluded() {
			row = append(row, "")
		} else {
			row = append(row, strconv.FormatFloat(r.Modulus, 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}
