package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/banitsriram/young-modulus/internal/analysis"
	"github.com/banitsriram/young-modulus/internal/experiment"
	"github.com/banitsriram/young-modulus/internal/flexure"
	"github.com/banitsriram/young-modulus/internal/material"
)

// sampleResult runs a steel experiment with one unusable reading in the
// middle.
func sampleResult(t *testing.T) *experiment.Result {
	t.Helper()
	mat, err := material.Lookup("steel")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	res, err := experiment.Run(experiment.Config{
		Material: mat,
		Dims:     flexure.Dimensions{Length: 50, Breadth: 2, Width: 0.3},
		Bending:  flexure.NonUniform,
		Readings: []flexure.Reading{
			{Load: 50, Initial: 1.2, Final: 1.214},
			{Load: 100, Initial: 1.2, Final: 1.2},
			{Load: 150, Initial: 1.2, Final: 1.243},
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return res
}

func TestText(t *testing.T) {
	out := Text(sampleResult(t))

	for _, want := range []string{
		"YOUNG'S MODULUS BY NON-UNIFORM BENDING",
		"Steel (Mild)",
		"Documented modulus: 200 GPa",
		"Density:            7.85 g/cm³",
		"Moment of inertia:  0.004500 cm⁴",
		"excluded",
		"1 of 3 readings excluded",
		"Mean modulus:",
		"good agreement with the documented value",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestText_DeviationAdvice(t *testing.T) {
	res := sampleResult(t)
	res.Outcome.Band = analysis.Large

	out := Text(res)
	if !strings.Contains(out, "large deviation") {
		t.Errorf("verdict missing:\n%s", out)
	}
	if !strings.Contains(out, "possible causes") {
		t.Errorf("advice missing:\n%s", out)
	}

	res.Outcome.Band = analysis.Good
	if strings.Contains(Text(res), "possible causes") {
		t.Error("good band should not carry advice")
	}
}

func TestRender(t *testing.T) {
	out := Render(sampleResult(t))

	for _, want := range []string{
		"young's modulus by non-uniform bending",
		"Steel (Mild)",
		"excluded",
		"good agreement",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	res := sampleResult(t)
	path := filepath.Join(t.TempDir(), DefaultFilename(res))
	if err := WriteFile(path, res); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "Verdict:") {
		t.Errorf("file missing verdict line:\n%s", data)
	}
}

func TestDefaultFilename(t *testing.T) {
	res := sampleResult(t)
	if got, want := DefaultFilename(res), "youngs_modulus_steel_non_uniform.txt"; got != want {
		t.Errorf("DefaultFilename = %q, want %q", got, want)
	}

	res.Bending = flexure.Uniform
	res.Material.Key = "brass"
	if got, want := DefaultFilename(res), "youngs_modulus_brass_uniform.txt"; got != want {
		t.Errorf("DefaultFilename = %q, want %q", got, want)
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSON(&buf, sampleResult(t)); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if data.Material != "steel" {
		t.Errorf("material = %q, want steel", data.Material)
	}
	if data.Bending != "non-uniform" {
		t.Errorf("bending = %q, want non-uniform", data.Bending)
	}
	if len(data.Readings) != 3 {
		t.Fatalf("readings = %d, want 3", len(data.Readings))
	}
	if !data.Readings[1].Excluded {
		t.Error("reading 2 should be marked excluded")
	}
	if data.ExpectedGPa != 200 {
		t.Errorf("expected_gpa = %g, want 200", data.ExpectedGPa)
	}
	if data.Band != "good agreement" {
		t.Errorf("band = %q, want good agreement", data.Band)
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, sampleResult(t)); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("records = %d, want header plus 3 rows", len(records))
	}
	if records[0][0] != "index" || records[0][5] != "modulus_gpa" {
		t.Errorf("unexpected header %v", records[0])
	}
	if records[2][5] != "" {
		t.Errorf("excluded reading modulus = %q, want empty", records[2][5])
	}
	if records[1][5] == "" {
		t.Error("valid reading should carry a modulus")
	}
}

func TestCharts(t *testing.T) {
	res := sampleResult(t)

	defl := DeflectionChart(res)
	if !strings.Contains(defl, "depression (cm) per reading") {
		t.Errorf("deflection chart missing caption:\n%s", defl)
	}
	mod := ModulusChart(res)
	if !strings.Contains(mod, "modulus (GPa) per valid reading") {
		t.Errorf("modulus chart missing caption:\n%s", mod)
	}
}
