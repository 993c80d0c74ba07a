// Package report renders a finished experiment for the console, for a
// plain-text file, and as JSON or CSV data.
package report

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/banitsriram/young-modulus/internal/analysis"
	"github.com/banitsriram/young-modulus/internal/experiment"
)

var (
	title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	label = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	text  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	rule  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	good     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	moderate = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	large    = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

// Verdict is the closing line of the report for a given band.
func Verdict(b analysis.Band) string {
	switch b {
	case analysis.Good:
		return "good agreement with the documented value"
	case analysis.Moderate:
		return "moderate deviation from the documented value"
	default:
		return "large deviation from the documented value; check the readings"
	}
}

// advice supplements the verdict when the result strays from the
// documented value.
func advice(b analysis.Band) string {
	if b == analysis.Good {
		return ""
	}
	return "possible causes: measurement error, material impurities, temperature effects, or a non-ideal setup"
}

func bandStyle(b analysis.Band) lipgloss.Style {
	switch b {
	case analysis.Good:
		return good
	case analysis.Moderate:
		return moderate
	default:
		return large
	}
}

// Render builds the styled console report.
func Render(res *experiment.Result) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(title.Render(fmt.Sprintf("young's modulus by %s bending", res.Bending)) + "\n")
	b.WriteString(rule.Render(strings.Repeat("─", 46)) + "\n\n")

	b.WriteString(label.Render("material    ") + text.Render(res.Material.Name) + "\n")
	b.WriteString(label.Render("documented  ") + text.Render(fmt.Sprintf("%g GPa", res.Material.Modulus)) + "\n")
	b.WriteString(label.Render("density     ") + text.Render(fmt.Sprintf("%.2f g/cm³", res.Material.Density)) + "\n")
	b.WriteString(label.Render("beam        ") + text.Render(fmt.Sprintf("%g × %g × %g cm", res.Dims.Length, res.Dims.Breadth, res.Dims.Width)) + "\n")
	b.WriteString(label.Render("inertia     ") + text.Render(fmt.Sprintf("%.6f cm⁴", res.Inertia)) + "\n\n")

	writeTable(&b, res)

	if n := res.Excluded(); n > 0 {
		b.WriteString("\n" + moderate.Render(fmt.Sprintf("%d of %d readings excluded: no measurable depression", n, len(res.Readings))) + "\n")
	}
	for _, msg := range res.Warnings {
		b.WriteString(moderate.Render("warning: "+msg) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(label.Render("mean modulus  ") + text.Render(fmt.Sprintf("%.2f GPa", res.Mean)) + "\n")
	b.WriteString(label.Render("difference    ") + text.Render(fmt.Sprintf("%.2f%%", res.Outcome.PercentDiff)) + "\n")
	b.WriteString(bandStyle(res.Outcome.Band).Render(Verdict(res.Outcome.Band)) + "\n")
	if tip := advice(res.Outcome.Band); tip != "" {
		b.WriteString(label.Render(tip) + "\n")
	}

	return b.String()
}

// Text builds the plain report written to the result file.
func Text(res *experiment.Result) string {
	var b strings.Builder

	heading := fmt.Sprintf("YOUNG'S MODULUS BY %s BENDING", strings.ToUpper(res.Bending.String()))
	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("  " + heading + "\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString(fmt.Sprintf("Material:           %s\n", res.Material.Name))
	b.WriteString(fmt.Sprintf("Documented modulus: %g GPa\n", res.Material.Modulus))
	b.WriteString(fmt.Sprintf("Density:            %.2f g/cm³\n", res.Material.Density))
	b.WriteString(fmt.Sprintf("Beam (L x b x w):   %g x %g x %g cm\n", res.Dims.Length, res.Dims.Breadth, res.Dims.Width))
	b.WriteString(fmt.Sprintf("Moment of inertia:  %.6f cm⁴\n\n", res.Inertia))

	writeTable(&b, res)

	if n := res.Excluded(); n > 0 {
		b.WriteString(fmt.Sprintf("\nNote: %d of %d readings excluded (no measurable depression)\n", n, len(res.Readings)))
	}
	for _, msg := range res.Warnings {
		b.WriteString("Warning: " + msg + "\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Mean modulus: %.2f GPa\n", res.Mean))
	b.WriteString(fmt.Sprintf("Difference:   %.2f%%\n", res.Outcome.PercentDiff))
	b.WriteString(fmt.Sprintf("Verdict:      %s\n", Verdict(res.Outcome.Band)))
	if tip := advice(res.Outcome.Band); tip != "" {
		b.WriteString(fmt.Sprintf("              %s\n", tip))
	}

	return b.String()
}

func writeTable(b *strings.Builder, res *experiment.Result) {
	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NO\tLOAD(G)\tINITIAL(CM)\tFINAL(CM)\tDEPRESSION(CM)\tY(GPA)")
	for _, r := range res.Readings {
		if r.Excluded() {
			fmt.Fprintf(tw, "%d\t%.1f\t%.3f\t%.3f\t%.3f\texcluded\n",
				r.Index, r.Load, r.Initial, r.Final, r.Deflection)
			continue
		}
		fmt.Fprintf(tw, "%d\t%.1f\t%.3f\t%.3f\t%.3f\t%.2f\n",
			r.Index, r.Load, r.Initial, r.Final, r.Deflection, r.Modulus)
	}
	tw.Flush()
}

// WriteFile saves the plain report to path.
func WriteFile(path string, res *experiment.Result) error {
	return os.WriteFile(path, []byte(Text(res)), 0644)
}

// DefaultFilename names the report file after the material and loading
// mode, e.g. youngs_modulus_steel_non_uniform.txt.
func DefaultFilename(res *experiment.Result) string {
	bending := strings.ReplaceAll(res.Bending.String(), "-", "_")
	return fmt.Sprintf("youngs_modulus_%s_%s.txt", res.Material.Key, bending)
}
