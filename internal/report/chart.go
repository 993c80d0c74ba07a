package report

import (
	"github.com/guptarohit/asciigraph"

	"github.com/banitsriram/young-modulus/internal/experiment"
)

// DeflectionChart plots the recorded depression of every reading, in
// collection order.
func DeflectionChart(res *experiment.Result) string {
	data := make([]float64, len(res.Readings))
	for i, r := range res.Readings {
		data[i] = r.Deflection
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("depression (cm) per reading"),
	)
}

// ModulusChart plots the modulus of the readings that survived
// exclusion.
func ModulusChart(res *experiment.Result) string {
	data := make([]float64, 0, len(res.Readings))
	for _, r := range res.Readings {
		if !r.Excluded() {
			data = append(data, r.Modulus)
		}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("modulus (GPa) per valid reading"),
	)
}
