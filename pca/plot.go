package pca

import (
	"fmt"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/MetalBlueberry/go-plotly/offline"
)

// Plot writes an HTML scatter of the first two component scores, one marker
// per occupation. It is the quick eyeball check on whether the tech
// occupations separate along the leading components.
func (r *Result) Plot(fileName string) error {
	_, k := r.Scores.Dims()
	if k < 2 {
		return fmt.Errorf("pca: plot needs at least 2 components, have %d", k)
	}

	n := len(r.Occupations)
	x := make([]float64, n)
	y := make([]float64, n)
	for ind := 0; ind < n; ind++ {
		x[ind] = r.Scores.At(ind, 0)
		y[ind] = r.Scores.At(ind, 1)
	}

	tr := &grob.Scatter{
		Name: "occupations",
		X:    x,
		Y:    y,
		Mode: grob.ScatterModeMarkers,
	}

	lay := &grob.Layout{
		Title: &grob.LayoutTitle{Text: "Occupation scores, first two components"},
		Xaxis: &grob.LayoutXaxis{Title: &grob.LayoutXaxisTitle{Text: "PC1"}},
		Yaxis: &grob.LayoutYaxis{Title: &grob.LayoutYaxisTitle{Text: "PC2"}},
	}

	fig := &grob.Fig{Layout: lay}
	fig.AddTraces(tr)

	offline.ToHtml(fig, fileName)

	return nil
}
