package perft

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Report renders an HTML bar chart of each suite case's node count,
// one bar per case, to w.
func Report(w io.Writer, results []Result) error {
	names := make([]string, 0, len(results))
	data := make([]opts.BarData, 0, len(results))
	for _, r := range results {
		names = append(names, r.Case.Name)
		data = append(data, opts.BarData{Value: r.Nodes})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title: "perft node counts",
	}))
	bar.SetXAxis(names).AddSeries("nodes", data)

	return bar.Render(w)
}
