package experiments

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"connectfour/experiments/metrics"
)

// plotTrace renders the learner's per-step rewards and temporal-
// difference errors as a line chart under the run directory.
func plotTrace(baseDir string, updates []metrics.UpdateMetric) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "learning trace",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	var steps []string
	tdItems := make([]opts.LineData, 0, len(updates))
	rewardItems := make([]opts.LineData, 0, len(updates))
	for _, u := range updates {
		steps = append(steps, fmt.Sprintf("%d", u.Seq))
		tdItems = append(tdItems, opts.LineData{Value: u.TDError})
		rewardItems = append(rewardItems, opts.LineData{Value: u.Reward})
	}

	line.SetXAxis(steps)
	line.AddSeries("td error", tdItems)
	line.AddSeries("reward", rewardItems)

	page := components.NewPage()
	page.AddCharts(line)

	path := filepath.Join(baseDir, "learning_trace.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
