package ui

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"randlab/domain/randstat"
)

// chartOptions is the shared global option set for every chart page.
func chartOptions(title string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeChalk,
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{Title: title}),
	}
}

// resultFor fetches a named check result from the latest report, writing an
// HTTP error when it is not available.
func (a *App) resultFor(w http.ResponseWriter, checkName string) (randstat.CheckResult, bool) {
	report := a.latestReport()
	if report == nil {
		http.Error(w, "no report yet", http.StatusNotFound)
		return randstat.CheckResult{}, false
	}
	result, ok := report.Result(checkName)
	if !ok {
		http.Error(w, fmt.Sprintf("latest report has no %s result", checkName), http.StatusNotFound)
		return randstat.CheckResult{}, false
	}
	return result, true
}

func (a *App) handleFrequencyChart(w http.ResponseWriter, r *http.Request) {
	result, ok := a.resultFor(w, "distribution")
	if !ok {
		return
	}

	labels := make([]string, 0, len(result.Frequencies))
	items := make([]opts.BarData, 0, len(result.Frequencies))
	for _, point := range result.Frequencies {
		labels = append(labels, fmt.Sprintf("%d", point.Value))
		items = append(items, opts.BarData{Value: point.Count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(chartOptions("Value Frequencies")...)
	bar.SetXAxis(labels).AddSeries("Count", items)
	_ = bar.Render(w)
}

func (a *App) handleIntervalChart(w http.ResponseWriter, r *http.Request) {
	result, ok := a.resultFor(w, "distribution")
	if !ok {
		return
	}

	labels := make([]string, 0, len(result.Intervals))
	items := make([]opts.BarData, 0, len(result.Intervals))
	for _, bin := range result.Intervals {
		labels = append(labels, fmt.Sprintf("%.1f", bin.Left))
		items = append(items, opts.BarData{Value: bin.Density})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(chartOptions("Inter-Occurrence Interval Density")...)
	bar.SetXAxis(labels).AddSeries("Density", items)
	_ = bar.Render(w)
}

func convertQQData(points []randstat.QQPoint) []opts.ScatterData {
	items := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		items = append(items, opts.ScatterData{
			Value:      [2]float64{p.Theoretical, p.Sample},
			SymbolSize: 5,
		})
	}
	return items
}

func (a *App) handleQQChart(w http.ResponseWriter, r *http.Request) {
	result, ok := a.resultFor(w, "moments")
	if !ok {
		return
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(chartOptions("Quantile-Quantile")...)
	scatter.AddSeries("Uniform", convertQQData(result.UniformQQ))
	if len(result.NormalQQ) > 0 {
		scatter.AddSeries("Normal", convertQQData(result.NormalQQ))
	}
	_ = scatter.Render(w)
}

func (a *App) handleACFChart(w http.ResponseWriter, r *http.Request) {
	result, ok := a.resultFor(w, "autocorrelation")
	if !ok {
		return
	}

	labels := make([]string, 0, len(result.Autocorr))
	items := make([]opts.BarData, 0, len(result.Autocorr))
	for _, point := range result.Autocorr {
		labels = append(labels, fmt.Sprintf("%d", point.Lag))
		items = append(items, opts.BarData{Value: point.Coefficient})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(chartOptions("Autocorrelation by Lag")...)
	bar.SetXAxis(labels).AddSeries("ACF", items)
	_ = bar.Render(w)
}
