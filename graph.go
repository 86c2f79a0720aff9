// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pagemorph

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const xtickevery = 16

// createVLine creates a vertical line at a particular x value for a
// graph
func createVLine(x, ymax float64, c drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		XValues: []float64{x, x},
		YValues: []float64{0, ymax},
		Style: chart.Style{
			StrokeColor:     c,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}

// GraphHistogram creates a graph of the gray level histogram of a
// page. If thresh is non-negative a guideline is drawn at that gray
// level, marking e.g. the threshold a binarization chose.
func GraphHistogram(hist [256]uint64, title string, thresh int, w io.Writer) error {
	var total uint64
	for _, n := range hist {
		total += n
	}
	if total == 0 {
		return errors.New("empty histogram")
	}

	var xvalues, yvalues []float64
	var ticks []chart.Tick
	var ymax float64
	for i, n := range hist {
		xvalues = append(xvalues, float64(i))
		yvalues = append(yvalues, float64(n))
		if float64(n) > ymax {
			ymax = float64(n)
		}
		if i%xtickevery == 0 || i == 255 {
			ticks = append(ticks, chart.Tick{Value: float64(i), Label: fmt.Sprintf("%d", i)})
		}
	}

	mainSeries := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorAlternateBlue,
		},
		XValues: xvalues,
		YValues: yvalues,
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1920,
		Height: 1080,
		XAxis: chart.XAxis{
			Name: "Gray level",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 255.0,
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Pixels",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: ymax,
			},
		},
		Series: []chart.Series{
			mainSeries,
		},
	}
	if thresh >= 0 && thresh < 256 {
		graph.Series = append(graph.Series, createVLine(float64(thresh), ymax, chart.ColorRed))
	}
	return graph.Render(chart.PNG, w)
}
