// SPDX-License-Identifier: MIT

// Package report summarises coverage caches and renders their distribution.
//
// Summarize reduces a coverage.PointCache to descriptive statistics (count,
// mean, spread, extrema and the fraction of points at or above a strength
// threshold). Histogram plots the strengths with gonum/plot; WriteHistogram
// and SaveHistogram render it in any format plot supports (png, svg, pdf…).
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/covtensor/coverage"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Histogram page size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

var (
	// ErrEmpty indicates a summary or histogram of an empty cache.
	ErrEmpty = errors.New("report: coverage cache is empty")

	// ErrBins indicates a non-positive histogram bin count.
	ErrBins = errors.New("report: bin count must be positive")
)

// Summary describes a coverage cache.
type Summary struct {
	Count     int
	Mean      float64
	StdDev    float64
	Min, Max  float64
	Threshold float64
	Covered   float64 // fraction of points with strength >= Threshold
}

// Summarize computes the statistics of pc.
// Errors: ErrEmpty.
func Summarize(pc coverage.PointCache, threshold float64) (Summary, error) {
	vals := pc.Values()
	if len(vals) == 0 {
		return Summary{}, ErrEmpty
	}
	mean, std := stat.MeanStdDev(vals, nil)
	if len(vals) == 1 {
		std = 0
	}
	covered := 0
	for _, v := range vals {
		if v >= threshold {
			covered++
		}
	}

	return Summary{
		Count:     len(vals),
		Mean:      mean,
		StdDev:    std,
		Min:       floats.Min(vals),
		Max:       floats.Max(vals),
		Threshold: threshold,
		Covered:   float64(covered) / float64(len(vals)),
	}, nil
}

// String renders the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("points=%d mean=%.4f std=%.4f min=%.4f max=%.4f covered(>=%.2f)=%.1f%%",
		s.Count, s.Mean, s.StdDev, s.Min, s.Max, s.Threshold, 100*s.Covered)
}

// Histogram builds a plot of the strength distribution of pc over [0, 1].
// Errors: ErrEmpty, ErrBins.
func Histogram(pc coverage.PointCache, bins int, title string) (*plot.Plot, error) {
	if bins <= 0 {
		return nil, ErrBins
	}
	vals := pc.Values()
	if len(vals) == 0 {
		return nil, ErrEmpty
	}

	h, err := plotter.NewHist(plotter.Values(vals), bins)
	if err != nil {
		return nil, fmt.Errorf("report: histogram: %w", err)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "coverage strength"
	p.Y.Label.Text = "points"
	p.X.Min, p.X.Max = 0, 1
	p.Add(h)

	return p, nil
}

// WriteHistogram renders the histogram of pc to w in the given format.
func WriteHistogram(w io.Writer, pc coverage.PointCache, bins int, title, format string) error {
	p, err := Histogram(pc, bins, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(DefaultWidth, DefaultHeight, format)
	if err != nil {
		return fmt.Errorf("report: %s: %w", format, err)
	}
	_, err = wt.WriteTo(w)

	return err
}

// SaveHistogram renders the histogram of pc to path; the format follows the
// file extension.
func SaveHistogram(path string, pc coverage.PointCache, bins int, title string) error {
	p, err := Histogram(pc, bins, title)
	if err != nil {
		return err
	}

	return p.Save(DefaultWidth, DefaultHeight, path)
}
