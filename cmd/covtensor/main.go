// SPDX-License-Identifier: MIT

// Command covtensor evaluates the coverage tasks of a scene file.
//
// For every task it prints the performance (mean coverage strength) and a
// summary of the point strengths, and optionally writes a histogram of the
// strengths per task.
//
//	covtensor -config scene.yaml [-task inspect] [-histogram hist.png]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/covtensor/config"
	"github.com/katalvlaran/covtensor/coverage"
	"github.com/katalvlaran/covtensor/report"
)

func main() {
	var (
		cfgPath = flag.String("config", "scene.yaml", "scene configuration file")
		only    = flag.String("task", "", "evaluate only this task (default: all tasks)")
		hist    = flag.String("histogram", "", "histogram output file; overrides report.histogram")
	)
	flag.Parse()

	if err := run(*cfgPath, *only, *hist, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("covtensor: %v", err)
	}
}

// run loads the scene, evaluates the selected tasks and writes results to out
// and logs to logw.
func run(cfgPath, only, hist string, out, logw io.Writer) error {
	f, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	lvl, err := f.Level()
	if err != nil {
		return err
	}
	coverage.SetLogger(slog.New(slog.NewTextHandler(logw, &slog.HandlerOptions{Level: lvl})))

	m, err := f.Build()
	if err != nil {
		return err
	}

	names := m.TaskNames()
	if only != "" {
		names = []string{only}
	}
	if hist == "" {
		hist = f.Report.Histogram
	}

	for _, name := range names {
		task, err := m.Task(name)
		if err != nil {
			return err
		}
		cache, err := m.Coverage(task, nil)
		if err != nil {
			return err
		}
		perf, err := m.Performance(task, nil, cache)
		if errors.Is(err, coverage.ErrEmptyCoverage) {
			fmt.Fprintf(out, "%s\tno surface\n", name)
			continue
		}
		if err != nil {
			return err
		}
		sum, err := report.Summarize(cache, f.Report.Threshold)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\tperformance=%.4f\t%s\n", name, perf, sum)

		if hist != "" {
			path := histogramPath(hist, name, len(names) > 1)
			if err = report.SaveHistogram(path, cache, f.Report.BinCount(), name); err != nil {
				return fmt.Errorf("task %q: %w", name, err)
			}
			coverage.Logger().Info("histogram written", "task", name, "path", path)
		}
	}

	return nil
}

// histogramPath suffixes the task name before the extension when several
// tasks share one output setting.
func histogramPath(base, task string, multi bool) string {
	if !multi {
		return base
	}
	ext := filepath.Ext(base)

	return strings.TrimSuffix(base, ext) + "-" + task + ext
}
