/*
 * driver.go, part of decorr.
 *
 * Copyright 2026 The decorr Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package subsample runs the whole decorrelation analysis on a trajectory:
// it reads the frames, estimates the decorrelation lag from the energy series,
// and writes the uncorrelated frames.
package subsample

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/decorr"
	"github.com/rmera/decorr/chemplot"
	"github.com/rmera/decorr/chemstat"
	"github.com/rmera/decorr/internal/log"
	"go.uber.org/zap"
)

// Driver runs subsampling analyses with a given configuration.
type Driver struct {
	Config   *Config
	Logger   *zap.SugaredLogger
	Provider chemstat.ThresholdProvider
}

// Result summarizes a subsampling run.
type Result struct {
	Frames    int //frames read
	Lags      int //lags in the autocorrelation function
	Threshold float64
	Tao       int
	Stride    int
	Written   int //frames written
}

// New returns a driver for cfg. If cfg sets a threshold, it is used for every run.
// Otherwise, the autocorrelation function is plotted to cfg.PlotFile and the threshold
// is read from the standard input. If logger is nil, the package logger is initialized
// according to cfg.Debug and used.
func New(cfg *Config, logger *zap.SugaredLogger) (*Driver, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Check(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		if err := log.Init(cfg.Debug); err != nil {
			return nil, err
		}
		logger = log.GetSugaredLogger()
	}
	D := &Driver{Config: cfg, Logger: logger}
	if cfg.Interactive() {
		D.Provider = chemstat.InteractiveThreshold{
			Render: chemplot.NewACFPlot(cfg.PlotFile).Render,
			Prompt: chemstat.PromptFrom(os.Stdin, os.Stdout),
		}
	} else {
		D.Provider = chemstat.FixedThreshold(*cfg.Threshold)
	}
	return D, nil
}

// Run reads r to the end, obtains the decorrelation lag of its energy series,
// and writes every stride-th frame, starting with the first, to w. w is not closed.
// Nothing is written to w if the analysis fails.
func (D *Driver) Run(r decorr.FrameReader, w decorr.FrameWriter) (*Result, error) {
	logger := D.Logger
	if logger == nil {
		logger = log.GetSugaredLogger()
	}
	if D.Provider == nil {
		return nil, fmt.Errorf("no threshold provider set")
	}
	T, err := decorr.ReadAll(r, "input")
	if err != nil {
		return nil, fmt.Errorf("can't read trajectory: %w", err)
	}
	logger.Infow("trajectory read", "frames", T.LenFrames(), "atoms", T.Len())
	if T.LenFrames() < D.Config.MinFrames {
		return nil, fmt.Errorf("trajectory has %d frames, at least %d needed", T.LenFrames(), D.Config.MinFrames)
	}
	if D.Config.ConvertToEV {
		T.ToEV()
		logger.Debug("energies converted to eV")
	}
	series, err := T.Energies()
	if err != nil {
		return nil, fmt.Errorf("can't obtain the energy series: %w", err)
	}
	d, err := chemstat.Estimate(series, D.Provider)
	if err != nil {
		var nd *chemstat.NoDecorrelationFoundError
		if errors.As(err, &nd) {
			logger.Warnw("no decorrelation found, try a larger threshold or a longer trajectory",
				"threshold", nd.Threshold, "lags", nd.Lags, "min", nd.Min)
		}
		return nil, fmt.Errorf("can't estimate the decorrelation lag: %w", err)
	}
	logger.Infow("decorrelation lag obtained", "lags", len(d.ACF), "threshold", d.Threshold, "tao", d.Tao, "stride", d.Stride)
	if D.Config.ACFFile != "" {
		if err := WriteACFFile(D.Config.ACFFile, d.ACF); err != nil {
			return nil, fmt.Errorf("can't write the autocorrelation function: %w", err)
		}
		logger.Debugw("autocorrelation function written", "file", D.Config.ACFFile)
	}
	T.Rewind()
	written, err := decorr.EveryNth(T, w, d.Stride)
	if err != nil {
		return nil, fmt.Errorf("can't write frames (%d written): %w", written, err)
	}
	logger.Infow("uncorrelated frames written", "frames", written)
	return &Result{
		Frames:    T.LenFrames(),
		Lags:      len(d.ACF),
		Threshold: d.Threshold,
		Tao:       d.Tao,
		Stride:    d.Stride,
		Written:   written,
	}, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// WriteACFFile writes ac as a table (see chemstat.WriteACF) to the file name.
// Names ending in .zst are compressed with zstd, and those ending in .gz with gzip.
func WriteACFFile(name string, ac []float64) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	var h io.WriteCloser
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst":
		h, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case ".gz":
		h, err = gzip.NewWriterLevel(f, gzip.BestCompression)
	default:
		h = nopCloser{f}
	}
	if err != nil {
		return err
	}
	if err := chemstat.WriteACF(h, ac); err != nil {
		h.Close()
		return err
	}
	if err := h.Close(); err != nil {
		return err
	}
	return f.Close()
}
