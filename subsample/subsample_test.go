/*
 * subsample_test.go, part of decorr.
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

package subsample

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/decorr"
	"github.com/rmera/decorr/chemplot"
	"github.com/rmera/decorr/chemstat"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"gonum.org/v1/gonum/floats/scalar"
)

// rydbergTraj returns a trajectory of n single-atom frames, with energies (in Ry)
// following a first-order autoregressive process with coefficient phi.
func rydbergTraj(n int, phi float64) *decorr.Trajectory {
	r := rand.New(rand.NewSource(17))
	T := decorr.NewTrajectory("test")
	e := 0.0
	for i := 0; i < n; i++ {
		e = phi*e + r.NormFloat64()
		T.Frames = append(T.Frames, &decorr.Frame{Symbols: []string{"Ar"}, Energy: -100 + 0.01*e, Unit: decorr.Rydberg})
	}
	return T
}

func writeConfig(Te *testing.T, content string) string {
	name := filepath.Join(Te.TempDir(), "decorr.yaml")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		Te.Fatal(err)
	}
	return name
}

func TestLoadConfig(Te *testing.T) {
	c, err := LoadConfig(writeConfig(Te, "threshold: 0.2\nacf_file: acf.dat.zst\nmin_frames: 10\nconvert_to_ev: true\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if c.Interactive() || *c.Threshold != 0.2 || c.ACFFile != "acf.dat.zst" || c.MinFrames != 10 || !c.ConvertToEV {
		Te.Errorf("Wrong configuration %+v", c)
	}
	c, err = LoadConfig(writeConfig(Te, ""))
	if err != nil {
		Te.Fatal(err)
	}
	if !c.Interactive() || c.MinFrames != chemstat.MinSeriesLen || c.PlotFile != DefaultPlotFile {
		Te.Errorf("An empty file should give the defaults, got %+v", c)
	}
	for _, bad := range []string{"threshold: -1\n", "threshold: 0\n", "min_frames: 1\n", "plot_file: \"\"\n", "threshol: 0.1\n", "threshold: [\n"} {
		if _, err := LoadConfig(writeConfig(Te, bad)); err == nil {
			Te.Errorf("Configuration %q should be rejected", bad)
		}
	}
	if _, err := LoadConfig(filepath.Join(Te.TempDir(), "nothere.yaml")); err == nil {
		Te.Error("A missing file should fail")
	}
}

func TestRun(Te *testing.T) {
	threshold := 0.1
	acf := filepath.Join(Te.TempDir(), "acf.dat.zst")
	cfg := &Config{Threshold: &threshold, ACFFile: acf, MinFrames: 10, ConvertToEV: true}
	D, err := New(cfg, zaptest.NewLogger(Te).Sugar())
	if err != nil {
		Te.Fatal(err)
	}
	in := rydbergTraj(3000, 0.9)
	out := decorr.NewTrajectory("out")
	res, err := D.Run(in, out)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Printf("Result: %+v\n", res)
	if res.Frames != 3000 || res.Lags != 1500 || res.Threshold != threshold {
		Te.Errorf("Wrong result %+v", res)
	}
	//unit conversion doesn't change the autocorrelation
	energies, _ := in.Energies()
	d, err := chemstat.Estimate(energies, chemstat.FixedThreshold(threshold))
	if err != nil {
		Te.Fatal(err)
	}
	if res.Tao != d.Tao || res.Stride != d.Stride {
		Te.Errorf("Driver tao %d, direct estimate %d", res.Tao, d.Tao)
	}
	want := (3000 + res.Stride - 1) / res.Stride
	if res.Written != want || out.LenFrames() != want {
		Te.Errorf("%d frames written, %d in the output, expected %d", res.Written, out.LenFrames(), want)
	}
	if len(out.Frames) > 1 {
		f := out.Frames[1]
		if f.Unit != decorr.EV || !scalar.EqualWithinRel(f.Energy, in.Frames[res.Stride].Energy*decorr.Ry2EV, 1e-12) {
			Te.Errorf("Wrong second frame: %v %v", f.Energy, f.Unit)
		}
	}
	if in.Frames[0].Unit != decorr.Rydberg {
		Te.Error("The input trajectory was modified")
	}
	zf, err := os.Open(acf)
	if err != nil {
		Te.Fatal(err)
	}
	defer zf.Close()
	zr, err := zstd.NewReader(zf)
	if err != nil {
		Te.Fatal(err)
	}
	defer zr.Close()
	if n := countLines(Te, zr); n != res.Lags+1 {
		Te.Errorf("ACF file has %d lines, expected %d", n, res.Lags+1)
	}
}

func countLines(Te *testing.T, r io.Reader) int {
	s := bufio.NewScanner(r)
	n := 0
	for s.Scan() {
		n++
	}
	if err := s.Err(); err != nil {
		Te.Fatal(err)
	}
	return n
}

func TestWriteACFFile(Te *testing.T) {
	ac := []float64{1, 0.6, 0.3, 0.1}
	dir := Te.TempDir()
	gz := filepath.Join(dir, "acf.dat.gz")
	if err := WriteACFFile(gz, ac); err != nil {
		Te.Fatal(err)
	}
	f, err := os.Open(gz)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	gr, err := gzip.NewReader(f)
	if err != nil {
		Te.Fatal(err)
	}
	if n := countLines(Te, gr); n != 5 {
		Te.Errorf("gzipped file has %d lines", n)
	}
	plain := filepath.Join(dir, "acf.dat")
	if err := WriteACFFile(plain, ac); err != nil {
		Te.Fatal(err)
	}
	b, err := os.ReadFile(plain)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(string(b), "# lag") || strings.Count(string(b), "\n") != 5 {
		Te.Errorf("Wrong plain file:\n%s", b)
	}
	if err := WriteACFFile(filepath.Join(dir, "nodir", "acf.dat"), ac); err == nil {
		Te.Error("Writing to a missing directory should fail")
	}
}

func TestRunErrors(Te *testing.T) {
	threshold := 0.1
	logger := zaptest.NewLogger(Te).Sugar()
	D, err := New(&Config{Threshold: &threshold, MinFrames: 10}, logger)
	if err != nil {
		Te.Fatal(err)
	}
	out := decorr.NewTrajectory("out")
	if _, err := D.Run(rydbergTraj(5, 0.5), out); err == nil {
		Te.Error("A trajectory shorter than min_frames should fail")
	}
	flat := rydbergTraj(20, 0.5)
	for _, f := range flat.Frames {
		f.Energy = -100
	}
	_, err = D.Run(flat, out)
	var deg *chemstat.DegenerateSeriesError
	if !errors.As(err, &deg) {
		Te.Errorf("Expected a DegenerateSeriesError, got %v", err)
	}
	mixed := rydbergTraj(20, 0.5)
	mixed.Frames[3].Unit = decorr.EV
	if _, err := D.Run(mixed, out); err == nil {
		Te.Error("Mixed units should fail without conversion")
	}
	if out.LenFrames() != 0 {
		Te.Errorf("%d frames written by failed runs", out.LenFrames())
	}
	bad := -0.1
	if _, err := New(&Config{Threshold: &bad, MinFrames: 2}, logger); err == nil {
		Te.Error("A negative threshold should be rejected")
	}
}

func TestRunInteractive(Te *testing.T) {
	cfg := DefaultConfig()
	cfg.PlotFile = filepath.Join(Te.TempDir(), "acf.png")
	D, err := New(cfg, zaptest.NewLogger(Te).Sugar())
	if err != nil {
		Te.Fatal(err)
	}
	if _, ok := D.Provider.(chemstat.InteractiveThreshold); !ok {
		Te.Fatalf("Expected an interactive provider, got %T", D.Provider)
	}
	var shown []float64
	D.Provider = chemstat.InteractiveThreshold{
		Render: func(ac []float64) error { shown = ac; return nil },
		Prompt: chemstat.PromptFrom(strings.NewReader("0.2\n"), io.Discard),
	}
	out := decorr.NewTrajectory("out")
	res, err := D.Run(rydbergTraj(500, 0.8), out)
	if err != nil {
		Te.Fatal(err)
	}
	if res.Threshold != 0.2 || len(shown) != res.Lags {
		Te.Errorf("Wrong interactive run: %+v, %d values shown", res, len(shown))
	}
}

func TestNewLogger(Te *testing.T) {
	threshold := 0.1
	for _, debug := range []bool{true, false} {
		D, err := New(&Config{Threshold: &threshold, MinFrames: 2, Debug: debug}, nil)
		if err != nil {
			Te.Fatal(err)
		}
		if got := D.Logger.Desugar().Core().Enabled(zapcore.DebugLevel); got != debug {
			Te.Errorf("debug: %v, but debug logging enabled: %v", debug, got)
		}
	}
}

// The autocorrelation of a period-2 series is [1 -1], which has nothing to show
// on a log-log plot. The user must still be asked for the threshold.
func TestRunInteractivePeriodTwo(Te *testing.T) {
	cfg := DefaultConfig()
	cfg.PlotFile = filepath.Join(Te.TempDir(), "acf.png")
	D, err := New(cfg, zaptest.NewLogger(Te).Sugar())
	if err != nil {
		Te.Fatal(err)
	}
	D.Provider = chemstat.InteractiveThreshold{
		Render: chemplot.NewACFPlot(cfg.PlotFile).Render,
		Prompt: chemstat.PromptFrom(strings.NewReader("0.5\n"), io.Discard),
	}
	in := decorr.NewTrajectory("in")
	for _, e := range []float64{1, 2, 1, 2} {
		in.Frames = append(in.Frames, &decorr.Frame{Symbols: []string{"Ar"}, Energy: e})
	}
	out := decorr.NewTrajectory("out")
	res, err := D.Run(in, out)
	if err != nil {
		Te.Fatal(err)
	}
	if res.Lags != 2 || res.Tao != 1 || res.Stride != 1 || out.LenFrames() != 4 {
		Te.Errorf("Wrong result %+v, %d frames written", res, out.LenFrames())
	}
	if _, err := os.Stat(cfg.PlotFile); err != nil {
		Te.Errorf("Plot not written: %v", err)
	}
}

func TestRunEmpty(Te *testing.T) {
	threshold := 0.1
	D, err := New(&Config{Threshold: &threshold, MinFrames: 2}, zaptest.NewLogger(Te).Sugar())
	if err != nil {
		Te.Fatal(err)
	}
	_, err = D.Run(decorr.NewTrajectory("empty"), decorr.NewTrajectory("out"))
	if err == nil || !strings.Contains(err.Error(), "0 frames") {
		Te.Errorf("Expected a frame count error, got %v", err)
	}
}
