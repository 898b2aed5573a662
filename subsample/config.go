/*
 * config.go, part of decorr.
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
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/rmera/decorr/chemstat"
	"gopkg.in/yaml.v3"
)

// DefaultPlotFile is where the autocorrelation function is plotted when the
// threshold is chosen interactively and no plot file was given.
const DefaultPlotFile = "acf.png"

// Config contains the parameters of a subsampling run. It can be obtained
// from a YAML file with LoadConfig, or built by hand, in which case Check
// should be called before using it.
type Config struct {
	// Threshold used to obtain tao. If absent, it is asked interactively,
	// after plotting the autocorrelation function.
	Threshold *float64 `yaml:"threshold"`

	// ACFFile is where the autocorrelation function is written. Names ending
	// in .zst and .gz are compressed. Empty means the function is not written.
	ACFFile string `yaml:"acf_file"`

	// PlotFile is where the autocorrelation function is plotted in interactive mode.
	PlotFile string `yaml:"plot_file"`

	// MinFrames is the smallest number of frames accepted.
	MinFrames int `yaml:"min_frames"`

	// ConvertToEV converts energies and forces from Ry and Ry/Bohr before the analysis.
	ConvertToEV bool `yaml:"convert_to_ev"`

	// Debug enables debug-level logging.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns a configuration for an interactive run, with no ACF file.
func DefaultConfig() *Config {
	return &Config{MinFrames: chemstat.MinSeriesLen, PlotFile: DefaultPlotFile}
}

// Interactive returns true if the threshold is to be asked to the user.
func (c *Config) Interactive() bool {
	return c.Threshold == nil
}

// Check checks that the configuration is correct. It returns an error
// if a field doesn't meet the requirements.
func (c *Config) Check() error {
	if c.Threshold != nil {
		t := *c.Threshold
		if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
			return fmt.Errorf("threshold must be finite and greater than 0, got %v", t)
		}
	}
	if c.MinFrames < chemstat.MinSeriesLen {
		return fmt.Errorf("min_frames must be at least %d, got %d", chemstat.MinSeriesLen, c.MinFrames)
	}
	if c.Interactive() && c.PlotFile == "" {
		return fmt.Errorf("plot_file is needed to choose the threshold interactively")
	}
	return nil
}

// LoadConfig opens and decodes the YAML configuration file in path. Fields absent
// from the file keep their values from DefaultConfig. Check is called on the result.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c := DefaultConfig()
	dec := yaml.NewDecoder(bufio.NewReader(f))
	dec.KnownFields(true)
	//An empty file is just the defaults.
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("can't decode %s: %w", path, err)
	}
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	return c, nil
}
