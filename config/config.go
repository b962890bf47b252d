// SPDX-License-Identifier: MIT

// Package config loads a covtensor scene description from YAML and builds a
// coverage.Model from it.
//
// A file names the cameras (intrinsics, task requirements, pose, optional
// mount and housing triangles), the occluding scene objects and the coverage
// tasks, plus driver settings (log level, view size, report output):
//
//	log_level: info
//	ocular: 1
//	objects:
//	  - name: rig
//	    pose: {position: [0, 0, 0]}
//	cameras:
//	  - name: front
//	    mount: rig
//	    params: {dim: [1600, 1200], f: 12, s: 0.005}
//	    task: {res_min: 0.5}
//	    pose: {position: [0, 0, 0], axis: [1, 0, 0], angle: 0}
//	tasks:
//	  - name: inspect
//	    params: {res_min: 0.5}
//	    triangles:
//	      - [[-10, -10, 606], [-10, 20, 606], [20, -10, 606]]
//
// Parameter maps are passed through camera.ParseParams and
// camera.ParseTaskParams; unrecognised keys are logged and ignored.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/covtensor/geometry"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// DefaultBins is the histogram bin count used when the report sets none.
const DefaultBins = 20

// File is the top-level YAML document.
type File struct {
	LogLevel string         `yaml:"log_level"`
	Ocular   int            `yaml:"ocular"`
	Objects  []ObjectConfig `yaml:"objects"`
	Cameras  []CameraConfig `yaml:"cameras"`
	Tasks    []TaskConfig   `yaml:"tasks"`
	Report   ReportConfig   `yaml:"report"`
}

// PoseConfig is a rotation of Angle radians about Axis followed by a
// translation to Position. Omitted fields mean identity.
type PoseConfig struct {
	Position []float64 `yaml:"position"`
	Axis     []float64 `yaml:"axis"`
	Angle    float64   `yaml:"angle"`
}

// CameraConfig describes one camera.
type CameraConfig struct {
	Name      string         `yaml:"name"`
	Active    *bool          `yaml:"active"`
	Mount     string         `yaml:"mount"`
	Params    map[string]any `yaml:"params"`
	Task      map[string]any `yaml:"task"`
	Pose      PoseConfig     `yaml:"pose"`
	MountPose PoseConfig     `yaml:"mount_pose"`
	Triangles [][][]float64  `yaml:"triangles"`
}

// ObjectConfig describes an occluding rigid body.
type ObjectConfig struct {
	Name      string        `yaml:"name"`
	Pose      PoseConfig    `yaml:"pose"`
	Triangles [][][]float64 `yaml:"triangles"`
}

// TaskConfig describes a coverage task and its surface.
type TaskConfig struct {
	Name      string         `yaml:"name"`
	Params    map[string]any `yaml:"params"`
	Triangles [][][]float64  `yaml:"triangles"`
}

// ReportConfig controls the driver's summary and histogram output.
type ReportConfig struct {
	Threshold float64 `yaml:"threshold"`
	Histogram string  `yaml:"histogram"`
	Bins      int     `yaml:"bins"`
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	f, err := Parse(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes a document from r. Unknown fields are rejected so that a
// misspelt section does not silently drop part of the scene.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	f := new(File)
	if err := dec.Decode(f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return f, nil
}

// Level returns the configured log level (info when unset).
// Errors: ErrBadLogLevel.
func (f *File) Level() (slog.Level, error) {
	var lvl slog.Level
	if f.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(f.LogLevel))); err != nil {
		return 0, fmt.Errorf("%q: %w", f.LogLevel, ErrBadLogLevel)
	}

	return lvl, nil
}

// BinCount returns the histogram bin count, defaulting to DefaultBins.
func (rc ReportConfig) BinCount() int {
	if rc.Bins <= 0 {
		return DefaultBins
	}

	return rc.Bins
}

// toVec converts a 3-component list; nil yields the zero vector.
func toVec(field string, v []float64) (r3.Vec, error) {
	if v == nil {
		return r3.Vec{}, nil
	}
	if len(v) != 3 {
		return r3.Vec{}, fmt.Errorf("%s: got %d components: %w", field, len(v), ErrBadVector)
	}

	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}

// Pose converts the configuration into a geometry.Pose.
// Errors: ErrBadVector, ErrBadPose (a non-zero angle needs a non-zero axis).
func (pc PoseConfig) Pose() (geometry.Pose, error) {
	t, err := toVec("position", pc.Position)
	if err != nil {
		return geometry.Pose{}, err
	}
	axis, err := toVec("axis", pc.Axis)
	if err != nil {
		return geometry.Pose{}, err
	}
	if pc.Angle != 0 && r3.Norm(axis) == 0 {
		return geometry.Pose{}, ErrBadPose
	}

	return geometry.NewPose(t, pc.Angle, axis), nil
}

// toVertices converts one triangle's vertex list.
func toVertices(field string, tri [][]float64) ([]r3.Vec, error) {
	out := make([]r3.Vec, 0, len(tri))
	for i, v := range tri {
		p, err := toVec(fmt.Sprintf("%s vertex %d", field, i), v)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}
