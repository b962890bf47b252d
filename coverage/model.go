// SPDX-License-Identifier: MIT

// Package coverage - Model registry.
//
// Purpose:
//   - Hold the named cameras, tasks and occluding objects of a scene.
//   - Carry the pluggable collaborators of the aggregation: view
//     enumeration, occlusion test and single-camera strength.
//
// Concurrency:
//   - mu guards the three registries. Entities themselves follow the
//     single-writer rule documented on the package.

package coverage

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/covtensor/geometry"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultOcular is the view size used by Strength when no option sets it.
const DefaultOcular = 1

// ViewFunc enumerates the views over the given active camera names (sorted)
// for views of ocular cameras each.
type ViewFunc func(active []string, ocular int) [][]string

// OcclusionFunc reports whether p is hidden from cam by any occluder.
type OcclusionFunc func(p r3.Vec, cam *CameraTensor, occluders []geometry.Triangle) bool

// StrengthFunc scores a single camera toward a triangle.
type StrengthFunc func(cam *CameraTensor, t *TriangleTensor) float64

// ModelOption configures a Model before use.
type ModelOption func(*Model)

// WithOcular sets the default view size. Panics on values below 1.
func WithOcular(k int) ModelOption {
	if k < 1 {
		panic("coverage: WithOcular: k must be >= 1")
	}

	return func(m *Model) { m.ocular = k }
}

// WithViews replaces the view enumeration (default: CombinationViews).
func WithViews(fn ViewFunc) ModelOption { return func(m *Model) { m.views = fn } }

// WithOcclusion replaces the occlusion test (default: SegmentOcclusion).
func WithOcclusion(fn OcclusionFunc) ModelOption { return func(m *Model) { m.occluded = fn } }

// WithStrength replaces the single-camera score (default: CameraTensor.Strength).
func WithStrength(fn StrengthFunc) ModelOption { return func(m *Model) { m.strength = fn } }

// Model is the multi-camera coverage strength model.
type Model struct {
	mu      sync.RWMutex
	cameras map[string]*CameraTensor
	tasks   map[string]*Task
	objects map[string]*SceneObject

	ocular   int
	views    ViewFunc
	occluded OcclusionFunc
	strength StrengthFunc
}

// NewModel returns an empty model with the default collaborators.
func NewModel(opts ...ModelOption) *Model {
	m := &Model{
		cameras:  make(map[string]*CameraTensor),
		tasks:    make(map[string]*Task),
		objects:  make(map[string]*SceneObject),
		ocular:   DefaultOcular,
		views:    CombinationViews,
		occluded: SegmentOcclusion,
		strength: (*CameraTensor).Strength,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	return m
}

// checkName validates a new registry key under the write lock.
func (m *Model) checkName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	_, c := m.cameras[name]
	_, t := m.tasks[name]
	_, o := m.objects[name]
	if c || t || o {
		return fmt.Errorf("%q: %w", name, ErrDuplicateName)
	}

	return nil
}

// AddCamera registers c under its name.
// Errors: ErrEmptyName, ErrDuplicateName (names are unique across the scene).
func (m *Model) AddCamera(c *CameraTensor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkName(c.Name()); err != nil {
		return err
	}
	m.cameras[c.Name()] = c

	return nil
}

// AddTask registers t under its name.
func (m *Model) AddTask(t *Task) error {
	if t == nil {
		return ErrNilTask
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkName(t.Name); err != nil {
		return err
	}
	m.tasks[t.Name] = t

	return nil
}

// AddObject registers an occluding scene object.
func (m *Model) AddObject(o *SceneObject) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkName(o.Name()); err != nil {
		return err
	}
	m.objects[o.Name()] = o

	return nil
}

// Camera looks up a camera by name.
func (m *Model) Camera(name string) (*CameraTensor, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.cameras[name]

	return c, ok
}

// Task looks up a task by name.
// Errors: ErrUnknownTask.
func (m *Model) Task(name string) (*Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tasks[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownTask)
	}

	return t, nil
}

// Names returns every scene member (cameras and objects), sorted.
func (m *Model) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.cameras)+len(m.objects))
	for n := range m.cameras {
		names = append(names, n)
	}
	for n := range m.objects {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// CameraNames returns all camera names, sorted.
func (m *Model) CameraNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return sortedKeys(m.cameras)
}

// TaskNames returns all task names, sorted.
func (m *Model) TaskNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return sortedKeys(m.tasks)
}

// ActiveCameras returns the names of the active cameras, sorted.
func (m *Model) ActiveCameras() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.cameras))
	for n, c := range m.cameras {
		if c.Active() {
			names = append(names, n)
		}
	}
	sort.Strings(names)

	return names
}

// Occluders returns the world-frame triangles of every camera housing and
// scene object, in name order.
func (m *Model) Occluders() []geometry.Triangle {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []geometry.Triangle
	for _, n := range sortedKeys(m.cameras) {
		for _, t := range m.cameras[n].Triangles() {
			out = append(out, t.Triangle())
		}
	}
	for _, n := range sortedKeys(m.objects) {
		for _, t := range m.objects[n].Triangles() {
			out = append(out, t.Triangle())
		}
	}

	return out
}

// sortedKeys returns the keys of a string-keyed map in ascending order.
func sortedKeys[V any](in map[string]V) []string {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
