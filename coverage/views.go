// SPDX-License-Identifier: MIT

package coverage

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/covtensor/geometry"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/combin"
)

// CombinationViews returns every ocular-sized combination of active in
// lexicographic order. No views exist when fewer than ocular cameras are
// active; ocular below 1 is read as 1.
func CombinationViews(active []string, ocular int) [][]string {
	if ocular < 1 {
		ocular = 1
	}
	if len(active) < ocular {
		return nil
	}
	combos := combin.Combinations(len(active), ocular)
	views := make([][]string, 0, len(combos))
	for _, idx := range combos {
		view := make([]string, len(idx))
		for i, j := range idx {
			view[i] = active[j]
		}
		views = append(views, view)
	}

	return views
}

// SegmentOcclusion reports p occluded when the open segment from the
// camera's optical centre to p crosses any occluder.
func SegmentOcclusion(p r3.Vec, cam *CameraTensor, occluders []geometry.Triangle) bool {
	origin := cam.Position()
	for _, tri := range occluders {
		if tri.IntersectsSegment(origin, p) {
			return true
		}
	}

	return false
}

// Views enumerates the views over subset for views of ocular cameras.
// A nil subset selects every active camera; inactive cameras named in a
// subset are skipped. Errors: ErrUnknownCamera.
func (m *Model) Views(subset []string, ocular int) ([][]string, error) {
	active, err := m.resolveSubset(subset)
	if err != nil {
		return nil, err
	}

	return m.views(active, ocular), nil
}

// resolveSubset maps subset onto the sorted, de-duplicated active cameras.
func (m *Model) resolveSubset(subset []string) ([]string, error) {
	if subset == nil {
		return m.ActiveCameras(), nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[string]struct{}, len(subset))
	active := make([]string, 0, len(subset))
	for _, name := range subset {
		c, ok := m.cameras[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownCamera)
		}
		if _, dup := seen[name]; dup || !c.Active() {
			continue
		}
		seen[name] = struct{}{}
		active = append(active, name)
	}
	sort.Strings(active)

	return active, nil
}

// Occluded reports whether p is hidden from the named camera.
// Errors: ErrUnknownCamera.
func (m *Model) Occluded(p r3.Vec, cameraName string, occluders []geometry.Triangle) (bool, error) {
	c, ok := m.Camera(cameraName)
	if !ok {
		return false, fmt.Errorf("%q: %w", cameraName, ErrUnknownCamera)
	}

	return m.occluded(p, c, occluders), nil
}
