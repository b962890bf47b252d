// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/katalvlaran/covtensor/camera"
	"github.com/katalvlaran/covtensor/coverage"
)

// Build constructs a model from the file.
// MAIN DESCRIPTION:
//   - Objects first, so cameras can mount on them; then cameras in file
//     order (a camera may mount on an object or an earlier camera); then
//     tasks.
//
// Behavior highlights:
//   - Unrecognised parameter keys are logged at Warn through
//     coverage.Logger and otherwise ignored.
//   - Any construction error aborts the build.
func (f *File) Build() (*coverage.Model, error) {
	var opts []coverage.ModelOption
	if f.Ocular > 0 {
		opts = append(opts, coverage.WithOcular(f.Ocular))
	}
	m := coverage.NewModel(opts...)
	mounts := make(map[string]coverage.Mount)

	for _, oc := range f.Objects {
		o, err := oc.build()
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", oc.Name, err)
		}
		if err = m.AddObject(o); err != nil {
			return nil, err
		}
		mounts[oc.Name] = o
	}

	for _, cc := range f.Cameras {
		c, err := cc.build(mounts)
		if err != nil {
			return nil, fmt.Errorf("camera %q: %w", cc.Name, err)
		}
		if err = m.AddCamera(c); err != nil {
			return nil, err
		}
		mounts[cc.Name] = c
	}

	for _, tc := range f.Tasks {
		t, err := tc.build()
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", tc.Name, err)
		}
		if err = m.AddTask(t); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// triangles builds triangle tensors expressed in their owner's frame.
func triangles(list [][][]float64) ([]*coverage.TriangleTensor, error) {
	out := make([]*coverage.TriangleTensor, 0, len(list))
	for i, tri := range list {
		vs, err := toVertices(fmt.Sprintf("triangle %d", i), tri)
		if err != nil {
			return nil, err
		}
		t, err := coverage.NewTriangleTensor(vs)
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
		out = append(out, t)
	}

	return out, nil
}

func warnIgnored(kind, name string, keys []string) {
	if len(keys) > 0 {
		coverage.Logger().Warn("ignored parameter keys", kind, name, "keys", keys)
	}
}

func (oc ObjectConfig) build() (*coverage.SceneObject, error) {
	pose, err := oc.Pose.Pose()
	if err != nil {
		return nil, err
	}
	tris, err := triangles(oc.Triangles)
	if err != nil {
		return nil, err
	}

	return coverage.NewSceneObject(oc.Name, pose, tris...)
}

func (cc CameraConfig) build(mounts map[string]coverage.Mount) (*coverage.CameraTensor, error) {
	params, ignored, err := camera.ParseParams(cc.Params)
	if err != nil {
		return nil, err
	}
	warnIgnored("camera", cc.Name, ignored)
	task, ignored, err := camera.ParseTaskParams(cc.Task)
	if err != nil {
		return nil, err
	}
	warnIgnored("camera", cc.Name, ignored)

	pose, err := cc.Pose.Pose()
	if err != nil {
		return nil, err
	}
	mountPose, err := cc.MountPose.Pose()
	if err != nil {
		return nil, err
	}
	tris, err := triangles(cc.Triangles)
	if err != nil {
		return nil, err
	}

	opts := []coverage.CameraOption{
		coverage.WithPose(pose),
		coverage.WithMountPose(mountPose),
		coverage.WithTriangles(tris...),
	}
	if cc.Active != nil {
		opts = append(opts, coverage.WithActive(*cc.Active))
	}
	if cc.Mount != "" {
		mount, ok := mounts[cc.Mount]
		if !ok {
			return nil, fmt.Errorf("%q: %w", cc.Mount, ErrUnknownMount)
		}
		opts = append(opts, coverage.WithMount(mount))
	}

	return coverage.NewCameraTensor(cc.Name, task, params, opts...)
}

func (tc TaskConfig) build() (*coverage.Task, error) {
	params, ignored, err := camera.ParseTaskParams(tc.Params)
	if err != nil {
		return nil, err
	}
	warnIgnored("task", tc.Name, ignored)
	tris, err := triangles(tc.Triangles)
	if err != nil {
		return nil, err
	}

	return coverage.NewTask(tc.Name, params, tris...), nil
}
