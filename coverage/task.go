// SPDX-License-Identifier: MIT

package coverage

import (
	"github.com/katalvlaran/covtensor/camera"
	"github.com/katalvlaran/covtensor/geometry"
)

// Task is a coverage task: a parameter set and the surface whose triangles
// must be covered.
type Task struct {
	Name      string
	Params    camera.TaskParams
	Triangles []*TriangleTensor
}

// NewTask returns a task with the given parameters and surface.
func NewTask(name string, params camera.TaskParams, triangles ...*TriangleTensor) *Task {
	return &Task{Name: name, Params: params, Triangles: triangles}
}

// SceneObject is a named rigid body whose triangles occlude the cameras.
// Its triangles are mounted on it and follow its pose.
type SceneObject struct {
	posable

	name      string
	triangles []*TriangleTensor
}

var (
	_ Mount         = (*SceneObject)(nil)
	_ mountRegistry = (*SceneObject)(nil)
)

// NewSceneObject builds an object at pose and mounts triangles (given in
// the object frame) on it.
func NewSceneObject(name string, pose geometry.Pose, triangles ...*TriangleTensor) (*SceneObject, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	o := &SceneObject{name: name, triangles: triangles}
	o.pose = pose
	for _, t := range triangles {
		if err := t.SetMount(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Name returns the object name.
func (o *SceneObject) Name() string { return o.name }

// Triangles returns the triangles mounted on the object.
func (o *SceneObject) Triangles() []*TriangleTensor { return o.triangles }

// SetPose moves the object; its triangles rebuild through the mount chain.
func (o *SceneObject) SetPose(p geometry.Pose) error {
	o.pose = p

	return o.notify()
}
