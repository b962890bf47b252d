// SPDX-License-Identifier: MIT

package coverage

import (
	"errors"

	"github.com/katalvlaran/covtensor/geometry"
)

// Mount is an entity others can be attached to. MountPose is the absolute
// pose of the attachment point.
type Mount interface {
	MountPose() geometry.Pose
}

// poseListener is notified after the absolute pose of its mount changed.
type poseListener interface {
	poseChanged() error
}

// mountRegistry is implemented by mounts that propagate pose changes.
type mountRegistry interface {
	attach(poseListener)
	detach(poseListener)
}

// posable carries the pose of an entity relative to its mount and the
// listeners mounted on it. Mount chains must be acyclic.
type posable struct {
	pose      geometry.Pose // relative to mount (absolute when unmounted)
	mountPose geometry.Pose // attachment offset handed to children
	mount     Mount
	children  []poseListener
}

// composePose resolves a relative pose against an optional mount.
func composePose(mount Mount, rel geometry.Pose) geometry.Pose {
	if mount == nil {
		return rel
	}

	return mount.MountPose().Compose(rel)
}

// AbsolutePose returns the pose in the world frame.
func (p *posable) AbsolutePose() geometry.Pose { return composePose(p.mount, p.pose) }

// RelativePose returns the pose relative to the mount.
func (p *posable) RelativePose() geometry.Pose { return p.pose }

// MountPose returns the absolute pose of the attachment point for children.
func (p *posable) MountPose() geometry.Pose { return p.AbsolutePose().Compose(p.mountPose) }

// Mount returns the current mount, or nil.
func (p *posable) Mount() Mount { return p.mount }

func (p *posable) attach(l poseListener) { p.children = append(p.children, l) }

func (p *posable) detach(l poseListener) {
	for i, c := range p.children {
		if c == l {
			p.children = append(p.children[:i], p.children[i+1:]...)

			return
		}
	}
}

// rehome moves self from the old mount's listeners to the new mount's.
func rehome(self poseListener, from, to Mount) {
	if r, ok := from.(mountRegistry); ok {
		r.detach(self)
	}
	if r, ok := to.(mountRegistry); ok {
		r.attach(self)
	}
}

// notify forwards a pose change to every mounted child.
func (p *posable) notify() error {
	var errs []error
	for _, c := range p.children {
		if err := c.poseChanged(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
