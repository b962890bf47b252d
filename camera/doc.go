// SPDX-License-Identifier: MIT

// Package camera describes a pinhole camera with a thin-lens depth of field
// and derives its visibility frustum for a coverage task.
//
// Params holds the intrinsic parameters (aperture A, sensor dim in pixels,
// focal length f, principal point o, pixel size s, focus distance zS).
// TaskParams holds the requirements of a coverage task (ocular count,
// boundary padding, resolution, blur and view-angle bounds); Hull combines
// both into the 8-point frustum used to build camera tensors.
//
// Units: lengths in millimetres, pixel quantities in pixels, resolution as
// the footprint of one pixel on the subject in mm/pixel (smaller is finer).
package camera
