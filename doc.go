// Package covtensor evaluates how well a network of cameras covers a 3D
// surface, using a compact tensor model of visibility.
//
// 🚀 What is covtensor?
//
//	Every camera and every surface triangle is reduced to a 3×3 basis.
//	Comparing the two bases gives a single-camera strength in [0, 1];
//	strengths are combined over views of k cameras with occlusion gating
//	and averaged into one performance number per coverage task.
//
// ✨ Highlights
//
//   - Eager, atomic rebuilds - a basis is never stale, a failed change never sticks
//   - Mount chains - cameras and triangles ride on rigs and on each other
//   - Pluggable collaborators - view enumeration, occlusion test, strength
//   - Silent by default - log/slog only when you ask for it
//
// Under the hood, everything is organized under these subpackages:
//
//	tensor/  : dense small matrices: addressing, equality, unit, Schatten, Frobenius, negate
//	geometry/: poses, directional points, triangles and segment intersection (gonum r3)
//	camera/  : intrinsic and task parameters, depth range and frustum hull
//	coverage/: CameraTensor, TriangleTensor, Task, SceneObject and the Model
//	config/  : YAML scene files → coverage.Model
//	report/  : coverage statistics and histograms (gonum/plot)
//
// The command cmd/covtensor runs every task of a scene file and prints the
// results.
package covtensor
