// Package clipspace builds the three matrices that carry geometry from
// object space to normalized clip space: model, view and projection.
//
// Every function is a pure mapping from plain parameters to a
// mathutil.Mat4; there is no state, no allocation beyond locals, and no
// input validation. Degenerate inputs (zero-extent boxes, zero-length
// axes) produce Inf/NaN entries that propagate silently — callers own
// that responsibility. The consumer composes Projection × View × Model.
//
// The package reproduces the observed conventions of the reference
// pipeline exactly, including its anomalous model-translation matrix
// (see TranslationMatrix) and its fixed rotation-composition order and
// angle signs (see ModelMatrix). Those are contracts here, not bugs to
// fix in passing.
package clipspace
