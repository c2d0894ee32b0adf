// Package vecpath is the engineering core of a vector drawing tool: a
// path command data model, a point-addressable editing system with
// alignment constraints, a stroke-to-contour builder, and a boolean
// combination policy.
//
// # Overview
//
// Paths are sequences of draw commands (MoveTo, LineTo, CurveTo,
// ClosePath) grouped into subpaths. The editable point index derives a
// flat, positionally-addressed list of anchor and control points from
// the command stream; editing operations mutate points and structure
// through it. Freehand strokes become closed filled outlines through
// the ContourBuilder, and the Combiner decides which existing shapes a
// fresh contour merges with, carves, or fractures.
//
// # Geometry kernel
//
// The heavy computational geometry (Bezier flattening, arc-length
// sampling, polygon booleans) lives behind the narrow Kernel interface.
// The geomkernel subpackage provides the production implementation;
// hosts can inject their own.
//
//	k := geomkernel.New()
//	builder := vecpath.NewContourBuilder(k)
//	contour := builder.Build(strokePoints, 10)
//
// # Concurrency
//
// The core is single-threaded and cooperative: every edit or boolean
// pass runs to completion within one input-handling turn. Operations
// read a full snapshot of a path's subpaths and write the replacement
// back atomically; no partial mutation is ever observable.
//
// # Errors
//
// Stale point references are silently ignored, degenerate geometry
// yields nil results, and kernel operator failures are caught per
// candidate. Nothing in this package panics on malformed input; a
// caller that needs to report "nothing happened" infers it from a nil
// result.
package vecpath
