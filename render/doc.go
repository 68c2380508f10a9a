// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render paints convolution grids into in-memory images for display
// collaborators.
//
// Each grid cell becomes a filled square drawn with gg. Cells can carry a
// label (the gray value or the hex color) in the contrast text color, and
// thin grid lines can separate them:
//
//	img, err := render.Grid(g, render.WithCellSize(48), render.WithLabels(render.LabelGray))
//
// [Compare] places a before and an after grid side by side so the effect of
// a kernel can be read at a glance.
//
// The package never encodes or writes image files; callers decide how the
// returned image.Image is shown.
package render
