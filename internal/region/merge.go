// Package region turns scattered word boxes into the contiguous
// line-level rectangles a renderer paints.
package region

import (
	"math"
	"sort"

	"github.com/pagemark/pagemark/internal/doc"
)

// minLineTolerance is the floor, in device pixels, for treating two
// baselines as the same line.
const minLineTolerance = 2.0

// Merge combines per-word rectangles into a minimal ordered list of
// line-level regions. Boxes on the same (rounded) baseline whose
// horizontal gap is within an adaptive tolerance fuse into one region.
// The result does not depend on the input order.
func Merge(rects []doc.Rect, scale float64) []doc.Rect {
	if len(rects) == 0 {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}

	sorted := make([]doc.Rect, len(rects))
	copy(sorted, rects)
	sort.Slice(sorted, func(i, j int) bool {
		bi, bj := math.Round(sorted[i].Baseline), math.Round(sorted[j].Baseline)
		if bi != bj {
			return bi < bj
		}
		return sorted[i].X < sorted[j].X
	})

	gapTol := gapTolerance(sorted, scale)
	lineTol := math.Max(minLineTolerance, 2*scale)

	var out []doc.Rect
	run := sorted[0]
	merged := 1
	for _, next := range sorted[1:] {
		sameLine := math.Abs(math.Round(next.Baseline)-math.Round(run.Baseline)) <= lineTol
		if sameLine && next.X <= run.Right()+gapTol {
			run = union(run, next, merged)
			merged++
			continue
		}
		out = append(out, run)
		run = next
		merged = 1
	}
	return append(out, run)
}

// gapTolerance adapts to the input so wide-spaced headings still merge
// into a single region.
func gapTolerance(rects []doc.Rect, scale float64) float64 {
	total := 0.0
	for _, r := range rects {
		total += r.W
	}
	avg := total / float64(len(rects))
	return math.Max(12*scale, 0.8*avg)
}

// union grows the running rect to cover next, averaging the baseline
// over the count of boxes merged so far.
func union(run, next doc.Rect, merged int) doc.Rect {
	left := math.Min(run.X, next.X)
	top := math.Min(run.Top, next.Top)
	right := math.Max(run.Right(), next.Right())
	bottom := math.Max(run.Top+run.H, next.Top+next.H)
	return doc.Rect{
		X:        left,
		Top:      top,
		W:        right - left,
		H:        bottom - top,
		Baseline: (run.Baseline*float64(merged) + next.Baseline) / float64(merged+1),
	}
}
