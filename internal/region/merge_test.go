package region

import (
	"reflect"
	"testing"

	"github.com/pagemark/pagemark/internal/doc"
)

func box(x, baseline, w float64) doc.Rect {
	return doc.Rect{X: x, Top: baseline - 10, W: w, H: 10, Baseline: baseline}
}

func TestMergeAdjacentWordsOneLine(t *testing.T) {
	rects := []doc.Rect{
		box(0, 20, 30),
		box(34, 20, 25),
		box(63, 20, 40),
	}
	out := Merge(rects, 1)

	if len(out) != 1 {
		t.Fatalf("Merge() produced %d rects, want 1", len(out))
	}
	if out[0].X != 0 || out[0].Right() != 103 {
		t.Errorf("merged bounds = [%v, %v], want [0, 103]", out[0].X, out[0].Right())
	}
	if out[0].Baseline != 20 {
		t.Errorf("merged baseline = %v, want 20", out[0].Baseline)
	}
}

func TestMergeSplitsLines(t *testing.T) {
	rects := []doc.Rect{
		box(0, 20, 30),
		box(0, 40, 30),
	}
	if out := Merge(rects, 1); len(out) != 2 {
		t.Errorf("separate baselines should stay separate, got %d rects", len(out))
	}
}

func TestMergeSplitsOnWideGap(t *testing.T) {
	// Average width 10 makes the gap tolerance max(12, 8) = 12.
	rects := []doc.Rect{
		box(0, 20, 10),
		box(23, 20, 10), // gap 13 > 12
	}
	if out := Merge(rects, 1); len(out) != 2 {
		t.Errorf("gap beyond tolerance should split, got %d rects", len(out))
	}

	rects[1].X = 21 // gap 11 <= 12
	if out := Merge(rects, 1); len(out) != 1 {
		t.Errorf("gap within tolerance should merge, got %d rects", len(out))
	}
}

func TestMergeAdaptiveGapForWideWords(t *testing.T) {
	// Wide heading words spaced 60 apart: 0.8 x avg width 100 = 80
	// absorbs the gap.
	rects := []doc.Rect{
		box(0, 20, 100),
		box(160, 20, 100),
	}
	if out := Merge(rects, 1); len(out) != 1 {
		t.Errorf("wide-spaced heading should merge into one region, got %d rects", len(out))
	}
}

func TestMergeOrderInvariant(t *testing.T) {
	rects := []doc.Rect{
		box(0, 20, 30),
		box(34, 20, 25),
		box(0, 40, 30),
		box(40, 40, 22),
		box(200, 20, 15),
	}
	want := Merge(rects, 1)

	perms := [][]int{
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{1, 4, 0, 3, 2},
	}
	for _, perm := range perms {
		shuffled := make([]doc.Rect, len(rects))
		for i, j := range perm {
			shuffled[i] = rects[j]
		}
		if got := Merge(shuffled, 1); !reflect.DeepEqual(got, want) {
			t.Errorf("Merge() depends on input order: got %v, want %v", got, want)
		}
	}
}

func TestMergeEmpty(t *testing.T) {
	if out := Merge(nil, 1); out != nil {
		t.Errorf("Merge(nil) = %v, want nil", out)
	}
}

func TestMergeScalesGapTolerance(t *testing.T) {
	// At scale 2 the floor tolerance doubles to 24.
	rects := []doc.Rect{
		box(0, 20, 10),
		box(33, 20, 10), // gap 23
	}
	if out := Merge(rects, 2); len(out) != 1 {
		t.Errorf("scaled tolerance should merge, got %d rects", len(out))
	}
	if out := Merge(rects, 1); len(out) != 2 {
		t.Errorf("unscaled tolerance should split, got %d rects", len(out))
	}
}

func BenchmarkMerge(b *testing.B) {
	var rects []doc.Rect
	for line := 0; line < 40; line++ {
		x := 0.0
		for w := 0; w < 12; w++ {
			rects = append(rects, box(x, float64(20+14*line), 30))
			x += 34
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Merge(rects, 1)
	}
}
