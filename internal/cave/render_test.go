package cave

import "testing"

func TestSlideOffset(t *testing.T) {
	c := New(testParams(), &scriptedSource{})
	c.Scroll(750)

	tests := []struct {
		now      int64
		expected int
	}{
		{750, 0},
		{1125, 10}, // half an interval
		{1500, 20},
		{9000, 20}, // clamped to one tile
		{100, 0},   // clock before last scroll
	}

	for _, tc := range tests {
		if got := c.SlideOffset(tc.now, 20); got != tc.expected {
			t.Errorf("SlideOffset(%d) = %d, expected %d", tc.now, got, tc.expected)
		}
	}
}

func TestAppendRects(t *testing.T) {
	p := testParams()
	c := New(p, &scriptedSource{})
	c.frontColumn = 5
	c.Grid().Set(10, 5, Wall)
	c.lastScroll = 0

	rects := c.AppendRects(nil, 375, 20, false)
	if len(rects) != 2*p.Cols+1 {
		t.Fatalf("got %d rects, expected %d", len(rects), 2*p.Cols+1)
	}

	// Front column is drawn first, at the left edge
	var found bool
	for _, r := range rects {
		if r.Rect.Y == 200 {
			found = true
			if r.Rect.X != 0 {
				t.Errorf("front column wall drawn at x=%d, expected 0", r.Rect.X)
			}
		}
		if r.Rect.X%20 != 0 {
			t.Errorf("static rects must be grid aligned, got x=%d", r.Rect.X)
		}
	}
	if !found {
		t.Fatal("wall at row 10 not rendered")
	}

	slid := c.AppendRects(nil, 375, 20, true)
	for i := range slid {
		if slid[i].Rect.X != rects[i].Rect.X-10 {
			t.Fatalf("sliding rect %d at x=%d, expected %d", i, slid[i].Rect.X, rects[i].Rect.X-10)
		}
	}
}
