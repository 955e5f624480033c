package matrix

import (
	"testing"
)

func TestApplyAndSnapshot(t *testing.T) {
	s := New(4, 4)

	s.Apply(1, 2, true)
	s.Apply(3, 0, true)
	s.Apply(3, 0, false)

	if !s.IsPressed(1, 2) {
		t.Fatal("expected key 1,2 to be down")
	}
	if s.IsPressed(3, 0) {
		t.Fatal("expected key 3,0 to be released")
	}

	snapshot := s.Snapshot()
	if snapshot.Events != 3 {
		t.Fatalf("expected 3 events, got %d", snapshot.Events)
	}
	if len(snapshot.Pressed) != 1 || snapshot.Pressed[0] != (Position{Row: 1, Col: 2}) {
		t.Fatalf("unexpected pressed set: %+v", snapshot.Pressed)
	}
}

func TestReleaseWithoutPress(t *testing.T) {
	s := New(2, 2)
	s.Apply(0, 0, false)

	if len(s.Snapshot().Pressed) != 0 {
		t.Fatal("release without press should leave the matrix empty")
	}
}

func TestOutOfBoundsIgnored(t *testing.T) {
	s := New(2, 2)

	s.Apply(-1, 0, true)
	s.Apply(0, -1, true)
	s.Apply(2, 0, true)
	s.Apply(0, 2, true)
	s.Apply(100000, 200000, true)

	snapshot := s.Snapshot()
	if len(snapshot.Pressed) != 0 {
		t.Fatalf("out-of-matrix events must not stick: %+v", snapshot.Pressed)
	}
	if snapshot.Events != 5 {
		t.Fatalf("expected 5 events counted, got %d", snapshot.Events)
	}
}

func TestRenderSize(t *testing.T) {
	s := New(2, 3)
	s.Apply(0, 1, true)

	r := NewRenderer(s, 20)
	img := r.Render()

	bounds := img.Bounds()
	wantW, wantH := r.Size()
	if bounds.Dx() != wantW || bounds.Dy() != wantH {
		t.Fatalf("expected %dx%d image, got %dx%d", wantW, wantH, bounds.Dx(), bounds.Dy())
	}
	if wantW != 3*20 || wantH != 2*20+footerHeight {
		t.Fatalf("unexpected size: %dx%d", wantW, wantH)
	}
}
