package canvas

import (
	"errors"
	"image"
	"testing"
)

// nopSession accepts every call and draws nothing.
type nopSession struct{}

type nopCloser struct{}

func (nopCloser) Close() error                       { return nil }
func (nopCloser) Composite(float64, BlendMode) error { return nil }

func (nopSession) SetTransform(Matrix)  {}
func (nopSession) SetAntialiasing(bool) {}
func (nopSession) Flush() error         { return nil }
func (nopSession) Clear(RGBA)           {}

func (nopSession) CreateLayer(float64, Rect) (Layer, error) {
	return nopCloser{}, nil
}

func (nopSession) BeginOffscreen(Rect) (Offscreen, error) {
	return nopCloser{}, nil
}

func (nopSession) NewPathBuilder() PathBuilder {
	return &traceBuilder{}
}

func (nopSession) CreateGroup([]Geometry, FillRule) Geometry {
	return nil
}

func (nopSession) FillGeometry(Geometry, Brush)                                         {}
func (nopSession) StrokeGeometry(Geometry, Brush, float64, StrokeStyle)                 {}
func (nopSession) FillRect(Rect, Brush)                                                 {}
func (nopSession) StrokeRect(Rect, Brush, float64, StrokeStyle)                         {}
func (nopSession) DrawImage(image.Image, Rect, Rect, float64, Interpolation, BlendMode) {}

func (nopSession) MeasureText(string, TextFormat) (TextLayout, error) {
	return TextLayout{Bounds: NewRect(0, -5, 6, 10)}, nil
}

func (nopSession) DrawText(string, float64, float64, Brush, TextFormat) error {
	return nil
}

func TestNewInvalidSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := New(sz[0], sz[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidSize", sz[0], sz[1], err)
		}
	}
}

func TestNewDefaults(t *testing.T) {
	c, err := New(100, 50)
	if err != nil {
		t.Fatal(err)
	}
	if c.Width() != 100 || c.Height() != 50 {
		t.Errorf("size = %dx%d, want 100x50", c.Width(), c.Height())
	}
	if !c.Matrix().IsIdentity() {
		t.Errorf("Matrix() = %+v, want identity", c.Matrix())
	}
	if got, want := c.ClipBounds(), NewRect(0, 0, 100, 50); got != want {
		t.Errorf("ClipBounds() = %+v, want %+v", got, want)
	}
	if c.Session() != nil {
		t.Error("Session() should be nil before CreateSession")
	}
	if err := c.DrawRect(NewRect(0, 0, 1, 1), NewPaint()); !errors.Is(err, ErrNoSession) {
		t.Errorf("DrawRect without session error = %v, want ErrNoSession", err)
	}
}

func TestWithSession(t *testing.T) {
	c, err := New(10, 10, WithSession(nopSession{}))
	if err != nil {
		t.Fatal(err)
	}
	if c.Session() == nil {
		t.Fatal("WithSession did not bind the session")
	}
	if err := c.DrawRect(NewRect(0, 0, 1, 1), NewPaint()); err != nil {
		t.Errorf("DrawRect = %v", err)
	}
}
