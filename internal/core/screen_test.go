package core

import (
	"strings"
	"testing"
)

// row returns line y of the screen as plain text.
func row(s *Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	if s.Bounds() != NewRect(0, 0, 80, 24) {
		t.Errorf("Bounds() = %+v, expected (0, 0, 80, 24)", s.Bounds())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if r := s.GetCell(x, y).Rune; r != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", r, x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorRock)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRock {
		t.Errorf("GetCell(5, 5) = %+v, expected X/ColorRock", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorRock)
	s.Set(10, 0, 'A', ColorRock)
	s.Set(0, 10, 'A', ColorRock)

	if c := s.GetCell(-1, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected uncolored space", c)
	}
	if strings.Contains(s.String(), "A") {
		t.Error("Out of bounds Set leaked onto the screen")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorDragon)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorDragon {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if s.GetCell(1, 1).Rune != ' ' || s.GetCell(5, 5).Rune != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawRectClipsToScreen(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRect(NewRect(-2, 1, 100, 100), '#', ColorRock)

	expected := "    \n####\n####"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorPrompt)

	x := (20 - 2) / 2
	if s.GetCell(x, 2).Rune != 'H' || s.GetCell(x+1, 2).Rune != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", row(s, 2))
	}
}

func TestScreenDrawTextCenteredTooWide(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawTextCentered(0, "ABCDEF", ColorPrompt)

	if got := row(s, 0); got != "ABCD" {
		t.Errorf("row = %q, expected text to start at column 0", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(row(s, 0)) != "" {
		t.Errorf("Resize should clear content, row 0 = %q", row(s, 0))
	}
}
