package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if r := s.GetCell(x, y).Rune; r != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", r, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if r := s.GetCell(5, 5).Rune; r != 'X' {
		t.Errorf("GetCell(5, 5) = %q, expected 'X'", r)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(7, 3)

	if b := s.Bounds(); b != NewRect(0, 0, 7, 3) {
		t.Errorf("Bounds() = %+v, expected 7x3 at origin", b)
	}

	// The last column and row are writable, one past them is not.
	s.Set(6, 2, 'Z')
	s.Set(7, 2, 'Y')
	if r := s.GetCell(6, 2).Rune; r != 'Z' {
		t.Errorf("GetCell(6, 2) = %q, expected 'Z'", r)
	}
	if s.Row(2) != "      Z" {
		t.Errorf("Row(2) = %q, expected %q", s.Row(2), "      Z")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 2)

	s.DrawTextColored(1, 0, "ab", ColorGreen)
	s.Set(4, 0, 'c')

	if cell := s.GetCell(1, 0); cell.Rune != 'a' || cell.Color != ColorGreen {
		t.Errorf("GetCell(1, 0) = %+v, expected green 'a'", cell)
	}
	if cell := s.GetCell(4, 0); cell.Color != ColorDefault {
		t.Errorf("Set should use default color, got %v", cell.Color)
	}

	s.Clear()
	if cell := s.GetCell(1, 0); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("After Clear, expected default space, got %+v", cell)
	}
}

func TestScreenDrawTextClipping(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(3, 0, "hello")

	if s.Row(0) != "   he" {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "   he")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(1, 0, 4, 3))

	expected := strings.Join([]string{
		" ┌──┐",
		" │  │",
		" └──┘",
		"",
	}, "\n")

	if s.String() != expected {
		t.Errorf("DrawBox output:\n%s\nexpected:\n%s", s.String(), expected)
	}
}

func TestScreenStringTrimsTrailingSpaces(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "abcd")

	if s.String() != "ab\nabcd" {
		t.Errorf("String() = %q, expected %q", s.String(), "ab\nabcd")
	}
}
