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
			if s.GetCell(x, y).Rune != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetColoredGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', Color(3))
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != Color(3) {
		t.Errorf("GetCell(5, 5) = %+v, expected X with color 3", cell)
	}

	// Out of bounds should be silent
	s.SetColored(-1, 0, 'A', ColorText)
	s.SetColored(100, 0, 'A', ColorText)
	s.SetColored(0, -1, 'A', ColorText)
	s.SetColored(0, 100, 'A', ColorText)

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
	if s.GetCell(100, 0).Color != ColorEmpty {
		t.Error("Out of bounds GetCell should return the empty colour")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', Color(2))

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.GetCell(2+i, 1).Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.GetCell(2+i, 1).Rune)
		}
		if s.GetCell(2+i, 1).Color != ColorText {
			t.Errorf("DrawText: expected text colour at (%d, 1)", 2+i)
		}
	}

	// Only "He" should fit
	s.DrawText(18, 0, "Hello")
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "··", ColorAccent)

	// Two runes centred in ten cells start at column 4
	if s.GetCell(4, 0).Rune != '·' || s.GetCell(5, 0).Rune != '·' {
		t.Errorf("screen = %q, expected runes at columns 4 and 5", s.String())
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorOutline)

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.GetCell(c.x, c.y).Rune; got != c.want {
			t.Errorf("Corner at (%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}
	if s.GetCell(3, 1).Rune != '─' || s.GetCell(1, 2).Rune != '│' {
		t.Error("Box edges not drawn")
	}
	if s.GetCell(3, 1).Color != ColorOutline {
		t.Error("Box should use the outline colour")
	}
	if s.GetCell(3, 2).Rune != ' ' {
		t.Error("Box interior should stay empty")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "abc" || lines[1] != "de " {
		t.Errorf("String() = %q", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, 'X', ColorText)
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("Resize: got %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if s.GetCell(1, 1).Rune != ' ' {
		t.Error("Resize should clear the buffer")
	}
}
