package core

import (
	"strings"
	"testing"
)

// rows splits the screen into its text lines.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	for y, row := range rows(s) {
		if row != "      " {
			t.Errorf("row %d = %q, expected blanks", y, row)
		}
	}

	if z := NewScreen(-4, 2); z.Width() != 0 || z.String() != "\n" {
		t.Errorf("negative width should yield an empty screen, got %dx%d", z.Width(), z.Height())
	}
}

func TestScreenClipping(t *testing.T) {
	s := NewScreen(4, 2)
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.Set(p[0], p[1], 'X')
		if got := s.Get(p[0], p[1]); got != ' ' {
			t.Errorf("Get(%d, %d) = %q, expected space", p[0], p[1], got)
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Errorf("out of bounds writes leaked into %q", s.String())
	}

	s.DrawText(2, 1, "Hello")
	if got := s.Row(1); got != "  He" {
		t.Errorf("Row(1) = %q, expected text clipped at the right edge", got)
	}
	s.DrawText(-3, 0, "abcde")
	if got := s.Row(0); got != "de  " {
		t.Errorf("Row(0) = %q, expected text clipped at the left edge", got)
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill('#')
	if got := s.String(); got != "###\n###" {
		t.Errorf("after Fill: %q", got)
	}
	s.SetColored(1, 1, '@', ColorRed)
	s.Clear()
	if got := s.GetCell(1, 1); got != (Cell{Rune: ' '}) {
		t.Errorf("Clear should blank cells, got %+v", got)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(1, 1, '@', ColorBrightGreen)
	s.DrawTextColored(3, 2, "ok", ColorRed)

	if c := s.GetCell(1, 1); c.Rune != '@' || c.Color != ColorBrightGreen {
		t.Errorf("GetCell(1, 1) = %+v, expected bright green '@'", c)
	}
	if c := s.GetCell(4, 2); c.Rune != 'k' || c.Color != ColorRed {
		t.Errorf("GetCell(4, 2) = %+v, expected red 'k'", c)
	}

	// Plain Set resets the color
	s.Set(1, 1, '#')
	if c := s.GetCell(1, 1); c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", c.Color)
	}
	if c := s.GetCell(-1, 99); c != (Cell{Rune: ' '}) {
		t.Errorf("out of bounds GetCell should be blank, got %+v", c)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRectColored(NewRect(1, 1, 2, 2), '#', ColorYellow)
	s.DrawRect(NewRect(4, -1, 5, 2), '=')

	want := []string{
		"    ==",
		" ##   ",
		" ##   ",
		"      ",
	}
	for y, row := range rows(s) {
		if row != want[y] {
			t.Errorf("row %d = %q, expected %q", y, row, want[y])
		}
	}
	if c := s.GetCell(2, 2); c.Color != ColorYellow {
		t.Errorf("filled cell color = %v, expected yellow", c.Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawBox(NewRect(1, 1, 5, 4))

	want := []string{
		"       ",
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
	}
	for y, row := range rows(s) {
		if row != want[y] {
			t.Errorf("row %d = %q, expected %q", y, row, want[y])
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("after shrink: %dx%d, expected 4x3", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "Hell" {
		t.Errorf("Row(0) = %q, expected the top-left region kept", got)
	}

	s.Resize(8, 6)
	if got := s.Row(0); got != "Hell    " {
		t.Errorf("Row(0) = %q after growing", got)
	}
	if got := s.Row(5); got != "        " {
		t.Errorf("Row(5) = %q, rows cut by the shrink should stay blank", got)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawText(0, 1, "Test")
	if got := s.Row(1); got != "Test " {
		t.Errorf("Row(1) = %q", got)
	}
	for _, y := range []int{-1, 2} {
		if got := s.Row(y); got != "     " {
			t.Errorf("Row(%d) = %q, expected spaces", y, got)
		}
	}
	if got := s.String(); got != "     \nTest " {
		t.Errorf("String() = %q", got)
	}
}
