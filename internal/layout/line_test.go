package layout

import (
	"testing"

	"github.com/dgallion1/doclens/internal/geometry"
)

func TestBuildLinesGroupsAndOrders(t *testing.T) {
	chars := []geometry.Char{
		// Second line, out of order on purpose.
		{Text: "World", X: 120, Y: 100.2, Size: 12, Font: "Helvetica"},
		{Text: "Hello ", X: 50, Y: 99.8, Size: 12, Font: "Helvetica"},
		// First line (closer to the top).
		{Text: "Title", X: 50, Y: 40, Size: 18, Font: "Helvetica-Bold"},
	}

	lines := BuildLines(chars, 3)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	if lines[0].Text != "Title" {
		t.Errorf("first line = %q, want %q", lines[0].Text, "Title")
	}
	if !lines[0].Bold {
		t.Error("expected bold font to mark line bold")
	}
	if lines[0].Page != 3 {
		t.Errorf("page = %d, want 3", lines[0].Page)
	}

	// 99.8 and 100.2 both round to 100 and merge left-to-right.
	if lines[1].Text != "Hello World" {
		t.Errorf("second line = %q, want %q", lines[1].Text, "Hello World")
	}
	if lines[1].LeftMargin != 50 {
		t.Errorf("left margin = %v, want 50", lines[1].LeftMargin)
	}
	if lines[1].AvgSize != 12 {
		t.Errorf("avg size = %v, want 12", lines[1].AvgSize)
	}
}

func TestBuildLinesSkipsWhitespaceOnly(t *testing.T) {
	chars := []geometry.Char{
		{Text: "   ", X: 10, Y: 10, Size: 12},
		{Text: "Real", X: 10, Y: 30, Size: 12},
	}
	lines := BuildLines(chars, 1)
	if len(lines) != 1 || lines[0].Text != "Real" {
		t.Fatalf("got %v, want single %q line", lines, "Real")
	}
}

func TestBuildLinesEmpty(t *testing.T) {
	if got := BuildLines(nil, 1); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
