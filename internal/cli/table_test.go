package cli

import (
	"strings"
	"testing"
)

func TestTableWrite(t *testing.T) {
	list := newTable("THEME", "DEFAULT")
	list.addRow("midnight", "yes")
	list.addRow("horizon", "")

	var out strings.Builder
	if err := list.write(&out); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "THEME") || !strings.Contains(lines[0], "DEFAULT") {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "midnight") || !strings.Contains(lines[1], "yes") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}

	// Columns line up: DEFAULT starts at the same offset in every line.
	col := strings.Index(lines[0], "DEFAULT")
	if got := strings.Index(lines[1], "yes"); got != col {
		t.Fatalf("misaligned column: header at %d, row at %d", col, got)
	}
}
