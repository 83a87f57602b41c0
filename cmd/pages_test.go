package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"swipedeck/internal/deck"
)

func TestPagesTable(t *testing.T) {
	dir := t.TempDir()
	body := strings.TrimSpace(strings.Repeat("word ", 1234))
	if err := os.WriteFile(filepath.Join(dir, "big.md"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := deck.Load([]string{dir})
	if err != nil {
		t.Fatal(err)
	}

	table := pagesTable(d)
	if len(table.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(table.Rows))
	}
	row := table.Rows[0]
	if row[0] != "1" || row[1] != "big" {
		t.Fatalf("row = %v", row)
	}
	if row[2] != "1,234" {
		t.Fatalf("word count = %q, want 1,234", row[2])
	}
	if !strings.HasSuffix(row[3], "KB") {
		t.Fatalf("size = %q, want kilobytes", row[3])
	}
}
