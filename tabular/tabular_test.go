package tabular

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	rows := []Row{
		{0, 0.1},
		{1, 0.25},
		{2, 0.65},
	}

	path := filepath.Join(t.TempDir(), "table.txt")
	if err := Save(rows, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("Load() returned %d rows, want %d", len(got), len(rows))
	}
	for i, row := range rows {
		for j, v := range row {
			if got[i][j] != v {
				t.Errorf("row %d col %d = %v, want %v", i, j, got[i][j], v)
			}
		}
	}
}

func TestLoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.txt")
	if err := os.WriteFile(path, []byte("1 2\n\n3 4\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	rows, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Load() returned %d rows, want 2", len(rows))
	}
}

func TestFileNameTemplates(t *testing.T) {
	if got := HistogramFileName("tent3.0"); got != "histogram_tent3.0" {
		t.Errorf("HistogramFileName() = %q", got)
	}
	if got := EntropyFileName("tent3.0"); got != "entropy_tent3.0" {
		t.Errorf("EntropyFileName() = %q", got)
	}
}
