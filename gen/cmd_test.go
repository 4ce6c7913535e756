package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"iconforge/parallel"
)

func TestValidateRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
	}{
		{"empty", nil},
		{"zero", []int{16, 0}},
		{"negative", []int{-5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := CLICmd{Out: t.TempDir(), Sizes: tt.sizes}
			if err := cmd.Validate(nil); err == nil {
				t.Error("Validate did not fail")
			}
		})
	}
}

func TestRunCreatesIcons(t *testing.T) {
	// Nested path: the destination folder must be created on demand.
	outDir := filepath.Join(t.TempDir(), "icons")
	cmd := CLICmd{Out: outDir, Sizes: []int{16, 32, 48, 128}}

	if err := cmd.Run(parallel.Start(1)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, size := range cmd.Sizes {
		name := filepath.Join(outDir, fmt.Sprintf("icon%d.png", size))
		got, err := os.ReadFile(name)
		if err != nil {
			t.Fatalf("could not read %q: %v", name, err)
		}

		want, err := Icon(size)
		if err != nil {
			t.Fatalf("Icon(%d) failed: %v", size, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("%q does not match the pure render for size %d", name, size)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	cmd := CLICmd{Out: t.TempDir(), Sizes: []int{16}}

	if err := cmd.Run(parallel.Start(1)); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	if err := cmd.Run(parallel.Start(1)); err != nil {
		t.Fatalf("second Run over an existing folder failed: %v", err)
	}
}

func TestRunParallelMatchesSerial(t *testing.T) {
	sizes := []int{16, 32, 48, 128}

	serialDir := t.TempDir()
	serial := CLICmd{Out: serialDir, Sizes: sizes}
	if err := serial.Run(parallel.Start(1)); err != nil {
		t.Fatalf("serial Run failed: %v", err)
	}

	parallelDir := t.TempDir()
	fanned := CLICmd{Out: parallelDir, Sizes: sizes}
	if err := fanned.Run(parallel.Start(4)); err != nil {
		t.Fatalf("parallel Run failed: %v", err)
	}

	for _, size := range sizes {
		name := fmt.Sprintf("icon%d.png", size)
		a, err := os.ReadFile(filepath.Join(serialDir, name))
		if err != nil {
			t.Fatalf("could not read serial %q: %v", name, err)
		}
		b, err := os.ReadFile(filepath.Join(parallelDir, name))
		if err != nil {
			t.Fatalf("could not read parallel %q: %v", name, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%q differs between serial and parallel runs", name)
		}
	}
}

func TestRunLeavesNoTempFiles(t *testing.T) {
	outDir := t.TempDir()
	cmd := CLICmd{Out: outDir, Sizes: []int{16, 32}}

	if err := cmd.Run(parallel.Start(1)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("could not read output folder: %v", err)
	}
	if len(entries) != len(cmd.Sizes) {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("output folder holds %v, want exactly %d icons", names, len(cmd.Sizes))
	}
}
