package gen

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// writeFile lands data in destDir under name via a temporary file in the
// same folder, so a failed write never leaves a truncated destination.
func writeFile(destDir, name string, data []byte) (err error) {
	outFile, err := os.CreateTemp(destDir, name)
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", name, err)
	}

	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", name, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", name, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), filepath.Join(destDir, name)); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", name, defErr)
			}
		} else {
			if defErr := os.Remove(outFile.Name()); defErr != nil {
				slog.Error("could not remove temporary destination", "name", outFile.Name(), "error", defErr)
			}
		}
	}()

	if _, err = outFile.Write(data); err != nil {
		return fmt.Errorf("could not write destination %q: %w", name, err)
	}

	canRename = true
	return nil
}
