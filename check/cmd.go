package check

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

type CLICmd struct {
	Dir string `help:"Folder of icons to check" default:"icons"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	dir, err := filepath.Abs(c.Dir)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(dir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid icon path %q: %w", c.Dir, err)
	}
	c.Dir = dir

	return nil
}

// Run decodes every file in the folder with the registered standard
// readers, validating chunk checksums and compressed data along the way,
// and confirms each icon is square.
func (c *CLICmd) Run() error {
	files, err := os.ReadDir(c.Dir)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Dir, err)
	}

	var checkedCount, errCount int
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		name := filepath.Join(c.Dir, file.Name())
		if err := checkIcon(name); err != nil {
			errCount++
			slog.Error("bad icon", "file", name, "error", err)
			continue
		}

		checkedCount++
	}

	slog.Info("stats", "checked", checkedCount, "errors", errCount, "total", checkedCount+errCount)

	if errCount > 0 {
		return fmt.Errorf("error checking %d files", errCount)
	}
	return nil
}

func checkIcon(name string) error {
	iconFile, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("could not open icon: %w", err)
	}
	defer func() {
		if close_err := iconFile.Close(); close_err != nil {
			slog.Error("could not close icon", "name", name, "error", close_err)
		}
	}()

	img, format, err := image.Decode(iconFile)
	if err != nil {
		return fmt.Errorf("could not decode icon: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != bounds.Dy() {
		return fmt.Errorf("icon is not square: %dx%d", bounds.Dx(), bounds.Dy())
	}

	slog.Info("verified", "file", name, "format", format, "size", bounds.Dx())
	return nil
}
