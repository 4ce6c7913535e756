package gen

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"iconforge/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Out   string `help:"Destination folder for generated icons. Created if absent." default:"icons"`
	Sizes []int  `help:"Icon sizes to generate, in pixels" default:"16,32,48,128"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	outDir, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid output path %q: %w", c.Out, err)
	}
	c.Out = outDir

	if len(c.Sizes) == 0 {
		return fmt.Errorf("no icon sizes given")
	}
	for _, size := range c.Sizes {
		if size <= 0 {
			return fmt.Errorf("invalid icon size: %d", size)
		}
	}

	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Out, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Out, err)
	}

	var createdCount, errCount atomic.Uint64
	for _, size := range c.Sizes {
		size := size
		pool.Do(func() {
			logger := slog.Default().With("size", size)

			data, err := Icon(size)
			if err != nil {
				errCount.Add(1)
				logger.Error("could not render icon", "error", err)
				return
			}

			name := fmt.Sprintf("icon%d.png", size)
			if err := writeFile(c.Out, name, data); err != nil {
				errCount.Add(1)
				logger.Error("could not save icon", "dir", c.Out, "error", err)
				return
			}

			createdCount.Add(1)
			logger.Info("created", "file", filepath.Join(c.Out, name), "bytes", len(data))
		})
	}
	pool.Wait()

	created := createdCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "created", created, "errors", errors, "total", created+errors)

	if errors > 0 {
		return fmt.Errorf("error generating %d icons", errors)
	}
	return nil
}
