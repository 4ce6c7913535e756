package gen

import (
	"bytes"
	"fmt"

	"iconforge/pngenc"
	"iconforge/sparkle"
)

// Icon renders the sparkle icon at the given pixel size and returns it as
// a complete PNG byte stream. Pure: the bytes depend on size alone.
func Icon(size int) ([]byte, error) {
	rows, err := sparkle.Field(size)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pngenc.Encode(&buf, size, rows); err != nil {
		return nil, fmt.Errorf("could not encode %d pixel icon: %w", size, err)
	}

	return buf.Bytes(), nil
}
