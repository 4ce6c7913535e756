package pngenc

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"
)

var signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

var (
	headerType = [4]byte{'I', 'H', 'D', 'R'}
	dataType   = [4]byte{'I', 'D', 'A', 'T'}
	endType    = [4]byte{'I', 'E', 'N', 'D'}
)

const (
	bitDepth      = 8
	colorTypeRGBA = 6
)

// Encode serialises a square grid of raw RGBA rows as a minimal PNG
// stream: the fixed signature, an IHDR chunk, one zlib-compressed IDAT
// chunk holding all rows with a leading no-filter byte each, and an empty
// IEND chunk. The three chunks are always emitted, in that order.
//
// A row count or row width inconsistent with size means the caller broke
// the contract; Encode reports it as an error and writes nothing.
func Encode(w io.Writer, size int, rows [][]byte) error {
	if size <= 0 {
		return fmt.Errorf("invalid image size: %d", size)
	}
	if len(rows) != size {
		return fmt.Errorf("have %d rows for declared size %d", len(rows), size)
	}
	for y, row := range rows {
		if len(row) != size*4 {
			return fmt.Errorf("row %d holds %d bytes, want %d", y, len(row), size*4)
		}
	}

	if err := writeBytes(w, signature); err != nil {
		return fmt.Errorf("could not write signature: %w", err)
	}

	if err := writeChunk(w, headerType, headerPayload(uint32(size))); err != nil {
		return fmt.Errorf("could not write header chunk: %w", err)
	}

	data, err := deflateRows(rows)
	if err != nil {
		return err
	}
	if err := writeChunk(w, dataType, data); err != nil {
		return fmt.Errorf("could not write data chunk: %w", err)
	}

	if err := writeChunk(w, endType, nil); err != nil {
		return fmt.Errorf("could not write end chunk: %w", err)
	}

	return nil
}

// headerPayload packs the fixed 13-byte IHDR body: width, height, bit
// depth, color type, then the three reserved method fields held at zero.
func headerPayload(size uint32) []byte {
	p := binary.BigEndian.AppendUint32(nil, size)
	p = binary.BigEndian.AppendUint32(p, size)
	return append(p, bitDepth, colorTypeRGBA, 0, 0, 0)
}

// deflateRows prepends the no-filter marker byte to every row and
// compresses the concatenation at the highest effort.
func deflateRows(rows [][]byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("could not open compressor: %w", err)
	}

	for y, row := range rows {
		if err := writeBytes(zw, []byte{0}); err != nil {
			return nil, fmt.Errorf("could not compress filter marker for row %d: %w", y, err)
		}
		if err := writeBytes(zw, row); err != nil {
			return nil, fmt.Errorf("could not compress row %d: %w", y, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("could not flush compressor: %w", err)
	}

	return buf.Bytes(), nil
}

// writeChunk emits one chunk: big-endian payload length, 4-byte type tag,
// payload, then a CRC-32 over tag and payload. The length field is not
// covered by the checksum.
func writeChunk(w io.Writer, tag [4]byte, payload []byte) error {
	if uint64(len(payload)) > math.MaxUint32 {
		return fmt.Errorf("chunk %s payload overflows length field: %d bytes", tag[:], len(payload))
	}

	if err := writeBytes(w, binary.BigEndian.AppendUint32(nil, uint32(len(payload)))); err != nil {
		return fmt.Errorf("could not write length: %w", err)
	}

	if err := writeBytes(w, tag[:]); err != nil {
		return fmt.Errorf("could not write type tag: %w", err)
	}

	if err := writeBytes(w, payload); err != nil {
		return fmt.Errorf("could not write payload: %w", err)
	}

	crc := crc32.NewIEEE()
	crc.Write(tag[:])
	crc.Write(payload)
	if err := writeBytes(w, binary.BigEndian.AppendUint32(nil, crc.Sum32())); err != nil {
		return fmt.Errorf("could not write checksum: %w", err)
	}

	return nil
}

func writeBytes(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return err
	} else if n != len(b) {
		return fmt.Errorf("wrote only %d/%d bytes", n, len(b))
	}

	return nil
}
