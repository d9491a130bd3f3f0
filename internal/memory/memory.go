// Package memory provides the flat 64 KB byte-addressable space the
// CPU core consumes through its read/write contract.
package memory

import (
	"fmt"
	"os"
)

const sizeBytes = 0x10000

// RAM is a flat 64K memory image. The whole address space is defined,
// out-of-range addresses cannot exist with a 16-bit address.
type RAM struct {
	data [sizeBytes]uint8
}

func New() *RAM {
	return &RAM{}
}

func (r *RAM) Read8(addr uint16) uint8 {
	return r.data[addr]
}

func (r *RAM) Write8(addr uint16, data uint8) {
	r.data[addr] = data
}

// LoadImage copies a raw image into memory starting at origin. The
// image must fit into the remainder of the address space.
func (r *RAM) LoadImage(image []byte, origin uint16) error {
	if len(image) > sizeBytes-int(origin) {
		return fmt.Errorf("image of %d bytes does not fit at origin %04X", len(image), origin)
	}
	copy(r.data[origin:], image)
	return nil
}

// NewFromFile reads a raw binary file and loads it at origin.
func NewFromFile(path string, origin uint16) (*RAM, error) {
	image, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read the image: %w", err)
	}
	r := New()
	if err := r.LoadImage(image, origin); err != nil {
		return nil, err
	}
	return r, nil
}
