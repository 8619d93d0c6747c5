// This file is part of GopherMSX.
//
// GopherMSX is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherMSX is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherMSX.  If not, see <https://www.gnu.org/licenses/>.

package firmware

import (
	"os"

	"github.com/jetsetilly/gophermsx/curated"
)

// maximum firmware image size. the firmware region is the bottom 16K of the
// address space.
const imageSize = 0x4000

// Image is a read-only firmware ROM image. It is loaded once and shared by
// every stepper that walks through firmware code.
type Image struct {
	data []byte
}

// LoadImage reads a firmware ROM image from disk. Images larger than the
// firmware region are rejected rather than truncated.
func LoadImage(filename string) (*Image, error) {
	d, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("firmware: %v", err)
	}
	if len(d) > imageSize {
		return nil, curated.Errorf("firmware: image too large (%d bytes)", len(d))
	}
	return &Image{data: d}, nil
}

// NewImage wraps an in-memory byte slice as a firmware image. Useful in
// tests and for embedded images.
func NewImage(data []byte) *Image {
	d := make([]byte, len(data))
	copy(d, data)
	return &Image{data: d}
}

// Read returns the image byte at the address. Addresses beyond the image
// read as zero, which decodes as a nop.
func (img *Image) Read(address uint16) uint8 {
	if img == nil || int(address) >= len(img.data) {
		return 0
	}
	return img.data[address]
}

// Size returns the number of bytes in the image.
func (img *Image) Size() int {
	if img == nil {
		return 0
	}
	return len(img.data)
}
