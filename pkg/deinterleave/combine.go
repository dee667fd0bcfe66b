package deinterleave

import (
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
)

// BinaryName returns the file name of the combined binary written next to
// output: the output base name without extension, then suffix and ext.
func BinaryName(output, suffix, ext string) string {
	base := filepath.Base(output)
	return strings.TrimSuffix(base, filepath.Ext(base)) + suffix + ext
}

// Combine concatenates slots into one binary blob and points the document at
// it: every view moves to buffer 0 at its slot's offset, and doc.Buffers is
// replaced by a single buffer referencing uri. It returns the blob and the
// starting offset of each slot.
func Combine(doc *Document, slots [][]byte, uri string) ([]byte, []int) {
	total := 0
	for _, slot := range slots {
		total += len(slot)
	}

	combined := make([]byte, 0, total)
	offsets := make([]int, len(slots))
	for i, slot := range slots {
		offsets[i] = len(combined)
		combined = append(combined, slot...)
	}

	for _, view := range doc.BufferViews {
		if view.Buffer >= 0 && view.Buffer < len(offsets) {
			view.ByteOffset = offsets[view.Buffer]
		}
		view.Buffer = 0
	}

	doc.Buffers = []*gltf.Buffer{{
		ByteLength: len(combined),
		URI:        uri,
	}}

	return combined, offsets
}
