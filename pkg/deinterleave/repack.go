package deinterleave

import (
	"fmt"
	"slices"

	"github.com/qmuntal/gltf"
)

// Repack gives every accessor of doc its own buffer view and buffer slot.
//
// extracted must hold one byte slice per accessor, as returned by ExtractAll.
// Accessor i is rewritten to point at view i, which covers all of slot i; only
// componentType, count, type and min/max survive from the source accessor.
// doc.Accessors and doc.BufferViews are replaced wholesale. The returned slots
// are index-aligned with the new views' buffer field.
func Repack(doc *Document, extracted [][]byte) ([][]byte, error) {
	if len(extracted) != len(doc.Accessors) {
		return nil, fmt.Errorf("%w: %d extracted slices for %d accessors", ErrOutOfRange, len(extracted), len(doc.Accessors))
	}

	slots := make([][]byte, 0, len(extracted))
	views := make([]*gltf.BufferView, 0, len(extracted))
	accessors := make([]*gltf.Accessor, 0, len(extracted))
	codes := make([]AccessorCode, 0, len(extracted))

	for i, src := range doc.Accessors {
		if src == nil {
			return nil, fmt.Errorf("%w: accessor %d is null", ErrParse, i)
		}
		data := extracted[i]

		slot := len(slots)
		slots = append(slots, data)

		view := len(views)
		views = append(views, &gltf.BufferView{
			Buffer:     slot,
			ByteOffset: 0,
			ByteLength: len(data),
		})

		accessors = append(accessors, &gltf.Accessor{
			BufferView:    gltf.Index(view),
			ByteOffset:    0,
			ComponentType: src.ComponentType,
			Count:         src.Count,
			Type:          src.Type,
			Min:           slices.Clone(src.Min),
			Max:           slices.Clone(src.Max),
		})
		codes = append(codes, doc.code(i))
	}

	doc.Accessors = accessors
	doc.BufferViews = views
	doc.Codes = codes

	return slots, nil
}
