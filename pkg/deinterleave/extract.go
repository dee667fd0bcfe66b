package deinterleave

import "fmt"

// readPlan describes where an accessor's elements live in its source buffer.
type readPlan struct {
	Buffer      int
	BaseOffset  int
	Stride      int
	ElementSize int
	Count       int
}

// planAccessor validates accessor index and computes its read plan.
func planAccessor(doc *Document, index int) (readPlan, error) {
	if index < 0 || index >= len(doc.Accessors) {
		return readPlan{}, fmt.Errorf("%w: accessor index %d (have %d)", ErrOutOfRange, index, len(doc.Accessors))
	}
	accessor := doc.Accessors[index]
	if accessor == nil {
		return readPlan{}, fmt.Errorf("%w: accessor %d is null", ErrParse, index)
	}
	if accessor.BufferView == nil {
		return readPlan{}, fmt.Errorf("%w: accessor %d has no bufferView", ErrUnsupportedBuffer, index)
	}
	if accessor.Count < 0 {
		return readPlan{}, fmt.Errorf("%w: accessor %d count %d", ErrOutOfRange, index, accessor.Count)
	}

	viewIndex := *accessor.BufferView
	if viewIndex < 0 || viewIndex >= len(doc.BufferViews) || doc.BufferViews[viewIndex] == nil {
		return readPlan{}, fmt.Errorf("%w: accessor %d bufferView %d (have %d)", ErrOutOfRange, index, viewIndex, len(doc.BufferViews))
	}
	view := doc.BufferViews[viewIndex]

	elementSize, err := ElementSize(doc.code(index))
	if err != nil {
		return readPlan{}, fmt.Errorf("accessor %d: %w", index, err)
	}

	stride := view.ByteStride
	if stride == 0 {
		stride = elementSize
	}

	return readPlan{
		Buffer:      view.Buffer,
		BaseOffset:  view.ByteOffset + accessor.ByteOffset,
		Stride:      stride,
		ElementSize: elementSize,
		Count:       accessor.Count,
	}, nil
}

// fits reports whether every element of the plan lies inside a buffer of
// size bytes, without computing products that could overflow.
func (p readPlan) fits(size int) error {
	if p.Count == 0 {
		return nil
	}
	if p.BaseOffset < 0 || p.Stride <= 0 {
		return fmt.Errorf("has offset %d and stride %d", p.BaseOffset, p.Stride)
	}
	// Bytes left for the strides between the first and last element.
	room := size - p.BaseOffset - p.ElementSize
	if room < 0 {
		return fmt.Errorf("first element at %d does not fit %d-byte buffer %d", p.BaseOffset, size, p.Buffer)
	}
	if p.Count-1 > room/p.Stride {
		return fmt.Errorf("count %d with stride %d does not fit %d-byte buffer %d", p.Count, p.Stride, size, p.Buffer)
	}
	return nil
}

// ExtractAccessor returns the elements of accessor index packed back to back,
// dropping whatever the source view interleaves between them. The result has
// length count*elementSize and never aliases buffers.
func ExtractAccessor(doc *Document, buffers [][]byte, index int) ([]byte, error) {
	plan, err := planAccessor(doc, index)
	if err != nil {
		return nil, err
	}
	if plan.Buffer < 0 || plan.Buffer >= len(buffers) {
		return nil, fmt.Errorf("%w: accessor %d buffer %d (have %d)", ErrOutOfRange, index, plan.Buffer, len(buffers))
	}
	src := buffers[plan.Buffer]
	if err := plan.fits(len(src)); err != nil {
		return nil, fmt.Errorf("%w: accessor %d %w", ErrOutOfRange, index, err)
	}

	out := make([]byte, plan.Count*plan.ElementSize)
	for i := 0; i < plan.Count; i++ {
		start := plan.BaseOffset + i*plan.Stride
		end := start + plan.ElementSize
		if start < 0 || end > len(src) {
			return nil, fmt.Errorf("%w: accessor %d element %d reads [%d, %d) of %d-byte buffer %d",
				ErrOutOfRange, index, i, start, end, len(src), plan.Buffer)
		}
		copy(out[i*plan.ElementSize:], src[start:end])
	}

	return out, nil
}

// ExtractAll extracts every accessor of doc in order.
func ExtractAll(doc *Document, buffers [][]byte) ([][]byte, error) {
	extracted := make([][]byte, len(doc.Accessors))
	for i := range doc.Accessors {
		data, err := ExtractAccessor(doc, buffers, i)
		if err != nil {
			return nil, err
		}
		extracted[i] = data
	}
	return extracted, nil
}
