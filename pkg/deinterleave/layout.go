package deinterleave

import (
	"fmt"

	"github.com/qmuntal/gltf"
)

// Component type codes as written in glTF JSON.
const (
	CodeByte          = 5120
	CodeUnsignedByte  = 5121
	CodeShort         = 5122
	CodeUnsignedShort = 5123
	CodeUnsignedInt   = 5125
	CodeFloat         = 5126
)

var componentTypes = map[int]gltf.ComponentType{
	CodeByte:          gltf.ComponentByte,
	CodeUnsignedByte:  gltf.ComponentUbyte,
	CodeShort:         gltf.ComponentShort,
	CodeUnsignedShort: gltf.ComponentUshort,
	CodeUnsignedInt:   gltf.ComponentUint,
	CodeFloat:         gltf.ComponentFloat,
}

var accessorTypes = map[string]gltf.AccessorType{
	"SCALAR": gltf.AccessorScalar,
	"VEC2":   gltf.AccessorVec2,
	"VEC3":   gltf.AccessorVec3,
	"VEC4":   gltf.AccessorVec4,
	"MAT2":   gltf.AccessorMat2,
	"MAT3":   gltf.AccessorMat3,
	"MAT4":   gltf.AccessorMat4,
}

// AccessorCode is an accessor's layout exactly as written in the source JSON.
// The typed gltf model rejects unrecognized values, so the raw codes are kept
// alongside it and are what extraction validates against.
type AccessorCode struct {
	ComponentType int    `json:"componentType"`
	Type          string `json:"type"`
}

// String returns the code as "TYPE/componentType".
func (c AccessorCode) String() string {
	return fmt.Sprintf("%s/%d", c.Type, c.ComponentType)
}

// ComponentSize returns the byte width of a componentType code.
func ComponentSize(code int) (int, error) {
	ct, ok := componentTypes[code]
	if !ok {
		return 0, fmt.Errorf("%w: componentType %d", ErrUnknownType, code)
	}
	return ct.ByteSize(), nil
}

// ComponentCount returns the number of components of an accessor type name.
func ComponentCount(name string) (int, error) {
	at, ok := accessorTypes[name]
	if !ok {
		return 0, fmt.Errorf("%w: type %q", ErrUnknownType, name)
	}
	return at.Components(), nil
}

// ElementSize returns the byte size of one element described by c.
func ElementSize(c AccessorCode) (int, error) {
	size, err := ComponentSize(c.ComponentType)
	if err != nil {
		return 0, err
	}
	count, err := ComponentCount(c.Type)
	if err != nil {
		return 0, err
	}
	return size * count, nil
}

// codeOf reverses the lookup tables for accessors built in memory.
func codeOf(a *gltf.Accessor) AccessorCode {
	var code AccessorCode
	for c, ct := range componentTypes {
		if ct == a.ComponentType {
			code.ComponentType = c
			break
		}
	}
	for name, at := range accessorTypes {
		if at == a.Type {
			code.Type = name
			break
		}
	}
	return code
}
