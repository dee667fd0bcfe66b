package deinterleave

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/qmuntal/gltf"
)

const dataURIScheme = "data:"

// Document is a parsed scene description.
//
// Codes is index-aligned with Accessors and keeps the layout codes of each
// accessor as they appeared in the source.
type Document struct {
	*gltf.Document
	Codes []AccessorCode
}

// NewDocument wraps an in-memory gltf document, deriving accessor codes from
// its typed fields.
func NewDocument(doc *gltf.Document) *Document {
	codes := make([]AccessorCode, len(doc.Accessors))
	for i, a := range doc.Accessors {
		if a != nil {
			codes[i] = codeOf(a)
		}
	}
	return &Document{Document: doc, Codes: codes}
}

// code returns the raw layout code of accessor i.
func (d *Document) code(i int) AccessorCode {
	if i < len(d.Codes) {
		return d.Codes[i]
	}
	return codeOf(d.Accessors[i])
}

// Placeholders substituted for unrecognized layout codes so the typed decode
// accepts the document. The raw values survive in Document.Codes.
const (
	placeholderComponentType = CodeFloat
	placeholderType          = "SCALAR"
)

// ParseDocument parses a glTF JSON document from raw bytes. Accessors with
// unrecognized componentType or type values still parse; extracting them
// fails with ErrUnknownType.
func ParseDocument(data []byte) (*Document, error) {
	sanitized, codes, err := sanitizeAccessors(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	doc := new(gltf.Document)
	if err := json.Unmarshal(sanitized, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return &Document{Document: doc, Codes: codes}, nil
}

// sanitizeAccessors records the raw layout codes of every accessor in data and
// returns a copy of data where unrecognized codes are replaced by placeholders.
func sanitizeAccessors(data []byte) ([]byte, []AccessorCode, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, nil, err
	}
	rawAccessors, ok := top["accessors"]
	if !ok {
		return data, nil, nil
	}

	var accessors []map[string]json.RawMessage
	if err := json.Unmarshal(rawAccessors, &accessors); err != nil {
		return nil, nil, fmt.Errorf("accessors: %w", err)
	}

	codes := make([]AccessorCode, len(accessors))
	changed := false
	for i, fields := range accessors {
		if fields == nil {
			continue
		}
		if v, ok := fields["componentType"]; ok {
			if err := json.Unmarshal(v, &codes[i].ComponentType); err != nil {
				return nil, nil, fmt.Errorf("accessor %d componentType: %w", i, err)
			}
			if _, known := componentTypes[codes[i].ComponentType]; !known {
				fields["componentType"] = json.RawMessage(strconv.Itoa(placeholderComponentType))
				changed = true
			}
		}
		if v, ok := fields["type"]; ok {
			if err := json.Unmarshal(v, &codes[i].Type); err != nil {
				return nil, nil, fmt.Errorf("accessor %d type: %w", i, err)
			}
			if _, known := accessorTypes[codes[i].Type]; !known {
				fields["type"] = json.RawMessage(strconv.Quote(placeholderType))
				changed = true
			}
		}
	}
	if !changed {
		return data, codes, nil
	}

	rewritten, err := json.Marshal(accessors)
	if err != nil {
		return nil, nil, err
	}
	top["accessors"] = rewritten
	out, err := json.Marshal(top)
	if err != nil {
		return nil, nil, err
	}
	return out, codes, nil
}

// LoadDocument parses a glTF JSON document from disk.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrIO, path, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Load parses the document at path and resolves all of its buffers relative
// to the document's directory. The returned buffers are index-aligned with
// doc.Buffers.
func Load(path string) (*Document, [][]byte, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, nil, err
	}
	buffers, err := ResolveBuffers(doc, filepath.Dir(path))
	if err != nil {
		return nil, nil, err
	}
	return doc, buffers, nil
}

// ResolveBuffers returns the raw bytes of every buffer in doc. Embedded data
// URIs are decoded in memory; other URIs are read from files relative to dir.
func ResolveBuffers(doc *Document, dir string) ([][]byte, error) {
	buffers := make([][]byte, len(doc.Buffers))
	for i, buf := range doc.Buffers {
		data, err := resolveBuffer(buf, dir)
		if err != nil {
			return nil, fmt.Errorf("buffer %d: %w", i, err)
		}
		buffers[i] = data
	}
	return buffers, nil
}

func resolveBuffer(buf *gltf.Buffer, dir string) ([]byte, error) {
	if buf == nil || buf.URI == "" {
		return nil, fmt.Errorf("%w: buffer has no uri", ErrUnsupportedBuffer)
	}
	if strings.HasPrefix(buf.URI, dataURIScheme) {
		return DecodeDataURI(buf.URI)
	}

	// glTF URIs are RFC 3986 references; keep the raw value if it is not
	// valid percent-encoding.
	name, err := url.PathUnescape(buf.URI)
	if err != nil {
		name = buf.URI
	}
	path := filepath.Join(dir, filepath.FromSlash(name))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrIO, path, err)
	}
	return data, nil
}

// DecodeDataURI decodes the base64 payload of a data URI such as
// "data:application/octet-stream;base64,AAAA".
func DecodeDataURI(uri string) ([]byte, error) {
	_, payload, ok := strings.Cut(uri, ",")
	if !ok {
		return nil, fmt.Errorf("%w: data uri has no payload separator", ErrParse)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Some exporters drop the trailing padding.
		if raw, rawErr := base64.RawStdEncoding.DecodeString(payload); rawErr == nil {
			return raw, nil
		}
		return nil, fmt.Errorf("%w: decoding data uri: %w", ErrParse, err)
	}
	return data, nil
}
