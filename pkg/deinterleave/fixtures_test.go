package deinterleave

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"testing"
)

// testPositions and testNormals are the three vertices used by most tests.
var (
	testPositions = [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	testNormals   = [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, -1}}
)

// createInterleavedBuffer packs one position and one normal per vertex,
// 24 bytes per vertex.
func createInterleavedBuffer(positions, normals [][3]float32) []byte {
	buf := new(bytes.Buffer)
	for i := range positions {
		binary.Write(buf, binary.LittleEndian, positions[i])
		binary.Write(buf, binary.LittleEndian, normals[i])
	}
	return buf.Bytes()
}

// createPackedBuffer packs vectors back to back.
func createPackedBuffer(vectors [][3]float32) []byte {
	buf := new(bytes.Buffer)
	for _, v := range vectors {
		binary.Write(buf, binary.LittleEndian, v)
	}
	return buf.Bytes()
}

func dataURI(data []byte) string {
	return "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(data)
}

// createInterleavedJSON returns a document with one buffer holding interleaved
// POSITION and NORMAL data for three vertices, stored at uri.
func createInterleavedJSON(uri string, byteLength int) []byte {
	return []byte(fmt.Sprintf(`{
  "asset": {"version": "2.0", "generator": "fixture"},
  "buffers": [{"byteLength": %d, "uri": %q}],
  "bufferViews": [{"buffer": 0, "byteOffset": 0, "byteLength": %d, "byteStride": 24, "target": 34962}],
  "accessors": [
    {"bufferView": 0, "byteOffset": 0, "componentType": 5126, "count": 3, "type": "VEC3",
     "min": [0, 0, 0], "max": [1, 1, 0], "name": "position"},
    {"bufferView": 0, "byteOffset": 12, "componentType": 5126, "count": 3, "type": "VEC3",
     "normalized": false}
  ],
  "meshes": [{"name": "triangle", "primitives": [{"attributes": {"POSITION": 0, "NORMAL": 1}}]}],
  "nodes": [{"mesh": 0}],
  "scenes": [{"nodes": [0]}],
  "scene": 0
}`, byteLength, uri, byteLength))
}

// mustParse parses a fixture document or fails the test.
func mustParse(t *testing.T, data []byte) *Document {
	t.Helper()
	doc, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	return doc
}

// interleavedFixture returns the parsed interleaved document and its buffers.
func interleavedFixture(t *testing.T) (*Document, [][]byte) {
	t.Helper()
	bin := createInterleavedBuffer(testPositions, testNormals)
	doc := mustParse(t, createInterleavedJSON(dataURI(bin), len(bin)))
	return doc, [][]byte{bin}
}
