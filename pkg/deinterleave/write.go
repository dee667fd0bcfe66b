package deinterleave

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// Write stores combined as binName in the directory of output, then the
// document itself at output, indenting the JSON with indent.
func Write(doc *Document, combined []byte, output, binName, indent string) error {
	binPath := filepath.Join(filepath.Dir(output), binName)
	if err := writeBinary(binPath, combined); err != nil {
		return err
	}
	return writeDocument(doc, output, indent)
}

func writeBinary(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrIO, path, err)
	}
	defer func() {
		err = multierr.Append(err, closeFile(f))
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
	}
	return nil
}

func writeDocument(doc *Document, path, indent string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrIO, path, err)
	}
	defer func() {
		err = multierr.Append(err, closeFile(f))
	}()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(doc.Document); err != nil {
		return fmt.Errorf("%w: encoding %s: %w", ErrIO, path, err)
	}
	return nil
}

func closeFile(f *os.File) error {
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", ErrIO, f.Name(), err)
	}
	return nil
}
