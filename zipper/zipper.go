// Package zipper packages exported sign parts into a ZIP download archive.
package zipper

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/eyeoverthink/SignMaker3D-sub002/sign"
)

// Write archives parts into a ZIP file at filename.
func Write(filename string, parts []sign.ExportedPart) error {
	zf, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("Create: %v", err)
	}

	if err := WriteTo(zf, parts); err != nil {
		zf.Close()
		return err
	}

	if err := zf.Close(); err != nil {
		return fmt.Errorf("Unable to close ZIP file: %v", err)
	}
	return nil
}

// WriteTo archives parts into w, one entry per part. The entry comment
// carries the part type and material hint.
func WriteTo(w io.Writer, parts []sign.ExportedPart) error {
	zw := zip.NewWriter(w)

	for _, part := range parts {
		fh := &zip.FileHeader{
			Name:     part.Filename,
			Comment:  fmt.Sprintf("type=%v material=%v", part.Type, part.Material),
			Modified: time.Now(),
		}
		f, err := zw.CreateHeader(fh)
		if err != nil {
			return fmt.Errorf("Unable to create ZIP entry %q: %v", part.Filename, err)
		}
		if _, err := f.Write(part.Content); err != nil {
			return fmt.Errorf("Unable to write ZIP entry %q: %v", part.Filename, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("Unable to close ZIP writer: %v", err)
	}
	return nil
}
