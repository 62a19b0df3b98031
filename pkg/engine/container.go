// container.go - Zip packing of embedded files.
package engine

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

// packFiles archives files in insertion order. Entries are stored without
// compression so the container cost per file is a small fixed overhead,
// independent of payload content.
func packFiles(files []File) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: f.Name, Method: zip.Store})
		if err != nil {
			return nil, fmt.Errorf("create archive entry %q: %w", f.Name, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("write archive entry %q: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

// unpackFiles restores files in archive order.
func unpackFiles(data []byte) ([]File, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	files := make([]File, 0, len(zr.File))
	for _, zf := range zr.File {
		if zf.FileInfo().IsDir() {
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			return nil, fmt.Errorf("open archive entry %q: %w", zf.Name, err)
		}
		fdata, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read archive entry %q: %w", zf.Name, err)
		}
		files = append(files, File{Name: zf.Name, Data: fdata})
	}
	return files, nil
}
