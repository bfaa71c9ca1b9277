package export

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// ZipEntry is one file inside a download bundle.
type ZipEntry struct {
	Name string
	Data []byte
}

// BundleZip packs the entries into an in-memory ZIP archive.
func BundleZip(entries []ZipEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, e := range entries {
		fw, err := w.Create(e.Name)
		if err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("failed to add %s to bundle: %w", e.Name, err)
		}
		if _, err := fw.Write(e.Data); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("failed to write %s: %w", e.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize bundle: %w", err)
	}
	return buf.Bytes(), nil
}
