package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sort"
	"time"
)

type ZipBundler struct{}

func NewZipBundler() *ZipBundler {
	return &ZipBundler{}
}

func (z *ZipBundler) Ext() string {
	return ".zip"
}

func (z *ZipBundler) Bundle(files []File, modTime time.Time) ([]byte, error) {
	sorted := make([]File, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, f := range sorted {
		header := &zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: modTime.UTC(),
		}
		entry, err := w.CreateHeader(header)
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry %s: %w", f.Name, err)
		}
		if _, err := entry.Write(f.Content); err != nil {
			return nil, fmt.Errorf("failed to write archive entry %s: %w", f.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	return buf.Bytes(), nil
}
