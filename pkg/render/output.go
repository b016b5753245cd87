package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// TimestampPath names an output image in dir after t.
func TimestampPath(dir string, t time.Time) string {
	return filepath.Join(dir, t.Format("20060102150405")+".png")
}

// WritePNG encodes img to path, creating its directory if needed.
func WritePNG(path string, img image.Image) error {
	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = png.Encode(f, img)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
