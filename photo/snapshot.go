package photo

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
)

// Snapshot encodes img as lossless webp
func Snapshot(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("photo: webp encode: %w", err)
	}
	return nil
}

// SaveSnapshot writes img to path as webp, creating parent directories
func SaveSnapshot(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("photo: snapshot dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("photo: snapshot create: %w", err)
	}
	if err := Snapshot(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
