package store

import (
	"os"
	"path/filepath"
)

// writeBytes writes data next to path and renames it into place.
func writeBytes(data []byte, path string) error {
	out, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(out.Name())

	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}

	if err := out.Close(); err != nil {
		return err
	}

	return os.Rename(out.Name(), path)
}
