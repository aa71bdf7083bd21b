package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// portraitExts is the accepted portrait file extension allowlist. The
// file content is never inspected; display is someone else's problem.
var portraitExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
}

// PortraitDir manages the directory where character portraits are copied
// so the roster does not break when the original file moves.
type PortraitDir struct {
	dir string
}

func NewPortraitDir(dir string) (*PortraitDir, error) {
	if err := EnsureDir(dir); err != nil {
		return nil, err
	}
	return &PortraitDir{dir: dir}, nil
}

// Import copies srcPath into the portrait directory under the character
// id, replacing any previous portrait with the same extension, and
// returns the new path.
func (p *PortraitDir) Import(srcPath, characterID string) (string, error) {
	ext := strings.ToLower(filepath.Ext(srcPath))
	if !portraitExts[ext] {
		return "", fmt.Errorf("unsupported portrait format %q", ext)
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open portrait %s: %w", srcPath, err)
	}
	defer src.Close()

	dstPath := filepath.Join(p.dir, characterID+ext)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create portrait %s: %w", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("copy portrait: %w", err)
	}
	return dstPath, nil
}

// Remove deletes a portrait file. A missing file is not an error.
func (p *PortraitDir) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove portrait %s: %w", path, err)
	}
	return nil
}
