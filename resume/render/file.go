package render

import (
	"fmt"
	"os"
	"path/filepath"

	"peso-backend/resume/model"
)

// RenderToFile renders the record and writes it under dir using the default
// filename, returning the full path.
func RenderToFile(data model.ResumeData, dir string) (string, error) {
	payload, err := Render(data)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, DefaultFileName(data))
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
