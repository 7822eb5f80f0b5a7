package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/browser"
)

// WriteTempAndOpen writes the rendered document to a unique path under the
// OS temp directory and asks the platform's default viewer to open it.
// Writing is the primary action and its failure is returned; the open
// itself is a convenience and failures there are ignored.
func WriteTempAndOpen(doc []byte) (string, error) {
	path := filepath.Join(os.TempDir(), "ember-"+uuid.NewString()+".html")
	if err := os.WriteFile(path, doc, 0644); err != nil {
		return "", fmt.Errorf("writing report to %s: %w", path, err)
	}
	_ = browser.OpenFile(path)
	return path, nil
}
