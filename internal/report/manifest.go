package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	podiumerrors "github.com/felixgeelhaar/podium/internal/errors"
)

// WriteManifest saves the deck content as a YAML manifest for the
// presentation assembler.
func WriteManifest(deck *Deck, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return podiumerrors.Wrap(podiumerrors.ErrCodeDirectoryFailed, fmt.Sprintf("create directory: %s", dir), err)
	}

	data, err := yaml.Marshal(deck)
	if err != nil {
		return podiumerrors.Wrap(podiumerrors.ErrCodeFileMarshal, "marshal deck manifest", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return podiumerrors.NewReportManifestError(path, err)
	}

	return nil
}

// ReadManifest loads a previously written deck manifest.
func ReadManifest(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, podiumerrors.Wrap(podiumerrors.ErrCodeFileReadFailed, fmt.Sprintf("read deck manifest: %s", path), err)
	}

	var deck Deck
	if err := yaml.Unmarshal(data, &deck); err != nil {
		return nil, podiumerrors.NewFileUnmarshalError(path, "YAML", err)
	}
	return &deck, nil
}
