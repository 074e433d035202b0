package xmlgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/models"
)

// Save writes a generated document to path as UTF-8.
func Save(path, doc string) error {
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// SaveAll generates and writes the combined document plus the standalone
// engine and transmission documents as siblings of base (extension
// stripped): base_fs25.xml, base_engine.xml and base_transmission.xml.
// It returns the written paths.
func SaveAll(base string, e models.EngineSpec, t models.TransmissionSpec) ([]string, error) {
	base = strings.TrimSuffix(base, filepath.Ext(base))

	combined, err := Combined(e, t)
	if err != nil {
		return nil, err
	}
	engine, err := Engine(e)
	if err != nil {
		return nil, err
	}
	transmission, err := Transmission(t)
	if err != nil {
		return nil, err
	}

	paths := []string{base + "_fs25.xml", base + "_engine.xml", base + "_transmission.xml"}
	for i, doc := range []string{combined, engine, transmission} {
		if err := Save(paths[i], doc); err != nil {
			return nil, err
		}
	}
	return paths, nil
}
