package script

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/venue"
)

// Open loads a venue from path: a JSON snapshot when the extension is .json,
// a layout script otherwise.
func Open(path string) (*venue.Venue, error) {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		v, err := Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s: %w", path, err)
		}
		return v, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()
	snap, err := venue.ReadSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return snap.Venue(), nil
}
