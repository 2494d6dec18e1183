package figure

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON dumps a figure's regions and annotations as JSON, handy for
// inspecting label placement without rendering.
func WriteDebugJSON(f *Figure, path string) error {
	if f == nil {
		return nil
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
