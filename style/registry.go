package style

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

//go:embed figure_layouts/*.yml
var builtinFS embed.FS

const builtinDir = "figure_layouts"

// Available returns the sorted names of all bundled styles.
func Available() []string {
	entries, err := builtinFS.ReadDir(builtinDir)
	if err != nil {
		return nil
	}
	names := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		name := e.Name()
		if !strings.HasSuffix(name, ".yml") {
			return "", false
		}
		return strings.TrimSuffix(name, ".yml"), true
	})
	sort.Strings(names)
	return names
}

// Resolve loads a style by builtin name, or failing that by treating
// nameOrPath as a path to a style file in the same schema.
//
// Returns an error wrapping ErrStyleNotFound when neither matches, and one
// wrapping ErrStyleFormat when the document is malformed.
func Resolve(nameOrPath string) (*Style, error) {
	if nameOrPath == "" {
		return nil, &NotFoundError{Name: nameOrPath}
	}

	if data, err := builtinFS.ReadFile(path.Join(builtinDir, nameOrPath+".yml")); err == nil {
		return Parse(nameOrPath, "builtin", data)
	}

	data, err := os.ReadFile(nameOrPath)
	if err != nil {
		return nil, &NotFoundError{Name: nameOrPath}
	}
	name := strings.TrimSuffix(filepath.Base(nameOrPath), filepath.Ext(nameOrPath))
	return Parse(name, nameOrPath, data)
}
