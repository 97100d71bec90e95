package grammar

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/mouse-blink/knave/internal/model"
)

// ErrUnsupportedGrammar is returned when no grammar is registered for a
// language id or file extension.
var ErrUnsupportedGrammar = errors.New("unsupported grammar")

var (
	byID        = map[m.LanguageID]*Grammar{}
	byExtension = map[string]*Grammar{}
)

func register(g *Grammar) {
	byID[g.ID] = g
	for _, ext := range g.Extensions {
		byExtension[ext] = g
	}
}

func init() {
	register(python())
	register(c())
}

// Lookup returns the grammar registered under id.
func Lookup(id m.LanguageID) (*Grammar, error) {
	g, ok := byID[m.LanguageID(strings.ToLower(string(id)))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGrammar, id)
	}

	return g, nil
}

// ForPath returns the grammar registered for the extension of path.
func ForPath(path m.Path) (*Grammar, error) {
	ext := strings.ToLower(filepath.Ext(string(path)))

	g, ok := byExtension[ext]
	if !ok {
		return nil, fmt.Errorf("%w: extension %q", ErrUnsupportedGrammar, ext)
	}

	return g, nil
}

// IDs lists the registered language ids in sorted order.
func IDs() []m.LanguageID {
	ids := make([]m.LanguageID, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Extensions lists every registered file extension in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(byExtension))
	for ext := range byExtension {
		exts = append(exts, ext)
	}

	sort.Strings(exts)

	return exts
}
