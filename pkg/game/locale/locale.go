// Package locale holds every user-visible string of the game, looked up by
// key from po catalogs embedded in the binary.
package locale

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when the requested catalog does not exist
const DefaultLanguage = "en"

//go:embed po/*.po
var catalogs embed.FS

var current *gotext.Po

// noArgs makes gotext return templates with their verbs intact
var noArgs []any

// Init loads the catalog for lang, falling back to English
func Init(lang string) error {
	data, err := catalogs.ReadFile(fmt.Sprintf("po/%s.po", lang))
	if err != nil {
		data, err = catalogs.ReadFile(fmt.Sprintf("po/%s.po", DefaultLanguage))
		if err != nil {
			return fmt.Errorf("loading %s catalog: %w", DefaultLanguage, err)
		}
	}

	po := gotext.NewPo()
	po.Parse(data)
	current = po
	return nil
}

// Get returns the translation for key. Unknown keys come back as the key
// itself. Translations holding verbs are formatted by the caller.
func Get(key string) string {
	if current == nil {
		if err := Init(DefaultLanguage); err != nil {
			return key
		}
	}
	return current.Get(key, noArgs...)
}
