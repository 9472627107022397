// Package i18n resolves player-facing message keys against the embedded catalogue.
package i18n

import (
	_ "embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

//go:embed en.po
var catalogue []byte

var po = load()

// lookup is a function variable so vet does not read T as a printf wrapper
var lookup = func(key string) string { return po.Get(key) }

func load() *gotext.Po {
	p := gotext.NewPo()
	p.Parse(catalogue)
	return p
}

// T translates key and formats it with args. Unknown keys come back as the key itself.
func T(key string, args ...any) string {
	if len(args) == 0 {
		return lookup(key)
	}
	return fmt.Sprintf(lookup(key), args...)
}
