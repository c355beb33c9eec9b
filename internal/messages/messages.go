// Package messages resolves user-facing message codes to localized text.
package messages

import "fmt"

// Catalog looks up messages for one locale, falling back to English for
// locales or codes it does not carry.
type Catalog struct {
	locale string
}

func NewCatalog(locale string) *Catalog {
	return &Catalog{locale: locale}
}

// Get renders the message for a code with printf-style substitution. An
// unknown code yields a marker string instead of failing.
func (c *Catalog) Get(code string, args ...any) string {
	table, ok := translations[c.locale]
	if !ok {
		table = translations["en"]
	}
	text, ok := table[code]
	if !ok {
		text, ok = translations["en"][code]
		if !ok {
			return fmt.Sprintf("[missing message %s]", code)
		}
	}
	return fmt.Sprintf(code+": "+text, args...)
}

var translations = map[string]map[string]string{
	"en": {
		"ERR010": "the test suite produced no tokens; a test suite needs at least a TESTSUITE header",
		"ERR011": "the test suite could not be read: %v",
		"ERR012": "cannot open test suite %s: %v",
		"ERR013": "cannot create output file %s: %v",
	},
	"de": {
		"ERR010": "die Testsuite enthält keine Token; eine Testsuite braucht mindestens eine TESTSUITE-Kopfzeile",
		"ERR011": "die Testsuite konnte nicht gelesen werden: %v",
		"ERR012": "Testsuite %s kann nicht geöffnet werden: %v",
		"ERR013": "Ausgabedatei %s kann nicht erstellt werden: %v",
	},
}
