// Package i18n provides internationalization support for error messages.
package i18n

import (
	"bytes"
	"strings"
	"text/template"

	"golang.org/x/text/language"
)

// BaseLocale is the locale every lookup falls back to.
const BaseLocale = "en-US"

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

// supported lists every catalog, base locale first so the matcher defaults
// to it.
var supported = []*Catalog{enUSCatalog, ptBRCatalog}

var matcher = newMatcher(supported)

func newMatcher(cats []*Catalog) language.Matcher {
	tags := make([]language.Tag, len(cats))
	for i, c := range cats {
		tags[i] = language.MustParse(c.locale)
	}
	return language.NewMatcher(tags)
}

// GetCatalog returns the catalog that best matches the given locale.
// Exact locale names win; otherwise the request is matched against the known
// locales with x/text language matching, falling back to en-US.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = BaseLocale
	}
	for _, c := range supported {
		if strings.EqualFold(c.locale, requested) {
			return c
		}
	}

	tag, err := language.Parse(requested)
	if err != nil {
		return enUSCatalog
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return enUSCatalog
	}
	return supported[index]
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}
	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}
