package channel

import "golang.org/x/text/language"

const DefaultSeparator = ", "

var separators = map[string]string{
	"ja": "、",
	"zh": "、",
	"ar": "، ",
	"fa": "، ",
}

// ListSeparator returns the separator used to join member names for a locale.
// Unknown or unparsable locales get DefaultSeparator.
func ListSeparator(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return DefaultSeparator
	}
	base, _ := tag.Base()
	if sep, ok := separators[base.String()]; ok {
		return sep
	}
	return DefaultSeparator
}
