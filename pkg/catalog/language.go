package catalog

import "strings"

// languageCodeNames maps the catalog's numeric release codes to language
// names. Codes outside this table pass through verbatim.
var languageCodeNames = map[string]string{
	"6":  "Hindi",
	"7":  "Kannada",
	"11": "Malayalam",
	"20": "Tamil",
	"21": "Telugu",
	"24": "English",
}

// MapLanguageCodes expands a comma-separated code list ("6,20,24") into
// language names. Whitespace around codes is ignored; an empty input yields
// an empty slice.
func MapLanguageCodes(codes string) []string {
	if strings.TrimSpace(codes) == "" {
		return []string{}
	}

	parts := strings.Split(codes, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		code := strings.TrimSpace(part)
		if code == "" {
			continue
		}
		if name, ok := languageCodeNames[code]; ok {
			names = append(names, name)
		} else {
			names = append(names, code)
		}
	}
	return names
}
