package golingo

import "strings"

// DefaultLanguage is the language code assumed when none is given.
const DefaultLanguage = "en"

// Language describes a supported language.
type Language struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
	RTL         bool   `json:"rtl"`
	Enabled     bool   `json:"enabled"`
	Flag        string `json:"flag,omitempty"`
}

// DefaultLanguages returns the built-in language set.
func DefaultLanguages() []Language {
	return []Language{
		{Code: "en", Name: "English", EnglishName: "English", Enabled: true, Flag: "🇺🇸"},
		{Code: "es", Name: "Español", EnglishName: "Spanish", Enabled: true, Flag: "🇪🇸"},
		{Code: "fr", Name: "Français", EnglishName: "French", Enabled: true, Flag: "🇫🇷"},
		{Code: "hi", Name: "हिन्दी", EnglishName: "Hindi", Enabled: true, Flag: "🇮🇳"},
		{Code: "zh", Name: "中文", EnglishName: "Chinese (Simplified)", Enabled: true, Flag: "🇨🇳"},
	}
}

// Registry is an immutable set of languages keyed by code.
type Registry struct {
	order  []Language
	byCode map[string]Language
}

// NewRegistry creates a registry from the given languages. Later entries
// replace earlier ones with the same code.
func NewRegistry(langs ...Language) *Registry {
	r := &Registry{byCode: make(map[string]Language, len(langs))}
	for _, lang := range langs {
		code := Normalize(lang.Code)
		lang.Code = code
		if _, ok := r.byCode[code]; !ok {
			r.order = append(r.order, lang)
		} else {
			for i := range r.order {
				if r.order[i].Code == code {
					r.order[i] = lang
					break
				}
			}
		}
		r.byCode[code] = lang
	}
	return r
}

// DefaultRegistry returns a registry holding the built-in language set.
func DefaultRegistry() *Registry {
	return NewRegistry(DefaultLanguages()...)
}

// Get returns the language for a code.
func (r *Registry) Get(code string) (Language, bool) {
	lang, ok := r.byCode[Normalize(code)]
	return lang, ok
}

// Enabled returns the enabled languages in registration order.
func (r *Registry) Enabled() []Language {
	var langs []Language
	for _, lang := range r.order {
		if lang.Enabled {
			langs = append(langs, lang)
		}
	}
	return langs
}

// Validate returns an InvalidLanguageError if the code is unknown or disabled.
func (r *Registry) Validate(code string) error {
	lang, ok := r.byCode[Normalize(code)]
	if !ok || !lang.Enabled {
		return &InvalidLanguageError{Code: code}
	}
	return nil
}

// RTLLanguages contains language codes that use right-to-left text direction.
var RTLLanguages = map[string]bool{
	"ar": true, // Arabic
	"he": true, // Hebrew
	"fa": true, // Persian/Farsi
	"ur": true, // Urdu
	"ps": true, // Pashto
	"sd": true, // Sindhi
	"ug": true, // Uyghur
}

// Direction returns "rtl" for right-to-left languages, "ltr" otherwise.
func Direction(code string) string {
	if RTLLanguages[BaseLang(code)] {
		return "rtl"
	}
	return "ltr"
}

// IsRTL returns true if the language uses right-to-left text direction.
func IsRTL(code string) bool {
	return Direction(code) == "rtl"
}

// Normalize converts a language code to a consistent format: lowercased
// with surrounding whitespace removed.
func Normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// BaseLang extracts the base language code (e.g., "es" from "es_MX" or "es-MX").
func BaseLang(code string) string {
	base := Normalize(code)
	if i := strings.IndexAny(base, "_-"); i > 0 {
		base = base[:i]
	}
	return base
}

// ToHTMLLang converts a language code like "es_MX" to HTML lang format "es-MX".
func ToHTMLLang(code string) string {
	return strings.ReplaceAll(code, "_", "-")
}
