package i18n

// UI string table carried over from the public site. Two locales only; keys
// missing from a locale fall back to the key itself.

const (
	LangEN = "en"
	LangRO = "ro"

	// CookieName is the browser cookie that stores the language preference.
	CookieName = "lang"
	// CookieMaxAge keeps the preference for one year.
	CookieMaxAge = 60 * 60 * 24 * 365
)

var messages = map[string]map[string]string{
	LangEN: {
		"Upload":                      "Upload",
		"Settings":                    "Settings",
		"Privacy":                     "Privacy",
		"Terms":                       "Terms",
		"Date":                        "Date",
		"Location":                    "Location",
		"Upload to this category":     "Upload to this category",
		"Password":                    "Password",
		"File (CSV or XLSX)":          "File (CSV or XLSX)",
		"Headers required":            "Headers required",
		"Delete file (all rows)":      "Delete file (all rows)",
		"Delete CATEGORY (permanent)": "Delete CATEGORY (permanent)",
	},
	LangRO: {
		"Upload":                      "Incarca",
		"Settings":                    "Setari",
		"Privacy":                     "Confidentialitate",
		"Terms":                       "Termeni",
		"Date":                        "Data",
		"Location":                    "Locatie",
		"Upload to this category":     "Incarca in aceasta categorie",
		"Password":                    "Parola",
		"File (CSV or XLSX)":          "Fisier (CSV sau XLSX)",
		"Headers required":            "Header-e necesare",
		"Delete file (all rows)":      "Sterge fisierul (toate randurile)",
		"Delete CATEGORY (permanent)": "Sterge CATEGORIA (definitiv)",
	},
}

// Normalize coerces any code that is not "ro" to "en".
func Normalize(code string) string {
	if code == LangRO {
		return LangRO
	}
	return LangEN
}

// T looks up key in the given locale, falling back to English and then to the
// key itself.
func T(lang, key string) string {
	if msg, ok := messages[Normalize(lang)][key]; ok {
		return msg
	}
	if msg, ok := messages[LangEN][key]; ok {
		return msg
	}
	return key
}

// Strings returns the whole table for a locale, for page payloads.
func Strings(lang string) map[string]string {
	src := messages[Normalize(lang)]
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
