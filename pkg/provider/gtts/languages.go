package gtts

import (
	"strings"
)

var languages = map[string]string{
	"af":    "Afrikaans",
	"ar":    "Arabic",
	"bg":    "Bulgarian",
	"bn":    "Bengali",
	"bs":    "Bosnian",
	"ca":    "Catalan",
	"cs":    "Czech",
	"cy":    "Welsh",
	"da":    "Danish",
	"de":    "German",
	"el":    "Greek",
	"en":    "English",
	"eo":    "Esperanto",
	"es":    "Spanish",
	"et":    "Estonian",
	"fi":    "Finnish",
	"fr":    "French",
	"gu":    "Gujarati",
	"hi":    "Hindi",
	"hr":    "Croatian",
	"hu":    "Hungarian",
	"hy":    "Armenian",
	"id":    "Indonesian",
	"is":    "Icelandic",
	"it":    "Italian",
	"iw":    "Hebrew",
	"ja":    "Japanese",
	"jw":    "Javanese",
	"km":    "Khmer",
	"kn":    "Kannada",
	"ko":    "Korean",
	"la":    "Latin",
	"lv":    "Latvian",
	"mk":    "Macedonian",
	"ml":    "Malayalam",
	"mr":    "Marathi",
	"my":    "Myanmar (Burmese)",
	"ne":    "Nepali",
	"nl":    "Dutch",
	"no":    "Norwegian",
	"pl":    "Polish",
	"pt":    "Portuguese",
	"ro":    "Romanian",
	"ru":    "Russian",
	"si":    "Sinhala",
	"sk":    "Slovak",
	"sq":    "Albanian",
	"sr":    "Serbian",
	"su":    "Sundanese",
	"sv":    "Swedish",
	"sw":    "Swahili",
	"ta":    "Tamil",
	"te":    "Telugu",
	"th":    "Thai",
	"tl":    "Filipino",
	"tr":    "Turkish",
	"uk":    "Ukrainian",
	"ur":    "Urdu",
	"vi":    "Vietnamese",
	"zh-CN": "Chinese (Simplified)",
	"zh-TW": "Chinese (Traditional)",
}

// normalizeLanguage returns the canonical code for lang, matching case-insensitively.
func normalizeLanguage(lang string) (string, bool) {
	lang = strings.TrimSpace(lang)

	if _, ok := languages[lang]; ok {
		return lang, true
	}

	for code := range languages {
		if strings.EqualFold(code, lang) {
			return code, true
		}
	}

	return "", false
}
