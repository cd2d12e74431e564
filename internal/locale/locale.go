// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package locale

import (
	"os"
	"strings"
	"sync"
)

type Language string

const (
	LanguageEN Language = "en"
	LanguageRU Language = "ru"
)

var (
	detectedLanguage   Language
	detectLanguageOnce sync.Once
)

// DetectLanguage reads SLX_LANG; the result is cached after the first call.
func DetectLanguage() Language {

	detectLanguageOnce.Do(func() {
		slxLang := os.Getenv("SLX_LANG")
		if slxLang == "" {
			detectedLanguage = LanguageEN
			return
		}

		slxLang = strings.ToLower(slxLang)
		if strings.HasPrefix(slxLang, "ru") {
			detectedLanguage = LanguageRU
			return
		}
		if strings.HasPrefix(slxLang, "en") {
			detectedLanguage = LanguageEN
			return
		}

		detectedLanguage = LanguageEN
	})
	return detectedLanguage
}
