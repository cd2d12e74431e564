// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package i18n routes user-facing compiler messages through a per-language
// catalog. Messages are keyed by their English text; a missing catalog entry
// falls back to the key itself.
package i18n

import (
	"sync"

	"slx/internal/locale"
)

var (
	catalogs   = map[locale.Language]map[string]string{}
	catalogsMu sync.RWMutex
)

// Register adds (or extends) the catalog for a language.
func Register(lang locale.Language, messages map[string]string) {

	catalogsMu.Lock()
	defer catalogsMu.Unlock()

	catalog, ok := catalogs[lang]
	if !ok {
		catalog = make(map[string]string, len(messages))
		catalogs[lang] = catalog
	}
	for key, msg := range messages {
		catalog[key] = msg
	}
}

// Msg returns the message text for the detected language.
func Msg(key string) string {

	lang := locale.DetectLanguage()
	if lang == locale.LanguageEN {
		return key
	}

	catalogsMu.RLock()
	defer catalogsMu.RUnlock()

	if catalog, ok := catalogs[lang]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	return key
}
