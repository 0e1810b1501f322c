// Package i18n provides localized diagnostics for the instacode translator.
package i18n

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Language represents a supported language
type Language string

const (
	LangSpanish Language = "es"
	LangEnglish Language = "en"
)

var (
	currentLang Language
	once        sync.Once
	mu          sync.RWMutex
)

// Init initializes the i18n system by detecting the system language.
// This is called automatically on first use, but can be called explicitly.
func Init() {
	once.Do(func() {
		mu.Lock()
		currentLang = detectLanguage()
		mu.Unlock()
	})
}

// SetLanguage sets the current language manually.
func SetLanguage(lang Language) {
	Init()
	mu.Lock()
	currentLang = lang
	mu.Unlock()
}

// GetLanguage returns the current language.
func GetLanguage() Language {
	Init()
	mu.RLock()
	defer mu.RUnlock()
	return currentLang
}

// ParseLanguage converts a configured language code to a Language.
// Unknown codes yield Spanish.
func ParseLanguage(code string) Language {
	if lang := parseLanguageCode(code); lang != "" {
		return lang
	}
	return LangSpanish
}

// T translates a message key to the current language.
// If the key is not found, returns the key itself.
// Supports format arguments like fmt.Sprintf.
func T(key string, args ...any) string {
	var messages map[string]string
	switch GetLanguage() {
	case LangEnglish:
		messages = enMessages
	default:
		messages = esMessages
	}

	template, ok := messages[key]
	if !ok {
		// Fallback to Spanish
		template, ok = esMessages[key]
		if !ok {
			return key
		}
	}

	if len(args) > 0 {
		return fmt.Sprintf(template, args...)
	}
	return template
}

// detectLanguage detects the language from the environment.
func detectLanguage() Language {
	for _, envVar := range []string{"INSTACODE_LANG", "LC_ALL", "LANGUAGE", "LANG"} {
		if lang := os.Getenv(envVar); lang != "" {
			if detected := parseLanguageCode(lang); detected != "" {
				return detected
			}
		}
	}

	// Diagnostics default to Spanish
	return LangSpanish
}

// parseLanguageCode parses a language code string and returns the Language.
func parseLanguageCode(code string) Language {
	code = strings.ToLower(strings.TrimSpace(code))

	// Handle formats like "es_MX.UTF-8", "es-AR", "es", "en_US", etc.
	if strings.HasPrefix(code, "es") {
		return LangSpanish
	}
	if strings.HasPrefix(code, "en") {
		return LangEnglish
	}

	return ""
}
