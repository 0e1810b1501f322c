package i18n

import "testing"

func TestParseLanguageCode(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"es_MX.UTF-8", LangSpanish},
		{"es-AR", LangSpanish},
		{"EN_us", LangEnglish},
		{"en", LangEnglish},
		{"zh_CN", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := parseLanguageCode(tt.in); got != tt.want {
			t.Errorf("parseLanguageCode(%q) got=%q want=%q", tt.in, got, tt.want)
		}
	}
	if got := ParseLanguage("fr"); got != LangSpanish {
		t.Errorf("ParseLanguage fallback got=%q", got)
	}
}

func TestTranslate(t *testing.T) {
	prev := GetLanguage()
	defer SetLanguage(prev)

	SetLanguage(LangSpanish)
	if got := T(ErrUnrecognized, "volar alto"); got != "Instrucción no reconocida: volar alto" {
		t.Fatalf("es got=%q", got)
	}
	if got := T(ErrFieldNotFound, "edad", "Alumno"); got != "Campo no encontrado en la estructura Alumno: edad" {
		t.Fatalf("es indexed got=%q", got)
	}

	SetLanguage(LangEnglish)
	if got := T(ErrArrayFull, "notas"); got != "Cannot add more elements to array notas." {
		t.Fatalf("en got=%q", got)
	}
	if got := T("missing.key"); got != "missing.key" {
		t.Fatalf("missing got=%q", got)
	}
}

func TestCataloguesMatch(t *testing.T) {
	for key := range esMessages {
		if _, ok := enMessages[key]; !ok {
			t.Errorf("english catalogue lacks %s", key)
		}
	}
	for key := range enMessages {
		if _, ok := esMessages[key]; !ok {
			t.Errorf("spanish catalogue lacks %s", key)
		}
	}
}
