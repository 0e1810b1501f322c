package normalize

import (
	"regexp"
	"testing"
)

func TestRemoveDiacritics(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"canción", "cancion"},
		{"AÑADIR", "ANADIR"},
		{"pingüino", "pinguino"},
		{"sin acentos", "sin acentos"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := RemoveDiacritics(tt.in); got != tt.want {
			t.Errorf("RemoveDiacritics(%q) got=%q want=%q", tt.in, got, tt.want)
		}
	}
}

func TestLine(t *testing.T) {
	got := Line("  Crear   Variable\tNúmero\nEntero  ")
	if got != "crear variable numero entero" {
		t.Fatalf("Line got=%q", got)
	}

	inputs := []string{"  A  b ", "Él   está\n\nAQUÍ", "", "ya normal"}
	for _, in := range inputs {
		once := Line(in)
		if twice := Line(once); twice != once {
			t.Errorf("Line not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestInstructionKeepsQuotedText(t *testing.T) {
	got := Instruction(`MOSTRAR  "La Edad  Es"   y  Edad`)
	want := `mostrar "La Edad  Es" y edad`
	if got != want {
		t.Fatalf("Instruction got=%q want=%q", got, want)
	}

	got = Instruction(`Mostrar "abierto SIN cierre`)
	if got != `mostrar "abierto sin cierre` {
		t.Fatalf("Instruction with unclosed quote got=%q", got)
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Edad", "edad"},
		{"Precio Unitario", "precio_unitario"},
		{"  año--nuevo!! ", "ano_nuevo"},
		{"2024 ventas", "v2024_ventas"},
		{"", "valor"},
		{"***", "valor"},
		{"int", "int_"},
		{"while", "while_"},
	}
	for _, tt := range tests {
		if got := Identifier(tt.in); got != tt.want {
			t.Errorf("Identifier(%q) got=%q want=%q", tt.in, got, tt.want)
		}
	}
}

func TestIdentifierShapeAndIdempotence(t *testing.T) {
	shape := regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
	inputs := []string{"", "_", "9", "Ñandú", "a b c", "return", "x__y", "__hola__", "¿qué?", "int_"}
	for _, in := range inputs {
		once := Identifier(in)
		if !shape.MatchString(once) {
			t.Errorf("Identifier(%q)=%q does not look like an identifier", in, once)
		}
		if twice := Identifier(once); twice != once {
			t.Errorf("Identifier not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestNumberString(t *testing.T) {
	tests := []struct {
		in       string
		floating bool
		want     string
	}{
		{"", false, "0"},
		{"", true, "0.0"},
		{"12", false, "12"},
		{"12", true, "12.0"},
		{"3,5", false, "3.5"},
		{"3,5", true, "3.5"},
		{" 7 ", true, "7.0"},
	}
	for _, tt := range tests {
		got := NumberString(tt.in, tt.floating)
		if got != tt.want {
			t.Errorf("NumberString(%q, %v) got=%q want=%q", tt.in, tt.floating, got, tt.want)
		}
		if again := NumberString(got, tt.floating); again != got {
			t.Errorf("NumberString not stable for %q: %q vs %q", tt.in, got, again)
		}
	}
}

func TestQuotedText(t *testing.T) {
	if got := QuotedText(`mostrar "Hola Mundo" y x`); got != "Hola Mundo" {
		t.Fatalf("QuotedText got=%q", got)
	}
	if got := QuotedText(`mostrar sin comillas`); got != "" {
		t.Fatalf("QuotedText without quotes got=%q", got)
	}
	if got := QuotedText(`mostrar "sin cierre`); got != "" {
		t.Fatalf("QuotedText with one quote got=%q", got)
	}
	if got := AfterQuote(`mostrar "Total:" y total`); got != "y total" {
		t.Fatalf("AfterQuote got=%q", got)
	}
}

func TestIndexOutsideQuotes(t *testing.T) {
	line := `si nombre igual a "y o no" y edad mayor que 3`
	if got := IndexOutsideQuotes(line, " y "); got != 26 {
		t.Fatalf("IndexOutsideQuotes got=%d", got)
	}
	if got := LastIndexOutsideQuotes(`mostrar "a y b"`, " y "); got != -1 {
		t.Fatalf("LastIndexOutsideQuotes got=%d", got)
	}
}

func TestEscape(t *testing.T) {
	if got := Quote(`dijo "hola" \ fin`); got != `"dijo \"hola\" \\ fin"` {
		t.Fatalf("Quote got=%s", got)
	}
	if got := Escape("a\r\nb"); got != `a\nb` {
		t.Fatalf("Escape got=%s", got)
	}
}

func TestNumbersAndLines(t *testing.T) {
	nums := Numbers("sumar 3, 4,5 y 10 los numeros")
	if len(nums) != 3 || nums[0] != "3" || nums[1] != "4,5" || nums[2] != "10" {
		t.Fatalf("Numbers got=%v", nums)
	}
	if !IsNumber("-2,75") || IsNumber("abc") || !IsDecimal("2.5") || IsDecimal("25") {
		t.Fatalf("IsNumber/IsDecimal mismatch")
	}

	lines := SplitLines("uno\r\n\r\ndos\n\ntres")
	if len(lines) != 3 || lines[2] != "tres" {
		t.Fatalf("SplitLines got=%v", lines)
	}
}

func TestTitle(t *testing.T) {
	if got := Title("nombre"); got != "Nombre" {
		t.Fatalf("Title got=%q", got)
	}
}
