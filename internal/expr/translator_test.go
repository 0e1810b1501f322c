package expr

import (
	"testing"

	"github.com/tangzhangming/instacode/internal/symbol"
)

func newTranslator() (*Translator, *symbol.Table) {
	table := symbol.New()
	table.AddVariable("edad", symbol.TypeInt, true)
	table.AddVariable("total", symbol.TypeDouble, true)
	table.AddVariable("activo", symbol.TypeBool, true)
	table.AddVariable("nombre", symbol.TypeString, true)
	table.AddVariable("precio_unitario", symbol.TypeDouble, true)
	table.AddVariable("i", symbol.TypeInt, false)
	table.AddCollection(&symbol.Collection{Name: "lista", ElementType: symbol.TypeInt, Alias: "lista"})
	table.AddCollection(&symbol.Collection{Name: "notas", ElementType: symbol.TypeDouble, Alias: "calificaciones"})
	return New(table), table
}

func TestExpression(t *testing.T) {
	tr, _ := newTranslator()

	tests := []struct {
		in, want string
	}{
		{"edad mas 1", "edad + 1"},
		{"total dividido entre 3", "total / 3.0"},
		{"total entre 2,5", "total / 2.5"},
		{"edad multiplicado por 2 menos 1", "edad * 2 - 1"},
		{"el precio unitario por 3", "precio_unitario * 3"},
		{"(edad mas 2) por 3", "(edad + 2) * 3"},
		{"verdadero", "true"},
		{"Falso", "false"},
		{"edad + 4", "edad + 4"},
		{"calificaciones[i] mas 1", "notas[i] + 1"},
		{"lista[2]", "lista[2]"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := tr.Expression(tt.in); got != tt.want {
			t.Errorf("Expression(%q) got=%q want=%q", tt.in, got, tt.want)
		}
	}
}

func TestOperandDeclaresNumero(t *testing.T) {
	tr, table := newTranslator()
	var declared []string
	tr.Declare = func(name, typ string) {
		declared = append(declared, name+":"+typ)
		table.AddVariable(name, typ, false)
	}

	if got := tr.Operand("el numero"); got != "numero" {
		t.Fatalf("Operand got=%q", got)
	}
	if got := tr.Operand("el numero"); got != "numero" {
		t.Fatalf("second Operand got=%q", got)
	}
	if len(declared) != 1 || declared[0] != "numero:int" {
		t.Fatalf("declared got=%v", declared)
	}
}

func TestCondition(t *testing.T) {
	tr, _ := newTranslator()

	tests := []struct {
		in, want string
	}{
		{"edad mayor que 18", "edad > 18"},
		{"edad es mayor o igual que 18", "edad >= 18"},
		{"edad menor o igual a 65", "edad <= 65"},
		{"edad diferente de 0", "edad != 0"},
		{"edad distinto de 3", "edad != 3"},
		{"edad igual a 1", "edad == 1"},
		{"activo igual a falso", "!activo"},
		{"activo igual a verdadero", "activo"},
		{"activo", "activo"},
		{"no activo", "!activo"},
		{"edad mayor que 18 y edad menor que 65", "edad > 18 && edad < 65"},
		{"edad menor que 5 o edad mayor que 90", "edad < 5 || edad > 90"},
		{`nombre igual a "Ana y Luis"`, `nombre == "Ana y Luis"`},
		{"total sea menor que edad mas 1", "total < edad + 1"},
	}
	for _, tt := range tests {
		got, ok := tr.Condition(tt.in)
		if !ok || got != tt.want {
			t.Errorf("Condition(%q) got=%q ok=%v want=%q", tt.in, got, ok, tt.want)
		}
	}

	if _, ok := tr.Condition("mayor que 3"); ok {
		t.Errorf("condition without left operand should fail")
	}
	if _, ok := tr.Condition(""); ok {
		t.Errorf("empty condition should fail")
	}
}

func TestInferTypeAndLiteral(t *testing.T) {
	tr, _ := newTranslator()

	types := []struct {
		value, quoted, want string
	}{
		{`"hola"`, "hola", symbol.TypeString},
		{"verdadero", "", symbol.TypeBool},
		{"3,5", "", symbol.TypeDouble},
		{"7", "", symbol.TypeInt},
		{"total", "", symbol.TypeDouble},
		{"edad mas 1", "", symbol.TypeInt},
	}
	for _, tt := range types {
		if got := tr.InferType(tt.value, tt.quoted); got != tt.want {
			t.Errorf("InferType(%q) got=%s want=%s", tt.value, got, tt.want)
		}
	}

	literals := []struct {
		value, quoted, typ, want string
	}{
		{"hola mundo", "Hola Mundo", symbol.TypeString, `"Hola Mundo"`},
		{"nombre", "", symbol.TypeString, "nombre"},
		{"verdadero", "", symbol.TypeBool, "true"},
		{"quizas", "", symbol.TypeBool, "false"},
		{"2", "", symbol.TypeDouble, "2.0"},
		{"", "", symbol.TypeInt, "0"},
		{"edad por 2", "", symbol.TypeInt, "edad * 2"},
	}
	for _, tt := range literals {
		if got := tr.Literal(tt.value, tt.quoted, tt.typ); got != tt.want {
			t.Errorf("Literal(%q, %s) got=%s want=%s", tt.value, tt.typ, got, tt.want)
		}
	}
}

func TestIsFloating(t *testing.T) {
	if !IsFloating("a / b") || !IsFloating("x * 2.5") {
		t.Fatalf("expected floating")
	}
	if IsFloating(`a + "3.5"`) || IsFloating("a * 2") {
		t.Fatalf("expected integral")
	}
}
