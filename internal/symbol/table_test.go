package symbol

import "testing"

func TestVariables(t *testing.T) {
	table := New()
	table.AddVariable("Edad", TypeInt, true)

	v, ok := table.Variable("edad")
	if !ok || v.Type != TypeInt || !v.Declared {
		t.Fatalf("Variable(edad) got=%+v ok=%v", v, ok)
	}
	if table.VariableType("EDAD") != TypeInt {
		t.Fatalf("lookup should be case-normalized")
	}
	if _, ok := table.Variable("nombre"); ok {
		t.Fatalf("missing variable should report not found")
	}

	table.RemoveVariable("edad")
	if table.HasVariable("edad") {
		t.Fatalf("variable still present after RemoveVariable")
	}
}

func TestUniqueName(t *testing.T) {
	table := New()
	if got := table.UniqueName("lista"); got != "lista" {
		t.Fatalf("UniqueName got=%q", got)
	}
	table.AddCollection(&Collection{Name: "lista", ElementType: TypeInt, Alias: "lista"})
	if got := table.UniqueName("lista"); got != "lista2" {
		t.Fatalf("UniqueName got=%q want=lista2", got)
	}
	table.AddVariable("lista2", TypeInt, false)
	if got := table.UniqueName("lista"); got != "lista3" {
		t.Fatalf("UniqueName got=%q want=lista3", got)
	}
}

func TestCollectionForAlias(t *testing.T) {
	table := New()

	if _, ok := table.CollectionForAlias("lista"); ok {
		t.Fatalf("empty table should not resolve any alias")
	}

	table.AddCollection(&Collection{Name: "lista", ElementType: TypeInt, Alias: "lista"})
	table.AddCollection(&Collection{Name: "nombres_paises", ElementType: TypeString, Alias: "nombres"})
	table.AddCollection(&Collection{Name: "capitales", ElementType: TypeString, Alias: "capitales"})

	t.Run("exact alias", func(t *testing.T) {
		c, ok := table.CollectionForAlias("lista")
		if !ok || c.Name != "lista" {
			t.Fatalf("got=%v", c)
		}
	})

	t.Run("paises by name", func(t *testing.T) {
		c, ok := table.CollectionForAlias("países")
		if !ok || c.Name != "nombres_paises" {
			t.Fatalf("got=%v", c)
		}
	})

	t.Run("fallback to last", func(t *testing.T) {
		c, ok := table.CollectionForAlias("vector")
		if !ok || c.Name != "capitales" {
			t.Fatalf("got=%v", c)
		}
		if _, ok := table.CollectionByAlias("vector"); ok {
			t.Fatalf("CollectionByAlias must not fall back")
		}
	})

	t.Run("most recent alias wins", func(t *testing.T) {
		table.AddCollection(&Collection{Name: "lista2", ElementType: TypeDouble, Alias: "lista"})
		c, _ := table.CollectionForAlias("lista")
		if c.Name != "lista2" {
			t.Fatalf("got=%s", c.Name)
		}
	})
}

func TestLastCollections(t *testing.T) {
	table := New()
	table.AddCollection(&Collection{Name: "a", ElementType: TypeInt})
	table.AddCollection(&Collection{Name: "b", ElementType: TypeInt})
	table.AddCollection(&Collection{Name: "c", ElementType: TypeInt})

	got := table.LastCollections(2)
	if len(got) != 2 || got[0].Name != "b" || got[1].Name != "c" {
		t.Fatalf("LastCollections(2) got=%v", got)
	}
	if table.LastCollections(4) != nil {
		t.Fatalf("asking for more collections than exist should return nil")
	}
}

func TestStructs(t *testing.T) {
	table := New()
	table.AddStruct(&Struct{Name: "Estudiante", Fields: []Field{
		{Name: "edad", Type: TypeInt},
		{Name: "nombre", Type: TypeString},
	}})

	s, ok := table.StructForNoun("estudiantes")
	if !ok || s.Name != "Estudiante" {
		t.Fatalf("StructForNoun got=%v ok=%v", s, ok)
	}
	if _, ok := s.Field("NOMBRE"); !ok {
		t.Fatalf("field lookup should ignore case")
	}
	if f, ok := s.FirstTextField(); !ok || f.Name != "nombre" {
		t.Fatalf("FirstTextField got=%v", f)
	}

	table.AddCollection(&Collection{Name: "estudiantes", ElementType: "Estudiante", Length: 3})
	if c, ok := table.CollectionOfStruct("Estudiante"); !ok || c.Length != 3 {
		t.Fatalf("CollectionOfStruct got=%v", c)
	}
}

func TestFunctionsAndSnapshot(t *testing.T) {
	table := New()
	fn := &Function{Name: "sumar", ReturnType: TypeInt, Params: []Param{{"a", TypeInt}, {"b", TypeInt}}}
	table.AddFunction(fn)

	if got := fn.Signature(); got != "int sumar(int a, int b)" {
		t.Fatalf("Signature got=%q", got)
	}
	if _, ok := table.Function("Sumar"); !ok {
		t.Fatalf("function lookup failed")
	}

	table.AddVariable("z", TypeBool, true)
	table.AddVariable("a", TypeInt, false)
	table.AddCollection(&Collection{Name: "arreglo", Kind: Array, ElementType: TypeInt, Length: 5})

	snap := table.Snapshot()
	if len(snap.Variables) != 2 || snap.Variables[0].Name != "a" {
		t.Fatalf("snapshot variables got=%v", snap.Variables)
	}
	if len(snap.Collections) != 1 || snap.Collections[0].CppType() != TypeInt {
		t.Fatalf("snapshot collections got=%v", snap.Collections)
	}
	if len(snap.Functions) != 1 || len(snap.Functions[0].Params) != 2 {
		t.Fatalf("snapshot functions got=%v", snap.Functions)
	}
}

func TestZeroValue(t *testing.T) {
	tests := map[string]string{
		TypeInt:    "0",
		TypeDouble: "0.0",
		TypeBool:   "false",
		TypeString: `""`,
	}
	for typ, want := range tests {
		if got := ZeroValue(typ); got != want {
			t.Errorf("ZeroValue(%s) got=%s want=%s", typ, got, want)
		}
	}
}
