package transpiler

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tangzhangming/instacode/internal/i18n"
	"github.com/tangzhangming/instacode/internal/normalize"
	"github.com/tangzhangming/instacode/internal/symbol"
)

var (
	structRe           = regexp.MustCompile(`^([a-z_][a-z0-9_]*) con (.+)$`)
	structCollectionRe = regexp.MustCompile(`^crear (?:una |un )?(?:lista|vector) de ([a-z_][a-z0-9_]*) con (\d+) elementos?$`)
	structInputRe      = regexp.MustCompile(`^ingresar (?:los )?datos de cada ([a-z_][a-z0-9_]*)$`)
	structIterateRe    = regexp.MustCompile(`^recorrer (?:la |el )?(?:lista|vector)(?: de [a-z_]+)? y (?:mostrar|imprimir) (.+)$`)
)

// fieldType 字段类型短语，默认 int
func fieldType(phrase string) string {
	switch {
	case strings.Contains(phrase, "texto"), strings.Contains(phrase, "cadena"):
		return symbol.TypeString
	case strings.Contains(phrase, "decimal"):
		return symbol.TypeDouble
	case strings.Contains(phrase, "booleano"):
		return symbol.TypeBool
	}
	return symbol.TypeInt
}

// createStruct crear estructura <nombre> con <campo> (<tipo>), ...
func (s *session) createStruct() bool {
	rest, ok := cutPrefix(s.ins.Text, "crear estructura ", "crear una estructura ", "definir estructura ")
	if !ok {
		return false
	}
	m := structRe.FindStringSubmatch(rest)
	if m == nil {
		s.report(StructuralError, i18n.ErrStructFormat, s.ins.Raw)
		return true
	}

	name := normalize.Title(normalize.Identifier(m[1]))
	st := &symbol.Struct{Name: name}
	for _, spec := range parseFields(m[2]) {
		f := symbol.Field{Name: normalize.Identifier(spec.name), Type: fieldType(spec.phrase)}
		s.useType(f.Type)
		st.Fields = append(st.Fields, f)
	}
	if len(st.Fields) == 0 {
		s.report(StructuralError, i18n.ErrStructNoFields, name)
		return true
	}
	s.table.AddStruct(st)
	return true
}

// createStructCollection crear lista de <estructura> con <n> elementos
func (s *session) createStructCollection() bool {
	m := structCollectionRe.FindStringSubmatch(s.ins.Text)
	if m == nil {
		return false
	}
	st, ok := s.table.StructForNoun(m[1])
	if !ok {
		return false
	}
	size, _ := strconv.Atoi(m[2])

	name := s.localName("lista")
	s.include("vector")
	s.emitf("std::vector<%s> %s(%d);", st.Name, name, size)
	s.table.AddCollection(&symbol.Collection{
		Name:        name,
		Kind:        symbol.Vector,
		ElementType: st.Name,
		Alias:       "lista",
		Length:      size,
	})
	return true
}

// inputStructData ingresar los datos de cada <estructura>
func (s *session) inputStructData() bool {
	m := structInputRe.FindStringSubmatch(s.ins.Text)
	if m == nil {
		return false
	}
	noun := m[1]
	st, ok := s.table.StructForNoun(noun)
	if !ok {
		s.report(MissingPrerequisite, i18n.ErrStructNotFound, noun)
		return true
	}
	coll, ok := s.table.CollectionOfStruct(st.Name)
	if !ok {
		s.report(MissingPrerequisite, i18n.ErrNoStructCollection, st.Name)
		return true
	}
	noun = strings.ToLower(st.Name)

	idx := s.indexName()
	label, hasLabel := st.FirstTextField()
	labelRead := false
	var body []string
	for k, f := range st.Fields {
		if k > 0 {
			body = append(body, "")
		}
		element := coll.Name + "[" + idx + "]"
		var prompt string
		switch {
		case k == 0 || f.Type == symbol.TypeString:
			prompt = normalize.Quote("Ingrese el "+f.Name+" del "+noun+" ") + " << (" + idx + " + 1) << \": \""
		case hasLabel && labelRead:
			prompt = normalize.Quote("Ingrese la "+f.Name+" de ") + " << " + element + "." + label.Name + " << \": \""
		default:
			prompt = normalize.Quote("Ingrese la "+f.Name+" del "+noun+" ") + " << (" + idx + " + 1) << \": \""
		}
		if hasLabel && f.Name == label.Name {
			labelRead = true
		}
		body = append(body,
			"std::cout << "+prompt+";",
			"std::cin >> "+element+"."+f.Name+";",
		)
	}
	s.loop("for (std::size_t "+idx+" = 0; "+idx+" < "+coll.Name+".size(); ++"+idx+") {", body...)
	return true
}

// iterateStructCollection recorrer la lista y mostrar <campo> y <campo>
func (s *session) iterateStructCollection() bool {
	m := structIterateRe.FindStringSubmatch(s.ins.Text)
	if m == nil || elementsPhrase(m[1]) {
		return false
	}
	coll, st := s.lastStructCollection()
	if coll == nil {
		return false
	}

	item := s.localName("est")
	var parts []string
	for _, requested := range splitList(m[1]) {
		requested = stripArticles(requested)
		f, ok := st.Field(requested)
		if !ok {
			s.report(SemanticWarning, i18n.ErrFieldNotFound, requested, st.Name)
			continue
		}
		parts = append(parts, normalize.Quote(normalize.Title(f.Name)+": ")+" << "+item+"."+f.Name)
	}
	if len(parts) == 0 {
		return true
	}

	s.emitf("std::cout << %s;", normalize.Quote("\n--- Registro de "+st.Name+" ---\n"))
	s.loop("for (const auto &"+item+" : "+coll.Name+") {",
		"std::cout << "+strings.Join(parts, ` << " | " << `)+" << std::endl;")
	return true
}

// lastStructCollection 最近创建的、元素为结构体的集合
func (s *session) lastStructCollection() (*symbol.Collection, *symbol.Struct) {
	colls := s.table.Collections()
	for i := len(colls) - 1; i >= 0; i-- {
		if st, ok := s.table.Struct(colls[i].ElementType); ok {
			return colls[i], st
		}
	}
	return nil, nil
}

// elementsPhrase "cada elemento" 之类指代全部元素的短语
func elementsPhrase(text string) bool {
	switch stripArticles(text) {
	case "cada elemento", "elementos", "cada valor", "valores", "todos los elementos":
		return true
	}
	return strings.HasPrefix(text, "todos los elementos") || strings.HasPrefix(text, "cada elemento")
}
