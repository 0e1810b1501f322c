package transpiler

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tangzhangming/instacode/internal/block"
	"github.com/tangzhangming/instacode/internal/i18n"
	"github.com/tangzhangming/instacode/internal/normalize"
	"github.com/tangzhangming/instacode/internal/symbol"
)

// ordinals 序数词到下标；ultimo 为 -1
var ordinals = map[string]int{
	"primer": 0, "primero": 0, "segundo": 1, "tercer": 2, "tercero": 2,
	"cuarto": 3, "quinto": 4, "sexto": 5, "septimo": 6, "octavo": 7,
	"noveno": 8, "decimo": 9, "ultimo": -1,
}

const ordinalPattern = `(primer|primero|segundo|tercer|tercero|cuarto|quinto|sexto|septimo|octavo|noveno|decimo|ultimo)`

var (
	collectionRe    = regexp.MustCompile(`^crear (?:una |un |el |la )?(lista|vector|arreglo)(?: de)?(?: (.*))?$`)
	storeRe         = regexp.MustCompile(`(?:^| )para (?:guardar|almacenar) (?:los |las |el |la )?(.+)$`)
	sizeWithRe      = regexp.MustCompile(`(?:^| )con (\d+) (?:elementos?|posiciones|valores)`)
	sizeLeadRe      = regexp.MustCompile(`^(\d+) ?`)
	sizeTrailRe     = regexp.MustCompile(`(?:^| )de (?:tamano )?(\d+)$`)
	assignElementRe = regexp.MustCompile(`^asignar (?:el )?valor (.+) (?:al|en el|a la) ` + ordinalPattern + ` (?:elemento|posicion) (?:de|del) (?:la |el )?([a-z_][a-z0-9_]*)$`)
	addRe           = regexp.MustCompile(`^(?:agregar|agrega|anadir|anade|insertar) (.+) (?:a|al|a la|a el|a los|a las|en|en la|en el) ([a-z_][a-z0-9_ ]*)$`)
	removeRe        = regexp.MustCompile(`^(?:eliminar|quitar|borrar) el ` + ordinalPattern + ` elemento (?:de|del) (?:la |el )?([a-z_][a-z0-9_]*)$`)
	sortRe          = regexp.MustCompile(`^ordenar (?:la |el |los |las )?([a-z_][a-z0-9_]*)(?: de (?:forma|manera|modo) (ascendente|descendente)| (ascendentemente|descendentemente))?$`)
	iterateRe       = regexp.MustCompile(`^recorrer (?:la |el |los |las )?([a-z_][a-z0-9_]*)(?: y (?:mostrar|imprimir) (.+))?$`)
	iterateSumRe    = regexp.MustCompile(`^recorrer (?:la |el |los |las )?([a-z_][a-z0-9_]*) y sumar cada (?:elemento|valor|numero) (?:al|en|a) (?:la |el )?([a-z_][a-z0-9_]*)$`)
)

// elementType 元素类型短语，无法识别时为 std::string
func elementType(phrase string) string {
	switch {
	case strings.Contains(phrase, "texto"), strings.Contains(phrase, "cadena"):
		return symbol.TypeString
	case strings.Contains(phrase, "decimal"):
		return symbol.TypeDouble
	case strings.Contains(phrase, "entero"), strings.Contains(phrase, "numero"):
		return symbol.TypeInt
	case strings.Contains(phrase, "booleano"):
		return symbol.TypeBool
	}
	return symbol.TypeString
}

// aliasOf 把 "la lista de capitales" 之类的短语归一为集合别名
func aliasOf(phrase string) string {
	words := strings.Fields(stripArticles(phrase))
	if len(words) > 2 && words[1] == "de" {
		switch words[0] {
		case "lista", "vector", "arreglo":
			words = words[2:]
		}
	}
	if len(words) == 0 {
		return ""
	}
	return normalize.Identifier(strings.Join(words, " "))
}

// resolveCollection 按别名查找集合，找不到时报告缺少集合
func (s *session) resolveCollection(alias string) (*symbol.Collection, bool) {
	c, ok := s.table.CollectionForAlias(alias)
	if !ok {
		s.report(MissingPrerequisite, i18n.ErrNoCollection)
	}
	return c, ok
}

// createCollection crear una lista|vector|arreglo ...
func (s *session) createCollection() bool {
	m := collectionRe.FindStringSubmatch(s.ins.Text)
	if m == nil {
		return false
	}
	kind, rest := m[1], strings.TrimSpace(m[2])

	alias, base := kind, kind
	if sm := storeRe.FindStringSubmatch(rest); sm != nil {
		noun := strings.TrimSpace(sm[1])
		alias = normalize.Identifier(noun)
		base = alias
		rest = strings.TrimSpace(rest[:len(rest)-len(sm[0])])
	}

	size := symbol.UnknownLength
	for _, re := range []*regexp.Regexp{sizeWithRe, sizeLeadRe, sizeTrailRe} {
		if sm := re.FindStringSubmatchIndex(rest); sm != nil {
			size, _ = strconv.Atoi(rest[sm[2]:sm[3]])
			rest = strings.TrimSpace(rest[:sm[0]] + " " + rest[sm[1]:])
			break
		}
	}

	typ := elementType(rest)
	if st, ok := s.table.StructForNoun(strings.TrimSpace(rest)); ok && rest != "" {
		typ = st.Name
	}

	c := &symbol.Collection{
		Name:        s.localName(base),
		Kind:        symbol.Vector,
		ElementType: typ,
		Alias:       alias,
		Length:      symbol.UnknownLength,
	}
	s.useType(typ)

	if kind == "arreglo" {
		if size > 0 {
			c.Kind = symbol.Array
			c.Length = size
			s.emitf("%s %s[%d] = {};", c.CppType(), c.Name, size)
			s.table.AddCollection(c)
			return true
		}
		s.report(SemanticWarning, i18n.ErrArrayNeedsSize)
	}

	s.include("vector")
	if size > 0 {
		c.Length = size
		s.emitf("%s %s(%d);", c.CppType(), c.Name, size)
	} else {
		s.emitf("%s %s;", c.CppType(), c.Name)
	}
	s.table.AddCollection(c)
	return true
}

// elementLiteral 按集合元素类型格式化值
func (s *session) elementLiteral(c *symbol.Collection, value string) string {
	value = strings.TrimPrefix(stripArticles(value), "valor ")
	return s.expr.Literal(value, normalize.QuotedText(value), c.ElementType)
}

// assignElement asignar valor <v> al <ordinal> elemento de la <coleccion>
func (s *session) assignElement() bool {
	m := assignElementRe.FindStringSubmatch(s.ins.Text)
	if m == nil {
		return false
	}
	c, ok := s.resolveCollection(m[3])
	if !ok {
		return true
	}
	idx := ordinals[m[2]]
	value := s.elementLiteral(c, m[1])

	if c.Kind == symbol.Array {
		if idx < 0 {
			idx = c.Length - 1
		}
		if idx < 0 || idx >= c.Length {
			s.report(SemanticWarning, i18n.ErrIndexOutOfRange, idx+1, c.Name, c.Length)
			return true
		}
		s.emitf("%s[%d] = %s;", c.Name, idx, value)
		return true
	}

	if idx < 0 {
		s.emitf("%s.back() = %s;", c.Name, value)
		return true
	}
	if c.Length != symbol.UnknownLength && idx >= c.Length {
		s.report(SemanticWarning, i18n.ErrIndexOutOfRange, idx+1, c.Name, c.Length)
	}
	s.emitf("%s[%d] = %s;", c.Name, idx, value)
	return true
}

// addElement agregar <v> a la <coleccion>
func (s *session) addElement() bool {
	m := addRe.FindStringSubmatch(s.ins.Text)
	if m == nil {
		return false
	}
	c, ok := s.resolveCollection(aliasOf(m[2]))
	if !ok {
		return true
	}
	if c.Kind == symbol.Array {
		s.report(SemanticWarning, i18n.ErrArrayFull, c.Name)
		return true
	}
	s.emitf("%s.push_back(%s);", c.Name, s.elementLiteral(c, m[1]))
	if c.Length >= 0 {
		c.Length++
	}
	return true
}

// removeElement eliminar el <ordinal> elemento de la <coleccion>
func (s *session) removeElement() bool {
	m := removeRe.FindStringSubmatch(s.ins.Text)
	if m == nil {
		return false
	}
	c, ok := s.resolveCollection(m[2])
	if !ok {
		return true
	}
	if c.Kind == symbol.Array {
		s.report(SemanticWarning, i18n.ErrFixedRemove, c.Name)
		return true
	}

	idx := ordinals[m[1]]
	if idx < 0 {
		s.emitf("if (!%s.empty()) { %s.pop_back(); }", c.Name, c.Name)
	} else {
		if c.Length != symbol.UnknownLength && idx >= c.Length {
			s.report(SemanticWarning, i18n.ErrIndexOutOfRange, idx+1, c.Name, c.Length)
		}
		s.emitf("if (%s.size() > %d) { %s.erase(%s.begin() + %d); }", c.Name, idx, c.Name, c.Name, idx)
	}
	if c.Length > 0 {
		c.Length--
	}
	return true
}

// sortCollection ordenar la <coleccion> [de forma ascendente|descendente]
func (s *session) sortCollection() bool {
	m := sortRe.FindStringSubmatch(s.ins.Text)
	if m == nil {
		return false
	}
	c, ok := s.resolveCollection(m[1])
	if !ok {
		return true
	}

	begin, end := c.Name+".begin()", c.Name+".end()"
	if c.Kind == symbol.Array {
		if c.Length <= 0 {
			s.report(SemanticWarning, i18n.ErrUnknownArrayLength, c.Name)
			return true
		}
		begin, end = c.Name, c.Name+" + "+strconv.Itoa(c.Length)
	}

	s.include("algorithm")
	if m[2] == "descendente" || m[3] == "descendentemente" {
		s.emitf("std::sort(%s, %s, [](const %s &a, const %s &b) { return a > b; });", begin, end, c.ElementType, c.ElementType)
		return true
	}
	s.emitf("std::sort(%s, %s);", begin, end)
	return true
}

// iterateCollection recorrer la <coleccion> [y mostrar cada elemento]
func (s *session) iterateCollection() bool {
	m := iterateRe.FindStringSubmatch(s.ins.Text)
	if m == nil {
		return false
	}
	if m[2] != "" && !elementsPhrase(m[2]) {
		return false
	}
	c, ok := s.resolveCollection(m[1])
	if !ok {
		return true
	}
	if m[2] != "" {
		s.printCollection(c)
		return true
	}

	idx := s.indexName()
	s.open("for (std::size_t "+idx+" = 0; "+idx+" < "+sizeExpr(c)+"; ++"+idx+") {", block.Loop, idx)
	return true
}

// iterateSum recorrer la <coleccion> y sumar cada elemento al <variable>
func (s *session) iterateSum() bool {
	m := iterateSumRe.FindStringSubmatch(s.ins.Text)
	if m == nil {
		return false
	}
	c, ok := s.resolveCollection(m[1])
	if !ok {
		return true
	}

	typ := symbol.TypeInt
	if c.ElementType == symbol.TypeDouble {
		typ = symbol.TypeDouble
	}
	dest := s.ensureVariable(m[2], typ, symbol.ZeroValue(typ))
	if dest == "" {
		return true
	}
	item := s.localName("item")
	s.loop("for (const "+c.ElementType+" &"+item+" : "+c.Name+") {", dest+" += "+item+";")
	return true
}

// collectionInput 逐个读取集合元素，alias 为空时使用最近的集合
func (s *session) collectionInput(alias string) {
	var c *symbol.Collection
	var ok bool
	if alias == "" {
		c, ok = s.table.LastCollection()
		if !ok {
			s.report(MissingPrerequisite, i18n.ErrNoCollection)
			return
		}
	} else if c, ok = s.resolveCollection(alias); !ok {
		return
	}
	if c.Kind == symbol.Array && c.Length <= 0 {
		s.report(MissingPrerequisite, i18n.ErrUnknownArrayLength, c.Name)
		return
	}

	idx := s.indexName()
	label := "Ingrese el valor "
	if c.ElementType == symbol.TypeDouble && strings.Contains(c.Name, "nota") {
		label = "Ingrese la nota "
	}
	s.loop("for (std::size_t "+idx+" = 0; "+idx+" < "+sizeExpr(c)+"; ++"+idx+") {",
		"std::cout << "+normalize.Quote(label)+" << ("+idx+" + 1) << \": \";",
		"std::cin >> "+c.Name+"["+idx+"];")
}
