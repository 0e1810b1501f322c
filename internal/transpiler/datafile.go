package transpiler

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tangzhangming/instacode/internal/i18n"
	"github.com/tangzhangming/instacode/internal/normalize"
	"github.com/tangzhangming/instacode/internal/symbol"
)

var dataFileNameRe = regexp.MustCompile(`(?i)(?:archivo llamado|desde (?:el )?archivo) ([^\s,"]+)`)

// readsData 指令是否需要读取数据文件
func readsData(text string) bool {
	reads := strings.Contains(text, "leer") || strings.Contains(text, "cargar") || strings.Contains(text, "importar")
	return reads && (strings.Contains(text, "datos") || strings.Contains(text, "archivo"))
}

// needsData 任意一行需要数据文件时返回 true
func (s *session) needsData() bool {
	for _, raw := range strings.Split(s.input.Instructions, "\n") {
		text := normalize.Line(raw)
		if readsData(text) {
			return true
		}
		if mentionsPrint(text) && strings.Contains(text, "paises") && strings.Contains(text, "capitales") {
			return true
		}
	}
	return false
}

// dataLines 数据文件中去掉首尾空白后的非空行
func (s *session) dataLines() []string {
	var lines []string
	for _, line := range normalize.SplitLines(s.input.DataFileContents) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// readData leer los datos del archivo / cargar desde archivo <nombre>
func (s *session) readData() bool {
	text := s.ins.Text
	starts := false
	for _, verb := range []string{"leer", "cargar", "importar"} {
		if strings.HasPrefix(text, verb+" los datos") || strings.HasPrefix(text, verb+" desde") || strings.HasPrefix(text, verb+" datos") {
			starts = true
		}
	}
	if !starts && !(readsData(text) && strings.Contains(text, "archivo")) {
		return false
	}

	lines := s.dataLines()
	if len(lines) == 0 {
		s.fail(MissingPrerequisite, i18n.ErrDataRequired)
		return true
	}
	s.materialize(s.dataFileName(), lines)

	columns := strings.Count(lines[0], ",") + 1
	if columns == 1 {
		s.loadColumn(lines)
		return true
	}
	s.loadColumns(lines, columns)
	return true
}

// dataFileName 指令中的文件名，其次是配置的文件名
func (s *session) dataFileName() string {
	if quoted := normalize.QuotedText(s.ins.Raw); quoted != "" {
		return quoted
	}
	if m := dataFileNameRe.FindStringSubmatch(s.ins.Raw); m != nil {
		return m[1]
	}
	return s.dataFile
}

// materialize 在 main 开头写出数据文件，每次会话只写一次
func (s *session) materialize(name string, lines []string) {
	if s.dataWritten {
		return
	}
	s.dataWritten = true
	s.include("fstream")

	unit := s.cfg.IndentUnit()
	s.startup = append(s.startup, unit+"std::ofstream archivoDatos("+normalize.Quote(name)+");")
	for _, line := range lines {
		s.startup = append(s.startup, unit+"archivoDatos << "+normalize.Quote(line+"\n")+";")
	}
	s.startup = append(s.startup, unit+"archivoDatos.close();")
}

// dataLiteral 把数据值转换为集合元素的字面量
func (s *session) dataLiteral(c *symbol.Collection, value string) string {
	value = strings.TrimSpace(value)
	switch {
	case c.ElementType == symbol.TypeString:
		return normalize.Quote(value)
	case c.Numeric():
		if !normalize.IsNumber(value) {
			s.report(SemanticWarning, i18n.ErrDataNotNumeric, value, c.Name)
			return symbol.ZeroValue(c.ElementType)
		}
		return normalize.NumberString(value, c.ElementType == symbol.TypeDouble)
	}
	return s.expr.Literal(value, "", c.ElementType)
}

// prepare 预分配长度的 vector 在加载前清空
func (s *session) prepare(c *symbol.Collection) {
	if c.Kind == symbol.Vector && c.Length > 0 {
		s.emitf("%s.clear();", c.Name)
	}
}

// store 把第 n 个值放入集合，数组越界时返回 false
func (s *session) store(c *symbol.Collection, n int, literal string) bool {
	if c.Kind == symbol.Array {
		if n >= c.Length {
			return false
		}
		s.emitf("%s[%d] = %s;", c.Name, n, literal)
		return true
	}
	s.emitf("%s.push_back(%s);", c.Name, literal)
	return true
}

// loadColumn 单列数据加载到最近创建的集合
func (s *session) loadColumn(lines []string) {
	c, ok := s.table.LastCollection()
	if !ok {
		s.report(MissingPrerequisite, i18n.ErrNoCollection)
		return
	}

	s.emit("// Cargar datos desde archivo (una columna)")
	s.prepare(c)
	for n, line := range lines {
		if !s.store(c, n, s.dataLiteral(c, line)) {
			s.report(SemanticWarning, i18n.ErrDataOverflow, len(lines), c.Name, c.Length)
			break
		}
	}
	if c.Kind == symbol.Vector {
		c.Length = len(lines)
	}
}

// loadColumns 多列数据按列对应最近创建的 N 个集合
func (s *session) loadColumns(lines []string, columns int) {
	colls := s.table.LastCollections(columns)
	if colls == nil {
		s.report(StructuralError, i18n.ErrDataColumns, columns, len(s.table.Collections()))
		return
	}

	s.emit("// Cargar datos desde archivo (" + strconv.Itoa(columns) + " columnas)")
	for _, c := range colls {
		s.prepare(c)
	}

	processed := 0
	overflow := make(map[string]bool)
	for row, line := range lines {
		fields := strings.Split(line, ",")
		if len(fields) < columns {
			s.report(SemanticWarning, i18n.ErrDataShortRow, row+1, columns)
			continue
		}
		for k, c := range colls {
			value := unquoteField(fields[k])
			if !s.store(c, processed, s.dataLiteral(c, value)) && !overflow[c.Name] {
				overflow[c.Name] = true
				s.report(SemanticWarning, i18n.ErrDataOverflow, len(lines), c.Name, c.Length)
			}
		}
		processed++
	}
	for _, c := range colls {
		if c.Kind == symbol.Vector {
			c.Length = processed
		}
	}
}

// unquoteField 去掉字段外层的一对引号
func unquoteField(field string) string {
	field = strings.TrimSpace(field)
	if len(field) >= 2 && strings.HasPrefix(field, `"`) && strings.HasSuffix(field, `"`) {
		return field[1 : len(field)-1]
	}
	return field
}
