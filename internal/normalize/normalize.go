// Package normalize 提供指令文本的规范化工具函数。
// 所有函数都是纯函数，不持有状态。
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	spaceRe   = regexp.MustCompile(`\s+`)
	lineRe    = regexp.MustCompile(`[\r\n]+`)
	numberRe  = regexp.MustCompile(`^-?\d+(?:[.,]\d+)?$`)
	numbersRe = regexp.MustCompile(`-?\d+(?:[.,]\d+)?`)
)

// reserved C++ 关键字，生成的标识符不能与之冲突
var reserved = map[string]bool{
	"auto": true, "bool": true, "break": true, "case": true, "char": true,
	"class": true, "const": true, "continue": true, "default": true, "delete": true,
	"do": true, "double": true, "else": true, "enum": true, "false": true,
	"float": true, "for": true, "goto": true, "if": true, "int": true,
	"long": true, "main": true, "namespace": true, "new": true, "private": true,
	"public": true, "return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "struct": true, "switch": true, "this": true, "true": true,
	"typedef": true, "union": true, "unsigned": true, "using": true, "void": true,
	"while": true, "std": true,
}

// RemoveDiacritics 做 NFD 分解并去掉所有组合标记
func RemoveDiacritics(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isMark)))
	result, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return result
}

func isMark(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me)
}

// Line 规范化一行：去重音、小写、折叠空白、去首尾空白
func Line(text string) string {
	simplified := strings.ToLower(RemoveDiacritics(text))
	simplified = spaceRe.ReplaceAllString(simplified, " ")
	return strings.TrimSpace(simplified)
}

// Instruction 与 Line 相同，但双引号内的文本原样保留。
// 未闭合的引号之后的内容按普通文本处理。
func Instruction(text string) string {
	parts := strings.Split(text, `"`)
	closed := len(parts)%2 == 1

	var sb strings.Builder
	for i, part := range parts {
		inside := i%2 == 1 && (closed || i < len(parts)-1)
		if i > 0 {
			sb.WriteByte('"')
		}
		if inside {
			sb.WriteString(part)
			continue
		}
		sb.WriteString(spaceRe.ReplaceAllString(strings.ToLower(RemoveDiacritics(part)), " "))
	}
	return strings.TrimSpace(sb.String())
}

// Identifier 把任意文本转换为合法的 C++ 标识符
func Identifier(source string) string {
	ascii := strings.ToLower(RemoveDiacritics(source))

	var sb strings.Builder
	lastWasUnderscore := false
	for _, ch := range ascii {
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') {
			sb.WriteRune(ch)
			lastWasUnderscore = false
			continue
		}
		if !lastWasUnderscore && sb.Len() > 0 {
			sb.WriteByte('_')
		}
		lastWasUnderscore = true
	}

	result := strings.TrimRight(sb.String(), "_")
	if result == "" {
		result = "valor"
	}
	if result[0] >= '0' && result[0] <= '9' {
		result = "v" + result
	}
	if reserved[result] {
		result += "_"
	}
	return result
}

// NumberString 把数字文本规范为 C++ 数字字面量
func NumberString(value string, floating bool) string {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		if floating {
			return "0.0"
		}
		return "0"
	}
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if floating && !strings.Contains(cleaned, ".") {
		cleaned += ".0"
	}
	return cleaned
}

// QuotedText 返回前两个双引号之间的文本，没有时返回空串
func QuotedText(line string) string {
	first := strings.IndexByte(line, '"')
	if first < 0 {
		return ""
	}
	second := strings.IndexByte(line[first+1:], '"')
	if second < 0 {
		return ""
	}
	return line[first+1 : first+1+second]
}

// AfterQuote 返回第一段引号文本之后的剩余部分（已去空白）
func AfterQuote(line string) string {
	first := strings.IndexByte(line, '"')
	if first < 0 {
		return ""
	}
	second := strings.IndexByte(line[first+1:], '"')
	if second < 0 {
		return ""
	}
	return strings.TrimSpace(line[first+1+second+1:])
}

// IndexOutsideQuotes 查找不在引号内的第一个 sub
func IndexOutsideQuotes(s, sub string) int {
	inside := false
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			inside = !inside
			continue
		}
		if !inside && strings.HasPrefix(s[i:], sub) {
			return i
		}
	}
	return -1
}

// LastIndexOutsideQuotes 查找不在引号内的最后一个 sub
func LastIndexOutsideQuotes(s, sub string) int {
	found := -1
	inside := false
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			inside = !inside
			continue
		}
		if !inside && strings.HasPrefix(s[i:], sub) {
			found = i
		}
	}
	return found
}

// Escape 转义 C++ 字符串字面量中的特殊字符
func Escape(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) + 8)
	for _, ch := range text {
		switch ch {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteRune(ch)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
		default:
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

// Quote 生成 C++ 字符串字面量
func Quote(text string) string {
	return `"` + Escape(text) + `"`
}

// IsNumber 判断文本是否是（可能带小数的）数字
func IsNumber(text string) bool {
	return numberRe.MatchString(strings.TrimSpace(text))
}

// IsDecimal 判断数字文本是否带小数分隔符
func IsDecimal(text string) bool {
	return strings.ContainsAny(text, ".,")
}

// Numbers 提取文本中出现的所有数字
func Numbers(text string) []string {
	return numbersRe.FindAllString(text, -1)
}

// SplitLines 按换行切分并丢弃空行
func SplitLines(text string) []string {
	var lines []string
	for _, line := range lineRe.Split(text, -1) {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Title 首字母大写（西班牙语规则）
func Title(text string) string {
	return cases.Title(language.Spanish, cases.NoLower).String(text)
}
