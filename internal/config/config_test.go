package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "es", cfg.Language)
	require.Equal(t, "datos.txt", cfg.Data.File)
	require.Equal(t, "    ", cfg.IndentUnit())
	require.Equal(t, filepath.Join("dir", "programa.cpp"), cfg.OutputPath(filepath.Join("dir", "programa.txt")))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
language = "EN"

[data]
file = "paises.csv"

[output]
indent = 2
extension = "cc"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "en", cfg.Language)
	require.Equal(t, "paises.csv", cfg.Data.File)
	require.Equal(t, "  ", cfg.IndentUnit())
	require.Equal(t, ".cc", cfg.Output.Extension)
}

func TestLoadKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[data]\nfile = \"\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DefaultDataFile, cfg.Data.File)
	require.Equal(t, DefaultIndent, cfg.Output.Indent)
	require.Equal(t, DefaultLanguage, cfg.Language)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writeConfig(t, dir, "[output]\nindent = 0\n"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, dir, "language = \"fr\"\n"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, dir, "language = [\n"))
	require.Error(t, err)
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, path, err := FindAndLoad(nested)
	require.NoError(t, err)
	if path != "" {
		// 临时目录之上存在配置文件时跳过
		t.Skipf("unexpected %s above temp dir", path)
	}
	require.Equal(t, DefaultDataFile, cfg.Data.File)

	expected := writeConfig(t, root, "[data]\nfile = \"entrada.txt\"\n")
	cfg, path, err = FindAndLoad(nested)
	require.NoError(t, err)
	require.Equal(t, expected, path)
	require.Equal(t, "entrada.txt", cfg.Data.File)
}
