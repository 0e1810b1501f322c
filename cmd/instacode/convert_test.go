package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/instacode/internal/i18n"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangSpanish)
	os.Exit(m.Run())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestConvertInputWritesOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "programa.txt")
	writeFile(t, input, "crear variable numero entero edad con valor inicial 20\nmostrar \"Edad:\" y edad\n")

	res, err := convertInput(convertOptions{input: input, write: true})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "programa.cpp"), res.outputPath)
	require.Equal(t, 2, res.lines)

	code, err := os.ReadFile(res.outputPath)
	require.NoError(t, err)
	require.Equal(t, res.out.Code, string(code))
	require.Contains(t, string(code), "int edad = 20;")
}

func TestConvertInputUsesConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "instacode.toml"), "language = \"es\"\n\n[data]\nfile = \"paises.csv\"\n\n[output]\nindent = 2\nextension = \"cc\"\n")
	writeFile(t, filepath.Join(dir, "paises.csv"), "Peru,Lima\nChile,Santiago\n")
	input := filepath.Join(dir, "capitales.txt")
	writeFile(t, input, "crear una lista de texto para guardar los paises\n"+
		"crear una lista de texto para guardar las capitales\n"+
		"leer los datos del archivo\n"+
		"mostrar los paises y sus capitales\n")

	res, err := convertInput(convertOptions{input: input, write: true})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "capitales.cc"), res.outputPath)
	require.Contains(t, res.out.Code, "  std::ofstream archivoDatos(\"paises.csv\");")
	require.Contains(t, res.out.Code, "  paises.push_back(\"Peru\");")
	require.FileExists(t, res.outputPath)
}

func TestConvertInputExplicitData(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "valores.txt")
	writeFile(t, data, "3\n5\n")
	input := filepath.Join(dir, "numeros.txt")
	writeFile(t, input, "crear una lista de numeros enteros\nleer los datos del archivo\n")
	output := filepath.Join(dir, "salida.cpp")

	res, err := convertInput(convertOptions{input: input, output: output, data: data, write: true})
	require.NoError(t, err)
	require.Equal(t, output, res.outputPath)
	require.Contains(t, res.out.Code, `std::ofstream archivoDatos("valores.txt");`)
	require.FileExists(t, output)
}

func TestConvertInputFailures(t *testing.T) {
	dir := t.TempDir()

	_, err := convertInput(convertOptions{input: filepath.Join(dir, "falta.txt")})
	var access *accessError
	require.ErrorAs(t, err, &access)

	_, err = convertInput(convertOptions{input: dir})
	require.ErrorAs(t, err, &access)

	input := filepath.Join(dir, "datos_faltantes.txt")
	writeFile(t, input, "leer los datos del archivo\n")
	res, err := convertInput(convertOptions{input: input, write: true})
	var failed *conversionError
	require.ErrorAs(t, err, &failed)
	require.Equal(t, 1, failed.count)
	require.NotNil(t, res)
	require.False(t, res.out.Success)
	require.NoFileExists(t, filepath.Join(dir, "datos_faltantes.cpp"))

	_, err = convertInput(convertOptions{input: input, data: filepath.Join(dir, "no_existe.csv")})
	var read *readFileError
	require.ErrorAs(t, err, &read)
}

func TestConvertInputBadConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "instacode.toml"), "[output]\nindent = 0\n")
	input := filepath.Join(dir, "programa.txt")
	writeFile(t, input, "mostrar \"hola\"\n")

	_, err := convertInput(convertOptions{input: input})
	var cfgErr *configError
	require.ErrorAs(t, err, &cfgErr)
}

func TestCheckDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "programa.txt")
	writeFile(t, input, "mostrar \"hola\"\n\n")

	res, err := convertInput(convertOptions{input: input})
	require.NoError(t, err)
	require.Equal(t, 1, res.lines)
	require.NoFileExists(t, res.outputPath)
}
