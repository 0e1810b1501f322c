package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tangzhangming/instacode/internal/config"
	"github.com/tangzhangming/instacode/internal/i18n"
	"github.com/tangzhangming/instacode/internal/transpiler"
)

// convertOptions convert 与 check 共用的选项
type convertOptions struct {
	input   string // 指令文件
	output  string // 输出文件，为空时由配置推导
	data    string // 数据文件，为空时使用配置中的文件名
	verbose bool
	write   bool // 是否写出 C++ 文件
}

// convertResult 一次转换的结果
type convertResult struct {
	out        transpiler.Output
	outputPath string
	lines      int // 非空指令行数
}

// convertInput 读取输入并转换，成功且需要时写出代码文件
func convertInput(opts convertOptions) (*convertResult, error) {
	info, err := os.Stat(opts.input)
	if err != nil {
		return nil, &accessError{err: err}
	}
	if info.IsDir() {
		return nil, &accessError{err: fmt.Errorf("%s is a directory", opts.input)}
	}

	cfg, configPath, err := config.FindAndLoad(filepath.Dir(opts.input))
	if err != nil {
		return nil, &configError{err: err}
	}
	if configPath != "" {
		i18n.SetLanguage(i18n.ParseLanguage(cfg.Language))
	}

	if opts.verbose {
		if envFile != "" {
			printInfo(i18n.T(i18n.MsgUsingEnv, envFile))
		}
		if configPath != "" {
			printInfo(i18n.T(i18n.MsgUsingConfig, configPath))
		} else {
			printInfo(i18n.T(i18n.MsgNoConfig))
		}
	}

	content, err := os.ReadFile(opts.input)
	if err != nil {
		return nil, &readFileError{path: opts.input, err: err}
	}

	in := transpiler.Input{Instructions: string(content)}
	if dataPath := resolveDataPath(opts, cfg); dataPath != "" {
		data, err := os.ReadFile(dataPath)
		if err != nil {
			// 缺少数据文件交给转换器报告
			if !os.IsNotExist(err) || opts.data != "" {
				return nil, &readFileError{path: dataPath, err: err}
			}
		} else {
			in.DataFileContents = string(data)
			in.DataFileName = filepath.Base(dataPath)
		}
	}

	res := &convertResult{
		outputPath: opts.output,
		lines:      countInstructions(string(content)),
	}
	if res.outputPath == "" {
		res.outputPath = cfg.OutputPath(opts.input)
	}

	if opts.verbose && opts.write {
		printInfo(i18n.T(i18n.MsgConverting, opts.input, res.outputPath))
	}

	t := transpiler.New()
	t.SetConfig(cfg)
	res.out = t.Convert(in)

	if opts.verbose {
		printInfo(i18n.T(i18n.MsgSession, res.out.Session))
	}

	if !res.out.Success {
		return res, &conversionError{count: len(res.out.Issues)}
	}

	if opts.write {
		if err := os.WriteFile(res.outputPath, []byte(res.out.Code), 0644); err != nil {
			return res, &writeFileError{path: res.outputPath, err: err}
		}
	}

	return res, nil
}

// resolveDataPath 命令行指定的数据文件优先，其次是输入旁边的配置文件名
func resolveDataPath(opts convertOptions, cfg *config.Config) string {
	if opts.data != "" {
		return opts.data
	}
	if cfg.Data.File == "" {
		return ""
	}
	if filepath.IsAbs(cfg.Data.File) {
		return cfg.Data.File
	}
	return filepath.Join(filepath.Dir(opts.input), cfg.Data.File)
}

func countInstructions(content string) int {
	n := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

// printIssues 输出诊断，致命问题写到标准错误
func printIssues(res *convertResult) {
	for _, d := range res.out.Diagnostics {
		msg := i18n.T(i18n.MsgIssue, d.Kind.String(), d.Line, d.Message)
		if d.Kind.Fatal() {
			printError(msg)
		} else {
			printWarning(msg)
		}
	}
}

// 错误类型定义
type accessError struct {
	err error
}

func (e *accessError) Error() string {
	return i18n.T(i18n.ErrCannotAccessInput, e.err)
}

type configError struct {
	err error
}

func (e *configError) Error() string {
	return i18n.T(i18n.ErrCannotLoadConfig, e.err)
}

type readFileError struct {
	path string
	err  error
}

func (e *readFileError) Error() string {
	return fmt.Sprintf("%s %s: %v", i18n.T(i18n.ErrCannotReadFile), e.path, e.err)
}

type writeFileError struct {
	path string
	err  error
}

func (e *writeFileError) Error() string {
	return fmt.Sprintf("%s %s: %v", i18n.T(i18n.ErrCannotWriteFile), e.path, e.err)
}

type conversionError struct {
	count int
}

func (e *conversionError) Error() string {
	return i18n.T(i18n.ErrConversionFailed, e.count)
}
