package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName 配置文件名
const FileName = "instacode.toml"

// 默认值
const (
	DefaultDataFile  = "datos.txt"
	DefaultIndent    = 4
	DefaultExtension = ".cpp"
	DefaultLanguage  = "es"
)

// Config instacode 配置
type Config struct {
	Language string       `toml:"language"` // 诊断信息语言 es|en
	Data     DataConfig   `toml:"data"`
	Output   OutputConfig `toml:"output"`
}

// DataConfig 数据文件配置
type DataConfig struct {
	File string `toml:"file"` // 生成代码中写出的数据文件名
}

// OutputConfig 生成代码配置
type OutputConfig struct {
	Indent    int    `toml:"indent"`    // 每级缩进的空格数
	Extension string `toml:"extension"` // 默认输出文件扩展名
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Language: DefaultLanguage,
		Data: DataConfig{
			File: DefaultDataFile,
		},
		Output: OutputConfig{
			Indent:    DefaultIndent,
			Extension: DefaultExtension,
		},
	}
}

// IndentUnit 返回一级缩进的字符串
func (c *Config) IndentUnit() string {
	return strings.Repeat(" ", c.Output.Indent)
}

// FindAndLoad 从指定目录向上查找 instacode.toml 并加载
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		// 没找到配置文件，返回默认配置
		return DefaultConfig(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// FindConfigFile 从指定目录向上查找 instacode.toml
func FindConfigFile(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		dir = startDir
	}

	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到根目录
			return ""
		}
		dir = parent
	}
}

// Load 加载配置文件，未设置的项使用默认值
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Validate 检查配置项并补全空值
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data.File) == "" {
		c.Data.File = DefaultDataFile
	}
	if c.Output.Extension == "" {
		c.Output.Extension = DefaultExtension
	}
	if !strings.HasPrefix(c.Output.Extension, ".") {
		c.Output.Extension = "." + c.Output.Extension
	}
	if c.Output.Indent <= 0 || c.Output.Indent > 8 {
		return fmt.Errorf("output.indent must be between 1 and 8, got %d", c.Output.Indent)
	}
	switch strings.ToLower(c.Language) {
	case "":
		c.Language = DefaultLanguage
	case "es", "en":
		c.Language = strings.ToLower(c.Language)
	default:
		return fmt.Errorf("unsupported language %q", c.Language)
	}
	return nil
}

// OutputPath 根据输入文件推导默认输出路径
func (c *Config) OutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + c.Output.Extension
}
