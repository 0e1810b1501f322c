package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/tangzhangming/instacode/internal/i18n"
)

const version = "0.1.0"

// envFile 成功加载的 .env 文件，没有时为空
var envFile string

func main() {
	// .env 中的 INSTACODE_LANG 需要在初始化国际化之前生效
	if err := godotenv.Load(); err == nil {
		envFile = ".env"
	}
	i18n.Init()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "convert":
		convertCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	case "version":
		fmt.Println("instacode version", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		printError(i18n.T(i18n.MsgUnknownCommand, os.Args[1]))
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(i18n.T(i18n.MsgUsage))
	fmt.Println()
	fmt.Println(i18n.T(i18n.MsgCommands))
	fmt.Println(i18n.T(i18n.MsgCmdConvert))
	fmt.Println(i18n.T(i18n.MsgCmdCheck))
	fmt.Println(i18n.T(i18n.MsgCmdVersion))
	fmt.Println(i18n.T(i18n.MsgCmdHelp))
	fmt.Println()
	fmt.Println(i18n.T(i18n.MsgUseHelp))
}

// 辅助打印函数
func printError(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

func printInfo(msg string) {
	fmt.Println(msg)
}

func printWarning(msg string) {
	fmt.Fprintln(os.Stderr, i18n.T(i18n.MsgWarning, msg))
}
