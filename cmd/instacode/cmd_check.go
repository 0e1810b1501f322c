package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tangzhangming/instacode/internal/i18n"
)

// checkCmd 只检查指令文件，不写出代码
func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	data := fs.String("data", "", i18n.T(i18n.MsgOptData))
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgOptVerbose))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgCheckUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgCheckDescription))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgArguments))
		fmt.Println(i18n.T(i18n.MsgCheckArgInput))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgOptions))
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		os.Exit(1)
	}

	res, err := convertInput(convertOptions{
		input:   fs.Arg(0),
		data:    *data,
		verbose: *verbose,
	})
	if res != nil {
		printIssues(res)
	}
	if err != nil {
		printError("Error: " + err.Error())
		os.Exit(1)
	}

	printInfo(i18n.T(i18n.MsgCheckPassed, res.lines))
}
