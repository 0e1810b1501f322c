package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sanity-io/litter"

	"github.com/tangzhangming/instacode/internal/i18n"
)

// convertCmd 把指令文件转换为 C++
func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	output := fs.String("o", "", i18n.T(i18n.MsgOptOutput))
	data := fs.String("data", "", i18n.T(i18n.MsgOptData))
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgOptVerbose))
	dump := fs.Bool("dump", false, i18n.T(i18n.MsgOptDump))
	stdout := fs.Bool("stdout", false, i18n.T(i18n.MsgOptStdout))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgConvertUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgConvertDescription))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgArguments))
		fmt.Println(i18n.T(i18n.MsgConvertArgInput))
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
		output:  *output,
		data:    *data,
		verbose: *verbose,
		write:   !*stdout,
	})
	if res != nil {
		printIssues(res)
		if *dump {
			litter.Dump(res.out.Symbols)
		}
	}
	if err != nil {
		printError("Error: " + err.Error())
		os.Exit(1)
	}

	if *stdout {
		fmt.Print(res.out.Code)
		return
	}
	fmt.Println(i18n.T(i18n.MsgConvertCompleted, res.outputPath))
}
