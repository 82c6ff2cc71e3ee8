package main

import (
	"fmt"
	"os"

	"github.com/joshyorko/debsbom/cmd"
	"github.com/joshyorko/debsbom/common"
	"github.com/joshyorko/debsbom/pretty"
)

func ExitProtection() {
	status := recover()
	if status != nil {
		exit, ok := status.(common.ExitCode)
		if ok {
			exit.ShowMessage()
			common.WaitLogs()
			os.Exit(exit.Code)
		}
		common.Fatal("main", fmt.Errorf("%v", status))
		common.WaitLogs()
		panic(status)
	}
	common.WaitLogs()
}

func main() {
	defer ExitProtection()
	pretty.Setup()

	cmd.Execute()
}
