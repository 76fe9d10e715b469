package main

import (
	"os"

	"github.com/fzft/go-hashset/cmd"
	"github.com/fzft/go-hashset/log"
)

func main() {
	root := cmd.NewRootCmd(os.Args[1:], buildInfo())
	err := root.Execute()
	_ = log.Logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
