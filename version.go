package main

import "github.com/fzft/go-hashset/cmd"

var (
	version  string = "0.1.0"
	gitSHA1  string = "unknown"
	gitDirty string = "unknown"
)

func buildInfo() cmd.BuildInfo {
	return cmd.BuildInfo{
		Version:  version,
		GitSHA1:  gitSHA1,
		GitDirty: gitDirty,
	}
}
