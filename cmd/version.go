package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// BuildInfo carries the values stamped in at link time.
type BuildInfo struct {
	Version  string
	GitSHA1  string
	GitDirty string
}

// String renders the version with git commit and working tree status when
// available.
func (b BuildInfo) String() string {
	version := b.Version
	if sha1Int, err := strconv.ParseInt(b.GitSHA1, 16, 64); err == nil && sha1Int != 0 {
		version = fmt.Sprintf("%s (git:%s", version, b.GitSHA1)
		if dirtyInt, err := strconv.ParseInt(b.GitDirty, 10, 64); err == nil && dirtyInt != 0 {
			version = fmt.Sprintf("%s-dirty", version)
		}
		version = fmt.Sprintf("%s)", version)
	}
	return version
}

func newVersionCmd(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "hsetcli %s\n", build)
			return err
		},
	}
}
