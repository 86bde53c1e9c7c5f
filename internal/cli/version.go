package cli

import "github.com/spf13/cobra"

func newVersionCmd(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("algosyncctl version %s\n", ro.BuildInfo.BuildVersion())
			cmd.Printf("Build date: %s\n", ro.BuildInfo.BuildDate())
			cmd.Printf("Build commit: %s\n", ro.BuildInfo.BuildCommit())
		},
	}
}
