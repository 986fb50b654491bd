package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

type buildVersion struct {
	Version   string
	Revision  string
	Dirty     bool
	GoVersion string
}

// readBuildVersion pulls the module version and VCS stamp out of the build info.
func readBuildVersion(info *debug.BuildInfo) (buildVersion, bool) {
	if info == nil || info.Main.Version == "" {
		return buildVersion{}, false
	}

	v := buildVersion{Version: info.Main.Version, GoVersion: info.GoVersion}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			v.Revision = setting.Value
		case "vcs.modified":
			v.Dirty = setting.Value == "true"
		}
	}

	return v, true
}

func printBuildVersion(w io.Writer, v buildVersion) {
	fmt.Fprintf(w, "autotestfix\t%s\n", v.Version)

	if v.Revision != "" {
		revision := v.Revision
		if v.Dirty {
			revision += " (modified)"
		}

		fmt.Fprintf(w, "revision\t%s\n", revision)
	}

	fmt.Fprintf(w, "go\t\t%s\n", v.GoVersion)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version of autotestfix, the VCS revision it was built from and the Go version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()

			v, ok := readBuildVersion(info)
			if !ok {
				cmd.Println("version: unknown")
				return
			}

			printBuildVersion(cmd.OutOrStdout(), v)
		},
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
