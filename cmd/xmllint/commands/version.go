package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/xmllint/cmd"
	"github.com/thoreinstein/xmllint/pkg/fileutil"
)

var versionJSON bool

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "print build information as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, build date and Go runtime of xmllint.`,
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		info := cmd.Info()
		out := c.OutOrStdout()
		if versionJSON {
			data, err := fileutil.MarshalJSON(info)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		}
		fmt.Fprintf(out, "xmllint version %s\n", info.Version)
		fmt.Fprintf(out, "  commit:    %s\n", info.Commit)
		fmt.Fprintf(out, "  built:     %s\n", info.Date)
		fmt.Fprintf(out, "  go:        %s\n", info.GoVersion)
		return nil
	},
}
