// SPDX-License-Identifier: Apache-2.0

package version

import (
	"encoding/json"
	"strings"

	"github.com/joomcode/errorx"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/raven-assistant/ravenctl/internal/doctor"
	"github.com/raven-assistant/ravenctl/internal/version"
)

// Info is the version information rendered by the version command.
type Info struct {
	Version string `yaml:"version" json:"version"`
	Commit  string `yaml:"commit" json:"commit"`
}

var (
	flagOutputFormat string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Long:  "Show the current version of the application",
		Run: func(cmd *cobra.Command, args []string) {
			PrintVersion(cmd, flagOutputFormat)
		},
	}
)

func init() {
	versionCmd.PersistentFlags().StringVarP(&flagOutputFormat, "output", "o", "yaml", "Output format: yaml|json")
}

func GetCmd() *cobra.Command {
	return versionCmd
}

// Format renders the version info in the requested output format.
func (i Info) Format(format string) (string, error) {
	switch strings.ToLower(format) {
	case "", "yaml":
		b, err := yaml.Marshal(i)
		if err != nil {
			return "", errorx.IllegalFormat.Wrap(err, "failed to render version info")
		}
		return strings.TrimSpace(string(b)), nil
	case "json":
		b, err := json.MarshalIndent(i, "", "  ")
		if err != nil {
			return "", errorx.IllegalFormat.Wrap(err, "failed to render version info")
		}
		return string(b), nil
	default:
		return "", errorx.IllegalArgument.New("unsupported output format: %s", format)
	}
}

func PrintVersion(cmd *cobra.Command, format string) {
	info := Info{Version: version.Number(), Commit: version.Commit()}

	output, err := info.Format(format)
	if err != nil {
		doctor.CheckErr(cmd.Context(), err)
	}
	cmd.Println(output)
}
