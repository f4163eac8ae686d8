package main

import (
	"github.com/spf13/cobra"

	"github.com/weisyn/wallet-adapter/internal/app/version"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "显示版本信息",
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.GetBuildInfo()
		return printer.PrintResult("wallet-adapter "+info.Version, [][2]string{
			{"version", info.Version},
			{"buildTime", info.BuildTime},
			{"gitCommit", info.GitCommit},
			{"goVersion", info.GoVersion},
			{"platform", info.Platform},
		})
	},
}
