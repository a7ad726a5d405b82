package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/0xdevcult/blog"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the site into static files",
	Long:  `Render rss.xml, the sitemaps, robots.txt and every post page into the output directory.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "out", "o", "", "output directory (default $OUTPUT_DIR or dist)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	app, err := newApp(func(cfg *blog.SiteConfig) {
		if buildOutput != "" {
			cfg.OutputDir = buildOutput
		}
	})
	if err != nil {
		return err
	}

	start := time.Now()
	report, err := app.Build(cmd.Context(), app.Config.OutputDir)
	if err != nil {
		return err
	}
	for _, f := range report.Files {
		fmt.Fprintf(cmd.OutOrStdout(), "  wrote %s\n", f)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "built %d files into %s in %s\n",
		len(report.Files), app.Config.OutputDir, time.Since(start).Round(time.Millisecond))
	return nil
}
