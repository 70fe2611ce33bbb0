package main

import (
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/fitting/fitting-selenium/internal/download"
)

type fetchCmd struct {
	dir         string
	chromeBuild string
	chrome      bool
	gecko       bool
	server      bool
}

func newFetchCommand() *cobra.Command {
	c := &fetchCmd{}
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the Selenium server and browser drivers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, &download.Fetcher{})
		},
	}
	cmd.Flags().StringVar(&c.dir, "dir", "vendor", "directory to download into")
	cmd.Flags().StringVar(&c.chromeBuild, "chrome-build", "", "Chromium snapshot build to take chromedriver from; empty means the latest")
	cmd.Flags().BoolVar(&c.chrome, "chromedriver", true, "download chromedriver")
	cmd.Flags().BoolVar(&c.gecko, "geckodriver", true, "download geckodriver")
	cmd.Flags().BoolVar(&c.server, "selenium-server", true, "download the Selenium server")
	return cmd
}

func (c *fetchCmd) run(cmd *cobra.Command, f *download.Fetcher) error {
	ctx := cmd.Context()
	var files []download.File
	if c.server {
		files = append(files, download.SeleniumServer)
	}
	if c.chrome {
		file, err := f.ChromeDriver(ctx, c.chromeBuild)
		if err != nil {
			glog.Errorf("Unable to find chromedriver: %v", err)
		} else {
			files = append(files, file)
		}
	}
	if c.gecko {
		file, err := f.Geckodriver(ctx)
		if err != nil {
			glog.Errorf("Unable to find the latest geckodriver: %v", err)
		} else {
			files = append(files, file)
		}
	}
	return f.DownloadAll(ctx, c.dir, files)
}
