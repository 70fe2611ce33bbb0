package main

import (
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/fitting/fitting-selenium/config"
	"github.com/fitting/fitting-selenium/fitting"
)

func newProbeCommand() *cobra.Command {
	var waitFor string
	var timeout int
	cmd := &cobra.Command{
		Use:   "probe [url]",
		Short: "Open a session and report what the browser sees",
		Long: `Connect to the WebDriver endpoint described by the SELENIUM_* environment,
optionally navigate to url, and print the title, location and window size.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			b, err := cfg.Builder()
			if err != nil {
				return err
			}
			c, err := b.Build()
			if err != nil {
				return err
			}
			defer func() {
				if err := c.Destroy(); err != nil {
					glog.Warningf("closing session: %v", err)
				}
			}()
			w, err := c.Window()
			if err != nil {
				return err
			}
			var url string
			if len(args) > 0 {
				url = args[0]
			}
			var sel *fitting.Selector
			if waitFor != "" {
				s := fitting.ByCSS(waitFor)
				sel = &s
			}
			return probe(cmd.OutOrStdout(), w, url, sel, timeout)
		},
	}
	cmd.Flags().StringVar(&waitFor, "wait-for", "", "CSS selector to wait for after navigating")
	cmd.Flags().IntVar(&timeout, "timeout", 10, "seconds to wait for --wait-for")
	return cmd
}

func probe(out io.Writer, w fitting.ElementContainer, url string, waitFor *fitting.Selector, timeout int) error {
	if url != "" {
		if err := w.NavigateTo(url); err != nil {
			return fmt.Errorf("navigating to %s: %w", url, err)
		}
	}
	if waitFor != nil {
		if err := w.WaitForElement(*waitFor, timeout); err != nil {
			return err
		}
	}
	title, err := w.Title()
	if err != nil {
		return err
	}
	location, err := w.CurrentLocation()
	if err != nil {
		return err
	}
	size, err := w.Size()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "window:   %s\n", w.ID())
	fmt.Fprintf(out, "title:    %s\n", title)
	fmt.Fprintf(out, "location: %s\n", location)
	fmt.Fprintf(out, "size:     %dx%d\n", size.Width, size.Height)
	return nil
}
