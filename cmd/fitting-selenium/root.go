package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRootCommand() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:           "fitting-selenium",
		Short:         "Drive fitting tests through Selenium WebDriver",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// glog reads its flags from the standard flag set.
			_ = flag.CommandLine.Parse(nil)
			return loadEnv(envFile, cmd.Flags().Changed("env-file"))
		},
	}

	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.StringVar(&envFile, "env-file", ".env", "file with SELENIUM_* settings to load into the environment")
	flags.AddGoFlagSet(flag.CommandLine)
	cmd.PersistentFlags().AddFlagSet(flags)

	cmd.AddCommand(newProbeCommand(), newFetchCommand())
	return cmd
}

// loadEnv loads name into the environment. Variables already set win. A
// missing file is only an error when it was asked for explicitly.
func loadEnv(name string, explicit bool) error {
	if _, err := os.Stat(name); err != nil && !explicit {
		glog.V(1).Infof("no %s file: %v", name, err)
		return nil
	}
	return godotenv.Load(name)
}
