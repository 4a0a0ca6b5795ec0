package main

import (
	"github.com/spf13/cobra"

	"lyricvocab/config"
	"lyricvocab/logger"
)

// cliState carries the loaded config from PersistentPreRunE to the
// subcommands of one root command.
type cliState struct {
	cfgFile string
	cfg     config.Config
}

// NewRootCmd builds the lyricvocab command tree.
func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()
	state := &cliState{}

	cmd := &cobra.Command{
		Use:           "lyricvocab",
		Short:         "Build Japanese vocabulary lists from song lyrics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: state.cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			state.cfg = loaded
			logger.New(cmd.ErrOrStderr(), loaded.Log)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&state.cfgFile, "config", "", "Optional config file (ini|yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newExtractCmd(state))
	cmd.AddCommand(newTokensCmd(state))

	return cmd
}
