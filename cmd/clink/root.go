package clink

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/santikid/clink/internal/version"
	"github.com/santikid/clink/pkg/config"
	"github.com/santikid/clink/pkg/core"
	"github.com/santikid/clink/pkg/errors"
	"github.com/santikid/clink/pkg/logging"
	"github.com/santikid/clink/pkg/output"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbosity  int
	dir        string
	configPath string
	noColor    bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "clink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			output.ConfigureColor(os.Stdout, opts.noColor)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", "", MsgFlagDir)
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionTemplate, version.Commit, version.Date))
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newLinkCmd(opts))
	rootCmd.AddCommand(newUnlinkCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newFeaturesCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// load reads the configuration for the selected directory and returns it
// with the matching core options.
func (o *globalOptions) load() (*config.Config, core.Options, error) {
	dir := o.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, core.Options{}, err
		}
		dir = wd
	}

	cfg, err := config.Load(dir, o.configPath)
	if err != nil {
		return nil, core.Options{}, err
	}

	return cfg, core.Options{
		Root:     dir,
		Features: cfg.Features,
	}, nil
}
