package clink

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/santikid/clink/pkg/core"
	"github.com/santikid/clink/pkg/output"
	"github.com/spf13/cobra"
)

func newLinkCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "link",
		Short:   MsgLinkShort,
		Long:    MsgLinkLong,
		Example: MsgLinkExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, coreOpts, err := opts.load()
			if err != nil {
				return err
			}
			coreOpts.Reporter = output.NewReporter(cmd.OutOrStdout(), opts.verbosity > 0)

			log.Info().Str("root", coreOpts.Root).Msg("Linking")
			return core.Run(coreOpts, core.Action{Kind: core.ActionLink})
		},
	}
}

func newUnlinkCmd(opts *globalOptions) *cobra.Command {
	var leaveOrphans bool

	cmd := &cobra.Command{
		Use:     "unlink",
		Short:   MsgUnlinkShort,
		Long:    MsgUnlinkLong,
		Example: MsgUnlinkExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, coreOpts, err := opts.load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("leave-orphans") {
				leaveOrphans = cfg.LeaveOrphans
			}
			coreOpts.Reporter = output.NewReporter(cmd.OutOrStdout(), opts.verbosity > 0)

			log.Info().
				Str("root", coreOpts.Root).
				Bool("leave_orphans", leaveOrphans).
				Msg("Unlinking")
			return core.Run(coreOpts, core.Action{Kind: core.ActionUnlink, LeaveOrphans: leaveOrphans})
		},
	}

	cmd.Flags().BoolVarP(&leaveOrphans, "leave-orphans", "l", false, MsgFlagLeaveOrphans)
	return cmd
}

func newStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Long:  MsgStatusLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, coreOpts, err := opts.load()
			if err != nil {
				return err
			}

			statuses, err := core.Status(coreOpts)
			if err != nil {
				return err
			}
			return output.RenderStatus(cmd.OutOrStdout(), statuses, opts.verbosity > 0)
		},
	}
}

func newFeaturesCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "features",
		Short:   MsgFeaturesShort,
		Long:    MsgFeaturesLong,
		Example: MsgFeaturesExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			_, coreOpts, err := opts.load()
			if err != nil {
				return err
			}

			list, err := core.Features(coreOpts)
			if err != nil {
				return err
			}
			return output.RenderFeatures(cmd.OutOrStdout(), list, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(output.FormatTable), MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, f := range output.Formats {
			if strings.HasPrefix(string(f), toComplete) {
				names = append(names, string(f))
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
