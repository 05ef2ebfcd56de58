package surfreset

import (
	"context"
	"fmt"

	"github.com/arthur-debert/surfreset/internal/version"
	"github.com/arthur-debert/surfreset/pkg/core"
	"github.com/arthur-debert/surfreset/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) newCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "close",
		Short:   MsgCloseShort,
		GroupID: "app",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOperation(cmd, MsgTitleClose, func(ctx context.Context, m *core.Manager) types.Result {
				return m.Close(ctx)
			})
		},
	}
}

func (a *app) newLaunchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "launch",
		Short:   MsgLaunchShort,
		GroupID: "app",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOperation(cmd, MsgTitleLaunch, func(ctx context.Context, m *core.Manager) types.Result {
				return m.Launch(ctx)
			})
		},
	}
}

func (a *app) newOnboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "onboard",
		Short:   MsgOnboardShort,
		Long:    MsgOnboardLong,
		GroupID: "app",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOperation(cmd, MsgTitleOnboard, func(ctx context.Context, m *core.Manager) types.Result {
				return m.Onboard(ctx)
			})
		},
	}
}

func (a *app) newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "paths",
		Short:   MsgPathsShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOperation(cmd, MsgTitlePaths, func(_ context.Context, m *core.Manager) types.Result {
				return m.DetectPaths()
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}
