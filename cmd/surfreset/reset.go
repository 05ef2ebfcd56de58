package surfreset

import (
	"context"

	"github.com/arthur-debert/surfreset/pkg/core"
	"github.com/arthur-debert/surfreset/pkg/types"
	"github.com/spf13/cobra"
)

func (a *app) newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "reset",
		Short:   MsgResetShort,
		Long:    MsgResetLong,
		Example: MsgResetExample,
		GroupID: "reset",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOperation(cmd, MsgTitleReset, func(ctx context.Context, m *core.Manager) types.Result {
				return m.FullReset(ctx)
			})
		},
	}
}

func (a *app) newRotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rotate-ids",
		Short:   MsgRotateShort,
		Long:    MsgRotateLong,
		GroupID: "reset",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOperation(cmd, MsgTitleRotate, func(ctx context.Context, m *core.Manager) types.Result {
				return m.RotateIdentifiers(ctx)
			})
		},
	}
}

func (a *app) newAutoLoginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:     "auto-login",
		Short:   MsgAutoLoginShort,
		Long:    MsgAutoLoginLong,
		Example: MsgAutoLoginExample,
		GroupID: "reset",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOperation(cmd, MsgTitleAutoLogin, func(ctx context.Context, m *core.Manager) types.Result {
				return m.AutoLogin(ctx, email)
			})
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", MsgFlagEmail)
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
