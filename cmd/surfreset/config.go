package surfreset

import (
	"fmt"

	"github.com/arthur-debert/surfreset/pkg/config"
	"github.com/spf13/cobra"
)

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	var (
		format   string
		defaults bool
	)
	show := &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}
			if a.jsonOut {
				format = config.FormatJSON
			}
			out, err := config.Render(a.cfg, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	show.Flags().StringVarP(&format, "format", "f", config.FormatTOML, MsgFlagFormat)
	show.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)

	path := &cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			p := a.cfgFile
			if p == "" {
				p = config.DefaultFilePath()
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
		},
	}

	cmd.AddCommand(show, path)
	return cmd
}
