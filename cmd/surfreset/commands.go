package surfreset

import (
	"context"
	"embed"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/surfreset/internal/version"
	"github.com/arthur-debert/surfreset/pkg/cobrax/topics"
	"github.com/arthur-debert/surfreset/pkg/config"
	"github.com/arthur-debert/surfreset/pkg/core"
	"github.com/arthur-debert/surfreset/pkg/filesystem"
	"github.com/arthur-debert/surfreset/pkg/logging"
	"github.com/arthur-debert/surfreset/pkg/onboarding"
	"github.com/arthur-debert/surfreset/pkg/output"
	"github.com/arthur-debert/surfreset/pkg/paths"
	"github.com/arthur-debert/surfreset/pkg/process"
	"github.com/arthur-debert/surfreset/pkg/types"
	"github.com/arthur-debert/surfreset/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicsFS embed.FS

// ErrOperationFailed is returned after a failed result has been rendered,
// so main only needs to set the exit code
var ErrOperationFailed = stderrors.New("operation failed")

// Automation builds the onboarding window and keyboard drivers
type Automation func(cfg *config.Config) (onboarding.Windows, onboarding.Keyboard)

// Options carries the collaborators main injects. Zero values select the
// real system.
type Options struct {
	Automation Automation
	FS         filesystem.FS
	Runner     process.Runner
	Env        *paths.Env
	Sleep      utils.Sleeper
}

// app is the state shared by all commands of one invocation
type app struct {
	opts Options

	verbosity int
	cfgFile   string
	jsonOut   bool
	noColor   bool
	overrides []string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd(opts Options) *cobra.Command {
	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:     "surfreset",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&a.jsonOut, "json", false, MsgFlagJSON)
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringArrayVar(&a.overrides, "set", nil, MsgFlagSet)

	rootCmd.AddGroup(&cobra.Group{ID: "reset", Title: "RESET:"})
	rootCmd.AddGroup(&cobra.Group{ID: "app", Title: "APPLICATION:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newResetCmd())
	rootCmd.AddCommand(a.newRotateCmd())
	rootCmd.AddCommand(a.newAutoLoginCmd())
	rootCmd.AddCommand(a.newCloseCmd())
	rootCmd.AddCommand(a.newLaunchCmd())
	rootCmd.AddCommand(a.newOnboardCmd())
	rootCmd.AddCommand(a.newPathsCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	sub, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		err = topics.InitializeWithOptions(rootCmd, sub, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Debug().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func (a *app) loadConfig() error {
	overrides, err := config.ParseOverrides(a.overrides)
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	cfg, err := config.Load(config.LoadOptions{File: a.cfgFile, Overrides: overrides})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg
	return nil
}

// manager wires a core.Manager from the loaded configuration
func (a *app) manager() *core.Manager {
	env := paths.EnvFromOS()
	if a.opts.Env != nil {
		env = *a.opts.Env
	}

	deps := core.Deps{
		FS:     a.opts.FS,
		Runner: a.opts.Runner,
		Sleep:  a.opts.Sleep,
	}
	if deps.FS == nil {
		deps.FS = filesystem.NewOS()
	}
	if deps.Runner == nil {
		deps.Runner = process.NewExecRunner()
	}
	if a.opts.Automation != nil {
		deps.Windows, deps.Keyboard = a.opts.Automation(a.cfg)
	}

	return core.NewManager(*a.cfg, env, deps)
}

// format resolves the output format from the flags and the output stream
func (a *app) format(cmd *cobra.Command) output.Format {
	switch {
	case a.jsonOut:
		return output.FormatJSON
	case a.noColor:
		return output.FormatText
	}
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return output.DetectFormat(f)
	}
	return output.FormatText
}

// runOperation executes op and renders its result
func (a *app) runOperation(cmd *cobra.Command, title string, op func(ctx context.Context, m *core.Manager) types.Result) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result := op(ctx, a.manager())

	renderer := output.NewRenderer(cmd.OutOrStdout(), a.format(cmd))
	if err := renderer.Render(title, result); err != nil {
		return err
	}
	if !result.Success {
		log.Debug().Str("error", result.ErrorMessage).Msgf(MsgErrFailed, title)
		return ErrOperationFailed
	}
	return nil
}
