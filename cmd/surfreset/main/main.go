package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/surfreset/cmd/surfreset"
	"github.com/arthur-debert/surfreset/pkg/config"
	"github.com/arthur-debert/surfreset/pkg/desktop"
	"github.com/arthur-debert/surfreset/pkg/onboarding"
	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := surfreset.NewRootCmd(surfreset.Options{
		Automation: func(cfg *config.Config) (onboarding.Windows, onboarding.Keyboard) {
			return desktop.NewWindows(cfg.Target.Image), desktop.NewKeyboard()
		},
	})

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// The result has already been printed
		if !stderrors.Is(err, surfreset.ErrOperationFailed) {
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		stop()
		os.Exit(1)
	}
}
