package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/kinetic/internal/config"
	"github.com/alexisbeaulieu97/kinetic/internal/logger"
	"github.com/alexisbeaulieu97/kinetic/internal/tui"
	"github.com/alexisbeaulieu97/kinetic/internal/ui/components"
)

type galleryOptions struct {
	configPath string
	theme      string
	static     bool
	width      int
}

func (o *galleryOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.configPath, "config", "c", "", "Gallery configuration file (defaults to the built-in gallery)")
	cmd.Flags().StringVar(&o.theme, "theme", "", "Theme override (light or dark)")
	cmd.Flags().BoolVar(&o.static, "static", false, "Print a single frame instead of running interactively")
	cmd.Flags().IntVar(&o.width, "width", 0, "Render width used for static output")
}

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	opts := &galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Launch the interactive component gallery",
		Long: `Launch the interactive component gallery. Buttons and radios respond to the
keyboard and the mouse. When output is not a terminal, or --static is given,
a single frame is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, flags, opts)
		},
	}
	opts.bind(cmd)

	return cmd
}

func runGallery(cmd *cobra.Command, flags *rootFlags, opts *galleryOptions) error {
	log, err := newLogger(cmd, flags)
	if err != nil {
		return err
	}
	log = log.WithComponent("command.gallery")

	cfg, err := loadGalleryConfig(opts.configPath)
	if err != nil {
		return err
	}

	modelOpts := tui.Options{Logger: log, Width: opts.width}
	if strings.TrimSpace(opts.theme) != "" {
		theme, ok := components.ThemeByName(opts.theme)
		if !ok {
			return newCommandError("launch gallery", "selecting theme",
				fmt.Errorf("unknown theme %q", opts.theme), "Use --theme light or --theme dark.")
		}
		modelOpts.Theme = theme
	}

	model, err := tui.NewModel(cfg, modelOpts)
	if err != nil {
		return newCommandError("launch gallery", "building controls", err, "Check the button and radio settings in the gallery file.")
	}
	defer model.Close()

	if opts.static || !isTerminal(cmd.OutOrStdout()) {
		log.Debug("rendering static frame", map[string]any{"static": opts.static})
		fmt.Fprintln(cmd.OutOrStdout(), model.View())
		return nil
	}

	return runProgram(cmd, model, log)
}

func loadGalleryConfig(path string) (*config.Config, error) {
	if strings.TrimSpace(path) == "" {
		return config.Default(), nil
	}
	cfg, err := config.ParseConfig(path)
	if err != nil {
		return nil, newCommandError("launch gallery", fmt.Sprintf("loading %s", path), err, "Fix the reported field or run without --config to use the built-in gallery.")
	}
	return cfg, nil
}

func runProgram(cmd *cobra.Command, model tui.Model, log *logger.Logger) error {
	log.Info("gallery started")

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		log.Error(err, "gallery execution failed")
		return fmt.Errorf("failed to run gallery: %w", err)
	}

	log.Info("gallery closed")
	return nil
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
