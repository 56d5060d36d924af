package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylepreview/internal/application/preview"
	"github.com/alexisbeaulieu97/stylepreview/internal/tui"
)

type renderOptions struct {
	StylePath      string
	Part           string
	All            bool
	Output         string
	NonInteractive bool
}

const defaultOutputDir = "previews"

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render part background previews to PNG files",
		Example: `  stylepreview render -c aero.yaml --part BUTTON/PUSHBUTTON -o button.png
  stylepreview render -c aero.yaml --all -o previews/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.NonInteractive = !isTerminal(cmd.OutOrStdout())
			if err := validateRenderOptions(opts); err != nil {
				return err
			}
			return runRender(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.StylePath, "config", "c", "", "Path to the style document")
	cmd.Flags().StringVar(&opts.Part, "part", "", "Name of the part to render")
	cmd.Flags().BoolVar(&opts.All, "all", false, "Render every part of the style")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file (single part) or directory (--all)")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func validateRenderOptions(opts renderOptions) error {
	if err := validateStylePath(opts.StylePath); err != nil {
		return err
	}
	part := strings.TrimSpace(opts.Part)
	if part == "" && !opts.All {
		return fmt.Errorf("either --part or --all is required")
	}
	if part != "" && opts.All {
		return fmt.Errorf("--part and --all cannot be combined")
	}
	return nil
}

func runRender(cmd *cobra.Command, root *rootFlags, opts renderOptions) error {
	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	session, err := app.service.Open(app.ctx, opts.StylePath)
	if err != nil {
		return newCommandError("render", "loading style document", err, suggestionFor(err))
	}

	if opts.All {
		return renderAll(cmd, app, session, opts)
	}
	return renderOne(cmd, app, session, opts)
}

func renderOne(cmd *cobra.Command, app *appContext, session *preview.Session, opts renderOptions) error {
	part := strings.TrimSpace(opts.Part)
	img, err := session.RenderPart(app.ctx, part)
	if err != nil {
		return newCommandError("render", fmt.Sprintf("rendering part %q", part), err, suggestionFor(err))
	}

	output := opts.Output
	if output == "" {
		output = preview.OutputName(part)
	}
	if err := preview.SavePNG(img, output); err != nil {
		return newCommandError("render", "writing preview", err, "Check that the output location is writable.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s → %s\n", part, output)
	return nil
}

func renderAll(cmd *cobra.Command, app *appContext, session *preview.Session, opts renderOptions) error {
	outDir := opts.Output
	if outDir == "" {
		outDir = defaultOutputDir
	}

	names := make([]string, 0, len(session.Style.Parts))
	for _, p := range session.Style.Parts {
		names = append(names, p.Name)
	}

	ctx, cancel := context.WithCancel(app.ctx)
	defer cancel()

	state := tui.NewModel(session.Style.Name, names, opts.NonInteractive)
	interactive := !opts.NonInteractive

	var program *tea.Program
	var programErr error
	done := make(chan struct{})

	if interactive {
		program = tea.NewProgram(state, tea.WithOutput(cmd.OutOrStdout()))
		go func() {
			final, err := program.Run()
			programErr = err
			if m, ok := final.(tui.Model); ok && m.Cancelled() {
				cancel()
			}
			close(done)
		}()
	}

	start := time.Now()
	results, renderErr := session.RenderAll(ctx, outDir, func(ev preview.Event) {
		dispatchTuiMessage(interactive, program, &state, eventMessage(ev))
	})
	dispatchTuiMessage(interactive, program, &state, tui.BatchDoneMsg{Elapsed: time.Since(start)})

	if interactive {
		<-done
		if programErr != nil {
			return programErr
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), state.View())
	}

	if renderErr != nil {
		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
			}
		}
		return newCommandError("render", fmt.Sprintf("%d of %d parts failed", failed, len(names)), renderErr, suggestionFor(renderErr))
	}

	app.logger.Info(app.ctx, "previews written", "dir", filepath.Clean(outDir), "parts", len(results))
	return nil
}

func eventMessage(ev preview.Event) tea.Msg {
	if ev.Status == preview.StatusRunning {
		return tui.PartStartMsg{Index: ev.Index, Part: ev.Part}
	}
	return tui.PartDoneMsg{
		Index:    ev.Index,
		Part:     ev.Part,
		Output:   ev.Output,
		Err:      ev.Err,
		Duration: ev.Duration,
	}
}

func dispatchTuiMessage(interactive bool, program *tea.Program, state *tui.Model, msg tea.Msg) {
	if interactive {
		if program != nil {
			program.Send(msg)
		}
		return
	}

	updated, _ := state.Update(msg)
	if m, ok := updated.(tui.Model); ok {
		*state = m
	}
}
