package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jask/skincare/internal/config"
	"github.com/jask/skincare/internal/routine"
	"github.com/jask/skincare/internal/service"
	"github.com/jask/skincare/internal/tui"
)

func newGenerateCmd(e *env) *cobra.Command {
	var (
		skin     string
		concerns []string
		save     bool
		name     string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a routine from a skin type and concerns",
		Example: `  skincare generate --skin oily --concern acne --concern dryness
  skincare generate --skin dry --concern sun-damage --save --name Morning`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := routine.ParseSkinType(skin)
			if err != nil {
				return err
			}
			cs, err := routine.ParseConcerns(concerns)
			if err != nil {
				return err
			}
			if len(cs) == 0 {
				return service.ErrIncompleteQuiz
			}
			steps := routine.Generate(st, cs)
			out := cmd.OutOrStdout()
			for _, line := range service.StepLines(steps) {
				fmt.Fprintln(out, line)
			}
			if !save {
				return nil
			}

			planner, closeStore, err := e.openPlanner()
			if err != nil {
				return err
			}
			defer closeStore()
			ctx := cmd.Context()
			_, r := planner.Save(ctx, planner.Load(ctx), name, steps)
			fmt.Fprintf(out, "\nsaved %q\n", r.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&skin, "skin", "s", "", "skin type (oily, dry, combination)")
	cmd.Flags().StringArrayVarP(&concerns, "concern", "c", nil, "skin concern, repeatable")
	cmd.Flags().BoolVar(&save, "save", false, "save the routine")
	cmd.Flags().StringVarP(&name, "name", "n", "", "name for the saved routine (default \"Routine N\")")
	_ = cmd.MarkFlagRequired("skin")
	return cmd
}

func newRoutinesCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "routines",
		Aliases: []string{"r"},
		Short:   "List, show, delete or export saved routines",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved routines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withSaved(cmd, func(_ *service.Planner, saved []routine.Routine) error {
				out := cmd.OutOrStdout()
				if len(saved) == 0 {
					fmt.Fprintln(out, "No saved routines")
					return nil
				}
				for i, r := range saved {
					fmt.Fprintf(out, "%d. %s (%d steps)\n", i+1, r.Name, len(r.Products))
				}
				return nil
			})
		},
	}

	var plain bool
	show := &cobra.Command{
		Use:   "show <n>",
		Short: "Show one saved routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withSaved(cmd, func(_ *service.Planner, saved []routine.Routine) error {
				i, err := parseIndex(args[0], len(saved))
				if err != nil {
					return err
				}
				return e.printRoutine(cmd.OutOrStdout(), saved[i], plain)
			})
		},
	}
	show.Flags().BoolVar(&plain, "plain", false, "print plain markdown instead of rendering it")

	del := &cobra.Command{
		Use:     "delete <n>",
		Aliases: []string{"rm"},
		Short:   "Delete one saved routine",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withSaved(cmd, func(p *service.Planner, saved []routine.Routine) error {
				i, err := parseIndex(args[0], len(saved))
				if err != nil {
					return err
				}
				if _, err := p.Delete(cmd.Context(), saved, i); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %q\n", saved[i].Name)
				return nil
			})
		},
	}

	var format string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write every saved routine to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withSaved(cmd, func(_ *service.Planner, saved []routine.Routine) error {
				return service.Export(cmd.OutOrStdout(), saved, format)
			})
		},
	}
	export.Flags().StringVarP(&format, "format", "f", service.FormatYAML, "yaml, json or markdown")

	cmd.AddCommand(list, show, del, export)
	return cmd
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the product table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, st := range routine.SkinTypes() {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s\n", st.Label())
				for _, c := range routine.Concerns() {
					steps, _ := routine.Lookup(st, c)
					fmt.Fprintf(out, "  %s\n", c.Label())
					for _, s := range steps {
						fmt.Fprintf(out, "    %s\n", s)
					}
				}
			}
			return nil
		},
	}
}

func newResetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove every saved routine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			planner, closeStore, err := e.openPlanner()
			if err != nil {
				return err
			}
			defer closeStore()
			if err := planner.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "saved routines cleared")
			return nil
		},
	}
}

func newConfigCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := e.resolvedConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := config.Save(e.cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}

func (e *env) withSaved(cmd *cobra.Command, fn func(*service.Planner, []routine.Routine) error) error {
	planner, closeStore, err := e.openPlanner()
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(planner, planner.Load(cmd.Context()))
}

func (e *env) printRoutine(w io.Writer, r routine.Routine, plain bool) error {
	md := service.Markdown(r)
	if plain || !e.cfg.UI.Markdown {
		_, err := io.WriteString(w, md)
		return err
	}
	renderer, err := tui.NewMarkdownRenderer(e.cfg.UI.GlamourStyle, 0)
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// parseIndex turns a 1-based position from `routines list` into a slice index.
func parseIndex(arg string, n int) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid routine number %q", arg)
	}
	if i < 1 || i > n {
		return 0, fmt.Errorf("%w: %d (have %d)", routine.ErrIndexOutOfRange, i, n)
	}
	return i - 1, nil
}
