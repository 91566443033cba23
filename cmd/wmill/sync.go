package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rflorenc/windmill-client/internal/mirror"
)

func newSyncCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Mirror a workspace to a directory and back",
	}

	var exclude []string
	pull := &cobra.Command{
		Use:   "pull <dir>",
		Short: "Write every script, flow, resource, variable and schedule to dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.syncOptions(exclude)
			if err != nil {
				return err
			}
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			res, err := mirror.Pull(cmd.Context(), c, ws, args[0], opts)
			if err != nil {
				return err
			}
			return a.print(res, func(w io.Writer) { fmt.Fprintf(w, "Pulled %s: %s\n", ws, res) })
		},
	}
	pull.Flags().StringArrayVar(&exclude, "exclude", nil, "Skip an object, as kind:path (for example variables:f/etl/token)")

	var dryRun bool
	push := &cobra.Command{
		Use:   "push <dir>",
		Short: "Create or update the workspace from dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.syncOptions(exclude)
			if err != nil {
				return err
			}
			opts.DryRun = dryRun
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			plan, res, err := mirror.Push(cmd.Context(), c, ws, args[0], opts)
			if err != nil {
				return err
			}
			for _, w := range plan.Warnings {
				a.log.Warn(w)
			}
			if dryRun {
				return a.print(plan, func(w io.Writer) {
					a.table("ACTION\tKIND\tPATH", func(w io.Writer) {
						for _, kind := range mirror.Kinds {
							for _, it := range plan.Items[kind] {
								fmt.Fprintf(w, "%s\t%s\t%s\n", it.Action, it.Kind, it.Path)
							}
						}
					})
				})
			}
			if err := a.print(res, func(w io.Writer) { fmt.Fprintf(w, "Pushed to %s: %s\n", ws, res) }); err != nil {
				return err
			}
			if res.Failed > 0 {
				return fmt.Errorf("%d objects failed to push", res.Failed)
			}
			return nil
		},
	}
	push.Flags().StringArrayVar(&exclude, "exclude", nil, "Skip an object, as kind:path")
	push.Flags().BoolVar(&dryRun, "dry-run", false, "Only print what would change")

	cmd.AddCommand(pull, push)
	return cmd
}

// syncOptions parses --exclude values and routes progress lines to the
// debug log.
func (a *app) syncOptions(exclude []string) (mirror.Options, error) {
	opts := mirror.Options{
		Exclude: make(map[mirror.Kind][]string),
		Logger:  func(line string) { a.log.Debug(strings.TrimSpace(line)) },
	}
	for _, e := range exclude {
		kind, path, ok := strings.Cut(e, ":")
		if !ok || path == "" || !knownKind(mirror.Kind(kind)) {
			return opts, fmt.Errorf("exclude %q: want kind:path with kind one of %v", e, mirror.Kinds)
		}
		opts.Exclude[mirror.Kind(kind)] = append(opts.Exclude[mirror.Kind(kind)], path)
	}
	return opts, nil
}

func knownKind(k mirror.Kind) bool {
	for _, kind := range mirror.Kinds {
		if kind == k {
			return true
		}
	}
	return false
}
