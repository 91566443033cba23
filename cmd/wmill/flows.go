package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rflorenc/windmill-client/pkg/client"
	"github.com/rflorenc/windmill-client/pkg/models"
)

func newFlowsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flows",
		Short: "Manage flows",
	}

	var (
		pathStart    string
		showArchived bool
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List flows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			p := client.ListFlowsParams{}
			if pathStart != "" {
				p.PathStart = &pathStart
			}
			if showArchived {
				p.ShowArchived = &showArchived
			}
			list, err := c.ListFlows(cmd.Context(), ws, p)
			if err != nil {
				return err
			}
			return a.print(list, func(io.Writer) {
				a.table("PATH\tSUMMARY\tEDITED BY\tEDITED AT", func(w io.Writer) {
					for _, f := range list {
						fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Path, f.Summary, f.EditedBy, f.EditedAt.Format("2006-01-02 15:04"))
					}
				})
			})
		},
	}
	list.Flags().StringVar(&pathStart, "path-start", "", "Only paths with this prefix")
	list.Flags().BoolVar(&showArchived, "archived", false, "Include archived flows")

	get := &cobra.Command{
		Use:   "get <path>",
		Short: "Show a flow definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			f, err := c.GetFlowByPath(cmd.Context(), ws, args[0])
			if err != nil {
				return err
			}
			return a.print(f, func(w io.Writer) {
				fmt.Fprintf(w, "Path:    %s\n", f.Path)
				fmt.Fprintf(w, "Summary: %s\n", f.Summary)
				fmt.Fprintf(w, "Edited:  %s by %s\n", f.EditedAt.Format("2006-01-02 15:04:05"), f.EditedBy)
				fmt.Fprintf(w, "Modules: %d\n", len(f.Value.Modules))
			})
		},
	}

	var path string
	push := &cobra.Command{
		Use:   "push <file.yaml>",
		Short: "Create or update a flow from a YAML definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			var body models.CreateFlowBody
			if err := readYAML(args[0], &body); err != nil {
				return err
			}
			if path != "" {
				body.Path = path
			}
			if body.Path == "" {
				return fmt.Errorf("%s has no path: pass --path", args[0])
			}
			exists, err := c.ExistsFlowByPath(cmd.Context(), ws, body.Path)
			if err != nil {
				return err
			}
			if exists {
				if _, err := c.UpdateFlow(cmd.Context(), ws, body.Path, body); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Updated flow %s\n", body.Path)
				return nil
			}
			if _, err := c.CreateFlow(cmd.Context(), ws, body); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Created flow %s\n", body.Path)
			return nil
		},
	}
	push.Flags().StringVar(&path, "path", "", "Windmill path, overrides the path in the file")

	var rf runFlags
	run := &cobra.Command{
		Use:   "run <path>",
		Short: "Run a flow by path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), c, ws, rf, func(ctx context.Context, in models.ScriptArgs, p client.RunParams) (uuid.UUID, error) {
				return c.RunFlowByPath(ctx, ws, args[0], in, p)
			})
		},
	}
	rf.register(run)

	cmd.AddCommand(list, get, push, run)
	return cmd
}
