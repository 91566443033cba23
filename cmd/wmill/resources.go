package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rflorenc/windmill-client/pkg/client"
	"github.com/rflorenc/windmill-client/pkg/models"
)

func newResourcesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resources",
		Aliases: []string{"resource"},
		Short:   "Manage resources",
	}

	var resourceType string
	list := &cobra.Command{
		Use:   "list",
		Short: "List resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			var p client.ListResourcesParams
			if resourceType != "" {
				p.ResourceType = &resourceType
			}
			list, err := c.ListResources(cmd.Context(), ws, p)
			if err != nil {
				return err
			}
			return a.print(list, func(io.Writer) {
				a.table("PATH\tTYPE\tDESCRIPTION", func(w io.Writer) {
					for _, r := range list {
						fmt.Fprintf(w, "%s\t%s\t%s\n", r.Path, r.ResourceType, deref(r.Description))
					}
				})
			})
		},
	}
	list.Flags().StringVar(&resourceType, "type", "", "Only resources of this type")

	var valueOnly bool
	get := &cobra.Command{
		Use:   "get <path>",
		Short: "Show a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			if valueOnly {
				v, err := c.GetResourceValue(cmd.Context(), ws, args[0])
				if err != nil {
					return err
				}
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(v)
			}
			r, err := c.GetResource(cmd.Context(), ws, args[0])
			if err != nil {
				return err
			}
			return a.print(r, func(w io.Writer) {
				fmt.Fprintf(w, "Path:        %s\n", r.Path)
				fmt.Fprintf(w, "Type:        %s\n", r.ResourceType)
				fmt.Fprintf(w, "Description: %s\n", deref(r.Description))
			})
		},
	}
	get.Flags().BoolVar(&valueOnly, "value", false, "Print only the value as JSON")

	var (
		valueJSON, description string
		update                 bool
	)
	create := &cobra.Command{
		Use:   "create <path>",
		Short: "Create a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value any
			if err := json.Unmarshal([]byte(valueJSON), &value); err != nil {
				return fmt.Errorf("parsing --value: %w", err)
			}
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			body := models.CreateResource{Path: args[0], Value: value, ResourceType: resourceType}
			if description != "" {
				body.Description = &description
			}
			var p client.CreateResourceParams
			if update {
				p.UpdateIfExists = &update
			}
			path, err := c.CreateResource(cmd.Context(), ws, body, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Created resource %s\n", path)
			return nil
		},
	}
	create.Flags().StringVar(&resourceType, "type", "", "Resource type, for example postgresql")
	create.Flags().StringVar(&valueJSON, "value", "", "Value as JSON")
	create.Flags().StringVar(&description, "description", "", "Description")
	create.Flags().BoolVar(&update, "update", false, "Overwrite the resource if it exists")
	_ = create.MarkFlagRequired("type")
	_ = create.MarkFlagRequired("value")

	del := &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			msg, err := c.DeleteResource(cmd.Context(), ws, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, msg)
			return nil
		},
	}

	cmd.AddCommand(list, get, create, del)
	return cmd
}
