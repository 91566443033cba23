package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rflorenc/windmill-client/pkg/client"
	"github.com/rflorenc/windmill-client/pkg/models"
)

func newVariablesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "variables",
		Aliases: []string{"variable", "var"},
		Short:   "Manage variables and secrets",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List variables; secret values are not shown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			list, err := c.ListVariables(cmd.Context(), ws)
			if err != nil {
				return err
			}
			return a.print(list, func(io.Writer) {
				a.table("PATH\tSECRET\tVALUE", func(w io.Writer) {
					for _, v := range list {
						value := deref(v.Value)
						if v.IsSecret {
							value = "****"
						}
						fmt.Fprintf(w, "%s\t%t\t%s\n", v.Path, v.IsSecret, value)
					}
				})
			})
		},
	}

	get := &cobra.Command{
		Use:   "get <path>",
		Short: "Print the value of a variable, decrypting secrets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			if a.jsonOut {
				v, err := c.GetVariable(cmd.Context(), ws, args[0], client.GetVariableParams{})
				if err != nil {
					return err
				}
				return a.print(v, nil)
			}
			value, err := c.GetVariableValue(cmd.Context(), ws, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, value)
			return nil
		},
	}

	var (
		secret      bool
		description string
	)
	set := &cobra.Command{
		Use:   "set <path> <value>",
		Short: "Create a variable or update its value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			path, value := args[0], args[1]
			exists, err := c.ExistsVariable(cmd.Context(), ws, path)
			if err != nil {
				return err
			}
			if exists {
				edit := models.EditVariable{Value: &value}
				if cmd.Flags().Changed("secret") {
					edit.IsSecret = &secret
				}
				if description != "" {
					edit.Description = &description
				}
				if _, err := c.UpdateVariable(cmd.Context(), ws, path, edit, client.VariableWriteParams{}); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Updated variable %s\n", path)
				return nil
			}
			body := models.CreateVariable{Path: path, Value: value, IsSecret: secret, Description: description}
			if _, err := c.CreateVariable(cmd.Context(), ws, body, client.VariableWriteParams{}); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Created variable %s\n", path)
			return nil
		},
	}
	set.Flags().BoolVar(&secret, "secret", false, "Store the value encrypted")
	set.Flags().StringVar(&description, "description", "", "Description")

	del := &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete a variable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			msg, err := c.DeleteVariable(cmd.Context(), ws, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, msg)
			return nil
		},
	}

	cmd.AddCommand(list, get, set, del)
	return cmd
}
