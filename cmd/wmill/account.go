package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rflorenc/windmill-client/pkg/client"
	"github.com/rflorenc/windmill-client/pkg/models"
)

func newVersionCmd(a *app) *cobra.Command {
	var clientOnly bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := struct {
				Client     string `json:"client"`
				APIVersion string `json:"api_version"`
				Server     string `json:"server,omitempty"`
				Compare    int    `json:"compare"`
			}{Client: version, APIVersion: client.APIVersion}
			if !clientOnly {
				c, _, err := a.client()
				if err != nil {
					return err
				}
				sv, cmp, err := c.CheckCompatibility(cmd.Context())
				if err != nil {
					return err
				}
				out.Server, out.Compare = sv.String(), cmp
			}
			return a.print(out, func(w io.Writer) {
				fmt.Fprintf(w, "wmill %s (commit: %s, built: %s)\n", version, commit, date)
				fmt.Fprintf(w, "API version: %s\n", client.APIVersion)
				if out.Server == "" {
					return
				}
				fmt.Fprintf(w, "Server: %s\n", out.Server)
				switch out.Compare {
				case -1:
					fmt.Fprintln(w, "Warning: server is older than this client, some calls may fail")
				case 1:
					fmt.Fprintln(w, "Note: server is newer than this client")
				}
			})
		},
	}
	cmd.Flags().BoolVar(&clientOnly, "client-only", false, "Do not contact the server")
	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password and store the token",
		Long:  "Exchange email and password for a token and save it in the selected profile. The password is read from the terminal, or from the first line of stdin when it is not a terminal.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return errors.New("--email is required")
			}
			f, p, err := a.resolve()
			if err != nil {
				return err
			}
			password, err := readPassword(cmd)
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
			c, _, err := a.client()
			if err != nil {
				return err
			}
			token, err := c.Login(cmd.Context(), models.Login{Email: email, Password: password})
			if err != nil {
				return err
			}

			p.Token = token
			if p.Name == "" {
				p.Name = "default"
			}
			f.Upsert(p)
			if f.Active == "" {
				f.Active = p.Name
			}
			if err := f.Save(a.configPath); err != nil {
				return err
			}
			a.log.Debug("saved token", "profile", p.Name, "config", a.configPath)
			fmt.Fprintf(a.out, "Logged in as %s (profile %s)\n", email, p.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	return cmd
}

func readPassword(cmd *cobra.Command) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		return string(b), err
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		Long:  "Show the current user, with workspace membership when a workspace is selected",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, p, err := a.client()
			if err != nil {
				return err
			}
			if p.Workspace == "" {
				u, err := c.GlobalWhoami(cmd.Context())
				if err != nil {
					return err
				}
				return a.print(u, func(w io.Writer) {
					fmt.Fprintf(w, "%s (%s)", u.Email, u.LoginType)
					if u.SuperAdmin {
						fmt.Fprint(w, " superadmin")
					}
					fmt.Fprintln(w)
				})
			}
			u, err := c.Whoami(cmd.Context(), p.Workspace)
			if err != nil {
				return err
			}
			return a.print(u, func(w io.Writer) {
				role := "developer"
				switch {
				case u.IsAdmin:
					role = "admin"
				case u.Operator:
					role = "operator"
				}
				fmt.Fprintf(w, "%s as %s in %s (%s)\n", u.Email, u.Username, p.Workspace, role)
			})
		},
	}
}

func newWorkspacesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workspaces",
		Aliases: []string{"ws"},
		Short:   "Manage workspaces",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List workspaces visible to the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.client()
			if err != nil {
				return err
			}
			list, err := c.ListWorkspaces(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(list, func(io.Writer) {
				a.table("ID\tNAME\tOWNER", func(w io.Writer) {
					for _, ws := range list {
						fmt.Fprintf(w, "%s\t%s\t%s\n", ws.ID, ws.Name, ws.Owner)
					}
				})
			})
		},
	})

	var name string
	create := &cobra.Command{
		Use:   "create <id>",
		Short: "Create a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.client()
			if err != nil {
				return err
			}
			if name == "" {
				name = args[0]
			}
			id, err := c.CreateWorkspace(cmd.Context(), models.CreateWorkspace{ID: args[0], Name: name})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Created workspace %s\n", id)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "Display name, defaults to the id")
	cmd.AddCommand(create)
	return cmd
}
