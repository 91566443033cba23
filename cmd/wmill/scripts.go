package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rflorenc/windmill-client/internal/mirror"
	"github.com/rflorenc/windmill-client/pkg/client"
	"github.com/rflorenc/windmill-client/pkg/models"
)

func newScriptsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scripts",
		Short: "Manage scripts",
	}

	var pathStart string
	list := &cobra.Command{
		Use:   "list",
		Short: "List deployed scripts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			p := client.ListScriptsParams{}
			if pathStart != "" {
				p.PathStart = &pathStart
			}
			list, err := c.ListScripts(cmd.Context(), ws, p)
			if err != nil {
				return err
			}
			return a.print(list, func(io.Writer) {
				a.table("PATH\tLANGUAGE\tSUMMARY\tHASH", func(w io.Writer) {
					for _, s := range list {
						fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Path, s.Language, s.Summary, s.Hash)
					}
				})
			})
		},
	}
	list.Flags().StringVar(&pathStart, "path-start", "", "Only paths with this prefix")

	var contentOnly bool
	get := &cobra.Command{
		Use:   "get <path>",
		Short: "Show a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			if contentOnly {
				content, err := c.RawScriptByPath(cmd.Context(), ws, args[0])
				if err != nil {
					return err
				}
				_, err = io.WriteString(a.out, content)
				return err
			}
			s, err := c.GetScriptByPath(cmd.Context(), ws, args[0])
			if err != nil {
				return err
			}
			return a.print(s, func(w io.Writer) {
				fmt.Fprintf(w, "Path:     %s\n", s.Path)
				fmt.Fprintf(w, "Hash:     %s\n", s.Hash)
				fmt.Fprintf(w, "Language: %s\n", s.Language)
				fmt.Fprintf(w, "Summary:  %s\n", s.Summary)
				fmt.Fprintf(w, "Created:  %s by %s\n", s.CreatedAt.Format("2006-01-02 15:04:05"), s.CreatedBy)
				fmt.Fprintf(w, "Versions: %d\n", len(s.ParentHashes)+1)
			})
		},
	}
	get.Flags().BoolVar(&contentOnly, "content", false, "Print only the source")

	var (
		path, summary, lang, message string
	)
	push := &cobra.Command{
		Use:   "push <file>",
		Short: "Deploy a new version of a script from a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			body := models.NewScript{Path: path, Summary: summary, Content: string(content)}
			if lang != "" {
				if err := body.Language.UnmarshalText([]byte(lang)); err != nil {
					return err
				}
			} else {
				l, ok := mirror.LanguageOf(filepath.Base(args[0]))
				if !ok {
					return fmt.Errorf("cannot tell the language of %s: pass --language", args[0])
				}
				body.Language = l
			}
			if message != "" {
				body.DeploymentMessage = &message
			}
			hash, err := pushScript(cmd.Context(), c, ws, body)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Deployed %s (%s)\n", path, hash)
			return nil
		},
	}
	push.Flags().StringVar(&path, "path", "", "Windmill path, for example f/etl/extract")
	push.Flags().StringVar(&summary, "summary", "", "Summary")
	push.Flags().StringVar(&lang, "language", "", "Language, guessed from the file extension when empty")
	push.Flags().StringVarP(&message, "message", "m", "", "Deployment message")
	_ = push.MarkFlagRequired("path")

	var rf runFlags
	run := &cobra.Command{
		Use:   "run <path>",
		Short: "Run a script by path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), c, ws, rf, func(ctx context.Context, in models.ScriptArgs, p client.RunParams) (uuid.UUID, error) {
				return c.RunScriptByPath(ctx, ws, args[0], in, p)
			})
		},
	}
	rf.register(run)

	cmd.AddCommand(list, get, push, run)
	return cmd
}

// pushScript deploys body as a new version, chaining it to the current head
// when the path already exists.
func pushScript(ctx context.Context, c *client.Client, ws string, body models.NewScript) (string, error) {
	exists, err := c.ExistsScriptByPath(ctx, ws, body.Path)
	if err != nil {
		return "", err
	}
	if exists {
		head, err := c.GetScriptByPath(ctx, ws, body.Path)
		if err != nil {
			return "", err
		}
		body.ParentHash = &head.Hash
	}
	return c.CreateScript(ctx, ws, body)
}

// run starts a job and, with --wait, prints its result.
func (a *app) run(ctx context.Context, c *client.Client, ws string, rf runFlags, start func(context.Context, models.ScriptArgs, client.RunParams) (uuid.UUID, error)) error {
	in, err := parseArgs(rf.args, rf.argsJSON)
	if err != nil {
		return err
	}
	var p client.RunParams
	if rf.tag != "" {
		p.Tag = &rf.tag
	}
	if rf.delay > 0 {
		p.ScheduledInSecs = &rf.delay
	}
	id, err := start(ctx, in, p)
	if err != nil {
		return err
	}
	a.log.Info("job started", "id", id)
	if !rf.wait {
		fmt.Fprintln(a.out, id)
		return nil
	}
	result, err := c.WaitJob(ctx, ws, id, client.WaitOptions{Timeout: rf.timeout})
	var failed *client.JobFailedError
	if errors.As(err, &failed) {
		fmt.Fprintf(a.out, "%s\n", failed.Result)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\n", result)
	return nil
}
