package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rflorenc/windmill-client/pkg/client"
	"github.com/rflorenc/windmill-client/pkg/models"
)

// followInterval is the poll period of `jobs logs --follow`.
var followInterval = 500 * time.Millisecond

func newJobsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Inspect and control jobs",
	}

	var (
		scriptPath string
		success    string
		running    bool
		kinds      []string
		page       int64
		perPage    int64
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List queued and completed jobs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			var p client.ListJobsParams
			if scriptPath != "" {
				p.ScriptPathExact = &scriptPath
			}
			switch success {
			case "":
			case "true", "false":
				ok := success == "true"
				p.Success = &ok
			default:
				return fmt.Errorf("--success must be true or false, got %q", success)
			}
			if running {
				p.Running = &running
			}
			for _, k := range kinds {
				var kind models.JobKind
				if err := kind.UnmarshalText([]byte(k)); err != nil {
					return err
				}
				p.JobKinds = append(p.JobKinds, kind)
			}
			if page > 0 {
				p.Page = &page
			}
			if perPage > 0 {
				p.PerPage = &perPage
			}
			jobs, err := c.ListJobs(cmd.Context(), ws, p)
			if err != nil {
				return err
			}
			return a.print(jobs, func(io.Writer) {
				a.table("ID\tKIND\tPATH\tSTATE\tCREATED", func(w io.Writer) {
					for _, j := range jobs {
						r := describeJob(j)
						fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", j.ID(), r.kind, r.path, r.state, r.created.Format("2006-01-02 15:04:05"))
					}
				})
			})
		},
	}
	list.Flags().StringVar(&scriptPath, "script-path", "", "Only jobs of this script or flow path")
	list.Flags().StringVar(&success, "success", "", "Only completed jobs with this outcome (true or false)")
	list.Flags().BoolVar(&running, "running", false, "Only running jobs")
	list.Flags().StringSliceVar(&kinds, "kind", nil, "Only these job kinds, for example script,flow")
	list.Flags().Int64Var(&page, "page", 0, "Page number, starting at 1")
	list.Flags().Int64Var(&perPage, "per-page", 0, "Jobs per page")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a job",
		Args:  cobra.ExactArgs(1),
		RunE: withJob(a, func(ctx context.Context, c *client.Client, ws string, id uuid.UUID) error {
			noLogs := true
			j, err := c.GetJob(ctx, ws, id, &noLogs)
			if err != nil {
				return err
			}
			return a.print(j, func(w io.Writer) {
				r := describeJob(j)
				fmt.Fprintf(w, "ID:      %s\n", j.ID())
				fmt.Fprintf(w, "Kind:    %s\n", r.kind)
				fmt.Fprintf(w, "Path:    %s\n", r.path)
				fmt.Fprintf(w, "State:   %s\n", r.state)
				fmt.Fprintf(w, "Created: %s\n", r.created.Format(time.RFC3339))
				if j.Completed != nil {
					fmt.Fprintf(w, "Took:    %s\n", time.Duration(j.Completed.DurationMs)*time.Millisecond)
				}
			})
		}),
	}

	var follow bool
	logs := &cobra.Command{
		Use:   "logs <id>",
		Short: "Print the logs of a job",
		Args:  cobra.ExactArgs(1),
		RunE: withJob(a, func(ctx context.Context, c *client.Client, ws string, id uuid.UUID) error {
			if follow {
				return followLogs(ctx, c, ws, id, a.out)
			}
			text, err := c.GetJobLogs(ctx, ws, id)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, text)
			return err
		}),
	}
	logs.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing new lines until the job completes")

	var reason string
	cancel := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a queued or running job",
		Args:  cobra.ExactArgs(1),
		RunE: withJob(a, func(ctx context.Context, c *client.Client, ws string, id uuid.UUID) error {
			body := models.CancelJobRequest{}
			if reason != "" {
				body.Reason = &reason
			}
			msg, err := c.CancelQueuedJob(ctx, ws, id, body)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, msg)
			return nil
		}),
	}
	cancel.Flags().StringVar(&reason, "reason", "", "Reason recorded on the job")

	var (
		timeout       time.Duration
		requireResult bool
	)
	wait := &cobra.Command{
		Use:   "wait <id>",
		Short: "Wait for a job and print its result",
		Long:  "Poll the job until it completes. With --timeout the job is cancelled once the deadline passes.",
		Args:  cobra.ExactArgs(1),
		RunE: withJob(a, func(ctx context.Context, c *client.Client, ws string, id uuid.UUID) error {
			res, err := c.WaitJob(ctx, ws, id, client.WaitOptions{Timeout: timeout, RequireResult: requireResult})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "%s\n", res)
			return err
		}),
	}
	wait.Flags().DurationVar(&timeout, "timeout", 0, "Cancel the job after this long")
	wait.Flags().BoolVar(&requireResult, "require-result", false, "Fail when the job returns null")

	result := &cobra.Command{
		Use:   "result <id>",
		Short: "Print the result of a completed job",
		Args:  cobra.ExactArgs(1),
		RunE: withJob(a, func(ctx context.Context, c *client.Client, ws string, id uuid.UUID) error {
			res, err := c.GetCompletedJobResult(ctx, ws, id)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "%s\n", res)
			return err
		}),
	}

	cmd.AddCommand(list, get, logs, cancel, wait, result)
	return cmd
}

// withJob parses the job id argument and resolves the workspace client.
func withJob(a *app, fn func(context.Context, *client.Client, string, uuid.UUID) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("job id %q: %w", args[0], err)
		}
		c, ws, err := a.workspaceClient()
		if err != nil {
			return err
		}
		return fn(cmd.Context(), c, ws, id)
	}
}

type jobRow struct {
	kind    models.JobKind
	path    string
	state   string
	created time.Time
}

func describeJob(j models.Job) jobRow {
	switch {
	case j.Completed != nil:
		cj := j.Completed
		r := jobRow{kind: cj.JobKind, path: deref(cj.ScriptPath), created: cj.CreatedAt, state: "success"}
		switch {
		case cj.Canceled:
			r.state = "canceled"
		case !cj.Success:
			r.state = "failure"
		}
		return r
	case j.Queued != nil:
		qj := j.Queued
		r := jobRow{kind: qj.JobKind, path: deref(qj.ScriptPath), created: deref(qj.CreatedAt), state: "queued"}
		if qj.Running {
			r.state = "running"
		}
		return r
	}
	return jobRow{}
}

// followLogs streams new log lines through getupdate until the job
// completes.
func followLogs(ctx context.Context, c *client.Client, ws string, id uuid.UUID, out io.Writer) error {
	var offset int64
	ticker := time.NewTicker(followInterval)
	defer ticker.Stop()
	for {
		u, err := c.GetJobUpdates(ctx, ws, id, client.GetJobUpdatesParams{LogOffset: &offset})
		if err != nil {
			return err
		}
		if u.NewLogs != nil {
			if _, err := io.WriteString(out, *u.NewLogs); err != nil {
				return err
			}
		}
		if u.LogOffset != nil {
			offset = *u.LogOffset
		}
		if deref(u.Completed) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
