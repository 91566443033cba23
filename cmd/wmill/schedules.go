package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/rflorenc/windmill-client/internal/cronpreview"
	"github.com/rflorenc/windmill-client/pkg/client"
	"github.com/rflorenc/windmill-client/pkg/models"
)

func newSchedulesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedules",
		Aliases: []string{"schedule"},
		Short:   "Manage cron schedules",
	}

	var runnable string
	list := &cobra.Command{
		Use:   "list",
		Short: "List schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			var p client.ListSchedulesParams
			if runnable != "" {
				p.Path = &runnable
			}
			list, err := c.ListSchedules(cmd.Context(), ws, p)
			if err != nil {
				return err
			}
			return a.print(list, func(io.Writer) {
				a.table("PATH\tSCHEDULE\tTIMEZONE\tRUNNABLE\tENABLED", func(w io.Writer) {
					for _, s := range list {
						fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", s.Path, s.Schedule, s.Timezone, runnableName(s.ScriptPath, s.IsFlow), s.Enabled)
					}
				})
			})
		},
	}
	list.Flags().StringVar(&runnable, "runnable", "", "Only schedules of this script or flow path")

	get := &cobra.Command{
		Use:   "get <path>",
		Short: "Show a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			s, err := c.GetSchedule(cmd.Context(), ws, args[0])
			if err != nil {
				return err
			}
			return a.print(s, func(w io.Writer) {
				fmt.Fprintf(w, "Path:     %s\n", s.Path)
				fmt.Fprintf(w, "Schedule: %s (%s)\n", s.Schedule, s.Timezone)
				fmt.Fprintf(w, "Runs:     %s\n", runnableName(s.ScriptPath, s.IsFlow))
				fmt.Fprintf(w, "Enabled:  %t\n", s.Enabled)
				fmt.Fprintf(w, "Edited:   %s by %s\n", s.EditedAt.Format("2006-01-02 15:04:05"), s.EditedBy)
			})
		},
	}

	var (
		cronExpr, tz, script, flow string
		rf                         runFlags
		disabled                   bool
	)
	create := &cobra.Command{
		Use:   "create <path>",
		Short: "Create a schedule for a script or a flow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (script == "") == (flow == "") {
				return fmt.Errorf("pass exactly one of --script or --flow")
			}
			if err := cronpreview.Validate(cronExpr, tz); err != nil {
				return fmt.Errorf("invalid schedule: %w", err)
			}
			in, err := parseArgs(rf.args, rf.argsJSON)
			if err != nil {
				return err
			}
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			body := models.NewSchedule{
				Path:       args[0],
				Schedule:   cronExpr,
				Timezone:   tz,
				ScriptPath: script,
				Args:       in,
			}
			if flow != "" {
				body.ScriptPath, body.IsFlow = flow, true
			}
			if disabled {
				enabled := false
				body.Enabled = &enabled
			}
			path, err := c.CreateSchedule(cmd.Context(), ws, body)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Created schedule %s\n", path)
			return nil
		},
	}
	create.Flags().StringVar(&cronExpr, "cron", "", "Cron expression with a leading seconds field")
	create.Flags().StringVar(&tz, "timezone", "UTC", "IANA timezone")
	create.Flags().StringVar(&script, "script", "", "Script path to run")
	create.Flags().StringVar(&flow, "flow", "", "Flow path to run")
	create.Flags().StringArrayVarP(&rf.args, "arg", "a", nil, "Argument as key=value")
	create.Flags().StringVar(&rf.argsJSON, "args-json", "", "Arguments as a JSON object")
	create.Flags().BoolVar(&disabled, "disabled", false, "Create the schedule disabled")
	_ = create.MarkFlagRequired("cron")

	enable := setEnabledCmd(a, "enable", true)
	disable := setEnabledCmd(a, "disable", false)

	var (
		previewTZ string
		local     bool
		count     int
	)
	preview := &cobra.Command{
		Use:   "preview <cron>",
		Short: "Show the next ticks of a cron expression",
		Long:  "Show the next ticks of a cron expression. The server computes them unless --local is set.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ticks []time.Time
			var err error
			if local {
				ticks, err = cronpreview.Next(args[0], previewTZ, time.Now(), count)
			} else {
				var c *client.Client
				c, _, err = a.client()
				if err != nil {
					return err
				}
				ticks, err = c.PreviewSchedule(cmd.Context(), models.SchedulePreviewRequest{Schedule: args[0], Timezone: previewTZ})
				if len(ticks) > count {
					ticks = ticks[:count]
				}
			}
			if err != nil {
				return err
			}
			return a.print(ticks, func(w io.Writer) {
				for _, t := range ticks {
					fmt.Fprintln(w, t.Format(time.RFC3339))
				}
			})
		},
	}
	preview.Flags().StringVar(&previewTZ, "timezone", "UTC", "IANA timezone")
	preview.Flags().BoolVar(&local, "local", false, "Compute ticks locally")
	preview.Flags().IntVarP(&count, "count", "n", 5, "Number of ticks")

	del := &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			msg, err := c.DeleteSchedule(cmd.Context(), ws, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, msg)
			return nil
		},
	}

	cmd.AddCommand(list, get, create, enable, disable, preview, del)
	return cmd
}

func setEnabledCmd(a *app, use string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <path>",
		Short: fmt.Sprintf("Set a schedule's enabled flag to %t", enabled),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			msg, err := c.SetScheduleEnabled(cmd.Context(), ws, args[0], enabled)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, msg)
			return nil
		},
	}
}

func runnableName(path string, isFlow bool) string {
	if isFlow {
		return "flow " + path
	}
	return "script " + path
}
