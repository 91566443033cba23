package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/rflorenc/windmill-client/internal/wsprobe"
	"github.com/rflorenc/windmill-client/pkg/client"
	"github.com/rflorenc/windmill-client/pkg/models"
)

// triggerLister lists one trigger kind as their common properties.
type triggerLister func(ctx context.Context, c *client.Client, ws string) ([]models.TriggerExtraProperty, error)

func listOf[T any](list func(context.Context, string, client.ListTriggersParams) ([]T, error), props func(T) models.TriggerExtraProperty) triggerLister {
	return func(ctx context.Context, c *client.Client, ws string) ([]models.TriggerExtraProperty, error) {
		items, err := list(ctx, ws, client.ListTriggersParams{})
		if err != nil {
			return nil, err
		}
		out := make([]models.TriggerExtraProperty, 0, len(items))
		for _, it := range items {
			out = append(out, props(it))
		}
		return out, nil
	}
}

func triggerListers(c *client.Client) map[string]triggerLister {
	return map[string]triggerLister{
		"http":      listOf(c.ListHTTPTriggers, func(t models.HTTPTrigger) models.TriggerExtraProperty { return t.TriggerExtraProperty }),
		"websocket": listOf(c.ListWebsocketTriggers, func(t models.WebsocketTrigger) models.TriggerExtraProperty { return t.TriggerExtraProperty }),
		"kafka":     listOf(c.ListKafkaTriggers, func(t models.KafkaTrigger) models.TriggerExtraProperty { return t.TriggerExtraProperty }),
		"nats":      listOf(c.ListNatsTriggers, func(t models.NatsTrigger) models.TriggerExtraProperty { return t.TriggerExtraProperty }),
		"mqtt":      listOf(c.ListMqttTriggers, func(t models.MqttTrigger) models.TriggerExtraProperty { return t.TriggerExtraProperty }),
		"sqs":       listOf(c.ListSqsTriggers, func(t models.SqsTrigger) models.TriggerExtraProperty { return t.TriggerExtraProperty }),
		"postgres":  listOf(c.ListPostgresTriggers, func(t models.PostgresTrigger) models.TriggerExtraProperty { return t.TriggerExtraProperty }),
	}
}

func newTriggersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triggers",
		Short: "Inspect triggers",
	}

	var kind string
	list := &cobra.Command{
		Use:   "list",
		Short: "List triggers of one kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			lister, ok := triggerListers(c)[kind]
			if !ok {
				return fmt.Errorf("unknown trigger kind %q", kind)
			}
			list, err := lister(cmd.Context(), c, ws)
			if err != nil {
				return err
			}
			return a.print(list, func(io.Writer) {
				a.table("PATH\tRUNNABLE\tEDITED BY", func(w io.Writer) {
					for _, t := range list {
						fmt.Fprintf(w, "%s\t%s\t%s\n", t.Path, runnableName(t.ScriptPath, t.IsFlow), t.EditedBy)
					}
				})
			})
		},
	}
	list.Flags().StringVar(&kind, "kind", "http", "Trigger kind: http, websocket, kafka, nats, mqtt, sqs or postgres")

	count := &cobra.Command{
		Use:   "count <path>",
		Short: "Count the triggers pointing at a script or flow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			isFlow, err := c.ExistsFlowByPath(cmd.Context(), ws, args[0])
			if err != nil {
				return err
			}
			var n models.TriggersCount
			if isFlow {
				n, err = c.GetTriggersCountOfFlow(cmd.Context(), ws, args[0])
			} else {
				n, err = c.GetTriggersCountOfScript(cmd.Context(), ws, args[0])
			}
			if err != nil {
				return err
			}
			return a.print(n, func(w io.Writer) {
				b, _ := json.MarshalIndent(n, "", "  ")
				fmt.Fprintf(w, "%s\n", b)
			})
		},
	}

	var (
		timeout     time.Duration
		maxMessages int
	)
	probe := &cobra.Command{
		Use:   "probe-ws <path>",
		Short: "Connect to a websocket trigger's URL and wait for a message its filters accept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ws, err := a.workspaceClient()
			if err != nil {
				return err
			}
			trigger, err := c.GetWebsocketTrigger(cmd.Context(), ws, args[0])
			if err != nil {
				return err
			}
			res, err := wsprobe.Probe(cmd.Context(), trigger, wsprobe.Options{
				Timeout:     timeout,
				MaxMessages: maxMessages,
				Logger:      a.log,
			})
			if errors.Is(err, wsprobe.ErrNoMatch) {
				return fmt.Errorf("%w after %d messages", err, res.Seen)
			}
			if err != nil {
				return err
			}
			return a.print(res, func(w io.Writer) {
				fmt.Fprintf(w, "Matched message %d: %s\n", res.Seen, res.Matched)
			})
		},
	}
	probe.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Give up after this long")
	probe.Flags().IntVar(&maxMessages, "max-messages", 0, "Give up after reading this many messages")

	cmd.AddCommand(list, count, probe)
	return cmd
}
