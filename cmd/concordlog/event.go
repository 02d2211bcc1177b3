package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bft-labs/concordlog/internal/domain"
	"github.com/bft-labs/concordlog/pkg/analytics"
)

func newEventCmd(a *app) *cobra.Command {
	var (
		ev   analytics.CloudEvent
		meta []string
	)

	cmd := &cobra.Command{
		Use:   "event",
		Short: "Log a single event and wait for it to be sent",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ev.Type == "" || ev.Name == "" {
				return fmt.Errorf("%w: --type and --name are required", domain.ErrInvalidInput)
			}
			md, err := parseMetadata(meta)
			if err != nil {
				return err
			}
			ev.Metadata = md
			a.fillEvent(&ev)

			client, err := a.newClient()
			if err != nil {
				return err
			}
			client.LogEvent(ev)
			a.closeClient(client)
			return nil
		},
	}

	cmd.Flags().StringVar(&ev.Type, "type", "", "event type")
	cmd.Flags().StringVar(&ev.Name, "name", "", "event name")
	cmd.Flags().Int64Var(&ev.Latency, "latency", 0, "latency in milliseconds")
	cmd.Flags().StringArrayVar(&meta, "meta", nil, "metadata entry as key=value (repeatable)")

	return cmd
}

// parseMetadata turns key=value pairs into KeyValue metadata, keeping order.
func parseMetadata(pairs []string) ([]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make([]any, 0, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: metadata %q is not key=value", domain.ErrInvalidInput, p)
		}
		out = append(out, analytics.KeyValue{Key: k, Value: v})
	}
	return out, nil
}
