package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bft-labs/concordlog/internal/domain"
	"github.com/bft-labs/concordlog/pkg/analytics"
)

func newSurveyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "survey FILE",
		Short: "Log a survey response read from a YAML or JSON file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			sr, err := decodeSurvey(r)
			if err != nil {
				return err
			}
			a.fillSurvey(&sr)

			client, err := a.newClient()
			if err != nil {
				return err
			}
			client.LogSurveyResponse(sr)
			a.closeClient(client)
			return nil
		},
	}
}

// decodeSurvey reads one survey response. JSON input is accepted as YAML.
func decodeSurvey(r io.Reader) (analytics.SurveyResponse, error) {
	var sr analytics.SurveyResponse
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sr); err != nil {
		return sr, fmt.Errorf("%w: decode survey response: %v", domain.ErrInvalidInput, err)
	}
	return sr, nil
}
