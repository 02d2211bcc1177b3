package main

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/concordlog/pkg/analytics"
	"github.com/bft-labs/concordlog/pkg/log"
)

// drainTimeout bounds how long a command waits for in-flight sends on exit.
const drainTimeout = 10 * time.Second

func (a *app) newClient(extra ...analytics.Option) (*analytics.CloudAnalytics, error) {
	info, err := a.cfg.ClientInfo()
	if err != nil {
		return nil, err
	}

	opts := []analytics.Option{
		analytics.WithLogger(a.logger),
		analytics.WithClientInfo(info),
		analytics.WithEndpointStyle(analytics.EndpointStyle(a.cfg.EndpointStyle)),
		analytics.WithEndpoint(a.cfg.EndpointHost, a.cfg.EndpointPath),
		analytics.WithTimeout(a.cfg.HTTPTimeout),
		analytics.WithGzip(a.cfg.Gzip),
	}
	return analytics.New(a.cfg.ConsoleType, a.cfg.APIKey, append(opts, extra...)...)
}

// sessionID returns the configured session id, generating one on first use.
func (a *app) sessionID() string {
	if a.cfg.SessionID == "" {
		a.cfg.SessionID = uuid.NewString()
	}
	return a.cfg.SessionID
}

func (a *app) fillEvent(ev *analytics.CloudEvent) {
	if ev.UserSessionID == "" {
		ev.UserSessionID = a.sessionID()
	}
	if ev.ProjectNumber == "" {
		ev.ProjectNumber = a.cfg.ProjectNumber
	}
}

func (a *app) fillSurvey(sr *analytics.SurveyResponse) {
	if sr.UserSessionID == "" {
		sr.UserSessionID = a.sessionID()
	}
	if sr.ProjectNumber == "" {
		sr.ProjectNumber = a.cfg.ProjectNumber
	}
}

// closeClient flushes and waits for in-flight sends, bounded by drainTimeout.
func (a *app) closeClient(client *analytics.CloudAnalytics) {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := client.Close(ctx); err != nil {
		a.logger.Warn("in-flight sends abandoned", log.Err(err))
	}
}
