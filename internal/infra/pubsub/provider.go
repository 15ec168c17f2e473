// Package pubsub publishes appended tracking events for the notifier.
package pubsub

import (
	"context"
	"log/slog"

	"chaintrace/config"
	"chaintrace/internal/domain/constants"
	"chaintrace/internal/domain/service"
	"chaintrace/internal/errors"

	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the backend named by pubsub.provider. Without one,
// tracking appends still succeed and nothing is published.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing tracking event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, tracking events are not published")

		return discardPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		logger.Info("Publishing tracking events to local notifier", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

type discardPublisher struct {
	logger *slog.Logger
}

func (p discardPublisher) PublishTrackingEvent(_ context.Context, event *service.TrackingEventMessage) error {
	p.logger.Debug("Tracking event not published",
		slog.String("target", event.TargetID()),
		slog.String("status", event.Status),
	)

	return nil
}

func (discardPublisher) Close() error { return nil }
