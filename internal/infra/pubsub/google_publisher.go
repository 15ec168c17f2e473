package pubsub

import (
	"context"
	"log/slog"
	"time"

	"chaintrace/internal/domain/service"
	"chaintrace/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// publishTimeout bounds the wait for the server ack so a slow broker cannot
// hold the API request that appended the event.
const publishTimeout = 10 * time.Second

type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topicPath string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topicPath := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "tracking topic %s is not reachable", topicPath)
	}

	publisher := client.Publisher(topicID)
	// One ordering key per timeline keeps events of a purchase in append order.
	publisher.EnableMessageOrdering = true

	logger.Info("Publishing tracking events to Google Pub/Sub", slog.String("topic", topicPath))

	return &googlePublisher{
		client:    client,
		publisher: publisher,
		topicPath: topicPath,
		logger:    logger,
	}, nil
}

func (p *googlePublisher) PublishTrackingEvent(ctx context.Context, event *service.TrackingEventMessage) error {
	data, attributes, err := encodeTrackingEvent(event)
	if err != nil {
		return err
	}

	orderingKey := event.TargetID()
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  attributes,
		OrderingKey: orderingKey,
	}).Get(ctx)
	if err != nil {
		// A failed publish pauses its ordering key until resumed.
		p.publisher.ResumePublish(orderingKey)

		return errors.Wrapf(err, "publish tracking event for %s", orderingKey)
	}

	p.logger.Debug("Tracking event published",
		slog.String("topic", p.topicPath),
		slog.String("target", orderingKey),
		slog.String("status", event.Status),
		slog.Int("sequence", event.Sequence),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
