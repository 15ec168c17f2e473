package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "chaintrace/internal/delivery/context"
	"chaintrace/internal/domain/service"
	"chaintrace/internal/errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

const (
	localSubscription = "projects/local/subscriptions/tracking-notifier"
	// localMaxElapsed bounds redelivery of one event to the local notifier.
	localMaxElapsed = 15 * time.Second
)

// PushMessage is the JSON body Pub/Sub sends to push subscribers.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher posts push envelopes straight to the notifier and redelivers
// on 5xx the way a push subscription would, so the notifier can run without a
// Google project.
type localHTTPPublisher struct {
	endpoint        string
	httpClient      *http.Client
	initialInterval time.Duration
	logger          *slog.Logger
}

// NewLocalHTTPPublisher is used with pubsub.provider=local.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:        endpoint,
		httpClient:      &http.Client{Timeout: 5 * time.Second},
		initialInterval: 500 * time.Millisecond,
		logger:          logger,
	}
}

func (p *localHTTPPublisher) PublishTrackingEvent(ctx context.Context, event *service.TrackingEventMessage) error {
	body, err := newPushBody(event)
	if err != nil {
		return err
	}

	attempts := 0
	deliver := func() error {
		attempts++
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(errors.WithStack(err))
		}
		req.Header.Set("Content-Type", "application/json")
		if event.RequestID != "" {
			req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
		}

		resp, err := p.httpClient.Do(req)
		if err != nil {
			return errors.WithStack(err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return nil
		case resp.StatusCode >= 500:
			return errors.Errorf("notifier returned %d", resp.StatusCode)
		default:
			return backoff.Permanent(errors.Errorf("notifier rejected event with %d", resp.StatusCode))
		}
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.initialInterval
	b.MaxElapsedTime = localMaxElapsed
	if err := backoff.Retry(deliver, backoff.WithContext(b, ctx)); err != nil {
		return errors.Wrapf(err, "deliver tracking event for %s after %d attempts", event.TargetID(), attempts)
	}

	p.logger.Debug("Tracking event pushed to local notifier",
		slog.String("endpoint", p.endpoint),
		slog.String("target", event.TargetID()),
		slog.String("status", event.Status),
		slog.Int("attempts", attempts),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}

func newPushBody(event *service.TrackingEventMessage) ([]byte, error) {
	data, attributes, err := encodeTrackingEvent(event)
	if err != nil {
		return nil, err
	}

	push := PushMessage{Subscription: localSubscription}
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = attributes
	push.Message.MessageID = uuid.NewString()
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(push)

	return body, errors.WithStack(err)
}
