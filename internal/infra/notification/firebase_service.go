package notification

import (
	"context"
	"log/slog"

	"chaintrace/config"
	"chaintrace/internal/domain/service"
	"chaintrace/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// topicSender is the slice of *messaging.Client the service uses.
type topicSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client topicSender
	logger *slog.Logger
}

// NewFirebaseService initialises FCM. Without a credentials path the application
// default credentials are used.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.NotificationService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client, logger: logger}, nil
}

// SendTopicNotification sends one message to every device subscribed to topic.
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	messageID, err := s.client.Send(ctx, &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	if err != nil {
		if messaging.IsUnavailable(err) || messaging.IsInternal(err) || messaging.IsQuotaExceeded(err) {
			return errors.Wrap(service.ErrNotificationUnavailable, err.Error())
		}

		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	s.logger.Debug("[FCM] Topic notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}

// logNotifier stands in for FCM in local runs; it only logs what would be sent.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a NotificationService that writes notifications to the log.
func NewLogNotifier(logger *slog.Logger) service.NotificationService {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) SendTopicNotification(ctx context.Context, topic, title, body string, _ map[string]string) error {
	n.logger.InfoContext(ctx, "[LogNotifier] Notification",
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
	)

	return nil
}
