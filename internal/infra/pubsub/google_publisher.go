package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"vesselwatch/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub.
// Positions go to the positions topic; token and status events to the events topic.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	positions *pubsub.Publisher
	events    *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher. An empty
// eventsTopicID disables token and status events.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID, eventsTopicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for _, id := range []string{topicID, eventsTopicID} {
		if id == "" {
			continue
		}
		topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, id)
		if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
			client.Close()

			return nil, errors.Wrapf(err, "failed to get topic %s", id)
		}
	}

	positions := client.Publisher(topicID)
	positions.EnableMessageOrdering = true

	var events *pubsub.Publisher
	if eventsTopicID != "" {
		events = client.Publisher(eventsTopicID)
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		positions: positions,
		events:    events,
		logger:    logger,
	}, nil
}

// PublishPosition publishes a position sample ordered by ship
func (p *googlePubSubPublisher) PublishPosition(ctx context.Context, event *service.PositionEvent) error {
	msg, err := encodePosition(event)
	if err != nil {
		return err
	}

	serverID, err := p.publish(ctx, p.positions, msg)
	if err != nil {
		// an ordering key is paused after a failed publish
		p.positions.ResumePublish(msg.orderingKey)

		return err
	}

	p.logger.Debug("[GooglePubSub] Position published",
		slog.String("ship_id", event.ShipID),
		slog.String("server_id", serverID),
	)

	return nil
}

// PublishTokenInvalidated publishes a dead token report
func (p *googlePubSubPublisher) PublishTokenInvalidated(ctx context.Context, event *service.TokenInvalidatedEvent) error {
	return p.publishEvent(ctx, service.EventTypeTokenInvalidated, event)
}

// PublishNotificationStatus publishes a notification status change
func (p *googlePubSubPublisher) PublishNotificationStatus(ctx context.Context, event *service.NotificationStatusEvent) error {
	return p.publishEvent(ctx, service.EventTypeNotificationStatus, event)
}

func (p *googlePubSubPublisher) publishEvent(ctx context.Context, eventType string, payload any) error {
	if p.events == nil {
		return nil
	}

	msg, err := encodeEvent(eventType, payload)
	if err != nil {
		return err
	}

	_, err = p.publish(ctx, p.events, msg)

	return err
}

func (p *googlePubSubPublisher) publish(ctx context.Context, publisher *pubsub.Publisher, msg *outbound) (string, error) {
	result := publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return serverID, nil
}

// Close flushes pending messages and releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.positions != nil {
		p.positions.Stop()
	}
	if p.events != nil {
		p.events.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
