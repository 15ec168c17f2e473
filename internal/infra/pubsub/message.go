package pubsub

import (
	"encoding/json"

	"chaintrace/internal/domain/constants"
	"chaintrace/internal/domain/service"
	"chaintrace/internal/errors"
)

// EventTypeTrackingAppended is the event_type attribute of tracking messages.
const EventTypeTrackingAppended = "tracking.appended"

// encodeTrackingEvent returns the message body and the attributes subscribers filter on.
func encodeTrackingEvent(event *service.TrackingEventMessage) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		constants.AttrEventType:  EventTypeTrackingAppended,
		constants.AttrTargetKind: event.Target,
		constants.AttrTargetID:   event.TargetID(),
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return data, attributes, nil
}
