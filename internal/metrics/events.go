package metrics

import (
	"context"

	"github.com/osse101/RogueMods_Go/internal/event"
	"github.com/osse101/RogueMods_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.UnlockPurchased,
		event.CommitFailed,
		event.CatalogBuilt,
		event.ModifierApplied,
		event.SettingChanged,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.UnlockPurchased:
		var p event.UnlockPurchasedPayloadV1
		if p, err = event.DecodePayload[event.UnlockPurchasedPayloadV1](evt.Payload); err == nil {
			UnlocksPurchased.WithLabelValues(string(p.Kind)).Inc()
			CandySpent.Add(float64(p.Price))
		}

	case event.CommitFailed:
		CommitFailures.Inc()

	case event.CatalogBuilt:
		var p event.CatalogBuiltPayloadV1
		if p, err = event.DecodePayload[event.CatalogBuiltPayloadV1](evt.Payload); err == nil {
			result := ResultOK
			if !p.Available {
				result = ResultUnavailable
			}
			CatalogBuilds.WithLabelValues(result).Inc()
		}

	case event.ModifierApplied:
		var p event.ModifierAppliedPayloadV1
		if p, err = event.DecodePayload[event.ModifierAppliedPayloadV1](evt.Payload); err == nil {
			ModifiersApplied.WithLabelValues(p.Kind).Inc()
		}

	case event.SettingChanged:
		var p event.SettingChangedPayloadV1
		if p, err = event.DecodePayload[event.SettingChangedPayloadV1](evt.Payload); err == nil {
			SettingChanges.WithLabelValues(p.Key).Inc()
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
	}

	return nil
}
