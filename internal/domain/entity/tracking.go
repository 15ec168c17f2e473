package entity

import (
	"fmt"
	"math"
	"time"

	"chaintrace/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// TrackingStatus is the closed set of shipment states.
type TrackingStatus string

const (
	StatusOrderPlaced         TrackingStatus = "order_placed"
	StatusPaymentConfirmed    TrackingStatus = "payment_confirmed"
	StatusProcessing          TrackingStatus = "processing"
	StatusRawMaterialsSourced TrackingStatus = "raw_materials_sourced"
	StatusProductionStarted   TrackingStatus = "production_started"
	StatusProductionCompleted TrackingStatus = "production_completed"
	StatusQualityCheck        TrackingStatus = "quality_check"
	StatusPackaging           TrackingStatus = "packaging"
	StatusReadyForShipment    TrackingStatus = "ready_for_shipment"
	StatusShipped             TrackingStatus = "shipped"
	StatusInTransit           TrackingStatus = "in_transit"
	StatusCustomsClearance    TrackingStatus = "customs_clearance"
	StatusLocalFacility       TrackingStatus = "local_facility"
	StatusOutForDelivery      TrackingStatus = "out_for_delivery"
	StatusDelivered           TrackingStatus = "delivered"
	StatusCancelled           TrackingStatus = "cancelled"
	StatusReturned            TrackingStatus = "returned"
)

var (
	ErrUnknownTrackingStatus = errors.New("unknown tracking status")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrInvalidLocation       = errors.New("invalid tracking location")
)

// stageRank orders the non-exceptional statuses. Statuses sharing a rank are
// alternatives at the same point of the journey.
var stageRank = map[TrackingStatus]int{
	StatusOrderPlaced:         0,
	StatusPaymentConfirmed:    1,
	StatusProcessing:          2,
	StatusRawMaterialsSourced: 2,
	StatusProductionStarted:   3,
	StatusProductionCompleted: 4,
	StatusQualityCheck:        5,
	StatusPackaging:           6,
	StatusReadyForShipment:    7,
	StatusShipped:             8,
	StatusInTransit:           9,
	StatusCustomsClearance:    9,
	StatusLocalFacility:       10,
	StatusOutForDelivery:      11,
	StatusDelivered:           12,
}

var finishedGoodsStatuses = map[TrackingStatus]struct{}{
	StatusOrderPlaced:      {},
	StatusPaymentConfirmed: {},
	StatusProcessing:       {},
	StatusShipped:          {},
	StatusInTransit:        {},
	StatusOutForDelivery:   {},
	StatusDelivered:        {},
	StatusCancelled:        {},
}

// AllTrackingStatuses lists every status in journey order.
func AllTrackingStatuses() []TrackingStatus {
	return []TrackingStatus{
		StatusOrderPlaced, StatusPaymentConfirmed, StatusProcessing, StatusRawMaterialsSourced,
		StatusProductionStarted, StatusProductionCompleted, StatusQualityCheck, StatusPackaging,
		StatusReadyForShipment, StatusShipped, StatusInTransit, StatusCustomsClearance,
		StatusLocalFacility, StatusOutForDelivery, StatusDelivered, StatusCancelled, StatusReturned,
	}
}

// IsValid reports whether s belongs to the closed status set.
func (s TrackingStatus) IsValid() bool {
	if _, ok := stageRank[s]; ok {
		return true
	}

	return s == StatusCancelled || s == StatusReturned
}

// IsFinishedGoods reports whether s may be used on a finished-goods purchase.
func (s TrackingStatus) IsFinishedGoods() bool {
	_, ok := finishedGoodsStatuses[s]

	return ok
}

// IsTerminal reports whether s ends a shipment.
func (s TrackingStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusReturned
}

// CanTransition reports whether a list whose current status is from may accept to.
// An empty from accepts any valid status.
func CanTransition(from, to TrackingStatus) bool {
	if !to.IsValid() {
		return false
	}
	if from == "" {
		return true
	}

	switch to {
	case StatusReturned:
		rank, ok := stageRank[from]

		return ok && rank >= stageRank[StatusShipped]
	case StatusCancelled:
		return from.IsValid() && !from.IsTerminal()
	}

	if from.IsTerminal() {
		return false
	}
	fromRank, ok := stageRank[from]
	if !ok {
		return false
	}

	return stageRank[to] >= fromRank
}

// Coordinates is a WGS84 position reported by the updater's device.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether both components are inside their ranges.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// Point converts to an orb point (lng, lat).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// String renders the "lat, lng" fallback address.
func (c Coordinates) String() string {
	return fmt.Sprintf("%.6f, %.6f", c.Latitude, c.Longitude)
}

// DistanceKm is the great-circle distance between two positions in kilometres.
func DistanceKm(a, b Coordinates) float64 {
	km := geo.Distance(a.Point(), b.Point()) / 1000

	return math.Round(km*100) / 100
}

// Location is where a tracking event happened.
type Location struct {
	Address      string       `json:"address"`
	City         string       `json:"city,omitempty"`
	State        string       `json:"state,omitempty"`
	Country      string       `json:"country,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	FacilityName string       `json:"facilityName,omitempty"`
	FacilityType string       `json:"facilityType,omitempty"`
}

// Validate checks the address/coordinate rules. Address may be empty only when
// coordinates are present.
func (l Location) Validate() error {
	if l.Coordinates != nil && !l.Coordinates.Valid() {
		return errors.Wrap(ErrInvalidLocation, "coordinates out of range")
	}
	if l.Address == "" && l.Coordinates == nil {
		return errors.Wrap(ErrInvalidLocation, "address or coordinates required")
	}

	return nil
}

// Updater identifies who appended an event.
type Updater struct {
	WalletAddress string `json:"walletAddress"`
	Role          Role   `json:"role,omitempty"`
}

// HandledBy is the contact block for the party physically handling the goods.
type HandledBy struct {
	Name    string `json:"name,omitempty"`
	Company string `json:"company,omitempty"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// FillFrom sets empty fields from the updater's profile.
func (h HandledBy) FillFrom(u *User) HandledBy {
	if u == nil {
		return h
	}
	if h.Name == "" {
		h.Name = u.DisplayName()
	}
	if h.Company == "" {
		h.Company = u.Profile.Company
	}
	if h.Contact == "" {
		h.Contact = u.Email
	}
	if h.Phone == "" {
		h.Phone = u.Profile.Phone
	}

	return h
}

// TrackingEvent is one immutable entry of a shipment timeline.
type TrackingEvent struct {
	Status              TrackingStatus `json:"status"`
	Timestamp           time.Time      `json:"timestamp"`
	Location            Location       `json:"location"`
	Description         string         `json:"description"`
	UpdatedBy           Updater        `json:"updatedBy"`
	Images              []string       `json:"images,omitempty"`
	EstimatedNextUpdate *time.Time     `json:"estimatedNextUpdate,omitempty"`
	ActualDuration      *int64         `json:"actualDuration"`
	Notes               string         `json:"notes,omitempty"`
	Temperature         *float64       `json:"temperature,omitempty"`
	Humidity            *float64       `json:"humidity,omitempty"`
	HandledBy           *HandledBy     `json:"handledBy,omitempty"`
}

// TrackingLog is the append-only timeline shared by purchases and raw-material payments.
// CurrentStatus always mirrors the status of the last event.
type TrackingLog struct {
	CurrentStatus  TrackingStatus
	Events         []TrackingEvent
	ActualDelivery *time.Time
}

// Append adds ev at now. The duration since the current tail is derived in whole
// minutes; an empty log yields a nil duration. When enforce is set, transitions the
// state machine does not allow are rejected and the log is left untouched.
func (l *TrackingLog) Append(ev TrackingEvent, now time.Time, enforce bool) (TrackingEvent, error) {
	if !ev.Status.IsValid() {
		return TrackingEvent{}, errors.Wrapf(ErrUnknownTrackingStatus, "status %q", ev.Status)
	}
	if enforce && !CanTransition(l.CurrentStatus, ev.Status) {
		return TrackingEvent{}, errors.Wrapf(ErrInvalidTransition, "%s -> %s", l.CurrentStatus, ev.Status)
	}

	if ev.Timestamp.IsZero() {
		ev.Timestamp = now
	}
	ev.ActualDuration = nil
	if n := len(l.Events); n > 0 {
		minutes := int64(now.Sub(l.Events[n-1].Timestamp) / time.Minute)
		ev.ActualDuration = &minutes
	}

	events := make([]TrackingEvent, len(l.Events), len(l.Events)+1)
	copy(events, l.Events)
	l.Events = append(events, ev)
	l.CurrentStatus = ev.Status
	if ev.Status == StatusDelivered {
		delivered := now
		l.ActualDelivery = &delivered
	}

	return ev, nil
}

// LastEvent returns the tail event, if any.
func (l *TrackingLog) LastEvent() (TrackingEvent, bool) {
	if len(l.Events) == 0 {
		return TrackingEvent{}, false
	}

	return l.Events[len(l.Events)-1], true
}

// Progress is the share of the journey completed, in percent. Cancelled and
// returned shipments report the stage reached before they ended.
func (l *TrackingLog) Progress() int {
	reached := -1
	for _, ev := range l.Events {
		if rank, ok := stageRank[ev.Status]; ok && rank > reached {
			reached = rank
		}
	}
	if reached < 0 {
		return 0
	}

	return reached * 100 / stageRank[StatusDelivered]
}
