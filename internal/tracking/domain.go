// Package tracking looks up shipment status against the carrier API.
package tracking

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Event is one stop in a shipment's history.
type Event struct {
	Status        string `json:"status"`
	StatusDisplay string `json:"statusDisplay"`
	StatusColor   string `json:"statusColor"`
	Timestamp     string `json:"timestamp"`
	Description   string `json:"description,omitempty"`
	Location      string `json:"location,omitempty"`
}

// Info is the normalized tracking snapshot returned to the storefront.
type Info struct {
	TrackingNumber        string  `json:"trackingNumber"`
	Status                string  `json:"status"`
	StatusDisplay         string  `json:"statusDisplay"`
	StatusColor           string  `json:"statusColor"`
	Carrier               string  `json:"carrier"`
	RecipientCity         string  `json:"recipientCity"`
	RecipientState        string  `json:"recipientState"`
	RecipientCountry      string  `json:"recipientCountry"`
	EstimatedDeliveryDate string  `json:"estimatedDeliveryDate,omitempty"`
	ActualDeliveryDate    string  `json:"actualDeliveryDate,omitempty"`
	TrackingEvents        []Event `json:"trackingEvents"`
	LastTrackingUpdate    string  `json:"lastTrackingUpdate,omitempty"`
}

// DisplayStatus turns a carrier status code into display text:
// underscores become spaces and each word is title-cased, so
// "OUT_FOR_DELIVERY" renders as "Out For Delivery".
func DisplayStatus(status string) string {
	if status == "" {
		return ""
	}
	words := strings.ReplaceAll(strings.ToLower(status), "_", " ")
	return cases.Title(language.English).String(words)
}

// StatusColor maps a carrier status code to a semantic color for the
// storefront. Unknown codes fall back to slate.
func StatusColor(status string) string {
	switch status {
	case "DELIVERED":
		return "green"
	case "OUT_FOR_DELIVERY":
		return "amber"
	case "IN_TRANSIT":
		return "blue"
	case "PICKED_UP":
		return "indigo"
	case "CREATED", "PICKUP_SCHEDULED":
		return "gray"
	case "RETURNED", "LOST":
		return "red"
	default:
		return "slate"
	}
}

// normalize fills the display fields on a snapshot and its events.
func (i *Info) normalize() {
	i.StatusDisplay = DisplayStatus(i.Status)
	i.StatusColor = StatusColor(i.Status)
	for idx := range i.TrackingEvents {
		ev := &i.TrackingEvents[idx]
		ev.StatusDisplay = DisplayStatus(ev.Status)
		ev.StatusColor = StatusColor(ev.Status)
	}
}
