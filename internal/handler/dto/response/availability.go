package response

import "time"

// SlotsResponse lists candidate times for one boat, either bookable
// start times for a day or reachable end times for a chosen start.
type SlotsResponse struct {
	BoatID string      `json:"boat_id"`
	Slots  []time.Time `json:"slots"`
}
