// Package queue defines message payloads exchanged over the message broker
// along with the publisher and the background consumer for the catalog
// audit trail.
package queue

// FilmAddedEvent is published when a film is successfully added to the
// catalog. It carries enough information for downstream consumers to log or
// trigger analytics without querying the primary database.
type FilmAddedEvent struct {
	FilmID  uint64   `json:"film_id"`
	Title   string   `json:"title"`
	Genre   []string `json:"genre"`
	Rating  float64  `json:"rating"`
	AddedBy string   `json:"added_by"`
	AddedAt string   `json:"added_at"`
}
