package ledger

import "encoding/json"

// Entry is one booking row as the legacy ledger returns it. Field names
// differ from the canonical store, and Rooms may arrive either as a JSON
// array of {id,name} objects or as that array serialized into a JSON
// string; the aggregator parses it tolerantly.
type Entry struct {
	RefNo    string          `json:"ref_no"`
	FromDate string          `json:"from_date"`
	ToDate   string          `json:"to_date"`
	State    string          `json:"state"`
	Rooms    json.RawMessage `json:"rooms"`
	Amount   int64           `json:"amount"`
}

// ListResponse is the legacy ledger's list envelope.
type ListResponse struct {
	Status int     `json:"status"`
	Data   []Entry `json:"data"`
}

// MirrorRoom is one room reference in a mirror write.
type MirrorRoom struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// MirrorRequest is the payload of a best-effort mirror write, tagged with
// the canonical store's booking id.
type MirrorRequest struct {
	RefNo      string       `json:"ref_no"`
	GuestName  string       `json:"guest_name"`
	FromDate   string       `json:"from_date"`
	ToDate     string       `json:"to_date"`
	State      string       `json:"state"`
	Rooms      []MirrorRoom `json:"rooms"`
	GuestCount int          `json:"guest_count"`
	Amount     int64        `json:"amount"`
}
