package request

// AddPlayerRequest is the request body for creating a player
type AddPlayerRequest struct {
	Name string `json:"name"`
}

// RecordSessionRequest is the request body for appending a play session.
// Pointer fields distinguish "absent" from zero, so a missing field can be
// rejected before it reaches storage.
type RecordSessionRequest struct {
	Wave     *int `json:"wave"`
	Score    *int `json:"score"`
	Playtime *int `json:"playtime"`
}
