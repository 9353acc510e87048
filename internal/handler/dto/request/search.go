package request

// SearchHotelsRequest is accepted as a JSON body (POST) or assembled from
// query parameters (GET). Pointer fields distinguish "omitted" from zero so
// defaults apply only when the caller said nothing.
type SearchHotelsRequest struct {
	City     string `json:"city"`
	CheckIn  string `json:"checkin"`
	CheckOut string `json:"checkout"`
	RoomType string `json:"room_type"`
	Adults   *int   `json:"adults"`
	Children *int   `json:"children"`
	Babies   *int   `json:"babies"`
	// Minutes behind UTC as reported by the browser, used to derive the
	// caller's "today".
	TzOffset *int `json:"tzOffset"`
	// Set by the handler when a query-string count was not an integer.
	// The search falls back to the default party and reports the failure
	// alongside any other validation messages.
	CountsInvalid bool `json:"-"`
}

type PricePreviewRequest struct {
	Hotel    string      `json:"hotel"`
	RoomType string      `json:"room_type"`
	CheckIn  string      `json:"checkin"`
	CheckOut string      `json:"checkout"`
	Counts   CountsInput `json:"counts"`
}

type CountsInput struct {
	Adult int `json:"adult"`
	Child int `json:"child"`
	Baby  int `json:"baby"`
}
