package transfer

// PostCreation is the body of POST /api/posts/schedule.
type PostCreation struct {
	Content       string `json:"content"`
	ScheduledDate string `json:"scheduledDate"`
	ScheduledTime string `json:"scheduledTime"`
	Location      string `json:"location"`
	ImageURL      string `json:"imageUrl,omitempty"`
}

// PostUpdate is the body of PUT /api/posts/{id}.
type PostUpdate struct {
	Content       string `json:"content"`
	ScheduledTime string `json:"scheduledTime"`
}

type VerifyResponse struct {
	Authenticated bool `json:"authenticated"`
}
