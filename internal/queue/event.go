package queue

// ReviewSubmittedEvent is published whenever a review is created or
// overwritten.  It carries enough information for downstream consumers to
// log or feed analytics without querying the primary database.
type ReviewSubmittedEvent struct {
	UserID      uint64 `json:"user_id"`
	Username    string `json:"username,omitempty"`
	MovieID     uint64 `json:"movie_id"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment,omitempty"`
	SubmittedAt string `json:"submitted_at"`
}
