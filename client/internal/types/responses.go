package types

import (
	"bytes"
	"encoding/json"
)

// ------------------------------
// Response Types
// ------------------------------

// EnqueueAck acknowledges a write accepted by the async executor but not
// yet delivered to the backend.
type EnqueueAck struct {
	Key    string `json:"key"`
	Status string `json:"status"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// LikeResponse reflects the post state after a like toggle.
type LikeResponse struct {
	Likes   int  `json:"likes"`
	IsLiked bool `json:"isLiked"`
}

// FollowResponse reflects the relationship after a follow toggle.
type FollowResponse struct {
	Following bool `json:"following"`
}

// PointsBalance is the current balance of the points mall.
type PointsBalance struct {
	Points int `json:"points"`
}

// UploadResponse is returned by multipart upload endpoints.
type UploadResponse struct {
	URL string `json:"url"`
}

// List is a tolerant list payload. The backend returns either a bare
// JSON array or a {"data": [...], "count": n} envelope depending on the
// endpoint; both decode into the same value.
type List[T any] struct {
	Data  []T
	Count int
}

// UnmarshalJSON accepts [...] or {"data": [...], "count": n}.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		if err := json.Unmarshal(data, &l.Data); err != nil {
			return err
		}
		l.Count = len(l.Data)
		return nil
	}
	var envelope struct {
		Data  []T `json:"data"`
		Count int `json:"count"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	l.Data = envelope.Data
	l.Count = envelope.Count
	if l.Count == 0 {
		l.Count = len(l.Data)
	}
	return nil
}

// SearchResults joins the fan-out "search all" operation. Each branch
// settles independently; a failed branch carries its error without
// blocking the others.
type SearchResults struct {
	Posts    SearchBranch[Post]
	Products SearchBranch[Product]
	Services SearchBranch[Service]
}

// SearchBranch is one settled leg of a fan-out search.
type SearchBranch[T any] struct {
	Items []T
	Err   error
}
