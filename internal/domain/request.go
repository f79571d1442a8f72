package domain

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestDeclined RequestStatus = "declined"
)

// RoommateRequest is a directed "be my roommate" request. FromName and
// FromPhoto are a snapshot of the sender taken when the request is sent.
type RoommateRequest struct {
	ID          string        `json:"id" db:"id"`
	FromUID     string        `json:"fromUid" db:"from_uid"`
	ToUID       string        `json:"toUid" db:"to_uid"`
	FromName    string        `json:"fromName" db:"from_name"`
	FromPhoto   string        `json:"fromPhoto" db:"from_photo"`
	Status      RequestStatus `json:"status" db:"status"`
	Explanation *string       `json:"explanation,omitempty" db:"explanation"`
	Icebreakers []string      `json:"icebreakers,omitempty" db:"icebreakers"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`
}

// RequestID is deterministic so a sender has at most one request per recipient.
func RequestID(fromUID, toUID string) string {
	return fromUID + "_" + toUID
}

func (r *RoommateRequest) HasUser(uid string) bool {
	return r.FromUID == uid || r.ToUID == uid
}

func (r *RoommateRequest) GetOtherUserID(uid string) (string, bool) {
	if r.FromUID == uid {
		return r.ToUID, true
	}
	if r.ToUID == uid {
		return r.FromUID, true
	}
	return "", false
}
