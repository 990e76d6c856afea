package queue

import "encoding/json"

// KindInterviewScheduled marks a message announcing a new interview.
const KindInterviewScheduled = "interview.scheduled"

// MessageVersion is the payload version producers stamp on messages.
const MessageVersion = 1

// Message is the payload sent to downstream notification consumers.
type Message struct {
	Kind          string            `json:"kind"`
	InterviewID   string            `json:"interviewId"`
	To            string            `json:"to"`
	Subject       string            `json:"subject"`
	CandidateName string            `json:"candidateName"`
	Details       map[string]string `json:"details,omitempty"`
	RequestID     string            `json:"requestId,omitempty"`
	EnqueuedAt    string            `json:"enqueuedAt"`
	Version       int               `json:"version"`
}

// EncodeMessage returns the JSON representation of a message.
func EncodeMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

// DecodeMessage parses a JSON payload into a Message.
func DecodeMessage(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}
