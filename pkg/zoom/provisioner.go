package zoom

import (
	"context"
	"time"
)

// MeetingRequest carries what a provider needs to schedule a meeting.
type MeetingRequest struct {
	Topic string
	Time  time.Time
}

// Meeting is the provisioned session metadata persisted on a lecture.
type Meeting struct {
	JoinLink  string
	StartLink string
	MeetingID string
	RawBody   string
}

// Provisioner schedules a live meeting for a lecture and returns its links.
// The real Zoom integration lives behind this interface.
type Provisioner interface {
	ProvisionMeetingLink(ctx context.Context, req MeetingRequest) (Meeting, error)
}

// PlaceholderProvisioner answers with a fixed join link.
// TODO replace with the Zoom API client once account credentials exist.
type PlaceholderProvisioner struct{}

func (PlaceholderProvisioner) ProvisionMeetingLink(ctx context.Context, req MeetingRequest) (Meeting, error) {
	return Meeting{JoinLink: "invalid sample link"}, nil
}
