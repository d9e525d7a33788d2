package constants

// NATS Subjects
const (
	// Tracking service
	SubjectLocationUpdate  = "location.update"
	SubjectLocationStopped = "location.stopped"
)
