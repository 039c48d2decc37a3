package models

// QueryStatus tags the active variant of a QueryResult.
type QueryStatus string

const (
	StatusApproved QueryStatus = "approved"
	StatusDenied   QueryStatus = "denied"
	StatusError    QueryStatus = "error"
)

// FailureKind classifies error-variant results.
type FailureKind string

const (
	FailureUnauthenticated FailureKind = "unauthenticated"
	FailureTransport       FailureKind = "transport"
	FailureUnknownStatus   FailureKind = "unknown_status"
)

// QueryRequest is the body sent to the permission-evaluating backend.
type QueryRequest struct {
	UserID string `json:"user_id"`
	Query  string `json:"query"`
}

// Source is a citation attached to an approved answer.
type Source struct {
	Filename string `json:"filename,omitempty"`
	Source   string `json:"source,omitempty"`
}

// Label returns the filename, then the source, then "Unknown source".
func (s Source) Label() string {
	switch {
	case s.Filename != "":
		return s.Filename
	case s.Source != "":
		return s.Source
	default:
		return "Unknown source"
	}
}

// QueryResult is the tagged outcome of a submission. Only the fields of the
// variant selected by Status are meaningful; build values with Approved,
// Denied or Failed.
type QueryResult struct {
	Status   QueryStatus
	Response string
	Sources  []Source
	Message  string
	Failure  FailureKind
}

func Approved(response string, sources []Source) QueryResult {
	if sources == nil {
		sources = []Source{}
	}
	return QueryResult{Status: StatusApproved, Response: response, Sources: sources}
}

func Denied(message string) QueryResult {
	return QueryResult{Status: StatusDenied, Message: message}
}

func Failed(kind FailureKind, message string) QueryResult {
	return QueryResult{Status: StatusError, Message: message, Failure: kind}
}

func (r QueryResult) IsApproved() bool { return r.Status == StatusApproved }

func (r QueryResult) IsDenied() bool { return r.Status == StatusDenied }

func (r QueryResult) IsError() bool { return r.Status == StatusError }
