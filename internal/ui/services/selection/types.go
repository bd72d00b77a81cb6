package selection

import "cityscout/internal/domain"

// CloseReason says why the dropdown closed
type CloseReason string

const (
	ReasonEmpty    CloseReason = "empty"
	ReasonTooShort CloseReason = "too-short"
	ReasonEscape   CloseReason = "escape"
	ReasonBlur     CloseReason = "blur"
	ReasonOutside  CloseReason = "outside"
	ReasonCommit   CloseReason = "commit"
	ReasonDestroy  CloseReason = "destroy"
)

// Event types

type OpenedEvent struct {
	Owner string
	Count int
}

type HighlightChangedEvent struct {
	Owner    string
	OldIndex int
	NewIndex int
}

type CommittedEvent struct {
	Owner string
	Index int
	City  domain.City
}

type ClosedEvent struct {
	Owner  string
	Reason CloseReason
}
