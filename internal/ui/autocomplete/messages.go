package autocomplete

import "cityscout/internal/domain"

// CommitMsg tells the host a suggestion was chosen
type CommitMsg struct {
	Owner string
	City  domain.City
}

// SubmitRequestedMsg asks the host to submit the form the primary field
// belongs to. It follows a commit after the submit delay.
type SubmitRequestedMsg struct {
	Owner string
}
