package search

import "cityscout/internal/domain"

// State holds the scheduler's view of the input
type State struct {
	Query       domain.Query // last scheduled input change
	Evaluations int          // ranker runs so far
	LastCount   int          // suggestions produced by the last run
}

// Options tune the scheduler
type Options struct {
	MinLength      int
	MaxSuggestions int
}

// Event types

type SearchScheduledEvent struct {
	Owner string
	Query domain.Query
}

type SearchCompletedEvent struct {
	Owner      string
	Query      string
	MatchCount int
}

type SearchSkippedEvent struct {
	Owner string
	Query string
}
