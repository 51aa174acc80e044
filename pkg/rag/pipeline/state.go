package pipeline

import "course-support-agent/internal/entity"

// State is the working record of one question-answering run. It is created
// at Start, threaded through every stage, and owned by a single goroutine;
// stages mutate it in place.
type State struct {
	// Query is the user's question, immutable after Start.
	Query string

	// Language is the requested answer language, normalized at the
	// detection stage. The response echoes it even when unsupported.
	Language string

	// Units are the retrieved catalog units, most similar first.
	Units []entity.RetrievableUnit

	// HasRelevantInfo and RelevanceScore hold the judge's verdict.
	HasRelevantInfo bool
	RelevanceScore  float64

	// Response is the final answer text, set by exactly one of the two
	// generation stages.
	Response string
}
