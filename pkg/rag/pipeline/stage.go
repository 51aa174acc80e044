package pipeline

// Stage identifies a node in the question-answering graph. The graph is
// acyclic and every run visits each stage at most once.
type Stage int

const (
	StageStart Stage = iota
	StageRetrieve
	StageDetectLanguage
	StageCheckRelevance
	StageGenerateAnswer
	StageGenerateFallback
	StageEnd
)

var stageNames = map[Stage]string{
	StageStart:            "start",
	StageRetrieve:         "retrieve",
	StageDetectLanguage:   "detect_language",
	StageCheckRelevance:   "check_relevance",
	StageGenerateAnswer:   "generate_answer",
	StageGenerateFallback: "generate_fallback",
	StageEnd:              "end",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}
