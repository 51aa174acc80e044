package dto

type AskRequest struct {
	Question string `json:"question" validate:"required"`
	Language string `json:"language,omitempty"`
}

type AskResponse struct {
	Response        string  `json:"response"`
	Language        string  `json:"language"`
	HasRelevantInfo bool    `json:"has_relevant_info"`
	RelevanceScore  float64 `json:"relevance_score"`
}
