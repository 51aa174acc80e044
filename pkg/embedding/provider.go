package embedding

// Task types passed through to providers that distinguish document and query
// embeddings. Catalog indexing and query embedding must use the same
// provider/model, otherwise the similarity metric is meaningless.
const (
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
)

// EmbeddingProvider generates a fixed-length vector for a piece of text
type EmbeddingProvider interface {
	Generate(text string, taskType string) ([]float32, error)
}
