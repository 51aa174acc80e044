package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-support-agent/internal/dto"
	"course-support-agent/internal/pkg/serverutils"
	"course-support-agent/pkg/rag/index"
)

type stubChatService struct {
	res *dto.AskResponse
	err error
}

func (s *stubChatService) Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error) {
	return s.res, s.err
}

func newTestApp(svc *stubChatService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewChatController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func postAsk(t *testing.T, app *fiber.App, payload string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/chat/v1/ask", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &parsed))
	return resp.StatusCode, parsed
}

func TestAskEndpoint(t *testing.T) {
	app := newTestApp(&stubChatService{res: &dto.AskResponse{
		Response:        "an answer",
		Language:        "english",
		HasRelevantInfo: true,
		RelevanceScore:  0.9,
	}})

	status, body := postAsk(t, app, `{"question":"poultry courses?","language":"english"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "an answer", data["response"])
	assert.Equal(t, true, data["has_relevant_info"])
}

func TestAskEndpointMissingQuestion(t *testing.T) {
	app := newTestApp(&stubChatService{})

	status, body := postAsk(t, app, `{"language":"english"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
}

func TestAskEndpointRetrievalUnavailable(t *testing.T) {
	app := newTestApp(&stubChatService{err: index.ErrRetrievalUnavailable})

	status, body := postAsk(t, app, `{"question":"anything"}`)

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, false, body["success"])
}
