package api

import (
	"chat-core/errors"
	"chat-core/mocks"
	"chat-core/services"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newQueryRouter(t *testing.T) (*gin.Engine, *mocks.MockIQueryService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIQueryService(ctrl)
	handler := NewQueryHandler(service)

	router := gin.New()
	router.GET("/conversations/:id/messages", handler.GetMessages)
	router.GET("/conversations/:id/messages/search", handler.Search)
	return router, service
}

func TestQueryHandler_GetMessages_Defaults(t *testing.T) {
	req := require.New(t)
	router, service := newQueryRouter(t)

	views := []services.MessageView{{
		ID:             uuid.NewString(),
		ConversationID: "conv-1",
		CreatedBy:      "alice",
		CreatedAt:      time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
		Body:           "hello",
	}}
	service.EXPECT().GetMessages(gomock.Any(), "conv-1", 50, nil).Return(views, nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/conversations/conv-1/messages", nil)
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusOK, recorder.Code)
	req.Contains(recorder.Body.String(), `"results"`)
	req.Contains(recorder.Body.String(), `"hello"`)
}

func TestQueryHandler_GetMessages_With_Cursor(t *testing.T) {
	req := require.New(t)
	router, service := newQueryRouter(t)

	before := time.Date(2026, 8, 28, 12, 0, 0, 123456789, time.UTC)
	service.EXPECT().GetMessages(gomock.Any(), "conv-1", 10, &before).Return(nil, nil)

	recorder := httptest.NewRecorder()
	target := "/conversations/conv-1/messages?limit=10&before_time=" +
		url.QueryEscape(before.Format(time.RFC3339Nano))
	request := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusOK, recorder.Code)
}

func TestQueryHandler_GetMessages_Invalid_Cursor(t *testing.T) {
	req := require.New(t)
	router, _ := newQueryRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet,
		"/conversations/conv-1/messages?before_time=yesterday", nil)
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusBadRequest, recorder.Code)
}

func TestQueryHandler_GetMessages_Permission_Denied(t *testing.T) {
	req := require.New(t)
	router, service := newQueryRouter(t)

	service.EXPECT().GetMessages(gomock.Any(), "conv-1", 50, nil).
		Return(nil, errors.ErrPermissionDenied)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/conversations/conv-1/messages", nil)
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusForbidden, recorder.Code)
}

func TestQueryHandler_Search(t *testing.T) {
	req := require.New(t)
	router, service := newQueryRouter(t)

	service.EXPECT().SearchMessages(gomock.Any(), "conv-1", "report", 20).Return(nil, nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet,
		"/conversations/conv-1/messages/search?q=report", nil)
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusOK, recorder.Code)
}

func TestQueryHandler_Search_Requires_Query(t *testing.T) {
	req := require.New(t)
	router, _ := newQueryRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet,
		"/conversations/conv-1/messages/search", nil)
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusBadRequest, recorder.Code)
}
