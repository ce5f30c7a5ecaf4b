package api

import (
	"chat-core/errors"
	"chat-core/mocks"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReadPositionRouter(t *testing.T) (*gin.Engine, *mocks.MockIReadPositionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIReadPositionService(ctrl)
	handler := NewReadPositionHandler(service)

	router := gin.New()
	router.PUT("/conversations/:id/read-position", handler.Set)
	router.GET("/conversations/:id/unread-count", handler.UnreadCount)
	return router, service
}

func TestReadPositionHandler_Set(t *testing.T) {
	req := require.New(t)
	router, service := newReadPositionRouter(t)

	messageID := uuid.New()
	service.EXPECT().SetReadPosition(gomock.Any(), "conv-1", &messageID).Return(nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut, "/conversations/conv-1/read-position",
		strings.NewReader(`{"message_id":"`+messageID.String()+`"}`))
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusNoContent, recorder.Code)
}

func TestReadPositionHandler_Set_Null_MessageID(t *testing.T) {
	req := require.New(t)
	router, service := newReadPositionRouter(t)

	service.EXPECT().SetReadPosition(gomock.Any(), "conv-1", nil).Return(nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut, "/conversations/conv-1/read-position",
		strings.NewReader(`{"message_id":null}`))
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusNoContent, recorder.Code)
}

func TestReadPositionHandler_Set_Invalid_MessageID(t *testing.T) {
	req := require.New(t)
	router, _ := newReadPositionRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut, "/conversations/conv-1/read-position",
		strings.NewReader(`{"message_id":"not-a-uuid"}`))
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusBadRequest, recorder.Code)
}

func TestReadPositionHandler_Set_Stale(t *testing.T) {
	req := require.New(t)
	router, service := newReadPositionRouter(t)

	service.EXPECT().SetReadPosition(gomock.Any(), "conv-1", gomock.Any()).
		Return(errors.ErrStaleReadPosition)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut, "/conversations/conv-1/read-position",
		strings.NewReader(`{"message_id":"`+uuid.NewString()+`"}`))
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusConflict, recorder.Code)
}

func TestReadPositionHandler_UnreadCount(t *testing.T) {
	req := require.New(t)
	router, service := newReadPositionRouter(t)

	service.EXPECT().UnreadCount(gomock.Any(), "conv-1").Return(4, nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/conversations/conv-1/unread-count", nil)
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusOK, recorder.Code)
	req.JSONEq(`{"count":4}`, recorder.Body.String())
}
