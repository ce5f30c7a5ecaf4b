package api

import (
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/mocks"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConversationRouter(t *testing.T) (*gin.Engine, *mocks.MockIConversationService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIConversationService(ctrl)
	handler := NewConversationHandler(service)

	router := gin.New()
	router.POST("/conversations", handler.Create)
	router.PUT("/conversations/:id", handler.Update)
	router.DELETE("/conversations/:id", handler.Delete)
	return router, service
}

func TestConversationHandler_Create(t *testing.T) {
	req := require.New(t)
	router, service := newConversationRouter(t)

	service.EXPECT().
		Create(gomock.Any(), domain.Conversation{
			ParticipantIDs: []string{"alice", "bob"},
		}).
		Return(domain.Conversation{
			ID:             "conv-1",
			ParticipantIDs: []string{"alice", "bob"},
			AdminIDs:       []string{"alice", "bob"},
		}, nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/conversations",
		strings.NewReader(`{"participant_ids":["alice","bob"]}`))
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusCreated, recorder.Code)
	req.JSONEq(`{
		"id": "conv-1",
		"participant_ids": ["alice","bob"],
		"admin_ids": ["alice","bob"],
		"is_direct_message": false
	}`, recorder.Body.String())
}

func TestConversationHandler_Create_Malformed_Body(t *testing.T) {
	req := require.New(t)
	router, _ := newConversationRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/conversations", strings.NewReader("{not json"))
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusBadRequest, recorder.Code)
}

func TestConversationHandler_Create_Error_Mapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"empty participants", errors.ErrInvalidParticipants, http.StatusBadRequest},
		{"bad direct message", errors.ErrInvalidDirectMessage, http.StatusBadRequest},
		{"not a participant", errors.ErrPermissionDenied, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			router, service := newConversationRouter(t)
			service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.Conversation{}, tc.err)

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, "/conversations",
				strings.NewReader(`{"participant_ids":["alice"]}`))
			router.ServeHTTP(recorder, request)

			req.Equal(tc.status, recorder.Code)
		})
	}
}

func TestConversationHandler_Update(t *testing.T) {
	req := require.New(t)
	router, service := newConversationRouter(t)

	service.EXPECT().
		Update(gomock.Any(), domain.Conversation{
			ID:             "conv-1",
			ParticipantIDs: []string{"alice"},
		}).
		Return(domain.Conversation{
			ID:             "conv-1",
			ParticipantIDs: []string{"alice"},
			AdminIDs:       []string{"alice"},
		}, nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut, "/conversations/conv-1",
		strings.NewReader(`{"participant_ids":["alice"]}`))
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusOK, recorder.Code)
}

func TestConversationHandler_Delete(t *testing.T) {
	req := require.New(t)
	router, service := newConversationRouter(t)

	service.EXPECT().Delete(gomock.Any(), "conv-1").Return(nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/conversations/conv-1", nil)
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusNoContent, recorder.Code)
}

func TestConversationHandler_Delete_Unknown(t *testing.T) {
	req := require.New(t)
	router, service := newConversationRouter(t)

	service.EXPECT().Delete(gomock.Any(), "ghost").Return(errors.ErrConversationNotFound)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/conversations/ghost", nil)
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusNotFound, recorder.Code)
}
