package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/whoami", RequireAuth(), func(c *gin.Context) {
		userID, err := ContextIdentity{}.CurrentUser(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	req := require.New(t)
	router := authTestRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	req := require.New(t)
	router := authTestRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	request.Header.Set("Authorization", "Basic abc123")
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	req := require.New(t)
	router := authTestRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	request.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuth_InjectsIdentity(t *testing.T) {
	req := require.New(t)
	router := authTestRouter()

	token, err := GenerateToken("alice", []string{"member"}, 1*time.Hour)
	req.NoError(err)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	req.Equal(http.StatusOK, recorder.Code)
	req.JSONEq(`{"user_id":"alice"}`, recorder.Body.String())
}

func TestContextIdentity_MissingUser(t *testing.T) {
	req := require.New(t)

	_, err := ContextIdentity{}.CurrentUser(context.Background())
	req.ErrorIs(err, ErrMissingIdentity)
}
