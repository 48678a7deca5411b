package messages

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"portal-gateway/internal/session"
	"portal-gateway/internal/shared/server/middleware"
	"portal-gateway/internal/upstream"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func seekerToken(t *testing.T) string {
	t.Helper()
	payload, err := json.Marshal(session.Claims{Sub: "s1", UserType: session.UserTypeSeeker})
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(`{"alg":"HS256"}`)) + "." +
		enc.EncodeToString(payload) + "." + enc.EncodeToString([]byte("sig"))
}

func newMessagesRouter(t *testing.T, backend http.HandlerFunc) *gin.Engine {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	r := gin.New()
	group := r.Group("", middleware.Auth())
	NewHandler(upstream.New(srv.URL, 5*time.Second)).RegisterRoutes(group)
	return r
}

func TestListMessagesSentSelector(t *testing.T) {
	token := seekerToken(t)
	var gotType string
	r := newMessagesRouter(t, func(w http.ResponseWriter, req *http.Request) {
		gotType = req.URL.Query().Get("type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	// The sent mailbox is selected with ?type=sent, end to end.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/messages?type=sent", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if gotType != "sent" {
		t.Fatalf("upstream saw type=%q, want sent", gotType)
	}
}

func TestListMessagesDefaultsToInbox(t *testing.T) {
	token := seekerToken(t)
	var sawTypeParam bool
	r := newMessagesRouter(t, func(w http.ResponseWriter, req *http.Request) {
		sawTypeParam = req.URL.Query().Has("type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/messages", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if sawTypeParam {
		t.Fatal("inbox request must not carry a type parameter")
	}
}
