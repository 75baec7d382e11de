package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
	"github.com/s0ph13d3f45w/landlord-ai/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequireSession(t *testing.T) {
	tests := []struct {
		name       string
		cookie     string
		session    *domain.Session
		wantStatus int
		wantID     uint
	}{
		{
			name:       "valid session",
			cookie:     "abc123",
			session:    &domain.Session{ID: "abc123", LandlordID: 7, ExpiresAt: time.Now().Add(time.Hour)},
			wantStatus: http.StatusOK,
			wantID:     7,
		},
		{
			name:       "missing cookie",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown session",
			cookie:     "stale",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionRepo := mocks.NewMockSessionRepository()
			sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
				if tt.session != nil && sessionID == tt.session.ID {
					return tt.session, nil
				}
				return nil, domain.ErrSessionNotFound
			}

			var gotID uint
			var gotOK bool
			router := gin.New()
			router.GET("/dashboard/stats", NewSessionMW(sessionRepo).RequireSession(), func(c *gin.Context) {
				gotID, gotOK = LandlordID(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if !gotOK || gotID != tt.wantID {
					t.Errorf("landlordID = %d ok=%v, want %d", gotID, gotOK, tt.wantID)
				}
			} else if gotOK {
				t.Error("handler must not run for rejected requests")
			}
		})
	}
}

func TestLandlordID_WithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, ok := LandlordID(c); ok {
		t.Error("LandlordID must report false when the middleware did not run")
	}
}
