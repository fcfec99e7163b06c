package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	appctx "godown/internal/core/context"
)

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		user *appctx.UserContext
		want int
	}{
		{
			name: "no user",
			user: nil,
			want: http.StatusUnauthorized,
		},
		{
			name: "regular user",
			user: &appctx.UserContext{UserID: "u1"},
			want: http.StatusForbidden,
		},
		{
			name: "admin",
			user: &appctx.UserContext{UserID: "u2", IsAdmin: true},
			want: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(ErrorHandler())
			if tt.user != nil {
				router.Use(func(c *gin.Context) {
					ctx := appctx.WithUser(c.Request.Context(), tt.user)
					c.Request = c.Request.WithContext(ctx)
					c.Next()
				})
			}
			router.GET("/admin", RequireAdmin(), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
