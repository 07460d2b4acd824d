package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hoa-portal/api-go/models"
	"github.com/hoa-portal/api-go/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRig() *gin.Engine {
	r := gin.New()
	r.POST("/api/admin/ping", AuthMiddleware(), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func request(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAdminTokenPasses(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateToken("u1", models.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}

	if rec := request(protectedRig(), token); rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestHomeownerTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateToken("u1", models.RoleHomeowner)
	if err != nil {
		t.Fatal(err)
	}

	if rec := request(protectedRig(), token); rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestMissingTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if rec := request(protectedRig(), ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if rec := request(protectedRig(), "not.a.jwt"); rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
