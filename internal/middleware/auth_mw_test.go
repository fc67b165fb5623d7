package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobportal/internal/model"
	"jobportal/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// staticUserRepo serves a single fixed user, keyed by its id.
type staticUserRepo struct {
	user *model.User
}

func (r *staticUserRepo) Create(_ context.Context, _ *model.User) (*model.User, error) {
	return nil, nil
}

func (r *staticUserRepo) FindByEmail(_ context.Context, _ string) (*model.User, error) {
	return nil, nil
}

func (r *staticUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	if r.user != nil && r.user.ID.Hex() == id {
		return r.user, nil
	}
	return nil, nil
}

func (r *staticUserRepo) Save(_ context.Context, _ *model.User) (*model.User, error) {
	return nil, nil
}

func newAuthTestRouter(jwtUtil *utils.JWTUtil, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append([]gin.HandlerFunc{AuthRequired(jwtUtil)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "success": true})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestAuthRequired_NoCookie(t *testing.T) {
	router := newAuthTestRouter(utils.NewJWTUtil("secret", 24))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_GarbageToken(t *testing.T) {
	router := newAuthTestRouter(utils.NewJWTUtil("secret", 24))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "not.a.token"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_ExpiredToken(t *testing.T) {
	// A cookie can outlive its token; the expired token must be rejected
	// even though the client still presents it.
	expired := utils.NewJWTUtil("secret", -1)
	token, err := expired.GenerateToken(bson.NewObjectID().Hex())
	require.NoError(t, err)

	router := newAuthTestRouter(utils.NewJWTUtil("secret", 24))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_WrongSecret(t *testing.T) {
	other := utils.NewJWTUtil("other-secret", 24)
	token, err := other.GenerateToken(bson.NewObjectID().Hex())
	require.NoError(t, err)

	router := newAuthTestRouter(utils.NewJWTUtil("secret", 24))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_ValidToken(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 24)
	userID := bson.NewObjectID().Hex()
	token, err := jwtUtil.GenerateToken(userID)
	require.NoError(t, err)

	router := newAuthTestRouter(jwtUtil)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID)
}

func TestRoleRequired_AllowsMatchingRole(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 24)
	recruiter := &model.User{ID: bson.NewObjectID(), Role: model.RoleRecruiter}
	token, err := jwtUtil.GenerateToken(recruiter.ID.Hex())
	require.NoError(t, err)

	router := newAuthTestRouter(jwtUtil, RecruiterRequired(&staticUserRepo{user: recruiter}))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoleRequired_RejectsOtherRole(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 24)
	student := &model.User{ID: bson.NewObjectID(), Role: model.RoleStudent}
	token, err := jwtUtil.GenerateToken(student.ID.Hex())
	require.NoError(t, err)

	router := newAuthTestRouter(jwtUtil, RecruiterRequired(&staticUserRepo{user: student}))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoleRequired_UnknownUser(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 24)
	token, err := jwtUtil.GenerateToken(bson.NewObjectID().Hex())
	require.NoError(t, err)

	router := newAuthTestRouter(jwtUtil, RecruiterRequired(&staticUserRepo{}))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
