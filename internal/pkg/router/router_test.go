package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorconnect/server/internal/pkg/goerror"
	"github.com/creatorconnect/server/internal/pkg/jwt"
)

type fakeJWT struct {
	claims jwt.Claims
	err    error
}

func (f fakeJWT) Generate(userID, role string) (string, error) { return "token", nil }

func (f fakeJWT) Verify(tokenStr string) (jwt.Claims, error) {
	if f.err != nil {
		return jwt.Claims{}, f.err
	}
	return f.claims, nil
}

type fakeResolver struct {
	identity *Identity
	err      error
}

func (f fakeResolver) Resolve(_ context.Context, userID string) (*Identity, error) {
	return f.identity, f.err
}

type fakeUID struct{}

func (fakeUID) Generate() string { return "cid-1" }

func newTestRouter(j jwt.JWT, res IdentityResolver) *Router {
	return NewRouter(Config{UUID: fakeUID{}, JWT: j, Identity: res})
}

func doRequest(t *testing.T, ro *Router, method, path string, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var rdr *strings.Reader
	if body == "" {
		rdr = strings.NewReader("")
	} else {
		rdr = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, rdr)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var env map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestRouterWelcome(t *testing.T) {
	ro := newTestRouter(fakeJWT{}, fakeResolver{})

	rec := doRequest(t, ro, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, true, env["success"])
	assert.Equal(t, "Welcome to Creator Connect API", env["message"])
}

func TestRouterNotFound(t *testing.T) {
	ro := newTestRouter(fakeJWT{}, fakeResolver{})

	rec := doRequest(t, ro, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, false, env["success"])
}

func TestRouterHealth(t *testing.T) {
	ro := newTestRouter(fakeJWT{}, fakeResolver{})

	rec := doRequest(t, ro, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, true, env["success"])
	assert.Equal(t, "Server is healthy", env["message"])
}

func TestRouterPublicEndpoint(t *testing.T) {
	ro := newTestRouter(fakeJWT{err: errors.New("should not be called")}, fakeResolver{})
	ro.GET("/api/assets/public", func(r *Request) (any, error) {
		return map[string]string{"status": "ok"}, nil
	})

	rec := doRequest(t, ro, http.MethodGet, "/api/assets/public", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, true, env["success"])
}

func TestRouterAuthentication(t *testing.T) {
	okJWT := fakeJWT{claims: jwt.Claims{UserID: "u1", Role: "creator"}}

	tests := []struct {
		name       string
		jwt        jwt.JWT
		resolver   IdentityResolver
		authHeader string
		wantCode   int
		wantMsg    string
	}{
		{
			name:     "missing header",
			jwt:      okJWT,
			resolver: fakeResolver{},
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Authorization token is required",
		},
		{
			name:       "lowercase scheme rejected",
			jwt:        okJWT,
			resolver:   fakeResolver{},
			authHeader: "bearer sometoken",
			wantCode:   http.StatusUnauthorized,
			wantMsg:    "Authorization token is required",
		},
		{
			name:       "invalid token",
			jwt:        fakeJWT{err: jwt.ErrInvalidToken},
			resolver:   fakeResolver{},
			authHeader: "Bearer bad",
			wantCode:   http.StatusUnauthorized,
			wantMsg:    "Invalid or expired token",
		},
		{
			name:       "deleted user",
			jwt:        okJWT,
			resolver:   fakeResolver{identity: nil},
			authHeader: "Bearer good",
			wantCode:   http.StatusUnauthorized,
			wantMsg:    "Invalid token user",
		},
		{
			name:       "resolver failure",
			jwt:        okJWT,
			resolver:   fakeResolver{err: errors.New("db down")},
			authHeader: "Bearer good",
			wantCode:   http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ro := newTestRouter(tc.jwt, tc.resolver)
			ro.GET("/api/assets/me", func(r *Request) (any, error) {
				return map[string]string{}, nil
			})

			header := map[string]string{}
			if tc.authHeader != "" {
				header["Authorization"] = tc.authHeader
			}

			rec := doRequest(t, ro, http.MethodGet, "/api/assets/me", "", header)
			assert.Equal(t, tc.wantCode, rec.Code)

			env := decodeEnvelope(t, rec)
			assert.Equal(t, tc.wantMsg, env["message"])
		})
	}
}

func TestRouterAuthenticatedIdentity(t *testing.T) {
	ro := newTestRouter(
		fakeJWT{claims: jwt.Claims{UserID: "u1", Role: "creator"}},
		fakeResolver{identity: &Identity{ID: "u1", Name: "Jane", Email: "jane@example.com", Role: "creator"}},
	)

	var got *Identity
	ro.GET("/api/assets/me", func(r *Request) (any, error) {
		got = GetIdentity(r.Context())
		return map[string]string{}, nil
	})

	rec := doRequest(t, ro, http.MethodGet, "/api/assets/me", "", map[string]string{"Authorization": "Bearer good"})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "Jane", got.Name)
	assert.Equal(t, "creator", got.Role)
}

func TestRouterErrorCodec(t *testing.T) {
	ro := newTestRouter(fakeJWT{}, fakeResolver{})

	ro.POST("/api/auth/login", func(r *Request) (any, error) {
		return nil, goerror.NewBusiness("Invalid credentials", goerror.CodeUnauthorized)
	})
	ro.POST("/api/auth/register", func(r *Request) (any, error) {
		return nil, errors.New("boom")
	})

	rec := doRequest(t, ro, http.MethodPost, "/api/auth/login", "{}", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "Invalid credentials", env["message"])

	rec = doRequest(t, ro, http.MethodPost, "/api/auth/register", "{}", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env = decodeEnvelope(t, rec)
	assert.Equal(t, "Internal server error", env["message"])
}

func TestRouterRecoverer(t *testing.T) {
	ro := newTestRouter(fakeJWT{}, fakeResolver{})
	ro.POST("/api/auth/send-otp", func(r *Request) (any, error) {
		panic("boom")
	})

	rec := doRequest(t, ro, http.MethodPost, "/api/auth/send-otp", "{}", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Internal server error", env["message"])
}

func TestRequestMultipartFile(t *testing.T) {
	newUpload := func(t *testing.T, field string, size int) *http.Request {
		t.Helper()

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile(field, "clip.mp4")
		require.NoError(t, err)
		_, err = fw.Write(bytes.Repeat([]byte("a"), size))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/assets", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		return req
	}

	t.Run("ReturnsFile", func(t *testing.T) {
		r := &Request{Request: newUpload(t, "file", 1024)}

		f, header, err := r.MultipartFile("file")
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, "clip.mp4", header.Filename)
		assert.Equal(t, int64(1024), header.Size)
	})

	t.Run("MissingFile", func(t *testing.T) {
		r := &Request{Request: newUpload(t, "other", 8)}

		_, _, err := r.MultipartFile("file")
		require.Error(t, err)

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "File is required", gerr.Msg())
	})

	t.Run("WrongContentType", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/assets", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		r := &Request{Request: req}

		_, _, err := r.MultipartFile("file")
		require.Error(t, err)
	})

	t.Run("AbortsOversizedBody", func(t *testing.T) {
		// The body cap rejects the upload at parse time, before the file
		// would be spooled to disk.
		r := &Request{Request: newUpload(t, "file", 17<<20)}

		_, _, err := r.MultipartFile("file")
		require.Error(t, err)

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "File size cannot exceed 15MB", gerr.Msg())
		assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
	})
}

func TestRequestDecodeBody(t *testing.T) {
	ro := newTestRouter(fakeJWT{}, fakeResolver{})

	type payload struct {
		Email string `json:"email"`
	}

	var got payload
	ro.POST("/api/auth/send-otp", func(r *Request) (any, error) {
		if err := r.DecodeBody(&got); err != nil {
			return nil, err
		}
		return map[string]string{}, nil
	})

	rec := doRequest(t, ro, http.MethodPost, "/api/auth/send-otp", `{"email":"a@x.com"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@x.com", got.Email)

	rec = doRequest(t, ro, http.MethodPost, "/api/auth/send-otp", `{"email":"a@x.com","extra":1}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
