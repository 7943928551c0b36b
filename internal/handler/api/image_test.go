//go:build unit

package api_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"ramillete/internal/handler/api"
	commonhttp "ramillete/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeImageStore struct {
	lastObject      string
	lastContentType string
	lastData        []byte
	err             error
}

func (f *fakeImageStore) Upload(_ context.Context, objectName string, data []byte, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastObject = objectName
	f.lastContentType = contentType
	f.lastData = data
	return "http://images.local/bucket/" + objectName, nil
}

type ImageHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *fakeImageStore
}

func (s *ImageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.store = &fakeImageStore{}
	s.router.POST("/api/images", api.NewImageHandler(s.store).Upload)
}

func TestImageHandlerSuite(t *testing.T) {
	suite.Run(t, new(ImageHandlerTestSuite))
}

func (s *ImageHandlerTestSuite) performUpload(contentType string, data []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="photo"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(s.T(), err)
	_, err = part.Write(data)
	require.NoError(s.T(), err)
	require.NoError(s.T(), writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/images", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ImageHandlerTestSuite) TestUpload() {
	s.Run("success: returns 201 Created with public URL", func() {
		rec := s.performUpload("image/png", []byte("fake png bytes"))

		var response map[string]string
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		assert.Equal(s.T(), "http://images.local/bucket/"+s.store.lastObject, response["url"])
		assert.Equal(s.T(), "image/png", s.store.lastContentType)
		assert.Equal(s.T(), []byte("fake png bytes"), s.store.lastData)
	})

	s.Run("error: 400 Bad Request for unsupported content type", func() {
		rec := s.performUpload("application/pdf", []byte("%PDF-"))
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unsupported image type")
	})

	s.Run("error: 400 Bad Request when image part is missing", func() {
		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/images", map[string]string{"not": "a form"})
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid image upload")
	})

	s.Run("error: 503 Service Unavailable when storage is not configured", func() {
		router := gin.New()
		router.POST("/api/images", api.NewImageHandler(nil).Upload)

		req := httptest.NewRequest(http.MethodPost, "/api/images", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, "Image uploads are not available")
	})
}
