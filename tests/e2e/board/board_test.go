//go:build e2e

package board_test

import (
	"net/http"
	"testing"

	resdto "ramillete/internal/handler/dto/response"
	"ramillete/tests/common/builder"
	"ramillete/tests/common/dbtest"
	"ramillete/tests/common/httptest"
	"ramillete/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"
)

type BoardE2ETestSuite struct {
	e2e.SharedSuite
}

func TestBoardE2ESuite(t *testing.T) {
	suite.Run(t, new(BoardE2ETestSuite))
}

func (s *BoardE2ETestSuite) createRecipient(name string) resdto.RecipientResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/recipients", map[string]string{"name": name})

	var created resdto.RecipientCreatedResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
	s.Require().NotNil(created.Recipient)
	return *created.Recipient
}

// ================================================================================
// TestBoardFlow
// ================================================================================

func (s *BoardE2ETestSuite) TestBoardFlow() {
	s.Run("create recipient, add offering, read it back", func() {
		recipient := s.createRecipient("Jorge")
		s.NotEmpty(recipient.ID)
		s.Equal("Jorge", recipient.Name)
		s.NotEmpty(recipient.CreatedAt)

		// The board is shareable by id
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/recipients/"+recipient.ID, nil)
		var fetched resdto.RecipientResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &fetched)
		s.Equal(recipient.ID, fetched.ID)
		s.Equal("Jorge", fetched.Name)

		offeringReq := builder.NewOfferingBuilder().
			WithType("rosario").
			WithUserName("Ana").
			WithComment("").
			WithTimestamp("2024-01-01T10:00:00Z").
			BuildCreateRequestDTO()

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/recipients/"+recipient.ID+"/offerings", offeringReq)
		var created resdto.OfferingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.Equal("Offering created successfully", created.Message)
		s.Require().NotNil(created.Offering)
		s.NotZero(created.Offering.ID)
		s.Equal(recipient.ID, created.Offering.RecipientID)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/recipients/"+recipient.ID+"/offerings", nil)
		var feed []resdto.OfferingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &feed)
		s.Require().Len(feed, 1)
		s.Equal(created.Offering.ID, feed[0].ID)
		s.Equal("rosario", feed[0].Type)
		s.Equal("Ana", feed[0].UserName)
		s.Equal("", feed[0].ImageURL)
		s.Equal("", feed[0].Comment)
		s.Equal("2024-01-01T10:00:00Z", feed[0].Timestamp)
	})

	s.Run("caller-supplied id becomes the board id", func() {
		suppliedID := "7f3b0c0a-41f2-4a10-9a59-2f58d3e0c9d1"
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/recipients",
			map[string]string{"id": suppliedID, "name": "Jorge"})

		var created resdto.RecipientCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.Require().NotNil(created.Recipient)
		s.Equal(suppliedID, created.Recipient.ID)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/recipients/"+suppliedID, nil)
		var fetched resdto.RecipientResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &fetched)
		s.Equal(suppliedID, fetched.ID)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/recipients",
			map[string]string{"id": suppliedID, "name": "Lucía"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Recipient already exists")

		count, err := dbtest.CountRows(s.DB, "recipients")
		s.Require().NoError(err)
		s.Equal(1, count)
	})

	s.Run("round trip preserves trimmed field values", func() {
		recipient := s.createRecipient("Lucía")

		offeringReq := builder.NewOfferingBuilder().
			WithType("horaSanta").
			WithUserName("  Pedro  ").
			WithImageURL("https://example.com/vela.jpg").
			WithComment("Una hora por ti").
			WithTimestamp("2024-03-05T18:30:00Z").
			BuildCreateRequestDTO()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/recipients/"+recipient.ID+"/offerings", offeringReq)
		var created resdto.OfferingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/recipients/"+recipient.ID+"/offerings", nil)
		var feed []resdto.OfferingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &feed)
		s.Require().Len(feed, 1)

		expected := resdto.OfferingResponse{
			RecipientID: recipient.ID,
			Type:        "horaSanta",
			UserName:    "Pedro",
			ImageURL:    "https://example.com/vela.jpg",
			Comment:     "Una hora por ti",
			Timestamp:   "2024-03-05T18:30:00Z",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.OfferingResponse{}, "ID"),
		}
		if diff := cmp.Diff(expected, feed[0], opts...); diff != "" {
			s.T().Errorf("Offering response mismatch (-want +got):\n%s", diff)
		}
	})
}

// ================================================================================
// TestValidation
// ================================================================================

func (s *BoardE2ETestSuite) TestValidation() {
	s.Run("whitespace-only recipient name is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/recipients", map[string]string{"name": "   "})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid recipient name")

		count, err := dbtest.CountRows(s.DB, "recipients")
		s.Require().NoError(err)
		s.Zero(count, "no recipient row should have been written")
	})

	s.Run("unknown offering type is rejected", func() {
		recipient := s.createRecipient("Jorge")

		offeringReq := builder.NewOfferingBuilder().WithType("novena").BuildCreateRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/recipients/"+recipient.ID+"/offerings", offeringReq)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid offering type")

		count, err := dbtest.CountRows(s.DB, "offerings")
		s.Require().NoError(err)
		s.Zero(count, "no offering row should have been written")
	})

	s.Run("offering for an unknown recipient answers 404 and writes nothing", func() {
		offeringReq := builder.NewOfferingBuilder().BuildCreateRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/recipients/2c9a49a8-30a8-4b7e-9067-6a31421be751/offerings", offeringReq)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Recipient not found")

		count, err := dbtest.CountRows(s.DB, "offerings")
		s.Require().NoError(err)
		s.Zero(count)
	})

	s.Run("non-uuid recipient id reads as absent", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/recipients/does-not-exist", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Recipient not found")
	})
}

// ================================================================================
// TestFeedOrdering
// ================================================================================

func (s *BoardE2ETestSuite) TestFeedOrdering() {
	s.Run("offerings come back newest first regardless of insert order", func() {
		recipient := s.createRecipient("Jorge")

		// Inserted out of chronological order on purpose
		timestamps := []string{
			"2024-01-02T10:00:00Z", // T2
			"2024-01-03T10:00:00Z", // T3
			"2024-01-01T10:00:00Z", // T1
		}
		for _, ts := range timestamps {
			offeringReq := builder.NewOfferingBuilder().WithTimestamp(ts).BuildCreateRequestDTO()
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/recipients/"+recipient.ID+"/offerings", offeringReq)
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/recipients/"+recipient.ID+"/offerings", nil)
		var feed []resdto.OfferingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &feed)
		s.Require().Len(feed, 3)
		s.Equal("2024-01-03T10:00:00Z", feed[0].Timestamp)
		s.Equal("2024-01-02T10:00:00Z", feed[1].Timestamp)
		s.Equal("2024-01-01T10:00:00Z", feed[2].Timestamp)
	})

	s.Run("equal timestamps keep a stable newest-insert-first order", func() {
		recipient := s.createRecipient("Jorge")

		for _, name := range []string{"Ana", "Pedro"} {
			offeringReq := builder.NewOfferingBuilder().WithUserName(name).WithTimestamp("2024-01-01T10:00:00Z").BuildCreateRequestDTO()
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/recipients/"+recipient.ID+"/offerings", offeringReq)
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/recipients/"+recipient.ID+"/offerings", nil)
		var feed []resdto.OfferingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &feed)
		s.Require().Len(feed, 2)
		s.Equal("Pedro", feed[0].UserName)
		s.Equal("Ana", feed[1].UserName)
	})

	s.Run("empty feed serializes as []", func() {
		recipient := s.createRecipient("Jorge")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/recipients/"+recipient.ID+"/offerings", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq("[]", rec.Body.String())
	})
}

// ================================================================================
// TestCORS
// ================================================================================

func (s *BoardE2ETestSuite) TestCORS() {
	s.Run("preflight answers the allowed origin", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodOptions, "/api/recipients", nil, map[string]string{
			"Origin":                        "http://localhost:5173",
			"Access-Control-Request-Method": "POST",
		})

		s.Equal(http.StatusNoContent, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Access-Control-Allow-Origin": "http://localhost:5173",
			"Access-Control-Max-Age":      "86400",
		})
	})

	s.Run("simple request carries the CORS header", func() {
		recipient := s.createRecipient("Jorge")

		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodGet, "/api/recipients/"+recipient.ID, nil, map[string]string{
			"Origin": "http://localhost:5173",
		})
		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Access-Control-Allow-Origin": "http://localhost:5173",
		})
	})

	s.Run("error responses carry the CORS header too", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodGet, "/api/recipients/does-not-exist", nil, map[string]string{
			"Origin": "http://localhost:5173",
		})
		s.Equal(http.StatusNotFound, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Access-Control-Allow-Origin": "http://localhost:5173",
		})
	})
}

// ================================================================================
// TestHealthAndRouting
// ================================================================================

func (s *BoardE2ETestSuite) TestHealthAndRouting() {
	s.Run("health endpoint answers ok", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ok", body["status"])
		s.Equal("ok", body["db"])
		s.Equal("disabled", body["redis"], "no redis is configured in the e2e app")
	})

	s.Run("unknown route answers the uniform 404 body", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/unknown", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
