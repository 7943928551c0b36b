//go:build unit

package request_test

import (
	"strings"
	"testing"

	reqdto "ramillete/internal/handler/dto/request"
	"ramillete/tests/common/builder"
	"ramillete/tests/common/testutil"

	"github.com/stretchr/testify/assert"
)

func TestCreateOfferingRequestValidate(t *testing.T) {
	valid := builder.NewOfferingBuilder().BuildCreateRequestDTO()

	t.Run("success: valid request", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("success: optional fields may be empty", func(t *testing.T) {
		req := valid
		req.ImageURL = ""
		req.Comment = ""
		assert.NoError(t, req.Validate())
	})

	cases := []struct {
		name    string
		mutate  func(*reqdto.CreateOfferingRequest)
		wantMsg string
	}{
		{name: "missing type", mutate: func(r *reqdto.CreateOfferingRequest) { r.Type = "" }, wantMsg: "Invalid offering type"},
		{name: "unknown type", mutate: func(r *reqdto.CreateOfferingRequest) { r.Type = "novena" }, wantMsg: "Invalid offering type"},
		{name: "missing user name", mutate: func(r *reqdto.CreateOfferingRequest) { r.UserName = "" }, wantMsg: "Invalid user name"},
		{name: "whitespace user name", mutate: func(r *reqdto.CreateOfferingRequest) { r.UserName = "   " }, wantMsg: "Invalid user name"},
		{name: "user name too long", mutate: func(r *reqdto.CreateOfferingRequest) { r.UserName = strings.Repeat("a", 101) }, wantMsg: "Invalid user name"},
		{name: "missing timestamp", mutate: func(r *reqdto.CreateOfferingRequest) { r.Timestamp = "" }, wantMsg: "Invalid timestamp"},
		{name: "unparseable timestamp", mutate: func(r *reqdto.CreateOfferingRequest) { r.Timestamp = "yesterday" }, wantMsg: "Invalid timestamp"},
	}

	for _, tc := range cases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			err := req.Validate()
			assert.EqualError(t, err, tc.wantMsg)
		})
	}

	t.Run("error: first failing field wins", func(t *testing.T) {
		req := valid
		req.Type = "novena"
		req.UserName = ""
		req.Timestamp = "bad"
		assert.EqualError(t, req.Validate(), "Invalid offering type")

		req.Type = "rosario"
		assert.EqualError(t, req.Validate(), "Invalid user name")
	})
}

func TestOfferingBindReason(t *testing.T) {
	valid := builder.NewOfferingBuilder().BuildCreateRequestDTO()

	cases := []struct {
		name    string
		mutate  func(map[string]any)
		wantMsg string
	}{
		{name: "numeric type field", mutate: testutil.Field("type", 42), wantMsg: "Invalid offering type"},
		{name: "numeric userName field", mutate: testutil.Field("userName", 42), wantMsg: "Invalid user name"},
		{name: "numeric imageUrl field", mutate: testutil.Field("imageUrl", 42), wantMsg: "Invalid image URL format"},
		{name: "numeric comment field", mutate: testutil.Field("comment", 42), wantMsg: "Invalid comment format"},
		{name: "numeric timestamp field", mutate: testutil.Field("timestamp", 42), wantMsg: "Invalid timestamp"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := testutil.DtoMap(t, valid, tc.mutate)
			err := unmarshalInto(t, m)
			assert.Error(t, err)
			assert.Equal(t, tc.wantMsg, reqdto.OfferingBindReason(err))
		})
	}

	t.Run("non-object body falls back to generic reason", func(t *testing.T) {
		err := unmarshalRaw(t, `["not", "an", "object"]`)
		assert.Error(t, err)
		assert.Equal(t, "Invalid offering data", reqdto.OfferingBindReason(err))
	})
}
