package schema

import (
	"errors"
	"net/url"
	"testing"

	"loantracker/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()

	var verr *types.ValidationError
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)

	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestDecodeBeneficiary(t *testing.T) {
	var b types.Beneficiary
	err := Decode([]byte(`{"phone":"9990001111","name":"Asha","state":"KA","loan_amount":50000}`), &b)
	require.NoError(t, err)

	assert.Equal(t, "9990001111", b.Phone)
	assert.Equal(t, "Asha", b.Name)
	require.NotNil(t, b.State)
	assert.Equal(t, "KA", *b.State)
	require.NotNil(t, b.LoanAmount)
	assert.Equal(t, 50000.0, *b.LoanAmount)

	assert.Nil(t, b.District, "absent optional fields stay absent")
	assert.Nil(t, b.Bank)
}

func TestDecodeBeneficiaryMissingRequired(t *testing.T) {
	var b types.Beneficiary
	err := Decode([]byte(`{"state":"KA"}`), &b)
	assert.ElementsMatch(t, []string{"phone", "name"}, fieldNames(t, err))
}

func TestDecodeWrongType(t *testing.T) {
	var b types.Beneficiary
	err := Decode([]byte(`{"phone":"1","name":"A","loan_amount":"lots"}`), &b)
	assert.Equal(t, []string{"loan_amount"}, fieldNames(t, err))
}

func TestDecodeRejectsNonObjects(t *testing.T) {
	for _, body := range []string{``, `null`, `[]`, `"x"`, `{"phone":`} {
		var b types.Beneficiary
		err := Decode([]byte(body), &b)
		assert.Equal(t, []string{"body"}, fieldNames(t, err), "body %q", body)
	}
}

func TestDecodeUploadLocation(t *testing.T) {
	base := `"beneficiary_phone":"1","file_name":"a.jpg","mime_type":"image/jpeg","data_base64":"aGk="`

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "both present", body: `{` + base + `,"latitude":12.97,"longitude":77.59}`},
		{name: "zero coordinates", body: `{` + base + `,"latitude":0,"longitude":0}`},
		{name: "missing latitude", body: `{` + base + `,"longitude":77.59}`, wantErr: types.ErrLocationRequired},
		{name: "missing both", body: `{` + base + `}`, wantErr: types.ErrLocationRequired},
		{name: "null longitude", body: `{` + base + `,"latitude":1,"longitude":null}`, wantErr: types.ErrLocationRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u types.MediaUpload
			err := Decode([]byte(tt.body), &u)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodeUploadOutOfRange(t *testing.T) {
	var u types.MediaUpload
	err := Decode([]byte(`{"beneficiary_phone":"1","file_name":"a","mime_type":"m","data_base64":"d","latitude":91,"longitude":-181,"accuracy":-1}`), &u)
	assert.ElementsMatch(t, []string{"latitude", "longitude", "accuracy"}, fieldNames(t, err))
}

func TestDecodeUploadCapturedAt(t *testing.T) {
	var u types.MediaUpload
	err := Decode([]byte(`{"beneficiary_phone":"1","file_name":"a","mime_type":"m","data_base64":"d","latitude":1,"longitude":1,"captured_at":"2024-03-01T10:00:00Z"}`), &u)
	require.NoError(t, err)
	require.NotNil(t, u.CapturedAt)
	assert.Equal(t, 2024, u.CapturedAt.Year())

	for _, value := range []string{`"yesterday"`, `12345`, `true`, `{}`} {
		var bad types.MediaUpload
		err = Decode([]byte(`{"beneficiary_phone":"1","file_name":"a","mime_type":"m","data_base64":"d","latitude":1,"longitude":1,"captured_at":`+value+`}`), &bad)
		assert.Equal(t, []string{"captured_at"}, fieldNames(t, err), "captured_at %s", value)
	}

	var none types.MediaUpload
	require.NoError(t, Decode([]byte(`{"beneficiary_phone":"1","file_name":"a","mime_type":"m","data_base64":"d","latitude":1,"longitude":1,"captured_at":null}`), &none))
	assert.Nil(t, none.CapturedAt)
}

func TestDecodeBeneficiaryNegativeLoanAmount(t *testing.T) {
	var b types.Beneficiary
	require.NoError(t, Decode([]byte(`{"phone":"1","name":"A","loan_amount":-100}`), &b))
	require.NotNil(t, b.LoanAmount)
	assert.Equal(t, -100.0, *b.LoanAmount)
}

func TestDecodeRejectsNUL(t *testing.T) {
	var b types.Beneficiary
	err := Decode([]byte(`{"phone":"1","name":"A\u0000B"}`), &b)
	assert.Equal(t, []string{"name"}, fieldNames(t, err))

	var u types.MediaUpload
	err = Decode([]byte(`{"beneficiary_phone":"1","file_name":"a","mime_type":"m","data_base64":"d","latitude":1,"longitude":1,"notes":"\u0000"}`), &u)
	assert.Equal(t, []string{"notes"}, fieldNames(t, err))

	var f types.BeneficiaryFilter
	err = DecodeQuery(url.Values{"phone": {"1\x00"}}, &f)
	assert.Equal(t, []string{"phone"}, fieldNames(t, err))
}

func TestDecodeReviewApprovedFalse(t *testing.T) {
	var r types.Review
	require.NoError(t, Decode([]byte(`{"upload_id":"u1","reviewer_phone":"2","approved":false}`), &r))
	require.NotNil(t, r.Approved)
	assert.False(t, *r.Approved)

	var missing types.Review
	err := Decode([]byte(`{"upload_id":"u1","reviewer_phone":"2"}`), &missing)
	assert.Equal(t, []string{"approved"}, fieldNames(t, err))
}

func TestValidateOfficerDefaults(t *testing.T) {
	o := &types.Officer{Phone: "1", Name: "Ravi"}
	require.NoError(t, Validate(o))
	assert.Equal(t, types.OfficerRoleOfficer, o.Role)

	bad := &types.Officer{Phone: "1", Name: "Ravi", Role: "superuser"}
	assert.Equal(t, []string{"role"}, fieldNames(t, Validate(bad)))
}

func TestDecodeQuery(t *testing.T) {
	var f types.BeneficiaryFilter
	require.NoError(t, DecodeQuery(url.Values{"state": {"KA"}, "district": {""}}, &f))
	assert.Equal(t, map[string]any{"state": "KA"}, f.Map())

	var none types.ReviewFilter
	require.NoError(t, DecodeQuery(url.Values{}, &none))
	assert.Empty(t, none.Map())
}
