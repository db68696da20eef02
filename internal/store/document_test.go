package store

import (
	"testing"

	"loantracker/internal/utils"
	"loantracker/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQueryWithoutFilter(t *testing.T) {
	query, args, err := buildQuery(types.CollectionBeneficiary, map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, body FROM documents WHERE collection = $1 ORDER BY seq ASC", query)
	assert.Equal(t, []any{"beneficiary"}, args)
}

func TestBuildQueryWithFilter(t *testing.T) {
	query, args, err := buildQuery(types.CollectionReview, map[string]any{
		"upload_id":      "u1",
		"reviewer_phone": "9990001111",
	})
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, body FROM documents WHERE collection = $1 AND body @> $2::jsonb ORDER BY seq ASC", query)
	require.Len(t, args, 2)
	assert.Equal(t, "review", args[0])
	assert.JSONEq(t, `{"upload_id":"u1","reviewer_phone":"9990001111"}`, args[1].(string))
}

func TestBuildInsert(t *testing.T) {
	b := types.Beneficiary{Phone: "1", Name: "Asha", State: utils.StringPtr("KA")}

	query, args, err := buildInsert("abc", types.CollectionBeneficiary, b)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO documents (id,collection,body) VALUES ($1,$2,$3)", query)
	require.Len(t, args, 3)
	assert.Equal(t, "abc", args[0])
	assert.Equal(t, "beneficiary", args[1])

	// absent optional fields are stored as explicit nulls
	assert.JSONEq(t, `{
		"phone":"1","name":"Asha","state":"KA","district":null,"address":null,
		"scheme":null,"bank":null,"loan_id":null,"loan_amount":null
	}`, args[2].(string))
}

func TestDecodeRows(t *testing.T) {
	docs, err := decodeRows([]documentRow{
		{ID: "first", Body: []byte(`{"phone":"1","name":"A"}`)},
		{ID: "second", Body: []byte(`{"phone":"2","name":"B","state":null}`)},
	})
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "first", docs[0].ID())
	assert.Equal(t, "1", docs[0]["phone"])
	assert.Equal(t, "second", docs[1][types.DocumentIDKey])
	assert.Contains(t, docs[1], "state")
	assert.Nil(t, docs[1]["state"])
}

func TestDecodeRowsEmpty(t *testing.T) {
	docs, err := decodeRows(nil)
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestDecodeRowsBadBody(t *testing.T) {
	_, err := decodeRows([]documentRow{{ID: "x", Body: []byte(`not json`)}})
	assert.ErrorContains(t, err, "decode document x")
}
