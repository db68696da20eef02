package types

// Collection names. One per persisted record type.
const (
	CollectionBeneficiary = "beneficiary"
	CollectionOfficer     = "officer"
	CollectionMediaUpload = "mediaupload"
	CollectionReview      = "review"
)

// DocumentIDKey is the key the store-assigned identifier is exposed under
// when a document is read back.
const DocumentIDKey = "_id"

// Document is a stored record as read back from the document store: the
// record's own fields plus DocumentIDKey.
type Document map[string]any

// ID returns the stringified store identifier, or "" when absent.
func (d Document) ID() string {
	id, _ := d[DocumentIDKey].(string)
	return id
}

// CreatedResponse is returned by every create endpoint.
type CreatedResponse struct {
	ID string `json:"id"`
}
