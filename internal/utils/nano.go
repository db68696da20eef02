package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// DocumentIDSize is the length of identifiers assigned to stored documents.
const DocumentIDSize = 32

const nanoidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NanoID returns a new URL-safe document identifier.
func NanoID() string {
	return NanoIDSize(DocumentIDSize)
}

func NanoIDSize(size int) string {
	if size <= 0 {
		size = DocumentIDSize
	}

	return gonanoid.MustGenerate(nanoidAlphabet, size)
}
