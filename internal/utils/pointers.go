package utils

func StringPtr(s string) *string {
	return &s
}

// StringPtrOrNil maps "" to nil, for optional inputs where empty means absent.
func StringPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
