package entity

// Visibility controls who can list an asset.
type Visibility string

const (
	// VisibilityPublic makes the asset appear in the public feed.
	VisibilityPublic Visibility = "public"
	// VisibilityPrivate keeps the asset visible to its owner only.
	VisibilityPrivate Visibility = "private"
)

// String returns the visibility as its stored string value.
func (v Visibility) String() string {
	return string(v)
}

// Valid reports whether the value is a recognized visibility.
func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}
