package services

// Options switches on the stricter behaviors that are off by default: album
// and photo mutations historically skipped owner checks, and deleting an
// album left its photos behind. Both stay opt-in so existing callers keep the
// semantics they were built against.
type Options struct {
	// EnforceOwnership rejects album/photo mutations by anyone but the owner.
	EnforceOwnership bool
	// CascadePhotoDelete removes an album's photos together with the album.
	CascadePhotoDelete bool
}
