package service

import "io"

// AvatarStore persists uploaded avatar images and returns the web path the
// client uses to fetch them back.
type AvatarStore interface {
	// Save validates and writes one uploaded file. filename is the original
	// client filename (used for the extension only), size the declared byte
	// length. It returns the stored file's web path.
	Save(filename string, size int64, content io.Reader) (string, error)
}
