// models/media.go
package models

// PendingFile is a locally selected image that has not been uploaded yet.
// MIME and Preview are filled in when the file is accepted into a draft;
// the preview handle stays valid until the file is removed or the editing
// session is discarded.
type PendingFile struct {
	Name    string
	Data    []byte
	Size    int64
	MIME    string
	Preview string
}
