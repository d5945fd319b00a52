// form/media.go
package form

import (
	"context"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sellora/backoffice/config"
	"github.com/sellora/backoffice/models"
)

// MediaDeleter removes a stored image from a persisted item.
type MediaDeleter interface {
	DeleteItemImage(ctx context.Context, itemID, imageID uuid.UUID) error
}

// MediaManager keeps the two image collections of an item draft: images
// already stored on the server and locally selected files not yet uploaded.
// The two are indexed independently and never mix. Removing a stored image
// deletes it on the server before local state changes; removing a pending
// file only releases its preview.
type MediaManager struct {
	cfg      config.MediaConfig
	deleter  MediaDeleter
	log      *logrus.Entry
	itemID   uuid.UUID
	existing []models.ItemImage
	pending  []models.PendingFile
	previews map[string]struct{}
}

func NewMediaManager(cfg config.MediaConfig, deleter MediaDeleter) *MediaManager {
	return &MediaManager{
		cfg:      cfg,
		deleter:  deleter,
		log:      logrus.WithField("component", "media_manager"),
		previews: make(map[string]struct{}),
	}
}

// SeedExisting replaces the stored-image collection from a persisted item.
func (m *MediaManager) SeedExisting(itemID uuid.UUID, images []models.ItemImage) {
	m.itemID = itemID
	m.existing = append([]models.ItemImage(nil), images...)
}

func (m *MediaManager) Existing() []models.ItemImage {
	return append([]models.ItemImage(nil), m.existing...)
}

func (m *MediaManager) Pending() []models.PendingFile {
	return append([]models.PendingFile(nil), m.pending...)
}

// Count is the total displayed image count, stored plus pending.
func (m *MediaManager) Count() int {
	return len(m.existing) + len(m.pending)
}

func (m *MediaManager) MinCount() int { return m.cfg.MinCount }
func (m *MediaManager) MaxCount() int { return m.cfg.MaxCount }

// CanAddMore drives the visibility of the add-image control.
func (m *MediaManager) CanAddMore() bool {
	return m.Count() < m.cfg.MaxCount
}

// AddFiles admits the whole batch or none of it. Every file must pass the
// type allowlist and size limit, and the combined count must stay within
// the configured cap, before any state changes.
func (m *MediaManager) AddFiles(files []models.PendingFile) error {
	if len(files) == 0 {
		return nil
	}

	if m.Count()+len(files) > m.cfg.MaxCount {
		return fmt.Errorf("you can upload at most %d images", m.cfg.MaxCount)
	}

	accepted := make([]models.PendingFile, 0, len(files))
	for _, file := range files {
		size := file.Size
		if size == 0 {
			size = int64(len(file.Data))
		}
		if size > m.cfg.MaxFileSize {
			return fmt.Errorf("image %s is larger than the %dMB limit",
				file.Name, m.cfg.MaxFileSize/(1024*1024))
		}

		detected := mimetype.Detect(file.Data)
		if !m.isAllowedType(detected) {
			return fmt.Errorf("image %s must be one of: jpeg, png, webp", file.Name)
		}

		file.Size = size
		file.MIME = detected.String()
		accepted = append(accepted, file)
	}

	for i := range accepted {
		accepted[i].Preview = m.newPreview()
	}
	m.pending = append(m.pending, accepted...)

	return nil
}

// RemovePending drops the local file at idx and releases its preview.
func (m *MediaManager) RemovePending(idx int) error {
	if idx < 0 || idx >= len(m.pending) {
		return fmt.Errorf("no pending image at position %d", idx)
	}

	m.releasePreview(m.pending[idx].Preview)
	m.pending = append(m.pending[:idx], m.pending[idx+1:]...)

	return nil
}

// RemoveExisting deletes the stored image at idx on the server first. The
// local collection changes only after the remote call succeeds; on failure
// it is left exactly as it was.
func (m *MediaManager) RemoveExisting(ctx context.Context, idx int) error {
	if idx < 0 || idx >= len(m.existing) {
		return fmt.Errorf("no stored image at position %d", idx)
	}

	img := m.existing[idx]
	if err := m.deleter.DeleteItemImage(ctx, m.itemID, img.RemoteID); err != nil {
		m.log.WithError(err).WithField("image_id", img.RemoteID).Warn("Image delete failed")
		return errors.Wrap(err, "delete stored image")
	}

	m.existing = append(m.existing[:idx], m.existing[idx+1:]...)

	return nil
}

// ReleaseAll frees every pending preview. Called when the editing session
// is discarded.
func (m *MediaManager) ReleaseAll() {
	for i := range m.pending {
		m.releasePreview(m.pending[i].Preview)
		m.pending[i].Preview = ""
	}
	m.previews = make(map[string]struct{})
}

func (m *MediaManager) isAllowedType(mt *mimetype.MIME) bool {
	for _, allowed := range m.cfg.AllowedTypes {
		if mt.Is(allowed) {
			return true
		}
	}
	return false
}

func (m *MediaManager) newPreview() string {
	handle := "preview://" + uuid.NewString()
	m.previews[handle] = struct{}{}
	return handle
}

func (m *MediaManager) releasePreview(handle string) {
	delete(m.previews, handle)
}

// PreviewAlive reports whether a preview handle is still registered.
func (m *MediaManager) PreviewAlive(handle string) bool {
	_, alive := m.previews[handle]
	return alive
}
