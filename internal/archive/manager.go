// Package archive owns the per-user archived-conversation set. Validation
// happens here before any write; the set mutation itself is a single atomic
// statement in the store, so concurrent updates for the same user cannot
// lose each other's changes.
package archive

import (
	"errors"
	"strconv"

	"pingo/backend/internal/models"
	"pingo/backend/internal/storage"
)

var (
	// ErrInvalidPartner flags a malformed partner ID or a self-reference.
	ErrInvalidPartner = errors.New("archive: invalid partner id")
	// ErrPartnerNotFound flags a partner ID that resolves to no user.
	ErrPartnerNotFound = errors.New("archive: partner not found")
)

// Store is the slice of the storage layer the manager needs.
type Store interface {
	GetUserByID(id uint) (*models.User, error)
	GetArchived(userID uint) (models.ArchivedSet, error)
	AddArchived(userID, partnerID uint) (models.ArchivedSet, error)
	RemoveArchived(userID, partnerID uint) (models.ArchivedSet, error)
}

type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Add archives the partner for the user and returns the resulting set.
// Adding an already-archived partner is a no-op. The partner must be a valid
// ID, not the user themselves, and must exist.
func (m *Manager) Add(userID uint, rawPartnerID string) (models.ArchivedSet, error) {
	partnerID, err := parsePartnerID(rawPartnerID)
	if err != nil {
		return nil, err
	}
	if partnerID == userID {
		return nil, ErrInvalidPartner
	}

	if _, err := m.store.GetUserByID(partnerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}

	return m.store.AddArchived(userID, partnerID)
}

// Remove unarchives the partner. Removing an absent entry is a no-op, not an
// error.
func (m *Manager) Remove(userID uint, rawPartnerID string) (models.ArchivedSet, error) {
	partnerID, err := parsePartnerID(rawPartnerID)
	if err != nil {
		return nil, err
	}
	if partnerID == userID {
		return nil, ErrInvalidPartner
	}

	return m.store.RemoveArchived(userID, partnerID)
}

// List returns the user's current archived set, ascending.
func (m *Manager) List(userID uint) (models.ArchivedSet, error) {
	return m.store.GetArchived(userID)
}

func parsePartnerID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidPartner
	}
	return uint(id), nil
}
