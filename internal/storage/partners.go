package storage

import (
	"log"

	"pingo/backend/internal/models"
)

// DerivePartnerIDs extracts the distinct counterpart IDs from a user's
// messages, preserving the order the messages were given in (newest-first
// input yields most-recently-active partners first). Zero IDs are dropped.
func DerivePartnerIDs(messages []models.Message, userID uint) []uint {
	seen := make(map[uint]struct{}, len(messages))
	ids := make([]uint, 0, len(messages))

	for _, msg := range messages {
		partner := msg.SenderID
		if msg.SenderID == userID {
			partner = msg.ReceiverID
		}
		if partner == 0 {
			continue
		}
		if _, ok := seen[partner]; ok {
			continue
		}
		seen[partner] = struct{}{}
		ids = append(ids, partner)
	}

	return ids
}

// ListChatPartners returns everyone the user has exchanged at least one
// message with, each annotated with the user's current archived flag.
func (s *Service) ListChatPartners(userID uint) ([]models.ChatPartner, error) {
	messages, err := s.GetMessagesForUser(userID)
	if err != nil {
		return nil, err
	}

	partnerIDs := DerivePartnerIDs(messages, userID)
	if len(partnerIDs) == 0 {
		return []models.ChatPartner{}, nil
	}

	profiles, err := s.GetUsersByIDs(partnerIDs)
	if err != nil {
		return nil, err
	}

	archived, err := s.GetArchived(userID)
	if err != nil {
		log.Printf("WARNING: Falling back to unarchived view for user %d: %v", userID, err)
		archived = models.ArchivedSet{}
	}

	byID := make(map[uint]models.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	// Keep the derived most-recent-first ordering.
	partners := make([]models.ChatPartner, 0, len(partnerIDs))
	for _, id := range partnerIDs {
		profile, ok := byID[id]
		if !ok {
			continue
		}
		partners = append(partners, models.ChatPartner{
			Profile:    profile,
			IsArchived: archived.Has(id),
		})
	}

	return partners, nil
}
