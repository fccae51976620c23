package storage

import (
	"context"
	"errors"
	"log"

	"pingo/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced user or message does not exist.
var ErrNotFound = errors.New("storage: record not found")

type Storage interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateProfilePic(userID uint, profilePic string) (*models.User, error)
	GetAllUsersExcept(userID uint) ([]models.Profile, error)
	GetUsersByIDs(ids []uint) ([]models.Profile, error)

	SaveMessage(msg *models.Message) error
	GetConversation(userID, partnerID uint, limit int) ([]models.Message, error)
	GetMessagesForUser(userID uint) ([]models.Message, error)
	ListChatPartners(userID uint) ([]models.ChatPartner, error)

	GetArchived(userID uint) (models.ArchivedSet, error)
	AddArchived(userID, partnerID uint) (models.ArchivedSet, error)
	RemoveArchived(userID, partnerID uint) (models.ArchivedSet, error)
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// CreateUser inserts a new user row. The duplicate-email case surfaces as the
// driver's unique-violation error and is handled by the caller.
func (s *Service) CreateUser(user *models.User) error {
	return s.DB.Create(user).Error
}

// GetUserByID loads a full user record, archived set included.
func (s *Service) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to load user %d: %v", id, err)
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfilePic replaces the user's profile image reference and returns
// the updated record.
func (s *Service) UpdateProfilePic(userID uint, profilePic string) (*models.User, error) {
	res := s.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("profile_pic", profilePic)
	if res.Error != nil {
		log.Printf("ERROR: Failed to update profile pic for user %d: %v", userID, res.Error)
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetUserByID(userID)
}

// GetAllUsersExcept returns every other user's public profile, ordered by
// name for a stable contact list.
func (s *Service) GetAllUsersExcept(userID uint) ([]models.Profile, error) {
	var users []models.User
	if err := s.DB.Where("id != ?", userID).Order("full_name asc").Find(&users).Error; err != nil {
		log.Printf("ERROR: Failed to list contacts for user %d: %v", userID, err)
		return nil, err
	}

	profiles := make([]models.Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}
	return profiles, nil
}

// GetUsersByIDs resolves a batch of user IDs to public profiles. Unknown IDs
// are simply absent from the result.
func (s *Service) GetUsersByIDs(ids []uint) ([]models.Profile, error) {
	if len(ids) == 0 {
		return []models.Profile{}, nil
	}

	var users []models.User
	if err := s.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}

	profiles := make([]models.Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}
	return profiles, nil
}

// SaveMessage persists a message. msg.ID and msg.CreatedAt are filled in by
// the database on success.
func (s *Service) SaveMessage(msg *models.Message) error {
	if err := s.DB.Create(msg).Error; err != nil {
		log.Printf("ERROR: Failed to save message from %d to %d: %v", msg.SenderID, msg.ReceiverID, err)
		return err
	}
	return nil
}

// GetConversation returns the messages exchanged between two users, oldest
// first.
func (s *Service) GetConversation(userID, partnerID uint, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = 100
	}

	var messages []models.Message
	err := s.DB.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, partnerID, partnerID, userID).
		Order("created_at asc").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		log.Printf("ERROR: Failed to load conversation %d<->%d: %v", userID, partnerID, err)
		return nil, err
	}
	return messages, nil
}

// GetMessagesForUser returns every message the user sent or received, newest
// first, for chat-partner derivation.
func (s *Service) GetMessagesForUser(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := s.DB.
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at desc").
		Find(&messages).Error
	if err != nil {
		log.Printf("ERROR: Failed to load messages for user %d: %v", userID, err)
		return nil, err
	}
	return messages, nil
}
