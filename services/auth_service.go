package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(db *gorm.DB, ur *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, UserRepo: ur, jwtSecret: secret, jwtTTL: ttl}
}

// Register creates the account and puts it in the Customer group.
func (s *AuthService) Register(username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.UserRepo.CountByUsernameOrEmail(username, email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{Username: username, Email: email, Password: string(hashed)}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		var g entity.Group
		if err := tx.Where("name = ?", entity.GroupCustomer).First(&g).Error; err != nil {
			return err
		}
		return tx.Model(user).Association("Groups").Append(&g)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and mints a token. The token carries only
// the user id, roles are resolved per request from group membership.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	user, err := s.UserRepo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrBadLogin
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrBadLogin
	}

	token, err := utils.GenerateToken(user.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Profile(userID uint) (*entity.User, []string, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}
	groups, err := s.UserRepo.GroupNames(userID)
	if err != nil {
		return nil, nil, err
	}
	return user, groups, nil
}
