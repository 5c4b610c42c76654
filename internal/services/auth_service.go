package services

import (
	"errors"

	"github.com/careerlane/job-portal/internal/auth"
	"github.com/careerlane/job-portal/internal/dtos"
	"github.com/careerlane/job-portal/internal/models"
	"gorm.io/gorm"
)

type AuthService struct {
	DB        *gorm.DB
	JWTSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		DB:        db,
		JWTSecret: jwtSecret,
	}
}

// Register creates a user with a bcrypt-hashed password. Role defaults
// to "user" when the request leaves it empty.
func (s *AuthService) Register(req *dtos.RegisterRequest) (*models.User, error) {
	var existing models.User
	err := s.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashed,
		Role:        role,
		CompanyName: req.CompanyName,
	}
	if err := s.DB.Create(user).Error; err != nil {
		// unique index on email backs up the pre-check
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and issues a signed token carrying the
// user id and role as of now.
func (s *AuthService) Login(req *dtos.LoginRequest) (*models.User, string, error) {
	var user models.User
	if err := s.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrBadCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		return nil, "", ErrBadCredentials
	}

	token, err := auth.IssueToken(s.JWTSecret, user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
