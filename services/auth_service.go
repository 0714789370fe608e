package services

import (
	"strings"
	"time"

	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/repository"
	"github.com/mohameddsalmann/resturants-mangment/utils"

	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles owner register/login and token issuing.
type AuthService struct {
	userRepo  *repository.UserRepository
	restRepo  *repository.RestaurantRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, restRepo *repository.RestaurantRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		restRepo:  restRepo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func (s *AuthService) Register(email, password, name string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(name),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues an owner token. The restaurant id
// claim is zero until onboarding creates the restaurant.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	var restID uint
	if rest, err := s.restRepo.FindByOwner(user.ID); err == nil {
		restID = rest.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, err
	}

	token, err := utils.GenerateToken(utils.Claims{
		UserID:       user.ID,
		Role:         entity.RoleOwner,
		RestaurantID: restID,
	}, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// IssueOwnerToken mints a fresh owner token, used after onboarding so the
// restaurant id claim is populated without forcing a re-login.
func (s *AuthService) IssueOwnerToken(userID, restID uint) (string, error) {
	return utils.GenerateToken(utils.Claims{
		UserID:       userID,
		Role:         entity.RoleOwner,
		RestaurantID: restID,
	}, s.jwtSecret, s.jwtTTL)
}

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}
