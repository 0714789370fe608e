package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/repository"
	"github.com/mohameddsalmann/resturants-mangment/utils"

	"golang.org/x/crypto/bcrypt"
)

type StaffService struct {
	Repo      *repository.StaffRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewStaffService(repo *repository.StaffRepository, secret string, ttl time.Duration) *StaffService {
	return &StaffService{Repo: repo, jwtSecret: secret, jwtTTL: ttl}
}

func generatePIN() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", 1000+n.Int64()), nil
}

// Add creates a kitchen member and returns the one-time plaintext PIN.
func (s *StaffService) Add(restID uint, name string) (*entity.Staff, string, error) {
	pin, err := generatePIN()
	if err != nil {
		return nil, "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	staff := &entity.Staff{
		Name:         strings.TrimSpace(name),
		Role:         entity.RoleKitchen,
		PinHash:      string(hash),
		RestaurantID: restID,
	}
	if err := s.Repo.Create(staff); err != nil {
		return nil, "", err
	}
	return staff, pin, nil
}

func (s *StaffService) List(restID uint) ([]entity.Staff, error) {
	return s.Repo.List(restID)
}

func (s *StaffService) Remove(restID, id uint) error {
	return s.Repo.Delete(restID, id)
}

// KitchenLogin matches the PIN against the restaurant's kitchen staff and
// issues a kitchen token.
func (s *StaffService) KitchenLogin(restID uint, pin string) (string, *entity.Staff, error) {
	staff, err := s.Repo.ListKitchen(restID)
	if err != nil {
		return "", nil, err
	}
	for i := range staff {
		if bcrypt.CompareHashAndPassword([]byte(staff[i].PinHash), []byte(pin)) == nil {
			token, err := utils.GenerateToken(utils.Claims{
				StaffID:      staff[i].ID,
				Role:         entity.RoleKitchen,
				RestaurantID: restID,
			}, s.jwtSecret, s.jwtTTL)
			if err != nil {
				return "", nil, err
			}
			return token, &staff[i], nil
		}
	}
	return "", nil, ErrInvalidCredentials
}
