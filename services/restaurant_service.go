package services

import (
	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/repository"

	"github.com/shopspring/decimal"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	return s.Repo.FindByID(id)
}

func (s *RestaurantService) GetByOwner(ownerID uint) (*entity.Restaurant, error) {
	return s.Repo.FindByOwner(ownerID)
}

type RestaurantIn struct {
	Name           string          `json:"name" binding:"required"`
	Logo           string          `json:"logo"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	CuisineType    string          `json:"cuisineType"`
	OperatingHours string          `json:"operatingHours"`
	TaxRate        decimal.Decimal `json:"taxRate"`
	Currency       string          `json:"currency"`
}

// Onboard creates the owner's restaurant profile.
func (s *RestaurantService) Onboard(ownerID uint, in *RestaurantIn) (*entity.Restaurant, error) {
	if in.TaxRate.IsNegative() {
		return nil, ErrInvalidPercent
	}
	rest := &entity.Restaurant{
		Name:            in.Name,
		Logo:            in.Logo,
		Address:         in.Address,
		Phone:           in.Phone,
		CuisineType:     in.CuisineType,
		OperatingHours:  in.OperatingHours,
		TaxRate:         in.TaxRate,
		Currency:        in.Currency,
		IsSetupComplete: true,
		OwnerID:         ownerID,
	}
	if rest.Currency == "" {
		rest.Currency = "USD"
	}
	if err := s.Repo.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// UpdateSettings applies partial updates to the owner's restaurant.
func (s *RestaurantService) UpdateSettings(ownerID uint, apply func(*entity.Restaurant)) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	apply(rest)
	if rest.TaxRate.IsNegative() {
		return nil, ErrInvalidPercent
	}
	if err := s.Repo.Update(rest); err != nil {
		return nil, err
	}
	return rest, nil
}
