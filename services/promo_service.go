package services

import (
	"strings"

	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/repository"

	"github.com/shopspring/decimal"
)

type PromoService struct {
	Repo *repository.PromoRepository
}

func NewPromoService(repo *repository.PromoRepository) *PromoService {
	return &PromoService{Repo: repo}
}

var percentLimit = decimal.NewFromInt(100)

func validPercent(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(percentLimit)
}

// Create validates percent into [0,100] and stores the code uppercase; the
// pricing engine relies on this bound and does not re-check it.
func (s *PromoService) Create(restID uint, code string, percent decimal.Decimal, active bool) (*entity.PromoCode, error) {
	if !validPercent(percent) {
		return nil, ErrInvalidPercent
	}
	p := &entity.PromoCode{
		Code:            strings.ToUpper(strings.TrimSpace(code)),
		DiscountPercent: percent,
		IsActive:        active,
		RestaurantID:    restID,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PromoService) List(restID uint) ([]entity.PromoCode, error) {
	return s.Repo.List(restID)
}

func (s *PromoService) Update(restID, id uint, percent *decimal.Decimal, active *bool) (*entity.PromoCode, error) {
	p, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p.RestaurantID != restID {
		return nil, ErrForbidden
	}
	if percent != nil {
		if !validPercent(*percent) {
			return nil, ErrInvalidPercent
		}
		p.DiscountPercent = *percent
	}
	if active != nil {
		p.IsActive = *active
	}
	if err := s.Repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PromoService) Delete(restID, id uint) error {
	return s.Repo.Delete(restID, id)
}
