package services

import (
	"fmt"
	"strings"

	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/repository"

	"gorm.io/gorm"
)

// GuestService turns a scanned table QR code into a guest session with an
// empty cart bound to that restaurant and table.
type GuestService struct {
	DB          *gorm.DB
	SessionRepo *repository.SessionRepository
	CartRepo    *repository.CartRepository
	RestRepo    *repository.RestaurantRepository
	TableRepo   *repository.TableRepository
}

func NewGuestService(db *gorm.DB, sr *repository.SessionRepository, cr *repository.CartRepository, rr *repository.RestaurantRepository, tr *repository.TableRepository) *GuestService {
	return &GuestService{DB: db, SessionRepo: sr, CartRepo: cr, RestRepo: rr, TableRepo: tr}
}

type StartSessionIn struct {
	// Either the raw scanned payload...
	QRData string `json:"qrData"`
	// ...or an explicit restaurant/table pair.
	RestaurantID uint `json:"restaurantId"`
	TableNumber  int  `json:"tableNumber"`

	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone"`
}

// ParseTableQR extracts restaurant id and table number from a payload like
// qrmenu://restaurant/3/table/5.
func ParseTableQR(data string) (restID uint, tableNumber int, err error) {
	if !strings.HasPrefix(data, "qrmenu://") {
		return 0, 0, ErrInvalidQRCode
	}
	n, err := fmt.Sscanf(data, "qrmenu://restaurant/%d/table/%d", &restID, &tableNumber)
	if err != nil || n != 2 {
		return 0, 0, ErrInvalidQRCode
	}
	return restID, tableNumber, nil
}

// StartSession validates the table and creates the session plus its cart.
func (s *GuestService) StartSession(in *StartSessionIn) (*entity.GuestSession, error) {
	restID, tableNumber := in.RestaurantID, in.TableNumber
	if in.QRData != "" {
		var err error
		restID, tableNumber, err = ParseTableQR(in.QRData)
		if err != nil {
			return nil, err
		}
	}
	if restID == 0 || tableNumber == 0 {
		return nil, ErrNoTableContext
	}

	rest, err := s.RestRepo.FindByID(restID)
	if err != nil {
		return nil, err
	}
	table, err := s.TableRepo.FindByNumber(rest.ID, tableNumber)
	if err != nil {
		return nil, err
	}

	session := &entity.GuestSession{
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		TableNumber:   table.Number,
		TableID:       table.ID,
		RestaurantID:  rest.ID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.SessionRepo.Create(tx, session); err != nil {
			return err
		}
		cart := &entity.Cart{
			SessionID:    session.ID,
			RestaurantID: rest.ID,
			TaxRate:      rest.TaxRate,
		}
		return s.CartRepo.Create(tx, cart)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *GuestService) Session(id uint) (*entity.GuestSession, error) {
	return s.SessionRepo.FindByID(id)
}
