package services

import (
	"fmt"

	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/repository"
)

type TableService struct {
	Repo *repository.TableRepository
}

func NewTableService(repo *repository.TableRepository) *TableService {
	return &TableService{Repo: repo}
}

// TableQRData builds the payload printed on a table's QR sticker.
func TableQRData(restID uint, tableNumber int) string {
	return fmt.Sprintf("qrmenu://restaurant/%d/table/%d", restID, tableNumber)
}

func (s *TableService) List(restID uint) ([]entity.Table, error) {
	return s.Repo.List(restID)
}

func (s *TableService) Create(restID uint, number, capacity int) (*entity.Table, error) {
	t := &entity.Table{
		Number:       number,
		Capacity:     capacity,
		Status:       entity.TableAvailable,
		QRCodeData:   TableQRData(restID, number),
		RestaurantID: restID,
	}
	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TableService) SetStatus(restID, id uint, status entity.TableStatus) (*entity.Table, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	t, err := s.Repo.FindByID(restID, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateStatus(s.Repo.DB, t.ID, status, t.ActiveOrderID); err != nil {
		return nil, err
	}
	t.Status = status
	return t, nil
}

func (s *TableService) Delete(restID, id uint) error {
	return s.Repo.Delete(restID, id)
}
