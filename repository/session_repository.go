package repository

import (
	"github.com/mohameddsalmann/resturants-mangment/entity"

	"gorm.io/gorm"
)

type SessionRepository struct{ DB *gorm.DB }

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(tx *gorm.DB, s *entity.GuestSession) error {
	return tx.Create(s).Error
}

func (r *SessionRepository) FindByID(id uint) (*entity.GuestSession, error) {
	var s entity.GuestSession
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
