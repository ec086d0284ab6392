package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/you/regsvc/domain"
)

// RegistrationRepositoryImpl implements domain.RegistrationRepository using GORM
type RegistrationRepositoryImpl struct {
	db *gorm.DB
}

// DBRegistration represents the database model for Registration (with GORM tags)
type DBRegistration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255"`
	Phone     string    `gorm:"index;size:32"`
	Email     string    `gorm:"index;size:255"`
	City      string    `gorm:"size:255"`
	Address   string    `gorm:"size:512"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBRegistration) TableName() string {
	return "registrations"
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *gorm.DB) domain.RegistrationRepository {
	return &RegistrationRepositoryImpl{db: db}
}

// Create implements domain.RegistrationRepository
func (r *RegistrationRepositoryImpl) Create(ctx context.Context, reg *domain.Registration) error {
	dbReg := r.domainToDB(reg)
	if err := r.db.WithContext(ctx).Create(dbReg).Error; err != nil {
		return err
	}
	reg.ID = dbReg.ID
	return nil
}

// FindRecent implements domain.RegistrationRepository. The match is an
// inclusive OR on email/phone bounded by the cutoff, which is exactly
// the dedup contract; no unique constraint backs it up.
func (r *RegistrationRepositoryImpl) FindRecent(ctx context.Context, email, phone string, cutoff time.Time) (*domain.Registration, error) {
	var dbReg DBRegistration
	err := r.db.WithContext(ctx).
		Where("(email = ? OR phone = ?) AND created_at >= ?", email, phone, cutoff).
		Order("created_at DESC").
		First(&dbReg).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbReg), nil
}

// List implements domain.RegistrationRepository
func (r *RegistrationRepositoryImpl) List(ctx context.Context, offset, limit int) ([]domain.Registration, error) {
	var dbRegs []DBRegistration
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&dbRegs).Error
	if err != nil {
		return nil, err
	}
	return r.dbToDomainSlice(dbRegs), nil
}

// ListAll implements domain.RegistrationRepository
func (r *RegistrationRepositoryImpl) ListAll(ctx context.Context) ([]domain.Registration, error) {
	var dbRegs []DBRegistration
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dbRegs).Error
	if err != nil {
		return nil, err
	}
	return r.dbToDomainSlice(dbRegs), nil
}

// Count implements domain.RegistrationRepository
func (r *RegistrationRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBRegistration{}).Count(&count).Error
	return count, err
}

// domainToDB converts a domain registration to a database registration
func (r *RegistrationRepositoryImpl) domainToDB(reg *domain.Registration) *DBRegistration {
	return &DBRegistration{
		ID:        reg.ID,
		Name:      reg.Name,
		Phone:     reg.Phone,
		Email:     reg.Email,
		City:      reg.City,
		Address:   reg.Address,
		CreatedAt: reg.CreatedAt,
	}
}

// dbToDomain converts a database registration to a domain registration
func (r *RegistrationRepositoryImpl) dbToDomain(dbReg *DBRegistration) *domain.Registration {
	return &domain.Registration{
		ID:        dbReg.ID,
		Name:      dbReg.Name,
		Phone:     dbReg.Phone,
		Email:     dbReg.Email,
		City:      dbReg.City,
		Address:   dbReg.Address,
		CreatedAt: dbReg.CreatedAt,
	}
}

func (r *RegistrationRepositoryImpl) dbToDomainSlice(dbRegs []DBRegistration) []domain.Registration {
	regs := make([]domain.Registration, 0, len(dbRegs))
	for i := range dbRegs {
		regs = append(regs, *r.dbToDomain(&dbRegs[i]))
	}
	return regs
}
