package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/InstitutAurelia/institute-scheduler/internal/domain/schedule"
	"github.com/InstitutAurelia/institute-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Institute
// --------------------------------------------------

func (r *ScheduleGormRepository) GetInstituteByID(
	ctx context.Context,
	id uint,
) (*models.Institute, error) {

	var institute models.Institute
	if err := r.db.WithContext(ctx).First(&institute, id).Error; err != nil {
		return nil, err
	}
	return &institute, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *ScheduleGormRepository) ListServices(
	ctx context.Context,
	instituteID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("institute_id = ?", instituteID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *ScheduleGormRepository) GetOrCreateClient(
	ctx context.Context,
	instituteID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("institute_id = ? AND phone = ?", instituteID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		InstituteID: instituteID,
		Name:        name,
		Phone:       phone,
		Email:       email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ScheduleGormRepository) GetReservation(
	ctx context.Context,
	instituteID uint,
	reservationID uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND institute_id = ?", reservationID, instituteID).
		First(&res).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ScheduleGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

// ListReservationsForDate retourne les réservations du jour dans l'ordre
// d'insertion, tous statuts confondus : le filtrage confirmé/transparent
// appartient au moteur de planning.
func (r *ScheduleGormRepository) ListReservationsForDate(
	ctx context.Context,
	instituteID uint,
	date string,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Client").
		Where("institute_id = ? AND date = ?", instituteID, date).
		Order("id ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *ScheduleGormRepository) ListReservationsForPeriod(
	ctx context.Context,
	instituteID uint,
	fromDate string,
	toDate string,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"institute_id = ? AND date >= ? AND date < ?",
			instituteID, fromDate, toDate,
		).
		Order("date ASC, time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

// --------------------------------------------------
// Blocages
// --------------------------------------------------

func (r *ScheduleGormRepository) ListBlockedSlots(
	ctx context.Context,
	instituteID uint,
) ([]models.BlockedSlot, error) {

	var blocks []models.BlockedSlot
	if err := r.db.WithContext(ctx).
		Where("institute_id = ?", instituteID).
		Order("date ASC, time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *ScheduleGormRepository) ListBlockedSlotsForDate(
	ctx context.Context,
	instituteID uint,
	date string,
) ([]models.BlockedSlot, error) {

	var blocks []models.BlockedSlot
	if err := r.db.WithContext(ctx).
		Where("institute_id = ? AND date = ?", instituteID, date).
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *ScheduleGormRepository) CreateBlockedSlot(
	ctx context.Context,
	b *models.BlockedSlot,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *ScheduleGormRepository) DeleteBlockedSlot(
	ctx context.Context,
	instituteID uint,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND institute_id = ?", id, instituteID).
		Delete(&models.BlockedSlot{}).Error
}

// --------------------------------------------------
// Horaires
// --------------------------------------------------

func (r *ScheduleGormRepository) GetWorkingHours(
	ctx context.Context,
	instituteID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("institute_id = ? AND weekday = ?", instituteID, weekday).
		First(&wh).Error; err != nil {
		return nil, err
	}

	return &wh, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
