package repository

import (
	"gorm.io/gorm"

	"trs-service/internal/models"
)

// ProjectDate identifies one (project, date_charged) slot. At most one
// Charge may occupy a slot.
type ProjectDate struct {
	Project uint
	Date    models.Date
}

// ChargeRepository provides methods to interact with the Charge model in the database.
type ChargeRepository struct {
	db *gorm.DB
}

// NewChargeRepository creates a new ChargeRepository instance with the provided GORM database connection.
func NewChargeRepository(db *gorm.DB) *ChargeRepository {
	return &ChargeRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *ChargeRepository) WithTx(tx *gorm.DB) *ChargeRepository {
	return &ChargeRepository{db: tx}
}

// CreateCharges inserts all given Charges. IDs and timestamps are filled in
// on the slice elements. A violated (project, date_charged) constraint
// surfaces as gorm.ErrDuplicatedKey.
func (r *ChargeRepository) CreateCharges(charges []models.Charge) error {
	return r.db.Create(&charges).Error
}

// GetChargesByIDs retrieves all Charges matching the given IDs, ordered by
// (date_charged, id).
func (r *ChargeRepository) GetChargesByIDs(ids []uint) ([]models.Charge, error) {
	var charges []models.Charge
	err := r.db.Where("id IN ?", ids).Order("date_charged, id").Find(&charges).Error
	return charges, err
}

// ListCharges retrieves all Charges owned by the given user, ordered by
// (date_charged, id).
func (r *ChargeRepository) ListCharges(user uint) ([]models.Charge, error) {
	var charges []models.Charge
	err := r.db.Where(map[string]interface{}{"user": user}).
		Order("date_charged, id").Find(&charges).Error
	return charges, err
}

// ListChargesBetween retrieves the user's Charges with date_charged in
// [start, end], ordered by (date_charged, id).
func (r *ChargeRepository) ListChargesBetween(user uint, start, end models.Date) ([]models.Charge, error) {
	var charges []models.Charge
	err := r.db.Where(map[string]interface{}{"user": user}).
		Where("date_charged BETWEEN ? AND ?", start, end).
		Order("date_charged, id").Find(&charges).Error
	return charges, err
}

// ExistingForSlots retrieves Charges already occupying any of the given
// (project, date_charged) slots, regardless of owner.
func (r *ChargeRepository) ExistingForSlots(slots []ProjectDate) ([]models.Charge, error) {
	if len(slots) == 0 {
		return nil, nil
	}
	cond := r.db.Where("project = ? AND date_charged = ?", slots[0].Project, slots[0].Date)
	for _, slot := range slots[1:] {
		cond = cond.Or("project = ? AND date_charged = ?", slot.Project, slot.Date)
	}
	var charges []models.Charge
	err := r.db.Where(cond).Find(&charges).Error
	return charges, err
}

// UpdateHours sets the hours of the Charge with the given ID. The owner is
// part of the WHERE clause so the write itself cannot touch foreign rows.
func (r *ChargeRepository) UpdateHours(id, user uint, hours int) error {
	return r.db.Model(&models.Charge{}).
		Where("id = ?", id).
		Where(map[string]interface{}{"user": user}).
		Update("hours", hours).Error
}

// DeleteByIDs deletes the user's Charges matching the given IDs and returns
// the number of rows removed.
func (r *ChargeRepository) DeleteByIDs(ids []uint, user uint) (int64, error) {
	res := r.db.Where("id IN ?", ids).
		Where(map[string]interface{}{"user": user}).
		Delete(&models.Charge{})
	return res.RowsAffected, res.Error
}
