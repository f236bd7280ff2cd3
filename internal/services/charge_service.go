package services

import (
	"sort"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"trs-service/internal/apperrors"
	"trs-service/internal/models"
	"trs-service/internal/repository"
)

// ChargeService implements the batch validate-then-mutate protocol for
// charges. Every mutating operation validates all rows first and applies
// all writes inside one transaction; a failing row rejects the whole batch.
type ChargeService struct {
	db       *gorm.DB
	charges  *repository.ChargeRepository
	projects *repository.ProjectRepository
}

func NewChargeService(db *gorm.DB, charges *repository.ChargeRepository, projects *repository.ProjectRepository) *ChargeService {
	return &ChargeService{db: db, charges: charges, projects: projects}
}

// CreateCharges validates, deduplicates and inserts a batch of proposed
// charges for the user. Exact duplicate proposals within the batch collapse
// silently to one row. The batch is rejected as a whole if any referenced
// project is missing or foreign, or if any (project, date) slot is already
// charged.
func (s *ChargeService) CreateCharges(user uint, proposed []models.NewCharge) ([]models.Charge, error) {
	if len(proposed) == 0 {
		return nil, apperrors.Validation("No charges provided")
	}

	type slotKey struct {
		hours   int
		project uint
		date    string
	}
	seen := make(map[slotKey]struct{}, len(proposed))
	var toInsert []models.Charge
	var projectIDs []uint
	seenProjects := make(map[uint]struct{})

	for _, nc := range proposed {
		// Check order matters for deterministic error messages.
		if nc.Hours == nil {
			return nil, apperrors.Validation("Hours required")
		}
		if *nc.Hours <= 0 {
			return nil, apperrors.Validation("Hours must be greater than 0")
		}
		if nc.Project == nil || *nc.Project == 0 {
			return nil, apperrors.Validation("Project ID required")
		}
		if nc.DateCharged == nil {
			return nil, apperrors.Validation("Date required")
		}
		date, err := models.ParseDate(*nc.DateCharged)
		if err != nil {
			return nil, apperrors.Validation("Invalid date format, use YYYY-MM-DD")
		}

		key := slotKey{hours: *nc.Hours, project: *nc.Project, date: date.String()}
		if _, dup := seen[key]; dup {
			// A client re-submitting an identical line in one batch is
			// tolerated, not an error.
			continue
		}
		seen[key] = struct{}{}

		if _, ok := seenProjects[*nc.Project]; !ok {
			seenProjects[*nc.Project] = struct{}{}
			projectIDs = append(projectIDs, *nc.Project)
		}
		toInsert = append(toInsert, models.Charge{
			User:        user,
			Project:     *nc.Project,
			Hours:       *nc.Hours,
			DateCharged: date,
		})
	}

	slots := make([]repository.ProjectDate, len(toInsert))
	for i, c := range toInsert {
		slots[i] = repository.ProjectDate{Project: c.Project, Date: c.DateCharged}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		projects := s.projects.WithTx(tx)
		charges := s.charges.WithTx(tx)

		found, err := projects.GetProjectsByIDs(projectIDs)
		if err != nil {
			return errors.Wrap(err, "loading referenced projects")
		}
		if len(found) < len(projectIDs) {
			return apperrors.NotFound("Project not found")
		}
		for _, p := range found {
			if p.Owner != user {
				return apperrors.Forbidden("Forbidden")
			}
		}

		existing, err := charges.ExistingForSlots(slots)
		if err != nil {
			return errors.Wrap(err, "checking occupied slots")
		}
		if len(existing) > 0 {
			return apperrors.Conflict("Project already charged for this date")
		}

		if err := charges.CreateCharges(toInsert); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// A concurrent transaction claimed a slot between our
				// pre-check and the insert.
				return apperrors.Conflict("Project already charged for this date")
			}
			return errors.Wrap(err, "inserting charges")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortCharges(toInsert)
	return toInsert, nil
}

// GetCharges returns the user's charges, optionally restricted to an
// inclusive date range.
func (s *ChargeService) GetCharges(user uint, dateRange *models.DateRange) ([]models.Charge, error) {
	if dateRange == nil {
		charges, err := s.charges.ListCharges(user)
		if err != nil {
			return nil, errors.Wrap(err, "listing charges")
		}
		return charges, nil
	}

	if dateRange.Start == nil {
		return nil, apperrors.Validation("Start date required")
	}
	if dateRange.End == nil {
		return nil, apperrors.Validation("End date required")
	}
	start, err := models.ParseDate(*dateRange.Start)
	if err != nil {
		return nil, apperrors.Validation("Invalid date format, use YYYY-MM-DD")
	}
	end, err := models.ParseDate(*dateRange.End)
	if err != nil {
		return nil, apperrors.Validation("Invalid date format, use YYYY-MM-DD")
	}
	if start.After(end.Time) {
		return nil, apperrors.Validation("End date must be after start date")
	}

	charges, err := s.charges.ListChargesBetween(user, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "listing charges")
	}
	return charges, nil
}

// UpdateCharges sets new hour values on a batch of the user's charges.
// Repeated IDs collapse to the last hours value. All referenced charges
// must exist and belong to the user before anything is written.
func (s *ChargeService) UpdateCharges(user uint, updates []models.ChargeUpdate) ([]models.Charge, error) {
	if len(updates) == 0 {
		return nil, apperrors.Validation("No charges provided")
	}

	hoursByID := make(map[uint]int, len(updates))
	var ids []uint
	for _, u := range updates {
		if u.ID == nil || *u.ID == 0 {
			return nil, apperrors.Validation("Charge ID required")
		}
		if u.Hours == nil {
			return nil, apperrors.Validation("Hours required")
		}
		if *u.Hours <= 0 {
			return nil, apperrors.Validation("Hours must be greater than 0")
		}
		if _, ok := hoursByID[*u.ID]; !ok {
			ids = append(ids, *u.ID)
		}
		hoursByID[*u.ID] = *u.Hours
	}

	var updated []models.Charge
	err := s.db.Transaction(func(tx *gorm.DB) error {
		charges := s.charges.WithTx(tx)

		rows, err := charges.GetChargesByIDs(ids)
		if err != nil {
			return errors.Wrap(err, "loading charges")
		}
		if len(rows) < len(ids) {
			return apperrors.NotFound("Charge not found")
		}
		for _, row := range rows {
			if row.User != user {
				return apperrors.Forbidden("Forbidden")
			}
		}

		// Ownership was checked above; the user predicate on the write is
		// kept as a safety constraint regardless.
		for _, id := range ids {
			if err := charges.UpdateHours(id, user, hoursByID[id]); err != nil {
				return errors.Wrap(err, "updating charge")
			}
		}

		updated, err = charges.GetChargesByIDs(ids)
		if err != nil {
			return errors.Wrap(err, "reloading charges")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCharges removes a batch of the user's charges and returns the
// number of rows deleted. All referenced charges must exist and belong to
// the user before anything is removed.
func (s *ChargeService) DeleteCharges(user uint, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, apperrors.Validation("No charges provided")
	}

	distinct := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		charges := s.charges.WithTx(tx)

		rows, err := charges.GetChargesByIDs(distinct)
		if err != nil {
			return errors.Wrap(err, "loading charges")
		}
		if len(rows) < len(distinct) {
			return apperrors.NotFound("Charge not found")
		}
		for _, row := range rows {
			if row.User != user {
				return apperrors.Forbidden("Forbidden")
			}
		}

		deleted, err = charges.DeleteByIDs(distinct, user)
		if err != nil {
			return errors.Wrap(err, "deleting charges")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func sortCharges(charges []models.Charge) {
	sort.Slice(charges, func(i, j int) bool {
		if !charges[i].DateCharged.Equal(charges[j].DateCharged.Time) {
			return charges[i].DateCharged.Before(charges[j].DateCharged.Time)
		}
		return charges[i].ID < charges[j].ID
	})
}
