package party

import (
	"context"
	"errors"

	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/domain"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/entities"
	"gorm.io/gorm"
)

// Stat columns the ledger is allowed to bump. Guarded so a bad caller can
// never interpolate an arbitrary column into the update.
var statColumns = map[string]bool{
	"orders_served":    true,
	"orders_received":  true,
	"donations_served": true,
	"rewards":          true,
}

type (
	PartyRepository interface {
		CreateIndividual(ctx context.Context, individual *entities.Individual) error
		CreateKitchen(ctx context.Context, kitchen *entities.Kitchen) error
		CreateNgo(ctx context.Context, ngo *entities.Ngo) error

		FindByIDAndKind(ctx context.Context, id string, kind string) (*domain.Party, error)
		FindCredentialsByEmail(ctx context.Context, email string, kind string) (*PartyCredentials, error)
		EmailExists(ctx context.Context, email string, kind string) (bool, error)

		UpdateProfile(ctx context.Context, id string, kind string, fields map[string]interface{}) (*domain.Party, error)
		IncrementStat(ctx context.Context, tx *gorm.DB, id string, kind string, field string, delta int, history *entities.TransactionHistory) error
		GetHistory(ctx context.Context, id string, kind string, page, limit int) ([]*entities.TransactionHistory, int64, error)
	}

	PartyCredentials struct {
		ID       string
		Kind     string
		Name     string
		Password string
	}

	partyRepository struct {
		db *gorm.DB
	}
)

func NewPartyRepository(db *gorm.DB) PartyRepository {
	return &partyRepository{db: db}
}

// modelFor maps a party kind onto its table. The three kinds live in three
// disjoint tables, so every polymorphic operation dispatches through here.
func modelFor(kind string) (interface{}, error) {
	switch kind {
	case domain.RoleIndividual:
		return &entities.Individual{}, nil
	case domain.RoleKitchen:
		return &entities.Kitchen{}, nil
	case domain.RoleNgo:
		return &entities.Ngo{}, nil
	default:
		return nil, domain.ErrInvalidPartyKind
	}
}

func (r *partyRepository) CreateIndividual(ctx context.Context, individual *entities.Individual) error {
	return r.db.WithContext(ctx).Create(individual).Error
}

func (r *partyRepository) CreateKitchen(ctx context.Context, kitchen *entities.Kitchen) error {
	return r.db.WithContext(ctx).Create(kitchen).Error
}

func (r *partyRepository) CreateNgo(ctx context.Context, ngo *entities.Ngo) error {
	return r.db.WithContext(ctx).Create(ngo).Error
}

func (r *partyRepository) FindByIDAndKind(ctx context.Context, id string, kind string) (*domain.Party, error) {
	switch kind {
	case domain.RoleIndividual:
		var individual entities.Individual
		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&individual).Error; err != nil {
			return nil, err
		}
		return &domain.Party{
			ID:              individual.ID.String(),
			Kind:            domain.RoleIndividual,
			Name:            individual.Name,
			Email:           individual.Email,
			Contact:         individual.Contact,
			Location:        individual.Location,
			OrdersServed:    individual.OrdersServed,
			OrdersReceived:  individual.OrdersReceived,
			DonationsServed: individual.DonationsServed,
			Rewards:         individual.Rewards,
			Rating:          individual.Rating,
		}, nil
	case domain.RoleKitchen:
		var kitchen entities.Kitchen
		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&kitchen).Error; err != nil {
			return nil, err
		}
		return &domain.Party{
			ID:              kitchen.ID.String(),
			Kind:            domain.RoleKitchen,
			Name:            kitchen.Name,
			Email:           kitchen.Email,
			Contact:         kitchen.Contact,
			Location:        kitchen.Location,
			FssaiID:         kitchen.FssaiID,
			OrdersServed:    kitchen.OrdersServed,
			OrdersReceived:  kitchen.OrdersReceived,
			DonationsServed: kitchen.DonationsServed,
			Rewards:         kitchen.Rewards,
			Rating:          kitchen.Rating,
		}, nil
	case domain.RoleNgo:
		var ngo entities.Ngo
		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ngo).Error; err != nil {
			return nil, err
		}
		return &domain.Party{
			ID:              ngo.ID.String(),
			Kind:            domain.RoleNgo,
			Name:            ngo.Name,
			Email:           ngo.Email,
			Contact:         ngo.Contact,
			Location:        ngo.Location,
			NgoID:           ngo.NgoID,
			OrdersServed:    ngo.OrdersServed,
			OrdersReceived:  ngo.OrdersReceived,
			DonationsServed: ngo.DonationsServed,
			Rewards:         ngo.Rewards,
			Rating:          ngo.Rating,
		}, nil
	default:
		return nil, domain.ErrInvalidPartyKind
	}
}

func (r *partyRepository) FindCredentialsByEmail(ctx context.Context, email string, kind string) (*PartyCredentials, error) {
	switch kind {
	case domain.RoleIndividual:
		var individual entities.Individual
		if err := r.db.WithContext(ctx).Where("email = ?", email).First(&individual).Error; err != nil {
			return nil, err
		}
		return &PartyCredentials{ID: individual.ID.String(), Kind: kind, Name: individual.Name, Password: individual.Password}, nil
	case domain.RoleKitchen:
		var kitchen entities.Kitchen
		if err := r.db.WithContext(ctx).Where("email = ?", email).First(&kitchen).Error; err != nil {
			return nil, err
		}
		return &PartyCredentials{ID: kitchen.ID.String(), Kind: kind, Name: kitchen.Name, Password: kitchen.Password}, nil
	case domain.RoleNgo:
		var ngo entities.Ngo
		if err := r.db.WithContext(ctx).Where("email = ?", email).First(&ngo).Error; err != nil {
			return nil, err
		}
		return &PartyCredentials{ID: ngo.ID.String(), Kind: kind, Name: ngo.Name, Password: ngo.Password}, nil
	default:
		return nil, domain.ErrInvalidPartyKind
	}
}

func (r *partyRepository) EmailExists(ctx context.Context, email string, kind string) (bool, error) {
	model, err := modelFor(kind)
	if err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(model).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *partyRepository) UpdateProfile(ctx context.Context, id string, kind string, fields map[string]interface{}) (*domain.Party, error) {
	model, err := modelFor(kind)
	if err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.FindByIDAndKind(ctx, id, kind)
}

// IncrementStat bumps one cumulative counter and appends the matching history
// entry. It runs on the caller's handle so the transaction ledger can commit
// counter updates atomically with its own writes; pass nil to run against the
// repository's database. The counter update goes through an SQL-side
// increment so concurrent confirmations never lose updates.
func (r *partyRepository) IncrementStat(ctx context.Context, tx *gorm.DB, id string, kind string, field string, delta int, history *entities.TransactionHistory) error {
	if !statColumns[field] {
		return errors.New("unknown stat column: " + field)
	}
	model, err := modelFor(kind)
	if err != nil {
		return err
	}
	if tx == nil {
		tx = r.db
	}

	return tx.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		result := db.Model(model).
			Where("id = ?", id).
			UpdateColumn(field, gorm.Expr(field+" + ?", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if history != nil {
			if err := db.Create(history).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *partyRepository) GetHistory(ctx context.Context, id string, kind string, page, limit int) ([]*entities.TransactionHistory, int64, error) {
	var histories []*entities.TransactionHistory
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("party_id = ? AND party_kind = ?", id, kind)

	if err := query.Model(&entities.TransactionHistory{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("recorded_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&histories).Error; err != nil {
		return nil, 0, err
	}

	return histories, count, nil
}
