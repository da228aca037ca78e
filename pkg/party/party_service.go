package party

import (
	"context"
	"errors"
	"fmt"

	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/domain"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/entities"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/internal/utils/mailing"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/pkg/jwt"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	PartyService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
		Me(ctx context.Context, id string, kind string) (*domain.Party, error)
		UpdateProfile(ctx context.Context, id string, kind string, req domain.UpdateProfileRequest) (*domain.Party, error)
		GetHistory(ctx context.Context, id string, kind string, page, limit int) ([]*domain.TransactionHistoryEntry, int64, error)
	}

	partyService struct {
		partyRepository PartyRepository
		jwtService      jwt.JWTService
	}
)

func NewPartyService(partyRepository PartyRepository, jwtService jwt.JWTService) PartyService {
	return &partyService{
		partyRepository: partyRepository,
		jwtService:      jwtService,
	}
}

func (s *partyService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	if req.Role == domain.RoleKitchen && req.FssaiID == "" {
		return nil, domain.ErrFssaiIDRequired
	}
	if req.Role == domain.RoleNgo && req.NgoID == "" {
		return nil, domain.ErrNgoIDRequired
	}

	// Email uniqueness is per party kind. The same address may register as
	// both an Individual and a Kitchen.
	exists, err := s.partyRepository.EmailExists(ctx, req.Email, req.Role)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyUsed
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var partyID string
	switch req.Role {
	case domain.RoleIndividual:
		individual := &entities.Individual{
			ID:       uuid.New(),
			Name:     req.Name,
			Email:    req.Email,
			Password: string(hashed),
			Contact:  req.Contact,
			Location: req.Location,
			Rating:   3,
		}
		if err := s.partyRepository.CreateIndividual(ctx, individual); err != nil {
			return nil, err
		}
		partyID = individual.ID.String()
	case domain.RoleKitchen:
		kitchen := &entities.Kitchen{
			ID:       uuid.New(),
			Name:     req.Name,
			Email:    req.Email,
			Password: string(hashed),
			FssaiID:  req.FssaiID,
			Contact:  req.Contact,
			Location: req.Location,
			Rating:   3,
		}
		if err := s.partyRepository.CreateKitchen(ctx, kitchen); err != nil {
			return nil, err
		}
		partyID = kitchen.ID.String()
	case domain.RoleNgo:
		ngo := &entities.Ngo{
			ID:       uuid.New(),
			Name:     req.Name,
			Email:    req.Email,
			Password: string(hashed),
			NgoID:    req.NgoID,
			Contact:  req.Contact,
			Location: req.Location,
			Rating:   3,
		}
		if err := s.partyRepository.CreateNgo(ctx, ngo); err != nil {
			return nil, err
		}
		partyID = ngo.ID.String()
	default:
		return nil, domain.ErrInvalidPartyKind
	}

	// Welcome mail is best effort.
	go func(email, name string) {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Welcome to FoodHero! Your account is ready. List surplus food or browse nearby donations to get started.</p>",
			name,
		)
		if err := mailing.SendMail(email, "Welcome to FoodHero", body); err != nil {
			log.Warnf("failed to send welcome mail to %s: %v", email, err)
		}
	}(req.Email, req.Name)

	token := s.jwtService.GenerateTokenUser(partyID, req.Role)
	return &domain.AuthResponse{Token: token, UserType: req.Role}, nil
}

func (s *partyService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	credentials, err := s.partyRepository.FindCredentialsByEmail(ctx, req.Email, req.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credentials.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(credentials.ID, credentials.Kind)
	return &domain.AuthResponse{Token: token, UserType: credentials.Kind}, nil
}

func (s *partyService) Me(ctx context.Context, id string, kind string) (*domain.Party, error) {
	party, err := s.partyRepository.FindByIDAndKind(ctx, id, kind)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPartyNotFound
		}
		return nil, err
	}
	return party, nil
}

func (s *partyService) UpdateProfile(ctx context.Context, id string, kind string, req domain.UpdateProfileRequest) (*domain.Party, error) {
	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Email != "" {
		fields["email"] = req.Email
	}
	if req.Contact != "" {
		fields["contact"] = req.Contact
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}
	if len(fields) == 0 {
		return s.Me(ctx, id, kind)
	}

	party, err := s.partyRepository.UpdateProfile(ctx, id, kind, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPartyNotFound
		}
		return nil, err
	}
	return party, nil
}

func (s *partyService) GetHistory(ctx context.Context, id string, kind string, page, limit int) ([]*domain.TransactionHistoryEntry, int64, error) {
	histories, count, err := s.partyRepository.GetHistory(ctx, id, kind, page, limit)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]*domain.TransactionHistoryEntry, 0, len(histories))
	for _, history := range histories {
		entries = append(entries, &domain.TransactionHistoryEntry{
			TransactionID: history.TransactionID.String(),
			Type:          history.Type,
			Status:        history.Status,
			PartnerID:     history.PartnerID.String(),
			PartnerKind:   history.PartnerKind,
			RecordedAt:    history.RecordedAt,
		})
	}
	return entries, count, nil
}
