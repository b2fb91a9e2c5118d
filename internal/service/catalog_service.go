package service

import (
	"context"
	"net/mail"
	"strings"

	"backoffice/internal/domain"
	"backoffice/internal/repository"
	apperrors "backoffice/pkg/errors"
	"backoffice/pkg/logger"
	"backoffice/pkg/utils"
)

type catalogService struct {
	gateway    Gateway
	audit      repository.AuditRepository
	providers  *Store[domain.Provider]
	activities *Store[domain.Activity]
	logger     *logger.Logger
}

// NewCatalogService creates the catalog service. audit may be nil, in which
// case creations are not recorded.
func NewCatalogService(gateway Gateway, audit repository.AuditRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		gateway:    gateway,
		audit:      audit,
		providers:  NewStore[domain.Provider]("providers", gateway.ListProviders, logger),
		activities: NewStore[domain.Activity]("activities", gateway.ListActivities, logger),
		logger:     logger,
	}
}

func (s *catalogService) LoadProviders(ctx context.Context) State[domain.Provider] {
	return s.providers.Load(ctx)
}

func (s *catalogService) LoadActivities(ctx context.Context) State[domain.Activity] {
	return s.activities.Load(ctx)
}

func (s *catalogService) Providers(ctx context.Context) State[domain.Provider] {
	return s.providers.Current(ctx)
}

func (s *catalogService) Activities(ctx context.Context) State[domain.Activity] {
	return s.activities.Current(ctx)
}

// FindActivity searches the committed list first and reloads once on a miss
func (s *catalogService) FindActivity(ctx context.Context, key string) (*domain.Activity, error) {
	if a := findByKey(s.activities.Current(ctx).Items, key); a != nil {
		return a, nil
	}

	st := s.activities.Load(ctx)
	if st.Err != nil {
		return nil, st.Err
	}
	if a := findByKey(st.Items, key); a != nil {
		return a, nil
	}
	return nil, apperrors.NewNotFoundError("Activity not found")
}

func (s *catalogService) CreateProvider(ctx context.Context, actor string, req domain.CreateProviderRequest) (*domain.Provider, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := ValidateProvider(req); err != nil {
		return nil, err
	}

	provider, err := s.gateway.CreateProvider(ctx, req)
	if err != nil {
		s.logger.WithError(err).Error("Failed to create provider")
		return nil, err
	}

	s.record(ctx, actor, domain.ActionProviderCreated, req.Name)
	s.providers.Invalidate()
	return provider, nil
}

func (s *catalogService) CreateActivity(ctx context.Context, actor string, req domain.CreateActivityRequest) (*domain.CreatedActivity, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Code = strings.TrimSpace(req.Code)
	if err := ValidateActivity(req); err != nil {
		return nil, err
	}
	if req.Code == "" {
		req.Code = domain.CodeFromName(req.Name)
	}

	created, err := s.gateway.CreateActivity(ctx, req)
	if err != nil {
		s.logger.WithError(err).Error("Failed to create activity")
		return nil, err
	}

	s.record(ctx, actor, domain.ActionActivityCreated, req.Name)
	s.activities.Invalidate()
	return created, nil
}

func (s *catalogService) record(ctx context.Context, actor, action, subject string) {
	if s.audit == nil {
		return
	}
	event := &domain.AuditEvent{Actor: actor, Action: action, Subject: subject}
	if err := s.audit.Record(ctx, event); err != nil {
		s.logger.WithError(err).WithField("action", action).Warn("Failed to record audit event")
	}
}

// ValidateProvider checks a provider creation request. Field messages are
// returned in the error details keyed by form field name.
func ValidateProvider(req domain.CreateProviderRequest) error {
	details := map[string]interface{}{}
	if strings.TrimSpace(req.Name) == "" {
		details["name"] = "Le nom est requis"
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" && !utils.ValidatePhoneNumber(phone) {
		details["phone"] = "Numéro de téléphone invalide"
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			details["email"] = "Adresse email invalide"
		}
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("Invalid provider", details)
	}
	return nil
}

// ValidateActivity checks an activity creation request
func ValidateActivity(req domain.CreateActivityRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("Invalid activity", map[string]interface{}{
			"nom": "Le nom est requis",
		})
	}
	return nil
}

func findByKey(activities []domain.Activity, key string) *domain.Activity {
	if key == "" {
		return nil
	}
	for i := range activities {
		if activities[i].Key() == key {
			a := activities[i]
			return &a
		}
	}
	return nil
}
