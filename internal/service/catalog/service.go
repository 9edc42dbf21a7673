package catalog

import (
	"context"
	"errors"
	"fmt"

	salonstorage "github.com/beautyline/salon-service/internal/infra/storage/salon"
	"github.com/beautyline/salon-service/internal/service/catalog/models"
)

// Service сервис каталога: публичные карточки салонов, услуг и мастеров
type Service struct {
	salonRepo      SalonRepository
	specialistRepo SpecialistRepository
	serviceRepo    ServiceRepository
	defaultLocale  string
	logger         Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	salonRepo SalonRepository,
	specialistRepo SpecialistRepository,
	serviceRepo ServiceRepository,
	defaultLocale string,
	logger Logger,
) *Service {
	return &Service{
		salonRepo:      salonRepo,
		specialistRepo: specialistRepo,
		serviceRepo:    serviceRepo,
		defaultLocale:  defaultLocale,
		logger:         logger,
	}
}

// ListSalons получает список активных салонов с фильтрацией по городу
func (s *Service) ListSalons(ctx context.Context, req *models.ListSalonsRequest) (*models.SalonListResponse, error) {
	s.logger.Info("ListSalons: city=%v, limit=%d, offset=%d", req.City, req.Limit, req.Offset)

	salons, err := s.salonRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("ListSalons: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSalons - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSalons: successfully fetched %d salons", len(salons))
	return models.FromDomainSalonList(salons, req.Locale, s.defaultLocale), nil
}

// GetSalon получает карточку салона с услугами и мастерами
// Переводимые поля локализуются по запрошенной локали с откатом на дефолтную
func (s *Service) GetSalon(ctx context.Context, req *models.GetSalonRequest) (*models.SalonDetailsResponse, error) {
	s.logger.Info("GetSalon: fetching salon id=%d, locale=%s", req.SalonID, req.Locale)

	salon, err := s.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonstorage.ErrSalonNotFound) {
			s.logger.Warn("GetSalon: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetSalon: repository error for salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: GetSalon - repository error: %v", ErrInternal, err)
	}

	services, err := s.serviceRepo.ListBySalon(ctx, req.SalonID)
	if err != nil {
		s.logger.Error("GetSalon: failed to list services for salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: GetSalon - failed to list services: %v", ErrInternal, err)
	}

	specialists, err := s.specialistRepo.ListBySalon(ctx, req.SalonID)
	if err != nil {
		s.logger.Error("GetSalon: failed to list specialists for salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: GetSalon - failed to list specialists: %v", ErrInternal, err)
	}

	resp := &models.SalonDetailsResponse{
		SalonResponse: *models.FromDomainSalon(salon, req.Locale, s.defaultLocale),
		Services:      make([]models.ServiceResponse, 0, len(services)),
		Specialists:   make([]models.SpecialistResponse, 0, len(specialists)),
	}

	for _, svc := range services {
		if !svc.Active {
			continue
		}
		resp.Services = append(resp.Services, models.FromDomainService(svc, req.Locale, s.defaultLocale))
	}

	for _, sp := range specialists {
		if !sp.Active {
			continue
		}
		resp.Specialists = append(resp.Specialists, models.FromDomainSpecialist(sp, req.Locale, s.defaultLocale))
	}

	s.logger.Info("GetSalon: successfully fetched salon id=%d with %d services and %d specialists",
		req.SalonID, len(resp.Services), len(resp.Specialists))
	return resp, nil
}
