package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/beautyline/salon-service/internal/domain"
	salonstorage "github.com/beautyline/salon-service/internal/infra/storage/salon"
	"github.com/beautyline/salon-service/internal/service/reviews/models"
)

// Service сервис для работы с отзывами
type Service struct {
	reviewRepo ReviewRepository
	salonRepo  SalonRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	salonRepo SalonRepository,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		salonRepo:  salonRepo,
		logger:     logger,
	}
}

// Create создает отзыв о салоне
// Новый отзыв попадает в публичную выдачу только после одобрения
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: creating review for salon=%d by user=%d, rating=%d",
		req.SalonID, req.UserID, req.Rating)

	if req.Content == "" {
		s.logger.Warn("Create: empty content for salon=%d by user=%d", req.SalonID, req.UserID)
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	review := &domain.Review{
		UserID:        req.UserID,
		SalonID:       req.SalonID,
		SpecialistID:  req.SpecialistID,
		ServiceID:     req.ServiceID,
		AppointmentID: req.AppointmentID,
		Content:       req.Content,
		Rating:        req.Rating,
		Approved:      false,
	}

	if !review.RatingValid() {
		s.logger.Warn("Create: invalid rating=%d for salon=%d", req.Rating, req.SalonID)
		return nil, fmt.Errorf("%w: rating must be between %d and %d",
			ErrInvalidRating, domain.MinRating, domain.MaxRating)
	}

	// Проверяем, что салон существует
	if _, err := s.salonRepo.GetByID(ctx, req.SalonID); err != nil {
		if errors.Is(err, salonstorage.ErrSalonNotFound) {
			s.logger.Warn("Create: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("Create: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: Create - failed to get salon: %v", ErrInternal, err)
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		s.logger.Error("Create: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created review id=%d for salon=%d", created.ID, req.SalonID)
	return models.FromDomainReview(created), nil
}

// List получает одобренные отзывы с фильтрацией по салону и мастеру
func (s *Service) List(ctx context.Context, req *models.ListReviewsRequest) (*models.ReviewListResponse, error) {
	s.logger.Info("List: salon=%v, specialist=%v, limit=%d, offset=%d",
		req.SalonID, req.SpecialistID, req.Limit, req.Offset)

	reviews, err := s.reviewRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reviews", len(reviews))
	return models.FromDomainReviewList(reviews), nil
}
