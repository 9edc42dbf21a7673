package create_appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beautyline/salon-service/internal/config"
	"github.com/beautyline/salon-service/internal/domain"
	"github.com/beautyline/salon-service/pkg/ptr"
)

type fakeSalonRepo struct {
	salon *domain.Salon
	err   error
}

func (f *fakeSalonRepo) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.salon, nil
}

type fakeSpecialistRepo struct {
	specialist *domain.Specialist
}

func (f *fakeSpecialistRepo) GetByID(ctx context.Context, id int64) (*domain.Specialist, error) {
	return f.specialist, nil
}

type fakeServiceRepo struct {
	service *domain.Service
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	return f.service, nil
}

// fakeAppointmentStore хранит записи в памяти и воспроизводит контракт
// GetOverlapping: возвращает активные записи, пересекающие [from, to)
type fakeAppointmentStore struct {
	mu           sync.Mutex
	appointments []*domain.Appointment
	nextID       int64
}

func (s *fakeAppointmentStore) GetOverlapping(ctx context.Context, specialistID int64, from, to time.Time, excludeID *int64) ([]*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requested := domain.TimeInterval{Start: from, End: to}
	result := make([]*domain.Appointment, 0)
	for _, appt := range s.appointments {
		if appt.SpecialistID != specialistID || !appt.IsActive() {
			continue
		}
		if excludeID != nil && appt.ID == *excludeID {
			continue
		}
		if appt.Interval().Overlaps(requested) {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (s *fakeAppointmentStore) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	created := *appointment
	created.ID = s.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.appointments = append(s.appointments, &created)
	return &created, nil
}

// fakeTxManager сериализует конкурентные транзакции мьютексом,
// имитируя поведение сериализуемых транзакций БД
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// 2026-09-07 - понедельник
var (
	testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
)

func at(hh, mm int) time.Time {
	return testDate.Add(time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute)
}

func testSalon() *domain.Salon {
	return &domain.Salon{
		ID:       1,
		OwnerID:  100,
		Name:     "Scissors & Co",
		Timezone: "UTC",
		Active:   true,
		WorkingHours: domain.WeekSchedule{
			Monday:  domain.DaySchedule{Open: "09:00", Close: "18:00"},
			Sunday:  domain.DaySchedule{Closed: true},
			Tuesday: domain.DaySchedule{Open: "09:00", Close: "18:00"},
		},
	}
}

func testSpecialist() *domain.Specialist {
	return &domain.Specialist{
		ID:         2,
		SalonID:    1,
		Name:       "Anna",
		ServiceIDs: []int64{3},
		Active:     true,
	}
}

func testService() *domain.Service {
	return &domain.Service{
		ID:              3,
		SalonID:         1,
		Name:            "Haircut",
		Price:           50,
		DurationMinutes: 60,
		Active:          true,
	}
}

func newTestUseCase(salon *domain.Salon, specialist *domain.Specialist, service *domain.Service, store *fakeAppointmentStore) *UseCase {
	uc := NewUseCase(
		store,
		&fakeSalonRepo{salon: salon},
		&fakeSpecialistRepo{specialist: specialist},
		&fakeServiceRepo{service: service},
		&fakeTxManager{},
		config.BookingConfig{
			GranularityMinutes: 15,
			MinLeadTimeMinutes: 60,
			AdvanceBookingDays: 60,
			DefaultLocale:      "en",
		},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		ActorID:      42,
		SalonID:      1,
		SpecialistID: 2,
		ServiceID:    3,
		StartTime:    at(12, 0),
	}
}

func TestExecute_CreatesPendingAppointment(t *testing.T) {
	store := &fakeAppointmentStore{}
	uc := newTestUseCase(testSalon(), testSpecialist(), testService(), store)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	require.NotNil(t, resp.UserID)
	assert.Equal(t, int64(42), *resp.UserID)
	assert.Equal(t, at(12, 0), resp.StartTime)
	assert.Equal(t, at(13, 0), resp.EndTime)
	assert.Equal(t, 50.0, resp.Price)
	require.Len(t, store.appointments, 1)
}

func TestExecute_SnapshotsDiscountedPrice(t *testing.T) {
	service := testService()
	service.DiscountedPrice = ptr.Ptr(40.0)
	store := &fakeAppointmentStore{}
	uc := newTestUseCase(testSalon(), testSpecialist(), service, store)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 40.0, resp.Price)
}

func TestExecute_SlotTaken(t *testing.T) {
	store := &fakeAppointmentStore{
		nextID: 1,
		appointments: []*domain.Appointment{
			{
				ID: 1, SpecialistID: 2, Status: domain.StatusConfirmed,
				StartTime: at(12, 0), EndTime: at(13, 0),
			},
		},
	}
	uc := newTestUseCase(testSalon(), testSpecialist(), testService(), store)

	req := validRequest()
	req.StartTime = at(12, 30)
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, store.appointments, 1)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	store := &fakeAppointmentStore{
		nextID: 1,
		appointments: []*domain.Appointment{
			{
				ID: 1, SpecialistID: 2, Status: domain.StatusConfirmed,
				StartTime: at(12, 0), EndTime: at(13, 0),
			},
		},
	}
	uc := newTestUseCase(testSalon(), testSpecialist(), testService(), store)

	req := validRequest()
	req.StartTime = at(13, 0)
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, at(14, 0), resp.EndTime)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	store := &fakeAppointmentStore{
		nextID: 1,
		appointments: []*domain.Appointment{
			{
				ID: 1, SpecialistID: 2, Status: domain.StatusCancelled,
				StartTime: at(12, 0), EndTime: at(13, 0),
			},
		},
	}
	uc := newTestUseCase(testSalon(), testSpecialist(), testService(), store)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	uc := newTestUseCase(testSalon(), testSpecialist(), testService(), &fakeAppointmentStore{})

	t.Run("service does not fit before closing", func(t *testing.T) {
		req := validRequest()
		req.StartTime = at(17, 30)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideWorkingHours)
	})

	t.Run("closed day", func(t *testing.T) {
		req := validRequest()
		req.StartTime = at(12, 0).AddDate(0, 0, -1) // воскресенье
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideWorkingHours)
	})

	t.Run("before opening", func(t *testing.T) {
		req := validRequest()
		req.StartTime = at(8, 0)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideWorkingHours)
	})
}

func TestExecute_TimingValidation(t *testing.T) {
	uc := newTestUseCase(testSalon(), testSpecialist(), testService(), &fakeAppointmentStore{})

	t.Run("start in the past", func(t *testing.T) {
		req := validRequest()
		req.StartTime = testNow.AddDate(0, 0, -1)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrStartInPast)
	})

	t.Run("inside the lead time window", func(t *testing.T) {
		uc := newTestUseCase(testSalon(), testSpecialist(), testService(), &fakeAppointmentStore{})
		// "Сейчас" 11:30 того же понедельника, отступ 60 минут
		uc.timeProvider = &fixedTimeProvider{now: at(11, 30)}

		req := validRequest() // начало 12:00
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrTooLateToBook)
	})

	t.Run("beyond the booking horizon", func(t *testing.T) {
		req := validRequest()
		req.StartTime = testNow.AddDate(0, 0, 90)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})
}

func TestExecute_InactiveSalon(t *testing.T) {
	salon := testSalon()
	salon.Active = false
	uc := newTestUseCase(salon, testSpecialist(), testService(), &fakeAppointmentStore{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSalonInactive)
}

func TestExecute_GuestAppointment(t *testing.T) {
	guestRequest := func(actorID int64, isAdmin bool) *Request {
		req := validRequest()
		req.ActorID = actorID
		req.IsAdmin = isAdmin
		req.AsGuest = true
		req.ClientName = ptr.Ptr("Ivan Petrov")
		req.ClientPhone = ptr.Ptr("+79001234567")
		return req
	}

	t.Run("owner creates a guest appointment", func(t *testing.T) {
		store := &fakeAppointmentStore{}
		uc := newTestUseCase(testSalon(), testSpecialist(), testService(), store)

		resp, err := uc.Execute(context.Background(), guestRequest(100, false))
		require.NoError(t, err)

		assert.Nil(t, resp.UserID)
		require.NotNil(t, resp.ClientName)
		assert.Equal(t, "Ivan Petrov", *resp.ClientName)
	})

	t.Run("admin creates a guest appointment", func(t *testing.T) {
		store := &fakeAppointmentStore{}
		uc := newTestUseCase(testSalon(), testSpecialist(), testService(), store)

		_, err := uc.Execute(context.Background(), guestRequest(7, true))
		assert.NoError(t, err)
	})

	t.Run("regular user is rejected", func(t *testing.T) {
		store := &fakeAppointmentStore{}
		uc := newTestUseCase(testSalon(), testSpecialist(), testService(), store)

		_, err := uc.Execute(context.Background(), guestRequest(7, false))
		assert.ErrorIs(t, err, ErrPermissionDenied)
		assert.Empty(t, store.appointments)
	})

	t.Run("guest contacts are required", func(t *testing.T) {
		uc := newTestUseCase(testSalon(), testSpecialist(), testService(), &fakeAppointmentStore{})

		req := guestRequest(100, false)
		req.ClientPhone = nil
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_ConcurrentBookingOfSameSlot(t *testing.T) {
	store := &fakeAppointmentStore{}
	uc := newTestUseCase(testSalon(), testSpecialist(), testService(), store)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.ActorID = int64(42 + i)
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	// Ровно одна из двух конкурентных попыток получает слот
	var taken, succeeded int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrSlotTaken):
			taken++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, taken)
	assert.Len(t, store.appointments, 1)
}
