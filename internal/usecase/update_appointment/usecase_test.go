package update_appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beautyline/salon-service/internal/config"
	"github.com/beautyline/salon-service/internal/domain"
	appointmentstorage "github.com/beautyline/salon-service/internal/infra/storage/appointment"
	servicestorage "github.com/beautyline/salon-service/internal/infra/storage/service"
	"github.com/beautyline/salon-service/pkg/ptr"
)

type fakeSalonRepo struct {
	salon *domain.Salon
}

func (f *fakeSalonRepo) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	return f.salon, nil
}

type fakeSpecialistRepo struct {
	specialist *domain.Specialist
}

func (f *fakeSpecialistRepo) GetByID(ctx context.Context, id int64) (*domain.Specialist, error) {
	return f.specialist, nil
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	service, ok := f.services[id]
	if !ok {
		return nil, servicestorage.ErrServiceNotFound
	}
	return service, nil
}

// fakeAppointmentStore in-memory хранилище записей
type fakeAppointmentStore struct {
	mu           sync.Mutex
	appointments map[int64]*domain.Appointment
}

func (s *fakeAppointmentStore) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt, ok := s.appointments[id]
	if !ok {
		return nil, appointmentstorage.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
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

func (s *fakeAppointmentStore) Reschedule(ctx context.Context, id int64, serviceID int64, start, end time.Time, price float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt, ok := s.appointments[id]
	if !ok {
		return appointmentstorage.ErrAppointmentNotFound
	}
	appt.ServiceID = serviceID
	appt.StartTime = start
	appt.EndTime = end
	appt.Price = price
	appt.UpdatedAt = time.Now()
	return nil
}

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
		Timezone: "UTC",
		Active:   true,
		WorkingHours: domain.WeekSchedule{
			Monday: domain.DaySchedule{Open: "09:00", Close: "18:00"},
		},
	}
}

func testSpecialist() *domain.Specialist {
	return &domain.Specialist{
		ID:         2,
		SalonID:    1,
		ServiceIDs: []int64{3, 4},
		Active:     true,
	}
}

func testServices() map[int64]*domain.Service {
	return map[int64]*domain.Service{
		3: {ID: 3, SalonID: 1, Name: "Haircut", Price: 50, DurationMinutes: 60, Active: true},
		4: {ID: 4, SalonID: 1, Name: "Styling", Price: 80, DiscountedPrice: ptr.Ptr(70.0), DurationMinutes: 30, Active: true},
	}
}

func testStore() *fakeAppointmentStore {
	return &fakeAppointmentStore{
		appointments: map[int64]*domain.Appointment{
			5: {
				ID: 5, UserID: ptr.Ptr(int64(42)), SalonID: 1, SpecialistID: 2, ServiceID: 3,
				StartTime: at(12, 0), EndTime: at(13, 0),
				Status: domain.StatusConfirmed, Price: 45,
			},
		},
	}
}

func newTestUseCase(store *fakeAppointmentStore) *UseCase {
	uc := NewUseCase(
		store,
		&fakeSalonRepo{salon: testSalon()},
		&fakeSpecialistRepo{specialist: testSpecialist()},
		&fakeServiceRepo{services: testServices()},
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

func TestExecute_RescheduleKeepsPriceSnapshot(t *testing.T) {
	store := testStore()
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 5, ActorID: 42,
		StartTime: ptr.Ptr(at(15, 0)),
	})
	require.NoError(t, err)

	assert.Equal(t, at(15, 0), resp.StartTime)
	assert.Equal(t, at(16, 0), resp.EndTime)
	// Цена на момент бронирования сохраняется при переносе по времени
	assert.Equal(t, 45.0, resp.Price)
	assert.Equal(t, int64(3), resp.ServiceID)
}

func TestExecute_ServiceChangeResnapshotsPrice(t *testing.T) {
	store := testStore()
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 5, ActorID: 42,
		ServiceID: ptr.Ptr(int64(4)),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), resp.ServiceID)
	// Новая услуга дешевле по акции, снимок обновляется
	assert.Equal(t, 70.0, resp.Price)
	// Длительность пересчитана под новую услугу
	assert.Equal(t, at(12, 30), resp.EndTime)
}

func TestExecute_ExcludesSelfFromConflictCheck(t *testing.T) {
	store := testStore()
	uc := newTestUseCase(store)

	// Сдвиг на 30 минут: новый интервал пересекается со старым положением самой записи
	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 5, ActorID: 42,
		StartTime: ptr.Ptr(at(12, 30)),
	})
	require.NoError(t, err)
	assert.Equal(t, at(12, 30), resp.StartTime)
}

func TestExecute_SlotTakenByAnotherAppointment(t *testing.T) {
	store := testStore()
	store.appointments[6] = &domain.Appointment{
		ID: 6, SalonID: 1, SpecialistID: 2, ServiceID: 3,
		StartTime: at(15, 0), EndTime: at(16, 0),
		Status: domain.StatusPending, Price: 50,
	}
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 5, ActorID: 42,
		StartTime: ptr.Ptr(at(15, 30)),
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Запись осталась на прежнем месте
	appt, getErr := store.GetByID(context.Background(), 5)
	require.NoError(t, getErr)
	assert.Equal(t, at(12, 0), appt.StartTime)
}

func TestExecute_TerminalStatusesAreNotReschedulable(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{domain.StatusCompleted, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			store := testStore()
			store.appointments[5].Status = status
			uc := newTestUseCase(store)

			_, err := uc.Execute(context.Background(), &Request{
				AppointmentID: 5, ActorID: 42,
				StartTime: ptr.Ptr(at(15, 0)),
			})
			assert.ErrorIs(t, err, ErrNotReschedulable)
		})
	}
}

func TestExecute_AccessControl(t *testing.T) {
	t.Run("stranger is rejected", func(t *testing.T) {
		uc := newTestUseCase(testStore())

		_, err := uc.Execute(context.Background(), &Request{
			AppointmentID: 5, ActorID: 7,
			StartTime: ptr.Ptr(at(15, 0)),
		})
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("salon owner may reschedule", func(t *testing.T) {
		uc := newTestUseCase(testStore())

		_, err := uc.Execute(context.Background(), &Request{
			AppointmentID: 5, ActorID: 100,
			StartTime: ptr.Ptr(at(15, 0)),
		})
		assert.NoError(t, err)
	})

	t.Run("admin may reschedule", func(t *testing.T) {
		uc := newTestUseCase(testStore())

		_, err := uc.Execute(context.Background(), &Request{
			AppointmentID: 5, ActorID: 7, IsAdmin: true,
			StartTime: ptr.Ptr(at(15, 0)),
		})
		assert.NoError(t, err)
	})
}

func TestExecute_RequiresAtLeastOneChange(t *testing.T) {
	uc := newTestUseCase(testStore())

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 5, ActorID: 42,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_AppointmentNotFound(t *testing.T) {
	uc := newTestUseCase(testStore())

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 99, ActorID: 42,
		StartTime: ptr.Ptr(at(15, 0)),
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	uc := newTestUseCase(testStore())

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 5, ActorID: 42,
		StartTime: ptr.Ptr(at(17, 30)),
	})
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}
