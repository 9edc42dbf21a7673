package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beautyline/salon-service/internal/config"
	"github.com/beautyline/salon-service/internal/domain"
	salonstorage "github.com/beautyline/salon-service/internal/infra/storage/salon"
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
	err        error
}

func (f *fakeSpecialistRepo) GetByID(ctx context.Context, id int64) (*domain.Specialist, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.specialist, nil
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetOverlapping(ctx context.Context, specialistID int64, from, to time.Time, excludeID *int64) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
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

func testSalon() *domain.Salon {
	return &domain.Salon{
		ID:       1,
		OwnerID:  100,
		Name:     "Scissors & Co",
		Timezone: "UTC",
		Active:   true,
		WorkingHours: domain.WeekSchedule{
			Monday:    domain.DaySchedule{Open: "09:00", Close: "18:00"},
			Tuesday:   domain.DaySchedule{Open: "09:00", Close: "18:00"},
			Wednesday: domain.DaySchedule{Open: "09:00", Close: "18:00"},
			Thursday:  domain.DaySchedule{Open: "09:00", Close: "18:00"},
			Friday:    domain.DaySchedule{Open: "09:00", Close: "18:00"},
			Saturday:  domain.DaySchedule{Closed: true},
			Sunday:    domain.DaySchedule{Closed: true},
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

func newTestUseCase(salon *domain.Salon, specialist *domain.Specialist, service *domain.Service, appointments []*domain.Appointment) *UseCase {
	uc := NewUseCase(
		&fakeSalonRepo{salon: salon},
		&fakeSpecialistRepo{specialist: specialist},
		&fakeServiceRepo{service: service},
		&fakeAppointmentRepo{appointments: appointments},
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

func slotAt(day time.Time, hh, mm int) time.Time {
	return day.Add(time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute)
}

func TestExecute_FullyOpenDay(t *testing.T) {
	uc := newTestUseCase(testSalon(), testSpecialist(), testService(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID: 1, SpecialistID: 2, ServiceID: 3, Date: testDate,
	})
	require.NoError(t, err)

	// 09:00 .. 17:00 с шагом 15 минут, последний слот заканчивается ровно в 18:00
	require.Len(t, resp.Slots, 33)
	assert.Equal(t, slotAt(testDate, 9, 0), resp.Slots[0])
	assert.Equal(t, slotAt(testDate, 17, 0), resp.Slots[32])
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_BusyIntervalBlocksSlots(t *testing.T) {
	busy := []*domain.Appointment{
		{
			ID: 10, SpecialistID: 2, Status: domain.StatusConfirmed,
			StartTime: slotAt(testDate, 12, 0), EndTime: slotAt(testDate, 13, 0),
		},
	}
	uc := newTestUseCase(testSalon(), testSpecialist(), testService(), busy)

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID: 1, SpecialistID: 2, ServiceID: 3, Date: testDate,
	})
	require.NoError(t, err)

	// 09:00..11:00 и 13:00..17:00: услуга длится час и не влезает перед занятым интервалом позднее 11:00
	require.Len(t, resp.Slots, 26)
	assert.Contains(t, resp.Slots, slotAt(testDate, 11, 0))
	assert.NotContains(t, resp.Slots, slotAt(testDate, 11, 15))
	assert.NotContains(t, resp.Slots, slotAt(testDate, 12, 0))
	assert.NotContains(t, resp.Slots, slotAt(testDate, 12, 45))
	assert.Contains(t, resp.Slots, slotAt(testDate, 13, 0))
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	cancelled := []*domain.Appointment{
		{
			ID: 10, SpecialistID: 2, Status: domain.StatusCancelled,
			StartTime: slotAt(testDate, 12, 0), EndTime: slotAt(testDate, 13, 0),
		},
	}
	uc := newTestUseCase(testSalon(), testSpecialist(), testService(), cancelled)

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID: 1, SpecialistID: 2, ServiceID: 3, Date: testDate,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 33)
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := newTestUseCase(testSalon(), testSpecialist(), testService(), nil)

	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		SalonID: 1, SpecialistID: 2, ServiceID: 3, Date: sunday,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_MalformedScheduleTreatedAsClosed(t *testing.T) {
	salon := testSalon()
	salon.WorkingHours.Monday = domain.DaySchedule{Open: "18:00", Close: "09:00"}
	uc := newTestUseCase(salon, testSpecialist(), testService(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID: 1, SpecialistID: 2, ServiceID: 3, Date: testDate,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BeyondBookingHorizon(t *testing.T) {
	uc := newTestUseCase(testSalon(), testSpecialist(), testService(), nil)

	farDate := testNow.AddDate(0, 0, 61)
	resp, err := uc.Execute(context.Background(), &Request{
		SalonID: 1, SpecialistID: 2, ServiceID: 3, Date: farDate,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_LeadTimeFiltersSameDaySlots(t *testing.T) {
	uc := newTestUseCase(testSalon(), testSpecialist(), testService(), nil)
	// "Сейчас" 10:30 того же дня, отступ 60 минут: слоты строго позже 11:30
	uc.timeProvider = &fixedTimeProvider{now: slotAt(testDate, 10, 30)}

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID: 1, SpecialistID: 2, ServiceID: 3, Date: testDate,
	})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, slotAt(testDate, 11, 45), resp.Slots[0])
	assert.NotContains(t, resp.Slots, slotAt(testDate, 11, 30))
}

func TestExecute_PastDateGivesNoSlots(t *testing.T) {
	uc := newTestUseCase(testSalon(), testSpecialist(), testService(), nil)
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID: 1, SpecialistID: 2, ServiceID: 3, Date: testDate,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_CustomGranularity(t *testing.T) {
	uc := newTestUseCase(testSalon(), testSpecialist(), testService(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID: 1, SpecialistID: 2, ServiceID: 3, Date: testDate,
		GranularityMinutes: 30,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 17)
	assert.Equal(t, slotAt(testDate, 9, 0), resp.Slots[0])
	assert.Equal(t, slotAt(testDate, 9, 30), resp.Slots[1])
}

func TestExecute_SpecialistScheduleOverride(t *testing.T) {
	specialist := testSpecialist()
	specialist.WorkingHours = &domain.WeekSchedule{
		Monday: domain.DaySchedule{Open: "12:00", Close: "16:00"},
	}
	uc := newTestUseCase(testSalon(), specialist, testService(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID: 1, SpecialistID: 2, ServiceID: 3, Date: testDate,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 13)
	assert.Equal(t, slotAt(testDate, 12, 0), resp.Slots[0])
	assert.Equal(t, slotAt(testDate, 15, 0), resp.Slots[12])
}

func TestExecute_SalonTimezone(t *testing.T) {
	salon := testSalon()
	salon.Timezone = "Europe/Moscow"
	uc := newTestUseCase(salon, testSpecialist(), testService(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID: 1, SpecialistID: 2, ServiceID: 3, Date: testDate,
	})
	require.NoError(t, err)

	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.True(t, resp.Slots[0].Equal(time.Date(2026, 9, 7, 9, 0, 0, 0, loc)))
}

func TestExecute_Idempotent(t *testing.T) {
	uc := newTestUseCase(testSalon(), testSpecialist(), testService(), nil)
	req := &Request{SalonID: 1, SpecialistID: 2, ServiceID: 3, Date: testDate}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_NotFoundAndConsistencyErrors(t *testing.T) {
	t.Run("salon not found", func(t *testing.T) {
		uc := newTestUseCase(testSalon(), testSpecialist(), testService(), nil)
		uc.salonRepo = &fakeSalonRepo{err: salonstorage.ErrSalonNotFound}

		_, err := uc.Execute(context.Background(), &Request{
			SalonID: 99, SpecialistID: 2, ServiceID: 3, Date: testDate,
		})
		assert.ErrorIs(t, err, ErrSalonNotFound)
	})

	t.Run("specialist from another salon", func(t *testing.T) {
		specialist := testSpecialist()
		specialist.SalonID = 77
		uc := newTestUseCase(testSalon(), specialist, testService(), nil)

		_, err := uc.Execute(context.Background(), &Request{
			SalonID: 1, SpecialistID: 2, ServiceID: 3, Date: testDate,
		})
		assert.ErrorIs(t, err, ErrSpecialistNotFound)
	})

	t.Run("service from another salon", func(t *testing.T) {
		service := testService()
		service.SalonID = 77
		uc := newTestUseCase(testSalon(), testSpecialist(), service, nil)

		_, err := uc.Execute(context.Background(), &Request{
			SalonID: 1, SpecialistID: 2, ServiceID: 3, Date: testDate,
		})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("specialist does not perform the service", func(t *testing.T) {
		specialist := testSpecialist()
		specialist.ServiceIDs = []int64{999}
		uc := newTestUseCase(testSalon(), specialist, testService(), nil)

		_, err := uc.Execute(context.Background(), &Request{
			SalonID: 1, SpecialistID: 2, ServiceID: 3, Date: testDate,
		})
		assert.ErrorIs(t, err, ErrServiceNotProvided)
	})
}

func TestExecute_ValidatesInput(t *testing.T) {
	uc := newTestUseCase(testSalon(), testSpecialist(), testService(), nil)

	_, err := uc.Execute(context.Background(), &Request{
		SalonID: 0, SpecialistID: 2, ServiceID: 3, Date: testDate,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		SalonID: 1, SpecialistID: 2, ServiceID: 3, Date: testDate,
		GranularityMinutes: 3,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		SalonID: 1, SpecialistID: 2, ServiceID: 3,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
