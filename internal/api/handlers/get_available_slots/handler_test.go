package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/beautyline/salon-service/internal/usecase/get_available_slots"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error

	gotReq *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func serve(uc *fakeUseCase, url string) *httptest.ResponseRecorder {
	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/salons/{salonId}/specialists/{specialistId}/available-slots", h.Handle).Methods("GET")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", url, nil))
	return w
}

func TestHandle_ReturnsSlots(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{
		resp: &getAvailableSlots.Response{
			SalonID: 1, SpecialistID: 2, ServiceID: 3,
			Date: date, DurationMinutes: 60,
			Slots: []time.Time{
				date.Add(9 * time.Hour),
				date.Add(9*time.Hour + 15*time.Minute),
			},
		},
	}

	w := serve(uc, "/api/v1/salons/1/specialists/2/available-slots?serviceId=3&date=2026-09-07")
	require.Equal(t, http.StatusOK, w.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Equal(t, 60, resp.DurationMinutes)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "2026-09-07T09:00:00Z", resp.Slots[0])

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(1), uc.gotReq.SalonID)
	assert.Equal(t, int64(2), uc.gotReq.SpecialistID)
	assert.Equal(t, int64(3), uc.gotReq.ServiceID)
}

func TestHandle_EmptySlotsSerializeAsEmptyArray(t *testing.T) {
	uc := &fakeUseCase{
		resp: &getAvailableSlots.Response{
			SalonID: 1, SpecialistID: 2, ServiceID: 3,
			Date: time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC), DurationMinutes: 60,
			Slots: []time.Time{},
		},
	}

	w := serve(uc, "/api/v1/salons/1/specialists/2/available-slots?serviceId=3&date=2026-09-06")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slots":[]`)
}

func TestHandle_ParamErrors(t *testing.T) {
	t.Run("bad salon id in path", func(t *testing.T) {
		w := serve(&fakeUseCase{}, "/api/v1/salons/abc/specialists/2/available-slots?serviceId=3&date=2026-09-07")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing service id", func(t *testing.T) {
		w := serve(&fakeUseCase{}, "/api/v1/salons/1/specialists/2/available-slots?date=2026-09-07")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "serviceId")
	})

	t.Run("bad date format", func(t *testing.T) {
		w := serve(&fakeUseCase{}, "/api/v1/salons/1/specialists/2/available-slots?serviceId=3&date=07.09.2026")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("bad granularity", func(t *testing.T) {
		w := serve(&fakeUseCase{}, "/api/v1/salons/1/specialists/2/available-slots?serviceId=3&date=2026-09-07&granularity=abc")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "salon not found", err: getAvailableSlots.ErrSalonNotFound, code: http.StatusNotFound},
		{name: "specialist not found", err: getAvailableSlots.ErrSpecialistNotFound, code: http.StatusNotFound},
		{name: "service not found", err: getAvailableSlots.ErrServiceNotFound, code: http.StatusNotFound},
		{name: "service not provided", err: getAvailableSlots.ErrServiceNotProvided, code: http.StatusUnprocessableEntity},
		{name: "invalid input", err: getAvailableSlots.ErrInvalidInput, code: http.StatusUnprocessableEntity},
		{name: "internal error", err: getAvailableSlots.ErrInternal, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&fakeUseCase{err: tt.err}, "/api/v1/salons/1/specialists/2/available-slots?serviceId=3&date=2026-09-07")
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
