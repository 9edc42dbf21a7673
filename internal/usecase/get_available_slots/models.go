package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	SalonID            int64     // ID салона
	SpecialistID       int64     // ID мастера
	ServiceID          int64     // ID услуги
	Date               time.Time // Дата, на которую запрашиваются слоты (без времени)
	GranularityMinutes int       // Шаг сетки слотов; 0 = значение из конфигурации
}

// Response модель ответа со списком доступных слотов
type Response struct {
	SalonID         int64       // ID салона
	SpecialistID    int64       // ID мастера
	ServiceID       int64       // ID услуги
	Date            time.Time   // Дата запроса
	DurationMinutes int         // Длительность услуги
	Slots           []time.Time // Времена начала доступных слотов по возрастанию
}
