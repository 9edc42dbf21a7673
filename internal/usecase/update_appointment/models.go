package update_appointment

import "time"

// Request модель запроса на изменение записи
// Пустые поля (nil/zero) означают "оставить как есть"
type Request struct {
	AppointmentID int64      // ID изменяемой записи
	ActorID       int64      // ID аутентифицированного пользователя
	IsAdmin       bool       // Признак администратора
	ServiceID     *int64     // Новая услуга (опционально)
	StartTime     *time.Time // Новое время начала (опционально)
}

// Response модель ответа с измененной записью
type Response struct {
	ID           int64     // ID записи
	UserID       *int64    // ID клиента, nil для гостевых записей
	SalonID      int64     // ID салона
	SpecialistID int64     // ID мастера
	ServiceID    int64     // ID услуги
	StartTime    time.Time // Время начала
	EndTime      time.Time // Время окончания
	Status       string    // Статус записи
	Price        float64   // Зафиксированная цена услуги
	Notes        *string   // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
