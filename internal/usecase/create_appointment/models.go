package create_appointment

import "time"

// Request модель запроса на создание записи
type Request struct {
	ActorID      int64     // ID аутентифицированного пользователя, создающего запись
	IsAdmin      bool      // Признак администратора
	SalonID      int64     // ID салона
	SpecialistID int64     // ID мастера
	ServiceID    int64     // ID услуги
	StartTime    time.Time // Время начала записи
	Notes        *string   // Дополнительные заметки (опционально)

	// Гостевая запись: создается владельцем салона за клиента без аккаунта,
	// userID у такой записи отсутствует
	AsGuest     bool
	ClientName  *string
	ClientPhone *string
	ClientEmail *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID           int64     // ID созданной записи
	UserID       *int64    // ID клиента, nil для гостевых записей
	SalonID      int64     // ID салона
	SpecialistID int64     // ID мастера
	ServiceID    int64     // ID услуги
	StartTime    time.Time // Время начала
	EndTime      time.Time // Время окончания
	Status       string    // Статус записи
	Price        float64   // Зафиксированная цена услуги
	Notes        *string   // Заметки

	ClientName  *string
	ClientPhone *string
	ClientEmail *string

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
