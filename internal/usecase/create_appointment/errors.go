package create_appointment

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("create_appointment: salon not found")

	// ErrSpecialistNotFound возвращается, когда мастер не найден в салоне
	ErrSpecialistNotFound = errors.New("create_appointment: specialist not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в салоне
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceNotProvided возвращается, когда мастер не выполняет услугу
	ErrServiceNotProvided = errors.New("create_appointment: specialist does not provide this service")

	// ErrSalonInactive возвращается при попытке записи в неактивный салон
	ErrSalonInactive = errors.New("create_appointment: salon is not active")

	// ErrStartInPast возвращается, когда время начала уже прошло
	ErrStartInPast = errors.New("create_appointment: start time is in the past")

	// ErrTooLateToBook возвращается при нарушении минимального отступа от текущего времени
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrOutsideWorkingHours возвращается, когда запись не помещается в рабочие часы
	ErrOutsideWorkingHours = errors.New("create_appointment: appointment is outside working hours")

	// ErrSlotTaken возвращается, когда интервал пересекается с другой записью
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrPermissionDenied возвращается, когда у пользователя нет права на операцию
	ErrPermissionDenied = errors.New("create_appointment: permission denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
