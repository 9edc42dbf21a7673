package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в салоне
	ErrServiceNotFound = errors.New("update_appointment: service not found")

	// ErrServiceNotProvided возвращается, когда мастер не выполняет услугу
	ErrServiceNotProvided = errors.New("update_appointment: specialist does not provide this service")

	// ErrNotReschedulable возвращается для завершенных и отмененных записей
	ErrNotReschedulable = errors.New("update_appointment: appointment can no longer be edited")

	// ErrStartInPast возвращается, когда новое время начала уже прошло
	ErrStartInPast = errors.New("update_appointment: start time is in the past")

	// ErrTooLateToBook возвращается при нарушении минимального отступа от текущего времени
	ErrTooLateToBook = errors.New("update_appointment: too late to book this slot")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("update_appointment: date is too far in the future")

	// ErrOutsideWorkingHours возвращается, когда запись не помещается в рабочие часы
	ErrOutsideWorkingHours = errors.New("update_appointment: appointment is outside working hours")

	// ErrSlotTaken возвращается, когда новый интервал пересекается с другой записью
	ErrSlotTaken = errors.New("update_appointment: slot is already taken")

	// ErrPermissionDenied возвращается, когда у пользователя нет права на операцию
	ErrPermissionDenied = errors.New("update_appointment: permission denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
