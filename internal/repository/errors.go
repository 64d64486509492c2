package repository

import "errors"

var (
	// ErrUserNotFound возвращается, если пользователь не найден в хранилище.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailExists возвращается при попытке зарегистрировать занятый email.
	ErrEmailExists = errors.New("email already registered")
)
