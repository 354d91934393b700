package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrSessionInvalid возвращается, когда сессия не найдена, истекла или отозвана
	ErrSessionInvalid = errors.New("auth: session is invalid")

	// ErrUsernameTaken возвращается при попытке создать администратора с существующим логином
	ErrUsernameTaken = errors.New("auth: username already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
