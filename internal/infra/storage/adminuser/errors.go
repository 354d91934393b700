package adminuser

import "errors"

var (
	// ErrAdminUserNotFound возвращается, когда администратор не найден
	ErrAdminUserNotFound = errors.New("adminuser.repository: admin user not found")

	// ErrUsernameTaken возвращается при попытке создать администратора с существующим логином
	ErrUsernameTaken = errors.New("adminuser.repository: username already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("adminuser.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("adminuser.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("adminuser.repository: failed to scan row")
)
