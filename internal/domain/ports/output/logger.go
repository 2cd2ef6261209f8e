package ports

//go:generate mockery --name Logger --dir . --output ../../../../mocks/ports --outpkg mocks --filename Logger.go
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
