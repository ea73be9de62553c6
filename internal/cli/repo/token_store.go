package repo

// TokenStore хранит JWT, которым CLI подписывает запросы к маркетплейсу.
// Load без сохранённого токена возвращает ошибку; команды тогда работают анонимно.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
}
