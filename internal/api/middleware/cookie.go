package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

const tokenKey = "token"

// SessionCookie хранит токен сессии в подписанной и зашифрованной cookie
type SessionCookie struct {
	sc     *securecookie.SecureCookie
	name   string
	secure bool
}

// NewSessionCookie создает cookie-хранилище. Если hashKey пустой, генерируются
// случайные ключи, и сессии не переживают перезапуск процесса.
func NewSessionCookie(name string, hashKey, blockKey []byte, secure bool) *SessionCookie {
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(64)
		blockKey = securecookie.GenerateRandomKey(32)
	}

	return &SessionCookie{
		sc:     securecookie.New(hashKey, blockKey),
		name:   name,
		secure: secure,
	}
}

// Set записывает токен в cookie до момента expiresAt
func (c *SessionCookie) Set(w http.ResponseWriter, token uuid.UUID, expiresAt time.Time) error {
	value := map[string]string{tokenKey: token.String()}

	encoded, err := c.sc.Encode(c.name, value)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    encoded,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear удаляет cookie
func (c *SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token читает токен из cookie. Подделанная или битая cookie не даёт токена.
func (c *SessionCookie) Token(r *http.Request) (uuid.UUID, bool) {
	cookie, err := r.Cookie(c.name)
	if err != nil {
		return uuid.Nil, false
	}

	value := map[string]string{}
	if err := c.sc.Decode(c.name, cookie.Value, &value); err != nil {
		return uuid.Nil, false
	}

	token, err := uuid.Parse(value[tokenKey])
	if err != nil || token == uuid.Nil {
		return uuid.Nil, false
	}

	return token, true
}
