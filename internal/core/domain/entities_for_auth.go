package domain

import "time"

type UserType string

const (
	UserTypeUser  UserType = "USER"
	UserTypeAgent UserType = "AGENT"
	UserTypeOwner UserType = "OWNER"
	UserTypeAdmin UserType = "ADMIN"
)

type User struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Role      string   `json:"role"`
	UserType  UserType `json:"userType"`
}

// Ключи записи сессии.
const (
	SessionKeyAuthToken = "authToken"
	SessionKeyAuthUser  = "authUser"
)

// Session - аутентифицированная сессия браузера.
type Session struct {
	ID        string
	Token     string
	User      User
	Dashboard *Dashboard
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type Registration struct {
	Username        string   `validate:"required,min=3"`
	Email           string   `validate:"required,email"`
	Password        string   `validate:"required,min=8"`
	ConfirmPassword string   `validate:"required,eqfield=Password"`
	FirstName       string
	LastName        string
	UserType        UserType `validate:"omitempty,oneof=USER AGENT OWNER"`
}

type ProfileUpdate struct {
	Username  string `validate:"omitempty,min=3"`
	FirstName string
	LastName  string
	Email     string `validate:"omitempty,email"`
}

// AuthResult - ответ удаленного API на вход/регистрацию.
type AuthResult struct {
	Token string
	User  User
}

// TokenInfo - данные из claims токена бэкенда.
type TokenInfo struct {
	Subject   string
	Role      string
	ExpiresAt *time.Time
}
