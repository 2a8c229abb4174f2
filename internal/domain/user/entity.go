package user

import (
	"strings"

	"space-booking/internal/pkg/errs"
)

var (
	ErrEmptyName      = errs.New("user name cannot be empty")
	ErrInvalidContact = errs.New("invalid contact address")
	ErrInvalidRole    = errs.New("invalid role")
)

type User struct {
	id      int64
	name    string
	contact string
	role    Role
}

// NewUser validates registration input. The id is zero until the store
// assigns one.
func NewUser(name, contact string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	contact = strings.TrimSpace(contact)
	if err := validateContact(contact); err != nil {
		return nil, err
	}

	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &User{
		name:    name,
		contact: contact,
		role:    role,
	}, nil
}

func ReconstructUser(id int64, name, contact string, role Role) *User {
	return &User{
		id:      id,
		name:    name,
		contact: contact,
		role:    role,
	}
}

func (u *User) ID() int64       { return u.id }
func (u *User) Name() string    { return u.name }
func (u *User) Contact() string { return u.contact }
func (u *User) Role() Role      { return u.role }

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

func validateContact(contact string) error {
	at := strings.Index(contact, "@")
	if at <= 0 || at == len(contact)-1 {
		return ErrInvalidContact
	}
	if strings.ContainsAny(contact, " \t") {
		return ErrInvalidContact
	}
	return nil
}
