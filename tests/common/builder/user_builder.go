//go:build unit || e2e

package builder

import (
	domuser "space-booking/internal/domain/user"
	reqdto "space-booking/internal/handler/dto/request"
	"space-booking/internal/usecase/queries"
)

type UserBuilder struct {
	Name    string
	Contact string
	Role    domuser.Role
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:    "Alice Example",
		Contact: "alice@example.com",
		Role:    domuser.RoleUser,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithContact(contact string) *UserBuilder {
	b.Contact = contact
	return b
}

func (b *UserBuilder) WithRole(role domuser.Role) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	return domuser.NewUser(b.Name, b.Contact, b.Role)
}

func (b *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterUserRequest {
	return reqdto.RegisterUserRequest{
		Name:    b.Name,
		Contact: b.Contact,
		Role:    string(b.Role),
	}
}

func (b *UserBuilder) BuildView(id int64) *queries.UserView {
	return &queries.UserView{
		ID:      id,
		Name:    b.Name,
		Contact: b.Contact,
		Role:    string(b.Role),
	}
}
