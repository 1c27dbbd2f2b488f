// Package model contains the GORM persistence models. They mirror the
// database schema and are mapped to and from pure domain entities at the
// repository boundary.
package model

import (
	"time"

	"github.com/google/uuid"

	"userhub/internal/domain/entity"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Roles []*RoleModel `gorm:"many2many:user_roles"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RoleModel mirrors the 'roles' table. Roles are shared and referenced by
// many users through the 'user_roles' join table.
type RoleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// ToUserDomain maps a persistence model back to a pure domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	roles := make([]entity.Role, 0, len(m.Roles))
	for _, r := range m.Roles {
		roles = append(roles, *ToRoleDomain(r))
	}

	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Roles:        roles,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromUserDomain maps a domain entity to a persistence model.
func FromUserDomain(u *entity.User) *UserModel {
	roles := make([]*RoleModel, 0, len(u.Roles))
	for i := range u.Roles {
		roles = append(roles, FromRoleDomain(&u.Roles[i]))
	}

	return &UserModel{
		ID:           u.ID,
		Username:     u.Username,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Roles:        roles,
	}
}

// ToRoleDomain maps a role persistence model to a domain entity.
func ToRoleDomain(m *RoleModel) *entity.Role {
	return &entity.Role{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// FromRoleDomain maps a role domain entity to a persistence model.
func FromRoleDomain(r *entity.Role) *RoleModel {
	return &RoleModel{
		ID:   r.ID,
		Name: r.Name,
	}
}
