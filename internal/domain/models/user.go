package models

// Role groups permissions and a priority tier.
type Role struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	PriorityLevel string   `json:"priority"`
	Permissions   []string `json:"permissions,omitempty"`
}

// RoleInput carries create/update form values.
type RoleInput struct {
	Name          string   `json:"name" validate:"required,max=50"`
	Description   string   `json:"description,omitempty" validate:"max=255"`
	PriorityLevel string   `json:"priority" validate:"required,oneof=Administrador Usuario Invitado"`
	Permissions   []string `json:"permissions,omitempty"`
}

// RoleStats counts users attached to a role.
type RoleStats struct {
	UserCount       int `json:"user_count"`
	ActiveUserCount int `json:"active_user_count"`
}

// RoleDetail is the role view.
type RoleDetail struct {
	Role  Role      `json:"role"`
	Stats RoleStats `json:"stats"`
}

// User is a platform account. Credentials never leave the backend.
type User struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email,omitempty"`
	FirstName string  `json:"first_name,omitempty"`
	LastName  string  `json:"last_name,omitempty"`
	RoleID    string  `json:"role_id"`
	FarmID    *string `json:"farm_id,omitempty"`
	IsActive  bool    `json:"is_active"`
}

// UserInput carries create/update form values.
type UserInput struct {
	Username  string  `json:"username" validate:"required,min=3,max=50"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password,omitempty" validate:"omitempty,min=6"`
	FirstName string  `json:"first_name,omitempty"`
	LastName  string  `json:"last_name,omitempty"`
	RoleID    string  `json:"role_id" validate:"required"`
	FarmID    *string `json:"farm_id,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// UserDetail is the user view with resolved role and farm names.
type UserDetail struct {
	User     User   `json:"user"`
	RoleName string `json:"role_name,omitempty"`
	FarmName string `json:"farm_name,omitempty"`
	Farms    int    `json:"owned_farms"`
}
