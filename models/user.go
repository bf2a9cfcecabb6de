package models

type UserAddress struct {
	Street  string `json:"street" yaml:"street"`
	City    string `json:"city" yaml:"city"`
	State   string `json:"state" yaml:"state"`
	ZipCode string `json:"zip_code" yaml:"zip_code"`
}

// String joins the non-empty parts into a single shipping line.
func (a UserAddress) String() string {
	out := a.Street
	for _, part := range []string{a.City, a.State + " " + a.ZipCode} {
		if part == "" || part == " " {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += part
	}
	return out
}

type User struct {
	ID        string       `json:"id" yaml:"id" validate:"required"`
	Email     string       `json:"email" yaml:"email" validate:"required,email"`
	FirstName string       `json:"first_name" yaml:"first_name" validate:"required"`
	LastName  string       `json:"last_name" yaml:"last_name"`
	Phone     string       `json:"phone,omitempty" yaml:"phone"`
	Address   *UserAddress `json:"address,omitempty" yaml:"address"`
	Orders    []string     `json:"orders" yaml:"orders"`
	IsAdmin   bool         `json:"is_admin" yaml:"is_admin"`
}

func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserResponse is the public-facing user data
type UserResponse struct {
	ID        string       `json:"id"`
	Email     string       `json:"email"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Phone     string       `json:"phone,omitempty"`
	Address   *UserAddress `json:"address,omitempty"`
	IsAdmin   bool         `json:"is_admin"`
}

// ToResponse converts User to UserResponse
func (u User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Address:   u.Address,
		IsAdmin:   u.IsAdmin,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"johndoe@example.com"`
	Password string `json:"password" binding:"required" example:"password"`
}

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
