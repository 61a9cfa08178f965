package models

// User is a profile document. Authentication is out of scope; this is
// profile data only.
// Collection: user
type User struct {
	Email     string   `json:"email" bson:"email"`
	Name      string   `json:"name" bson:"name"`
	AvatarURL *string  `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	Locale    Locale   `json:"locale" bson:"locale"`
	IsActive  bool     `json:"is_active" bson:"is_active"`
	Roles     []string `json:"roles" bson:"roles"`
}

// CreateUserRequest is the payload for POST /api/users.
type CreateUserRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Name      string  `json:"name" binding:"required"`
	AvatarURL *string `json:"avatar_url"`
	Locale    string  `json:"locale"`
}
