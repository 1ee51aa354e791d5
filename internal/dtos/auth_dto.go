package dtos

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`

	// Required when Role is "company" (checked in the service, not here,
	// because the rule depends on another field)
	CompanyName string `json:"companyName"`
	Website     string `json:"website"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
