package dto

type RegisterRequestDTO struct {
	Login       string `json:"login" validate:"required,min=3,max=50"`
	Password    string `json:"password" validate:"required,min=8"`
	Role        string `json:"role" validate:"required,oneof=donor recipient admin"`
	FullName    string `json:"full_name"`
	BloodGroup  string `json:"blood_group,omitempty" example:"O-"`
	DateOfBirth string `json:"date_of_birth,omitempty" example:"1990-04-21"`
	City        string `json:"city"`
	Area        string `json:"area,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
