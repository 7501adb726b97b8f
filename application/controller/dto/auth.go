package dto

type SignUpDTO struct {
	FirstName string `json:"firstName" validate:"required,name_special_char"`
	LastName  string `json:"lastName" validate:"required,name_special_char"`
	Age       int    `json:"age" validate:"required,gte=10,lte=120"`
	Level     string `json:"level" validate:"required"`
	IDCard    string `json:"idCard" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password"`
	Image     string `json:"image" validate:"required"`
	Role      string `json:"role" validate:"omitempty,oneof=student professor"`
}

type LoginDTO struct {
	IDCard   string `json:"idCard" validate:"required"`
	Image    string `json:"image" validate:"required"`
	Password string `json:"password" validate:"required"`
}
