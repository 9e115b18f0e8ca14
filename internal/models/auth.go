package models

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type FundraiserRequest struct {
	Title        string  `json:"title" form:"title" validate:"required"`
	Category     string  `json:"category" form:"category" validate:"required,oneof=medical education emergency other"`
	TargetAmount float64 `json:"targetAmount" form:"targetAmount" validate:"required,gt=0"`
	Description  string  `json:"description" form:"description" validate:"required"`
}

type DonationRequest struct {
	Name   string  `json:"name" validate:"required"`
	Email  string  `json:"email" validate:"required,email"`
	Phone  string  `json:"phone" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gte=1"`
}
