package dto

type PasswordResetInput struct {
	Email string `json:"email"`
}

type PasswordResetConfirmInput struct {
	Token           string `json:"token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
