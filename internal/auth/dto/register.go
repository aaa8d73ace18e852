package dto

type RegisterInput struct {
	Email           string `json:"email"`
	Username        string `json:"username,omitempty"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	IPAddress       string `json:"-"`
	DeviceInfo      string `json:"-"`
}
