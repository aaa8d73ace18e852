package dto

type LoginInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	DeviceInfo string `json:"-"`
	IPAddress  string `json:"-"`
}
