package dto

// CredentialsDTO is the register/login request body.
type CredentialsDTO struct {
	Username string `json:"username" example:"pavian"`
	Password string `json:"password" example:"hunter2"`
}

// UserDTO is the public view of an account.
type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AuthResponseDTO is returned by register and login.
type AuthResponseDTO struct {
	Success bool    `json:"success"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}
