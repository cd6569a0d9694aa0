package dto

type RegisterInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type LoginInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenPair is the result of every session operation.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
