package request

type Register struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type Login struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AutoReply struct {
	Enabled      bool  `json:"enabled"`
	DelaySeconds int64 `json:"delay_seconds" binding:"min=0"`
}
