package request

type AddBlacklistWord struct {
	Word string `json:"word" binding:"required,word,max=255"`
}
