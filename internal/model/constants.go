package model

// Field bounds shared by the models, the validators and the request DTOs.
// The gorm size tags on the models carry the same values as literals.
const (
	EmailMaxLength    = 254
	FieldMaxLength    = 256
	LengthToDisplay   = 20
	MaxScoreValue     = 10
	MinScoreValue     = 1
	SlugMaxLength     = 50
	UsernameMaxLength = 150
)
