package entities

import (
	"time"

	"verilearn.io/application/utils"
)

type StudentRole string

const (
	StudentRoleStudent   StudentRole = "student"
	StudentRoleProfessor StudentRole = "professor"
)

// FaceEncoding is the stored biometric artifact: the detected face region
// flattened row-major into raw luminance bytes plus the shape it was flattened
// from. The bytes are meaningless without Height and Width, so the three always
// travel together.
type FaceEncoding struct {
	Bytes  []byte `json:"-"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// This represents a person enrolled on VeriLearn
type Student struct {
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Age          int          `json:"age"`
	Level        string       `json:"level"`
	IDCard       string       `json:"idCard"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Face         FaceEncoding `json:"-"`
	Role         StudentRole  `json:"role"`

	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (model Student) ParseModel() *Student {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		if model.ID == "" {
			model.ID = utils.GenerateULIDString()
		}
	}
	model.UpdatedAt = now
	return &model
}
