package entities

import (
	"time"

	"verilearn.io/application/utils"
)

// AccessLog is one login/logout cycle for an identity. A row with a nil
// LogoutTime is an open session; at most one open row may exist per IDCard at
// any time.
type AccessLog struct {
	IDCard     string         `json:"idCard"`
	LoginTime  time.Time      `json:"loginTime"`
	LogoutTime *time.Time     `json:"logoutTime"`
	Duration   *time.Duration `json:"duration"`

	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func (model AccessLog) ParseModel() *AccessLog {
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now()
		if model.ID == "" {
			model.ID = utils.GenerateULIDString()
		}
	}
	return &model
}
