package response

import "github.com/nivekneved/travellounge-sub002/internal/usecase/readmodel"

type LoginResponse struct {
	AccessToken string                       `json:"access_token"`
	Staff       *readmodel.AuthorizedStaffRM `json:"staff"`
}
