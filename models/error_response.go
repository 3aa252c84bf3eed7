package models

type ErrorResponse struct {
	Detail string `json:"detail"`
}
