package models

// Response is the error envelope shared by every endpoint. Successful calls
// return the record itself.
type Response struct {
	Detail string `json:"detail"`
}

func ErrorResponse(detail string) Response {
	return Response{Detail: detail}
}
