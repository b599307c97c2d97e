package handler

// DetailResponse is the API's uniform message body, used for both error
// responses and plain acknowledgments.
type DetailResponse struct {
	Detail string `json:"detail"`
}

func NewDetailResponse(message string) DetailResponse {
	return DetailResponse{Detail: message}
}
