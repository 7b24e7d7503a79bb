package whatsapp

// SendMessageRequest тело запроса к WhatsApp шлюзу
type SendMessageRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
