package response

type SupportTicketResponse struct {
	OK bool `json:"ok"`
}
