package feedback

import (
	"inkwell/internal/application/ticket/dto"
	"inkwell/internal/application/ticket/usecases"
)

// SubmitFeedbackRequest is the request body for POST /feedback.
type SubmitFeedbackRequest struct {
	IssueTitle       string `json:"issue_title" binding:"required"`
	IssueDescription string `json:"issue_description" binding:"required"`
	CustomerName     string `json:"customer_name" binding:"required"`
	CustomerEmail    string `json:"customer_email" binding:"required,email"`
	Urgency          string `json:"urgency" binding:"required"`
}

func (r *SubmitFeedbackRequest) ToCommand() usecases.SubmitFeedbackCommand {
	return usecases.SubmitFeedbackCommand{
		IssueTitle:       r.IssueTitle,
		IssueDescription: r.IssueDescription,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		Urgency:          r.Urgency,
	}
}

// SubmitFeedbackResponse is the success body for POST /feedback.
type SubmitFeedbackResponse struct {
	Status   string        `json:"status"`
	Message  string        `json:"message"`
	TicketID uint          `json:"ticket_id"`
	Ticket   dto.TicketDTO `json:"ticket"`
	N8NSent  bool          `json:"n8n_sent"`
}

func newSubmitFeedbackResponse(result *usecases.SubmitFeedbackResult) SubmitFeedbackResponse {
	return SubmitFeedbackResponse{
		Status:   "success",
		Message:  result.Message,
		TicketID: result.TicketID,
		Ticket:   result.Ticket,
		N8NSent:  result.Forwarded,
	}
}
