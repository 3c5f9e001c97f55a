package coach

// Message roles follow the chat convention the mobile client sends: "user"
// for the person, "model" for the coach.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type AskRequest struct {
	CurrentMessage string    `json:"current_message"`
	History        []Message `json:"history"`
	UserID         int64     `json:"user_id"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

// ErrorDetail is the structured error body returned with non-2xx statuses.
type ErrorDetail struct {
	Detail string `json:"detail"`
}
