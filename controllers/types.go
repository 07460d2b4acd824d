package controllers

// Flat response envelopes matching what the portal pages consume.

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type ComplaintsResponse struct {
	Success    bool        `json:"success"`
	Complaints interface{} `json:"complaints"`
}

type ReportsResponse struct {
	Success bool        `json:"success"`
	Reports interface{} `json:"reports"`
}

type ImagesResponse struct {
	Success bool     `json:"success"`
	Images  []string `json:"images"`
}
