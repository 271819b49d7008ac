package faq

type FAQRequest struct {
	Question     string `json:"question" binding:"required"`
	Answer       string `json:"answer" binding:"required"`
	Category     string `json:"category"`
	DisplayOrder int    `json:"display_order" binding:"min=0"`
}

type FAQResponse struct {
	ID           int64  `json:"id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Category     string `json:"category"`
	DisplayOrder int    `json:"display_order"`
	CreatedAt    string `json:"created_at"`
}
