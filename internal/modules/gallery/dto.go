package gallery

// CreateRequest and UpdateRequest arrive as multipart form fields; the image
// itself comes either as the "image" file part or the "image_url" field.
type CreateRequest struct {
	Title    string `form:"title" binding:"required"`
	Category string `form:"category" binding:"required"`
	AltText  string `form:"alt_text" binding:"required"`
}

type UpdateRequest struct {
	Title    string `form:"title" binding:"required"`
	Category string `form:"category" binding:"required"`
	AltText  string `form:"alt_text" binding:"required"`
}

type ImageResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	AltText   string `json:"alt_text"`
	ImageURL  string `json:"image_url"`
	CreatedAt string `json:"created_at"`
}
