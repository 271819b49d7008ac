package profile

type UpdateBioRequest struct {
	Field string `json:"field" binding:"required,oneof=bio bio_2"`
	Text  string `json:"text"`
}

type ProfileResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Bio         string `json:"bio"`
	Bio2        string `json:"bio_2"`
	AboutImage1 string `json:"about_image_1"`
	AboutImage2 string `json:"about_image_2"`
}
