package site

type AboutResponse struct {
	Bio         string `json:"bio"`
	Bio2        string `json:"bio_2"`
	AboutImage1 string `json:"about_image_1"`
	AboutImage2 string `json:"about_image_2"`
	Email       string `json:"email"`
}

type ServiceItem struct {
	ID          int64   `json:"id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price,omitempty"`
	Duration    int     `json:"duration,omitempty"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Featured    bool    `json:"featured,omitempty"`
}

type GalleryItem struct {
	ID       int64  `json:"id,omitempty"`
	Title    string `json:"title,omitempty"`
	Category string `json:"category,omitempty"`
	AltText  string `json:"alt_text"`
	ImageURL string `json:"image_url"`
}

type FAQItem struct {
	ID       int64  `json:"id,omitempty"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
}
