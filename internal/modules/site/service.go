package site

import (
	"context"
	"log"

	"makeupstudio/internal/storage"
)

// Service assembles the read-only public pages. Every read is a single
// best-effort query; on failure or an empty result the hardcoded fallback
// dataset is served instead.
type Service struct {
	profiles     ProfileReader
	services     ServiceReader
	gallery      GalleryReader
	faqs         FAQReader
	resolver     *storage.Resolver
	primaryEmail string
}

func NewService(
	profiles ProfileReader,
	services ServiceReader,
	gallery GalleryReader,
	faqs FAQReader,
	resolver *storage.Resolver,
	primaryEmail string,
) *Service {
	return &Service{
		profiles:     profiles,
		services:     services,
		gallery:      gallery,
		faqs:         faqs,
		resolver:     resolver,
		primaryEmail: primaryEmail,
	}
}

// About returns the primary artist profile with per-field fallbacks: a row
// that exists but has a blank field still shows the default copy for that
// field.
func (s *Service) About(ctx context.Context) AboutResponse {
	p, err := s.profiles.GetPrimaryOrFirst(ctx, s.primaryEmail)
	if err != nil {
		log.Printf("site: about read failed, serving fallback: %v", err)
		return fallbackAbout
	}

	out := AboutResponse{
		Bio:         p.Bio,
		Bio2:        p.Bio2,
		AboutImage1: s.resolver.DisplayURL(p.AboutImage1),
		AboutImage2: s.resolver.DisplayURL(p.AboutImage2),
		Email:       p.Email,
	}
	if out.Bio == "" {
		out.Bio = fallbackAbout.Bio
	}
	if out.Bio2 == "" {
		out.Bio2 = fallbackAbout.Bio2
	}
	if out.AboutImage1 == "" {
		out.AboutImage1 = fallbackAbout.AboutImage1
	}
	if out.AboutImage2 == "" {
		out.AboutImage2 = fallbackAbout.AboutImage2
	}
	return out
}

func (s *Service) Services(ctx context.Context) []ServiceItem {
	items, err := s.services.List(ctx, false)
	if err != nil {
		log.Printf("site: services read failed, serving fallback: %v", err)
		return fallbackServices
	}
	if len(items) == 0 {
		return fallbackServices
	}

	out := make([]ServiceItem, 0, len(items))
	for _, item := range items {
		out = append(out, ServiceItem{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Price:       item.Price,
			Duration:    item.Duration,
			Category:    item.Category,
			ImageURL:    storage.TrimWrappingQuotes(item.ImageURL),
			Featured:    item.Featured,
		})
	}
	return out
}

func (s *Service) Gallery(ctx context.Context, category string) []GalleryItem {
	items, err := s.gallery.List(ctx, category)
	if err != nil {
		log.Printf("site: gallery read failed, serving fallback: %v", err)
		return fallbackGallery
	}
	if len(items) == 0 {
		return fallbackGallery
	}

	out := make([]GalleryItem, 0, len(items))
	for _, item := range items {
		out = append(out, GalleryItem{
			ID:       item.ID,
			Title:    item.Title,
			Category: item.Category,
			AltText:  item.AltText,
			ImageURL: s.resolver.DisplayURL(item.Image),
		})
	}
	return out
}

func (s *Service) FAQs(ctx context.Context) []FAQItem {
	items, err := s.faqs.List(ctx)
	if err != nil {
		log.Printf("site: faq read failed, serving fallback: %v", err)
		return fallbackFAQs
	}
	if len(items) == 0 {
		return fallbackFAQs
	}

	out := make([]FAQItem, 0, len(items))
	for _, item := range items {
		out = append(out, FAQItem{
			ID:       item.ID,
			Question: item.Question,
			Answer:   item.Answer,
			Category: item.Category,
		})
	}
	return out
}
