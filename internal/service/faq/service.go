package faq

import (
	"context"
	"strings"

	"github.com/hrportal/payroll-backend-go/internal/domain/faq"
)

type FAQServiceImpl struct {
	faqRepo faq.Repository
}

func NewFAQService(faqRepo faq.Repository) faq.Service {
	return &FAQServiceImpl{faqRepo: faqRepo}
}

// List implements faq.Service. A query narrows within the category filter, so
// both can be combined.
func (s *FAQServiceImpl) List(ctx context.Context, category, query string) ([]faq.FAQ, error) {
	if strings.TrimSpace(query) == "" {
		return s.faqRepo.List(ctx, category)
	}

	matches, err := s.faqRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return matches, nil
	}

	filtered := make([]faq.FAQ, 0, len(matches))
	for _, f := range matches {
		if strings.EqualFold(f.Category, category) {
			filtered = append(filtered, f)
		}
	}
	return filtered, nil
}

// Categories implements faq.Service.
func (s *FAQServiceImpl) Categories(ctx context.Context) ([]string, error) {
	return s.faqRepo.Categories(ctx)
}
