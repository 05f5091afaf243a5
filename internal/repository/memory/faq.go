package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/hrportal/payroll-backend-go/internal/domain/faq"
)

type faqRepositoryImpl struct {
	faqs []faq.FAQ
}

func NewFAQRepository(faqs []faq.FAQ) faq.Repository {
	return &faqRepositoryImpl{faqs: faqs}
}

// List implements faq.Repository.
func (r *faqRepositoryImpl) List(ctx context.Context, category string) ([]faq.FAQ, error) {
	var out []faq.FAQ
	for _, f := range r.faqs {
		if !f.IsActive {
			continue
		}
		if category != "" && !strings.EqualFold(f.Category, category) {
			continue
		}
		out = append(out, f)
	}
	sortByDisplayOrder(out)
	return out, nil
}

// Search implements faq.Repository.
func (r *faqRepositoryImpl) Search(ctx context.Context, query string) ([]faq.FAQ, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.List(ctx, "")
	}

	var out []faq.FAQ
	for _, f := range r.faqs {
		if !f.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(f.Question), q) || strings.Contains(strings.ToLower(f.Answer), q) {
			out = append(out, f)
		}
	}
	sortByDisplayOrder(out)
	return out, nil
}

// Categories implements faq.Repository.
func (r *faqRepositoryImpl) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, f := range r.faqs {
		if !f.IsActive || seen[f.Category] {
			continue
		}
		seen[f.Category] = true
		out = append(out, f.Category)
	}
	sort.Strings(out)
	return out, nil
}

func sortByDisplayOrder(faqs []faq.FAQ) {
	sort.SliceStable(faqs, func(i, j int) bool {
		return faqs[i].DisplayOrder < faqs[j].DisplayOrder
	})
}
