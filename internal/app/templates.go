package app

import (
	"context"
	"encoding/json"
	"fmt"

	"hotel_detail/internal/domain"
)

func (s *CatalogService) ListTemplates(ctx context.Context, f domain.TemplateFilter) ([]domain.Template, error) {
	return s.store.ListTemplates(ctx, f)
}

func (s *CatalogService) GetTemplate(ctx context.Context, id string) (domain.Template, error) {
	if err := requireID(id); err != nil {
		return domain.Template{}, err
	}
	return s.store.GetTemplate(ctx, id)
}

func validTemplateData(b json.RawMessage) bool {
	var m map[string]any
	return len(b) > 0 && json.Unmarshal(b, &m) == nil && m != nil
}

func (s *CatalogService) CreateTemplate(ctx context.Context, t domain.Template) (domain.Template, error) {
	if t.Name == "" || !validTemplateData(t.Data) {
		return domain.Template{}, domain.Invalid("name과 data는 필수입니다.")
	}
	return s.store.CreateTemplate(ctx, t)
}

func (s *CatalogService) UpdateTemplate(ctx context.Context, id string, p domain.TemplatePatch) (domain.Template, error) {
	if err := requireID(id); err != nil {
		return domain.Template{}, err
	}
	if p.Data != nil && !validTemplateData(p.Data) {
		return domain.Template{}, domain.Invalid("data는 객체여야 합니다.")
	}
	return s.store.UpdateTemplate(ctx, id, p)
}

func (s *CatalogService) DeleteTemplate(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.store.DeleteTemplate(ctx, id)
}

func (s *CatalogService) DuplicateTemplate(ctx context.Context, id string) (domain.Template, error) {
	t, err := s.GetTemplate(ctx, id)
	if err != nil {
		return domain.Template{}, err
	}
	t.ID, t.Name = "", t.Name+copySuffix
	return s.store.CreateTemplate(ctx, t)
}

// TemplatePage decodes a template's form-state snapshot into page data.
func TemplatePage(t domain.Template) (domain.PageData, error) {
	if len(t.Data) == 0 {
		return domain.PageData{}, fmt.Errorf("template %s has no data", t.ID)
	}
	return DecodePageJSON(t.Data)
}
