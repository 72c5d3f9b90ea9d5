package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel_detail/internal/domain"
)

// Repo implements domain.Store on MySQL through gorm.
type Repo struct{ db *gorm.DB }

func New(db *gorm.DB) *Repo { return &Repo{db: db} }

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func newID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// update loads row by id, applies cols when non-empty and reloads it.
func (r *Repo) update(ctx context.Context, row any, id string, cols map[string]any) error {
	db := r.db.WithContext(ctx)
	if err := db.First(row, "id = ?", id).Error; err != nil {
		return notFound(err)
	}
	if len(cols) == 0 {
		return nil
	}
	if err := db.Model(row).Updates(cols).Error; err != nil {
		return err
	}
	return notFound(db.First(row, "id = ?", id).Error)
}

func (r *Repo) delete(ctx context.Context, row any, id string) error {
	res := r.db.WithContext(ctx).Delete(row, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func set[T any](cols map[string]any, col string, p *T) {
	if p != nil {
		cols[col] = *p
	}
}

/********** hotels **********/

func (r *Repo) ListHotels(ctx context.Context, f domain.ListFilter) ([]domain.Hotel, error) {
	var rows []hotelRow
	if err := r.db.WithContext(ctx).Scopes(activeIs(f.Active), newestFirst).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Hotel, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *Repo) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	var row hotelRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return domain.Hotel{}, notFound(err)
	}
	return row.toDomain(), nil
}

func (r *Repo) CreateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	row := hotelFromDomain(h)
	row.ID = newID(row.ID)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Hotel{}, err
	}
	return row.toDomain(), nil
}

func (r *Repo) UpdateHotel(ctx context.Context, id string, p domain.HotelPatch) (domain.Hotel, error) {
	cols := map[string]any{}
	set(cols, "name", p.Name)
	set(cols, "address", p.Address)
	set(cols, "description", p.Description)
	set(cols, "image_url", p.ImageURL)
	set(cols, "phone", p.Phone)
	set(cols, "email", p.Email)
	set(cols, "website", p.Website)
	set(cols, "rating", p.Rating)
	set(cols, "is_active", p.IsActive)
	if p.Sections != nil {
		cols["sections"] = rawOrNil(p.Sections)
	}
	var row hotelRow
	if err := r.update(ctx, &row, id, cols); err != nil {
		return domain.Hotel{}, err
	}
	return row.toDomain(), nil
}

func (r *Repo) DeleteHotel(ctx context.Context, id string) error {
	return r.delete(ctx, &hotelRow{}, id)
}

/********** templates **********/

func (r *Repo) ListTemplates(ctx context.Context, f domain.TemplateFilter) ([]domain.Template, error) {
	var rows []templateRow
	if err := r.db.WithContext(ctx).Scopes(byCategory(f.Category), newestFirst).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Template, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *Repo) GetTemplate(ctx context.Context, id string) (domain.Template, error) {
	var row templateRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return domain.Template{}, notFound(err)
	}
	return row.toDomain(), nil
}

func (r *Repo) CreateTemplate(ctx context.Context, t domain.Template) (domain.Template, error) {
	row := templateFromDomain(t)
	row.ID = newID(row.ID)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Template{}, err
	}
	return row.toDomain(), nil
}

func (r *Repo) UpdateTemplate(ctx context.Context, id string, p domain.TemplatePatch) (domain.Template, error) {
	cols := map[string]any{}
	set(cols, "name", p.Name)
	set(cols, "description", p.Description)
	set(cols, "category", p.Category)
	if p.Tags != nil {
		cols["tags"] = jsonFrom(nonNil(*p.Tags))
	}
	if p.Data != nil {
		cols["data"] = rawOrNil(p.Data)
	}
	var row templateRow
	if err := r.update(ctx, &row, id, cols); err != nil {
		return domain.Template{}, err
	}
	return row.toDomain(), nil
}

func (r *Repo) DeleteTemplate(ctx context.Context, id string) error {
	return r.delete(ctx, &templateRow{}, id)
}
