package mysql

import (
	"context"

	"hotel_detail/internal/domain"
)

/********** rooms **********/

func (r *Repo) ListRooms(ctx context.Context, f domain.ListFilter) ([]domain.Room, error) {
	var rows []roomRow
	if err := r.db.WithContext(ctx).Scopes(filtered(f), newestFirst).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Room, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *Repo) CreateRoom(ctx context.Context, in domain.Room) (domain.Room, error) {
	row := roomFromDomain(in)
	row.ID = newID(row.ID)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Room{}, err
	}
	return row.toDomain(), nil
}

func (r *Repo) UpdateRoom(ctx context.Context, id string, p domain.RoomPatch) (domain.Room, error) {
	cols := map[string]any{}
	set(cols, "name", p.Name)
	set(cols, "type", p.Type)
	set(cols, "structure", p.Structure)
	set(cols, "bed_type", p.BedType)
	set(cols, "view", p.View)
	set(cols, "standard_capacity", p.StandardCapacity)
	set(cols, "max_capacity", p.MaxCapacity)
	set(cols, "price", p.Price)
	set(cols, "description", p.Description)
	set(cols, "image", p.Image)
	set(cols, "is_active", p.IsActive)
	if p.Amenities != nil {
		cols["amenities"] = jsonFrom(nonNil(*p.Amenities))
	}
	var row roomRow
	if err := r.update(ctx, &row, id, cols); err != nil {
		return domain.Room{}, err
	}
	return row.toDomain(), nil
}

func (r *Repo) DeleteRoom(ctx context.Context, id string) error {
	return r.delete(ctx, &roomRow{}, id)
}

/********** packages **********/

func (r *Repo) ListPackages(ctx context.Context, f domain.ListFilter) ([]domain.Package, error) {
	var rows []packageRow
	if err := r.db.WithContext(ctx).Scopes(filtered(f), newestFirst).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Package, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *Repo) CreatePackage(ctx context.Context, in domain.Package) (domain.Package, error) {
	row := packageFromDomain(in)
	row.ID = newID(row.ID)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Package{}, err
	}
	return row.toDomain(), nil
}

func (r *Repo) UpdatePackage(ctx context.Context, id string, p domain.PackagePatch) (domain.Package, error) {
	cols := map[string]any{}
	set(cols, "name", p.Name)
	set(cols, "description", p.Description)
	set(cols, "price", p.Price)
	set(cols, "product_composition", p.ProductComposition)
	set(cols, "is_active", p.IsActive)
	if p.SalesPeriod != nil {
		cols["sales_start"], cols["sales_end"] = p.SalesPeriod.Start, p.SalesPeriod.End
	}
	if p.StayPeriod != nil {
		cols["stay_start"], cols["stay_end"] = p.StayPeriod.Start, p.StayPeriod.End
	}
	if p.Includes != nil {
		cols["includes"] = jsonFrom(nonNil(*p.Includes))
	}
	if p.Notes != nil {
		cols["notes"] = jsonFrom(nonNil(*p.Notes))
	}
	if p.Constraints != nil {
		cols["constraints"] = jsonFrom(nonNil(*p.Constraints))
	}
	var row packageRow
	if err := r.update(ctx, &row, id, cols); err != nil {
		return domain.Package{}, err
	}
	return row.toDomain(), nil
}

func (r *Repo) DeletePackage(ctx context.Context, id string) error {
	return r.delete(ctx, &packageRow{}, id)
}

/********** notices **********/

func (r *Repo) ListNotices(ctx context.Context, f domain.ListFilter) ([]domain.Notice, error) {
	var rows []noticeRow
	if err := r.db.WithContext(ctx).Scopes(filtered(f), byPriority).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Notice, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *Repo) CreateNotice(ctx context.Context, in domain.Notice) (domain.Notice, error) {
	row := noticeFromDomain(in)
	row.ID = newID(row.ID)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Notice{}, err
	}
	return row.toDomain(), nil
}

func (r *Repo) UpdateNotice(ctx context.Context, id string, p domain.NoticePatch) (domain.Notice, error) {
	cols := map[string]any{}
	set(cols, "title", p.Title)
	set(cols, "content", p.Content)
	set(cols, "priority", p.Priority)
	set(cols, "type", p.Type)
	set(cols, "is_active", p.IsActive)
	var row noticeRow
	if err := r.update(ctx, &row, id, cols); err != nil {
		return domain.Notice{}, err
	}
	return row.toDomain(), nil
}

func (r *Repo) DeleteNotice(ctx context.Context, id string) error {
	return r.delete(ctx, &noticeRow{}, id)
}
