package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberia-reservas/internal/domain/catalog"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// barbershopSearch builds the listing query; kept apart so it can be checked
// without a database.
func barbershopSearch(f catalog.Filter) sq.SelectBuilder {
	q := sq.Select("*").
		From("barbershops").
		Where(sq.Eq{"active": true}).
		OrderBy("name ASC")

	if city := strings.TrimSpace(f.City); city != "" {
		q = q.Where("LOWER(city) = LOWER(?)", city)
	}

	if term := strings.TrimSpace(f.Query); term != "" {
		like := "%" + term + "%"
		q = q.Where(sq.Or{
			sq.ILike{"name": like},
			sq.ILike{"description": like},
			sq.ILike{"address": like},
		})
	}

	return q
}

func (r *CatalogGormRepository) ListBarbershops(
	ctx context.Context,
	f catalog.Filter,
) ([]models.Barbershop, error) {

	query, args, err := barbershopSearch(f).ToSql()
	if err != nil {
		return nil, err
	}

	var shops []models.Barbershop
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *CatalogGormRepository) GetBarbershop(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&shop).Error; err != nil {
		return nil, notFound(err)
	}
	return &shop, nil
}

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	barbershopID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Joins("LEFT JOIN service_categories sc ON sc.id = services.category_id").
		Where("services.barbershop_id = ? AND services.active = ?", barbershopID, true).
		Order("sc.sort_order ASC, services.name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *CatalogGormRepository) ListBarbers(
	ctx context.Context,
	barbershopID uint,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("barbershop_id = ? AND active = ?", barbershopID, true).
		Order("rating DESC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

var _ catalog.Repository = (*CatalogGormRepository)(nil)
