package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yamdb-team/yamdb-api/internal/model"
)

// TitleFilter narrows a title listing. Zero values mean "no filter".
type TitleFilter struct {
	Category string
	Genre    string
	Name     string
	Year     int
}

type TitleRepository interface {
	Create(ctx context.Context, title *model.Title) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Title, error)
	FindAll(ctx context.Context, filter TitleFilter) ([]*model.Title, error)
	Update(ctx context.Context, title *model.Title, genres []model.Genre) error
	Delete(ctx context.Context, id uuid.UUID) error
	Rating(ctx context.Context, titleID uuid.UUID) (*float64, error)
	Ratings(ctx context.Context, titleIDs []uuid.UUID) (map[uuid.UUID]float64, error)
}

type titleRepository struct {
	db *gorm.DB
}

func NewTitleRepository(db *gorm.DB) TitleRepository {
	return &titleRepository{db: db}
}

func (r *titleRepository) Create(ctx context.Context, title *model.Title) error {
	return translate(r.db.WithContext(ctx).Create(title).Error)
}

func (r *titleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Title, error) {
	var title model.Title
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Genres").
		First(&title, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &title, nil
}

func (r *titleRepository) FindAll(ctx context.Context, filter TitleFilter) ([]*model.Title, error) {
	var titles []*model.Title
	query := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Genres").
		Order("year")

	if filter.Category != "" {
		query = query.
			Joins("JOIN categories ON categories.id = titles.category_id").
			Where("categories.slug = ?", filter.Category)
	}
	if filter.Genre != "" {
		query = query.
			Joins("JOIN genre_titles ON genre_titles.title_id = titles.id").
			Joins("JOIN genres ON genres.id = genre_titles.genre_id").
			Where("genres.slug = ?", filter.Genre)
	}
	if filter.Name != "" {
		query = query.Where("titles.name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Year != 0 {
		query = query.Where("titles.year = ?", filter.Year)
	}

	if err := query.Find(&titles).Error; err != nil {
		return nil, translate(err)
	}
	return titles, nil
}

// Update writes the scalar columns and, when genres is non-nil, replaces
// the genre set in the same transaction. A nil slice leaves the existing
// links untouched. Loaded associations are never auto-saved.
func (r *titleRepository) Update(ctx context.Context, title *model.Title, genres []model.Genre) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(title).Error; err != nil {
			return err
		}
		if genres != nil {
			if err := tx.Model(title).Association("Genres").Replace(genres); err != nil {
				return err
			}
		}
		return nil
	})
	return translate(err)
}

func (r *titleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Title{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

// Rating computes the average review score for one title. Nil means the
// title has no reviews yet; the average is never persisted anywhere.
func (r *titleRepository) Rating(ctx context.Context, titleID uuid.UUID) (*float64, error) {
	var avg sql.NullFloat64
	if err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Select("AVG(score)").
		Where("title_id = ?", titleID).
		Scan(&avg).Error; err != nil {
		return nil, translate(err)
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// Ratings batches the average computation for a listing page. Titles
// without reviews are simply absent from the map.
func (r *titleRepository) Ratings(ctx context.Context, titleIDs []uuid.UUID) (map[uuid.UUID]float64, error) {
	ratings := make(map[uuid.UUID]float64, len(titleIDs))
	if len(titleIDs) == 0 {
		return ratings, nil
	}

	var rows []struct {
		TitleID uuid.UUID
		Avg     float64
	}
	if err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Select("title_id, AVG(score) AS avg").
		Where("title_id IN ?", titleIDs).
		Group("title_id").
		Scan(&rows).Error; err != nil {
		return nil, translate(err)
	}

	for _, row := range rows {
		ratings[row.TitleID] = row.Avg
	}
	return ratings, nil
}
