package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fdiazguiza/almacen/internal/domain/models"
)

const dateLayout = "2006-01-02"

// searchClause ORs a case-insensitive substring match over every searchable
// column; numeric columns are matched through their text form. LOWER/LIKE and
// CAST work identically on postgres and the sqlite driver used in tests.
const searchClause = "LOWER(codigo_articulo) LIKE ? OR LOWER(seccion) LIKE ? OR " +
	"LOWER(nombre_articulo) LIKE ? OR CAST(precio AS TEXT) LIKE ? OR " +
	"CAST(importado AS TEXT) LIKE ? OR LOWER(pais_origen) LIKE ?"

// ArticleInput carries the client-submitted fields for creating or editing an
// article. Price is a pointer so a missing value is distinguishable from a
// zero one; dates arrive in 2006-01-02 form, matching the legacy forms.
type ArticleInput struct {
	Code     string   `json:"codigo_articulo"`
	Section  string   `json:"seccion"`
	Name     string   `json:"nombre_articulo"`
	Price    *float64 `json:"precio"`
	Date     string   `json:"fecha"`
	Imported int      `json:"importado"`
	Origin   string   `json:"pais_origen"`
	Photo    string   `json:"foto"`
}

// ArticleService owns every read and write against the articulos table.
type ArticleService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewArticleService wires a new article service instance.
func NewArticleService(db *gorm.DB, logger *zap.Logger) *ArticleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ArticleService{db: db, logger: logger}
}

// List returns every article in storage order.
func (s *ArticleService) List(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	if err := s.db.WithContext(ctx).Find(&articles).Error; err != nil {
		return nil, storage("list", "article", "", err)
	}
	return articles, nil
}

// Search returns the articles containing term as a case-insensitive substring
// in any searchable field. An empty term yields an empty result without
// touching the database.
func (s *ArticleService) Search(ctx context.Context, term string) ([]models.Article, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.Article{}, nil
	}

	like := "%" + strings.ToLower(term) + "%"
	articles := []models.Article{}
	if err := s.db.WithContext(ctx).
		Where(searchClause, like, like, like, like, like, like).
		Find(&articles).Error; err != nil {
		return nil, storage("search", "article", term, err)
	}
	return articles, nil
}

// Get fetches a single article by code.
func (s *ArticleService) Get(ctx context.Context, code string) (models.Article, error) {
	var article models.Article
	err := s.db.WithContext(ctx).First(&article, "codigo_articulo = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Article{}, ErrNotFound
	}
	if err != nil {
		return models.Article{}, storage("get", "article", code, err)
	}
	return article, nil
}

// Create validates and inserts a new article. A duplicate code is reported as
// a validation failure rather than a storage one.
func (s *ArticleService) Create(ctx context.Context, in ArticleInput) (models.Article, error) {
	if err := validateArticle(in, true); err != nil {
		return models.Article{}, err
	}

	addedOn, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return models.Article{}, invalid("fecha", "must be a 2006-01-02 date")
	}

	article := models.Article{
		Code:     in.Code,
		Section:  in.Section,
		Name:     in.Name,
		Price:    *in.Price,
		AddedOn:  addedOn,
		Imported: in.Imported,
		Origin:   in.Origin,
	}
	if in.Photo != "" {
		photo := in.Photo
		article.Photo = &photo
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Article{}).
			Where("codigo_articulo = ?", in.Code).
			Count(&count).Error; err != nil {
			return storage("create", "article", in.Code, err)
		}
		if count > 0 {
			return invalid("codigo_articulo", "already exists")
		}
		if err := tx.Create(&article).Error; err != nil {
			return storage("create", "article", in.Code, err)
		}
		return nil
	})
	if txErr != nil {
		s.logger.Error("article create failed",
			zap.String("codigo_articulo", in.Code), zap.Error(txErr))
		return models.Article{}, txErr
	}

	s.logger.Info("article created", zap.String("codigo_articulo", article.Code))
	return article, nil
}

// Update replaces the mutable fields of an article in a single transaction.
// The code stays the lookup key even when resubmitted, and fecha/foto are not
// part of the edit surface, so both survive the update untouched.
func (s *ArticleService) Update(ctx context.Context, code string, in ArticleInput) (models.Article, error) {
	if err := validateArticle(in, false); err != nil {
		return models.Article{}, err
	}

	var article models.Article
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&article, "codigo_articulo = ?", code).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return storage("update", "article", code, err)
		}

		// A map keeps zero values (importado = 0) in the UPDATE set.
		changes := map[string]interface{}{
			"seccion":         in.Section,
			"nombre_articulo": in.Name,
			"precio":          *in.Price,
			"importado":       in.Imported,
			"pais_origen":     in.Origin,
		}
		if err := tx.Model(&article).Updates(changes).Error; err != nil {
			return storage("update", "article", code, err)
		}
		return nil
	})
	if txErr != nil {
		s.logger.Error("article update failed",
			zap.String("codigo_articulo", code), zap.Error(txErr))
		return models.Article{}, txErr
	}

	s.logger.Info("article updated", zap.String("codigo_articulo", code))
	return article, nil
}

// Delete removes an article permanently. The delete is fail-closed: any order
// still referencing the article aborts the transaction before the row is
// touched, with the RESTRICT foreign key as engine-level backstop.
func (s *ArticleService) Delete(ctx context.Context, code string) error {
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var article models.Article
		err := tx.First(&article, "codigo_articulo = ?", code).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return storage("delete", "article", code, err)
		}

		var refs int64
		if err := tx.Model(&models.Order{}).
			Where("codigo_articulo = ?", code).
			Count(&refs).Error; err != nil {
			return storage("delete", "article", code, err)
		}
		if refs > 0 {
			return ErrArticleReferenced
		}

		if err := tx.Delete(&models.Article{}, "codigo_articulo = ?", code).Error; err != nil {
			return storage("delete", "article", code, err)
		}
		return nil
	})
	if txErr != nil {
		s.logger.Error("article delete failed",
			zap.String("codigo_articulo", code), zap.Error(txErr))
		return txErr
	}

	s.logger.Info("article deleted", zap.String("codigo_articulo", code))
	return nil
}

// validateArticle applies the legacy form rules. Create additionally requires
// the code and the date; edits touch neither.
func validateArticle(in ArticleInput, create bool) error {
	if create {
		if l := len(in.Code); l < 1 || l > 10 {
			return invalid("codigo_articulo", "must be 1-10 characters")
		}
		if in.Date == "" {
			return invalid("fecha", "is required")
		}
	}
	if l := len(in.Section); l < 1 || l > 50 {
		return invalid("seccion", "must be 1-50 characters")
	}
	if l := len(in.Name); l < 1 || l > 100 {
		return invalid("nombre_articulo", "must be 1-100 characters")
	}
	if in.Price == nil {
		return invalid("precio", "is required")
	}
	if l := len(in.Origin); l < 1 || l > 50 {
		return invalid("pais_origen", "must be 1-50 characters")
	}
	return nil
}
