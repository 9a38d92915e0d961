package services

import (
	"context"
	"strings"
	"time"

	"letify_backend/internal/models"
	"letify_backend/internal/repositories"
	"letify_backend/internal/services/dto"
	"letify_backend/pkg/apperrors"
)

type PropertyService struct {
	properties *repositories.Repository[models.Property]
}

func NewPropertyService(properties *repositories.Repository[models.Property]) *PropertyService {
	return &PropertyService{properties: properties}
}

func (s *PropertyService) Create(ctx context.Context, req *dto.CreatePropertyRequest) (*models.Property, error) {
	now := models.Now()
	propType, _ := models.NormalizePropertyType(req.Type)

	property := &models.Property{
		ID:          models.NewID(models.PrefixProperty, now),
		Title:       req.Title,
		Location:    req.Location,
		Price:       req.Price,
		Type:        propType,
		Description: req.Description,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Area:        req.Area,
		Images:      nonNil(req.Images),
		Videos:      nonNil(req.Videos),
		Features:    nonNil(req.Features),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.properties.Put(ctx, property.ID, property); err != nil {
		return nil, apperrors.OperationFailed(err, "property", "Failed to create property")
	}
	return property, nil
}

// List applies the optional filters in memory and returns newest first.
func (s *PropertyService) List(ctx context.Context, filter dto.PropertyFilter) ([]models.Property, error) {
	all, err := s.properties.List(ctx)
	if err != nil {
		return nil, apperrors.OperationFailed(err, "property", "Failed to fetch properties")
	}

	out := make([]models.Property, 0, len(all))
	for i := range all {
		if matchesFilter(&all[i], filter) {
			out = append(out, all[i])
		}
	}
	sortNewestFirst(out, func(p *models.Property) time.Time { return p.CreatedAt })
	return out, nil
}

func matchesFilter(p *models.Property, f dto.PropertyFilter) bool {
	if f.Type != "" && !strings.EqualFold(f.Type, "all") && !strings.EqualFold(string(p.Type), f.Type) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), q) && !strings.Contains(strings.ToLower(p.Location), q) {
			return false
		}
	}
	price := p.PriceValue()
	if f.MinPrice != nil && price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}
	return true
}

func (s *PropertyService) Get(ctx context.Context, id string) (*models.Property, error) {
	p, err := s.properties.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrPropertyNotFound, "property", "Failed to fetch property")
	}
	return p, nil
}

// Update merges the supplied fields over the stored record.
// Concurrent updates are last-writer-wins.
func (s *PropertyService) Update(ctx context.Context, id string, req *dto.UpdatePropertyRequest) (*models.Property, error) {
	p, err := s.properties.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrPropertyNotFound, "property", "Failed to update property")
	}

	setIf(&p.Title, req.Title)
	setIf(&p.Location, req.Location)
	setIf(&p.Price, req.Price)
	if req.Type != nil {
		if t, ok := models.NormalizePropertyType(*req.Type); ok {
			p.Type = t
		}
	}
	setIf(&p.Description, req.Description)
	setIf(&p.Bedrooms, req.Bedrooms)
	setIf(&p.Bathrooms, req.Bathrooms)
	setIf(&p.Area, req.Area)
	if req.Images != nil {
		p.Images = nonNil(*req.Images)
	}
	if req.Videos != nil {
		p.Videos = nonNil(*req.Videos)
	}
	if req.Features != nil {
		p.Features = nonNil(*req.Features)
	}
	p.UpdatedAt = models.Now()

	if err := s.properties.Put(ctx, p.ID, p); err != nil {
		return nil, apperrors.OperationFailed(err, "property", "Failed to update property")
	}
	return p, nil
}

func (s *PropertyService) Delete(ctx context.Context, id string) error {
	if _, err := s.properties.Get(ctx, id); err != nil {
		return notFoundOr(err, apperrors.ErrPropertyNotFound, "property", "Failed to delete property")
	}
	if err := s.properties.Delete(ctx, id); err != nil {
		return apperrors.OperationFailed(err, "property", "Failed to delete property")
	}
	return nil
}

// Seed creates each property whose title is not already listed.
// Returns how many were created.
func (s *PropertyService) Seed(ctx context.Context, catalogue []dto.CreatePropertyRequest) (int, error) {
	existing, err := s.properties.List(ctx)
	if err != nil {
		return 0, err
	}
	titles := make(map[string]bool, len(existing))
	for _, p := range existing {
		titles[strings.ToLower(p.Title)] = true
	}

	created := 0
	for i := range catalogue {
		if titles[strings.ToLower(catalogue[i].Title)] {
			continue
		}
		if _, err := s.Create(ctx, &catalogue[i]); err != nil {
			return created, err
		}
		titles[strings.ToLower(catalogue[i].Title)] = true
		created++
	}
	return created, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
