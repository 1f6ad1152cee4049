package service

import (
	"context"

	"github.com/Kal1-linux/CouponCo/internal/api/dto"
)

// CategoryService manages the admin-curated category list
type CategoryService interface {
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.ListCategoriesResponse, error)
	ListCategories(ctx context.Context) (*dto.ListCategoriesResponse, error)
}

type categoryService struct {
	ServiceParams
}

func NewCategoryService(params ServiceParams) CategoryService {
	return &categoryService{ServiceParams: params}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.ListCategoriesResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.CategoryRepo.Create(ctx, req.ToCategory()); err != nil {
		return nil, err
	}
	return s.ListCategories(ctx)
}

func (s *categoryService) ListCategories(ctx context.Context) (*dto.ListCategoriesResponse, error) {
	categories, err := s.CategoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ListCategoriesResponse{Items: categories, Total: len(categories)}, nil
}
