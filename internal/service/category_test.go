package service

import (
	"testing"

	"github.com/Kal1-linux/CouponCo/internal/api/dto"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CategoryService
}

func TestCategoryService(t *testing.T) {
	suite.Run(t, new(CategoryServiceSuite))
}

func (s *CategoryServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.service = NewCategoryService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		Cache:        s.GetCache(),
		CategoryRepo: stores.CategoryRepo,
	})
}

func (s *CategoryServiceSuite) TestCreateCategory() {
	resp, err := s.service.CreateCategory(s.GetContext(), &dto.CreateCategoryRequest{Name: "Fashion"})
	s.NoError(err)
	s.Equal(1, resp.Total)
	s.Equal("Fashion", resp.Items[0].Name)
}

func (s *CategoryServiceSuite) TestCreateCategoryDuplicate() {
	_, err := s.service.CreateCategory(s.GetContext(), &dto.CreateCategoryRequest{Name: "Fashion"})
	s.NoError(err)

	_, err = s.service.CreateCategory(s.GetContext(), &dto.CreateCategoryRequest{Name: "Fashion"})
	s.True(ierr.IsAlreadyExists(err))
}

func (s *CategoryServiceSuite) TestCreateCategoryValidation() {
	_, err := s.service.CreateCategory(s.GetContext(), &dto.CreateCategoryRequest{})
	s.True(ierr.IsValidation(err))
}

func (s *CategoryServiceSuite) TestListCategoriesSorted() {
	for _, name := range []string{"Travel", "Books", "Fashion"} {
		_, err := s.service.CreateCategory(s.GetContext(), &dto.CreateCategoryRequest{Name: name})
		s.NoError(err)
	}

	resp, err := s.service.ListCategories(s.GetContext())
	s.NoError(err)
	s.Equal(3, resp.Total)
	s.Equal("Books", resp.Items[0].Name)
	s.Equal("Travel", resp.Items[2].Name)
}
