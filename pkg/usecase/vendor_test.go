package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hl7risk/pkg/domain/model"
	"github.com/secmon-lab/hl7risk/pkg/domain/types"
	"github.com/secmon-lab/hl7risk/pkg/usecase"
)

func vendorIDs(vendors []model.VendorGuide) []string {
	ids := make([]string, len(vendors))
	for i, v := range vendors {
		ids[i] = v.ID
	}
	return ids
}

func TestVendorUseCase_Search(t *testing.T) {
	ctx := context.Background()
	uc := newDefaultUseCases(t)

	tests := []struct {
		name   string
		filter usecase.VendorFilter
		want   []string
	}{
		{
			name:   "no filter keeps catalog order",
			filter: usecase.VendorFilter{},
			want:   []string{"epic", "cerner", "rhapsody", "mirth", "intersystems", "microsoft", "aws"},
		},
		{
			name:   "query on name ignores case",
			filter: usecase.VendorFilter{Query: "MIRTH"},
			want:   []string{"mirth"},
		},
		{
			name:   "category",
			filter: usecase.VendorFilter{Category: "EHR"},
			want:   []string{"epic", "cerner"},
		},
		{
			name:   "all",
			filter: usecase.VendorFilter{Category: usecase.FilterAll, Support: usecase.FilterAll},
			want:   []string{"epic", "cerner", "rhapsody", "mirth", "intersystems", "microsoft", "aws"},
		},
		{
			name:   "no match",
			filter: usecase.VendorFilter{Query: "zzzz"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uc.Vendor.Search(ctx, tt.filter)
			gt.Value(t, vendorIDs(got)).Equal(tt.want)
		})
	}
}

func TestVendorUseCase_SearchDescription(t *testing.T) {
	uc := usecase.NewVendorUseCase([]model.VendorGuide{
		{ID: "a", Vendor: "Alpha", Description: "Cloud FHIR bridge", Category: types.VendorCategoryCloudPlatform},
		{ID: "b", Vendor: "Beta", Description: "On premise engine", Category: types.VendorCategoryMiddleware},
	})

	got := uc.Search(context.Background(), usecase.VendorFilter{Query: "fhir"})
	gt.Value(t, vendorIDs(got)).Equal([]string{"a"})
}

func TestVendorUseCase_Facets(t *testing.T) {
	uc := usecase.NewVendorUseCase([]model.VendorGuide{
		{ID: "a", Category: types.VendorCategoryEHR, Support: model.VendorSupport{Level: types.SupportLevelFull}},
		{ID: "b", Category: types.VendorCategoryCloudPlatform, Support: model.VendorSupport{Level: types.SupportLevelPartial}},
		{ID: "c", Category: types.VendorCategoryEHR, Support: model.VendorSupport{Level: types.SupportLevelFull}},
	})

	gt.Value(t, uc.Categories()).Equal([]types.VendorCategory{types.VendorCategoryEHR, types.VendorCategoryCloudPlatform})
	gt.Value(t, uc.SupportLevels()).Equal([]types.SupportLevel{types.SupportLevelFull, types.SupportLevelPartial})

	v, ok := uc.Get(context.Background(), "b")
	gt.Bool(t, ok).True()
	gt.Value(t, v.Category).Equal(types.VendorCategoryCloudPlatform)

	_, ok = uc.Get(context.Background(), "z")
	gt.Bool(t, ok).False()
}
