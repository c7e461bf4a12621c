package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialgrowth/internal/catalog"
	"socialgrowth/internal/models"
	"socialgrowth/internal/repositories"
	"socialgrowth/internal/services"
)

func TestCatalogService(t *testing.T) {
	svc := services.NewCatalogService(repositories.NewStaticServiceRepository())

	all, err := svc.List(catalog.Criteria{})
	require.NoError(t, err)
	assert.Len(t, all, 11)

	likes, err := svc.List(catalog.Criteria{Platform: "Instagram", Type: "Likes"})
	require.NoError(t, err)
	for _, s := range likes {
		assert.Equal(t, models.PlatformInstagram, s.Platform)
		assert.Equal(t, models.ServiceTypeLikes, s.Type)
	}

	got, err := svc.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)

	_, err = svc.Get("999")
	assert.ErrorIs(t, err, services.ErrServiceNotFound)

	sel, err := svc.Selectors()
	require.NoError(t, err)
	assert.Contains(t, sel.Platforms, models.PlatformYouTube)
	assert.Contains(t, sel.Types, models.ServiceTypeFollowers)
}
