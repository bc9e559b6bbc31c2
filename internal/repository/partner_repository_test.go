package repository

import (
	"context"
	"fmt"
	"testing"

	"partner_management/internal/domain"
	"partner_management/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartnerRepository_CreateAndGet(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	repo := NewGormPartnerRepository(gdb)
	ctx := context.Background()

	partner := domain.NewPartner(domain.PartnerInput{
		Name:          "Acme",
		ContactPerson: testutil.Ptr("Jane Roe"),
		Email:         testutil.Ptr("jane@acme.test"),
	}, testutil.Ptr("user-1"))
	require.NoError(t, repo.Create(ctx, partner))

	assert.NotZero(t, partner.ID)
	assert.Equal(t, domain.PartnerStatusActive, partner.Status)
	assert.False(t, partner.CreatedAt.IsZero())
	assert.False(t, partner.UpdatedAt.IsZero())

	got, err := repo.Get(ctx, partner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
	require.NotNil(t, got.ContactPerson)
	assert.Equal(t, "Jane Roe", *got.ContactPerson)
	require.NotNil(t, got.CreatedBy)
	assert.Equal(t, "user-1", *got.CreatedBy)
}

func TestPartnerRepository_GetNotFound(t *testing.T) {
	repo := NewGormPartnerRepository(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Partner not found")
}

func TestPartnerRepository_List(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	repo := NewGormPartnerRepository(gdb)
	ctx := context.Background()

	t.Run("Pagination", func(t *testing.T) {
		for i := 1; i <= 15; i++ {
			testutil.CreatePartner(t, gdb, fmt.Sprintf("Partner %02d", i), "active")
		}

		page, err := repo.List(ctx, ListParams{Page: 2, PageSize: 10})
		require.NoError(t, err)
		assert.Len(t, page.Data, 5)
		assert.EqualValues(t, 15, page.Total)
		assert.Equal(t, 2, page.TotalPages)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 10, page.PageSize)

		first, err := repo.List(ctx, ListParams{Page: 1, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, first.Data, 10)
		// newest first
		assert.Equal(t, "Partner 15", first.Data[0].Name)
	})

	t.Run("SearchAndStatus", func(t *testing.T) {
		p := testutil.CreatePartner(t, gdb, "Globex", "inactive")
		p.ContactPerson = testutil.Ptr("Hank Scorpio")
		require.NoError(t, gdb.Save(p).Error)

		byName, err := repo.List(ctx, ListParams{Page: 1, PageSize: 10, Search: "GLOB"})
		require.NoError(t, err)
		require.Len(t, byName.Data, 1)
		assert.Equal(t, p.ID, byName.Data[0].ID)

		byContact, err := repo.List(ctx, ListParams{Page: 1, PageSize: 10, Search: "scorp"})
		require.NoError(t, err)
		require.Len(t, byContact.Data, 1)

		byStatus, err := repo.List(ctx, ListParams{Page: 1, PageSize: 50, Status: "inactive"})
		require.NoError(t, err)
		require.Len(t, byStatus.Data, 1)
		assert.EqualValues(t, 1, byStatus.Total)

		none, err := repo.List(ctx, ListParams{Page: 1, PageSize: 10, Search: "Globex", Status: "active"})
		require.NoError(t, err)
		assert.Empty(t, none.Data)
		assert.Equal(t, 0, none.TotalPages)
	})
}

func TestPartnerRepository_SearchIsLiteral(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	repo := NewGormPartnerRepository(gdb)
	ctx := context.Background()
	testutil.CreatePartner(t, gdb, "Acme", "active")
	organic := testutil.CreatePartner(t, gdb, "100% Organic", "active")
	snake := testutil.CreatePartner(t, gdb, "snake_case ltd", "active")

	tests := []struct {
		search string
		want   uint
	}{
		{"%", organic.ID},
		{"_", snake.ID},
		{"0% o", organic.ID},
		{"E_C", snake.ID},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			page, err := repo.List(ctx, ListParams{Page: 1, PageSize: 10, Search: tt.search})
			require.NoError(t, err)
			require.Len(t, page.Data, 1)
			assert.Equal(t, tt.want, page.Data[0].ID)
			assert.EqualValues(t, 1, page.Total)
		})
	}
}

func TestPartnerRepository_Update(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	repo := NewGormPartnerRepository(gdb)
	ctx := context.Background()
	p := testutil.CreatePartner(t, gdb, "Initech", "inactive")

	t.Run("KeepsStatusWhenOmitted", func(t *testing.T) {
		updated, err := repo.Update(ctx, p.ID, domain.PartnerInput{Name: "Initech LLC", Phone: testutil.Ptr("555-0100")})
		require.NoError(t, err)
		assert.Equal(t, "Initech LLC", updated.Name)
		assert.Equal(t, "inactive", updated.Status)
		require.NotNil(t, updated.Phone)
		assert.False(t, updated.UpdatedAt.Before(p.UpdatedAt))
	})

	t.Run("ReplacesOptionalFields", func(t *testing.T) {
		updated, err := repo.Update(ctx, p.ID, domain.PartnerInput{Name: "Initech", Status: testutil.Ptr("active")})
		require.NoError(t, err)
		assert.Equal(t, "active", updated.Status)
		assert.Nil(t, updated.Phone)

		got, err := repo.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Phone)
		assert.Equal(t, "active", got.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.Update(ctx, 9999, domain.PartnerInput{Name: "x"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPartnerRepository_Delete(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	repo := NewGormPartnerRepository(gdb)
	events := NewGormEventRepository(gdb)
	ctx := context.Background()

	p := testutil.CreatePartner(t, gdb, "Umbrella", "active")
	e := testutil.CreateEvent(t, gdb, "Expo", testutil.Now())
	_, err := events.AddPartner(ctx, e.ID, p.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err = repo.Get(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	partners, err := events.ListPartners(ctx, e.ID)
	require.NoError(t, err)
	assert.Empty(t, partners)

	assert.ErrorIs(t, repo.Delete(ctx, p.ID), domain.ErrNotFound)
}
