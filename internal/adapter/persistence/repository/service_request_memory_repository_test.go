package repository

import (
	"context"
	"testing"
	"time"

	"ssx_solar/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest() entities.ServiceRequest {
	return entities.ServiceRequest{
		ClientID:      "client-1",
		EquipmentType: entities.EquipmentSolarHeater,
		ProductID:     "prod-1",
		Address: entities.Address{
			Street:       "Rua das Flores",
			Number:       "100",
			Neighborhood: "Centro",
			City:         "Sao Paulo",
			State:        "SP",
			ZipCode:      "01000-000",
		},
		Priority: entities.PriorityNormal,
		Status:   entities.RequestStatusPending,
	}
}

func TestServiceRequestMemoryRepository_Insert(t *testing.T) {
	repo := NewServiceRequestMemoryRepository(NewMemorySessionStore())
	ctx := context.Background()

	created, err := repo.Insert(ctx, newTestRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entities.RequestStatusPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt, "createdAt and updatedAt must match right after insert")
}

func TestServiceRequestMemoryRepository_RoundTrip(t *testing.T) {
	repo := NewServiceRequestMemoryRepository(NewMemorySessionStore())
	ctx := context.Background()

	in := newTestRequest()
	in.Notes = "second floor, access through garage"
	created, err := repo.Insert(ctx, in)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	// Field-for-field equality except backend-assigned fields.
	assert.Equal(t, in.ClientID, got.ClientID)
	assert.Equal(t, in.EquipmentType, got.EquipmentType)
	assert.Equal(t, in.ProductID, got.ProductID)
	assert.Equal(t, in.Address, got.Address)
	assert.Equal(t, in.Notes, got.Notes)
	assert.Equal(t, in.Priority, got.Priority)
	assert.Equal(t, created.ID, got.ID)
}

func TestServiceRequestMemoryRepository_GetByIDUnknown(t *testing.T) {
	repo := NewServiceRequestMemoryRepository(NewMemorySessionStore())

	got, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestServiceRequestMemoryRepository_PatchRefreshesUpdatedAtOnly(t *testing.T) {
	repo := NewServiceRequestMemoryRepository(NewMemorySessionStore())
	ctx := context.Background()

	created, err := repo.Insert(ctx, newTestRequest())
	require.NoError(t, err)

	notes := "panel mounted"
	updated, err := repo.Patch(ctx, created.ID, entities.RequestPatch{TechnicalNotes: &notes})
	require.NoError(t, err)

	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "patch must never touch createdAt")
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt), "updatedAt must not go backwards")
	assert.Equal(t, notes, updated.TechnicalNotes)
	assert.Equal(t, entities.RequestStatusPending, updated.Status, "a field patch must not change status")
}

func TestServiceRequestMemoryRepository_PatchUnknownID(t *testing.T) {
	repo := NewServiceRequestMemoryRepository(NewMemorySessionStore())

	notes := "x"
	got, err := repo.Patch(context.Background(), "missing", entities.RequestPatch{TechnicalNotes: &notes})
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestServiceRequestMemoryRepository_DisjointPatchesCompose(t *testing.T) {
	repo := NewServiceRequestMemoryRepository(NewMemorySessionStore())
	ctx := context.Background()

	created, err := repo.Insert(ctx, newTestRequest())
	require.NoError(t, err)

	notes := "done"
	_, err = repo.Patch(ctx, created.ID, entities.RequestPatch{TechnicalNotes: &notes})
	require.NoError(t, err)

	installerID, installerName := "inst-1", "Maria"
	final, err := repo.Patch(ctx, created.ID, entities.RequestPatch{
		InstallerID:   &installerID,
		InstallerName: &installerName,
	})
	require.NoError(t, err)

	assert.Equal(t, "done", final.TechnicalNotes)
	assert.Equal(t, "inst-1", final.InstallerID)
	assert.Equal(t, "Maria", final.InstallerName)
}

func TestServiceRequestMemoryRepository_ImageAppendPreservesOrder(t *testing.T) {
	repo := NewServiceRequestMemoryRepository(NewMemorySessionStore())
	ctx := context.Background()

	created, err := repo.Insert(ctx, newTestRequest())
	require.NoError(t, err)

	first := entities.RequestImage{URL: "mock://storage/a.jpg", UploadedAt: time.Now().UTC()}
	second := entities.RequestImage{URL: "mock://storage/b.jpg", UploadedAt: time.Now().UTC()}

	_, err = repo.Patch(ctx, created.ID, entities.RequestPatch{AppendImages: []entities.RequestImage{first}})
	require.NoError(t, err)
	final, err := repo.Patch(ctx, created.ID, entities.RequestPatch{AppendImages: []entities.RequestImage{second}})
	require.NoError(t, err)

	require.Len(t, final.Images, 2)
	assert.Equal(t, first.URL, final.Images[0].URL)
	assert.Equal(t, second.URL, final.Images[1].URL)
}

func TestServiceRequestMemoryRepository_ClearPausedAt(t *testing.T) {
	repo := NewServiceRequestMemoryRepository(NewMemorySessionStore())
	ctx := context.Background()

	created, err := repo.Insert(ctx, newTestRequest())
	require.NoError(t, err)

	now := time.Now().UTC()
	paused, err := repo.Patch(ctx, created.ID, entities.RequestPatch{PausedAt: &now})
	require.NoError(t, err)
	require.NotNil(t, paused.PausedAt)

	resumed, err := repo.Patch(ctx, created.ID, entities.RequestPatch{ClearPausedAt: true})
	require.NoError(t, err)
	assert.Nil(t, resumed.PausedAt)
}

func TestServiceRequestMemoryRepository_SharedSessionStore(t *testing.T) {
	// Two repository instances over the same store see the same blob.
	store := NewMemorySessionStore()
	repoA := NewServiceRequestMemoryRepository(store)
	repoB := NewServiceRequestMemoryRepository(store)
	ctx := context.Background()

	created, err := repoA.Insert(ctx, newTestRequest())
	require.NoError(t, err)

	got, err := repoB.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	store.Clear()
	gone, err := repoB.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, gone.ID)
}

func TestServiceRequestMemoryRepository_Replace(t *testing.T) {
	repo := NewServiceRequestMemoryRepository(NewMemorySessionStore())
	ctx := context.Background()

	rec := newTestRequest()
	rec.ID = "remote-1"
	rec.CreatedAt = time.Now().UTC().Add(-time.Hour)
	rec.UpdatedAt = rec.CreatedAt

	require.NoError(t, repo.Replace(ctx, rec))

	got, err := repo.GetByID(ctx, "remote-1")
	require.NoError(t, err)
	assert.Equal(t, rec.CreatedAt, got.CreatedAt, "replace must keep timestamps")

	rec.TechnicalNotes = "mirrored again"
	require.NoError(t, repo.Replace(ctx, rec))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1, "replace of an existing id must not duplicate")
	assert.Equal(t, "mirrored again", list[0].TechnicalNotes)
}
