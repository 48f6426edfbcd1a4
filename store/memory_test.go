package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/panel-usuarios-backend/models"
)

func seededStore() *MemoryStore {
	m := NewMemoryStore()
	m.Seed()
	return m
}

func TestSeedCollections(t *testing.T) {
	m := seededStore()
	ctx := context.Background()

	users, err := m.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	studies, err := m.ListStudies(ctx, "")
	require.NoError(t, err)
	assert.Len(t, studies, 3)

	addresses, err := m.ListAddresses(ctx, "")
	require.NoError(t, err)
	assert.Len(t, addresses, 3)
}

func TestCreateUserAssignsSequentialID(t *testing.T) {
	m := seededStore()
	ctx := context.Background()

	creado, err := m.CreateUser(ctx, models.User{Name: "Pedro", Email: "pedro@test.com", Password: "x", Role: models.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, "4", creado.ID)
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	m := seededStore()
	ctx := context.Background()

	ok, err := m.DeleteUser(ctx, "3")
	require.NoError(t, err)
	require.True(t, ok)

	// El contador es monótono: aunque el "3" ya no exista, el siguiente
	// id es "4", no un "3" repetido
	creado, err := m.CreateUser(ctx, models.User{Name: "Ana", Email: "ana@test.com", Password: "x", Role: models.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, "4", creado.ID)
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	m := seededStore()
	ctx := context.Background()

	ok, err := m.DeleteStudy(ctx, "99")
	require.NoError(t, err)
	assert.False(t, ok)

	studies, err := m.ListStudies(ctx, "")
	require.NoError(t, err)
	assert.Len(t, studies, 3, "un delete de id inexistente no debe cambiar la colección")
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	m := seededStore()
	ctx := context.Background()

	ok, err := m.DeleteAddress(ctx, "2")
	require.NoError(t, err)
	assert.True(t, ok)

	addresses, err := m.ListAddresses(ctx, "")
	require.NoError(t, err)
	assert.Len(t, addresses, 2)
	for _, a := range addresses {
		assert.NotEqual(t, "2", a.ID)
	}
}

func TestUpdateMissingFails(t *testing.T) {
	m := seededStore()
	ctx := context.Background()

	titulo := "Otro título"
	_, err := m.UpdateStudy(ctx, "99", StudyUpdate{Title: &titulo})
	assert.ErrorIs(t, err, ErrNoEncontrado)

	_, err = m.UpdateUser(ctx, "99", UserUpdate{Name: &titulo})
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestUpdateUserEmptyPasswordPreserved(t *testing.T) {
	m := seededStore()
	ctx := context.Background()

	vacio := ""
	_, err := m.UpdateUser(ctx, "2", UserUpdate{Password: &vacio})
	require.NoError(t, err)

	users, err := m.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user123", users[1].Password, "un password vacío no debe pisar el almacenado")

	nuevo := "secreto"
	_, err = m.UpdateUser(ctx, "2", UserUpdate{Password: &nuevo})
	require.NoError(t, err)

	users, err = m.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "secreto", users[1].Password)
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	m := seededStore()
	ctx := context.Background()

	anio := 2021
	actualizado, err := m.UpdateStudy(ctx, "1", StudyUpdate{Year: &anio})
	require.NoError(t, err)
	assert.Equal(t, 2021, actualizado.Year)
	assert.Equal(t, "Ingeniería en Sistemas", actualizado.Title)
	assert.Equal(t, "Universidad Nacional", actualizado.Institution)
}

func TestListFiltersByUserKeepingOrder(t *testing.T) {
	m := seededStore()
	ctx := context.Background()

	studies, err := m.ListStudies(ctx, "2")
	require.NoError(t, err)
	require.Len(t, studies, 2)
	assert.Equal(t, "1", studies[0].ID)
	assert.Equal(t, "2", studies[1].ID)

	addresses, err := m.ListAddresses(ctx, "3")
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, "3", addresses[0].ID)

	// Un usuario sin registros recibe una lista vacía, no nil ni error
	vacias, err := m.ListAddresses(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, vacias)
}
