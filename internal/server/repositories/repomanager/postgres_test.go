package repomanager

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestFactoryMethods_ReturnBoundRepositories(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := NewPostgresRepositoryManager()

	require.NotNil(t, m.Users(db))
	require.NotNil(t, m.Products(db))
	require.NotNil(t, m.Carts(db))
}

func TestManagerSatisfiesInterface(t *testing.T) {
	var _ RepositoryManager = NewPostgresRepositoryManager()
}
