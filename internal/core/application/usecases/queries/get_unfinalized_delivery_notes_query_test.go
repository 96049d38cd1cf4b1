package queries_test

import (
	"testing"

	"workshop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUnfinalizedDeliveryNotesQuery_Valid(t *testing.T) {
	query := queries.NewGetUnfinalizedDeliveryNotesQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetUnfinalizedDeliveryNotesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUnfinalizedDeliveryNotesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUnfinalizedDeliveryNotesQueryIsNotConstructed)
}
