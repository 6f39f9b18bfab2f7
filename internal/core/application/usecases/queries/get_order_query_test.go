package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(orderID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
}

func TestNewGetOrderQuery_EmptyID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
