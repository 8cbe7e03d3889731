package fibgen_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/fibgen"
	"github.com/aretw0/fibgen/pkg/adapters/memory"
	"github.com/aretw0/fibgen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	*memory.Store
}

func (failingStore) Save(context.Context, *domain.Record) error {
	return errors.New("disk full")
}

func TestService_Sequence(t *testing.T) {
	store := memory.NewStore()
	svc := fibgen.New(
		fibgen.WithStore(store),
		fibgen.WithIDGenerator(func() string { return "fixed-id" }),
	)
	ctx := context.Background()

	res, err := svc.Sequence(ctx, 15, domain.SourceMCP)
	require.NoError(t, err)
	assert.Equal(t, 15, res.Terms)
	assert.Equal(t, "377", res.Sequence[14].String())

	record, err := svc.Record(ctx, "fixed-id")
	require.NoError(t, err)
	assert.Equal(t, 15, record.Terms)
	assert.Equal(t, domain.SourceMCP, record.Source)

	require.NoError(t, svc.Forget(ctx, "fixed-id"))
	_, err = svc.Record(ctx, "fixed-id")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestService_Validation(t *testing.T) {
	svc := fibgen.New(fibgen.WithMaxTerms(50))
	ctx := context.Background()

	_, err := svc.Sequence(ctx, -1, domain.SourceHTTP)
	assert.ErrorIs(t, err, domain.ErrNegativeInput)

	_, err = svc.Sequence(ctx, 51, domain.SourceHTTP)
	assert.ErrorIs(t, err, domain.ErrTooManyTerms)

	res, err := svc.Sequence(ctx, 0, domain.SourceHTTP)
	require.NoError(t, err)
	assert.Empty(t, res.Sequence)
}

func TestService_NoStore(t *testing.T) {
	svc := fibgen.New()
	ctx := context.Background()

	_, err := svc.Sequence(ctx, 5, domain.SourceHTTP)
	require.NoError(t, err)

	history, err := svc.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = svc.Record(ctx, "any")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	assert.NoError(t, svc.Forget(ctx, "any"))
}

func TestService_JournalFailureDoesNotFailRequest(t *testing.T) {
	svc := fibgen.New(fibgen.WithStore(failingStore{memory.NewStore()}))

	res, err := svc.Sequence(context.Background(), 3, domain.SourceHTTP)
	require.NoError(t, err)
	assert.Equal(t, "[0, 1, 1]", res.Sequence.String())
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, fibgen.Version)
}
