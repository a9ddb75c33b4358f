package ledger_test

import (
	"sync"
	"testing"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/FilipeBeck/pipe-builder/internal/engine/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func TestLedger_Register(t *testing.T) {
	l := ledger.New()

	require.NoError(t, l.Register("build"))
	assert.True(t, l.Contains("build"))

	err := l.Register("build")
	require.ErrorIs(t, err, domain.ErrDuplicateTask)
}

func TestLedger_Reserve_IsAtomic(t *testing.T) {
	l := ledger.New()
	require.NoError(t, l.Register("existing"))

	err := l.Reserve("a", "b", "existing")
	require.ErrorIs(t, err, domain.ErrDuplicateTask)

	assert.False(t, l.Contains("a"), "no identifier is recorded when the reservation fails")
	assert.False(t, l.Contains("b"))
	assert.Equal(t, []string{"existing"}, l.IDs())
}

func TestLedger_Reserve_DuplicateWithinCall(t *testing.T) {
	l := ledger.New()

	err := l.Reserve("t1", "t2", "t1")
	require.ErrorIs(t, err, domain.ErrDuplicateTask)
	assert.Empty(t, l.IDs())
}

func TestLedger_DuplicateErrorCarriesTaskID(t *testing.T) {
	l := ledger.New()
	require.NoError(t, l.Register("compile"))

	err := l.Register("compile")
	require.Error(t, err)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "compile", zErr.Metadata()["task"])
	assert.Contains(t, err.Error(), "compile")
}

func TestLedger_ConcurrentReserve(t *testing.T) {
	l := ledger.New()

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Go(func() {
			errs <- l.Reserve("shared")
		})
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)
}
