//go:build unit

package infra_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"lesson-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		kind       []infra.RepositoryErrorKind
		expectKind infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), expectKind: infra.KindTimeout},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, expectKind: infra.KindCheckViolated},
		{name: "other failure", err: errors.New("connection reset"), expectKind: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("zero rows"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, expectKind: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("failed", tc.err, tc.kind...)

			assert.True(t, infra.IsKind(wrapped, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, wrapped)
			assert.ErrorIs(t, wrapped, tc.err)
			assert.Contains(t, wrapped.Error(), string(tc.expectKind))
		})
	}

	t.Run("nil error keeps only the message", func(t *testing.T) {
		wrapped := infra.WrapRepoErr("lesson not found", nil, infra.KindNotFound)
		assert.Equal(t, "NOT_FOUND: lesson not found", wrapped.Error())
	})
}
