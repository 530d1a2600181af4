package trm

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

type recordingTx struct {
	commits, rollbacks int
	commitErr          error
}

func (r *recordingTx) Commit() error {
	r.commits++
	return r.commitErr
}

func (r *recordingTx) Rollback() error {
	r.rollbacks++
	return nil
}

type fakeManager struct {
	tx *recordingTx
}

func (f fakeManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	return ctx, f.tx, nil
}

func (f fakeManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	return run(ctx, f, callback)
}

func TestDo(t *testing.T) {
	errCallback := errors.New("callback failed")
	errCommit := errors.New("commit failed")

	testCases := []struct {
		name          string
		callbackErr   error
		commitErr     error
		wantErr       error
		wantCommits   int
		wantRollbacks int
	}{
		{name: "commit", wantCommits: 1},
		{name: "callback error rolls back", callbackErr: errCallback, wantErr: errCallback, wantRollbacks: 1},
		{name: "commit error", commitErr: errCommit, wantErr: errCommit, wantCommits: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := &recordingTx{commitErr: tc.commitErr}
			err := fakeManager{tx: tx}.Do(context.Background(), func(ctx context.Context) error {
				return tc.callbackErr
			})

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantCommits, tx.commits)
			assert.Equal(t, tc.wantRollbacks, tx.rollbacks)
		})
	}
}

func TestDo_PanicRollsBack(t *testing.T) {
	tx := &recordingTx{}
	assert.PanicsWithValue(t, "boom", func() {
		_ = fakeManager{tx: tx}.Do(context.Background(), func(ctx context.Context) error {
			panic("boom")
		})
	})
	assert.Equal(t, 1, tx.rollbacks)
	assert.Zero(t, tx.commits)
}

func TestWithoutTx(t *testing.T) {
	ctx := WithTx(context.Background(), &sqlx.Tx{})
	assert.NotNil(t, ExtractTx(ctx))

	detached := WithoutTx(ctx)
	assert.Nil(t, ExtractTx(detached))
	assert.NotNil(t, ExtractTx(ctx), "outer context keeps its transaction")

	plain := context.Background()
	assert.Equal(t, plain, WithoutTx(plain))
}

func TestNopManager(t *testing.T) {
	calls := 0
	err := NewNopManager().Do(context.Background(), func(ctx context.Context) error {
		calls++
		assert.Nil(t, ExtractTx(ctx))
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}
