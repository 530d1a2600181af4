package keymutex

import (
	"sync"
	"testing"
	"time"
)

func TestKeyMutex(t *testing.T) {
	tests := []struct {
		name    string
		actions func(k *KeyMutex, t *testing.T)
	}{
		{
			name: "same key is exclusive",
			actions: func(k *KeyMutex, t *testing.T) {
				var (
					wg      sync.WaitGroup
					counter int
				)
				for range 100 {
					wg.Go(func() {
						unlock := k.Lock("a")
						defer unlock()
						v := counter
						time.Sleep(time.Microsecond)
						counter = v + 1
					})
				}
				wg.Wait()
				if counter != 100 {
					t.Errorf("expected counter=100, got=%d", counter)
				}
			},
		},
		{
			name: "different keys do not block each other",
			actions: func(k *KeyMutex, t *testing.T) {
				unlockA := k.Lock("a")
				defer unlockA()

				done := make(chan struct{})
				go func() {
					unlock := k.Lock("b")
					unlock()
					close(done)
				}()

				select {
				case <-done:
				case <-time.After(time.Second):
					t.Errorf("lock on b blocked by a")
				}
			},
		},
		{
			name: "entries are released",
			actions: func(k *KeyMutex, t *testing.T) {
				unlock := k.Lock("a")
				unlock()
				unlock()
				if k.Len() != 0 {
					t.Errorf("expected no entries, got=%d", k.Len())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.actions(New(), t)
		})
	}
}
