package screens

import (
	"context"
	"sync"

	"tienda-movil/internal/apiclient"
)

// Recurso holds one screen's remote state: the loaded data, a loading flag
// and an error message. Error and success are mutually exclusive; setting
// one clears the other. The guard exists because screen state is reached
// from concurrent HTTP requests.
type Recurso[T any] struct {
	mu      sync.RWMutex
	data    T
	loading bool
	err     string
}

// Cargar runs one fetch and replaces the data on success. On failure the
// previously loaded data is kept and the error message is surfaced, using
// fallback when the envelope carries no message.
func (r *Recurso[T]) Cargar(ctx context.Context, fn func(context.Context) apiclient.Resultado[T], fallback string) {
	r.mu.Lock()
	r.loading = true
	r.err = ""
	r.mu.Unlock()

	res := fn(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	if res.Success {
		r.data = res.Data
		return
	}
	if res.Error != "" {
		r.err = res.Error
	} else {
		r.err = fallback
	}
}

// Mutar runs one mutating call and, when it succeeds, re-fetches the full
// data set so the screen reflects backend state rather than a local patch.
// It reports whether the mutation itself succeeded; a failed reload leaves
// its own error behind but does not undo the mutation.
func (r *Recurso[T]) Mutar(ctx context.Context, op func(context.Context) (bool, string), reload func(context.Context) apiclient.Resultado[T], fallback string) bool {
	r.mu.Lock()
	r.loading = true
	r.err = ""
	r.mu.Unlock()

	ok, msg := op(ctx)
	if !ok {
		r.mu.Lock()
		r.loading = false
		if msg != "" {
			r.err = msg
		} else {
			r.err = fallback
		}
		r.mu.Unlock()
		return false
	}

	res := reload(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	if res.Success {
		r.data = res.Data
	} else if res.Error != "" {
		r.err = res.Error
	} else {
		r.err = fallback
	}
	return true
}

func (r *Recurso[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	r.data = zero
	r.loading = false
	r.err = ""
}

func (r *Recurso[T]) Data() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data
}

func (r *Recurso[T]) Cargando() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

func (r *Recurso[T]) Err() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

// SetError surfaces a local validation failure without a network call.
func (r *Recurso[T]) SetError(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = msg
}

func (r *Recurso[T]) ClearError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = ""
}

// SetData seeds the resource directly, bypassing the backend. Test seam.
func (r *Recurso[T]) SetData(data T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = data
	r.err = ""
}
