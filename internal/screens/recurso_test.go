package screens

import (
	"context"
	"testing"

	"tienda-movil/internal/apiclient"
)

func TestRecurso_CargarMantieneDatosEnFallo(t *testing.T) {
	var r Recurso[[]string]

	r.Cargar(context.Background(), func(context.Context) apiclient.Resultado[[]string] {
		return apiclient.Resultado[[]string]{Success: true, Data: []string{"a", "b"}}
	}, "fallback")

	if r.Err() != "" || len(r.Data()) != 2 {
		t.Fatalf("expected clean load, got err=%q data=%v", r.Err(), r.Data())
	}

	r.Cargar(context.Background(), func(context.Context) apiclient.Resultado[[]string] {
		return apiclient.Resultado[[]string]{Success: false, Error: "roto"}
	}, "fallback")

	if r.Err() != "roto" {
		t.Errorf("expected envelope error, got %q", r.Err())
	}
	if len(r.Data()) != 2 {
		t.Error("a failed reload must keep the previous data")
	}
	if r.Cargando() {
		t.Error("loading flag must clear after a failed load")
	}
}

func TestRecurso_CargarUsaFallbackSinMensaje(t *testing.T) {
	var r Recurso[int]

	r.Cargar(context.Background(), func(context.Context) apiclient.Resultado[int] {
		return apiclient.Resultado[int]{Success: false}
	}, "mensaje por defecto")

	if r.Err() != "mensaje por defecto" {
		t.Errorf("expected fallback message, got %q", r.Err())
	}
}

func TestRecurso_MutarRecarga(t *testing.T) {
	var r Recurso[[]int]
	r.SetData([]int{1})

	ok := r.Mutar(context.Background(), func(context.Context) (bool, string) {
		return true, ""
	}, func(context.Context) apiclient.Resultado[[]int] {
		return apiclient.Resultado[[]int]{Success: true, Data: []int{1, 2}}
	}, "fallback")

	if !ok {
		t.Fatal("mutation should report success")
	}
	if len(r.Data()) != 2 {
		t.Errorf("expected reloaded data, got %v", r.Data())
	}
}

func TestRecurso_MutarFallaSinRecargar(t *testing.T) {
	var r Recurso[[]int]
	r.SetData([]int{1})
	recargado := false

	ok := r.Mutar(context.Background(), func(context.Context) (bool, string) {
		return false, "rechazado"
	}, func(context.Context) apiclient.Resultado[[]int] {
		recargado = true
		return apiclient.Resultado[[]int]{Success: true}
	}, "fallback")

	if ok {
		t.Fatal("mutation should report failure")
	}
	if recargado {
		t.Error("a failed mutation must not trigger the reload")
	}
	if r.Err() != "rechazado" {
		t.Errorf("expected mutation error, got %q", r.Err())
	}
	if len(r.Data()) != 1 {
		t.Error("data must be untouched after a failed mutation")
	}
}

func TestRecurso_MutarExitosoConRecargaFallida(t *testing.T) {
	var r Recurso[[]int]
	r.SetData([]int{1})

	ok := r.Mutar(context.Background(), func(context.Context) (bool, string) {
		return true, ""
	}, func(context.Context) apiclient.Resultado[[]int] {
		return apiclient.Resultado[[]int]{Success: false, Error: "recarga rota"}
	}, "fallback")

	// The mutation itself succeeded; the reload failure is surfaced but
	// does not undo it.
	if !ok {
		t.Fatal("mutation success must be reported even when the reload fails")
	}
	if r.Err() != "recarga rota" {
		t.Errorf("expected reload error, got %q", r.Err())
	}
}

func TestRecurso_Reset(t *testing.T) {
	var r Recurso[[]int]
	r.SetData([]int{1, 2})
	r.SetError("algo")

	r.Reset()

	if len(r.Data()) != 0 || r.Err() != "" || r.Cargando() {
		t.Errorf("reset must clear everything, got data=%v err=%q", r.Data(), r.Err())
	}
}
