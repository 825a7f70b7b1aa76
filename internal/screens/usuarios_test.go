package screens

import (
	"context"
	"testing"

	"tienda-movil/internal/models"
)

func usuariosDePrueba() []models.Usuario {
	return []models.Usuario{
		{ID: 1, NombreUsuario: "ana", Email: "ana@x.co", Telefono: "3001234567"},
		{ID: 2, NombreUsuario: "luis", Email: "luis@x.co", Telefono: "3017654321"},
	}
}

func TestUsuariosScreen_Cargar(t *testing.T) {
	backend := newFakeBackend()
	backend.usuarios = usuariosDePrueba()
	s := NewUsuariosScreen(backend, nil)

	s.Cargar(context.Background())

	vista := s.Vista()
	if len(vista.Usuarios) != 2 {
		t.Fatalf("expected 2 usuarios, got %d", len(vista.Usuarios))
	}
	if vista.Error != "" {
		t.Errorf("expected no error, got %q", vista.Error)
	}
	if vista.Cargando {
		t.Error("loading flag should be cleared after load")
	}
}

func TestUsuariosScreen_CargarError(t *testing.T) {
	backend := newFakeBackend()
	backend.usuarios = usuariosDePrueba()
	s := NewUsuariosScreen(backend, nil)
	s.Cargar(context.Background())

	backend.fallos["Usuarios"] = "backend caído"
	s.Cargar(context.Background())

	vista := s.Vista()
	if vista.Error != "backend caído" {
		t.Errorf("expected upstream error, got %q", vista.Error)
	}
	// A failed reload keeps the previously loaded list.
	if len(vista.Usuarios) != 2 {
		t.Errorf("expected stale list to survive the failure, got %d entries", len(vista.Usuarios))
	}
}

func TestUsuariosScreen_CrearValidacion(t *testing.T) {
	tests := []struct {
		name string
		form FormularioUsuario
	}{
		{"sin nombre", FormularioUsuario{Email: "a@x.co", Contrasena: "secret1", Telefono: "300"}},
		{"sin email", FormularioUsuario{NombreUsuario: "ana", Contrasena: "secret1", Telefono: "300"}},
		{"sin contraseña", FormularioUsuario{NombreUsuario: "ana", Email: "a@x.co", Telefono: "300"}},
		{"sin teléfono", FormularioUsuario{NombreUsuario: "ana", Email: "a@x.co", Contrasena: "secret1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newFakeBackend()
			s := NewUsuariosScreen(backend, nil)
			s.AbrirCrear()
			s.ActualizarFormulario(tt.form)

			if s.Crear(context.Background()) {
				t.Fatal("create should fail validation")
			}
			if got := s.Vista().Error; got != msgCamposRequeridos {
				t.Errorf("expected %q, got %q", msgCamposRequeridos, got)
			}
			if backend.cuenta("CreateUsuario") != 0 {
				t.Error("no network call may be issued on validation failure")
			}
		})
	}
}

func TestUsuariosScreen_Crear(t *testing.T) {
	backend := newFakeBackend()
	s := NewUsuariosScreen(backend, nil)
	s.AbrirCrear()
	s.ActualizarFormulario(FormularioUsuario{
		NombreUsuario: "ana",
		Email:         "ana@x.co",
		Contrasena:    "secret1",
		Telefono:      "3001234567",
	})

	if !s.Crear(context.Background()) {
		t.Fatal("create should succeed")
	}

	vista := s.Vista()
	if vista.Dialogo {
		t.Error("dialog should close after a successful create")
	}
	if vista.Form != (FormularioUsuario{}) {
		t.Error("form should reset after a successful create")
	}
	if len(vista.Usuarios) != 1 || vista.Usuarios[0].NombreUsuario != "ana" {
		t.Errorf("expected reloaded list with ana, got %+v", vista.Usuarios)
	}
	if backend.cuenta("Usuarios") != 1 {
		t.Error("create must reload the full list")
	}
}

func TestUsuariosScreen_CrearFalla(t *testing.T) {
	backend := newFakeBackend()
	backend.fallos["CreateUsuario"] = "email duplicado"
	s := NewUsuariosScreen(backend, nil)
	s.AbrirCrear()
	s.ActualizarFormulario(FormularioUsuario{
		NombreUsuario: "ana", Email: "ana@x.co", Contrasena: "secret1", Telefono: "300",
	})

	if s.Crear(context.Background()) {
		t.Fatal("create should fail")
	}

	vista := s.Vista()
	if vista.Error != "email duplicado" {
		t.Errorf("expected backend error, got %q", vista.Error)
	}
	if !vista.Dialogo {
		t.Error("dialog must stay open for retry")
	}
	if vista.Form.NombreUsuario != "ana" {
		t.Error("form must keep its values on failure")
	}
}

func TestUsuariosScreen_EditarPrepopula(t *testing.T) {
	backend := newFakeBackend()
	backend.usuarios = usuariosDePrueba()
	s := NewUsuariosScreen(backend, nil)
	s.Cargar(context.Background())

	if !s.AbrirEditar(2) {
		t.Fatal("edit should find user 2")
	}

	vista := s.Vista()
	if vista.Form.NombreUsuario != "luis" || vista.Form.Email != "luis@x.co" || vista.Form.Telefono != "3017654321" {
		t.Errorf("form not pre-populated: %+v", vista.Form)
	}
	if vista.Form.Contrasena != "" {
		t.Error("password field must start empty on edit")
	}
	if s.AbrirEditar(99) {
		t.Error("editing an unknown id should fail")
	}
}

func TestUsuariosScreen_ActualizarOmiteContrasenaVacia(t *testing.T) {
	backend := newFakeBackend()
	backend.usuarios = usuariosDePrueba()
	s := NewUsuariosScreen(backend, nil)
	s.Cargar(context.Background())
	s.AbrirEditar(1)

	if !s.Actualizar(context.Background()) {
		t.Fatal("update should succeed")
	}
	if backend.ultimoUpdateUsuario.Contrasena != nil {
		t.Error("empty password must be omitted from the payload, not sent")
	}
}

func TestUsuariosScreen_ActualizarEnviaContrasenaNueva(t *testing.T) {
	backend := newFakeBackend()
	backend.usuarios = usuariosDePrueba()
	s := NewUsuariosScreen(backend, nil)
	s.Cargar(context.Background())
	s.AbrirEditar(1)

	vista := s.Vista()
	form := vista.Form
	form.Contrasena = "nueva7"
	s.ActualizarFormulario(form)

	if !s.Actualizar(context.Background()) {
		t.Fatal("update should succeed")
	}
	if backend.ultimoUpdateUsuario.Contrasena == nil || *backend.ultimoUpdateUsuario.Contrasena != "nueva7" {
		t.Errorf("expected new password in payload, got %v", backend.ultimoUpdateUsuario.Contrasena)
	}
}

func TestUsuariosScreen_EliminarSinConfirmar(t *testing.T) {
	backend := newFakeBackend()
	backend.usuarios = usuariosDePrueba()
	s := NewUsuariosScreen(backend, nil)
	s.Cargar(context.Background())

	if s.Eliminar(context.Background(), 1, false) {
		t.Fatal("declined delete must be a no-op")
	}
	if backend.cuenta("DeleteUsuario") != 0 {
		t.Error("declined delete must not issue a network call")
	}
	if len(s.Vista().Usuarios) != 2 {
		t.Error("declined delete must not change state")
	}
}

func TestUsuariosScreen_Eliminar(t *testing.T) {
	backend := newFakeBackend()
	backend.usuarios = usuariosDePrueba()
	s := NewUsuariosScreen(backend, nil)
	s.Cargar(context.Background())

	if !s.Eliminar(context.Background(), 1, true) {
		t.Fatal("confirmed delete should succeed")
	}

	vista := s.Vista()
	if len(vista.Usuarios) != 1 || vista.Usuarios[0].ID != 2 {
		t.Errorf("expected reloaded list without id 1, got %+v", vista.Usuarios)
	}
}
