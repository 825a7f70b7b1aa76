package templates

import (
	"strings"
	"testing"

	"tienda-movil/internal/models"
	"tienda-movil/internal/screens"
)

func TestFormatoPrecio(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$ 0,00"},
		{25000, "$ 25.000,00"},
		{1234567.5, "$ 1.234.567,50"},
		{999.99, "$ 999,99"},
		{-1500, "-$ 1.500,00"},
	}
	for _, tt := range tests {
		if got := FormatoPrecio(tt.in); got != tt.want {
			t.Errorf("FormatoPrecio(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNombreMes(t *testing.T) {
	if got := NombreMes(1); got != "Enero" {
		t.Errorf("expected Enero, got %q", got)
	}
	if got := NombreMes(12); got != "Diciembre" {
		t.Errorf("expected Diciembre, got %q", got)
	}
	if got := NombreMes(0); got != "" {
		t.Errorf("out-of-range month must render empty, got %q", got)
	}
	if got := NombreMes(13); got != "" {
		t.Errorf("out-of-range month must render empty, got %q", got)
	}
}

func TestRenderUsuariosDialogo(t *testing.T) {
	html, err := RenderUsuarios(screens.VistaUsuarios{
		Usuarios: []models.Usuario{{ID: 1, NombreUsuario: "ana", Email: "ana@x.co"}},
		Dialogo:  true,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, `id="usuarios-content"`) {
		t.Error("fragment must carry the container id")
	}
	if !strings.Contains(html, "Nuevo Usuario") {
		t.Error("an open dialog with no edit id is the create dialog")
	}
	if !strings.Contains(html, "usuarioForm.nombreUsuario") {
		t.Error("inputs must bind the camelCase signal paths")
	}
}

func TestRenderUsuariosEditar(t *testing.T) {
	html, err := RenderUsuarios(screens.VistaUsuarios{
		Dialogo:    true,
		EditandoID: 3,
		Form:       screens.FormularioUsuario{NombreUsuario: "ana"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "Editar Usuario") {
		t.Error("an open dialog with an edit id is the edit dialog")
	}
	if !strings.Contains(html, "Nueva Contraseña (opcional)") {
		t.Error("the edit dialog must mark the password as optional")
	}
	if !strings.Contains(html, "/sse/usuarios/3") {
		t.Error("the save button must target the edited id")
	}
}

func TestRenderComprasPasos(t *testing.T) {
	base := screens.VistaCompras{
		Dialogo:    true,
		Categorias: []string{"Alimentos"},
		Usuarios:   []models.Usuario{{ID: 2, NombreUsuario: "luis"}},
	}

	html, err := RenderCompras(base)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "Selecciona una Categoría") {
		t.Error("step 0 must offer the categories")
	}

	base.Paso = screens.PasoProducto
	base.Candidatos = nil
	html, err = RenderCompras(base)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "No hay productos disponibles en esta categoría") {
		t.Error("an empty candidate set must say so")
	}
}

func TestRenderEstadisticasSinPromedio(t *testing.T) {
	html, err := RenderEstadisticas(screens.VistaEstadisticas{
		Datos: models.EstadisticasCompras{TotalCompras: 0},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "Promedio por compra") {
		t.Error("no average may render when there are no purchases")
	}
}

func TestShellRender(t *testing.T) {
	var buf strings.Builder
	if err := Shell().Render(t.Context(), &buf); err != nil {
		t.Fatalf("render shell: %v", err)
	}
	html := buf.String()
	for _, fragmento := range []string{
		"usuarios-content", "productos-content", "compras-content", "estadisticas-content",
		"/sse/usuarios", "/sse/productos", "/sse/compras", "/sse/estadisticas",
	} {
		if !strings.Contains(html, fragmento) {
			t.Errorf("shell must carry %s", fragmento)
		}
	}
}
