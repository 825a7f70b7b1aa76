package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/starfederation/datastar-go/datastar"
	"golang.org/x/sync/errgroup"

	"tienda-movil/internal/screens"
	"tienda-movil/internal/ui/templates"
)

// SSEHandlers drives the four screens: every route runs a screen action and
// patches the screen's fragment back over the open SSE response.
type SSEHandlers struct {
	usuarios     *screens.UsuariosScreen
	productos    *screens.ProductosScreen
	compras      *screens.ComprasScreen
	estadisticas *screens.EstadisticasScreen
	logger       *slog.Logger
}

func NewSSEHandlers(usuarios *screens.UsuariosScreen, productos *screens.ProductosScreen, compras *screens.ComprasScreen, estadisticas *screens.EstadisticasScreen, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		usuarios:     usuarios,
		productos:    productos,
		compras:      compras,
		estadisticas: estadisticas,
		logger:       logger,
	}
}

func (h *SSEHandlers) patch(w http.ResponseWriter, r *http.Request, fragmento string, renderErr error) {
	if renderErr != nil {
		h.logger.Error("render screen fragment", "path", r.URL.Path, "error", renderErr)
		return
	}
	sse := datastar.NewSSE(w, r)
	sse.PatchElements(fragmento)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) patchUsuarios(w http.ResponseWriter, r *http.Request) {
	html, err := templates.RenderUsuarios(h.usuarios.Vista())
	h.patch(w, r, html, err)
}

func (h *SSEHandlers) patchProductos(w http.ResponseWriter, r *http.Request) {
	html, err := templates.RenderProductos(h.productos.Vista())
	h.patch(w, r, html, err)
}

func (h *SSEHandlers) patchCompras(w http.ResponseWriter, r *http.Request) {
	html, err := templates.RenderCompras(h.compras.Vista())
	h.patch(w, r, html, err)
}

func (h *SSEHandlers) patchEstadisticas(w http.ResponseWriter, r *http.Request) {
	html, err := templates.RenderEstadisticas(h.estadisticas.Vista())
	h.patch(w, r, html, err)
}

func idDeRuta(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ===== Usuarios =====

type senalesUsuario struct {
	UsuarioForm screens.FormularioUsuario `json:"usuarioForm"`
}

func (h *SSEHandlers) HandleUsuarios(w http.ResponseWriter, r *http.Request) {
	h.usuarios.Cargar(r.Context())
	h.patchUsuarios(w, r)
}

func (h *SSEHandlers) HandleUsuarioNuevo(w http.ResponseWriter, r *http.Request) {
	h.usuarios.AbrirCrear()
	h.patchUsuarios(w, r)
}

func (h *SSEHandlers) HandleUsuarioEditar(w http.ResponseWriter, r *http.Request) {
	if id, ok := idDeRuta(r); ok {
		h.usuarios.AbrirEditar(id)
	}
	h.patchUsuarios(w, r)
}

func (h *SSEHandlers) HandleUsuariosCerrar(w http.ResponseWriter, r *http.Request) {
	h.usuarios.CerrarDialogo()
	h.patchUsuarios(w, r)
}

func (h *SSEHandlers) HandleUsuarioCrear(w http.ResponseWriter, r *http.Request) {
	var s senalesUsuario
	if err := datastar.ReadSignals(r, &s); err == nil {
		h.usuarios.ActualizarFormulario(s.UsuarioForm)
	}
	h.usuarios.Crear(r.Context())
	h.patchUsuarios(w, r)
}

func (h *SSEHandlers) HandleUsuarioActualizar(w http.ResponseWriter, r *http.Request) {
	var s senalesUsuario
	if err := datastar.ReadSignals(r, &s); err == nil {
		h.usuarios.ActualizarFormulario(s.UsuarioForm)
	}
	h.usuarios.Actualizar(r.Context())
	h.patchUsuarios(w, r)
}

func (h *SSEHandlers) HandleUsuarioEliminar(w http.ResponseWriter, r *http.Request) {
	if id, ok := idDeRuta(r); ok {
		confirmado := r.URL.Query().Get("confirmado") == "true"
		h.usuarios.Eliminar(r.Context(), id, confirmado)
	}
	h.patchUsuarios(w, r)
}

// ===== Productos =====

// Select-bound signals arrive as strings; usuarioId is converted before it
// reaches the screen.
type senalProductoForm struct {
	NombreProducto string  `json:"nombreProducto"`
	Descripcion    string  `json:"descripcion"`
	Precio         float64 `json:"precio"`
	TipoProducto   string  `json:"tipoProducto"`
	Categoria      string  `json:"categoria"`
	ImagenURL      string  `json:"imagenUrl"`
	UsuarioID      string  `json:"usuarioId"`
	Disponibilidad bool    `json:"disponibilidad"`
}

func (s senalProductoForm) formulario() screens.FormularioProducto {
	usuarioID, _ := strconv.Atoi(s.UsuarioID)
	return screens.FormularioProducto{
		UsuarioID:      usuarioID,
		NombreProducto: s.NombreProducto,
		Descripcion:    s.Descripcion,
		Precio:         s.Precio,
		TipoProducto:   s.TipoProducto,
		Categoria:      s.Categoria,
		ImagenURL:      s.ImagenURL,
		Disponibilidad: s.Disponibilidad,
	}
}

type senalesProducto struct {
	ProductoForm     senalProductoForm `json:"productoForm"`
	ProductoEditForm senalProductoForm `json:"productoEditForm"`
}

func (h *SSEHandlers) HandleProductos(w http.ResponseWriter, r *http.Request) {
	h.productos.CargarTodo(r.Context())
	h.patchProductos(w, r)
}

func (h *SSEHandlers) HandleProductoNuevo(w http.ResponseWriter, r *http.Request) {
	h.productos.AbrirCrear()
	h.patchProductos(w, r)
}

func (h *SSEHandlers) HandleProductoEditar(w http.ResponseWriter, r *http.Request) {
	if id, ok := idDeRuta(r); ok {
		h.productos.AbrirEditar(id)
	}
	h.patchProductos(w, r)
}

func (h *SSEHandlers) HandleProductosCerrar(w http.ResponseWriter, r *http.Request) {
	h.productos.CerrarDialogos()
	h.patchProductos(w, r)
}

func (h *SSEHandlers) HandleProductoCrear(w http.ResponseWriter, r *http.Request) {
	var s senalesProducto
	if err := datastar.ReadSignals(r, &s); err == nil {
		h.productos.ActualizarFormCrear(s.ProductoForm.formulario())
	}
	h.productos.Crear(r.Context())
	h.patchProductos(w, r)
}

func (h *SSEHandlers) HandleProductoActualizar(w http.ResponseWriter, r *http.Request) {
	var s senalesProducto
	if err := datastar.ReadSignals(r, &s); err == nil {
		h.productos.ActualizarFormEditar(s.ProductoEditForm.formulario())
	}
	h.productos.Actualizar(r.Context())
	h.patchProductos(w, r)
}

func (h *SSEHandlers) HandleProductoEliminar(w http.ResponseWriter, r *http.Request) {
	if id, ok := idDeRuta(r); ok {
		confirmado := r.URL.Query().Get("confirmado") == "true"
		h.productos.Eliminar(r.Context(), id, confirmado)
	}
	h.patchProductos(w, r)
}

// ===== Compras =====

func (h *SSEHandlers) HandleCompras(w http.ResponseWriter, r *http.Request) {
	h.compras.CargarTodo(r.Context())
	h.patchCompras(w, r)
}

func (h *SSEHandlers) HandleCompraNueva(w http.ResponseWriter, r *http.Request) {
	h.compras.AbrirAsistente()
	h.patchCompras(w, r)
}

func (h *SSEHandlers) HandleComprasCerrar(w http.ResponseWriter, r *http.Request) {
	h.compras.CerrarAsistente()
	h.patchCompras(w, r)
}

func (h *SSEHandlers) HandleCompraCategoria(w http.ResponseWriter, r *http.Request) {
	h.compras.SeleccionarCategoria(r.URL.Query().Get("categoria"))
	h.patchCompras(w, r)
}

func (h *SSEHandlers) HandleCompraUsuario(w http.ResponseWriter, r *http.Request) {
	if usuarioID, err := strconv.Atoi(r.URL.Query().Get("usuarioId")); err == nil {
		h.compras.SeleccionarUsuario(usuarioID)
	}
	h.patchCompras(w, r)
}

func (h *SSEHandlers) HandleCompraProducto(w http.ResponseWriter, r *http.Request) {
	productoID, _ := strconv.Atoi(r.URL.Query().Get("productoId"))
	h.compras.ConfirmarCompra(r.Context(), productoID)
	h.patchCompras(w, r)
}

func (h *SSEHandlers) HandleCompraVolver(w http.ResponseWriter, r *http.Request) {
	h.compras.Volver()
	h.patchCompras(w, r)
}

// ===== Estadísticas =====

func (h *SSEHandlers) HandleEstadisticas(w http.ResponseWriter, r *http.Request) {
	h.estadisticas.Cargar(r.Context())
	h.patchEstadisticas(w, r)
}

// HandleRefreshAll reloads every screen, waits for all in-flight loads and
// patches the four fragments over one SSE stream. Screens stay independent;
// this route is the only place that awaits them together.
func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var g errgroup.Group
	g.Go(func() error { h.usuarios.Cargar(ctx); return nil })
	g.Go(func() error { h.productos.CargarTodo(ctx); return nil })
	g.Go(func() error { h.compras.CargarTodo(ctx); return nil })
	g.Go(func() error { h.estadisticas.Cargar(ctx); return nil })
	g.Wait()

	sse := datastar.NewSSE(w, r)
	for _, render := range []func() (string, error){
		func() (string, error) { return templates.RenderUsuarios(h.usuarios.Vista()) },
		func() (string, error) { return templates.RenderProductos(h.productos.Vista()) },
		func() (string, error) { return templates.RenderCompras(h.compras.Vista()) },
		func() (string, error) { return templates.RenderEstadisticas(h.estadisticas.Vista()) },
	} {
		html, err := render()
		if err != nil {
			h.logger.Error("render screen fragment", "error", err)
			continue
		}
		sse.PatchElements(html)
	}

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}
