package screens

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"tienda-movil/internal/models"
)

const msgSeleccionIncompleta = "Debe seleccionar un usuario y un producto"

// Paso is the purchase wizard's state. The flow is strictly
// categoría → usuario → producto; every transition method rejects calls
// made from any other state.
type Paso int

const (
	PasoCategoria Paso = iota
	PasoUsuario
	PasoProducto
)

func (p Paso) String() string {
	switch p {
	case PasoCategoria:
		return "categoria"
	case PasoUsuario:
		return "usuario"
	case PasoProducto:
		return "producto"
	default:
		return "desconocido"
	}
}

// ComprasScreen owns the purchase list and the three-step purchase wizard.
type ComprasScreen struct {
	api    Backend
	logger *slog.Logger

	compras   Recurso[[]models.Compra]
	productos Recurso[[]models.Producto]
	usuarios  Recurso[[]models.Usuario]

	mu         sync.Mutex
	dialogo    bool
	paso       Paso
	categoria  string
	usuarioID  int
	candidatos []models.Producto
}

func NewComprasScreen(api Backend, logger *slog.Logger) *ComprasScreen {
	if logger == nil {
		logger = slog.Default()
	}
	return &ComprasScreen{api: api, logger: logger}
}

type VistaCompras struct {
	Compras     []models.Compra
	Usuarios    []models.Usuario
	Cargando    bool
	Error       string
	TotalVentas float64

	Dialogo    bool
	Paso       Paso
	Categoria  string
	UsuarioID  int
	Categorias []string
	Candidatos []models.Producto
}

func (s *ComprasScreen) Vista() VistaCompras {
	s.mu.Lock()
	defer s.mu.Unlock()

	compras := s.compras.Data()
	var total float64
	for _, c := range compras {
		total += c.PrecioProducto
	}

	candidatos := make([]models.Producto, len(s.candidatos))
	copy(candidatos, s.candidatos)

	return VistaCompras{
		Compras:     compras,
		Usuarios:    s.usuarios.Data(),
		Cargando:    s.compras.Cargando(),
		Error:       s.compras.Err(),
		TotalVentas: total,
		Dialogo:     s.dialogo,
		Paso:        s.paso,
		Categoria:   s.categoria,
		UsuarioID:   s.usuarioID,
		Categorias:  s.Categorias(),
		Candidatos:  candidatos,
	}
}

// CargarTodo issues the three on-mount fetches concurrently and returns
// when all are done. Only the purchase list owns the screen's error;
// product and user load failures are diagnostic output only.
func (s *ComprasScreen) CargarTodo(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error {
		s.compras.Cargar(ctx, s.api.Compras, "Error al cargar compras")
		return nil
	})
	g.Go(func() error {
		res := s.api.Productos(ctx)
		if res.Success {
			s.productos.SetData(res.Data)
		} else {
			s.logger.Debug("background product load failed", "error", res.Error)
		}
		return nil
	})
	g.Go(func() error {
		res := s.api.Usuarios(ctx)
		if res.Success {
			s.usuarios.SetData(res.Data)
		} else {
			s.logger.Debug("background user load failed", "error", res.Error)
		}
		return nil
	})
	g.Wait()
}

func (s *ComprasScreen) Cargar(ctx context.Context) {
	s.compras.Cargar(ctx, s.api.Compras, "Error al cargar compras")
}

// Categorias derives the selectable category set from the loaded products:
// the sorted distinct non-empty categories among available products. It is
// recomputed from the product list on every call, never stored.
func (s *ComprasScreen) Categorias() []string {
	vistas := make(map[string]struct{})
	var categorias []string
	for _, p := range s.productos.Data() {
		if !p.Disponibilidad {
			continue
		}
		c := p.Categoria
		if c == "" {
			continue
		}
		if _, ok := vistas[c]; ok {
			continue
		}
		vistas[c] = struct{}{}
		categorias = append(categorias, c)
	}
	sort.Strings(categorias)
	return categorias
}

func (s *ComprasScreen) AbrirAsistente() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogo = true
	s.resetAsistenteLocked()
	s.compras.ClearError()
}

func (s *ComprasScreen) CerrarAsistente() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogo = false
	s.resetAsistenteLocked()
}

func (s *ComprasScreen) resetAsistenteLocked() {
	s.paso = PasoCategoria
	s.categoria = ""
	s.usuarioID = 0
	s.candidatos = nil
}

// SeleccionarCategoria advances categoría → usuario.
func (s *ComprasScreen) SeleccionarCategoria(categoria string) bool {
	if categoria == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paso != PasoCategoria {
		return false
	}
	s.categoria = categoria
	s.paso = PasoUsuario
	return true
}

// SeleccionarUsuario advances usuario → producto and computes the candidate
// set: available products in the chosen category, recomputed fresh from the
// loaded product list.
func (s *ComprasScreen) SeleccionarUsuario(usuarioID int) bool {
	if usuarioID <= 0 {
		return false
	}
	productos := s.productos.Data()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paso != PasoUsuario {
		return false
	}
	s.usuarioID = usuarioID
	s.candidatos = nil
	for _, p := range productos {
		if p.Categoria == s.categoria && p.Disponibilidad {
			s.candidatos = append(s.candidatos, p)
		}
	}
	s.paso = PasoProducto
	return true
}

// Volver steps the wizard backwards, clearing the selection that led into
// the current step.
func (s *ComprasScreen) Volver() {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.paso {
	case PasoUsuario:
		s.paso = PasoCategoria
		s.categoria = ""
	case PasoProducto:
		s.paso = PasoUsuario
		s.usuarioID = 0
		s.candidatos = nil
	}
}

// ConfirmarCompra is the terminal transition: it submits the purchase. On
// success the purchase list is reloaded and the wizard closes and resets;
// on failure the wizard stays on the product step for retry.
func (s *ComprasScreen) ConfirmarCompra(ctx context.Context, productoID int) bool {
	s.mu.Lock()
	if s.paso != PasoProducto {
		s.mu.Unlock()
		return false
	}
	usuarioID := s.usuarioID
	valido := false
	for _, p := range s.candidatos {
		if p.ID == productoID {
			valido = true
			break
		}
	}
	s.mu.Unlock()

	if usuarioID == 0 || !valido {
		s.compras.SetError(msgSeleccionIncompleta)
		return false
	}

	dto := models.CreateCompraDto{UsuarioID: usuarioID, ProductoID: productoID}
	ok := s.compras.Mutar(ctx, func(ctx context.Context) (bool, string) {
		res := s.api.CreateCompra(ctx, dto)
		return res.Success, res.Error
	}, s.api.Compras, "Error al crear compra")

	if ok {
		s.CerrarAsistente()
	}
	return ok
}

// SetCompras, SetProductos and SetUsuarios seed the lists. Test seams.
func (s *ComprasScreen) SetCompras(compras []models.Compra) {
	s.compras.SetData(compras)
}

func (s *ComprasScreen) SetProductos(productos []models.Producto) {
	s.productos.SetData(productos)
}

func (s *ComprasScreen) SetUsuarios(usuarios []models.Usuario) {
	s.usuarios.SetData(usuarios)
}
