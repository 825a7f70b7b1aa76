package screens

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"tienda-movil/internal/models"
)

const msgCamposProducto = "Todos los campos son requeridos y el precio debe ser mayor a 0"

// FormularioProducto mirrors the product create/update payload; products
// have no partial update, so edit submits every field as-is.
type FormularioProducto struct {
	UsuarioID      int     `json:"usuarioId"`
	NombreProducto string  `json:"nombreProducto"`
	Descripcion    string  `json:"descripcion"`
	Precio         float64 `json:"precio"`
	TipoProducto   string  `json:"tipoProducto"`
	Categoria      string  `json:"categoria"`
	ImagenURL      string  `json:"imagenUrl"`
	Disponibilidad bool    `json:"disponibilidad"`
}

func (f FormularioProducto) dto() models.CreateProductoDto {
	return models.CreateProductoDto{
		UsuarioID:      f.UsuarioID,
		NombreProducto: f.NombreProducto,
		Descripcion:    f.Descripcion,
		Precio:         f.Precio,
		TipoProducto:   f.TipoProducto,
		Categoria:      f.Categoria,
		ImagenURL:      f.ImagenURL,
		Disponibilidad: f.Disponibilidad,
	}
}

func (f FormularioProducto) valido() bool {
	return f.NombreProducto != "" && f.Descripcion != "" && f.Precio > 0 && f.UsuarioID > 0
}

// ProductosScreen owns the product list plus the user list needed for the
// owner selector in its forms.
type ProductosScreen struct {
	api    Backend
	logger *slog.Logger

	productos Recurso[[]models.Producto]
	usuarios  Recurso[[]models.Usuario]

	mu          sync.Mutex
	formCrear   FormularioProducto
	formEditar  FormularioProducto
	editandoID  int
	dialogCrear bool
	dialogEdita bool
}

func NewProductosScreen(api Backend, logger *slog.Logger) *ProductosScreen {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductosScreen{
		api:       api,
		logger:    logger,
		formCrear: FormularioProducto{Disponibilidad: true},
	}
}

type VistaProductos struct {
	Productos   []models.Producto
	Usuarios    []models.Usuario
	Cargando    bool
	Error       string
	DialogCrear bool
	DialogEdita bool
	EditandoID  int
	FormCrear   FormularioProducto
	FormEditar  FormularioProducto
}

func (s *ProductosScreen) Vista() VistaProductos {
	s.mu.Lock()
	defer s.mu.Unlock()
	return VistaProductos{
		Productos:   s.productos.Data(),
		Usuarios:    s.usuarios.Data(),
		Cargando:    s.productos.Cargando(),
		Error:       s.productos.Err(),
		DialogCrear: s.dialogCrear,
		DialogEdita: s.dialogEdita,
		EditandoID:  s.editandoID,
		FormCrear:   s.formCrear,
		FormEditar:  s.formEditar,
	}
}

// CargarTodo fetches products and the owner list concurrently and returns
// once both are done. User-list failures are logged best-effort only; the
// screen's error surface belongs to the product list.
func (s *ProductosScreen) CargarTodo(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error {
		s.productos.Cargar(ctx, s.api.Productos, "Error al cargar productos")
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

func (s *ProductosScreen) Cargar(ctx context.Context) {
	s.productos.Cargar(ctx, s.api.Productos, "Error al cargar productos")
}

func (s *ProductosScreen) AbrirCrear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogCrear = true
	s.formCrear = FormularioProducto{Disponibilidad: true}
	s.productos.ClearError()
}

func (s *ProductosScreen) AbrirEditar(id int) bool {
	var seleccionado *models.Producto
	for _, p := range s.productos.Data() {
		if p.ID == id {
			seleccionado = &p
			break
		}
	}
	if seleccionado == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogEdita = true
	s.editandoID = id
	s.formEditar = FormularioProducto{
		UsuarioID:      seleccionado.UsuarioID,
		NombreProducto: seleccionado.NombreProducto,
		Descripcion:    seleccionado.Descripcion,
		Precio:         seleccionado.Precio,
		TipoProducto:   seleccionado.TipoProducto,
		Categoria:      seleccionado.Categoria,
		ImagenURL:      seleccionado.ImagenURL,
		Disponibilidad: seleccionado.Disponibilidad,
	}
	s.productos.ClearError()
	return true
}

func (s *ProductosScreen) CerrarDialogos() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogCrear = false
	s.dialogEdita = false
	s.editandoID = 0
	s.formCrear = FormularioProducto{Disponibilidad: true}
	s.formEditar = FormularioProducto{Disponibilidad: true}
}

func (s *ProductosScreen) ActualizarFormCrear(f FormularioProducto) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formCrear = f
}

func (s *ProductosScreen) ActualizarFormEditar(f FormularioProducto) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formEditar = f
}

func (s *ProductosScreen) Crear(ctx context.Context) bool {
	s.mu.Lock()
	form := s.formCrear
	s.mu.Unlock()

	if !form.valido() {
		s.productos.SetError(msgCamposProducto)
		return false
	}

	dto := form.dto()
	ok := s.productos.Mutar(ctx, func(ctx context.Context) (bool, string) {
		res := s.api.CreateProducto(ctx, dto)
		return res.Success, res.Error
	}, s.api.Productos, "Error al crear producto")

	if ok {
		s.CerrarDialogos()
	}
	return ok
}

func (s *ProductosScreen) Actualizar(ctx context.Context) bool {
	s.mu.Lock()
	id := s.editandoID
	form := s.formEditar
	s.mu.Unlock()

	if id == 0 {
		return false
	}
	if !form.valido() {
		s.productos.SetError(msgCamposProducto)
		return false
	}

	dto := models.UpdateProductoDto(form.dto())
	ok := s.productos.Mutar(ctx, func(ctx context.Context) (bool, string) {
		res := s.api.UpdateProducto(ctx, id, dto)
		return res.Success, res.Error
	}, s.api.Productos, "Error al actualizar producto")

	if ok {
		s.CerrarDialogos()
	}
	return ok
}

func (s *ProductosScreen) Eliminar(ctx context.Context, id int, confirmado bool) bool {
	if !confirmado {
		return false
	}
	return s.productos.Mutar(ctx, func(ctx context.Context) (bool, string) {
		res := s.api.DeleteProducto(ctx, id)
		return res.Success, res.Error
	}, s.api.Productos, "Error al eliminar producto")
}

// SetProductos and SetUsuarios seed the lists directly. Test seams.
func (s *ProductosScreen) SetProductos(productos []models.Producto) {
	s.productos.SetData(productos)
}

func (s *ProductosScreen) SetUsuarios(usuarios []models.Usuario) {
	s.usuarios.SetData(usuarios)
}
