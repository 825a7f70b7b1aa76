package screens

import (
	"context"
	"log/slog"
	"sync"

	"tienda-movil/internal/models"
)

const msgCamposRequeridos = "Todos los campos son requeridos"

// FormularioUsuario is the user create/edit form. Contrasena stays a plain
// string here; whether it is sent at all is decided at submit time.
type FormularioUsuario struct {
	NombreUsuario string `json:"nombreUsuario"`
	Email         string `json:"email"`
	Contrasena    string `json:"contrasena"`
	Telefono      string `json:"telefono"`
}

// UsuariosScreen owns the user list and its create/edit/delete flows.
type UsuariosScreen struct {
	api    Backend
	logger *slog.Logger

	lista Recurso[[]models.Usuario]

	mu         sync.Mutex
	form       FormularioUsuario
	editandoID int // 0 while creating
	dialogo    bool
}

func NewUsuariosScreen(api Backend, logger *slog.Logger) *UsuariosScreen {
	if logger == nil {
		logger = slog.Default()
	}
	return &UsuariosScreen{api: api, logger: logger}
}

// VistaUsuarios is the render snapshot handed to templates.
type VistaUsuarios struct {
	Usuarios   []models.Usuario
	Cargando   bool
	Error      string
	Dialogo    bool
	EditandoID int
	Form       FormularioUsuario
}

func (s *UsuariosScreen) Vista() VistaUsuarios {
	s.mu.Lock()
	defer s.mu.Unlock()
	return VistaUsuarios{
		Usuarios:   s.lista.Data(),
		Cargando:   s.lista.Cargando(),
		Error:      s.lista.Err(),
		Dialogo:    s.dialogo,
		EditandoID: s.editandoID,
		Form:       s.form,
	}
}

func (s *UsuariosScreen) Cargar(ctx context.Context) {
	s.lista.Cargar(ctx, s.api.Usuarios, "Error al cargar usuarios")
}

func (s *UsuariosScreen) AbrirCrear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogo = true
	s.editandoID = 0
	s.form = FormularioUsuario{}
	s.lista.ClearError()
}

// AbrirEditar pre-populates the form from the loaded entity. The password
// field starts empty: left empty it is omitted from the update payload.
func (s *UsuariosScreen) AbrirEditar(id int) bool {
	var seleccionado *models.Usuario
	for _, u := range s.lista.Data() {
		if u.ID == id {
			seleccionado = &u
			break
		}
	}
	if seleccionado == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogo = true
	s.editandoID = id
	s.form = FormularioUsuario{
		NombreUsuario: seleccionado.NombreUsuario,
		Email:         seleccionado.Email,
		Contrasena:    "",
		Telefono:      seleccionado.Telefono,
	}
	s.lista.ClearError()
	return true
}

func (s *UsuariosScreen) CerrarDialogo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogo = false
	s.editandoID = 0
	s.form = FormularioUsuario{}
}

func (s *UsuariosScreen) ActualizarFormulario(f FormularioUsuario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f
}

// Crear validates locally, creates the user and reloads the full list. On
// failure the dialog stays open with the error so the input can be fixed.
func (s *UsuariosScreen) Crear(ctx context.Context) bool {
	s.mu.Lock()
	form := s.form
	s.mu.Unlock()

	if form.NombreUsuario == "" || form.Email == "" || form.Contrasena == "" || form.Telefono == "" {
		s.lista.SetError(msgCamposRequeridos)
		return false
	}

	dto := models.CreateUsuarioDto{
		NombreUsuario: form.NombreUsuario,
		Email:         form.Email,
		Contrasena:    form.Contrasena,
		Telefono:      form.Telefono,
	}

	ok := s.lista.Mutar(ctx, func(ctx context.Context) (bool, string) {
		res := s.api.CreateUsuario(ctx, dto)
		return res.Success, res.Error
	}, s.api.Usuarios, "Error al crear usuario")

	if ok {
		s.CerrarDialogo()
	}
	return ok
}

// Actualizar submits the edit form. An empty password omits the field from
// the payload entirely, which the backend reads as "keep current password".
func (s *UsuariosScreen) Actualizar(ctx context.Context) bool {
	s.mu.Lock()
	id := s.editandoID
	form := s.form
	s.mu.Unlock()

	if id == 0 {
		return false
	}
	if form.NombreUsuario == "" || form.Email == "" || form.Telefono == "" {
		s.lista.SetError(msgCamposRequeridos)
		return false
	}

	dto := models.UpdateUsuarioDto{
		NombreUsuario: form.NombreUsuario,
		Email:         form.Email,
		Telefono:      form.Telefono,
	}
	if form.Contrasena != "" {
		dto.Contrasena = &form.Contrasena
	}

	ok := s.lista.Mutar(ctx, func(ctx context.Context) (bool, string) {
		res := s.api.UpdateUsuario(ctx, id, dto)
		return res.Success, res.Error
	}, s.api.Usuarios, "Error al actualizar usuario")

	if ok {
		s.CerrarDialogo()
	}
	return ok
}

// Eliminar requires an explicit confirmation; declining aborts with no
// state change and no network call.
func (s *UsuariosScreen) Eliminar(ctx context.Context, id int, confirmado bool) bool {
	if !confirmado {
		return false
	}
	return s.lista.Mutar(ctx, func(ctx context.Context) (bool, string) {
		res := s.api.DeleteUsuario(ctx, id)
		return res.Success, res.Error
	}, s.api.Usuarios, "Error al eliminar usuario")
}

// SetUsuarios seeds the list directly. Test seam.
func (s *UsuariosScreen) SetUsuarios(usuarios []models.Usuario) {
	s.lista.SetData(usuarios)
}
