package screens

import (
	"context"
	"fmt"

	"tienda-movil/internal/apiclient"
	"tienda-movil/internal/models"
)

// fakeBackend records every call and serves canned data. Any method name
// present in fallos returns a failure envelope with that message instead.
type fakeBackend struct {
	usuarios     []models.Usuario
	productos    []models.Producto
	compras      []models.Compra
	estadisticas models.EstadisticasCompras

	fallos   map[string]string
	llamadas []string

	ultimoCreateUsuario  models.CreateUsuarioDto
	ultimoUpdateUsuario  models.UpdateUsuarioDto
	ultimoCreateProducto models.CreateProductoDto
	ultimoUpdateProducto models.UpdateProductoDto
	ultimaCompra         models.CreateCompraDto
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{fallos: make(map[string]string)}
}

func (f *fakeBackend) registrar(llamada string) (string, bool) {
	f.llamadas = append(f.llamadas, llamada)
	msg, falla := f.fallos[llamada]
	return msg, falla
}

func exito[T any](data T) apiclient.Resultado[T] {
	return apiclient.Resultado[T]{Success: true, Data: data}
}

func fallo[T any](msg string) apiclient.Resultado[T] {
	return apiclient.Resultado[T]{Success: false, Error: msg}
}

func (f *fakeBackend) Usuarios(ctx context.Context) apiclient.Resultado[[]models.Usuario] {
	if msg, falla := f.registrar("Usuarios"); falla {
		return fallo[[]models.Usuario](msg)
	}
	return exito(f.usuarios)
}

func (f *fakeBackend) Usuario(ctx context.Context, id int) apiclient.Resultado[models.Usuario] {
	if msg, falla := f.registrar("Usuario"); falla {
		return fallo[models.Usuario](msg)
	}
	for _, u := range f.usuarios {
		if u.ID == id {
			return exito(u)
		}
	}
	return fallo[models.Usuario](fmt.Sprintf("Usuario %d no encontrado", id))
}

func (f *fakeBackend) CreateUsuario(ctx context.Context, dto models.CreateUsuarioDto) apiclient.Resultado[models.Usuario] {
	f.ultimoCreateUsuario = dto
	if msg, falla := f.registrar("CreateUsuario"); falla {
		return fallo[models.Usuario](msg)
	}
	nuevo := models.Usuario{
		ID:            len(f.usuarios) + 1,
		NombreUsuario: dto.NombreUsuario,
		Email:         dto.Email,
		Telefono:      dto.Telefono,
	}
	f.usuarios = append(f.usuarios, nuevo)
	return exito(nuevo)
}

func (f *fakeBackend) UpdateUsuario(ctx context.Context, id int, dto models.UpdateUsuarioDto) apiclient.Resultado[apiclient.Void] {
	f.ultimoUpdateUsuario = dto
	if msg, falla := f.registrar("UpdateUsuario"); falla {
		return fallo[apiclient.Void](msg)
	}
	for i, u := range f.usuarios {
		if u.ID == id {
			f.usuarios[i].NombreUsuario = dto.NombreUsuario
			f.usuarios[i].Email = dto.Email
			f.usuarios[i].Telefono = dto.Telefono
		}
	}
	return exito(apiclient.Void{})
}

func (f *fakeBackend) DeleteUsuario(ctx context.Context, id int) apiclient.Resultado[apiclient.Void] {
	if msg, falla := f.registrar("DeleteUsuario"); falla {
		return fallo[apiclient.Void](msg)
	}
	restantes := f.usuarios[:0]
	for _, u := range f.usuarios {
		if u.ID != id {
			restantes = append(restantes, u)
		}
	}
	f.usuarios = restantes
	return exito(apiclient.Void{})
}

func (f *fakeBackend) Productos(ctx context.Context) apiclient.Resultado[[]models.Producto] {
	if msg, falla := f.registrar("Productos"); falla {
		return fallo[[]models.Producto](msg)
	}
	return exito(f.productos)
}

func (f *fakeBackend) Producto(ctx context.Context, id int) apiclient.Resultado[models.Producto] {
	if msg, falla := f.registrar("Producto"); falla {
		return fallo[models.Producto](msg)
	}
	for _, p := range f.productos {
		if p.ID == id {
			return exito(p)
		}
	}
	return fallo[models.Producto](fmt.Sprintf("Producto %d no encontrado", id))
}

func (f *fakeBackend) ProductosDeUsuario(ctx context.Context, usuarioID int) apiclient.Resultado[[]models.Producto] {
	if msg, falla := f.registrar("ProductosDeUsuario"); falla {
		return fallo[[]models.Producto](msg)
	}
	var propios []models.Producto
	for _, p := range f.productos {
		if p.UsuarioID == usuarioID {
			propios = append(propios, p)
		}
	}
	return exito(propios)
}

func (f *fakeBackend) CreateProducto(ctx context.Context, dto models.CreateProductoDto) apiclient.Resultado[models.Producto] {
	f.ultimoCreateProducto = dto
	if msg, falla := f.registrar("CreateProducto"); falla {
		return fallo[models.Producto](msg)
	}
	nuevo := models.Producto{
		ID:             len(f.productos) + 1,
		UsuarioID:      dto.UsuarioID,
		NombreProducto: dto.NombreProducto,
		Descripcion:    dto.Descripcion,
		Precio:         dto.Precio,
		TipoProducto:   dto.TipoProducto,
		Categoria:      dto.Categoria,
		ImagenURL:      dto.ImagenURL,
		Disponibilidad: dto.Disponibilidad,
	}
	f.productos = append(f.productos, nuevo)
	return exito(nuevo)
}

func (f *fakeBackend) UpdateProducto(ctx context.Context, id int, dto models.UpdateProductoDto) apiclient.Resultado[apiclient.Void] {
	f.ultimoUpdateProducto = dto
	if msg, falla := f.registrar("UpdateProducto"); falla {
		return fallo[apiclient.Void](msg)
	}
	return exito(apiclient.Void{})
}

func (f *fakeBackend) DeleteProducto(ctx context.Context, id int) apiclient.Resultado[apiclient.Void] {
	if msg, falla := f.registrar("DeleteProducto"); falla {
		return fallo[apiclient.Void](msg)
	}
	restantes := f.productos[:0]
	for _, p := range f.productos {
		if p.ID != id {
			restantes = append(restantes, p)
		}
	}
	f.productos = restantes
	return exito(apiclient.Void{})
}

func (f *fakeBackend) Compras(ctx context.Context) apiclient.Resultado[[]models.Compra] {
	if msg, falla := f.registrar("Compras"); falla {
		return fallo[[]models.Compra](msg)
	}
	return exito(f.compras)
}

func (f *fakeBackend) ComprasDeUsuario(ctx context.Context, usuarioID int) apiclient.Resultado[[]models.Compra] {
	if msg, falla := f.registrar("ComprasDeUsuario"); falla {
		return fallo[[]models.Compra](msg)
	}
	var propias []models.Compra
	for _, c := range f.compras {
		if c.UsuarioID == usuarioID {
			propias = append(propias, c)
		}
	}
	return exito(propias)
}

func (f *fakeBackend) CreateCompra(ctx context.Context, dto models.CreateCompraDto) apiclient.Resultado[models.Compra] {
	f.ultimaCompra = dto
	if msg, falla := f.registrar("CreateCompra"); falla {
		return fallo[models.Compra](msg)
	}
	nueva := models.Compra{
		ID:         len(f.compras) + 1,
		UsuarioID:  dto.UsuarioID,
		ProductoID: dto.ProductoID,
	}
	for _, p := range f.productos {
		if p.ID == dto.ProductoID {
			nueva.NombreProducto = p.NombreProducto
			nueva.PrecioProducto = p.Precio
		}
	}
	f.compras = append(f.compras, nueva)
	return exito(nueva)
}

func (f *fakeBackend) Estadisticas(ctx context.Context) apiclient.Resultado[models.EstadisticasCompras] {
	if msg, falla := f.registrar("Estadisticas"); falla {
		return fallo[models.EstadisticasCompras](msg)
	}
	return exito(f.estadisticas)
}

func (f *fakeBackend) cuenta(llamada string) int {
	n := 0
	for _, l := range f.llamadas {
		if l == llamada {
			n++
		}
	}
	return n
}
