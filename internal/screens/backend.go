package screens

import (
	"context"

	"tienda-movil/internal/apiclient"
	"tienda-movil/internal/models"
)

// Backend is the slice of the upstream API the screens consume. It is
// satisfied by *apiclient.Client and by test fakes; screens never construct
// their own client.
type Backend interface {
	Usuarios(ctx context.Context) apiclient.Resultado[[]models.Usuario]
	Usuario(ctx context.Context, id int) apiclient.Resultado[models.Usuario]
	CreateUsuario(ctx context.Context, dto models.CreateUsuarioDto) apiclient.Resultado[models.Usuario]
	UpdateUsuario(ctx context.Context, id int, dto models.UpdateUsuarioDto) apiclient.Resultado[apiclient.Void]
	DeleteUsuario(ctx context.Context, id int) apiclient.Resultado[apiclient.Void]

	Productos(ctx context.Context) apiclient.Resultado[[]models.Producto]
	Producto(ctx context.Context, id int) apiclient.Resultado[models.Producto]
	ProductosDeUsuario(ctx context.Context, usuarioID int) apiclient.Resultado[[]models.Producto]
	CreateProducto(ctx context.Context, dto models.CreateProductoDto) apiclient.Resultado[models.Producto]
	UpdateProducto(ctx context.Context, id int, dto models.UpdateProductoDto) apiclient.Resultado[apiclient.Void]
	DeleteProducto(ctx context.Context, id int) apiclient.Resultado[apiclient.Void]

	Compras(ctx context.Context) apiclient.Resultado[[]models.Compra]
	ComprasDeUsuario(ctx context.Context, usuarioID int) apiclient.Resultado[[]models.Compra]
	CreateCompra(ctx context.Context, dto models.CreateCompraDto) apiclient.Resultado[models.Compra]

	Estadisticas(ctx context.Context) apiclient.Resultado[models.EstadisticasCompras]
}
