// Package models holds the wire contracts of the upstream business backend.
// JSON tags follow the backend's Spanish field names exactly; the backend is
// the source of truth and denormalized display fields are trusted as-is.
package models

type Usuario struct {
	ID            int    `json:"id"`
	NombreUsuario string `json:"nombreUsuario"`
	Email         string `json:"email"`
	Telefono      string `json:"telefono"`
}

type CreateUsuarioDto struct {
	NombreUsuario string `json:"nombreUsuario"`
	Email         string `json:"email"`
	Contrasena    string `json:"contraseña"`
	Telefono      string `json:"telefono"`
}

// UpdateUsuarioDto carries an optional password: a nil Contrasena is omitted
// from the payload entirely, which the backend reads as "keep the current
// password". An empty string must never be sent.
type UpdateUsuarioDto struct {
	NombreUsuario string  `json:"nombreUsuario"`
	Email         string  `json:"email"`
	Contrasena    *string `json:"contraseña,omitempty"`
	Telefono      string  `json:"telefono"`
}

type Producto struct {
	ID               int     `json:"id"`
	UsuarioID        int     `json:"usuarioId"`
	NombreUsuario    string  `json:"nombreUsuario"`
	NombreProducto   string  `json:"nombreProducto"`
	Descripcion      string  `json:"descripcion"`
	Precio           float64 `json:"precio"`
	TipoProducto     string  `json:"tipoProducto"`
	Categoria        string  `json:"categoria"`
	ImagenURL        string  `json:"imagenUrl"`
	FechaPublicacion string  `json:"fechaPublicacion"`
	Disponibilidad   bool    `json:"disponibilidad"`
}

type CreateProductoDto struct {
	UsuarioID      int     `json:"usuarioId"`
	NombreProducto string  `json:"nombreProducto"`
	Descripcion    string  `json:"descripcion"`
	Precio         float64 `json:"precio"`
	TipoProducto   string  `json:"tipoProducto"`
	Categoria      string  `json:"categoria"`
	ImagenURL      string  `json:"imagenUrl"`
	Disponibilidad bool    `json:"disponibilidad"`
}

// UpdateProductoDto always carries every field; the backend has no partial
// update for products. The asymmetry with UpdateUsuarioDto is part of the
// upstream contract and is kept deliberately.
type UpdateProductoDto struct {
	UsuarioID      int     `json:"usuarioId"`
	NombreProducto string  `json:"nombreProducto"`
	Descripcion    string  `json:"descripcion"`
	Precio         float64 `json:"precio"`
	TipoProducto   string  `json:"tipoProducto"`
	Categoria      string  `json:"categoria"`
	ImagenURL      string  `json:"imagenUrl"`
	Disponibilidad bool    `json:"disponibilidad"`
}

type Compra struct {
	ID             int     `json:"id"`
	UsuarioID      int     `json:"usuarioId"`
	NombreUsuario  string  `json:"nombreUsuario"`
	ProductoID     int     `json:"productoId"`
	NombreProducto string  `json:"nombreProducto"`
	PrecioProducto float64 `json:"precioProducto"`
	FechaCompra    string  `json:"fechaCompra"`
}

type CreateCompraDto struct {
	UsuarioID  int `json:"usuarioId"`
	ProductoID int `json:"productoId"`
}

type EstadisticasCompras struct {
	TotalCompras int            `json:"totalCompras"`
	TotalVentas  float64        `json:"totalVentas"`
	VentasPorMes []VentaMensual `json:"ventasPorMes"`
}

type VentaMensual struct {
	Anio            int     `json:"año"`
	Mes             int     `json:"mes"`
	TotalVentas     float64 `json:"totalVentas"`
	CantidadCompras int     `json:"cantidadCompras"`
}
