// Package templates renders the mobile shell and the per-screen HTML
// fragments that the SSE routes patch into it.
package templates

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"

	"tienda-movil/internal/screens"
)

var meses = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// NombreMes maps 1..12 to the Spanish month name shown on the statistics
// screen.
func NombreMes(mes int) string {
	if mes < 1 || mes > 12 {
		return ""
	}
	return meses[mes-1]
}

// FormatoPrecio renders an amount the way the backend's operators expect:
// COP-style, dot thousands separator, two comma decimals.
func FormatoPrecio(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	partes := strings.SplitN(s, ".", 2)
	entero, decimales := partes[0], partes[1]

	var b strings.Builder
	for i, d := range entero {
		if i > 0 && (len(entero)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	out := "$ " + b.String() + "," + decimales
	if neg {
		return "-" + out
	}
	return out
}

var funcs = template.FuncMap{
	"precio": FormatoPrecio,
	"mes":    NombreMes,
	"dict": func(valores ...any) (map[string]any, error) {
		if len(valores)%2 != 0 {
			return nil, fmt.Errorf("dict requires an even number of arguments")
		}
		m := make(map[string]any, len(valores)/2)
		for i := 0; i < len(valores); i += 2 {
			clave, ok := valores[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict keys must be strings")
			}
			m[clave] = valores[i+1]
		}
		return m, nil
	},
}

const paginaHTML = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Tienda Móvil</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
<style>
body{font-family:system-ui,sans-serif;margin:0;background:#f4f4f5;color:#18181b}
.app{max-width:480px;margin:0 auto;min-height:100vh;background:#fff;display:flex;flex-direction:column}
.contenido{flex:1;padding:12px;padding-bottom:72px}
.tabs{position:fixed;bottom:0;left:50%;transform:translateX(-50%);width:100%;max-width:480px;display:flex;background:#fff;border-top:1px solid #e4e4e7}
.tabs button{flex:1;padding:12px 0;border:0;background:none;font-size:13px;cursor:pointer}
.tabs button.activa{color:#2563eb;font-weight:600}
.tarjeta{border:1px solid #e4e4e7;border-radius:8px;padding:12px;margin-bottom:8px}
.alerta{background:#fef2f2;color:#b91c1c;border:1px solid #fecaca;border-radius:8px;padding:8px 12px;margin-bottom:8px}
.cargando{color:#71717a;padding:8px 0}
.dialogo{position:fixed;inset:0;background:rgba(0,0,0,.4);display:flex;align-items:center;justify-content:center}
.dialogo .panel{background:#fff;border-radius:12px;padding:16px;width:90%;max-width:420px;max-height:80vh;overflow-y:auto}
label{display:block;font-size:13px;margin:8px 0 2px}
input,select{width:100%;padding:8px;border:1px solid #d4d4d8;border-radius:6px;box-sizing:border-box}
.boton{background:#2563eb;color:#fff;border:0;border-radius:6px;padding:10px 14px;cursor:pointer}
.boton.secundario{background:#e4e4e7;color:#18181b}
.boton.peligro{background:#dc2626}
.insignia{display:inline-block;background:#eff6ff;color:#1d4ed8;border-radius:9999px;padding:2px 8px;font-size:12px}
</style>
</head>
<body>
<div class="app" data-signals="{pantalla:'usuarios'}">
	<div class="contenido">
		<div data-show="$pantalla == 'usuarios'" data-on-load="@get('/sse/usuarios')">
			<div id="usuarios-content"><div class="cargando">Cargando usuarios...</div></div>
		</div>
		<div data-show="$pantalla == 'productos'" data-on-intersect="@get('/sse/productos')">
			<div id="productos-content"><div class="cargando">Cargando productos...</div></div>
		</div>
		<div data-show="$pantalla == 'compras'" data-on-intersect="@get('/sse/compras')">
			<div id="compras-content"><div class="cargando">Cargando compras...</div></div>
		</div>
		<div data-show="$pantalla == 'estadisticas'" data-on-intersect="@get('/sse/estadisticas')">
			<div id="estadisticas-content"><div class="cargando">Cargando estadísticas...</div></div>
		</div>
	</div>
	<nav class="tabs">
		<button data-on-click="$pantalla = 'usuarios'" data-class-activa="$pantalla == 'usuarios'">Usuarios</button>
		<button data-on-click="$pantalla = 'productos'" data-class-activa="$pantalla == 'productos'">Productos</button>
		<button data-on-click="$pantalla = 'compras'" data-class-activa="$pantalla == 'compras'">Compras</button>
		<button data-on-click="$pantalla = 'estadisticas'" data-class-activa="$pantalla == 'estadisticas'">Estadísticas</button>
	</nav>
</div>
</body>
</html>
`

var paginaTemplate = template.Must(template.New("pagina").Parse(paginaHTML))

// Shell is the single page the whole client lives in; every later update
// arrives as an SSE patch into one of the screen containers.
func Shell() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return paginaTemplate.Execute(w, nil)
	})
}

var usuariosTemplate = template.Must(template.New("usuarios").Funcs(funcs).Parse(`
<div id="usuarios-content">
{{if .Error}}<div class="alerta">{{.Error}}</div>{{end}}
{{if .Cargando}}<div class="cargando">Cargando...</div>{{end}}
<button class="boton" data-on-click="@post('/sse/usuarios/nuevo')">Nuevo Usuario</button>
{{range .Usuarios}}
<div class="tarjeta">
	<strong>{{.NombreUsuario}}</strong>
	<div>{{.Email}}</div>
	<div>{{.Telefono}}</div>
	<button class="boton secundario" data-on-click="@post('/sse/usuarios/{{.ID}}/editar')">Editar</button>
	<button class="boton peligro" data-on-click="confirm('¿Estás seguro de que quieres eliminar este usuario?') && @delete('/sse/usuarios/{{.ID}}?confirmado=true')">Eliminar</button>
</div>
{{end}}
{{if .Dialogo}}
<div class="dialogo"><div class="panel">
	<h3>{{if .EditandoID}}Editar Usuario{{else}}Nuevo Usuario{{end}}</h3>
	<label>Nombre de Usuario</label>
	<input data-bind="usuarioForm.nombreUsuario" value="{{.Form.NombreUsuario}}">
	<label>Email</label>
	<input type="email" data-bind="usuarioForm.email" value="{{.Form.Email}}">
	<label>{{if .EditandoID}}Nueva Contraseña (opcional){{else}}Contraseña{{end}}</label>
	<input type="password" data-bind="usuarioForm.contrasena">
	<label>Teléfono</label>
	<input data-bind="usuarioForm.telefono" value="{{.Form.Telefono}}">
	{{if .EditandoID}}
	<button class="boton" data-on-click="@put('/sse/usuarios/{{.EditandoID}}')">Guardar</button>
	{{else}}
	<button class="boton" data-on-click="@post('/sse/usuarios')">Crear</button>
	{{end}}
	<button class="boton secundario" data-on-click="@post('/sse/usuarios/cerrar')">Cancelar</button>
</div></div>
{{end}}
</div>`))

func RenderUsuarios(v screens.VistaUsuarios) (string, error) {
	var buf strings.Builder
	err := usuariosTemplate.Execute(&buf, v)
	return buf.String(), err
}

var productosTemplate = template.Must(template.New("productos").Funcs(funcs).Parse(`
<div id="productos-content">
{{if .Error}}<div class="alerta">{{.Error}}</div>{{end}}
{{if .Cargando}}<div class="cargando">Cargando...</div>{{end}}
<button class="boton" data-on-click="@post('/sse/productos/nuevo')">Nuevo Producto</button>
{{range .Productos}}
<div class="tarjeta">
	<strong>{{.NombreProducto}}</strong>
	<span class="insignia">{{.Categoria}}</span>
	{{if not .Disponibilidad}}<span class="insignia">No disponible</span>{{end}}
	<div>{{.Descripcion}}</div>
	<div><strong>{{precio .Precio}}</strong></div>
	<div>Publicado por {{.NombreUsuario}}</div>
	<button class="boton secundario" data-on-click="@post('/sse/productos/{{.ID}}/editar')">Editar</button>
	<button class="boton peligro" data-on-click="confirm('¿Estás seguro de que quieres eliminar este producto?') && @delete('/sse/productos/{{.ID}}?confirmado=true')">Eliminar</button>
</div>
{{end}}
{{if .DialogCrear}}
<div class="dialogo"><div class="panel">
	<h3>Nuevo Producto</h3>
	{{template "formProducto" dict "Form" .FormCrear "Usuarios" .Usuarios "Prefijo" "productoForm"}}
	<button class="boton" data-on-click="@post('/sse/productos')">Crear</button>
	<button class="boton secundario" data-on-click="@post('/sse/productos/cerrar')">Cancelar</button>
</div></div>
{{end}}
{{if .DialogEdita}}
<div class="dialogo"><div class="panel">
	<h3>Editar Producto</h3>
	{{template "formProducto" dict "Form" .FormEditar "Usuarios" .Usuarios "Prefijo" "productoEditForm"}}
	<button class="boton" data-on-click="@put('/sse/productos/{{.EditandoID}}')">Guardar</button>
	<button class="boton secundario" data-on-click="@post('/sse/productos/cerrar')">Cancelar</button>
</div></div>
{{end}}
</div>
{{define "formProducto"}}
	<label>Nombre</label>
	<input data-bind="{{.Prefijo}}.nombreProducto" value="{{.Form.NombreProducto}}">
	<label>Descripción</label>
	<input data-bind="{{.Prefijo}}.descripcion" value="{{.Form.Descripcion}}">
	<label>Precio</label>
	<input type="number" step="0.01" data-bind="{{.Prefijo}}.precio" value="{{if gt .Form.Precio 0.0}}{{.Form.Precio}}{{end}}">
	<label>Tipo de Producto</label>
	<input data-bind="{{.Prefijo}}.tipoProducto" value="{{.Form.TipoProducto}}">
	<label>Categoría</label>
	<input data-bind="{{.Prefijo}}.categoria" value="{{.Form.Categoria}}">
	<label>URL de Imagen</label>
	<input data-bind="{{.Prefijo}}.imagenUrl" value="{{.Form.ImagenURL}}">
	<label>Propietario</label>
	<select data-bind="{{.Prefijo}}.usuarioId">
		<option value="0">Selecciona un usuario</option>
		{{$sel := .Form.UsuarioID}}
		{{range .Usuarios}}<option value="{{.ID}}"{{if eq .ID $sel}} selected{{end}}>{{.NombreUsuario}}</option>{{end}}
	</select>
	<label><input type="checkbox" data-bind="{{.Prefijo}}.disponibilidad"{{if .Form.Disponibilidad}} checked{{end}}> Disponible</label>
{{end}}`))

func RenderProductos(v screens.VistaProductos) (string, error) {
	var buf strings.Builder
	err := productosTemplate.Execute(&buf, v)
	return buf.String(), err
}

var comprasTemplate = template.Must(template.New("compras").Funcs(funcs).Parse(`
<div id="compras-content">
{{if .Error}}<div class="alerta">{{.Error}}</div>{{end}}
{{if .Cargando}}<div class="cargando">Cargando...</div>{{end}}
<div class="tarjeta"><strong>Total de ventas: {{precio .TotalVentas}}</strong></div>
<button class="boton" data-on-click="@post('/sse/compras/nueva')">Nueva Compra</button>
{{range .Compras}}
<div class="tarjeta">
	<strong>{{.NombreProducto}}</strong>
	<div>{{precio .PrecioProducto}}</div>
	<div>Comprado por {{.NombreUsuario}}</div>
	<div>{{.FechaCompra}}</div>
</div>
{{end}}
{{if .Dialogo}}
<div class="dialogo"><div class="panel">
	<h3>Nueva Compra</h3>
	{{if eq .Paso 0}}
	<label>Selecciona una Categoría</label>
	{{range .Categorias}}
	<button class="boton secundario" data-on-click="@post('/sse/compras/categoria?categoria={{.}}')">{{.}}</button>
	{{end}}
	{{end}}
	{{if eq .Paso 1}}
	<button class="boton secundario" data-on-click="@post('/sse/compras/volver')">Volver</button>
	<span class="insignia">{{.Categoria}}</span>
	<label>Selecciona un Usuario</label>
	<select data-on-change="@post('/sse/compras/usuario?usuarioId=' + evt.target.value)">
		<option value="">Selecciona un usuario</option>
		{{range .Usuarios}}<option value="{{.ID}}">{{.NombreUsuario}}</option>{{end}}
	</select>
	{{end}}
	{{if eq .Paso 2}}
	<button class="boton secundario" data-on-click="@post('/sse/compras/volver')">Volver</button>
	<span class="insignia">{{.Categoria}}</span>
	<label>Selecciona un Producto</label>
	{{range .Candidatos}}
	<button class="boton secundario" data-on-click="@post('/sse/compras/producto?productoId={{.ID}}')">{{.NombreProducto}} — {{precio .Precio}}</button>
	{{end}}
	{{if not .Candidatos}}<div class="cargando">No hay productos disponibles en esta categoría</div>{{end}}
	{{end}}
	<button class="boton secundario" data-on-click="@post('/sse/compras/cerrar')">Cancelar</button>
</div></div>
{{end}}
</div>`))

func RenderCompras(v screens.VistaCompras) (string, error) {
	var buf strings.Builder
	err := comprasTemplate.Execute(&buf, v)
	return buf.String(), err
}

var estadisticasTemplate = template.Must(template.New("estadisticas").Funcs(funcs).Parse(`
<div id="estadisticas-content">
{{if .Error}}<div class="alerta">{{.Error}}</div>{{end}}
{{if .Cargando}}<div class="cargando">Cargando...</div>{{end}}
<div class="tarjeta">
	<div>Total de compras</div>
	<strong>{{.Datos.TotalCompras}}</strong>
</div>
<div class="tarjeta">
	<div>Total de ventas</div>
	<strong>{{precio .Datos.TotalVentas}}</strong>
</div>
{{if .TienePromedio}}
<div class="tarjeta">
	<div>Promedio por compra</div>
	<strong>{{precio .Promedio}}</strong>
</div>
{{end}}
{{if .Datos.VentasPorMes}}
<div class="tarjeta">
	<div>Ventas por mes</div>
	{{range .Datos.VentasPorMes}}
	<div>{{mes .Mes}} {{.Anio}}: {{precio .TotalVentas}} ({{.CantidadCompras}} compras)</div>
	{{end}}
</div>
{{end}}
</div>`))

func RenderEstadisticas(v screens.VistaEstadisticas) (string, error) {
	var buf strings.Builder
	err := estadisticasTemplate.Execute(&buf, v)
	return buf.String(), err
}
