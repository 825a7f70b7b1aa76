package screens

import (
	"context"
	"log/slog"

	"tienda-movil/internal/models"
)

// EstadisticasScreen shows the read-only sales aggregates; nothing on this
// screen mutates backend state.
type EstadisticasScreen struct {
	api    Backend
	logger *slog.Logger

	datos Recurso[models.EstadisticasCompras]
}

func NewEstadisticasScreen(api Backend, logger *slog.Logger) *EstadisticasScreen {
	if logger == nil {
		logger = slog.Default()
	}
	return &EstadisticasScreen{api: api, logger: logger}
}

type VistaEstadisticas struct {
	Datos    models.EstadisticasCompras
	Cargando bool
	Error    string

	// Promedio is the average sale amount per purchase. TienePromedio is
	// false when there are no purchases; the figure must not be shown then.
	Promedio      float64
	TienePromedio bool

	// MaxVentaMensual scales the per-month bars; zero when there is no data.
	MaxVentaMensual float64
}

func (s *EstadisticasScreen) Vista() VistaEstadisticas {
	datos := s.datos.Data()

	v := VistaEstadisticas{
		Datos:    datos,
		Cargando: s.datos.Cargando(),
		Error:    s.datos.Err(),
	}
	if datos.TotalCompras > 0 {
		v.Promedio = datos.TotalVentas / float64(datos.TotalCompras)
		v.TienePromedio = true
	}
	for _, m := range datos.VentasPorMes {
		if m.TotalVentas > v.MaxVentaMensual {
			v.MaxVentaMensual = m.TotalVentas
		}
	}
	return v
}

func (s *EstadisticasScreen) Cargar(ctx context.Context) {
	s.datos.Cargar(ctx, s.api.Estadisticas, "Error al cargar estadísticas")
}

// SetDatos seeds the snapshot directly. Test seam.
func (s *EstadisticasScreen) SetDatos(datos models.EstadisticasCompras) {
	s.datos.SetData(datos)
}
