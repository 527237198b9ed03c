package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/constructora-api/internal/application/auth"
	"github.com/jhoicas/constructora-api/internal/application/stats"
	"github.com/jhoicas/constructora-api/internal/application/usecase"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ContratistaUC  *usecase.ContratistaUseCase
	ProyectoUC     *usecase.ProyectoUseCase
	ConceptoUC     *usecase.ConceptoUseCase
	ProspectoUC    *usecase.ProspectoUseCase
	NominaUC       *usecase.NominaUseCase
	GastoUC        *usecase.GastoUseCase
	EspecialidadUC *usecase.EspecialidadUseCase
	TrabajadorUC   *usecase.TrabajadorUseCase
	ArchivoUC      *usecase.ArchivoUseCase
	DashboardUC    *stats.DashboardUseCase
	AuthUC         *auth.AuthUseCase

	// Los reportes leen la entidad completa directo del repositorio.
	NominaRepo   repository.NominaRepository
	ProyectoRepo repository.ProyectoRepository

	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	soloAdmin := RequireRole(entity.RolAdmin)

	// Contratistas (protegido)
	contratistas := protected.Group("/contratistas")
	contratistaHandler := NewContratistaHandler(deps.ContratistaUC, deps.ArchivoUC)
	contratistas.Post("/", contratistaHandler.Create)
	contratistas.Get("/", contratistaHandler.List)
	contratistas.Get("/:id", contratistaHandler.GetByID)
	contratistas.Get("/:id/detalle", contratistaHandler.GetDetalle)
	contratistas.Put("/:id", contratistaHandler.Update)
	contratistas.Delete("/:id", contratistaHandler.Delete)
	contratistas.Post("/:id/proyectos/:proyectoId", contratistaHandler.AsignarProyecto)
	contratistas.Delete("/:id/proyectos/:proyectoId", contratistaHandler.RemoverProyecto)
	contratistas.Post("/:id/documentos", contratistaHandler.SubirDocumento)
	contratistas.Get("/:id/documentos", contratistaHandler.ListDocumentos)
	contratistas.Delete("/:id/documentos/:docId", contratistaHandler.DeleteDocumento)

	// Proyectos (protegido)
	proyectos := protected.Group("/proyectos")
	proyectoHandler := NewProyectoHandler(deps.ProyectoUC)
	reporteHandler := NewReporteHandler(deps.NominaRepo, deps.ProyectoRepo)
	proyectos.Post("/", proyectoHandler.Create)
	proyectos.Get("/", proyectoHandler.List)
	proyectos.Get("/:id", proyectoHandler.GetByID)
	proyectos.Put("/:id", proyectoHandler.Update)
	proyectos.Delete("/:id", proyectoHandler.Delete)
	proyectos.Post("/:id/pagos", proyectoHandler.AddPago)
	proyectos.Delete("/:id/pagos/:pagoId", proyectoHandler.DeletePago)
	proyectos.Post("/:id/trabajadores/:trabajadorId", proyectoHandler.AsignarTrabajador)
	proyectos.Delete("/:id/trabajadores/:trabajadorId", proyectoHandler.RemoverTrabajador)
	proyectos.Get("/:id/estado-cuenta.pdf", reporteHandler.EstadoCuenta)
	proyectos.Get("/:id/pagos.xml", reporteHandler.PagosXML)

	// Conceptos por contratista y proyecto (protegido)
	conceptos := protected.Group("/conceptos")
	conceptoHandler := NewConceptoHandler(deps.ConceptoUC)
	conceptos.Post("/", conceptoHandler.Create)
	conceptos.Get("/", conceptoHandler.ListByContratistaYProyecto)
	conceptos.Get("/:id", conceptoHandler.GetByID)
	conceptos.Put("/:id", conceptoHandler.Update)
	conceptos.Delete("/:id", conceptoHandler.Delete)
	conceptos.Post("/:id/pagos", conceptoHandler.AddPago)
	conceptos.Delete("/:id/pagos/:pagoId", conceptoHandler.DeletePago)

	// Prospectos (protegido)
	prospectos := protected.Group("/prospectos")
	prospectoHandler := NewProspectoHandler(deps.ProspectoUC)
	prospectos.Post("/", prospectoHandler.Create)
	prospectos.Get("/", prospectoHandler.List)
	prospectos.Get("/:id", prospectoHandler.GetByID)
	prospectos.Put("/:id", prospectoHandler.Update)
	prospectos.Delete("/:id", prospectoHandler.Delete)
	prospectos.Post("/:id/notas", prospectoHandler.AddNota)
	prospectos.Delete("/:id/notas/:notaId", prospectoHandler.DeleteNota)
	prospectos.Post("/:id/convertir", prospectoHandler.Convertir)

	// Nóminas semanales (protegido). Las rutas fijas van antes de /:id para
	// que Fiber no las capture como identificador.
	nominas := protected.Group("/nominas")
	nominaHandler := NewNominaHandler(deps.NominaUC)
	nominas.Get("/", nominaHandler.List)
	nominas.Get("/actual", nominaHandler.Actual)
	nominas.Get("/anios", nominaHandler.Anios)
	nominas.Post("/anios/:anio", soloAdmin, nominaHandler.GenerarAnio)
	nominas.Delete("/anios/:anio", soloAdmin, nominaHandler.EliminarAnio)
	nominas.Get("/:id", nominaHandler.GetByID)
	nominas.Get("/:id/reporte.pdf", reporteHandler.ReporteNomina)
	nominas.Post("/:id/cerrar", nominaHandler.Cerrar)
	nominas.Post("/:id/reabrir", nominaHandler.Reabrir)
	nominas.Post("/:id/pagos", nominaHandler.AddPago)
	nominas.Put("/:id/pagos/:pagoId", nominaHandler.UpdatePago)
	nominas.Delete("/:id/pagos/:pagoId", nominaHandler.DeletePago)

	// Gastos generales (protegido)
	gastos := protected.Group("/gastos")
	gastoHandler := NewGastoHandler(deps.GastoUC)
	gastos.Post("/", gastoHandler.Create)
	gastos.Get("/", gastoHandler.List)
	gastos.Get("/:id", gastoHandler.GetByID)
	gastos.Put("/:id", gastoHandler.Update)
	gastos.Delete("/:id", gastoHandler.Delete)

	// Catálogos (protegido)
	especialidades := protected.Group("/especialidades")
	especialidadHandler := NewEspecialidadHandler(deps.EspecialidadUC)
	especialidades.Post("/", especialidadHandler.Create)
	especialidades.Get("/", especialidadHandler.List)
	especialidades.Get("/:id", especialidadHandler.GetByID)
	especialidades.Put("/:id", especialidadHandler.Update)
	especialidades.Delete("/:id", especialidadHandler.Delete)

	trabajadores := protected.Group("/trabajadores")
	trabajadorHandler := NewTrabajadorHandler(deps.TrabajadorUC)
	trabajadores.Post("/", trabajadorHandler.Create)
	trabajadores.Get("/", trabajadorHandler.List)
	trabajadores.Get("/:id", trabajadorHandler.GetByID)
	trabajadores.Put("/:id", trabajadorHandler.Update)
	trabajadores.Delete("/:id", trabajadorHandler.Delete)

	// Administrador de archivos (protegido)
	archivos := protected.Group("/archivos")
	archivoHandler := NewArchivoHandler(deps.ArchivoUC)
	archivos.Post("/", archivoHandler.Subir)
	archivos.Get("/", archivoHandler.Buscar)
	archivos.Get("/:id/descargar", archivoHandler.Descargar)
	archivos.Delete("/:id", archivoHandler.Eliminar)

	// Dashboard financiero (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)
}
