package httpapi

import (
	"net/http"
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"cartera-go/internal/model"
	"cartera-go/internal/repositories"
	"cartera-go/internal/services/fundsync"
	"cartera-go/internal/services/reporting"
)

// Stores groups the collections served over HTTP.
type Stores struct {
	Proyectos      repositories.Store[model.Project]
	Academicos     repositories.PersonStore
	Estudiantes    repositories.PersonStore
	Instituciones  repositories.Store[model.Catalogo]
	Unidades       repositories.Store[model.Catalogo]
	Tematicas      repositories.Store[model.Catalogo]
	TiposApoyo     repositories.Store[model.CatalogoTipo]
	TiposConv      repositories.Store[model.Catalogo]
	Estatus        repositories.Store[model.CatalogoTipo]
	Fondos         repositories.Store[model.Fondo]
	Preguntas      repositories.Store[model.PreguntaPerfil]
	Respuestas     repositories.Store[model.RespuestaPerfil]
	ExcelProyectos repositories.SheetStore
	ExcelFondos    repositories.SheetStore
}

type Handler struct {
	stores      Stores
	reports     *reporting.Service
	sync        *fundsync.Service
	corsOrigins []string
}

func NewHandler(stores Stores, reports *reporting.Service, sync *fundsync.Service, corsOrigins []string) *Handler {
	return &Handler{stores: stores, reports: reports, sync: sync, corsOrigins: corsOrigins}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: h.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler)

	reports := &reportHandler{service: h.reports}

	r.Get("/", h.handleWelcome)

	r.Route("/proyectos", func(r chi.Router) {
		reports.pipelineRoutes(r)
		newResource[model.Project, model.ProjectPatch](masculine("Proyecto"), h.stores.Proyectos).routes(r)
	})
	r.Route("/academicos", newPeople(masculine("Académico"), h.stores.Academicos).routes)
	r.Route("/estudiantes", newPeople(masculine("Estudiante"), h.stores.Estudiantes).routes)
	r.Route("/instituciones", newResource[model.Catalogo, model.CatalogoPatch](feminine("Institución"), h.stores.Instituciones).routes)
	r.Route("/unidades-academicas", newResource[model.Catalogo, model.CatalogoPatch](feminine("Unidad académica"), h.stores.Unidades).routes)
	r.Route("/tematicas", newResource[model.Catalogo, model.CatalogoPatch](feminine("Temática"), h.stores.Tematicas).routes)
	r.Route("/tipos-apoyo", newResource[model.CatalogoTipo, model.CatalogoTipoPatch](masculine("Tipo de apoyo"), h.stores.TiposApoyo).routes)
	r.Route("/tipos-convocatoria", newResource[model.Catalogo, model.CatalogoPatch](masculine("Tipo de convocatoria"), h.stores.TiposConv).routes)
	r.Route("/estatus", newResource[model.CatalogoTipo, model.CatalogoTipoPatch](masculine("Estatus"), h.stores.Estatus).routes)
	r.Route("/fondos", newResource[model.Fondo, model.FondoPatch](masculine("Fondo"), h.stores.Fondos).routes)
	r.Route("/perfil-proyecto", newResource[model.PreguntaPerfil, model.PreguntaPerfilPatch](feminine("Pregunta"), h.stores.Preguntas).routes)
	r.Route("/respuestas-perfil", newResource[model.RespuestaPerfil, model.RespuestaPerfilPatch](feminine("Respuesta"), h.stores.Respuestas).routes)

	excel := &sheetHandler{store: h.stores.ExcelProyectos}
	r.Route("/excel-bun", func(r chi.Router) {
		r.Get("/", excel.list)
		r.Post("/", excel.insert)
		r.Delete("/", excel.clear)
		reports.sheetRoutes(r)
	})
	r.Route("/estadisticas-excel-bun", reports.statisticsRoutes)

	fondos := &sheetHandler{store: h.stores.ExcelFondos, normalize: fundsync.NormalizeFondo}
	syncer := &syncHandler{service: h.sync}
	r.Route("/fondos-excel-bun", func(r chi.Router) {
		r.Get("/", fondos.list)
		r.Post("/", fondos.insert)
		r.Delete("/", fondos.clear)
		r.Post("/sync", syncer.sync)
	})

	r.Route("/debug/pprof", func(r chi.Router) {
		r.Get("/", pprof.Index)
		r.Get("/cmdline", pprof.Cmdline)
		r.Get("/profile", pprof.Profile)
		r.Get("/symbol", pprof.Symbol)
		r.Post("/symbol", pprof.Symbol)
		r.Get("/trace", pprof.Trace)
		r.Get("/allocs", pprof.Handler("allocs").ServeHTTP)
		r.Get("/goroutine", pprof.Handler("goroutine").ServeHTTP)
		r.Get("/heap", pprof.Handler("heap").ServeHTTP)
	})
	return r
}

func (h *Handler) handleWelcome(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, "API de cartera de proyectos", nil)
}
