package reporting

import (
	"strings"

	"cartera-go/internal/model"
)

// Column selects a single-valued sheet column for counting.
type Column struct {
	Name     string
	Fallback string
	Value    func(model.SheetRow) string
}

var (
	ColumnTematica        = Column{"tematicas", "Sin temática", func(r model.SheetRow) string { return r.Tematica }}
	ColumnEstatus         = Column{"estatus", "Sin estatus", func(r model.SheetRow) string { return r.Estatus }}
	ColumnTipoApoyo       = Column{"tipo_apoyo", "Sin tipo de apoyo", func(r model.SheetRow) string { return r.TipoApoyo }}
	ColumnUnidad          = Column{"ua", "Sin unidad académica", func(r model.SheetRow) string { return r.Unidad }}
	ColumnTipoConv        = Column{"tipo_convocatoria", "Sin tipo de convocatoria", func(r model.SheetRow) string { return r.TipoConv }}
	ColumnInstitucionConv = Column{"institucion_convocatoria", "Sin institucion de convocatoria", func(r model.SheetRow) string { return r.InstitucionConv }}
	ColumnFechaPost       = Column{"fechas_postulacion", "Sin fecha de postulación", func(r model.SheetRow) string { return r.FechaPost }}
)

// Columns are the single-column count reports by route name.
var Columns = []Column{
	ColumnTematica,
	ColumnEstatus,
	ColumnUnidad,
	ColumnTipoConv,
	ColumnInstitucionConv,
	ColumnFechaPost,
}

// CountColumn counts rows per value of col. Blank cells count under the
// column's fallback label and "n/a" cells are left out.
func CountColumn(rows []model.SheetRow, col Column) []Count {
	counter := NewCounter()
	for _, row := range rows {
		counter.Add(col.label(row))
	}
	return counter.Ranked()
}

func (c Column) label(row model.SheetRow) string {
	return orFallback(c.Value(row), c.Fallback)
}

func orFallback(value, fallback string) string {
	if value = strings.TrimSpace(value); value == "" {
		return fallback
	}
	return value
}

func academics(row model.SheetRow) []string {
	return SplitLabels(row.Lider, row.Partner)
}

func units(row model.SheetRow) []string {
	return SplitLabels(append([]string{row.Unidad}, row.UnidadExtra...)...)
}

type Analysis struct {
	TotalProyectos            int `json:"total_proyectos"`
	Tematicas                 int `json:"tematicas_distintas"`
	Estatus                   int `json:"estatus_distintos"`
	TiposApoyo                int `json:"tipos_apoyo_distintos"`
	DetallesApoyo             int `json:"detalles_apoyo_distintos"`
	Unidades                  int `json:"unidades_distintas"`
	Academicos                int `json:"academicos_distintos"`
	Estudiantes               int `json:"estudiantes_distintos"`
	Convocatorias             int `json:"convocatorias_distintas"`
	TiposConvocatoria         int `json:"tipos_convocatoria_distintos"`
	InstitucionesConvocatoria int `json:"instituciones_convocatoria_distintas"`
}

// Analyze counts the distinct values of every column.
func Analyze(rows []model.SheetRow) Analysis {
	tematicas, estatus, apoyos, detalles := NewCounter(), NewCounter(), NewCounter(), NewCounter()
	unidades, personas, estudiantes := NewCounter(), NewCounter(), NewCounter()
	convs, tipos, insts := NewCounter(), NewCounter(), NewCounter()

	for _, row := range rows {
		tematicas.Add(row.Tematica)
		estatus.Add(row.Estatus)
		apoyos.Add(row.TipoApoyo)
		detalles.Add(row.DetalleApoyo)
		unidades.Add(row.Unidad)
		personas.AddAll(academics(row))
		estudiantes.AddAll(SplitLabels(row.Estudiantes))
		convs.Add(row.Convocatoria)
		tipos.Add(row.TipoConv)
		insts.Add(row.InstitucionConv)
	}

	return Analysis{
		TotalProyectos:            len(rows),
		Tematicas:                 tematicas.Distinct(),
		Estatus:                   estatus.Distinct(),
		TiposApoyo:                apoyos.Distinct(),
		DetallesApoyo:             detalles.Distinct(),
		Unidades:                  unidades.Distinct(),
		Academicos:                personas.Distinct(),
		Estudiantes:               estudiantes.Distinct(),
		Convocatorias:             convs.Distinct(),
		TiposConvocatoria:         tipos.Distinct(),
		InstitucionesConvocatoria: insts.Distinct(),
	}
}

type FullAnalysis struct {
	TotalProyectos            int     `json:"total_proyectos"`
	Tematicas                 []Count `json:"tematicas"`
	Estatus                   []Count `json:"estatus"`
	TiposApoyo                []Count `json:"tipos_apoyo"`
	Unidades                  []Count `json:"unidades_academicas"`
	TiposConvocatoria         []Count `json:"tipos_convocatoria"`
	InstitucionesConvocatoria []Count `json:"instituciones_convocatoria"`
	AcademicosDistintos       int     `json:"academicos_distintos"`
}

// AnalyzeFull ranks every categorical column at once. Blank cells count
// under the column's fallback label, so each single-valued column adds up
// to the number of rows minus its "n/a" cells. total is the stored row
// count, which may differ from len(rows) if rows changed in between.
func AnalyzeFull(rows []model.SheetRow, total int) FullAnalysis {
	tematicas, estatus, apoyos := NewCounter(), NewCounter(), NewCounter()
	unidades, tipos, insts, personas := NewCounter(), NewCounter(), NewCounter(), NewCounter()

	for _, row := range rows {
		tematicas.Add(ColumnTematica.label(row))
		estatus.Add(ColumnEstatus.label(row))
		apoyos.Add(ColumnTipoApoyo.label(row))
		unidades.AddAll(units(row))
		tipos.Add(ColumnTipoConv.label(row))
		insts.Add(ColumnInstitucionConv.label(row))
		personas.AddAll(academics(row))
	}

	return FullAnalysis{
		TotalProyectos:            total,
		Tematicas:                 tematicas.Ranked(),
		Estatus:                   estatus.Ranked(),
		TiposApoyo:                apoyos.Ranked(),
		Unidades:                  unidades.Ranked(),
		TiposConvocatoria:         tipos.Ranked(),
		InstitucionesConvocatoria: insts.Ranked(),
		AcademicosDistintos:       personas.Distinct(),
	}
}

type Summary struct {
	TotalProyectos int     `json:"total_proyectos"`
	MontoTotal     float64 `json:"monto_total"`
	PorInstitucion []Sum   `json:"monto_por_institucion"`
}

// SinInstitucion labels amounts of rows without a funding institution.
const SinInstitucion = "Sin Institución"

// Summarize totals the project amounts, converted from millions.
func Summarize(rows []model.SheetRow) Summary {
	sums := NewSums()
	for _, row := range rows {
		sums.Add(orFallback(row.InstitucionConv, SinInstitucion), model.ParseMonto(row.Monto))
	}
	return Summary{
		TotalProyectos: len(rows),
		MontoTotal:     sums.Total(),
		PorInstitucion: sums.Ranked(),
	}
}

// ProjectsPerProfessor counts each project once per academic named as lead
// or partner.
func ProjectsPerProfessor(rows []model.SheetRow) []Count {
	counter := NewCounter()
	for _, row := range rows {
		counter.AddAll(academics(row))
	}
	return counter.Ranked()
}

func ProjectsPerTopic(rows []model.SheetRow) []Count {
	counter := NewCounter()
	for _, row := range rows {
		counter.AddAll(SplitLabels(row.Tematica))
	}
	return counter.Ranked()
}

// ProjectsPerUnit counts each project once per unit, primary or additional.
func ProjectsPerUnit(rows []model.SheetRow) []Count {
	counter := NewCounter()
	for _, row := range rows {
		counter.AddAll(units(row))
	}
	return counter.Ranked()
}

// ProfessorsPerUnit counts the distinct academics working on projects of
// each unit.
func ProfessorsPerUnit(rows []model.SheetRow) []Count {
	groups := NewGroups()
	for _, row := range rows {
		people := academics(row)
		if len(people) == 0 {
			continue
		}
		for _, unit := range units(row) {
			groups.Add(unit, people)
		}
	}
	return groups.Ranked()
}
