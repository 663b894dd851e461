package reporting

import (
	"go.mongodb.org/mongo-driver/bson"

	"cartera-go/internal/db"
)

// missingLabels are stored values that mean "no category".
var missingLabels = bson.A{nil, "", "null", "n/a", "N/A"}

// PipelineReport is a store-side aggregation served as-is.
type PipelineReport struct {
	Name       string
	Collection string
	Pipeline   []bson.M
}

const (
	PipelineProjectsPerAcademic        = "academicos/proyectos-conteo-nombre-completo"
	PipelineProjectsPerTopic           = "tematicas/proyectos-conteo"
	PipelineProjectsPerUnit            = "unidades/proyectos-conteo"
	PipelineProjectsPerCallInstitution = "instituciones-convocatoria/proyectos-conteo"
	PipelineProjectsPerCallType        = "tipos-convocatoria/proyectos-conteo"
	PipelineProfessorsPerUnit          = "profesores/por-unidad-academica"
	PipelineAmountPerCallInstitution   = "instituciones-convocatoria/monto-total"
	PipelineAmountPerCallType          = "tipos-convocatoria/monto-total"
)

// PipelineReports lists every aggregation by route name.
func PipelineReports() []PipelineReport {
	return []PipelineReport{
		{PipelineProjectsPerAcademic, db.Proyectos, academicCountPipeline()},
		{PipelineProjectsPerTopic, db.Proyectos, countPipeline("tematica", "tematica", "cantidad_proyectos")},
		{PipelineProjectsPerUnit, db.Proyectos, countPipeline("unidad", "unidad", "cantidad_proyectos")},
		{PipelineProjectsPerCallInstitution, db.Proyectos, countPipeline("inst_conv", "institucion_convocatoria", "cantidad_proyectos")},
		{PipelineProjectsPerCallType, db.Proyectos, countPipeline("tipo_convocatoria", "tipo_convocatoria", "cantidad_proyectos")},
		{PipelineProfessorsPerUnit, db.Academicos, countPipeline("unidad", "unidad_academica", "cantidad_profesores")},
		{PipelineAmountPerCallInstitution, db.Proyectos, amountPipeline("inst_conv", "institucion_convocatoria")},
		{PipelineAmountPerCallType, db.Proyectos, amountPipeline("tipo_convocatoria", "tipo_convocatoria")},
	}
}

func countPipeline(field, label, measure string) []bson.M {
	return []bson.M{
		{"$match": bson.M{field: bson.M{"$nin": missingLabels}}},
		{"$group": bson.M{"_id": "$" + field, measure: bson.M{"$sum": 1}}},
		{"$project": bson.M{"_id": 0, label: "$_id", measure: 1}},
		{"$sort": bson.D{{Key: measure, Value: -1}, {Key: label, Value: 1}}},
	}
}

func academicCountPipeline() []bson.M {
	const measure = "cantidad_proyectos"
	const label = "nombre_completo_academico"
	return []bson.M{
		{"$unwind": "$academicos"},
		{"$match": bson.M{
			"academicos.nombre":    bson.M{"$nin": missingLabels},
			"academicos.a_paterno": bson.M{"$nin": missingLabels},
		}},
		{"$group": bson.M{
			"_id":   bson.M{"nombre": "$academicos.nombre", "a_paterno": "$academicos.a_paterno"},
			measure: bson.M{"$sum": 1},
		}},
		{"$project": bson.M{
			"_id":   0,
			label:   bson.M{"$concat": bson.A{"$_id.nombre", " ", "$_id.a_paterno"}},
			measure: 1,
		}},
		{"$sort": bson.D{{Key: measure, Value: -1}, {Key: label, Value: 1}}},
	}
}

// amountPipeline sums monto per field. Values that do not convert to a
// number count as zero.
func amountPipeline(field, label string) []bson.M {
	const measure = "monto_total"
	return []bson.M{
		{"$match": bson.M{field: bson.M{"$nin": missingLabels}}},
		{"$addFields": bson.M{"monto_num": bson.M{"$convert": bson.M{
			"input":   "$monto",
			"to":      "double",
			"onError": 0,
			"onNull":  0,
		}}}},
		{"$group": bson.M{"_id": "$" + field, measure: bson.M{"$sum": "$monto_num"}}},
		{"$project": bson.M{"_id": 0, label: "$_id", measure: 1}},
		{"$sort": bson.D{{Key: measure, Value: -1}, {Key: label, Value: 1}}},
	}
}
