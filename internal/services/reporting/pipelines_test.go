package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"cartera-go/internal/db"
)

func reportByName(t *testing.T, name string) PipelineReport {
	for _, report := range PipelineReports() {
		if report.Name == name {
			return report
		}
	}
	require.FailNow(t, "report not registered", name)
	return PipelineReport{}
}

func TestPipelineReportsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, report := range PipelineReports() {
		assert.False(t, seen[report.Name], report.Name)
		seen[report.Name] = true
		assert.NotEmpty(t, report.Pipeline)
	}
	assert.Len(t, seen, 8)
}

func TestCountPipelineShape(t *testing.T) {
	report := reportByName(t, PipelineProjectsPerTopic)
	assert.Equal(t, db.Proyectos, report.Collection)
	require.Len(t, report.Pipeline, 4)

	match := report.Pipeline[0]["$match"].(bson.M)
	assert.Equal(t, bson.M{"$nin": missingLabels}, match["tematica"])

	group := report.Pipeline[1]["$group"].(bson.M)
	assert.Equal(t, "$tematica", group["_id"])

	project := report.Pipeline[2]["$project"].(bson.M)
	assert.Equal(t, "$_id", project["tematica"])

	sort := report.Pipeline[3]["$sort"].(bson.D)
	assert.Equal(t, bson.D{{Key: "cantidad_proyectos", Value: -1}, {Key: "tematica", Value: 1}}, sort)
}

func TestProfessorsPerUnitReadsAcademics(t *testing.T) {
	report := reportByName(t, PipelineProfessorsPerUnit)
	assert.Equal(t, db.Academicos, report.Collection)
	project := report.Pipeline[2]["$project"].(bson.M)
	assert.Equal(t, "$_id", project["unidad_academica"])
	assert.Equal(t, 1, project["cantidad_profesores"])
}

func TestAmountPipelineConvertsMonto(t *testing.T) {
	report := reportByName(t, PipelineAmountPerCallInstitution)
	require.Len(t, report.Pipeline, 5)

	fields := report.Pipeline[1]["$addFields"].(bson.M)
	convert := fields["monto_num"].(bson.M)["$convert"].(bson.M)
	assert.Equal(t, "$monto", convert["input"])
	assert.Equal(t, "double", convert["to"])
	assert.Equal(t, 0, convert["onError"])
	assert.Equal(t, 0, convert["onNull"])

	sort := report.Pipeline[4]["$sort"].(bson.D)
	assert.Equal(t, "monto_total", sort[0].Key)
	assert.Equal(t, "institucion_convocatoria", sort[1].Key)
}

func TestAcademicPipelineJoinsNames(t *testing.T) {
	report := reportByName(t, PipelineProjectsPerAcademic)
	assert.Equal(t, bson.M{"$unwind": "$academicos"}, report.Pipeline[0])

	project := report.Pipeline[3]["$project"].(bson.M)
	assert.Equal(t,
		bson.M{"$concat": bson.A{"$_id.nombre", " ", "$_id.a_paterno"}},
		project["nombre_completo_academico"],
	)
}
