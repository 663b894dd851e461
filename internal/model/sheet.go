package model

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

const (
	SheetTematica        = "Temática"
	SheetEstatus         = "Estatus"
	SheetTipoApoyo       = "Tipo Apoyo"
	SheetDetalleApoyo    = "Detalle Apoyo"
	SheetUnidad          = "Unidad Académica"
	SheetUnidadExtra     = "Unidad Académica ++"
	SheetLider           = "Académic@/s-Líder"
	SheetPartner         = "Académic@/s-Partner"
	SheetEstudiantes     = "Estudiantes"
	SheetConvocatoria    = "Nombre Convocatoria a la que se postuló"
	SheetTipoConv        = "Tipo Convocatoria"
	SheetInstitucionConv = "Institucion Convocatoria"
	SheetFechaPost       = "Fecha Postulación"
	SheetMonto           = "Monto Proyecto MM$"

	// FondoValidar is the boolean column of the funds sheet.
	FondoValidar = "VALIDAR"
)

// SheetRow is one project row imported from the portfolio spreadsheet.
type SheetRow struct {
	Tematica        string   `mapstructure:"Temática"`
	Estatus         string   `mapstructure:"Estatus"`
	TipoApoyo       string   `mapstructure:"Tipo Apoyo"`
	DetalleApoyo    string   `mapstructure:"Detalle Apoyo"`
	Unidad          string   `mapstructure:"Unidad Académica"`
	UnidadExtra     []string `mapstructure:"Unidad Académica ++"`
	Lider           string   `mapstructure:"Académic@/s-Líder"`
	Partner         string   `mapstructure:"Académic@/s-Partner"`
	Estudiantes     string   `mapstructure:"Estudiantes"`
	Convocatoria    string   `mapstructure:"Nombre Convocatoria a la que se postuló"`
	TipoConv        string   `mapstructure:"Tipo Convocatoria"`
	InstitucionConv string   `mapstructure:"Institucion Convocatoria"`
	FechaPost       string   `mapstructure:"Fecha Postulación"`
	Monto           any      `mapstructure:"Monto Proyecto MM$"`
}

// DecodeSheetRow maps a stored document onto SheetRow. Numbers and booleans
// become strings, a list in a text column is joined with commas and a single
// value in a list column becomes a one element list.
func DecodeSheetRow(doc map[string]any) (SheetRow, error) {
	var row SheetRow
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(sheetCellHook),
		WeaklyTypedInput: true,
		Result:           &row,
	})
	if err != nil {
		return row, errors.Wrap(err, "build sheet decoder")
	}
	if err := decoder.Decode(doc); err != nil {
		return row, errors.Wrap(err, "decode sheet row")
	}
	return row, nil
}

// DecodeSheetRows decodes every document, failing on the first bad row.
func DecodeSheetRows(docs []map[string]any) ([]SheetRow, error) {
	rows := make([]SheetRow, 0, len(docs))
	for i, doc := range docs {
		row, err := DecodeSheetRow(doc)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// sheetCellHook renders booleans and lists bound for a text field the way
// the spreadsheet export prints them: true/false and comma joined values.
func sheetCellHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Bool:
		return fmt.Sprint(data), nil
	case reflect.Slice, reflect.Array:
		if from.Elem().Kind() == reflect.Uint8 {
			return data, nil
		}
		return cellText(data), nil
	}
	return data, nil
}

func cellText(v any) string {
	if v == nil {
		return ""
	}
	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, val.Len())
		for i := range parts {
			parts[i] = cellText(val.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}
