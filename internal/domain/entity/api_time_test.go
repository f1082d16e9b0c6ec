package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// El API .NET serializa DateTime sin zona horaria; otros endpoints ya emiten
// RFC3339. Ambas variantes deben decodificar.
func TestAPITime_DecodificaFormatoDotNet(t *testing.T) {
	var v struct {
		Date entity.APITime `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-01-05T10:30:00"}`), &v))

	esperado := time.Date(2024, 1, 5, 10, 30, 0, 0, time.Local)
	assert.True(t, v.Date.Equal(esperado), "esperado %s, fue %s", esperado, v.Date)
}

func TestAPITime_DecodificaRFC3339(t *testing.T) {
	var v struct {
		Date entity.APITime `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-01-05T10:30:00Z"}`), &v))
	assert.Equal(t, 2024, v.Date.Year())
}

func TestAPITime_VaciaYNullNoFallan(t *testing.T) {
	var v struct {
		Date entity.APITime `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":""}`), &v))
	assert.True(t, v.Date.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &v))
	assert.True(t, v.Date.IsZero())
}

func TestAPITime_FormatoDesconocidoFalla(t *testing.T) {
	var v struct {
		Date entity.APITime `json:"date"`
	}
	err := json.Unmarshal([]byte(`{"date":"05/01/2024"}`), &v)
	assert.Error(t, err)
}

func TestAPITime_SerializaRFC3339(t *testing.T) {
	at := entity.NewAPITime(time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC))
	out, err := json.Marshal(at)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-05T10:30:00Z"`, string(out))
}
